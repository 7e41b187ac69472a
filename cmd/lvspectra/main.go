// Command lvspectra embeds a collection of graphs into fixed-length spectral
// feature vectors and writes the table as CSV.
//
// Usage:
//
//	lvspectra -graphs graphs.yaml [-dimensions 32] [-out table.csv]
//	lvspectra -generate 100 -seed 7 -save-graphs fixtures.yaml
//
// Settings come from -config (YAML), then .env and LVSPECTRA_* variables, then
// explicitly set flags. With -metrics-addr the Prometheus endpoint stays up
// after the fit until the process is interrupted.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvspectra/builder"
	"github.com/katalvlaran/lvspectra/config"
	"github.com/katalvlaran/lvspectra/core"
	"github.com/katalvlaran/lvspectra/graphio"
	"github.com/katalvlaran/lvspectra/metrics"
	"github.com/katalvlaran/lvspectra/spectral"
)

// Size range and edge probability of generated graphs.
const (
	genMinNodes = 5
	genMaxNodes = 60
	genEdgeProb = 0.15
)

type flags struct {
	configPath  string
	graphs      string
	generate    int
	saveGraphs  string
	dimensions  int
	seed        uint64
	workers     int
	solver      string
	out         string
	metricsAddr string
}

func main() {
	var f flags
	fs := flag.NewFlagSet("lvspectra", flag.ExitOnError)
	fs.StringVar(&f.configPath, "config", "", "Path to YAML config file (optional)")
	fs.StringVar(&f.graphs, "graphs", "", "YAML graph collection to embed")
	fs.IntVar(&f.generate, "generate", 0, "Generate N random sparse graphs instead of reading -graphs")
	fs.StringVar(&f.saveGraphs, "save-graphs", "", "Write the generated collection to this YAML file")
	fs.IntVar(&f.dimensions, "dimensions", spectral.DefaultDimensions, "Embedding dimensions")
	fs.Uint64Var(&f.seed, "seed", spectral.DefaultSeed, "Random seed for the solver and -generate")
	fs.IntVar(&f.workers, "workers", spectral.DefaultWorkers, "Graphs embedded concurrently")
	fs.StringVar(&f.solver, "solver", config.SolverLanczos, "Eigen solver: lanczos | dense | jacobi")
	fs.StringVar(&f.out, "out", "", "CSV output path (default stdout)")
	fs.StringVar(&f.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9090")
	_ = fs.Parse(os.Args[1:])

	cfg, err := loadConfig(fs, f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lvspectra: %v\n", err)
		os.Exit(2)
	}
	logger, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lvspectra: %v\n", err)
		os.Exit(2)
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, cfg, f, logger); err != nil {
		logger.Error("lvspectra failed", "error", err)
		os.Exit(1)
	}
}

// loadConfig layers config file, environment and explicitly set flags.
func loadConfig(fs *flag.FlagSet, f flags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	lookup, err := config.EnvLookup(".env")
	if err != nil {
		return nil, err
	}
	if err = cfg.ApplyEnv(lookup); err != nil {
		return nil, err
	}

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "graphs":
			cfg.IO.Graphs = f.graphs
		case "dimensions":
			cfg.Embedding.Dimensions = f.dimensions
		case "seed":
			cfg.Embedding.Seed = f.seed
		case "workers":
			cfg.Embedding.Workers = f.workers
		case "solver":
			cfg.Embedding.Solver = f.solver
		case "out":
			cfg.IO.Output = f.out
		case "metrics-addr":
			cfg.Metrics.Addr = f.metricsAddr
		}
	})

	return cfg, cfg.Validate()
}

func run(ctx context.Context, cfg *config.Config, f flags, logger *slog.Logger) (err error) {
	var collector *metrics.Collector
	var srv *http.Server
	if cfg.Metrics.Addr != "" {
		collector = metrics.New(cfg.Metrics.Namespace)
		mux := http.NewServeMux()
		mux.Handle("/metrics", collector.Handler())
		srv = &http.Server{Addr: cfg.Metrics.Addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server stopped", "addr", cfg.Metrics.Addr, "error", err)
			}
		}()
		logger.Info("metrics server listening", "addr", cfg.Metrics.Addr)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if serr := srv.Shutdown(shutdownCtx); err == nil {
				err = serr
			}
		}()
	}

	coll, err := collect(cfg, f)
	if err != nil {
		return err
	}

	opts, err := cfg.SpectralOptions(logger, collector)
	if err != nil {
		return err
	}
	emb, err := spectral.New(opts...)
	if err != nil {
		return err
	}
	if err = emb.Fit(ctx, coll.Graphs); err != nil {
		return err
	}
	table, err := emb.GetEmbedding()
	if err != nil {
		return err
	}

	if err = writeTable(cfg.IO.Output, coll.Names, table); err != nil {
		return err
	}

	if srv != nil {
		<-ctx.Done()
	}

	return nil
}

// collect reads the configured collection or generates one.
func collect(cfg *config.Config, f flags) (*graphio.Collection, error) {
	if f.generate <= 0 {
		if cfg.IO.Graphs == "" {
			return nil, errors.New("one of -graphs or -generate is required")
		}
		return graphio.Load(cfg.IO.Graphs)
	}

	coll, err := generate(f.generate, cfg.Embedding.Seed)
	if err != nil {
		return nil, err
	}
	if f.saveGraphs != "" {
		if err = saveGraphs(f.saveGraphs, coll); err != nil {
			return nil, err
		}
	}

	return coll, nil
}

// saveGraphs writes coll as YAML to path.
func saveGraphs(path string, coll *graphio.Collection) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	return graphio.Encode(out, coll)
}

// generate builds n G(n,p) graphs whose sizes are drawn from one seeded stream.
func generate(n int, seed uint64) (*graphio.Collection, error) {
	rng := rand.New(rand.NewPCG(seed, seed))
	coll := &graphio.Collection{
		Names:  make([]string, n),
		Graphs: make([]*core.Graph, n),
	}
	for i := 0; i < n; i++ {
		size := genMinNodes + rng.IntN(genMaxNodes-genMinNodes+1)
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithRand(rng)},
			builder.RandomSparse(size, genEdgeProb))
		if err != nil {
			return nil, fmt.Errorf("generate graph %d: %w", i, err)
		}
		coll.Names[i] = "g" + strconv.Itoa(i)
		coll.Graphs[i] = g
	}

	return coll, nil
}

// writeTable writes CSV to path, or to stdout when path is empty.
func writeTable(path string, names []string, table *mat.Dense) (err error) {
	if path == "" {
		return graphio.WriteCSV(os.Stdout, names, table)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return graphio.WriteCSV(f, names, table)
}
