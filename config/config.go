// Package config loads lvspectra settings from YAML, dotenv files and the
// process environment, in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvspectra/eigen"
	"github.com/katalvlaran/lvspectra/metrics"
	"github.com/katalvlaran/lvspectra/spectral"
)

// EnvPrefix namespaces every environment override.
const EnvPrefix = "LVSPECTRA_"

// Solver names accepted by EmbeddingConfig.Solver.
const (
	SolverLanczos = "lanczos"
	SolverDense   = "dense"
	SolverJacobi  = "jacobi"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EmbeddingConfig maps onto spectral.Option values.
type EmbeddingConfig struct {
	Dimensions          int    `yaml:"dimensions"`
	Seed                uint64 `yaml:"seed"`
	SearchBreadthFactor int    `yaml:"search_breadth_factor"`
	Workers             int    `yaml:"workers"`
	Solver              string `yaml:"solver"`
}

// IOConfig names the graph collection to read and where to write the table.
// An empty Output means stdout.
type IOConfig struct {
	Graphs string `yaml:"graphs"`
	Output string `yaml:"output"`
}

// MetricsConfig enables the Prometheus endpoint when Addr is set.
type MetricsConfig struct {
	Addr      string `yaml:"addr"`
	Namespace string `yaml:"namespace"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text | json
}

// Config is the root configuration.
type Config struct {
	Embedding EmbeddingConfig `yaml:"embedding"`
	IO        IOConfig        `yaml:"io"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Log       LogConfig       `yaml:"log"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Embedding: EmbeddingConfig{
			Dimensions:          spectral.DefaultDimensions,
			Seed:                spectral.DefaultSeed,
			SearchBreadthFactor: spectral.DefaultSearchBreadthFactor,
			Workers:             spectral.DefaultWorkers,
			Solver:              SolverLanczos,
		},
		Metrics: MetricsConfig{Namespace: metrics.DefaultNamespace},
		Log:     LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads a YAML config from path. A missing file yields Default().
// Keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes cfg to path as YAML, creating directories as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Lookup resolves one environment key.
type Lookup func(key string) (string, bool)

// EnvLookup layers the process environment over the given dotenv files.
// Missing files are skipped; for keys present in several files the first wins,
// and a variable set in the process environment always wins.
func EnvLookup(dotenvFiles ...string) (Lookup, error) {
	vals := map[string]string{}
	for _, f := range dotenvFiles {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		m, err := godotenv.Read(f)
		if err != nil {
			return nil, fmt.Errorf("config: dotenv %s: %w", f, err)
		}
		for k, v := range m {
			if _, seen := vals[k]; !seen {
				vals[k] = v
			}
		}
	}

	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vals[key]
		return v, ok
	}, nil
}

// ApplyEnv overrides fields from LVSPECTRA_* keys.
func (c *Config) ApplyEnv(lookup Lookup) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}
	num := func(key string, dst *int) error {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s%s=%q: %w", EnvPrefix, key, v, ErrInvalidConfig)
		}
		*dst = n
		return nil
	}

	if err := num("DIMENSIONS", &c.Embedding.Dimensions); err != nil {
		return err
	}
	if err := num("SEARCH_BREADTH_FACTOR", &c.Embedding.SearchBreadthFactor); err != nil {
		return err
	}
	if err := num("WORKERS", &c.Embedding.Workers); err != nil {
		return err
	}
	if v, ok := lookup(EnvPrefix + "SEED"); ok {
		s, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED=%q: %w", EnvPrefix, v, ErrInvalidConfig)
		}
		c.Embedding.Seed = s
	}
	str("SOLVER", &c.Embedding.Solver)
	str("GRAPHS", &c.IO.Graphs)
	str("OUTPUT", &c.IO.Output)
	str("METRICS_ADDR", &c.Metrics.Addr)
	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FORMAT", &c.Log.Format)

	return nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	e := c.Embedding
	switch {
	case e.Dimensions < 1:
		return fmt.Errorf("embedding.dimensions=%d: %w", e.Dimensions, ErrInvalidConfig)
	case e.SearchBreadthFactor < 1:
		return fmt.Errorf("embedding.search_breadth_factor=%d: %w", e.SearchBreadthFactor, ErrInvalidConfig)
	case e.Workers < 1:
		return fmt.Errorf("embedding.workers=%d: %w", e.Workers, ErrInvalidConfig)
	}
	if _, err := c.solver(); err != nil {
		return err
	}
	if _, err := c.level(); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("log.format=%q: %w", c.Log.Format, ErrInvalidConfig)
	}

	return nil
}

func (c *Config) solver() (eigen.Solver, error) {
	switch strings.ToLower(c.Embedding.Solver) {
	case "", SolverLanczos:
		return eigen.NewLanczos(c.Embedding.Seed), nil
	case SolverDense:
		return eigen.Dense{}, nil
	case SolverJacobi:
		return eigen.Jacobi{}, nil
	default:
		return nil, fmt.Errorf("embedding.solver=%q: %w", c.Embedding.Solver, ErrInvalidConfig)
	}
}

func (c *Config) level() (slog.Level, error) {
	var lvl slog.Level
	if c.Log.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level=%q: %w", c.Log.Level, ErrInvalidConfig)
	}
	return lvl, nil
}

// NewLogger builds the slog.Logger described by c.Log, writing to w.
func (c *Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	lvl, err := c.level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(c.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// SpectralOptions translates c.Embedding into embedder options.
// logger and collector are optional.
func (c *Config) SpectralOptions(logger *slog.Logger, collector *metrics.Collector) ([]spectral.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	s, err := c.solver()
	if err != nil {
		return nil, err
	}
	opts := []spectral.Option{
		spectral.WithDimensions(c.Embedding.Dimensions),
		spectral.WithSeed(c.Embedding.Seed),
		spectral.WithSearchBreadthFactor(c.Embedding.SearchBreadthFactor),
		spectral.WithWorkers(c.Embedding.Workers),
		spectral.WithSolver(s),
	}
	if logger != nil {
		opts = append(opts, spectral.WithLogger(logger))
	}
	if collector != nil {
		opts = append(opts, spectral.WithMetrics(collector))
	}

	return opts, nil
}
