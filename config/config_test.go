package config_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvspectra/builder"
	"github.com/katalvlaran/lvspectra/config"
	"github.com/katalvlaran/lvspectra/core"
	"github.com/katalvlaran/lvspectra/spectral"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeFile(t, "cfg.yaml", "embedding:\n  dimensions: 8\n  solver: dense\nlog:\n  format: json\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 8, cfg.Embedding.Dimensions)
	require.Equal(t, config.SolverDense, cfg.Embedding.Solver)
	require.Equal(t, spectral.DefaultSeed, cfg.Embedding.Seed)
	require.Equal(t, spectral.DefaultSearchBreadthFactor, cfg.Embedding.SearchBreadthFactor)
	require.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeFile(t, "cfg.yaml", "embedding: [1, 2\n")
	_, err := config.Load(path)
	require.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.Embedding.Workers = 3
	cfg.IO.Graphs = "graphs.yaml"
	path := filepath.Join(t.TempDir(), "sub", "cfg.yaml")
	require.NoError(t, config.Save(path, cfg))

	got, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, got)
}

func TestApplyEnv_DotenvAndProcessPrecedence(t *testing.T) {
	env := writeFile(t, ".env", "LVSPECTRA_DIMENSIONS=16\nLVSPECTRA_SOLVER=jacobi\nLVSPECTRA_SEED=7\n")
	t.Setenv("LVSPECTRA_SOLVER", "dense")

	lookup, err := config.EnvLookup(env, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	cfg := config.Default()
	require.NoError(t, cfg.ApplyEnv(lookup))
	require.Equal(t, 16, cfg.Embedding.Dimensions)
	require.Equal(t, uint64(7), cfg.Embedding.Seed)
	require.Equal(t, config.SolverDense, cfg.Embedding.Solver)
}

func TestApplyEnv_BadNumber(t *testing.T) {
	lookup := func(key string) (string, bool) {
		if key == "LVSPECTRA_WORKERS" {
			return "many", true
		}
		return "", false
	}
	require.ErrorIs(t, config.Default().ApplyEnv(lookup), config.ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"dimensions", func(c *config.Config) { c.Embedding.Dimensions = 0 }},
		{"breadth", func(c *config.Config) { c.Embedding.SearchBreadthFactor = 0 }},
		{"workers", func(c *config.Config) { c.Embedding.Workers = 0 }},
		{"solver", func(c *config.Config) { c.Embedding.Solver = "arpack" }},
		{"level", func(c *config.Config) { c.Log.Level = "loud" }},
		{"format", func(c *config.Config) { c.Log.Format = "xml" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}

func TestNewLogger_JSONAtDebug(t *testing.T) {
	cfg := config.Default()
	cfg.Log = config.LogConfig{Level: "debug", Format: "json"}

	var buf bytes.Buffer
	logger, err := cfg.NewLogger(&buf)
	require.NoError(t, err)
	logger.Debug("hello", "k", 1)
	require.Contains(t, buf.String(), `"msg":"hello"`)
}

func TestSpectralOptions_DriveEmbedder(t *testing.T) {
	for _, solver := range []string{config.SolverLanczos, config.SolverDense, config.SolverJacobi} {
		t.Run(solver, func(t *testing.T) {
			cfg := config.Default()
			cfg.Embedding.Dimensions = 4
			cfg.Embedding.Solver = solver

			opts, err := cfg.SpectralOptions(nil, nil)
			require.NoError(t, err)
			e, err := spectral.New(opts...)
			require.NoError(t, err)
			require.Equal(t, 4, e.Dimensions())

			require.NoError(t, e.Fit(context.Background(), []*core.Graph{builder.MustBuild(builder.Path(3))}))
			emb, err := e.GetEmbedding()
			require.NoError(t, err)
			require.InDelta(t, 2.0, emb.At(0, 2), 1e-8)
		})
	}
}
