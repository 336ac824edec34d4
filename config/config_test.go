package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourlath/config"
	"github.com/katalvlaran/tourlath/tsp"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, "development", cfg.Environment)
	require.True(t, cfg.Development())
	require.Equal(t, tsp.VariantHybrid.String(), cfg.Variant)
	require.Equal(t, time.Minute, cfg.TimeLimit)
	require.Equal(t, tsp.DefaultResetThreshold, cfg.ResetThreshold)
	require.Equal(t, tsp.DefaultDecayRate, cfg.DecayRate)
	require.Equal(t, zerolog.InfoLevel, cfg.Level())

	opts, err := cfg.Options()
	require.NoError(t, err)
	require.True(t, opts.Anneal)
	require.Equal(t, time.Minute, opts.TimeLimit)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	file := "VARIANT=local-search\nTIME_LIMIT=90s\nSEED=42\nLOG_LEVEL=debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tourlath.env"), []byte(file), 0o600))

	// Environment wins over the file.
	t.Setenv("TOURLATH_SEED", "7")
	t.Setenv("TOURLATH_ENVIRONMENT", "production")

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	require.Equal(t, "local-search", cfg.Variant)
	require.Equal(t, 90*time.Second, cfg.TimeLimit)
	require.Equal(t, int64(7), cfg.Seed)
	require.Equal(t, zerolog.DebugLevel, cfg.Level())
	require.False(t, cfg.Development())

	opts, err := cfg.Options()
	require.NoError(t, err)
	require.False(t, opts.Anneal)
	require.True(t, opts.MultiStart)
	require.Equal(t, int64(7), opts.Seed)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TOURLATH_WORKERS=3\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("TOURLATH_WORKERS") })

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Workers)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("TOURLATH_VARIANT", "christofides")
	_, err := config.Load(t.TempDir())
	require.ErrorIs(t, err, tsp.ErrUnsupportedVariant)

	t.Setenv("TOURLATH_VARIANT", "hybrid")
	t.Setenv("TOURLATH_WORKERS", "-2")
	_, err = config.Load(t.TempDir())
	require.ErrorIs(t, err, tsp.ErrInvalidOptions)

	t.Setenv("TOURLATH_WORKERS", "0")
	t.Setenv("TOURLATH_LOG_LEVEL", "loud")
	_, err = config.Load(t.TempDir())
	require.Error(t, err)
}
