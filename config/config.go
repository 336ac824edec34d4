// Package config loads command-line defaults from an optional .env file,
// an optional tourlath.env file and TOURLATH_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/katalvlaran/tourlath/tsp"
)

// EnvPrefix namespaces every environment variable read by Load.
const EnvPrefix = "TOURLATH"

// Config stores the solver defaults of the command-line front end.
// Values are read by viper from tourlath.env or the environment; flags
// override them.
type Config struct {
	Environment    string        `mapstructure:"ENVIRONMENT"`
	Variant        string        `mapstructure:"VARIANT"`
	TimeLimit      time.Duration `mapstructure:"TIME_LIMIT"`
	MaxIterations  int           `mapstructure:"MAX_ITERATIONS"`
	Seed           int64         `mapstructure:"SEED"`
	Workers        int           `mapstructure:"WORKERS"`
	LogLevel       string        `mapstructure:"LOG_LEVEL"`
	ResetThreshold float64       `mapstructure:"RESET_THRESHOLD"`
	DecayRate      float64       `mapstructure:"DECAY_RATE"`
}

var defaults = map[string]interface{}{
	"ENVIRONMENT":     "development",
	"VARIANT":         tsp.VariantHybrid.String(),
	"TIME_LIMIT":      time.Minute,
	"MAX_ITERATIONS":  0,
	"SEED":            int64(0),
	"WORKERS":         0,
	"LOG_LEVEL":       zerolog.InfoLevel.String(),
	"RESET_THRESHOLD": tsp.DefaultResetThreshold,
	"DECAY_RATE":      tsp.DefaultDecayRate,
}

// Load reads configuration from dir. A missing .env or tourlath.env is not an
// error; an empty dir means the working directory.
func Load(dir string) (cfg Config, err error) {
	if dir == "" {
		dir = "."
	}
	if err = godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("config: .env: %w", err)
	}

	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName("tourlath")
	v.SetConfigType("env")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("config: %w", err)
		}
	}
	if err = v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if _, err := tsp.ParseVariant(c.Variant); err != nil {
		return fmt.Errorf("config: VARIANT: %w", err)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: LOG_LEVEL: %w", err)
	}
	if c.TimeLimit < 0 || c.MaxIterations < 0 || c.Workers < 0 {
		return fmt.Errorf("config: TIME_LIMIT, MAX_ITERATIONS and WORKERS must be non-negative: %w", tsp.ErrInvalidOptions)
	}

	return nil
}

// Level returns the parsed LOG_LEVEL.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}

	return lvl
}

// Development reports whether console-friendly output is wanted.
func (c Config) Development() bool {
	return c.Environment == "development"
}

// Options resolves the variant preset and applies the configured budgets
// and schedule.
func (c Config) Options() (tsp.Options, error) {
	v, err := tsp.ParseVariant(c.Variant)
	if err != nil {
		return tsp.Options{}, err
	}
	opts, err := tsp.OptionsFor(v)
	if err != nil {
		return tsp.Options{}, err
	}

	opts.TimeLimit = c.TimeLimit
	opts.MaxIterations = c.MaxIterations
	opts.Seed = c.Seed
	opts.Workers = c.Workers
	opts.ResetThreshold = c.ResetThreshold
	opts.DecayRate = c.DecayRate

	return opts, nil
}
