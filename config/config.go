// Package config loads synthgen settings from defaults, an optional
// synthgen.yaml and SYNTHGEN_* environment variables.
package config

import (
	"strings"

	"github.com/YuminosukeSato/synthgen/core/random"
	"github.com/YuminosukeSato/synthgen/pkg/errors"
	"github.com/YuminosukeSato/synthgen/pkg/log"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "SYNTHGEN"

// FileName is the base name of the optional configuration file.
const FileName = "synthgen"

// Config holds the settings of the grid driver and the command line tool.
type Config struct {
	// JobsPath is the directory job lists are written under.
	JobsPath string `mapstructure:"jobs_path"`
	// ExperimentsPath is the root of the file tracker.
	ExperimentsPath string `mapstructure:"experiments_path"`
	Seed            uint64 `mapstructure:"seed"`
	LogLevel        string `mapstructure:"log_level"`
	NumRows         int    `mapstructure:"num_rows"`
	NumCols         int    `mapstructure:"num_cols"`
	NumComponents   int    `mapstructure:"num_components"`
}

// Default returns the settings used by the synthetic grid.
func Default() Config {
	return Config{
		JobsPath:        "jobs",
		ExperimentsPath: "experiments",
		Seed:            random.DefaultSeed,
		LogLevel:        "info",
		NumRows:         200,
		NumCols:         200,
		NumComponents:   10,
	}
}

// New returns a viper instance with defaults and environment binding set up.
// When file is empty, synthgen.yaml is searched in the working directory.
func New(file string) *viper.Viper {
	v := viper.New()

	d := Default()
	v.SetDefault("jobs_path", d.JobsPath)
	v.SetDefault("experiments_path", d.ExperimentsPath)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("num_rows", d.NumRows)
	v.SetDefault("num_cols", d.NumCols)
	v.SetDefault("num_components", d.NumComponents)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the configuration. A missing default file is not an error; a
// missing file named explicitly is.
func Load(file string) (Config, error) {
	return FromViper(New(file), file != "")
}

// FromViper reads and validates the configuration held by v.
func FromViper(v *viper.Viper, requireFile bool) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if requireFile || !errors.As(err, &notFound) {
			return Config{}, errors.Wrap(err, "read config")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks paths, grid shape and log level.
func (c Config) Validate() error {
	if c.JobsPath == "" {
		return errors.NewValidationError("jobs_path", "must not be empty", c.JobsPath)
	}
	if c.ExperimentsPath == "" {
		return errors.NewValidationError("experiments_path", "must not be empty", c.ExperimentsPath)
	}
	if c.NumRows < 1 {
		return errors.NewValidationError("num_rows", "must be positive", c.NumRows)
	}
	if c.NumCols < 1 {
		return errors.NewValidationError("num_cols", "must be positive", c.NumCols)
	}
	if c.NumComponents < 1 {
		return errors.NewValidationError("num_components", "must be positive", c.NumComponents)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return errors.NewValidationError("log_level", err.Error(), c.LogLevel)
	}
	return nil
}

// Level returns the parsed log level.
func (c Config) Level() log.Level {
	l, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.LevelInfo
	}
	return l
}
