// Package config loads typed configuration from environment variables.
//
// Values come from the process environment, optionally seeded from dotenv
// files, and are decoded into a struct using `env` and `envDefault` tags:
//
//	type Config struct {
//	    AppEnv   string `env:"APP_ENV" envDefault:"development"`
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	cfg, err := config.Load[Config](config.WithDotenv(".env"))
//
// Variables already present in the environment take precedence over dotenv
// files, and missing dotenv files are ignored.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	ErrParsingConfig = errors.New("failed to parse environment variables into config")
	ErrLoadingDotenv = errors.New("failed to load dotenv file")
)

// Option configures Load.
type Option func(*options)

type options struct {
	prefix      string
	dotenv      []string
	environment map[string]string
}

// WithPrefix requires every variable name to start with prefix
// ("BRKIT_" turns `env:"PORT"` into BRKIT_PORT).
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithDotenv loads the given files into the process environment before
// parsing. Files that do not exist are skipped.
func WithDotenv(files ...string) Option {
	return func(o *options) { o.dotenv = append(o.dotenv, files...) }
}

// WithEnvironment parses from vars instead of the process environment.
func WithEnvironment(vars map[string]string) Option {
	return func(o *options) { o.environment = vars }
}

// Load decodes the environment into a new T.
func Load[T any](opts ...Option) (T, error) {
	var cfg T

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	for _, file := range o.dotenv {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, errors.Join(ErrLoadingDotenv, fmt.Errorf("%s: %w", file, err))
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{
		Prefix:      o.prefix,
		Environment: o.environment,
	}); err != nil {
		return cfg, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoad works like Load but panics on error.
func MustLoad[T any](opts ...Option) T {
	cfg, err := Load[T](opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}
	return cfg
}
