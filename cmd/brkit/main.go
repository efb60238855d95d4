// Command brkit serves the document validation API.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/brkit/internal/api"
	"github.com/dmitrymomot/brkit/internal/locales"
	"github.com/dmitrymomot/brkit/internal/metrics"
	"github.com/dmitrymomot/brkit/pkg/clientip"
	"github.com/dmitrymomot/brkit/pkg/config"
	"github.com/dmitrymomot/brkit/pkg/environment"
	"github.com/dmitrymomot/brkit/pkg/httpserver"
	"github.com/dmitrymomot/brkit/pkg/i18n"
	"github.com/dmitrymomot/brkit/pkg/logger"
	"github.com/dmitrymomot/brkit/pkg/ratelimiter"
	"github.com/dmitrymomot/brkit/pkg/requestid"
)

type appConfig struct {
	AppName         string `env:"APP_NAME" envDefault:"brkit"`
	AppEnv          string `env:"APP_ENV" envDefault:"development"`
	LogLevel        string `env:"LOG_LEVEL"`
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"pt-BR"`
	TrustProxy      bool   `env:"TRUST_PROXY"`
	RateLimit       bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	Metrics         bool   `env:"METRICS_ENABLED" envDefault:"true"`

	HTTP    httpserver.Config
	Limiter ratelimiter.Config
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad[appConfig](config.WithDotenv(".env"))
	env := environment.Parse(cfg.AppEnv)

	opts := []logger.Option{
		logger.WithEnvironment(env, cfg.AppName),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			logger.New().Error("Invalid LOG_LEVEL", logger.Error(err))
			os.Exit(1)
		}
		opts = append(opts, logger.WithLevel(level))
	}
	log := logger.New(opts...)
	slog.SetDefault(log)

	tr, err := i18n.NewTranslator(ctx,
		i18n.NewFSAdapter(locales.FS, "."),
		i18n.WithDefaultLanguage(cfg.DefaultLanguage),
		i18n.WithLogger(log.With(logger.Component("i18n"))),
		i18n.WithMissingTranslationsLogging(env != environment.Production),
	)
	if err != nil {
		log.Error("Failed to load translations", logger.Component("i18n"), logger.Error(err))
		os.Exit(1)
	}

	eg, ctx := errgroup.WithContext(ctx)

	var limiter *ratelimiter.Limiter
	if cfg.RateLimit {
		limiter, err = ratelimiter.New(cfg.Limiter)
		if err != nil {
			log.Error("Invalid rate limit configuration", logger.Component("ratelimit"), logger.Error(err))
			os.Exit(1)
		}
		eg.Go(limiter.Run(ctx))
	}

	var m *metrics.Metrics
	if cfg.Metrics {
		m = metrics.New()
	}

	router := api.NewRouter(api.Options{
		Translator:  tr,
		Logger:      log,
		Environment: env,
		RateLimiter: limiter,
		ClientIP:    clientip.Resolver{TrustProxy: cfg.TrustProxy},
		Metrics:     m,
	})

	srv := httpserver.New(cfg.HTTP, httpserver.WithLogger(log.With(logger.Component("server"))))
	eg.Go(srv.Run(ctx, router))

	if err := eg.Wait(); err != nil {
		log.Error("Server stopped with error", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}
	log.Info("Application stopped")
}
