package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/kesslersoftware/top-companies-by-cause-lambda/internal/app"
	"github.com/kesslersoftware/top-companies-by-cause-lambda/internal/appconf"
	"github.com/kesslersoftware/top-companies-by-cause-lambda/internal/logging"
	"github.com/kesslersoftware/top-companies-by-cause-lambda/internal/restapi"
)

func main() {
	// .env is optional and only used for local development.
	envErr := godotenv.Load()

	cfg, cfgErr := appconf.FromEnv(os.Getenv)
	var envFlag string

	flag.IntVar(&cfg.Port, "port", cfg.Port, "API server port")
	flag.StringVar(&envFlag, "env", cfg.Env.String(), "Environment (development|test|production)")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	flag.StringVar(&cfg.TableName, "table", cfg.TableName, "DynamoDB statistics table")
	flag.StringVar(&cfg.IndexName, "index", cfg.IndexName, "Optional index sorted by boycott_count")
	flag.StringVar(&cfg.AWSRegion, "region", cfg.AWSRegion, "AWS region")
	flag.StringVar(&cfg.DynamoEndpoint, "dynamodb-endpoint", cfg.DynamoEndpoint, "DynamoDB endpoint override, e.g. http://localhost:8000")
	flag.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "HS256 secret for bearer tokens")
	flag.IntVar(&cfg.RateLimit, "rate-limit", cfg.RateLimit, "Requests per second per subject (0 disables)")
	flag.Parse()

	cfg.Env = appconf.EnvFlagToEnvironment(envFlag)

	logger := logging.NewStructuredLogger(os.Stdout, logging.ParseLevel(cfg.LogLevel))
	if envErr != nil {
		logger.Debug("no .env file loaded", "error", envErr)
	}
	if cfgErr != nil {
		logging.LogError(logger, "invalid environment configuration, using defaults", cfgErr)
	}
	if cfg.JWTSecret == "" {
		logger.Warn("no JWT secret configured, every stats request will be rejected")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logging.LogError(logger, "server stopped", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appconf.Config, logger *slog.Logger) error {
	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}

	api := restapi.NewRestAPI(application)
	defer logging.SafeCloseWithLogging(api, logger, "close_rest_api")

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env.String(), "table", cfg.TableName)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logging.SafeCloseWithLogging(srv, logger, "force_close_http_server")
			return err
		}
		return nil
	}
}
