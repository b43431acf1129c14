package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/kesslersoftware/top-companies-by-cause-lambda/internal/app"
	"github.com/kesslersoftware/top-companies-by-cause-lambda/internal/appconf"
	"github.com/kesslersoftware/top-companies-by-cause-lambda/internal/gateway"
	"github.com/kesslersoftware/top-companies-by-cause-lambda/internal/logging"
)

func main() {
	cfg, cfgErr := appconf.FromEnv(os.Getenv)
	logger := logging.NewStructuredLogger(os.Stdout, logging.ParseLevel(cfg.LogLevel))
	if cfgErr != nil {
		logging.LogError(logger, "invalid environment configuration, using defaults", cfgErr)
	}

	// Built during the init phase and reused across invocations.
	application, err := app.New(context.Background(), cfg, logger)
	if err != nil {
		logging.LogError(logger, "failed to initialize application", err)
		os.Exit(1)
	}

	logger.Info("lambda initialized", "table", cfg.TableName, "index", cfg.IndexName)
	lambda.Start(gateway.New(application).Handle)
}
