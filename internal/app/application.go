package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kesslersoftware/top-companies-by-cause-lambda/internal/appconf"
	"github.com/kesslersoftware/top-companies-by-cause-lambda/internal/causestats"
	"github.com/kesslersoftware/top-companies-by-cause-lambda/internal/models"
)

// StatsLookup is satisfied by *causestats.Service.
type StatsLookup interface {
	TopCompaniesByCause(ctx context.Context, causeID string) ([]models.CauseCompanyStat, error)
}

// Application holds the dependencies shared by the Lambda adapter and the local HTTP server.
type Application struct {
	Config appconf.Config
	Logger *slog.Logger
	Stats  StatsLookup
}

// New builds an Application backed by DynamoDB. The client is created once and
// reused by every request.
func New(ctx context.Context, cfg appconf.Config, logger *slog.Logger) (*Application, error) {
	client, err := causestats.NewDynamoClient(ctx, causestats.AWSConfig{
		Region:   cfg.AWSRegion,
		Endpoint: cfg.DynamoEndpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("create dynamodb client: %w", err)
	}

	stats := causestats.NewService(client, causestats.Config{
		TableName: cfg.TableName,
		IndexName: cfg.IndexName,
	})

	return &Application{
		Config: cfg,
		Logger: logger,
		Stats:  stats,
	}, nil
}
