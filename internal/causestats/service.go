// Package causestats reads ranked company statistics for a cause from the
// pre-aggregated cause_company_stats table.
package causestats

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/kesslersoftware/top-companies-by-cause-lambda/internal/models"
)

const (
	DefaultTableName = "cause_company_stats"
	DefaultLimit     = 3

	keyCondition = "cause_id = :cid"
	projection   = "cause_id, cause_desc, company_id, company_name, boycott_count"
)

var ErrMissingCauseID = errors.New("cause_id is missing")

type Config struct {
	TableName string
	// IndexName selects a secondary index; empty queries the base table.
	IndexName string
	Limit     int32
}

func DefaultConfig() Config {
	return Config{
		TableName: DefaultTableName,
		Limit:     DefaultLimit,
	}
}

// Service performs the bounded, ordered lookup. It holds no per-request state.
type Service struct {
	client QueryAPI
	config Config
}

// NewService creates a Service. Zero fields in cfg fall back to DefaultConfig.
func NewService(client QueryAPI, cfg Config) *Service {
	defaults := DefaultConfig()
	if cfg.TableName == "" {
		cfg.TableName = defaults.TableName
	}
	if cfg.Limit <= 0 {
		cfg.Limit = defaults.Limit
	}
	return &Service{client: client, config: cfg}
}

func (s *Service) Config() Config {
	return s.config
}

// statRow mirrors the projected item. Absent attributes keep their zero value.
type statRow struct {
	CauseDesc    string `dynamodbav:"cause_desc"`
	CompanyID    string `dynamodbav:"company_id"`
	CompanyName  string `dynamodbav:"company_name"`
	BoycottCount int    `dynamodbav:"boycott_count"`
}

// TopCompaniesByCause returns up to Limit records for causeID ordered by
// boycott_count descending. An empty result is an empty slice, not an error.
func (s *Service) TopCompaniesByCause(ctx context.Context, causeID string) ([]models.CauseCompanyStat, error) {
	if causeID == "" {
		return nil, ErrMissingCauseID
	}

	out, err := s.client.Query(ctx, s.queryInput(causeID))
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", s.config.TableName, err)
	}

	var rows []statRow
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &rows); err != nil {
		return nil, fmt.Errorf("decode %s items: %w", s.config.TableName, err)
	}

	stats := make([]models.CauseCompanyStat, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, models.NewCauseCompanyStat(
			causeID,
			row.CauseDesc,
			row.CompanyID,
			row.CompanyName,
			row.BoycottCount,
		))
	}

	// The key order is expected to already be count-descending; the sort keeps
	// the response ordered even when the table's sort key is not the count.
	slices.SortStableFunc(stats, func(a, b models.CauseCompanyStat) int {
		return cmp.Compare(b.BoycottCount, a.BoycottCount)
	})
	if len(stats) > int(s.config.Limit) {
		stats = stats[:s.config.Limit]
	}

	return stats, nil
}

func (s *Service) queryInput(causeID string) *dynamodb.QueryInput {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.config.TableName),
		KeyConditionExpression: aws.String(keyCondition),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: causeID},
		},
		ProjectionExpression: aws.String(projection),
		ScanIndexForward:     aws.Bool(false),
		Limit:                aws.Int32(s.config.Limit),
	}
	if s.config.IndexName != "" {
		input.IndexName = aws.String(s.config.IndexName)
	}
	return input
}
