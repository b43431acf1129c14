package causestats

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// QueryAPI is the subset of the DynamoDB client used by the Service.
type QueryAPI interface {
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

var _ QueryAPI = (*dynamodb.Client)(nil)

// AWSConfig holds the settings needed to reach DynamoDB.
type AWSConfig struct {
	// Region is the AWS region. Empty uses the default credential chain's region.
	Region string
	// Endpoint is an optional custom endpoint (DynamoDB Local, LocalStack).
	Endpoint string
}

// NewDynamoClient loads the default AWS configuration and returns a DynamoDB client.
// The client is safe for concurrent use and is meant to be built once per process.
func NewDynamoClient(ctx context.Context, cfg AWSConfig) (*dynamodb.Client, error) {
	var opts []func(*config.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, config.WithRegion(cfg.Region))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var ddbOpts []func(*dynamodb.Options)
	if cfg.Endpoint != "" {
		ddbOpts = append(ddbOpts, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		})
	}

	return dynamodb.NewFromConfig(awsCfg, ddbOpts...), nil
}
