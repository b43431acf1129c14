package appconf

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type Environment int

// Production is the zero value: a missing or unknown environment never enables development-only routes.
const (
	Production Environment = iota
	Development
	Test
)

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Development:
		return "development"
	default:
		return "production"
	}
}

// EnvFlagToEnvironment maps an env flag value to an Environment. Unknown values are production.
func EnvFlagToEnvironment(env string) Environment {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "test":
		return Test
	case "development", "dev":
		return Development
	default:
		return Production
	}
}

const (
	DefaultTableName = "cause_company_stats"
	DefaultPort      = 4000
	DefaultRateLimit = 10
	DefaultLogLevel  = "info"
)

// Config holds all the configuration settings for the Application.
type Config struct {
	Env       Environment
	Port      int
	LogLevel  string
	RateLimit int

	// TableName is the pre-aggregated statistics table.
	TableName string
	// IndexName is an optional secondary index sorted by boycott_count.
	IndexName string

	AWSRegion string
	// DynamoEndpoint overrides the DynamoDB endpoint, e.g. DynamoDB Local.
	DynamoEndpoint string

	// JWTSecret verifies bearer tokens on the local HTTP server.
	JWTSecret string
}

// Default returns a Config populated with the defaults used when nothing is set.
func Default() Config {
	return Config{
		Env:       Production,
		Port:      DefaultPort,
		LogLevel:  DefaultLogLevel,
		RateLimit: DefaultRateLimit,
		TableName: DefaultTableName,
	}
}

// FromEnv builds a Config from environment lookups. Values that fail to parse keep
// their default, and every parse failure is reported in the returned error.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()
	var errs []error

	if v := getenv("APP_ENV"); v != "" {
		cfg.Env = EnvFlagToEnvironment(v)
	}
	if v := getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			errs = append(errs, fmt.Errorf("invalid PORT %q", v))
		} else {
			cfg.Port = port
		}
	}
	if v := getenv("RATE_LIMIT"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid RATE_LIMIT %q: %w", v, err))
		} else {
			cfg.RateLimit = limit
		}
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv("STATS_TABLE_NAME"); v != "" {
		cfg.TableName = v
	}
	cfg.IndexName = getenv("STATS_INDEX_NAME")
	cfg.AWSRegion = getenv("AWS_REGION")
	cfg.DynamoEndpoint = getenv("DYNAMODB_ENDPOINT")
	cfg.JWTSecret = getenv("JWT_SECRET")

	return cfg, errors.Join(errs...)
}
