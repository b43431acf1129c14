package appconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestEnvFlagToEnvironment(t *testing.T) {
	assert.Equal(t, Test, EnvFlagToEnvironment("test"))
	assert.Equal(t, Production, EnvFlagToEnvironment("Production"))
	assert.Equal(t, Production, EnvFlagToEnvironment("prod"))
	assert.Equal(t, Development, EnvFlagToEnvironment("development"))
	assert.Equal(t, Development, EnvFlagToEnvironment("dev"))
	assert.Equal(t, Production, EnvFlagToEnvironment("staging"))
	assert.Equal(t, Production, EnvFlagToEnvironment(""))
	assert.Equal(t, "production", Production.String())
	assert.Equal(t, "development", Development.String())

	var zero Config
	assert.Equal(t, Production, zero.Env)
}

func TestDefaultIsProduction(t *testing.T) {
	assert.Equal(t, Production, Default().Env)

	cfg, err := FromEnv(envMap(nil))
	require.NoError(t, err)
	assert.Equal(t, Production, cfg.Env)
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(envMap(nil))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "cause_company_stats", cfg.TableName)
	assert.Empty(t, cfg.IndexName)
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		"APP_ENV":           "production",
		"PORT":              "8080",
		"RATE_LIMIT":        "25",
		"LOG_LEVEL":         "debug",
		"STATS_TABLE_NAME":  "stats_v2",
		"STATS_INDEX_NAME":  "cause_id-boycott_count-index",
		"AWS_REGION":        "us-west-2",
		"DYNAMODB_ENDPOINT": "http://localhost:8000",
		"JWT_SECRET":        "s3cret",
	}))
	require.NoError(t, err)

	assert.Equal(t, Production, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 25, cfg.RateLimit)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "stats_v2", cfg.TableName)
	assert.Equal(t, "cause_id-boycott_count-index", cfg.IndexName)
	assert.Equal(t, "us-west-2", cfg.AWSRegion)
	assert.Equal(t, "http://localhost:8000", cfg.DynamoEndpoint)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
}

func TestFromEnvInvalidNumbersKeepDefaults(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		"PORT":       "not-a-port",
		"RATE_LIMIT": "ten",
	}))
	require.Error(t, err)

	assert.Contains(t, err.Error(), "PORT")
	assert.Contains(t, err.Error(), "RATE_LIMIT")
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultRateLimit, cfg.RateLimit)
}
