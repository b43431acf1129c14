package restapi

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/kesslersoftware/top-companies-by-cause-lambda/internal/app"
	"github.com/kesslersoftware/top-companies-by-cause-lambda/internal/appconf"
	"github.com/kesslersoftware/top-companies-by-cause-lambda/internal/auth"
	"github.com/kesslersoftware/top-companies-by-cause-lambda/internal/logging"
	"github.com/kesslersoftware/top-companies-by-cause-lambda/internal/models"
)

const (
	testSecret  = "test-secret"
	testSubject = "11111111-2222-3333-4444-555555555555"
)

type stubStats struct {
	stats []models.CauseCompanyStat
	err   error
	calls []string
}

func (s *stubStats) TopCompaniesByCause(ctx context.Context, causeID string) ([]models.CauseCompanyStat, error) {
	s.calls = append(s.calls, causeID)
	return s.stats, s.err
}

// createTestApi creates a RestAPI backed by stats, logging into the returned buffer.
func createTestApi(t *testing.T, stats app.StatsLookup, rateLimit int) (*RestAPI, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer

	application := &app.Application{
		Config: appconf.Config{
			Env:       appconf.EnvFlagToEnvironment("test"),
			JWTSecret: testSecret,
			RateLimit: rateLimit,
		},
		Logger: logging.NewStructuredLogger(&buf, slog.LevelInfo),
		Stats:  stats,
	}

	api := NewRestAPI(application)
	t.Cleanup(func() {
		logging.SafeCloseWithLogging(api, application.Logger, "close_test_api")
	})
	return api, &buf
}

func bearerToken(t *testing.T, subject string) string {
	t.Helper()
	token, err := auth.NewVerifier(testSecret).SignSubject(subject, jwt.RegisteredClaims{})
	require.NoError(t, err)
	return token
}

// serveApiAndRetrieveEndpoint runs the full middleware stack behind a test server and
// returns the response with its body read.
func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint, token string) (*http.Response, []byte) {
	t.Helper()
	server := httptest.NewServer(api.Routes())
	defer server.Close()

	req, err := http.NewRequest(http.MethodGet, server.URL+endpoint, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, body
}
