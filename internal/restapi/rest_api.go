package restapi

import (
	"log/slog"
	"time"

	"github.com/kesslersoftware/top-companies-by-cause-lambda/internal/app"
	"github.com/kesslersoftware/top-companies-by-cause-lambda/internal/auth"
)

// RestAPI serves the top companies flow over net/http for local development.
type RestAPI struct {
	*app.Application
	verifier    *auth.Verifier
	rateLimiter *RateLimitMiddleware
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(application *app.Application) *RestAPI {
	return &RestAPI{
		Application: application,
		verifier:    auth.NewVerifier(application.Config.JWTSecret),
		rateLimiter: NewRateLimitMiddleware(application.Config.RateLimit, time.Second),
	}
}

// Close stops background work owned by the API. It is safe to call more than once.
func (api *RestAPI) Close() error {
	if api.rateLimiter != nil {
		api.rateLimiter.Stop()
	}
	return nil
}

func (api *RestAPI) logger() *slog.Logger {
	if api.Logger != nil {
		return api.Logger
	}
	return slog.Default()
}
