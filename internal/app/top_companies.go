package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/aws/smithy-go"

	"github.com/kesslersoftware/top-companies-by-cause-lambda/internal/logging"
	"github.com/kesslersoftware/top-companies-by-cause-lambda/internal/models"
	"github.com/kesslersoftware/top-companies-by-cause-lambda/internal/utils"
)

// Result is a transport-neutral response: a status code and a JSON-serializable body.
type Result struct {
	Status int
	Body   any
}

// TopCompanies runs the request flow shared by every entrypoint:
// subject check, cause_id check, lookup, response shaping.
func (app *Application) TopCompanies(ctx context.Context, subject, causeID string) Result {
	logger := logging.FromContext(ctx)

	if subject == "" {
		return Result{Status: http.StatusUnauthorized, Body: models.NewUnauthorizedMessage()}
	}

	if err := utils.ValidateRequiredParam("cause_id", causeID); err != nil {
		return Result{Status: http.StatusBadRequest, Body: models.NewBadRequestMessage(err.Error())}
	}

	start := time.Now()
	stats, err := app.Stats.TopCompaniesByCause(ctx, causeID)
	if err != nil {
		attrs := []slog.Attr{
			slog.String("subject", subject),
			slog.String("cause_id", causeID),
			slog.String("component", "top_companies"),
		}
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			attrs = append(attrs, slog.String("aws_error_code", apiErr.ErrorCode()))
		}
		logging.LogError(logger, "failed to fetch top companies", err, attrs...)
		return Result{Status: http.StatusInternalServerError, Body: models.NewServerErrorMessage(err)}
	}

	logging.LogOperation(logger, "top_companies_fetched",
		slog.String("cause_id", causeID),
		slog.Int("count", len(stats)),
		slog.Duration("duration", time.Since(start)))

	return Result{Status: http.StatusOK, Body: stats}
}
