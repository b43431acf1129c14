// Package gateway adapts API Gateway REST proxy events to the top companies request flow.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"

	"github.com/kesslersoftware/top-companies-by-cause-lambda/internal/app"
	"github.com/kesslersoftware/top-companies-by-cause-lambda/internal/auth"
	"github.com/kesslersoftware/top-companies-by-cause-lambda/internal/logging"
	"github.com/kesslersoftware/top-companies-by-cause-lambda/internal/models"
	"github.com/kesslersoftware/top-companies-by-cause-lambda/internal/utils"
)

type Handler struct {
	app *app.Application
}

func New(application *app.Application) *Handler {
	return &Handler{app: application}
}

// Handle answers one API Gateway request. Every outcome, including store
// failures, is expressed as a proxy response; the returned error is always nil.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	start := time.Now()

	logger := h.logger()
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		logger = logger.With(slog.String("aws_request_id", lc.AwsRequestID))
	}
	ctx = logging.WithLogger(ctx, logger)

	subject := auth.SubjectFromRestEvent(req)
	causeID := utils.PathParameter(req.PathParameters, "cause_id")

	result := h.app.TopCompanies(ctx, subject, causeID)
	resp := h.response(logger, result.Status, result.Body)

	logging.LogOperation(logger, "top_companies_request",
		slog.String("path", req.Path),
		slog.String("cause_id", causeID),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
		slog.String("component", "lambda_gateway"))

	return resp, nil
}

func (h *Handler) logger() *slog.Logger {
	if h.app.Logger != nil {
		return h.app.Logger
	}
	return slog.Default()
}

func (h *Handler) response(logger *slog.Logger, status int, body any) events.APIGatewayProxyResponse {
	data, err := json.Marshal(body)
	if err != nil {
		logging.LogError(logger, "failed to encode response body", err,
			slog.Int("status", status),
			slog.String("component", "lambda_gateway"))

		status = http.StatusInternalServerError
		data, _ = json.Marshal(models.NewServerErrorMessage(fmt.Errorf("failed to encode response: %w", err)))
	}

	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(data),
	}
}
