package restapi

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/kesslersoftware/top-companies-by-cause-lambda/internal/logging"
	"github.com/kesslersoftware/top-companies-by-cause-lambda/internal/models"
)

// unauthorizedResponse sends the 401 body used by every entrypoint
func (api *RestAPI) unauthorizedResponse(w http.ResponseWriter, r *http.Request) {
	writeJSONError(w, r, http.StatusUnauthorized, models.NewUnauthorizedMessage())
}

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(logging.FromContext(r.Context()), "failed to encode response", err,
		slog.String("path", r.URL.Path),
		slog.String("component", "http_server"))

	body := models.NewServerErrorMessage(fmt.Errorf("failed to encode response: %w", err))
	writeJSONError(w, r, http.StatusInternalServerError, body)
}

func writeJSONError(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.LogError(logging.FromContext(r.Context()), "failed to encode error response", err,
			slog.Int("status", status))
	}
}
