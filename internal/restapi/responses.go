package restapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/kesslersoftware/top-companies-by-cause-lambda/internal/logging"
)

func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	setJSONResponseType(&w)
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.LogError(logging.FromContext(r.Context()), "failed to write response", err,
			slog.String("component", "http_server"))
	}
}

func (api *RestAPI) healthHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func setJSONResponseType(w *http.ResponseWriter) {
	(*w).Header().Set("Content-Type", "application/json")
}
