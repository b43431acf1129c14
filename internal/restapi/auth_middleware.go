package restapi

import (
	"log/slog"
	"net/http"

	"github.com/kesslersoftware/top-companies-by-cause-lambda/internal/auth"
	"github.com/kesslersoftware/top-companies-by-cause-lambda/internal/logging"
)

// requireSubject verifies the bearer token and stores its subject in the request context.
func (api *RestAPI) requireSubject(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, err := api.verifier.SubjectFromRequest(r)
		if err != nil {
			logging.FromContext(r.Context()).Warn("rejected request",
				slog.String("reason", err.Error()),
				slog.String("path", r.URL.Path))
			api.unauthorizedResponse(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithSubject(r.Context(), subject)))
	})
}
