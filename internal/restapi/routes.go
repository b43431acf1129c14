package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/kesslersoftware/top-companies-by-cause-lambda/internal/webui"
)

const topCompaniesPath = "/causes/:cause_id/top-companies"

// SetRoutes registers the API endpoints on router.
func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	topCompanies := api.requireSubject(api.rateLimiter.Handler(http.HandlerFunc(api.topCompaniesHandler)))

	router.Handler(http.MethodGet, topCompaniesPath, topCompanies)
	router.HandlerFunc(http.MethodGet, "/healthz", api.healthHandler)
}

// Routes returns the fully wrapped handler served by cmd/api.
func (api *RestAPI) Routes() http.Handler {
	router := httprouter.New()
	// CORS preflight is answered by the cors middleware.
	router.HandleOPTIONS = false
	api.SetRoutes(router)

	webUI := &webui.WebUI{Application: api.Application}
	webUI.SetWebUIRoutes(router)

	var handler http.Handler = router
	handler = CompressionMiddleware(handler)
	handler = api.WithSecurityHeaders(handler)
	handler = NewRequestLoggingMiddleware(api.logger())(handler)

	return handler
}
