package webui

import (
	"log/slog"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/kesslersoftware/top-companies-by-cause-lambda/internal/app"
	"github.com/kesslersoftware/top-companies-by-cause-lambda/internal/appconf"
)

// WebUI serves debugging pages for local development.
type WebUI struct {
	*app.Application
}

// SetWebUIRoutes registers the debug pages. They bypass authentication, so they are
// only mounted in the development environment.
func (webUI *WebUI) SetWebUIRoutes(router *httprouter.Router) {
	if webUI.Config.Env != appconf.Development {
		return
	}
	webUI.logger().Warn("debug routes mounted without authentication",
		slog.String("path", "/debug/"),
		slog.String("env", webUI.Config.Env.String()))
	router.HandlerFunc(http.MethodGet, "/debug/", webUI.debugIndexHandler)
}

func (webUI *WebUI) logger() *slog.Logger {
	if webUI.Logger != nil {
		return webUI.Logger
	}
	return slog.Default()
}
