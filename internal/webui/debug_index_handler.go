package webui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"
)

//go:embed debug_index.html
var templateFS embed.FS

type debugData struct {
	Title string
	Pre   string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	content := spew.Sdump(data)
	w.Header().Set("Content-Type", "text/html")
	tmpl, err := template.ParseFS(templateFS, "debug_index.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dataStruct := debugData{
		Title: title,
		Pre:   content,
	}

	err = tmpl.Execute(w, dataStruct)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	switch dataType {
	case "config":
		cfg := webUI.Config
		if cfg.JWTSecret != "" {
			cfg.JWTSecret = "[redacted]"
		}
		data = cfg
		title = "Effective configuration"
	case "top_companies":
		causeID := r.URL.Query().Get("cause_id")
		if causeID == "" {
			data = map[string]string{"error": "add ?cause_id=<id> to the URL"}
			title = "Top companies - missing cause_id"
			break
		}
		stats, err := webUI.Stats.TopCompaniesByCause(r.Context(), causeID)
		if err != nil {
			data = map[string]string{"error": err.Error()}
		} else {
			data = stats
		}
		title = "Top companies for " + causeID
	default:
		data = map[string]string{
			"error": "Please use one of the following: config, top_companies.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}
