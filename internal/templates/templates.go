package templates

import (
	"embed"
	"html/template"
	"net/http"

	"clinicrecords/internal/logger"
)

//go:embed pages/*.html
var pagesFS embed.FS

var pages = template.Must(template.ParseFS(pagesFS, "pages/*.html"))

// Render writes the named page to the response. Render errors after the
// first byte cannot be recovered; they are logged and the response is
// left as-is.
func Render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		logger.Log.Errorw("template render failed", "template", name, "error", err)
	}
}
