package web

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed templates/*.html
var templateFiles embed.FS

// templateSet holds the parsed page templates. They are embedded and parsed
// once at startup; a parse error is a programming error and panics.
type templateSet struct {
	t *template.Template
}

func newTemplateSet() *templateSet {
	return &templateSet{
		t: template.Must(template.ParseFS(templateFiles, "templates/*.html")),
	}
}

// render writes the named template with the given status code. Render
// errors after the header is written can only be logged.
func (ts *templateSet) render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := ts.t.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("template render error", "template", name, "error", err)
	}
}
