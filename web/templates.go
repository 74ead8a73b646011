package web

import (
	"embed"
	"html/template"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

var functions = template.FuncMap{
	"formatDate": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("02 Jan 2006, 15:04")
	},
	"formatDueDate": func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format("02 Jan 2006, 15:04")
	},
	"dueDateInput": func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format("2006-01-02T15:04")
	},
}

// Templates parses the embedded page templates. Embedding keeps the binary
// self-contained and lets tests render without caring about the working
// directory.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(functions).ParseFS(templateFS, "templates/*.html"))
}
