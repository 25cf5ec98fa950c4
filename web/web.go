// Package web holds the embedded HTML views. Rendering stays thin: the
// handlers decide what to show, the templates only lay it out.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded view templates.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}
