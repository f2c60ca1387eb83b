package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"TechDashboard/internal/domain"
	"TechDashboard/internal/ports"
)

//go:embed templates/*.html
var templateFS embed.FS

// TemplateRenderer renders the index page from the embedded template.
type TemplateRenderer struct {
	tmpl *template.Template
}

var _ ports.Renderer = (*TemplateRenderer)(nil)

// NewTemplateRenderer parses the embedded templates.
func NewTemplateRenderer() (*TemplateRenderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &TemplateRenderer{tmpl: tmpl}, nil
}

// Render executes index.html with the assembled page.
func (r *TemplateRenderer) Render(w io.Writer, page domain.Page) error {
	if err := r.tmpl.ExecuteTemplate(w, "index.html", page); err != nil {
		return fmt.Errorf("render index: %w", err)
	}
	return nil
}
