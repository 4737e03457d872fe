package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"ia-server/internal/domain/entity"
)

//go:embed templates/*.html
var templatesFS embed.FS

// FormPage is the data behind GET and POST /ui.
type FormPage struct {
	Question   string
	Answer     string
	Error      string
	DurationMs int64
}

type DashboardPage struct {
	Total    int
	Capacity int
	Entries  []entity.ActivityEntry
}

type Renderer struct {
	form      *template.Template
	dashboard *template.Template
	iface     []byte
}

func New() (*Renderer, error) {
	form, err := template.ParseFS(templatesFS, "templates/form.html")
	if err != nil {
		return nil, fmt.Errorf("parse form template: %w", err)
	}

	dashboard, err := template.ParseFS(templatesFS, "templates/dashboard.html")
	if err != nil {
		return nil, fmt.Errorf("parse dashboard template: %w", err)
	}

	iface, err := templatesFS.ReadFile("templates/interface.html")
	if err != nil {
		return nil, fmt.Errorf("read interface page: %w", err)
	}

	return &Renderer{form: form, dashboard: dashboard, iface: iface}, nil
}

func (r *Renderer) Form(w io.Writer, page FormPage) error {
	return r.form.Execute(w, page)
}

func (r *Renderer) Dashboard(w io.Writer, entries []entity.ActivityEntry, capacity int) error {
	return r.dashboard.Execute(w, DashboardPage{
		Total:    len(entries),
		Capacity: capacity,
		Entries:  entries,
	})
}

// Interface returns the static page that talks to POST /perguntar with fetch.
func (r *Renderer) Interface() []byte {
	return r.iface
}
