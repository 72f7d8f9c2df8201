// Package views renders the site's HTML from embedded templates.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"portfolio/content"
	"portfolio/services"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page templates rendered inside the layout.
const (
	HomeTemplate        = "home.html"
	StaticTemplate      = "static.html"
	ProjectsTemplate    = "projects.html"
	BlogTemplate        = "blog.html"
	InfographicTemplate = "infographic.html"
	NotFoundTemplate    = "notfound.html"
)

var pageTemplates = []string{
	HomeTemplate,
	StaticTemplate,
	ProjectsTemplate,
	BlogTemplate,
	InfographicTemplate,
	NotFoundTemplate,
}

var funcs = template.FuncMap{
	// md renders trusted site copy, which uses Markdown emphasis.
	"md": func(s string) template.HTML {
		return services.RenderMarkdown(s)
	},
	"join": strings.Join,
}

// Renderer holds one parsed template set per page template.
type Renderer struct {
	pages    map[string]*template.Template
	partials *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	partials, err := template.New("partials").Funcs(funcs).ParseFS(templateFS, "templates/partials.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse partials: %w", err)
	}
	r := &Renderer{pages: map[string]*template.Template{}, partials: partials}
	for _, name := range pageTemplates {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html", "templates/partials.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render writes a full page.
func (r *Renderer) Render(w io.Writer, name string, data interface{}) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

// Slot renders the result area of one action.
func (r *Renderer) Slot(v SlotView) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.partials.ExecuteTemplate(&buf, "slot", v); err != nil {
		return "", fmt.Errorf("failed to render slot: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// Static returns the embedded static assets.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

func domID(parts ...string) string {
	var b strings.Builder
	for i, p := range parts {
		if i > 0 {
			b.WriteByte('-')
		}
		for _, r := range strings.ToLower(p) {
			switch {
			case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
				b.WriteRune(r)
			default:
				b.WriteByte('-')
			}
		}
	}
	return b.String()
}

// Layout is the chrome shared by every page.
type Layout struct {
	Title  string
	Nav    []content.Link
	Active string
}

// NewLayout titles a page and marks the active navigation link.
func NewLayout(title, active string) Layout {
	if title == "" {
		title = content.SiteTitle
	} else {
		title = title + " | " + content.SiteTitle
	}
	return Layout{Title: title, Nav: content.Navigation(), Active: active}
}
