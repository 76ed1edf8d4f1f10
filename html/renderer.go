// Package html renders the documentation portal with html/template.
package html

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/fwojciec/unitdoc"
	"github.com/fwojciec/unitdoc/mermaid"
)

// Static asset names, relative to the output directory.
const (
	StylesheetName = "style.css"
	SearchName     = "search.js"
	IndexName      = "index.html"
)

//go:embed assets/style.css
var stylesheet []byte

//go:embed assets/search.js
var searchScript []byte

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("site").Funcs(template.FuncMap{
	"section": func(title, source string) diagram {
		return diagram{Title: title, Source: source}
	},
	"group": func(title string, items []*unitdoc.ComplexType) typeGroup {
		return typeGroup{Title: title, Items: items}
	},
}).ParseFS(templateFS, "templates/*.html"))

var _ unitdoc.SiteRenderer = (*Renderer)(nil)

// Site holds the strings printed on every page.
type Site struct {
	Title    string
	Subtitle string
	Version  string
}

// Renderer writes the HTML portal: a stylesheet, a search script, one page
// per unit and an index page.
type Renderer struct {
	Site Site
}

// NewRenderer creates a Renderer for the given site strings.
func NewRenderer(site Site) *Renderer {
	return &Renderer{Site: site}
}

type diagram struct {
	Title  string
	Source string
}

type typeGroup struct {
	Title string
	Items []*unitdoc.ComplexType
}

type pageData struct {
	Site  Site
	Units []*unitdoc.Unit

	Unit             *unitdoc.Unit
	DependencyGraph  string
	InheritanceGraph string
}

// RenderSite writes the portal for units through w. Units are listed in
// the sidebar in the order given.
func (r *Renderer) RenderSite(ctx context.Context, units []*unitdoc.Unit, w unitdoc.FileWriter) error {
	if err := w.WriteFile(ctx, StylesheetName, stylesheet); err != nil {
		return err
	}
	if err := w.WriteFile(ctx, SearchName, searchScript); err != nil {
		return err
	}

	for _, u := range units {
		if err := ctx.Err(); err != nil {
			return err
		}
		data, err := r.RenderUnit(u, units)
		if err != nil {
			return err
		}
		if err := w.WriteFile(ctx, PageName(u), data); err != nil {
			return err
		}
	}

	data, err := r.RenderIndex(units)
	if err != nil {
		return err
	}
	return w.WriteFile(ctx, IndexName, data)
}

// RenderUnit returns the page of one unit. units fills the sidebar.
func (r *Renderer) RenderUnit(u *unitdoc.Unit, units []*unitdoc.Unit) ([]byte, error) {
	return execute("unit", pageData{
		Site:             r.Site,
		Units:            units,
		Unit:             u,
		DependencyGraph:  mermaid.DependencyGraph(u),
		InheritanceGraph: mermaid.InheritanceGraph(u),
	})
}

// RenderIndex returns the index page.
func (r *Renderer) RenderIndex(units []*unitdoc.Unit) ([]byte, error) {
	return execute("index", pageData{Site: r.Site, Units: units})
}

// PageName returns the file name of a unit's page.
func PageName(u *unitdoc.Unit) string {
	return u.Name + ".html"
}

func execute(name string, data pageData) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("rendering %s page: %w", name, err)
	}
	return buf.Bytes(), nil
}
