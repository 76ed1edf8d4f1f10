// Package markdown renders the flat Markdown reference document.
package markdown

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/fwojciec/unitdoc"
)

// Footer closes every reference document.
const Footer = "*Generated automatically by unitdoc.*"

var escaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	`*`, `\*`,
	`_`, `\_`,
	`[`, `\[`,
	`]`, `\]`,
	`<`, `\<`,
	`>`, `\>`,
	`#`, `\#`,
	`|`, `\|`,
)

// Escape backslash-escapes the characters Markdown would otherwise
// interpret inside a heading or link text.
func Escape(s string) string {
	return escaper.Replace(s)
}

var _ unitdoc.ReferenceRenderer = (*Renderer)(nil)

// Renderer writes the reference document.
type Renderer struct {
	// Title is the document heading.
	Title string

	// FileName is the name the document is written under.
	FileName string

	// PortalDir is the HTML output directory relative to the document.
	PortalDir string
}

// RenderReference writes the reference for units through w.
func (r *Renderer) RenderReference(ctx context.Context, units []*unitdoc.Unit, w unitdoc.FileWriter) error {
	return w.WriteFile(ctx, r.FileName, []byte(r.Render(units)))
}

// Render returns the reference document for units, listed in the order
// given.
func (r *Renderer) Render(units []*unitdoc.Unit) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", Escape(r.Title))
	fmt.Fprintf(&b, "This document provides a quick reference for all units. "+
		"For the full interactive documentation, visit the [HTML Documentation Portal](%s).\n\n",
		path.Join(r.PortalDir, "index.html"))
	fmt.Fprintf(&b, "## Units Overview (%d total)\n\n", len(units))

	for _, u := range units {
		fmt.Fprintf(&b, "### %s\n\n", Escape(u.Name))
		if len(u.Classes) > 0 {
			links := make([]string, 0, len(u.Classes))
			for _, c := range u.Classes {
				links = append(links, fmt.Sprintf("[%s](#%s)", Escape(c.Name), Anchor(c.Name)))
			}
			fmt.Fprintf(&b, "**Classes:** %s\n\n", strings.Join(links, ", "))
		}
		if len(u.Interfaces) > 0 {
			fmt.Fprintf(&b, "**Interfaces:** %s\n\n", names(u.Interfaces))
		}
		if len(u.Records) > 0 {
			fmt.Fprintf(&b, "**Records:** %s\n\n", names(u.Records))
		}
		b.WriteString("---\n\n")
	}

	b.WriteString("\n" + Footer + "\n")
	return b.String()
}

// Anchor returns the fragment identifier used to link a type name.
func Anchor(name string) string {
	return url.PathEscape(strings.ToLower(name))
}

func names(types []*unitdoc.ComplexType) string {
	out := make([]string, 0, len(types))
	for _, t := range types {
		out = append(out, Escape(t.Name))
	}
	return strings.Join(out, ", ")
}
