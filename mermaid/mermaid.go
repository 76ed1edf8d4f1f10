// Package mermaid builds Mermaid diagram sources for unit pages.
package mermaid

import (
	"fmt"
	"strings"

	"github.com/fwojciec/unitdoc"
)

// SelfStyle is applied to the unit's own node in the dependency graph.
const SelfStyle = "fill:#f9f,stroke:#333,stroke-width:2px,color:#000"

var labelReplacer = strings.NewReplacer(`"`, "#quot;")

// NodeID converts a name into a Mermaid node identifier by replacing every
// character outside [A-Za-z0-9_] with an underscore. Distinct names may map
// to the same identifier.
func NodeID(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}

func label(name string) string {
	return `["` + labelReplacer.Replace(name) + `"]`
}

// DependencyGraph returns a top-down flowchart linking the unit to every
// unit it uses, or "" when the unit uses nothing. Every dependency node is
// clickable and points at that unit's page.
func DependencyGraph(u *unitdoc.Unit) string {
	if len(u.Uses) == 0 {
		return ""
	}

	var b strings.Builder
	self := NodeID(u.Name)
	b.WriteString("graph TD\n")
	fmt.Fprintf(&b, "%s%s\n", self, label(u.Name))
	fmt.Fprintf(&b, "style %s %s\n", self, SelfStyle)
	for _, dep := range u.Uses {
		id := NodeID(dep)
		fmt.Fprintf(&b, "%s --> %s%s\n", self, id, label(dep))
		fmt.Fprintf(&b, "click %s %q %q\n", id, dep+".html", "Go to "+dep)
	}
	return b.String()
}

// InheritanceGraph returns a class diagram of the unit's classes and
// interfaces with an edge from each type to its ancestor, or "" when the
// unit declares neither.
func InheritanceGraph(u *unitdoc.Unit) string {
	if len(u.Classes) == 0 && len(u.Interfaces) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("classDiagram\n")
	for _, c := range u.Classes {
		writeClass(&b, c, false)
	}
	for _, i := range u.Interfaces {
		writeClass(&b, i, true)
	}
	return b.String()
}

func writeClass(b *strings.Builder, t *unitdoc.ComplexType, iface bool) {
	id := NodeID(t.Name)
	fmt.Fprintf(b, "class %s%s\n", id, label(t.Name))
	if iface {
		fmt.Fprintf(b, "<<interface>> %s\n", id)
	}
	if t.Ancestor != "" {
		fmt.Fprintf(b, "%s%s <|-- %s\n", NodeID(t.Ancestor), label(t.Ancestor), id)
	}
}
