// Package etree builds unitdoc trees from XML documents using
// github.com/beevik/etree.
package etree

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/unitdoc"
)

var _ unitdoc.UnitParser = (*Parser)(nil)

// Parser reads unit XML documents.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseTree reads one XML document and returns it as a generic tree keyed by
// the root element tag. An empty document yields an empty tree.
func (p *Parser) ParseTree(r io.Reader) (unitdoc.Node, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, unitdoc.Errorf(unitdoc.EINVALID, "parsing XML: %v", err)
	}

	tree := unitdoc.Node{}
	if root := doc.Root(); root != nil {
		tree[root.Tag] = toNode(root)
	}
	return tree, nil
}

// ParseUnit reads the file at path and normalizes it into a Unit.
func (p *Parser) ParseUnit(ctx context.Context, path string) (*unitdoc.Unit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, unitdoc.Errorf(unitdoc.ENOTFOUND, "source file not found: %s", path)
		}
		return nil, err
	}
	defer f.Close()

	tree, err := p.ParseTree(f)
	if err != nil {
		return nil, err
	}

	u := unitdoc.Normalize(tree)
	if u == nil {
		return nil, unitdoc.Errorf(unitdoc.EINVALID, "no UNIT root element")
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// toNode merges the attributes and child elements of el into one Node.
// Attributes are stored first, so a child element sharing an attribute's
// name turns the entry into a sequence.
func toNode(el *etree.Element) unitdoc.Node {
	n := unitdoc.Node{}
	for _, attr := range el.Attr {
		n.Add(attr.Key, attr.Value)
	}
	for _, child := range el.ChildElements() {
		n.Add(child.Tag, toNode(child))
	}
	if text := strings.TrimSpace(el.Text()); text != "" {
		n.Add(unitdoc.TextKey, text)
	}
	return n
}
