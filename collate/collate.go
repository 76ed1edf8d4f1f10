// Package collate orders unit names with golang.org/x/text/collate.
package collate

import (
	"github.com/fwojciec/unitdoc"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var _ unitdoc.Collator = (*Collator)(nil)

// Collator compares strings using the collation rules of a locale.
// It is not safe for concurrent use.
type Collator struct {
	c *collate.Collator
}

// New returns a Collator for the BCP 47 locale tag. An empty tag selects
// the root collation order.
func New(locale string) (*Collator, error) {
	tag := language.Und
	if locale != "" {
		var err error
		tag, err = language.Parse(locale)
		if err != nil {
			return nil, unitdoc.Errorf(unitdoc.EINVALID, "invalid locale %q: %v", locale, err)
		}
	}
	return &Collator{c: collate.New(tag)}, nil
}

// CompareString returns -1, 0 or 1 depending on whether a sorts before,
// equal to or after b.
func (c *Collator) CompareString(a, b string) int {
	return c.c.CompareString(a, b)
}
