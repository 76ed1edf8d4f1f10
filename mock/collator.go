package mock

import "github.com/fwojciec/unitdoc"

var _ unitdoc.Collator = (*Collator)(nil)

// Collator is a mock implementation of unitdoc.Collator.
type Collator struct {
	CompareStringFn func(a, b string) int
}

func (c *Collator) CompareString(a, b string) int {
	return c.CompareStringFn(a, b)
}
