package unitdoc

import (
	"sort"
	"strings"
)

// Collator compares strings according to locale-specific rules.
type Collator interface {
	// CompareString returns -1, 0 or 1 depending on whether a sorts before,
	// equal to, or after b.
	CompareString(a, b string) int
}

// Aggregate removes units whose name was already seen and sorts the
// remainder by name.
//
// Precedence follows the input order: the first unit with a given name is
// kept and later ones are dropped, so reordering the input can change which
// unit survives. The number of dropped units is returned for reporting only.
//
// Names are ordered with c. Names c considers equal fall back to byte order,
// keeping the result strictly ascending. A nil c sorts by byte order.
func Aggregate(units []*Unit, c Collator) (unique []*Unit, dropped int) {
	seen := make(map[string]bool, len(units))
	unique = make([]*Unit, 0, len(units))
	for _, u := range units {
		if seen[u.Name] {
			dropped++
			continue
		}
		seen[u.Name] = true
		unique = append(unique, u)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return compareNames(c, unique[i].Name, unique[j].Name) < 0
	})

	return unique, dropped
}

func compareNames(c Collator, a, b string) int {
	if c != nil {
		if cmp := c.CompareString(a, b); cmp != 0 {
			return cmp
		}
	}
	return strings.Compare(a, b)
}
