package selector

import (
	"slices"

	"github.com/cespare/xxhash/v2"
)

// scopeSet is a canonical set of scope labels: sorted, deduplicated, nil
// when empty. nil means "no filtering on this axis". Sets must be built
// through newScopeSet so that equality and hashing do not depend on the
// order or duplication of the caller's input.
type scopeSet []string

func newScopeSet(scopes []string) scopeSet {
	if len(scopes) == 0 {
		return nil
	}
	s := slices.Clone(scopes)
	slices.Sort(s)
	return slices.Compact(s)
}

func (s scopeSet) contains(scope string) bool {
	_, ok := slices.BinarySearch(s, scope)
	return ok
}

func (s scopeSet) equal(other scopeSet) bool {
	return slices.Equal(s, other)
}

// hashInto folds the set into a running digest. The leading separator
// keeps adjacent sets from running together ({"a"},{} vs {},{"a"}).
func (s scopeSet) hashInto(h *xxhash.Digest) {
	h.WriteString("|")
	for _, scope := range s {
		h.WriteString(scope)
		h.WriteString("\x1f")
	}
}
