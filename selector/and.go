package selector

import (
	goaether "github.com/albertocavalcante/go-aether"
)

var _ goaether.HashableSelector = (*AndSelector)(nil)

// AndSelector selects a dependency only if all constituent selectors
// select it. Derivation derives every constituent and returns the
// receiver unchanged when each constituent derived to itself, so the
// conjunction preserves the structural sharing of its parts.
//
// Reference: https://github.com/apache/maven-resolver/blob/maven-resolver-1.0.x/maven-resolver-util/src/main/java/org/eclipse/aether/util/graph/selector/AndDependencySelector.java
type AndSelector struct {
	selectors []goaether.DependencySelector
}

// NewAndSelector creates the conjunction of the given selectors. Nested
// AndSelectors are flattened and nil entries skipped. With no selectors
// the result selects everything; with exactly one it is that selector
// itself.
func NewAndSelector(selectors ...goaether.DependencySelector) goaether.DependencySelector {
	flat := make([]goaether.DependencySelector, 0, len(selectors))
	for _, sel := range selectors {
		if sel == nil {
			continue
		}
		if and, ok := sel.(*AndSelector); ok {
			flat = append(flat, and.selectors...)
			continue
		}
		flat = append(flat, sel)
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return &AndSelector{selectors: flat}
}

// SelectDependency reports whether every constituent selects dep.
func (s *AndSelector) SelectDependency(dep goaether.Dependency) bool {
	for _, sel := range s.selectors {
		if !sel.SelectDependency(dep) {
			return false
		}
	}
	return true
}

// DeriveChildSelector derives each constituent for the next recursion
// level. The child slice is only allocated once a constituent actually
// changes; until then the receiver's slice is reused.
func (s *AndSelector) DeriveChildSelector(ctx *goaether.CollectionContext) goaether.DependencySelector {
	var children []goaether.DependencySelector
	for i, sel := range s.selectors {
		child := sel.DeriveChildSelector(ctx)
		if children != nil {
			children = append(children, child)
		} else if child != sel {
			children = make([]goaether.DependencySelector, 0, len(s.selectors))
			children = append(children, s.selectors[:i]...)
			children = append(children, child)
		}
	}
	if children == nil {
		return s
	}
	return &AndSelector{selectors: children}
}

// Equal reports structural equality: same constituents in the same
// order. Constituents that implement HashableSelector compare
// structurally, others by identity.
func (s *AndSelector) Equal(other goaether.DependencySelector) bool {
	o, ok := other.(*AndSelector)
	if !ok || len(s.selectors) != len(o.selectors) {
		return false
	}
	for i, sel := range s.selectors {
		if h, ok := sel.(goaether.HashableSelector); ok {
			if !h.Equal(o.selectors[i]) {
				return false
			}
		} else if sel != o.selectors[i] {
			return false
		}
	}
	return true
}

// Hash returns a stable hash consistent with Equal. Constituents that do
// not implement HashableSelector contribute a fixed marker, so two
// conjunctions differing only in such constituents may collide; Equal
// still tells them apart.
func (s *AndSelector) Hash() uint64 {
	h := uint64(17)
	for _, sel := range s.selectors {
		h *= 31
		if hs, ok := sel.(goaether.HashableSelector); ok {
			h += hs.Hash()
		} else {
			h++
		}
	}
	return h
}
