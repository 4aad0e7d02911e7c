package selector

import (
	"github.com/cespare/xxhash/v2"

	goaether "github.com/albertocavalcante/go-aether"
)

var _ goaether.HashableSelector = (*StaticSelector)(nil)

// StaticSelector selects or rejects every dependency unconditionally.
// Useful as a neutral element in conjunctions and for collection modes
// that take the whole graph or nothing.
//
// Reference: https://github.com/apache/maven-resolver/blob/maven-resolver-1.0.x/maven-resolver-util/src/main/java/org/eclipse/aether/util/graph/selector/StaticDependencySelector.java
type StaticSelector struct {
	selected bool
}

// NewStaticSelector creates a selector with the given fixed verdict.
func NewStaticSelector(selected bool) *StaticSelector {
	return &StaticSelector{selected: selected}
}

// SelectDependency returns the fixed verdict.
func (s *StaticSelector) SelectDependency(dep goaether.Dependency) bool {
	return s.selected
}

// DeriveChildSelector returns the receiver; a static verdict is its own
// fixed point at every depth.
func (s *StaticSelector) DeriveChildSelector(ctx *goaether.CollectionContext) goaether.DependencySelector {
	return s
}

// Equal reports structural equality.
func (s *StaticSelector) Equal(other goaether.DependencySelector) bool {
	o, ok := other.(*StaticSelector)
	return ok && s.selected == o.selected
}

// Hash returns a stable hash consistent with Equal.
func (s *StaticSelector) Hash() uint64 {
	if s.selected {
		return xxhash.Sum64String("static:true")
	}
	return xxhash.Sum64String("static:false")
}
