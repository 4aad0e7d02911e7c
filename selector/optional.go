package selector

import (
	"strconv"

	"github.com/cespare/xxhash/v2"

	goaether "github.com/albertocavalcante/go-aether"
)

var _ goaether.HashableSelector = (*OptionalSelector)(nil)

// OptionalSelector excludes optional transitive dependencies. Like the
// scope filter, direct dependencies are exempt: optionality only matters
// from the second derivation onward.
//
// Reference: https://github.com/apache/maven-resolver/blob/maven-resolver-1.0.x/maven-resolver-util/src/main/java/org/eclipse/aether/util/graph/selector/OptionalDependencySelector.java
type OptionalSelector struct {
	depth int
}

// NewOptionalSelector creates a selector at depth 0.
func NewOptionalSelector() *OptionalSelector {
	return &OptionalSelector{}
}

// SelectDependency reports whether the dependency passes the filter.
func (s *OptionalSelector) SelectDependency(dep goaether.Dependency) bool {
	return s.depth < 2 || !dep.Optional
}

// DeriveChildSelector returns the selector for the next recursion level,
// reaching its fixed point at depth 2. ctx is never consulted.
func (s *OptionalSelector) DeriveChildSelector(ctx *goaether.CollectionContext) goaether.DependencySelector {
	if s.depth >= 2 {
		return s
	}
	return &OptionalSelector{depth: s.depth + 1}
}

// Equal reports structural equality.
func (s *OptionalSelector) Equal(other goaether.DependencySelector) bool {
	o, ok := other.(*OptionalSelector)
	return ok && s.depth == o.depth
}

// Hash returns a stable hash consistent with Equal.
func (s *OptionalSelector) Hash() uint64 {
	return xxhash.Sum64String("optional:" + strconv.Itoa(s.depth))
}
