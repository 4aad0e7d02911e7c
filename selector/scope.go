package selector

import (
	"strconv"

	"github.com/cespare/xxhash/v2"

	goaether "github.com/albertocavalcante/go-aether"
)

// Compile-time interface compliance checks
var (
	_ goaether.DependencySelector = (*ScopeSelector)(nil)
	_ goaether.HashableSelector   = (*ScopeSelector)(nil)
)

// ScopeSelector filters transitive dependencies based on their scope.
// Direct dependencies are always included regardless of their scope:
// both the root-level selector and the selector handed to direct
// dependencies select everything, and filtering takes effect from the
// second derivation onward. The filter does not assume any relationships
// between the scopes; in particular it is not aware of scopes that
// logically include other scopes.
//
// Reference: https://github.com/apache/maven-resolver/blob/maven-resolver-1.0.x/maven-resolver-util/src/main/java/org/eclipse/aether/util/graph/selector/ScopeDependencySelector.java
type ScopeSelector struct {
	depth    int
	included scopeSet // nil includes any scope
	excluded scopeSet // nil excludes no scope
}

// NewScopeSelector creates a selector at depth 0 using the specified
// includes and excludes. Either slice may be nil or empty: an empty
// include set includes any scope, an empty exclude set excludes no
// scope. Normalization happens here so that independently constructed
// selectors compare equal regardless of empty-vs-nil variance and input
// order.
func NewScopeSelector(included, excluded []string) *ScopeSelector {
	return &ScopeSelector{
		included: newScopeSet(included),
		excluded: newScopeSet(excluded),
	}
}

// ExcludeScopes creates a selector at depth 0 that includes any scope
// except the given ones.
func ExcludeScopes(excluded ...string) *ScopeSelector {
	return NewScopeSelector(nil, excluded)
}

// SelectDependency reports whether the dependency passes the scope
// filter. Depth < 2 means a direct dependency, which is always selected.
func (s *ScopeSelector) SelectDependency(dep goaether.Dependency) bool {
	if s.depth < 2 {
		return true
	}
	return (s.included == nil || s.included.contains(dep.Scope)) &&
		(s.excluded == nil || !s.excluded.contains(dep.Scope))
}

// DeriveChildSelector returns the selector for the next recursion level.
// The first derivation is for direct dependencies, successive ones for
// transitive dependencies; once depth reaches 2 the selector is its own
// fixed point and the receiver is returned unchanged. Only the depth
// counter drives the outcome; ctx is never consulted.
func (s *ScopeSelector) DeriveChildSelector(ctx *goaether.CollectionContext) goaether.DependencySelector {
	if s.depth >= 2 {
		return s
	}
	return &ScopeSelector{depth: s.depth + 1, included: s.included, excluded: s.excluded}
}

// Equal reports structural equality: same depth and the same include and
// exclude sets.
func (s *ScopeSelector) Equal(other goaether.DependencySelector) bool {
	o, ok := other.(*ScopeSelector)
	if !ok {
		return false
	}
	return s.depth == o.depth && s.included.equal(o.included) && s.excluded.equal(o.excluded)
}

// Hash returns a stable hash consistent with Equal.
func (s *ScopeSelector) Hash() uint64 {
	h := xxhash.New()
	h.WriteString("scope:")
	h.WriteString(strconv.Itoa(s.depth))
	s.included.hashInto(h)
	s.excluded.hashInto(h)
	return h.Sum64()
}
