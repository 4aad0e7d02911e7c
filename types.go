package goaether

// Artifact identifies a resolvable artifact by its coordinates. This is
// the minimal identity the collection engine attaches to a dependency
// edge; richer artifact metadata (type, classifier, file) lives with the
// engine, not here.
type Artifact struct {
	// GroupID is the artifact's group, e.g. "org.example".
	GroupID string

	// ArtifactID is the artifact's name within the group.
	ArtifactID string

	// Version is the requested version. Opaque to this package.
	Version string
}

// String returns the coordinates as "groupId:artifactId:version".
func (a Artifact) String() string {
	return a.GroupID + ":" + a.ArtifactID + ":" + a.Version
}

// Dependency is a read-only view of a candidate dependency edge as seen
// by a selector. Selectors never mutate dependencies.
type Dependency struct {
	// Artifact is the dependency's coordinates.
	Artifact Artifact

	// Scope is an opaque, case-sensitive label such as "compile" or
	// "test". No ordering or subsumption between scopes is assumed; in
	// particular no scope logically includes another. The empty string
	// is a valid scope label and matches inclusion/exclusion sets only
	// if explicitly listed.
	Scope string

	// Optional marks the dependency as optional for its declaring
	// artifact.
	Optional bool
}

// CollectionContext carries the collection state for the node whose
// children are about to be collected. It is supplied by the collection
// engine; selectors that do not branch on it must pass it through
// untouched.
type CollectionContext struct {
	// Dependency is the dependency whose children are being collected.
	// Zero value at the root of the collection.
	Dependency Dependency
}

// DependencySelector decides which dependencies the collection engine
// descends into. The engine holds one selector per graph node: it calls
// SelectDependency once per candidate edge, and DeriveChildSelector once
// per node to obtain the selector applied to that node's children.
//
// Implementations must be immutable so that concurrent collection of
// independent subtrees can share selector instances without locking.
//
// Reference: https://github.com/apache/maven-resolver/blob/maven-resolver-1.0.x/maven-resolver-api/src/main/java/org/eclipse/aether/collection/DependencySelector.java
type DependencySelector interface {
	// SelectDependency reports whether the given dependency should be
	// part of the dependency graph.
	SelectDependency(dep Dependency) bool

	// DeriveChildSelector returns the selector for the children of the
	// node described by ctx. Implementations return the receiver itself
	// when the derived state would be identical, so sibling branches
	// share one instance.
	DeriveChildSelector(ctx *CollectionContext) DependencySelector
}

// HashableSelector is implemented by selectors whose instances can be
// deduplicated by a caching layer: structurally equal selectors report
// equal hashes, so collection results for diamond-shaped graphs can be
// keyed and reused instead of recomputed.
type HashableSelector interface {
	DependencySelector

	// Hash returns a stable hash consistent with Equal: equal selectors
	// hash identically regardless of how their state was constructed.
	Hash() uint64

	// Equal reports structural equality with another selector. A
	// selector is never equal to a selector of a different concrete
	// type.
	Equal(other DependencySelector) bool
}
