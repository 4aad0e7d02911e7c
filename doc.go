// Package goaether provides Go ports of the dependency collection
// primitives from Eclipse Aether (Maven Resolver): the selector protocol
// that decides, per recursion level, whether a candidate dependency edge
// is kept during transitive collection, and the digest primitive used to
// derive stable cache keys for collection sub-results.
//
// The collection engine itself (graph assembly, version mediation,
// repository access) is out of scope; this package is the decision and
// identity layer such an engine plugs in.
//
// # Overview
//
// The package provides three main components:
//
//   - DependencySelector: the contract the collection engine calls before
//     descending into a child dependency (this package)
//   - selector: the concrete selector family (scope filtering, optional
//     filtering, static verdicts, conjunction, and interning)
//   - fingerprint: deterministic, order-sensitive identity strings for
//     cache keys
//
// # Quick Start
//
// A collection engine holds one selector per graph node, consults it per
// candidate edge, and derives the selector for the next level:
//
//	sel := selector.ExcludeScopes("test", "provided")
//	for _, dep := range node.Dependencies {
//	    if !sel.SelectDependency(dep) {
//	        continue
//	    }
//	    child := sel.DeriveChildSelector(&goaether.CollectionContext{Dependency: dep})
//	    descend(dep, child)
//	}
//
// Cache keys for sub-results come from the fingerprint package:
//
//	key := fingerprint.Of(dep.Artifact.String(), dep.Scope)
//
// Reference implementations:
//   - DependencySelector.java: https://github.com/apache/maven-resolver/blob/maven-resolver-1.0.x/maven-resolver-api/src/main/java/org/eclipse/aether/collection/DependencySelector.java
//   - Dependency.java: https://github.com/apache/maven-resolver/blob/maven-resolver-1.0.x/maven-resolver-api/src/main/java/org/eclipse/aether/graph/Dependency.java
package goaether
