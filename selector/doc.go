// Package selector implements the dependency selector family used during
// transitive dependency collection.
//
// This is a Go port of the selectors from maven-resolver-util, keeping
// their exact semantics: scope and optionality filtering exempt direct
// dependencies (recursion depth 0 and 1) and only take effect from the
// second derivation onward, and deriving a selector past that point
// returns the selector itself so sibling branches of the graph share one
// instance.
//
// Reference implementations:
//   - ScopeDependencySelector.java: https://github.com/apache/maven-resolver/blob/maven-resolver-1.0.x/maven-resolver-util/src/main/java/org/eclipse/aether/util/graph/selector/ScopeDependencySelector.java
//   - OptionalDependencySelector.java: https://github.com/apache/maven-resolver/blob/maven-resolver-1.0.x/maven-resolver-util/src/main/java/org/eclipse/aether/util/graph/selector/OptionalDependencySelector.java
//   - AndDependencySelector.java: https://github.com/apache/maven-resolver/blob/maven-resolver-1.0.x/maven-resolver-util/src/main/java/org/eclipse/aether/util/graph/selector/AndDependencySelector.java
//
// # Choosing a selector
//
// Most collection sessions combine a scope filter with an optionality
// filter:
//
//	sel := selector.NewAndSelector(
//	    selector.ExcludeScopes("test", "provided"),
//	    selector.NewOptionalSelector(),
//	)
//
// # Sharing selector instances
//
// Selectors are immutable. An Interner collapses structurally equal
// selectors to one canonical instance so that a result cache keyed by
// selector identity deduplicates diamond paths:
//
//	in := selector.NewInterner()
//	child := in.Intern(sel.DeriveChildSelector(ctx).(goaether.HashableSelector))
package selector
