package selector

import (
	"sync"

	goaether "github.com/albertocavalcante/go-aether"
)

// Interner collapses structurally equal selectors to one canonical
// instance. Diamond-shaped graphs derive equal selectors along separate
// paths; interning them lets a result cache keyed by selector identity
// recognize the paths as the same sub-problem. Safe for concurrent use.
//
// Reference: derived-selector interning in DataPool,
// https://github.com/apache/maven-resolver/blob/maven-resolver-1.0.x/maven-resolver-impl/src/main/java/org/eclipse/aether/internal/impl/DataPool.java
type Interner struct {
	mu   sync.Mutex
	pool map[uint64][]goaether.HashableSelector
}

// NewInterner creates an empty interner.
func NewInterner() *Interner {
	return &Interner{pool: make(map[uint64][]goaether.HashableSelector)}
}

// Intern returns the canonical instance for sel: the first selector seen
// that is structurally equal to it. Hash collisions are resolved with
// Equal.
func (in *Interner) Intern(sel goaether.HashableSelector) goaether.HashableSelector {
	if sel == nil {
		return nil
	}
	key := sel.Hash()

	in.mu.Lock()
	defer in.mu.Unlock()
	for _, candidate := range in.pool[key] {
		if candidate.Equal(sel) {
			return candidate
		}
	}
	in.pool[key] = append(in.pool[key], sel)
	return sel
}
