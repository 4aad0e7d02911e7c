package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	goaether "github.com/albertocavalcante/go-aether"
)

func optionalDep(optional bool) goaether.Dependency {
	return goaether.Dependency{
		Artifact: goaether.Artifact{GroupID: "org.example", ArtifactID: "lib", Version: "1.0"},
		Scope:    "compile",
		Optional: optional,
	}
}

func TestStaticSelector(t *testing.T) {
	all := NewStaticSelector(true)
	none := NewStaticSelector(false)

	assert.True(t, all.SelectDependency(depWithScope("test")))
	assert.False(t, none.SelectDependency(depWithScope("compile")))

	// A static verdict is its own fixed point at every depth.
	assert.Same(t, all, derive(all, 3))

	assert.True(t, all.Equal(NewStaticSelector(true)))
	assert.False(t, all.Equal(none))
	assert.NotEqual(t, all.Hash(), none.Hash())
}

func TestOptionalSelector(t *testing.T) {
	sel := goaether.DependencySelector(NewOptionalSelector())

	// Optional direct dependencies are kept.
	assert.True(t, sel.SelectDependency(optionalDep(true)), "depth 0")
	sel = derive(sel, 1)
	assert.True(t, sel.SelectDependency(optionalDep(true)), "depth 1")

	// Optional transitive dependencies are dropped.
	sel = derive(sel, 1)
	assert.False(t, sel.SelectDependency(optionalDep(true)), "depth 2")
	assert.True(t, sel.SelectDependency(optionalDep(false)), "depth 2, non-optional")

	assert.Same(t, sel, derive(sel, 1))
}

func TestOptionalSelector_Equality(t *testing.T) {
	a := NewOptionalSelector()
	b := NewOptionalSelector()

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.False(t, a.Equal(derive(b, 1)))
	assert.False(t, a.Equal(ExcludeScopes()))
}

func TestNewAndSelector_Normalization(t *testing.T) {
	scope := ExcludeScopes("test")
	optional := NewOptionalSelector()

	// A single selector is returned as-is, nils are skipped.
	assert.Same(t, scope, NewAndSelector(scope))
	assert.Same(t, scope, NewAndSelector(nil, scope, nil))

	// Nested conjunctions flatten.
	nested := NewAndSelector(NewAndSelector(scope, optional), NewStaticSelector(true))
	and, ok := nested.(*AndSelector)
	require.True(t, ok)
	assert.Len(t, and.selectors, 3)

	// The empty conjunction selects everything.
	empty := NewAndSelector()
	assert.True(t, empty.SelectDependency(depWithScope("test")))
}

func TestAndSelector_SelectDependency(t *testing.T) {
	sel := derive(NewAndSelector(ExcludeScopes("test"), NewOptionalSelector()), 2)

	tests := []struct {
		name string
		dep  goaether.Dependency
		want bool
	}{
		{"passes both", depWithScope("compile"), true},
		{"rejected by scope", depWithScope("test"), false},
		{"rejected by optionality", optionalDep(true), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sel.SelectDependency(tt.dep))
		})
	}
}

func TestAndSelector_DeriveFixedPoint(t *testing.T) {
	root := NewAndSelector(ExcludeScopes("test"), NewOptionalSelector())

	// While constituents still move, each derivation allocates.
	first := derive(root, 1)
	assert.NotSame(t, root, first)

	// Once every constituent is at its fixed point, so is the conjunction.
	second := derive(first, 1)
	third := derive(second, 1)
	assert.Same(t, second, third)
}

func TestAndSelector_DeriveKeepsStableConstituents(t *testing.T) {
	static := NewStaticSelector(true)
	root := NewAndSelector(static, ExcludeScopes("test"))

	child := derive(root, 1).(*AndSelector)

	// The static constituent derived to itself and is shared, only the
	// scope selector was replaced.
	assert.Same(t, static, child.selectors[0])
	assert.NotSame(t, root.(*AndSelector).selectors[1], child.selectors[1])
}

func TestAndSelector_Equality(t *testing.T) {
	a := NewAndSelector(ExcludeScopes("test"), NewOptionalSelector())
	b := NewAndSelector(ExcludeScopes("test"), NewOptionalSelector())
	reordered := NewAndSelector(NewOptionalSelector(), ExcludeScopes("test"))

	ah, ok := a.(goaether.HashableSelector)
	require.True(t, ok)

	assert.True(t, ah.Equal(b))
	assert.Equal(t, ah.Hash(), b.(goaether.HashableSelector).Hash())

	// Constituent order is significant for conjunctions.
	assert.False(t, ah.Equal(reordered))
}

func TestInterner(t *testing.T) {
	in := NewInterner()

	a := in.Intern(NewScopeSelector(nil, []string{"test", "provided"}))
	b := in.Intern(NewScopeSelector(nil, []string{"provided", "test"}))
	other := in.Intern(NewScopeSelector(nil, []string{"runtime"}))

	// Structurally equal selectors collapse to the first instance seen.
	assert.Same(t, a, b)
	assert.NotSame(t, a, other)

	assert.Nil(t, in.Intern(nil))
}

// Two diamond paths deriving from equal roots end up sharing one
// selector instance, which is what lets a cache recognize the paths as
// the same sub-problem.
func TestInterner_DiamondPaths(t *testing.T) {
	in := NewInterner()

	left := derive(ExcludeScopes("test"), 2).(goaether.HashableSelector)
	right := derive(ExcludeScopes("test"), 2).(goaether.HashableSelector)
	require.NotSame(t, left, right)

	assert.Same(t, in.Intern(left), in.Intern(right))
}
