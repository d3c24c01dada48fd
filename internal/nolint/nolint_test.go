package nolint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reef-lang/reeflint/internal/nolint"
	"github.com/reef-lang/reeflint/internal/parser"
)

func parse(t *testing.T, src string) *nolint.Manager {
	t.Helper()
	mod, err := parser.ParseModule("test.reef", []byte(src))
	require.NoError(t, err)
	return nolint.ParseComments(mod)
}

func TestInlineDirective(t *testing.T) {
	t.Parallel()

	mgr := parse(t, `f x = x -- nolint
g x = x
`)
	assert.True(t, mgr.IsNolint(1, "any-rule"))
	assert.False(t, mgr.IsNolint(2, "any-rule"))
}

func TestDirectiveAboveDeclaration(t *testing.T) {
	t.Parallel()

	// The declaration body spans three lines; the directive covers all
	// of them, but not the declaration that follows.
	mgr := parse(t, `-- nolint
f x =
  g x
    y
h x = x
`)
	assert.True(t, mgr.IsNolint(2, "any-rule"))
	assert.True(t, mgr.IsNolint(3, "any-rule"))
	assert.True(t, mgr.IsNolint(4, "any-rule"))
	assert.False(t, mgr.IsNolint(5, "any-rule"))
}

func TestDetachedDirective(t *testing.T) {
	t.Parallel()

	// A blank line separates the directive from the declaration, so it
	// only covers itself and the line below.
	mgr := parse(t, `-- nolint

f x = x
`)
	assert.True(t, mgr.IsNolint(1, "any-rule"))
	assert.True(t, mgr.IsNolint(2, "any-rule"))
	assert.False(t, mgr.IsNolint(3, "any-rule"))
}

func TestRuleList(t *testing.T) {
	t.Parallel()

	t.Run("bare directive covers every rule", func(t *testing.T) {
		t.Parallel()
		mgr := parse(t, "f x = x -- nolint\n")
		assert.True(t, mgr.IsNolint(1, "map-identity"))
		assert.True(t, mgr.IsNolint(1, "boolean-not"))
	})

	t.Run("listed rules only", func(t *testing.T) {
		t.Parallel()
		mgr := parse(t, "f x = x -- nolint: map-identity, boolean-not\n")
		assert.True(t, mgr.IsNolint(1, "map-identity"))
		assert.True(t, mgr.IsNolint(1, "boolean-not"))
		assert.False(t, mgr.IsNolint(1, "redundant-identity"))
	})
}

func TestMalformedDirectives(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		src  string
	}{
		{"plain comment", "f x = x -- a note about x\n"},
		{"prefix of a longer word", "f x = x -- nolinter config\n"},
		{"colon with no rules", "f x = x -- nolint:\n"},
		{"mentions nolint mid-sentence", "f x = x -- see nolint docs\n"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			mgr := parse(t, tc.src)
			assert.False(t, mgr.IsNolint(1, "any-rule"))
		})
	}
}
