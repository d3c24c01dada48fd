package resolve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reef-lang/reeflint/internal/ast"
	"github.com/reef-lang/reeflint/internal/parser"
	"github.com/reef-lang/reeflint/internal/resolve"
)

// refNamed finds the first reference with the given spelling.
func refNamed(t *testing.T, m *ast.Module, qualifier, name string) *ast.Reference {
	t.Helper()
	var found *ast.Reference
	for i := range m.Decls {
		ast.Inspect(m.Decls[i].Body, func(e ast.Expr) bool {
			if found != nil {
				return false
			}
			if ref, ok := e.(*ast.Reference); ok && ref.Qualifier == qualifier && ref.Name == name {
				found = ref
			}
			return true
		})
	}
	require.NotNil(t, found, "no reference %s.%s in source", qualifier, name)
	return found
}

func build(t *testing.T, src string) (*resolve.Table, *ast.Module) {
	t.Helper()
	mod, err := parser.ParseModule("test.reef", []byte(src))
	require.NoError(t, err)
	return resolve.Build(mod), mod
}

func TestGlobals(t *testing.T) {
	t.Parallel()

	table, mod := build(t, "f x = identity (always x)\n")

	mod1, ok := table.ModuleOf(refNamed(t, mod, "", "identity").Loc)
	require.True(t, ok)
	assert.Equal(t, "Basics", mod1)

	mod2, ok := table.ModuleOf(refNamed(t, mod, "", "always").Loc)
	require.True(t, ok)
	assert.Equal(t, "Basics", mod2)

	_, ok = table.ModuleOf(refNamed(t, mod, "", "x").Loc)
	assert.False(t, ok)
}

func TestQualifiedReferences(t *testing.T) {
	t.Parallel()

	t.Run("core modules need no import", func(t *testing.T) {
		t.Parallel()
		table, mod := build(t, "f xs = List.reverse (String.join xs)\n")
		m, ok := table.ModuleOf(refNamed(t, mod, "List", "reverse").Loc)
		require.True(t, ok)
		assert.Equal(t, "List", m)
		m, ok = table.ModuleOf(refNamed(t, mod, "String", "join").Loc)
		require.True(t, ok)
		assert.Equal(t, "String", m)
	})

	t.Run("unknown qualifier resolves to nothing", func(t *testing.T) {
		t.Parallel()
		table, mod := build(t, "f d = Dict.get d\n")
		_, ok := table.ModuleOf(refNamed(t, mod, "Dict", "get").Loc)
		assert.False(t, ok)
	})

	t.Run("import alias", func(t *testing.T) {
		t.Parallel()
		table, mod := build(t, "import Effect as Fx\nf = Fx.batch []\n")
		m, ok := table.ModuleOf(refNamed(t, mod, "Fx", "batch").Loc)
		require.True(t, ok)
		assert.Equal(t, "Effect", m)
	})

	t.Run("plain import of a non-core module", func(t *testing.T) {
		t.Parallel()
		table, mod := build(t, "import Dict\nf d = Dict.get d\n")
		m, ok := table.ModuleOf(refNamed(t, mod, "Dict", "get").Loc)
		require.True(t, ok)
		assert.Equal(t, "Dict", m)
	})
}

func TestShadowing(t *testing.T) {
	t.Parallel()

	t.Run("declaration parameter", func(t *testing.T) {
		t.Parallel()
		table, mod := build(t, "f identity x = identity x\n")
		_, ok := table.ModuleOf(refNamed(t, mod, "", "identity").Loc)
		assert.False(t, ok)
	})

	t.Run("lambda parameter", func(t *testing.T) {
		t.Parallel()
		table, mod := build(t, "f = \\not -> not True\n")
		_, ok := table.ModuleOf(refNamed(t, mod, "", "not").Loc)
		assert.False(t, ok)
	})

	t.Run("top-level declaration hides the builtin everywhere", func(t *testing.T) {
		t.Parallel()
		table, mod := build(t, "g x = always x\nalways = 1\n")
		_, ok := table.ModuleOf(refNamed(t, mod, "", "always").Loc)
		assert.False(t, ok)
	})

	t.Run("shadowing does not leak out of the lambda", func(t *testing.T) {
		t.Parallel()
		table, mod := build(t, "f y = [\\not -> not y, not]\n")
		list := mod.Decls[0].Body.(*ast.ListLiteral)
		lam := list.Items[0].(*ast.LambdaExpr)
		inner := lam.Body.(*ast.Application).Callee.(*ast.Reference)
		outer := list.Items[1].(*ast.Reference)

		_, ok := table.ModuleOf(inner.Loc)
		assert.False(t, ok)
		m, ok := table.ModuleOf(outer.Loc)
		require.True(t, ok)
		assert.Equal(t, "Basics", m)
	})

	t.Run("qualified reference ignores local bindings", func(t *testing.T) {
		t.Parallel()
		table, mod := build(t, "f map = List.map map\n")
		m, ok := table.ModuleOf(refNamed(t, mod, "List", "map").Loc)
		require.True(t, ok)
		assert.Equal(t, "List", m)
	})
}
