// Package resolve maps reference occurrences to the module that defines
// them, honoring import aliases and shadowing by local bindings. The
// analysis core consults this before trusting that a name like `identity`
// or `List.map` denotes the well-known built-in; resolution failure is
// always "unknown", never a guess.
package resolve

import "github.com/reef-lang/reeflint/internal/ast"

// Resolver answers which module defines the reference at a given range.
type Resolver interface {
	ModuleOf(r ast.Range) (string, bool)
}

// defaultGlobals are the unqualified names exposed by the core library.
var defaultGlobals = map[string]string{
	"identity": "Basics",
	"always":   "Basics",
	"not":      "Basics",
	"negate":   "Basics",
	"True":     "Basics",
	"False":    "Basics",
	"Just":     "Maybe",
	"Nothing":  "Maybe",
}

// knownModules are the qualifiers reachable without an explicit import.
var knownModules = map[string]bool{
	"Basics": true,
	"List":   true,
	"String": true,
	"Maybe":  true,
	"Effect": true,
	"Sub":    true,
}

// Table is a Resolver precomputed for one module: every reference range
// is indexed during a single scoping pass over each declaration.
type Table struct {
	byRange map[ast.Range]string
}

func (t *Table) ModuleOf(r ast.Range) (string, bool) {
	mod, ok := t.byRange[r]
	return mod, ok
}

// Build walks the module and resolves every reference occurrence.
//
// Shadowing: top-level declaration names hide built-ins throughout the
// module; declaration and lambda parameters hide them within the ranges
// they dominate. An `import X as Y` makes qualifier Y resolve to X; a
// plain `import X` keeps X resolving to itself. A qualifier that matches
// neither an import nor a known core module resolves to nothing.
func Build(m *ast.Module) *Table {
	t := &Table{byRange: make(map[ast.Range]string)}

	aliases := make(map[string]string, len(m.Imports))
	for q := range knownModules {
		aliases[q] = q
	}
	for _, imp := range m.Imports {
		if imp.Alias != "" {
			aliases[imp.Alias] = imp.Module
		} else {
			aliases[imp.Module] = imp.Module
		}
	}

	top := &scope{names: make(map[string]struct{}, len(m.Decls))}
	for i := range m.Decls {
		top.names[m.Decls[i].Name] = struct{}{}
	}

	for i := range m.Decls {
		d := &m.Decls[i]
		sc := top.push(patternNames(d.Params))
		t.resolveExpr(d.Body, sc, aliases)
	}
	return t
}

func (t *Table) resolveExpr(e ast.Expr, sc *scope, aliases map[string]string) {
	switch n := e.(type) {
	case *ast.Reference:
		if mod, ok := resolveRef(n, sc, aliases); ok {
			t.byRange[n.Loc] = mod
		}
	case *ast.LambdaExpr:
		inner := sc.push(patternNames(n.Params))
		t.resolveExpr(n.Body, inner, aliases)
	default:
		for _, c := range ast.Children(e) {
			t.resolveExpr(c, sc, aliases)
		}
	}
}

func resolveRef(ref *ast.Reference, sc *scope, aliases map[string]string) (string, bool) {
	if ref.Qualifier != "" {
		mod, ok := aliases[ref.Qualifier]
		return mod, ok
	}
	if sc.bound(ref.Name) {
		return "", false
	}
	mod, ok := defaultGlobals[ref.Name]
	return mod, ok
}

// scope is an immutable chain of binding frames.
type scope struct {
	names  map[string]struct{}
	parent *scope
}

func (s *scope) push(names map[string]struct{}) *scope {
	if len(names) == 0 {
		return s
	}
	return &scope{names: names, parent: s}
}

func (s *scope) bound(name string) bool {
	for cur := s; cur != nil; cur = cur.parent {
		if _, ok := cur.names[name]; ok {
			return true
		}
	}
	return false
}

func patternNames(params []ast.Pattern) map[string]struct{} {
	var names map[string]struct{}
	for _, p := range params {
		if v, ok := ast.UnparenPattern(p).(*ast.VarPattern); ok {
			if names == nil {
				names = make(map[string]struct{})
			}
			names[v.Name] = struct{}{}
		}
	}
	return names
}
