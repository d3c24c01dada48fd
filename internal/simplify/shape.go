package simplify

import (
	"strconv"

	"github.com/reef-lang/reeflint/internal/ast"
)

// Shape matchers: pure predicates and extractors over single nodes.
// Every matcher that depends on recognizing a specific built-in consults
// the name-resolution oracle and declines when resolution fails or lands
// in an unexpected module.

// resolvedRef unwraps parentheses and returns e as a reference together
// with its defining module.
func resolvedRef(cx *Context, e ast.Expr) (*ast.Reference, string, bool) {
	ref, ok := ast.Unparen(e).(*ast.Reference)
	if !ok {
		return nil, "", false
	}
	module, ok := cx.Resolver.ModuleOf(ref.Loc)
	if !ok {
		return nil, "", false
	}
	return ref, module, true
}

// isBuiltin reports whether e is a reference to module.name.
func isBuiltin(cx *Context, e ast.Expr, module, name string) bool {
	ref, mod, ok := resolvedRef(cx, e)
	return ok && mod == module && ref.Name == name
}

// boolLiteral recognizes a resolved True/False reference.
func boolLiteral(cx *Context, e ast.Expr) (value bool, ok bool) {
	ref, mod, ok := resolvedRef(cx, e)
	if !ok || mod != "Basics" {
		return false, false
	}
	switch ref.Name {
	case "True":
		return true, true
	case "False":
		return false, true
	}
	return false, false
}

// intLiteral recognizes literal integers, hex literals, and recursively
// negated literals, unwrapping parentheses along the way.
func intLiteral(e ast.Expr) (int64, bool) {
	switch n := ast.Unparen(e).(type) {
	case *ast.Literal:
		if n.Kind != ast.NumberLiteral {
			return 0, false
		}
		v, err := strconv.ParseInt(n.Text, 0, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	case *ast.Negation:
		v, ok := intLiteral(n.Inner)
		return -v, ok
	}
	return 0, false
}

// listLiteral unwraps parentheses and returns e as a list literal.
func listLiteral(e ast.Expr) (*ast.ListLiteral, bool) {
	l, ok := ast.Unparen(e).(*ast.ListLiteral)
	return l, ok
}

// directListLiteral returns e as a list literal only when it is not
// parenthesized. Edits that splice characters around the brackets are
// only sound against the bare literal.
func directListLiteral(e ast.Expr) (*ast.ListLiteral, bool) {
	l, ok := e.(*ast.ListLiteral)
	return l, ok
}

// stringLiteral unwraps parentheses and returns e as a string literal.
func stringLiteral(e ast.Expr) (*ast.Literal, bool) {
	l, ok := ast.Unparen(e).(*ast.Literal)
	if !ok || l.Kind != ast.StringLiteral {
		return nil, false
	}
	return l, true
}

// emptyCollection reports whether e is a literal empty list or empty
// string.
func emptyCollection(e ast.Expr) bool {
	if l, ok := listLiteral(e); ok {
		return len(l.Items) == 0
	}
	if s, ok := stringLiteral(e); ok {
		return s.Value == ""
	}
	return false
}

// identityShaped recognizes the identity function: a resolved reference
// to Basics.identity or the lambda `\x -> x`.
func identityShaped(cx *Context, e ast.Expr) bool {
	if isBuiltin(cx, e, "Basics", "identity") {
		return true
	}
	lam, ok := ast.Unparen(e).(*ast.LambdaExpr)
	if !ok || len(lam.Params) != 1 {
		return false
	}
	v, ok := ast.UnparenPattern(lam.Params[0]).(*ast.VarPattern)
	if !ok {
		return false
	}
	body, ok := ast.Unparen(lam.Body).(*ast.Reference)
	return ok && body.Qualifier == "" && body.Name == v.Name
}

// constantWrapper recognizes an always-producing-a-constant wrapper:
// `always k` or `\_ -> k`. It returns the wrapped constant.
func constantWrapper(cx *Context, e ast.Expr) (ast.Expr, bool) {
	switch n := ast.Unparen(e).(type) {
	case *ast.Application:
		if len(n.Args) == 1 && isBuiltin(cx, n.Callee, "Basics", "always") {
			return n.Args[0], true
		}
	case *ast.LambdaExpr:
		if len(n.Params) == 1 {
			if _, ok := ast.UnparenPattern(n.Params[0]).(*ast.WildcardPattern); ok {
				return n.Body, true
			}
		}
	}
	return nil, false
}

// notApplication recognizes `not x` with `not` resolved to Basics and
// returns the operand.
func notApplication(cx *Context, e ast.Expr) (ast.Expr, bool) {
	app, ok := ast.Unparen(e).(*ast.Application)
	if !ok || len(app.Args) != 1 || !isBuiltin(cx, app.Callee, "Basics", "not") {
		return nil, false
	}
	return app.Args[0], true
}
