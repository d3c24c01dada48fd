// Package equiv provides the structural-equivalence oracle used by the
// simplification checkers to decide whether two sub-trees denote the same
// value. Parenthesization is insignificant. The judgment is deliberately
// conservative: anything it cannot prove equal is reported as different.
package equiv

import "github.com/reef-lang/reeflint/internal/ast"

// Oracle decides structural sameness of two expressions. Implementations
// must terminate and must satisfy Equivalent(x, x) == true.
type Oracle interface {
	Equivalent(a, b ast.Expr) bool
}

// Structural is the default Oracle: a recursive comparison over node
// kinds that looks through parentheses.
type Structural struct{}

func (s Structural) Equivalent(a, b ast.Expr) bool {
	a = ast.Unparen(a)
	b = ast.Unparen(b)
	if a == nil || b == nil {
		return a == b
	}

	switch x := a.(type) {
	case *ast.Literal:
		y, ok := b.(*ast.Literal)
		return ok && x.Kind == y.Kind && x.Text == y.Text
	case *ast.Reference:
		y, ok := b.(*ast.Reference)
		return ok && x.Qualifier == y.Qualifier && x.Name == y.Name
	case *ast.ListLiteral:
		y, ok := b.(*ast.ListLiteral)
		if !ok || len(x.Items) != len(y.Items) {
			return false
		}
		for i := range x.Items {
			if !s.Equivalent(x.Items[i], y.Items[i]) {
				return false
			}
		}
		return true
	case *ast.Application:
		y, ok := b.(*ast.Application)
		if !ok || len(x.Args) != len(y.Args) || !s.Equivalent(x.Callee, y.Callee) {
			return false
		}
		for i := range x.Args {
			if !s.Equivalent(x.Args[i], y.Args[i]) {
				return false
			}
		}
		return true
	case *ast.OperatorApplication:
		y, ok := b.(*ast.OperatorApplication)
		return ok && x.Symbol == y.Symbol &&
			s.Equivalent(x.Left, y.Left) && s.Equivalent(x.Right, y.Right)
	case *ast.IfExpr:
		y, ok := b.(*ast.IfExpr)
		return ok && s.Equivalent(x.Cond, y.Cond) &&
			s.Equivalent(x.Then, y.Then) && s.Equivalent(x.Else, y.Else)
	case *ast.Negation:
		y, ok := b.(*ast.Negation)
		return ok && s.Equivalent(x.Inner, y.Inner)
	case *ast.LambdaExpr:
		y, ok := b.(*ast.LambdaExpr)
		if !ok || len(x.Params) != len(y.Params) {
			return false
		}
		for i := range x.Params {
			if !samePattern(x.Params[i], y.Params[i]) {
				return false
			}
		}
		return s.Equivalent(x.Body, y.Body)
	}
	return false
}

func samePattern(a, b ast.Pattern) bool {
	a = ast.UnparenPattern(a)
	b = ast.UnparenPattern(b)
	switch x := a.(type) {
	case *ast.VarPattern:
		y, ok := b.(*ast.VarPattern)
		return ok && x.Name == y.Name
	case *ast.WildcardPattern:
		_, ok := b.(*ast.WildcardPattern)
		return ok
	case *ast.UnitPattern:
		_, ok := b.(*ast.UnitPattern)
		return ok
	}
	return false
}
