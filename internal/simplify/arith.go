package simplify

import (
	"github.com/reef-lang/reeflint/internal/ast"
	"github.com/reef-lang/reeflint/internal/types"
)

const (
	ruleArithmeticIdentity   = "arithmetic-identity"
	ruleMultiplicationByZero = "multiplication-by-zero"
	ruleDoubleNegation       = "double-negation"
)

// checkAddition drops a zero operand: `n + 0` and `0 + n` are `n`.
func checkAddition(cx *Context, op *ast.OperatorApplication) []types.Finding {
	if v, ok := intLiteral(op.Right); ok && v == 0 {
		return []types.Finding{keepOnly(ruleArithmeticIdentity,
			"adding 0 has no effect", op.Loc, op.Left.Range())}
	}
	if v, ok := intLiteral(op.Left); ok && v == 0 {
		return []types.Finding{keepOnly(ruleArithmeticIdentity,
			"adding 0 has no effect", op.Loc, op.Right.Range())}
	}
	return nil
}

// checkSubtraction drops `- 0` and folds `0 - n` into a negation.
func checkSubtraction(cx *Context, op *ast.OperatorApplication) []types.Finding {
	if v, ok := intLiteral(op.Right); ok && v == 0 {
		return []types.Finding{keepOnly(ruleArithmeticIdentity,
			"subtracting 0 has no effect", op.Loc, op.Left.Range())}
	}
	if v, ok := intLiteral(op.Left); ok && v == 0 {
		return []types.Finding{report(ruleArithmeticIdentity,
			"subtracting from 0 is a negation", op.Loc,
			[]string{"`0 - n` can be written `-n`."},
			replaceRange(ast.Range{Start: op.Loc.Start, End: op.Right.Range().Start}, "-"),
		)}
	}
	return nil
}

// checkMultiplication drops a one operand and collapses multiplication by
// zero: the zero case replaces the entire enclosing expression with the
// literal `0`, not just the zero term.
func checkMultiplication(cx *Context, op *ast.OperatorApplication) []types.Finding {
	for _, operand := range []ast.Expr{op.Right, op.Left} {
		v, ok := intLiteral(operand)
		if !ok {
			continue
		}
		switch v {
		case 1:
			keep := op.Left
			if operand == op.Left {
				keep = op.Right
			}
			return []types.Finding{keepOnly(ruleArithmeticIdentity,
				"multiplying by 1 has no effect", op.Loc, keep.Range())}
		case 0:
			return []types.Finding{replaceAll(ruleMultiplicationByZero,
				"multiplying by 0 always yields 0", op.Loc, "0",
				"the whole product is statically 0 regardless of the other operand.")}
		}
	}
	return nil
}

// checkDivision drops `/ 1`.
func checkDivision(cx *Context, op *ast.OperatorApplication) []types.Finding {
	if v, ok := intLiteral(op.Right); ok && v == 1 {
		return []types.Finding{keepOnly(ruleArithmeticIdentity,
			"dividing by 1 has no effect", op.Loc, op.Left.Range())}
	}
	return nil
}

// checkDoubleNegative collapses `-(-n)` to `n`.
func checkDoubleNegative(cx *Context, n *ast.Negation) []types.Finding {
	inner, ok := ast.Unparen(n.Inner).(*ast.Negation)
	if !ok {
		return nil
	}
	return []types.Finding{keepOnly(ruleDoubleNegation,
		"double negation cancels out", n.Loc, inner.Inner.Range(),
		"negating a negation yields the original value.")}
}

// checkNegateCall collapses `negate (negate x)` to `x`.
func checkNegateCall(cx *Context, call *CanonicalCall) []types.Finding {
	if call.SecondArg != nil {
		return nil
	}
	app, ok := ast.Unparen(call.FirstArg).(*ast.Application)
	if !ok || len(app.Args) != 1 || !isBuiltin(cx, app.Callee, "Basics", "negate") {
		return nil
	}
	return []types.Finding{keepOnly(ruleDoubleNegation,
		"double negation cancels out", call.FullRange, app.Args[0].Range(),
		"`negate (negate x)` is `x`.")}
}
