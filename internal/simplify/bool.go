package simplify

import (
	"github.com/reef-lang/reeflint/internal/ast"
	"github.com/reef-lang/reeflint/internal/types"
)

const (
	ruleRedundantOr         = "redundant-boolean-or"
	ruleRedundantAnd        = "redundant-boolean-and"
	ruleBooleanComparison   = "boolean-comparison"
	ruleIdenticalComparison = "identical-comparison"
	ruleNegatedComparison   = "negated-comparison"
	ruleBooleanNot          = "boolean-not"

	msgAlwaysTrue   = "expression is always True"
	msgAlwaysFalse  = "expression is always False"
	msgRedundantOr  = "`|| False` has no effect and can be removed"
	msgRedundantAnd = "`&& True` has no effect and can be removed"
)

// checkBooleanOr simplifies `||` against a resolved boolean literal.
// True absorbs the whole expression; False is the neutral element.
func checkBooleanOr(cx *Context, op *ast.OperatorApplication) []types.Finding {
	if v, ok := boolLiteral(cx, op.Right); ok {
		if v {
			return []types.Finding{keepOnly(ruleRedundantOr, msgAlwaysTrue, op.Loc, op.Right.Range(),
				"`True` is the absorbing element of `||`: the other operand never changes the result.")}
		}
		return []types.Finding{keepOnly(ruleRedundantOr, msgRedundantOr, op.Loc, op.Left.Range(),
			"`False` is the neutral element of `||`: the expression evaluates to the other operand.")}
	}
	if v, ok := boolLiteral(cx, op.Left); ok {
		if v {
			return []types.Finding{keepOnly(ruleRedundantOr, msgAlwaysTrue, op.Loc, op.Left.Range(),
				"`True` is the absorbing element of `||`: the other operand never changes the result.")}
		}
		return []types.Finding{keepOnly(ruleRedundantOr, msgRedundantOr, op.Loc, op.Right.Range(),
			"`False` is the neutral element of `||`: the expression evaluates to the other operand.")}
	}
	return nil
}

// checkBooleanAnd is the dual of checkBooleanOr.
func checkBooleanAnd(cx *Context, op *ast.OperatorApplication) []types.Finding {
	if v, ok := boolLiteral(cx, op.Right); ok {
		if !v {
			return []types.Finding{keepOnly(ruleRedundantAnd, msgAlwaysFalse, op.Loc, op.Right.Range(),
				"`False` is the absorbing element of `&&`: the other operand never changes the result.")}
		}
		return []types.Finding{keepOnly(ruleRedundantAnd, msgRedundantAnd, op.Loc, op.Left.Range(),
			"`True` is the neutral element of `&&`: the expression evaluates to the other operand.")}
	}
	if v, ok := boolLiteral(cx, op.Left); ok {
		if !v {
			return []types.Finding{keepOnly(ruleRedundantAnd, msgAlwaysFalse, op.Loc, op.Left.Range(),
				"`False` is the absorbing element of `&&`: the other operand never changes the result.")}
		}
		return []types.Finding{keepOnly(ruleRedundantAnd, msgRedundantAnd, op.Loc, op.Right.Range(),
			"`True` is the neutral element of `&&`: the expression evaluates to the other operand.")}
	}
	return nil
}

func checkEquality(cx *Context, op *ast.OperatorApplication) []types.Finding {
	return checkComparison(cx, op, true)
}

func checkInequality(cx *Context, op *ast.OperatorApplication) []types.Finding {
	return checkComparison(cx, op, false)
}

// checkComparison covers `==` and `/=`. Comparing against a boolean
// literal collapses to the other operand (negated when comparing against
// the non-identity literal); comparing two `not` applications strips
// both; operands proven identical by the equivalence oracle collapse to
// a fixed literal.
func checkComparison(cx *Context, op *ast.OperatorApplication, isEquality bool) []types.Finding {
	if v, ok := boolLiteral(cx, op.Right); ok {
		return []types.Finding{booleanComparisonFinding(op, op.Left, v == isEquality)}
	}
	if v, ok := boolLiteral(cx, op.Left); ok {
		return []types.Finding{booleanComparisonFinding(op, op.Right, v == isEquality)}
	}

	if _, lok := notApplication(cx, op.Left); lok {
		if _, rok := notApplication(cx, op.Right); rok {
			if fs := stripBothNots(cx, op); fs != nil {
				return fs
			}
		}
	}

	if cx.Oracle.Equivalent(op.Left, op.Right) {
		if isEquality {
			return []types.Finding{replaceAll(ruleIdenticalComparison, msgAlwaysTrue, op.Loc, "True",
				"both operands are structurally identical, so the comparison always holds.")}
		}
		return []types.Finding{replaceAll(ruleIdenticalComparison, msgAlwaysFalse, op.Loc, "False",
			"both operands are structurally identical, so the comparison never holds.")}
	}
	return nil
}

// booleanComparisonFinding collapses a comparison against a boolean
// literal to the remaining operand, negating it when the literal is the
// non-identity element of the comparison.
func booleanComparisonFinding(op *ast.OperatorApplication, other ast.Expr, keepAsIs bool) types.Finding {
	if keepAsIs {
		return keepOnly(ruleBooleanComparison, "comparison with a boolean literal is redundant",
			op.Loc, other.Range(),
			"comparing a boolean with this literal evaluates to the boolean itself.")
	}
	keep := other.Range()
	var edits []types.Edit
	if lead := (ast.Range{Start: op.Loc.Start, End: keep.Start}); !lead.Empty() {
		edits = append(edits, replaceRange(lead, "not ("))
	} else {
		edits = append(edits, insertAt(keep.Start, "not ("))
	}
	if trail := (ast.Range{Start: keep.End, End: op.Loc.End}); !trail.Empty() {
		edits = append(edits, replaceRange(trail, ")"))
	} else {
		edits = append(edits, insertAt(keep.End, ")"))
	}
	return report(ruleBooleanComparison, "comparison with a boolean literal can be reduced to a negation",
		op.Loc,
		[]string{"comparing a boolean with this literal evaluates to the negation of the boolean."},
		edits...)
}

// stripBothNots rewrites `not a == not b` to `a == b`. The operands must
// be bare applications: stripping a prefix out of a parenthesized
// operand would leave an unbalanced parenthesis.
func stripBothNots(cx *Context, op *ast.OperatorApplication) []types.Finding {
	left, lok := op.Left.(*ast.Application)
	right, rok := op.Right.(*ast.Application)
	if !lok || !rok || len(left.Args) != 1 || len(right.Args) != 1 {
		return nil
	}
	return []types.Finding{report(ruleNegatedComparison,
		"negating both operands of a comparison has no effect",
		op.Loc,
		[]string{"`not a == not b` holds exactly when `a == b` holds; both negations can be dropped."},
		removeRange(ast.Range{Start: left.Loc.Start, End: left.Args[0].Range().Start}),
		removeRange(ast.Range{Start: right.Loc.Start, End: right.Args[0].Range().Start}),
	)}
}

// checkNotCall handles calls to Basics.not routed through the by-name
// table: literal operands, double negation, and negated comparisons.
func checkNotCall(cx *Context, call *CanonicalCall) []types.Finding {
	if call.SecondArg != nil {
		return nil
	}

	if v, ok := boolLiteral(cx, call.FirstArg); ok {
		text := "True"
		if v {
			text = "False"
		}
		return []types.Finding{replaceAll(ruleBooleanNot, "`not` applied to a boolean literal", call.FullRange, text,
			"the negation of a literal can be written directly.")}
	}

	if inner, ok := notApplication(cx, call.FirstArg); ok {
		return []types.Finding{keepOnly(ruleBooleanNot, "double negation cancels out", call.FullRange, inner.Range(),
			"`not (not x)` is `x`.")}
	}

	if paren, ok := call.FirstArg.(*ast.Parenthesized); ok {
		if cmp, ok := paren.Inner.(*ast.OperatorApplication); ok && (cmp.Symbol == "==" || cmp.Symbol == "/=") {
			flipped := "=="
			if cmp.Symbol == "==" {
				flipped = "/="
			}
			edits := keepOnlyEdits(call.FullRange, paren.Loc)
			edits = append(edits, replaceRange(cmp.OpLoc, flipped))
			return []types.Finding{report(ruleBooleanNot,
				"negated comparison can use the opposite operator",
				call.FullRange,
				[]string{"`not` around a comparison is the same comparison with the opposite operator."},
				edits...)}
		}
	}
	return nil
}
