package simplify

import (
	"github.com/reef-lang/reeflint/internal/ast"
	"github.com/reef-lang/reeflint/internal/types"
)

const (
	ruleConstantCondition = "constant-condition"
	ruleBooleanBranches   = "boolean-branches"
	ruleIdenticalBranches = "identical-branches"
)

// checkConditional reduces `if` expressions: a literal condition selects
// a branch, literal True/False branches collapse to the condition, and
// branches proven equal by the equivalence oracle make the conditional
// pointless.
func checkConditional(cx *Context, n *ast.IfExpr) []types.Finding {
	if v, ok := boolLiteral(cx, n.Cond); ok {
		if v {
			return []types.Finding{keepOnly(ruleConstantCondition,
				"condition is always True", n.Loc, n.Then.Range(),
				"only the first branch can ever be taken; the conditional syntax and the other branch can be removed.")}
		}
		return []types.Finding{keepOnly(ruleConstantCondition,
			"condition is always False", n.Loc, n.Else.Range(),
			"only the second branch can ever be taken; the conditional syntax and the other branch can be removed.")}
	}

	thenVal, thenOk := boolLiteral(cx, n.Then)
	elseVal, elseOk := boolLiteral(cx, n.Else)
	if thenOk && elseOk && thenVal != elseVal {
		if thenVal {
			return []types.Finding{keepOnly(ruleBooleanBranches,
				"conditional returns the condition itself", n.Loc, n.Cond.Range(),
				"`if c then True else False` is just `c`.")}
		}
		return []types.Finding{report(ruleBooleanBranches,
			"conditional returns the negated condition", n.Loc,
			[]string{"`if c then False else True` is `not c`."},
			replaceRange(ast.Range{Start: n.Loc.Start, End: n.Cond.Range().Start}, "not ("),
			replaceRange(ast.Range{Start: n.Cond.Range().End, End: n.Loc.End}, ")"),
		)}
	}

	if cx.Oracle.Equivalent(n.Then, n.Else) {
		return []types.Finding{keepOnly(ruleIdenticalBranches,
			"both branches are identical", n.Loc, n.Then.Range(),
			"the conditional produces the same value either way, so the condition is never needed.")}
	}
	return nil
}
