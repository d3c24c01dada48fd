package simplify

import (
	"github.com/reef-lang/reeflint/internal/ast"
	"github.com/reef-lang/reeflint/internal/types"
)

const (
	ruleConsToLiteral     = "cons-to-literal"
	ruleLiteralAppend     = "literal-append"
	ruleAppendEmpty       = "append-empty"
	ruleSingletonAppend   = "singleton-append"
	ruleConcatLiterals    = "concat-literal-lists"
	ruleConcatMapIdentity = "concat-map-identity"
	ruleConcatMapEmpty    = "concat-map-always-empty"
	ruleConcatMapSingle   = "concat-map-singleton"
)

// checkCons folds `a :: [...]` into list-literal form. The right operand
// must be a bare literal: the splices reach around its brackets.
func checkCons(cx *Context, op *ast.OperatorApplication) []types.Finding {
	lit, ok := directListLiteral(op.Right)
	if !ok {
		return nil
	}
	head := op.Left.Range()
	if len(lit.Items) == 0 {
		// a :: []  ->  [a]
		return []types.Finding{report(ruleConsToLiteral,
			"consing onto an empty list builds a singleton literal", op.Loc,
			[]string{"`a :: []` can be written `[a]`."},
			insertAt(op.Loc.Start, "["),
			replaceRange(ast.Range{Start: head.End, End: op.Loc.End}, "]"),
		)}
	}
	// a :: [b, ...]  ->  [a, b, ...]
	return []types.Finding{report(ruleConsToLiteral,
		"consing onto a list literal can be inlined", op.Loc,
		[]string{"`a :: [b]` can be written `[a, b]`."},
		insertAt(op.Loc.Start, "["),
		replaceRange(ast.Range{Start: head.End, End: lit.Items[0].Range().Start}, ", "),
	)}
}

// checkAppend simplifies `++`: dropping empty-literal operands, merging
// adjacent literals, and rewriting a singleton-literal prefix into cons.
func checkAppend(cx *Context, op *ast.OperatorApplication) []types.Finding {
	if emptyCollection(op.Left) {
		return []types.Finding{keepOnly(ruleAppendEmpty,
			"appending to an empty literal has no effect", op.Loc, op.Right.Range())}
	}
	if emptyCollection(op.Right) {
		return []types.Finding{keepOnly(ruleAppendEmpty,
			"appending an empty literal has no effect", op.Loc, op.Left.Range())}
	}

	if left, ok := directStringLiteral(op.Left); ok {
		if right, ok := directStringLiteral(op.Right); ok {
			// "a" ++ "b"  ->  "ab": drop the closing quote, the
			// operator, and the opening quote in one splice.
			return []types.Finding{report(ruleLiteralAppend,
				"adjacent string literals can be merged", op.Loc, nil,
				removeRange(ast.Range{
					Start: left.Loc.End.Shift(-1),
					End:   right.Loc.Start.Shift(1),
				}),
			)}
		}
	}

	leftLit, leftOk := directListLiteral(op.Left)
	rightLit, rightOk := directListLiteral(op.Right)
	if leftOk && rightOk {
		// [a] ++ [b]  ->  [a, b]
		return []types.Finding{report(ruleLiteralAppend,
			"adjacent list literals can be merged", op.Loc, nil,
			replaceRange(ast.Range{
				Start: leftLit.Loc.End.Shift(-1),
				End:   rightLit.Loc.Start.Shift(1),
			}, ", "),
		)}
	}
	if leftOk && len(leftLit.Items) == 1 {
		// [x] ++ rest  ->  x :: rest
		return []types.Finding{report(ruleSingletonAppend,
			"appending a singleton literal is a cons", op.Loc,
			[]string{"`[x] ++ rest` can be written `x :: rest`."},
			removeRange(charStartingAt(leftLit.Loc.Start)),
			replaceRange(ast.Range{
				Start: leftLit.Items[0].Range().End,
				End:   op.Right.Range().Start,
			}, " :: "),
		)}
	}
	return nil
}

// directStringLiteral returns e as a bare, unparenthesized string
// literal; quote-splicing edits need the real token boundaries.
func directStringLiteral(e ast.Expr) (*ast.Literal, bool) {
	l, ok := e.(*ast.Literal)
	if !ok || l.Kind != ast.StringLiteral {
		return nil, false
	}
	return l, true
}

// checkConcat simplifies List.concat over a literal list of lists. Empty
// sublists are dropped first; once none remain, all-literal content is
// merged into a single literal, and mixed content merges maximal runs of
// adjacent literal sublists. Each pass reports one step; re-analysis
// after applying the fix picks up the rest.
func checkConcat(cx *Context, call *CanonicalCall) []types.Finding {
	if call.SecondArg != nil {
		return nil
	}
	outer, ok := directListLiteral(call.FirstArg)
	if !ok || len(outer.Items) == 0 {
		return nil
	}

	if edits := dropEmptySublistEdits(outer); edits != nil {
		return []types.Finding{report(ruleConcatLiterals,
			"empty sublists contribute nothing to the concatenation",
			call.FullRange, nil, edits...)}
	}

	allLiteral := true
	for _, item := range outer.Items {
		if _, ok := directListLiteral(item); !ok {
			allLiteral = false
			break
		}
	}

	if allLiteral {
		// strip the callee on whichever side of the literal it sits
		edits := keepOnlyEdits(call.FullRange, outer.Loc)
		edits = append(edits, removeRange(charStartingAt(outer.Items[0].Range().Start)))
		edits = append(edits, mergeRunEdits(outer.Items)...)
		last := outer.Items[len(outer.Items)-1].Range()
		edits = append(edits, removeRange(charEndingAt(last.End)))
		return []types.Finding{report(ruleConcatLiterals,
			"concatenation of list literals can be written as one literal",
			call.FullRange, nil, edits...)}
	}

	var edits []types.Edit
	for _, run := range literalRuns(outer.Items) {
		edits = append(edits, mergeRunEdits(run)...)
	}
	if len(edits) == 0 {
		return nil
	}
	return []types.Finding{report(ruleConcatLiterals,
		"adjacent literal sublists can be merged",
		call.FullRange, nil, edits...)}
}

// dropEmptySublistEdits removes literal-empty sublists together with
// their separators. Returns nil when there is nothing to drop.
func dropEmptySublistEdits(outer *ast.ListLiteral) []types.Edit {
	isEmptyLit := func(e ast.Expr) bool {
		l, ok := directListLiteral(e)
		return ok && len(l.Items) == 0
	}
	anyEmpty := false
	allEmpty := true
	for _, item := range outer.Items {
		if isEmptyLit(item) {
			anyEmpty = true
		} else {
			allEmpty = false
		}
	}
	if !anyEmpty {
		return nil
	}
	if allEmpty {
		first := outer.Items[0].Range()
		last := outer.Items[len(outer.Items)-1].Range()
		return []types.Edit{removeRange(ast.Range{Start: first.Start, End: last.End})}
	}

	var edits []types.Edit
	for i := 0; i < len(outer.Items); {
		if !isEmptyLit(outer.Items[i]) {
			i++
			continue
		}
		runStart := i
		for i < len(outer.Items) && isEmptyLit(outer.Items[i]) {
			i++
		}
		if i < len(outer.Items) {
			// run followed by a kept item: remove through its start
			edits = append(edits, removeRange(ast.Range{
				Start: outer.Items[runStart].Range().Start,
				End:   outer.Items[i].Range().Start,
			}))
		} else {
			// trailing run: remove from the previous kept item's end
			edits = append(edits, removeRange(ast.Range{
				Start: outer.Items[runStart-1].Range().End,
				End:   outer.Items[len(outer.Items)-1].Range().End,
			}))
		}
	}
	return edits
}

// literalRuns returns the maximal runs of two or more adjacent bare
// nonempty list literals.
func literalRuns(items []ast.Expr) [][]ast.Expr {
	var runs [][]ast.Expr
	var cur []ast.Expr
	flush := func() {
		if len(cur) >= 2 {
			runs = append(runs, cur)
		}
		cur = nil
	}
	for _, item := range items {
		if l, ok := directListLiteral(item); ok && len(l.Items) > 0 {
			cur = append(cur, item)
			continue
		}
		flush()
	}
	flush()
	return runs
}

// mergeRunEdits splices each adjacent pair of literals in the run: the
// closing bracket, the separator, and the next opening bracket become a
// single element separator.
func mergeRunEdits(run []ast.Expr) []types.Edit {
	var edits []types.Edit
	for i := 0; i+1 < len(run); i++ {
		edits = append(edits, replaceRange(ast.Range{
			Start: run[i].Range().End.Shift(-1),
			End:   run[i+1].Range().Start.Shift(1),
		}, ", "))
	}
	return edits
}

// checkConcatMap simplifies List.concatMap: an identity-shaped function
// makes it List.concat, an always-empty function makes the whole call
// empty, and a singleton-literal argument makes it a direct call.
func checkConcatMap(cx *Context, call *CanonicalCall) []types.Finding {
	calleeFirst := call.CalleeRange.End.Before(call.FirstArg.Range().Start) ||
		call.CalleeRange.End == call.FirstArg.Range().Start
	if identityShaped(cx, call.FirstArg) && call.Callee.Qualifier != "" && calleeFirst {
		return []types.Finding{report(ruleConcatMapIdentity,
			"concatMap with the identity function is concat",
			call.FullRange, nil,
			replaceRange(call.CalleeRange, call.Callee.Qualifier+".concat"),
			removeRange(ast.Range{Start: call.CalleeRange.End, End: call.FirstArg.Range().End}),
		)}
	}

	if k, ok := constantWrapper(cx, call.FirstArg); ok && call.SecondArg != nil {
		if lit, ok := listLiteral(k); ok && len(lit.Items) == 0 {
			return []types.Finding{replaceAll(ruleConcatMapEmpty,
				"concatMap with an always-empty function yields an empty list",
				call.FullRange, "[]")}
		}
	}

	if call.Pipe == PipeNone && call.SecondArg != nil {
		if lit, ok := directListLiteral(call.SecondArg); ok && len(lit.Items) == 1 {
			return []types.Finding{report(ruleConcatMapSingle,
				"concatMap over a singleton is a direct application",
				call.FullRange,
				[]string{"`concatMap f [x]` is `f x`."},
				removeRange(ast.Range{Start: call.FullRange.Start, End: call.FirstArg.Range().Start}),
				replaceRange(between(call.FirstArg.Range(), lit.Items[0].Range()), " "),
				removeRange(ast.Range{Start: lit.Items[0].Range().End, End: call.FullRange.End}),
			)}
		}
	}
	return nil
}
