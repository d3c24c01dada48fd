package simplify

import (
	"github.com/reef-lang/reeflint/internal/ast"
	"github.com/reef-lang/reeflint/internal/types"
)

// Fix builders. All helpers are range arithmetic only; they never inspect
// source text. Per the engine contract, every edit of one finding lies
// within the span of the expression the finding is about and edits are
// pairwise disjoint.

func removeRange(r ast.Range) types.Edit {
	return types.Edit{Kind: types.EditRemove, Range: r}
}

func insertAt(p ast.Position, text string) types.Edit {
	return types.Edit{Kind: types.EditInsert, Range: ast.Range{Start: p, End: p}, Text: text}
}

func replaceRange(r ast.Range, text string) types.Edit {
	return types.Edit{Kind: types.EditReplace, Range: r, Text: text}
}

// between is the half-open span separating two ranges.
func between(a, b ast.Range) ast.Range {
	return ast.Range{Start: a.End, End: b.Start}
}

// charEndingAt is the single-column span of the character just before p,
// used to trim a delimiter adjacent to a sub-node's end.
func charEndingAt(p ast.Position) ast.Range {
	return ast.Range{Start: ast.Position{Line: p.Line, Col: p.Col - 1}, End: p}
}

// charStartingAt is the single-column span of the character at p.
func charStartingAt(p ast.Position) ast.Range {
	return ast.Range{Start: p, End: ast.Position{Line: p.Line, Col: p.Col + 1}}
}

// keepOnlyEdits removes everything in full outside keep.
func keepOnlyEdits(full, keep ast.Range) []types.Edit {
	var edits []types.Edit
	if lead := (ast.Range{Start: full.Start, End: keep.Start}); !lead.Empty() {
		edits = append(edits, removeRange(lead))
	}
	if trail := (ast.Range{Start: keep.End, End: full.End}); !trail.Empty() {
		edits = append(edits, removeRange(trail))
	}
	return edits
}

// keepOnly is the most common finding shape: the whole expression
// collapses to one of its sub-expressions.
func keepOnly(rule, message string, full, keep ast.Range, details ...string) types.Finding {
	return types.Finding{
		Rule:         rule,
		Message:      message,
		Details:      details,
		PrimaryRange: full,
		Edits:        keepOnlyEdits(full, keep),
	}
}

// replaceAll replaces the entire expression with fixed text.
func replaceAll(rule, message string, full ast.Range, text string, details ...string) types.Finding {
	return types.Finding{
		Rule:         rule,
		Message:      message,
		Details:      details,
		PrimaryRange: full,
		Edits:        []types.Edit{replaceRange(full, text)},
	}
}

// report builds a finding with explicit edits. Pass no edits when a safe
// fix cannot be computed; the finding is still worth surfacing.
func report(rule, message string, primary ast.Range, details []string, edits ...types.Edit) types.Finding {
	return types.Finding{
		Rule:         rule,
		Message:      message,
		Details:      details,
		PrimaryRange: primary,
		Edits:        edits,
	}
}
