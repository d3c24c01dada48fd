// Package simplify is the rewrite engine: it walks each top-level
// declaration of a parsed module, normalizes the surface call syntaxes
// into one canonical shape, routes nodes through the dispatch tables and
// collects findings with exact, non-overlapping edits.
//
// The engine never evaluates code. Every conclusion is drawn from
// syntactic shape plus the name-resolution oracle, and any ambiguity
// (unresolved name, non-literal operand, unprovable equivalence) resolves
// to "no finding".
package simplify

import (
	"github.com/reef-lang/reeflint/internal/ast"
	"github.com/reef-lang/reeflint/internal/equiv"
	"github.com/reef-lang/reeflint/internal/resolve"
	"github.com/reef-lang/reeflint/internal/types"
)

// Context carries the external collaborators the checkers consult.
// Both oracles are synchronous, side-effect-free queries.
type Context struct {
	Resolver resolve.Resolver
	Oracle   equiv.Oracle
}

// Analyze runs the simplification pass over every top-level declaration
// and returns findings in document order. The suppression set is created
// fresh per declaration; no state survives across declarations.
func Analyze(m *ast.Module, cx *Context) []types.Finding {
	var findings []types.Finding
	for i := range m.Decls {
		findings = append(findings, AnalyzeDeclaration(&m.Decls[i], cx)...)
	}
	return findings
}

// AnalyzeDeclaration walks one declaration body in pre-order.
func AnalyzeDeclaration(d *ast.Declaration, cx *Context) []types.Finding {
	w := walker{cx: cx, suppressed: make(map[ast.Range]struct{})}
	w.walk(d.Body)
	return w.findings
}

type walker struct {
	cx         *Context
	suppressed map[ast.Range]struct{}
	findings   []types.Finding
}

// walk visits e and then its children. A suppressed node contributes no
// findings of its own, but its children are still walked: suppression is
// per node, not sub-tree-wide, except where a checker explicitly
// returned ranges for deeper nodes it already accounted for.
func (w *walker) walk(e ast.Expr) {
	if e == nil {
		return
	}
	if _, skip := w.suppressed[e.Range()]; !skip {
		findings, newlySuppressed := dispatch(w.cx, e)
		w.findings = append(w.findings, findings...)
		for _, r := range newlySuppressed {
			w.suppressed[r] = struct{}{}
		}
	}
	for _, child := range ast.Children(e) {
		w.walk(child)
	}
}

// dispatch routes one node to the appropriate table and returns its
// findings plus any ranges the checker has already accounted for.
func dispatch(cx *Context, e ast.Expr) ([]types.Finding, []ast.Range) {
	switch n := e.(type) {
	case *ast.Application:
		if fs := checkLambdaApplication(cx, n); len(fs) > 0 {
			return fs, nil
		}
		if fs := checkPreferInfix(cx, n); len(fs) > 0 {
			return fs, nil
		}
		call, suppressed, ok := normalizeDirect(cx, n)
		if !ok {
			return nil, nil
		}
		return dispatchByName(cx, call, suppressed)

	case *ast.OperatorApplication:
		switch n.Symbol {
		case "<|", "|>":
			call, suppressed, ok := normalizePipe(cx, n)
			if !ok {
				return nil, nil
			}
			return dispatchByName(cx, call, suppressed)
		case ">>", "<<":
			comp := normalizeComposition(n)
			for _, check := range compositionChain {
				if fs := check(cx, comp); len(fs) > 0 {
					return fs, nil
				}
			}
			return nil, nil
		default:
			check, ok := operatorTable[n.Symbol]
			if !ok {
				return nil, nil
			}
			return check(cx, n), nil
		}

	case *ast.IfExpr:
		return checkConditional(cx, n), nil

	case *ast.Negation:
		return checkDoubleNegative(cx, n), nil
	}
	return nil, nil
}

// dispatchByName looks the canonical call up in the by-name table. A
// lookup miss produces no findings and no suppression; a hit keeps the
// normalizer's suppression output even when the checker has no opinion,
// so a pipe-normalized call is never re-examined as a plain application.
func dispatchByName(cx *Context, call *CanonicalCall, suppressed []ast.Range) ([]types.Finding, []ast.Range) {
	entry, ok := callTable[nameKey{module: call.Module, name: call.Name}]
	if !ok {
		return nil, nil
	}
	if entry.emptyArg > 0 {
		if fs := checkEmptyCollectionArg(cx, call, entry.emptyArg); len(fs) > 0 {
			return fs, suppressed
		}
	}
	return entry.check(cx, call), suppressed
}
