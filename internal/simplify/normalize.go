package simplify

import "github.com/reef-lang/reeflint/internal/ast"

// PipeDirection records which surface syntax a canonical call came from.
type PipeDirection int

const (
	PipeNone PipeDirection = iota
	PipeLeft
	PipeRight
)

// CanonicalCall is the unified representation of a function invocation
// regardless of whether it was written as direct application, left-pipe
// or right-pipe. The by-name dispatch table keys on (Module, Name).
type CanonicalCall struct {
	Callee      *ast.Reference
	CalleeRange ast.Range
	Module      string
	Name        string
	FirstArg    ast.Expr
	SecondArg   ast.Expr // nil when the call has a single argument
	FullRange   ast.Range
	Pipe        PipeDirection
}

// CompositionDirection distinguishes `>>` from `<<`.
type CompositionDirection int

const (
	LeftToRight CompositionDirection = iota // >>
	RightToLeft                             // <<
)

// CompositionShape is the canonical form of a `>>`/`<<` expression.
// Left and Right are in source order.
type CompositionShape struct {
	Direction  CompositionDirection
	Left       ast.Expr
	Right      ast.Expr
	LeftRange  ast.Range
	RightRange ast.Range
	OpRange    ast.Range
	FullRange  ast.Range
}

// First returns the function applied first under the composition.
func (c *CompositionShape) First() ast.Expr {
	if c.Direction == LeftToRight {
		return c.Left
	}
	return c.Right
}

// Second returns the function applied second.
func (c *CompositionShape) Second() ast.Expr {
	if c.Direction == LeftToRight {
		return c.Right
	}
	return c.Left
}

// normalizeDirect canonicalizes plain application `f a [b]`. Calls whose
// callee is not a resolvable reference, or that carry more than two
// arguments, are declined: every by-name law is stated over at most two
// operands and guessing at longer argument lists is unsound.
func normalizeDirect(cx *Context, app *ast.Application) (*CanonicalCall, []ast.Range, bool) {
	if len(app.Args) == 0 || len(app.Args) > 2 {
		return nil, nil, false
	}
	callee, module, ok := resolvedRef(cx, app.Callee)
	if !ok {
		return nil, nil, false
	}
	call := &CanonicalCall{
		Callee:      callee,
		CalleeRange: callee.Loc,
		Module:      module,
		Name:        callee.Name,
		FirstArg:    app.Args[0],
		FullRange:   app.Loc,
		Pipe:        PipeNone,
	}
	if len(app.Args) == 2 {
		call.SecondArg = app.Args[1]
	}
	return call, nil, true
}

// normalizePipe canonicalizes `f <| a`, `(f a) <| b` and the mirrored
// right-pipe forms. When the function side is a one-argument application,
// that inner application's range is returned for suppression: the outer
// canonical call accounts for it, so it must not be dispatched again.
func normalizePipe(cx *Context, op *ast.OperatorApplication) (*CanonicalCall, []ast.Range, bool) {
	var fnSide, argSide ast.Expr
	var pipe PipeDirection
	switch op.Symbol {
	case "<|":
		fnSide, argSide, pipe = op.Left, op.Right, PipeLeft
	case "|>":
		fnSide, argSide, pipe = op.Right, op.Left, PipeRight
	default:
		return nil, nil, false
	}

	switch fn := ast.Unparen(fnSide).(type) {
	case *ast.Reference:
		_, module, ok := resolvedRef(cx, fn)
		if !ok {
			return nil, nil, false
		}
		return &CanonicalCall{
			Callee:      fn,
			CalleeRange: fn.Loc,
			Module:      module,
			Name:        fn.Name,
			FirstArg:    argSide,
			FullRange:   op.Loc,
			Pipe:        pipe,
		}, nil, true

	case *ast.Application:
		if len(fn.Args) != 1 {
			return nil, nil, false
		}
		callee, module, ok := resolvedRef(cx, fn.Callee)
		if !ok {
			return nil, nil, false
		}
		return &CanonicalCall{
			Callee:      callee,
			CalleeRange: callee.Loc,
			Module:      module,
			Name:        callee.Name,
			FirstArg:    fn.Args[0],
			SecondArg:   argSide,
			FullRange:   op.Loc,
			Pipe:        pipe,
		}, []ast.Range{fn.Loc}, true
	}
	return nil, nil, false
}

// normalizeComposition canonicalizes `f >> g` and `f << g`.
func normalizeComposition(op *ast.OperatorApplication) *CompositionShape {
	dir := LeftToRight
	if op.Symbol == "<<" {
		dir = RightToLeft
	}
	return &CompositionShape{
		Direction:  dir,
		Left:       op.Left,
		Right:      op.Right,
		LeftRange:  op.Left.Range(),
		RightRange: op.Right.Range(),
		OpRange:    op.OpLoc,
		FullRange:  op.Loc,
	}
}
