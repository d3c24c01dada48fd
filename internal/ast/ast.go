// Package ast defines the Reef syntax tree consumed by the lint engine.
// Nodes are immutable once produced by the parser; the engine only reads
// them and derives source ranges for findings and edits.
package ast

// Position is a 1-based line/column location in a source file.
// Columns are counted in runes.
type Position struct {
	Line int
	Col  int
}

// Before reports whether p is strictly before o in document order.
func (p Position) Before(o Position) bool {
	if p.Line != o.Line {
		return p.Line < o.Line
	}
	return p.Col < o.Col
}

// Shift returns the position moved by n columns on the same line.
func (p Position) Shift(n int) Position {
	return Position{Line: p.Line, Col: p.Col + n}
}

// Range is a half-open source interval [Start, End). It is a comparable
// value and usable as a map key, which the suppression set relies on.
type Range struct {
	Start Position
	End   Position
}

// Contains reports whether o lies entirely within r.
func (r Range) Contains(o Range) bool {
	return !o.Start.Before(r.Start) && !r.End.Before(o.End)
}

// Overlaps reports whether r and o share at least one position.
// Touching boundaries of half-open ranges do not overlap.
func (r Range) Overlaps(o Range) bool {
	return r.Start.Before(o.End) && o.Start.Before(r.End)
}

// Empty reports whether the range spans no characters.
func (r Range) Empty() bool {
	return r.Start == r.End
}

// Expr is the closed set of Reef expression nodes.
type Expr interface {
	Range() Range
	exprNode()
}

// Pattern is the closed set of Reef parameter patterns.
type Pattern interface {
	Range() Range
	patternNode()
}

// LiteralKind discriminates literal expressions.
type LiteralKind int

const (
	StringLiteral LiteralKind = iota
	NumberLiteral
)

// Literal is a string or number literal.
// Text is the literal exactly as written (quotes included for strings);
// Value is the decoded content for strings and equals Text for numbers.
type Literal struct {
	Kind  LiteralKind
	Text  string
	Value string
	Loc   Range
}

// ListLiteral is a bracketed list of expressions.
type ListLiteral struct {
	Items []Expr
	Loc   Range
}

// Application is whitespace function application: callee arg1 arg2 ...
type Application struct {
	Callee Expr
	Args   []Expr
	Loc    Range
}

// OperatorApplication is a binary operator expression. OpLoc covers the
// operator token itself, which fix builders use to rewrite the symbol.
type OperatorApplication struct {
	Symbol string
	Left   Expr
	Right  Expr
	OpLoc  Range
	Loc    Range
}

// IfExpr is `if cond then a else b`.
type IfExpr struct {
	Cond Expr
	Then Expr
	Else Expr
	Loc  Range
}

// LambdaExpr is `\p1 p2 -> body`.
type LambdaExpr struct {
	Params []Pattern
	Body   Expr
	Loc    Range
}

// Reference is a possibly-qualified name occurrence. An operator used in
// prefix form, `(+)`, is a Reference whose Name is the bare symbol and
// whose range includes the parentheses.
type Reference struct {
	Qualifier string
	Name      string
	Loc       Range
}

// Negation is unary minus.
type Negation struct {
	Inner Expr
	Loc   Range
}

// Parenthesized wraps an inner expression in parentheses.
type Parenthesized struct {
	Inner Expr
	Loc   Range
}

func (n *Literal) Range() Range             { return n.Loc }
func (n *ListLiteral) Range() Range         { return n.Loc }
func (n *Application) Range() Range         { return n.Loc }
func (n *OperatorApplication) Range() Range { return n.Loc }
func (n *IfExpr) Range() Range              { return n.Loc }
func (n *LambdaExpr) Range() Range          { return n.Loc }
func (n *Reference) Range() Range           { return n.Loc }
func (n *Negation) Range() Range            { return n.Loc }
func (n *Parenthesized) Range() Range       { return n.Loc }

func (*Literal) exprNode()             {}
func (*ListLiteral) exprNode()         {}
func (*Application) exprNode()         {}
func (*OperatorApplication) exprNode() {}
func (*IfExpr) exprNode()              {}
func (*LambdaExpr) exprNode()          {}
func (*Reference) exprNode()           {}
func (*Negation) exprNode()            {}
func (*Parenthesized) exprNode()       {}

// VarPattern binds a name.
type VarPattern struct {
	Name string
	Loc  Range
}

// WildcardPattern is `_`.
type WildcardPattern struct {
	Loc Range
}

// UnitPattern is `()`.
type UnitPattern struct {
	Loc Range
}

// ParenthesizedPattern wraps an inner pattern.
type ParenthesizedPattern struct {
	Inner Pattern
	Loc   Range
}

func (p *VarPattern) Range() Range           { return p.Loc }
func (p *WildcardPattern) Range() Range      { return p.Loc }
func (p *UnitPattern) Range() Range          { return p.Loc }
func (p *ParenthesizedPattern) Range() Range { return p.Loc }

func (*VarPattern) patternNode()           {}
func (*WildcardPattern) patternNode()      {}
func (*UnitPattern) patternNode()          {}
func (*ParenthesizedPattern) patternNode() {}

// Unparen strips any number of Parenthesized wrappers.
func Unparen(e Expr) Expr {
	for {
		p, ok := e.(*Parenthesized)
		if !ok {
			return e
		}
		e = p.Inner
	}
}

// UnparenPattern strips any number of ParenthesizedPattern wrappers.
func UnparenPattern(p Pattern) Pattern {
	for {
		pp, ok := p.(*ParenthesizedPattern)
		if !ok {
			return p
		}
		p = pp.Inner
	}
}

// Children returns the direct sub-expressions of e in document order.
func Children(e Expr) []Expr {
	switch n := e.(type) {
	case *ListLiteral:
		return n.Items
	case *Application:
		out := make([]Expr, 0, len(n.Args)+1)
		out = append(out, n.Callee)
		out = append(out, n.Args...)
		return out
	case *OperatorApplication:
		return []Expr{n.Left, n.Right}
	case *IfExpr:
		return []Expr{n.Cond, n.Then, n.Else}
	case *LambdaExpr:
		return []Expr{n.Body}
	case *Negation:
		return []Expr{n.Inner}
	case *Parenthesized:
		return []Expr{n.Inner}
	default:
		return nil
	}
}

// Inspect walks e in pre-order, calling fn for every node. If fn returns
// false the node's children are skipped.
func Inspect(e Expr, fn func(Expr) bool) {
	if e == nil || !fn(e) {
		return
	}
	for _, c := range Children(e) {
		Inspect(c, fn)
	}
}
