// Package parser turns Reef source into the syntax tree defined in
// internal/ast. Every node carries an exact half-open line/column range;
// the lint engine's edits are computed purely from these ranges, so the
// parser is the single source of truth for positions.
//
// The grammar is a small ML-family expression language: whitespace
// application, `<|`/`|>` pipes, `>>`/`<<` composition, `::`/`++` list
// operators, `if .. then .. else ..`, lambdas `\x -> e`, and qualified
// references. Top-level declarations start with a lower-case identifier
// in column 1; any token in column 1 terminates the previous declaration
// body (the layout rule).
package parser

import (
	"fmt"
	"strings"

	"github.com/reef-lang/reeflint/internal/ast"
)

// ParseError is a syntax error with its source position.
type ParseError struct {
	Filename string
	Pos      ast.Position
	Msg      string
}

func (e *ParseError) Error() string {
	if e.Filename == "" {
		return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Col, e.Msg)
	}
	return fmt.Sprintf("%s:%d:%d: %s", e.Filename, e.Pos.Line, e.Pos.Col, e.Msg)
}

// bindingPower maps each binary operator to its precedence. rightAssoc
// operators parse their right operand at the same level instead of one
// tighter.
var bindingPower = map[string]int{
	"<|": 1,
	"|>": 2,
	"||": 3,
	"&&": 4,
	"==": 5, "/=": 5,
	"::": 6, "++": 6,
	"+": 7, "-": 7,
	"*": 8, "/": 8,
	">>": 9, "<<": 9,
}

var rightAssoc = map[string]bool{
	"<|": true, "||": true, "&&": true, "::": true, "++": true, "<<": true,
}

type parser struct {
	filename string
	toks     []token
	pos      int
}

// ParseModule parses one Reef source file.
func ParseModule(filename string, src []byte) (*ast.Module, error) {
	lx := newLexer(string(src))
	if err := lx.run(); err != nil {
		if le, ok := err.(*LexError); ok {
			return nil, &ParseError{Filename: filename, Pos: le.Pos, Msg: le.Msg}
		}
		return nil, err
	}

	p := &parser{filename: filename, toks: lx.tokens}
	mod := &ast.Module{Comments: lx.comments}

	if p.peek().kind == tokModule {
		name, err := p.parseModuleHeader()
		if err != nil {
			return nil, err
		}
		mod.Name = name
	}
	for p.peek().kind == tokImport {
		imp, err := p.parseImport()
		if err != nil {
			return nil, err
		}
		mod.Imports = append(mod.Imports, imp)
	}
	for p.peek().kind != tokEOF {
		decl, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		mod.Decls = append(mod.Decls, decl)
	}
	return mod, nil
}

// ParseExpr parses a single standalone expression. Used by tests.
func ParseExpr(src string) (ast.Expr, error) {
	lx := newLexer(src)
	if err := lx.run(); err != nil {
		return nil, err
	}
	p := &parser{toks: lx.tokens}
	e, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokEOF {
		return nil, p.errorf(p.peek(), "unexpected %q after expression", p.peek().text)
	}
	return e, nil
}

func (p *parser) peek() token { return p.toks[p.pos] }

// next consumes the current token. It is sticky at EOF so malformed
// input cannot run past the token stream.
func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) errorf(t token, format string, args ...any) error {
	return &ParseError{Filename: p.filename, Pos: t.loc.Start, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) expect(kind tokenKind, what string) (token, error) {
	t := p.next()
	if t.kind != kind {
		return t, p.errorf(t, "expected %s, found %q", what, t.text)
	}
	return t, nil
}

func (p *parser) parseModuleHeader() (string, error) {
	p.next() // module
	name, _, err := p.parseDottedUpper()
	if err != nil {
		return "", err
	}
	if p.peek().kind == tokExposing {
		p.next()
		if _, err := p.expect(tokLParen, "'('"); err != nil {
			return "", err
		}
		if err := p.skipBalancedParens(); err != nil {
			return "", err
		}
	}
	return name, nil
}

func (p *parser) parseImport() (ast.Import, error) {
	start := p.next().loc.Start // import
	name, end, err := p.parseDottedUpper()
	if err != nil {
		return ast.Import{}, err
	}
	imp := ast.Import{Module: name}
	if p.peek().kind == tokAs {
		p.next()
		alias, err := p.expect(tokUpperIdent, "module alias")
		if err != nil {
			return ast.Import{}, err
		}
		imp.Alias = alias.text
		end = alias.loc.End
	}
	if p.peek().kind == tokExposing {
		p.next()
		if _, err := p.expect(tokLParen, "'('"); err != nil {
			return ast.Import{}, err
		}
		if err := p.skipBalancedParens(); err != nil {
			return ast.Import{}, err
		}
		end = p.toks[p.pos-1].loc.End
	}
	imp.Loc = ast.Range{Start: start, End: end}
	return imp, nil
}

// parseDottedUpper parses `Upper(.Upper)*` and returns the joined name.
func (p *parser) parseDottedUpper() (string, ast.Position, error) {
	first, err := p.expect(tokUpperIdent, "module name")
	if err != nil {
		return "", ast.Position{}, err
	}
	parts := []string{first.text}
	end := first.loc.End
	for p.peek().kind == tokDot && p.toks[p.pos+1].kind == tokUpperIdent {
		p.next()
		seg := p.next()
		parts = append(parts, seg.text)
		end = seg.loc.End
	}
	return strings.Join(parts, "."), end, nil
}

// skipBalancedParens consumes tokens until the paren opened just before
// the call is closed. Exposing lists are irrelevant to the analysis.
func (p *parser) skipBalancedParens() error {
	depth := 1
	for depth > 0 {
		t := p.next()
		switch t.kind {
		case tokLParen:
			depth++
		case tokRParen:
			depth--
		case tokEOF:
			return p.errorf(t, "unclosed '(' in exposing list")
		}
	}
	return nil
}

func (p *parser) parseDeclaration() (ast.Declaration, error) {
	nameTok, err := p.expect(tokLowerIdent, "declaration name")
	if err != nil {
		return ast.Declaration{}, err
	}
	if nameTok.loc.Start.Col != 1 {
		return ast.Declaration{}, p.errorf(nameTok, "declaration must start in column 1")
	}
	decl := ast.Declaration{Name: nameTok.text, NameLoc: nameTok.loc}

	for p.peek().kind != tokEquals {
		if p.peek().kind == tokEOF {
			return ast.Declaration{}, p.errorf(p.peek(), "unexpected end of file in declaration %q", decl.Name)
		}
		pat, err := p.parsePattern()
		if err != nil {
			return ast.Declaration{}, err
		}
		decl.Params = append(decl.Params, pat)
	}
	p.next() // =

	body, err := p.parseExpr(0)
	if err != nil {
		return ast.Declaration{}, err
	}
	decl.Body = body
	decl.Loc = ast.Range{Start: nameTok.loc.Start, End: body.Range().End}
	return decl, nil
}

func (p *parser) parsePattern() (ast.Pattern, error) {
	t := p.next()
	switch t.kind {
	case tokLowerIdent:
		return &ast.VarPattern{Name: t.text, Loc: t.loc}, nil
	case tokUnderscore:
		return &ast.WildcardPattern{Loc: t.loc}, nil
	case tokLParen:
		if p.peek().kind == tokRParen {
			closeTok := p.next()
			return &ast.UnitPattern{Loc: ast.Range{Start: t.loc.Start, End: closeTok.loc.End}}, nil
		}
		inner, err := p.parsePattern()
		if err != nil {
			return nil, err
		}
		closeTok, err := p.expect(tokRParen, "')'")
		if err != nil {
			return nil, err
		}
		return &ast.ParenthesizedPattern{
			Inner: inner,
			Loc:   ast.Range{Start: t.loc.Start, End: closeTok.loc.End},
		}, nil
	default:
		return nil, p.errorf(t, "expected pattern, found %q", t.text)
	}
}

// atBoundary reports whether the next token starts a new top-level
// declaration (layout rule: column 1 ends the current body).
func (p *parser) atBoundary() bool {
	t := p.peek()
	return t.kind == tokEOF || t.loc.Start.Col == 1
}

func (p *parser) parseExpr(minBP int) (ast.Expr, error) {
	left, err := p.parseApplication()
	if err != nil {
		return nil, err
	}
	for {
		if p.atBoundary() {
			return left, nil
		}
		t := p.peek()
		if t.kind != tokOperator {
			return left, nil
		}
		bp, ok := bindingPower[t.text]
		if !ok || bp < minBP {
			return left, nil
		}
		p.next()
		nextBP := bp + 1
		if rightAssoc[t.text] {
			nextBP = bp
		}
		right, err := p.parseExpr(nextBP)
		if err != nil {
			return nil, err
		}
		left = &ast.OperatorApplication{
			Symbol: t.text,
			Left:   left,
			Right:  right,
			OpLoc:  t.loc,
			Loc:    ast.Range{Start: left.Range().Start, End: right.Range().End},
		}
	}
}

func (p *parser) parseApplication() (ast.Expr, error) {
	callee, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	var args []ast.Expr
	for !p.atBoundary() && p.startsAtom(p.peek()) {
		arg, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	if len(args) == 0 {
		return callee, nil
	}
	return &ast.Application{
		Callee: callee,
		Args:   args,
		Loc:    ast.Range{Start: callee.Range().Start, End: args[len(args)-1].Range().End},
	}, nil
}

// startsAtom reports whether t can begin an application argument.
// Operators cannot: `f - 1` is subtraction, not `f (-1)`.
func (p *parser) startsAtom(t token) bool {
	switch t.kind {
	case tokNumber, tokString, tokLowerIdent, tokUpperIdent,
		tokLParen, tokLBracket, tokLambda, tokIf:
		return true
	}
	return false
}

func (p *parser) parseAtom() (ast.Expr, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		return &ast.Literal{Kind: ast.NumberLiteral, Text: t.text, Value: t.text, Loc: t.loc}, nil

	case tokString:
		return &ast.Literal{Kind: ast.StringLiteral, Text: t.text, Value: t.value, Loc: t.loc}, nil

	case tokLowerIdent:
		return &ast.Reference{Name: t.text, Loc: t.loc}, nil

	case tokUpperIdent:
		return p.parseQualifiedRef(t)

	case tokLBracket:
		return p.parseListLiteral(t)

	case tokLParen:
		return p.parseParenExpr(t)

	case tokLambda:
		return p.parseLambda(t)

	case tokIf:
		return p.parseIf(t)

	case tokOperator:
		if t.text == "-" {
			inner, err := p.parseAtom()
			if err != nil {
				return nil, err
			}
			return &ast.Negation{
				Inner: inner,
				Loc:   ast.Range{Start: t.loc.Start, End: inner.Range().End},
			}, nil
		}
	}
	return nil, p.errorf(t, "expected expression, found %q", t.text)
}

func (p *parser) parseQualifiedRef(first token) (ast.Expr, error) {
	parts := []string{first.text}
	end := first.loc.End
	for p.peek().kind == tokDot {
		nextKind := p.toks[p.pos+1].kind
		if nextKind != tokUpperIdent && nextKind != tokLowerIdent {
			break
		}
		p.next()
		seg := p.next()
		parts = append(parts, seg.text)
		end = seg.loc.End
		if seg.kind == tokLowerIdent {
			break
		}
	}
	ref := &ast.Reference{
		Name: parts[len(parts)-1],
		Loc:  ast.Range{Start: first.loc.Start, End: end},
	}
	if len(parts) > 1 {
		ref.Qualifier = strings.Join(parts[:len(parts)-1], ".")
	}
	return ref, nil
}

func (p *parser) parseListLiteral(open token) (ast.Expr, error) {
	list := &ast.ListLiteral{}
	if p.peek().kind != tokRBracket {
		for {
			item, err := p.parseExpr(0)
			if err != nil {
				return nil, err
			}
			list.Items = append(list.Items, item)
			if p.peek().kind != tokComma {
				break
			}
			p.next()
		}
	}
	closeTok, err := p.expect(tokRBracket, "']'")
	if err != nil {
		return nil, err
	}
	list.Loc = ast.Range{Start: open.loc.Start, End: closeTok.loc.End}
	return list, nil
}

func (p *parser) parseParenExpr(open token) (ast.Expr, error) {
	// unit value
	if p.peek().kind == tokRParen {
		closeTok := p.next()
		return &ast.Reference{
			Name: "()",
			Loc:  ast.Range{Start: open.loc.Start, End: closeTok.loc.End},
		}, nil
	}
	// operator in prefix form: (+), (::), ...
	if t := p.peek(); t.kind == tokOperator && p.toks[p.pos+1].kind == tokRParen {
		p.next()
		closeTok := p.next()
		return &ast.Reference{
			Name: t.text,
			Loc:  ast.Range{Start: open.loc.Start, End: closeTok.loc.End},
		}, nil
	}
	inner, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	closeTok, err := p.expect(tokRParen, "')'")
	if err != nil {
		return nil, err
	}
	return &ast.Parenthesized{
		Inner: inner,
		Loc:   ast.Range{Start: open.loc.Start, End: closeTok.loc.End},
	}, nil
}

func (p *parser) parseLambda(backslash token) (ast.Expr, error) {
	lam := &ast.LambdaExpr{}
	for p.peek().kind != tokArrow {
		if p.peek().kind == tokEOF {
			return nil, p.errorf(p.peek(), "unexpected end of file in lambda")
		}
		pat, err := p.parsePattern()
		if err != nil {
			return nil, err
		}
		lam.Params = append(lam.Params, pat)
	}
	if len(lam.Params) == 0 {
		return nil, p.errorf(backslash, "lambda needs at least one parameter")
	}
	p.next() // ->
	body, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	lam.Body = body
	lam.Loc = ast.Range{Start: backslash.loc.Start, End: body.Range().End}
	return lam, nil
}

func (p *parser) parseIf(ifTok token) (ast.Expr, error) {
	cond, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokThen, "'then'"); err != nil {
		return nil, err
	}
	then, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokElse, "'else'"); err != nil {
		return nil, err
	}
	els, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	return &ast.IfExpr{
		Cond: cond,
		Then: then,
		Else: els,
		Loc:  ast.Range{Start: ifTok.loc.Start, End: els.Range().End},
	}, nil
}
