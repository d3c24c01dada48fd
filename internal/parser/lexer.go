package parser

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/reef-lang/reeflint/internal/ast"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokLowerIdent
	tokUpperIdent
	tokNumber
	tokString
	tokOperator // binary operator symbol
	tokLambda   // "\"
	tokArrow    // "->"
	tokEquals   // "="
	tokLParen
	tokRParen
	tokLBracket
	tokRBracket
	tokComma
	tokDot
	tokIf
	tokThen
	tokElse
	tokModule
	tokImport
	tokExposing
	tokAs
	tokUnderscore
)

type token struct {
	kind  tokenKind
	text  string // token exactly as written
	value string // decoded content, string literals only
	loc   ast.Range
}

var keywords = map[string]tokenKind{
	"if":       tokIf,
	"then":     tokThen,
	"else":     tokElse,
	"module":   tokModule,
	"import":   tokImport,
	"exposing": tokExposing,
	"as":       tokAs,
}

// operatorSymbols lists multi-rune operators longest-first so the lexer
// never splits `|>` into `|` and `>`.
var operatorSymbols = []string{
	"|>", "<|", ">>", "<<", "||", "&&", "==", "/=", "::", "++",
	"+", "-", "*", "/",
}

// LexError is a lexical error with its source position.
type LexError struct {
	Pos ast.Position
	Msg string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Col, e.Msg)
}

type lexer struct {
	src      []rune
	cur      int
	line     int
	col      int
	tokens   []token
	comments []ast.Comment
}

func newLexer(src string) *lexer {
	return &lexer{src: []rune(src), line: 1, col: 1}
}

func (l *lexer) pos() ast.Position { return ast.Position{Line: l.line, Col: l.col} }

func (l *lexer) atEnd() bool { return l.cur >= len(l.src) }

func (l *lexer) peek() rune {
	if l.atEnd() {
		return 0
	}
	return l.src[l.cur]
}

func (l *lexer) peekAt(n int) rune {
	if l.cur+n >= len(l.src) {
		return 0
	}
	return l.src[l.cur+n]
}

func (l *lexer) advance() rune {
	r := l.src[l.cur]
	l.cur++
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

func (l *lexer) emit(kind tokenKind, text string, start ast.Position) {
	l.tokens = append(l.tokens, token{
		kind: kind,
		text: text,
		loc:  ast.Range{Start: start, End: l.pos()},
	})
}

func (l *lexer) run() error {
	for !l.atEnd() {
		r := l.peek()
		switch {
		case r == ' ' || r == '\t' || r == '\r' || r == '\n':
			l.advance()
		case r == '-' && l.peekAt(1) == '-':
			l.scanComment()
		case r == '"':
			if err := l.scanString(); err != nil {
				return err
			}
		case isDigit(r):
			l.scanNumber()
		case unicode.IsLetter(r):
			l.scanIdent()
		case r == '_':
			start := l.pos()
			l.advance()
			l.emit(tokUnderscore, "_", start)
		case r == '\\':
			start := l.pos()
			l.advance()
			l.emit(tokLambda, "\\", start)
		default:
			if !l.scanPunct() {
				return &LexError{Pos: l.pos(), Msg: fmt.Sprintf("unexpected character %q", r)}
			}
		}
	}
	l.emit(tokEOF, "", l.pos())
	return nil
}

func (l *lexer) scanComment() {
	start := l.pos()
	var sb strings.Builder
	l.advance() // -
	l.advance() // -
	for !l.atEnd() && l.peek() != '\n' {
		sb.WriteRune(l.advance())
	}
	l.comments = append(l.comments, ast.Comment{
		Text: strings.TrimSpace(sb.String()),
		Loc:  ast.Range{Start: start, End: l.pos()},
	})
}

func (l *lexer) scanString() error {
	start := l.pos()
	var text, value strings.Builder
	text.WriteRune(l.advance()) // opening quote
	for {
		if l.atEnd() || l.peek() == '\n' {
			return &LexError{Pos: start, Msg: "unterminated string literal"}
		}
		r := l.advance()
		text.WriteRune(r)
		if r == '"' {
			break
		}
		if r == '\\' {
			if l.atEnd() {
				return &LexError{Pos: start, Msg: "unterminated string literal"}
			}
			esc := l.advance()
			text.WriteRune(esc)
			switch esc {
			case 'n':
				value.WriteRune('\n')
			case 't':
				value.WriteRune('\t')
			case 'r':
				value.WriteRune('\r')
			case '\\', '"', '\'':
				value.WriteRune(esc)
			default:
				return &LexError{Pos: start, Msg: fmt.Sprintf("unknown escape \\%c", esc)}
			}
			continue
		}
		value.WriteRune(r)
	}
	l.tokens = append(l.tokens, token{
		kind:  tokString,
		text:  text.String(),
		value: value.String(),
		loc:   ast.Range{Start: start, End: l.pos()},
	})
	return nil
}

func (l *lexer) scanNumber() {
	start := l.pos()
	var sb strings.Builder
	if l.peek() == '0' && (l.peekAt(1) == 'x' || l.peekAt(1) == 'X') {
		sb.WriteRune(l.advance())
		sb.WriteRune(l.advance())
		for !l.atEnd() && isHexDigit(l.peek()) {
			sb.WriteRune(l.advance())
		}
	} else {
		for !l.atEnd() && isDigit(l.peek()) {
			sb.WriteRune(l.advance())
		}
		if l.peek() == '.' && isDigit(l.peekAt(1)) {
			sb.WriteRune(l.advance())
			for !l.atEnd() && isDigit(l.peek()) {
				sb.WriteRune(l.advance())
			}
		}
	}
	l.emit(tokNumber, sb.String(), start)
}

func (l *lexer) scanIdent() {
	start := l.pos()
	var sb strings.Builder
	for !l.atEnd() && (unicode.IsLetter(l.peek()) || isDigit(l.peek()) || l.peek() == '_') {
		sb.WriteRune(l.advance())
	}
	name := sb.String()
	if kind, ok := keywords[name]; ok {
		l.emit(kind, name, start)
		return
	}
	if unicode.IsUpper([]rune(name)[0]) {
		l.emit(tokUpperIdent, name, start)
	} else {
		l.emit(tokLowerIdent, name, start)
	}
}

func (l *lexer) scanPunct() bool {
	start := l.pos()
	switch l.peek() {
	case '(':
		l.advance()
		l.emit(tokLParen, "(", start)
		return true
	case ')':
		l.advance()
		l.emit(tokRParen, ")", start)
		return true
	case '[':
		l.advance()
		l.emit(tokLBracket, "[", start)
		return true
	case ']':
		l.advance()
		l.emit(tokRBracket, "]", start)
		return true
	case ',':
		l.advance()
		l.emit(tokComma, ",", start)
		return true
	case '.':
		l.advance()
		l.emit(tokDot, ".", start)
		return true
	}
	if l.peek() == '-' && l.peekAt(1) == '>' {
		l.advance()
		l.advance()
		l.emit(tokArrow, "->", start)
		return true
	}
	if l.peek() == '=' && l.peekAt(1) != '=' {
		l.advance()
		l.emit(tokEquals, "=", start)
		return true
	}
	for _, sym := range operatorSymbols {
		if l.matches(sym) {
			for range sym {
				l.advance()
			}
			l.emit(tokOperator, sym, start)
			return true
		}
	}
	return false
}

func (l *lexer) matches(sym string) bool {
	for i, r := range []rune(sym) {
		if l.peekAt(i) != r {
			return false
		}
	}
	return true
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
