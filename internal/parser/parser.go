package parser

import (
	"fmt"
	"strconv"

	"github.com/HicaroD/Tern/internal/ast"
	"github.com/HicaroD/Tern/internal/diagnostics"
	"github.com/HicaroD/Tern/internal/lexer"
	"github.com/HicaroD/Tern/internal/lexer/token"
)

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(left ast.Expression) ast.Expression
)

// Parser is a Pratt parser with one token of lookahead. It pulls tokens from
// its lexer one at a time and never fails outright: problems are reported to
// the collector and the offending statement is dropped.
type Parser struct {
	lex       *lexer.Lexer
	collector *diagnostics.Collector

	cur  token.Token
	peek token.Token

	prefixFns map[token.Kind]prefixParseFn
	infixFns  map[token.Kind]infixParseFn
}

func New(lex *lexer.Lexer) *Parser {
	return NewWithCollector(lex, diagnostics.New())
}

func NewWithCollector(lex *lexer.Lexer, collector *diagnostics.Collector) *Parser {
	parser := new(Parser)
	parser.lex = lex
	parser.collector = collector
	parser.prefixFns = make(map[token.Kind]prefixParseFn)
	parser.infixFns = make(map[token.Kind]infixParseFn)

	parser.registerPrefix(token.IDENTIFIER, parser.parseIdExpr)
	parser.registerPrefix(token.INTEGER, parser.parseIntegerExpr)
	parser.registerPrefix(token.BANG, parser.parsePrefixExpr)
	parser.registerPrefix(token.MINUS, parser.parsePrefixExpr)

	// cur and peek
	parser.next()
	parser.next()
	return parser
}

func (p *Parser) registerPrefix(kind token.Kind, fn prefixParseFn) {
	p.prefixFns[kind] = fn
}

func (p *Parser) registerInfix(kind token.Kind, fn infixParseFn) {
	p.infixFns[kind] = fn
}

// Errors returns every diagnostic message in the order it was found.
func (p *Parser) Errors() []string {
	return p.collector.Messages()
}

func (p *Parser) Diagnostics() []diagnostics.Diag {
	return p.collector.Diags
}

func (p *Parser) Err() error {
	return p.collector.Err()
}

func (p *Parser) ParseProgram() *ast.Program {
	program := ast.NewProgram()

	for !p.curIs(token.EOF) {
		stmt := p.parseStmt()
		if stmt != nil {
			program.Push(stmt)
		}
		p.next()
	}

	return program
}

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.lex.Next()
}

func (p *Parser) curIs(kind token.Kind) bool  { return p.cur.Kind == kind }
func (p *Parser) peekIs(kind token.Kind) bool { return p.peek.Kind == kind }

// expectPeek advances only if the next token has the expected kind,
// otherwise it reports the mismatch and leaves the cursor untouched.
func (p *Parser) expectPeek(expectedKind token.Kind) bool {
	if p.peekIs(expectedKind) {
		p.next()
		return true
	}
	p.report(p.peek.Pos, diagnostics.SEVERITY_STRUCTURAL,
		"expected next token type to be %s, got %s instead", expectedKind, p.peek.Kind)
	return false
}

func (p *Parser) report(pos token.Pos, severity diagnostics.Severity, format string, args ...any) {
	p.collector.Report(diagnostics.Diag{
		Message:  fmt.Sprintf(format, args...),
		Pos:      pos,
		Severity: severity,
	})
}

func (p *Parser) skipSemicolon() {
	if p.peekIs(token.SEMICOLON) {
		p.next()
	}
}

// parseStmt returns an untyped nil when the statement was dropped, so a
// nil rule result never reaches the program as a typed nil.
func (p *Parser) parseStmt() ast.Statement {
	var stmt ast.Statement
	switch p.cur.Kind {
	case token.LET:
		if let := p.parseLetStmt(); let != nil {
			stmt = let
		}
	case token.RETURN:
		if ret := p.parseReturnStmt(); ret != nil {
			stmt = ret
		}
	default:
		if expr := p.parseExprStmt(); expr != nil {
			stmt = expr
		}
	}
	return stmt
}

func (p *Parser) parseLetStmt() *ast.LetStmt {
	let := p.cur

	if !p.expectPeek(token.IDENTIFIER) {
		return nil
	}
	name := ast.NewIdExpr(p.cur)

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.next() // =

	value := p.parseExpr(LOWEST)
	p.skipSemicolon()

	return ast.NewLetStmt(let, name, value)
}

func (p *Parser) parseReturnStmt() *ast.ReturnStmt {
	ret := p.cur

	var value ast.Expression
	if p.peekIs(token.SEMICOLON) || p.peekIs(token.EOF) {
		p.skipSemicolon()
		return ast.NewReturnStmt(ret, nil)
	}

	p.next() // return
	value = p.parseExpr(LOWEST)
	p.skipSemicolon()

	return ast.NewReturnStmt(ret, value)
}

func (p *Parser) parseExprStmt() *ast.ExprStmt {
	tok := p.cur

	expr := p.parseExpr(LOWEST)
	p.skipSemicolon()

	return ast.NewExprStmt(tok, expr)
}

func (p *Parser) parseExpr(precedence Precedence) ast.Expression {
	prefix, ok := p.prefixFns[p.cur.Kind]
	if !ok {
		p.report(p.cur.Pos, diagnostics.SEVERITY_STRUCTURAL,
			"no prefix parse function for %s found", p.cur.Kind)
		return nil
	}
	left := prefix()

	for !p.peekIs(token.SEMICOLON) && precedence < precedenceOf(p.peek.Kind) {
		infix, ok := p.infixFns[p.peek.Kind]
		if !ok {
			return left
		}
		p.next()
		left = infix(left)
	}

	return left
}

func (p *Parser) parseIdExpr() ast.Expression {
	return ast.NewIdExpr(p.cur)
}

func (p *Parser) parseIntegerExpr() ast.Expression {
	value, err := strconv.ParseInt(p.cur.Literal, 10, 64)
	if err != nil {
		p.report(p.cur.Pos, diagnostics.SEVERITY_LITERAL,
			"could not parse %s as an integer", p.cur.Literal)
		value = 0
	}
	return ast.NewIntegerExpr(p.cur, value)
}

func (p *Parser) parsePrefixExpr() ast.Expression {
	operator := p.cur

	p.next()
	operand := p.parseExpr(PREFIX)
	if operand == nil {
		return nil
	}

	return ast.NewPrefixExpr(operator, operand)
}
