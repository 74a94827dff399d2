package parser

import (
	"github.com/HicaroD/Tern/internal/ast"
	"github.com/HicaroD/Tern/internal/lexer"
)

// Useful for testing
func ParseExprFrom(src string) (ast.Expression, []string) {
	p := New(lexer.New(src))
	expr := p.parseExpr(LOWEST)
	return expr, p.Errors()
}

// Useful for testing
func ParseProgramFrom(src string) (*ast.Program, []string) {
	p := New(lexer.New(src))
	program := p.ParseProgram()
	return program, p.Errors()
}
