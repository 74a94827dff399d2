package testutil

import (
	"github.com/HicaroD/Tern/internal/ast"
	"github.com/HicaroD/Tern/internal/diagnostics"
	"github.com/HicaroD/Tern/internal/lexer"
	"github.com/HicaroD/Tern/internal/lexer/token"
	"github.com/HicaroD/Tern/internal/parser"
)

const DefaultFilename = "test.tn"

func NewLexer(src string, filename string) *lexer.Lexer {
	if filename == "" {
		filename = DefaultFilename
	}
	return lexer.NewWithFilename(filename, src)
}

func NewParserWithCollector(src string) (*parser.Parser, *diagnostics.Collector) {
	collector := diagnostics.New()
	return parser.NewWithCollector(lexer.New(src), collector), collector
}

func ParseSource(src string) (*ast.Program, *diagnostics.Collector) {
	p, collector := NewParserWithCollector(src)
	return p.ParseProgram(), collector
}

func KindsOf(tokens []token.Token) []token.Kind {
	kinds := make([]token.Kind, 0, len(tokens))
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	return kinds
}

func NewIdent(name string) *ast.IdExpr {
	return ast.NewIdExpr(token.New(name, token.IDENTIFIER, token.NewPosition(DefaultFilename, 1, 1)))
}
