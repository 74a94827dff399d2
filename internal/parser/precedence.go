package parser

import "github.com/HicaroD/Tern/internal/lexer/token"

type Precedence int

const (
	_ Precedence = iota
	LOWEST
	EQUALS       // == !=
	LESS_GREATER // < >
	SUM          // + -
	PRODUCT      // * /
	PREFIX       // !x -x
	CALL         // f(x)
)

// Binding power of every token that may appear in infix position. Tokens
// absent from the table bind at LOWEST, which stops the climbing loop.
var PRECEDENCES map[token.Kind]Precedence = map[token.Kind]Precedence{
	token.EQUAL:      EQUALS,
	token.NOT_EQUAL:  EQUALS,
	token.LESS:       LESS_GREATER,
	token.GREATER:    LESS_GREATER,
	token.PLUS:       SUM,
	token.MINUS:      SUM,
	token.STAR:       PRODUCT,
	token.SLASH:      PRODUCT,
	token.OPEN_PAREN: CALL,
}

func precedenceOf(kind token.Kind) Precedence {
	if p, ok := PRECEDENCES[kind]; ok {
		return p
	}
	return LOWEST
}

func (p Precedence) String() string {
	switch p {
	case LOWEST:
		return "LOWEST"
	case EQUALS:
		return "EQUALS"
	case LESS_GREATER:
		return "LESS_GREATER"
	case SUM:
		return "SUM"
	case PRODUCT:
		return "PRODUCT"
	case PREFIX:
		return "PREFIX"
	case CALL:
		return "CALL"
	}
	return "unknown"
}
