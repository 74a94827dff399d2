package ast

import (
	"github.com/HicaroD/Tern/internal/lexer/token"
)

type IdExpr struct {
	Token token.Token
	Name  string
}

func NewIdExpr(tok token.Token) *IdExpr {
	return &IdExpr{Token: tok, Name: tok.Literal}
}

func (id *IdExpr) TokenLiteral() string { return id.Token.Literal }
func (id *IdExpr) String() string       { return id.Name }
func (id *IdExpr) exprNode()            {}

// IntegerExpr keeps the source literal next to its value: when the literal
// does not fit in an int64 the parser still builds the node, with Value 0.
type IntegerExpr struct {
	Token token.Token
	Value int64
}

func NewIntegerExpr(tok token.Token, value int64) *IntegerExpr {
	return &IntegerExpr{Token: tok, Value: value}
}

func (integer *IntegerExpr) TokenLiteral() string { return integer.Token.Literal }
func (integer *IntegerExpr) String() string       { return integer.Token.Literal }
func (integer *IntegerExpr) exprNode()            {}

type PrefixExpr struct {
	Token    token.Token
	Operator string
	Operand  Expression
}

func NewPrefixExpr(tok token.Token, operand Expression) *PrefixExpr {
	return &PrefixExpr{Token: tok, Operator: tok.Literal, Operand: operand}
}

func (prefix *PrefixExpr) TokenLiteral() string { return prefix.Token.Literal }
func (prefix *PrefixExpr) String() string {
	return "(" + prefix.Operator + render(prefix.Operand) + ")"
}
func (prefix *PrefixExpr) exprNode() {}
