package ast

import (
	"strings"

	"github.com/HicaroD/Tern/internal/lexer/token"
)

// LetStmt binds Name to Value: "let <name> = <value>;".
type LetStmt struct {
	Token token.Token
	Name  *IdExpr
	Value Expression
}

func NewLetStmt(tok token.Token, name *IdExpr, value Expression) *LetStmt {
	return &LetStmt{Token: tok, Name: name, Value: value}
}

func (let *LetStmt) TokenLiteral() string { return let.Token.Literal }
func (let *LetStmt) String() string {
	var out strings.Builder
	out.WriteString(let.TokenLiteral() + " ")
	if let.Name != nil {
		out.WriteString(let.Name.String())
	}
	out.WriteString(" = ")
	out.WriteString(render(let.Value))
	out.WriteString(";")
	return out.String()
}
func (let *LetStmt) stmtNode() {}

type ReturnStmt struct {
	Token token.Token
	Value Expression
}

func NewReturnStmt(tok token.Token, value Expression) *ReturnStmt {
	return &ReturnStmt{Token: tok, Value: value}
}

func (ret *ReturnStmt) TokenLiteral() string { return ret.Token.Literal }
func (ret *ReturnStmt) String() string {
	return ret.TokenLiteral() + " " + render(ret.Value) + ";"
}
func (ret *ReturnStmt) stmtNode() {}

// ExprStmt wraps a bare expression used as a statement, such as "x;".
type ExprStmt struct {
	Token token.Token
	Expr  Expression
}

func NewExprStmt(tok token.Token, expr Expression) *ExprStmt {
	return &ExprStmt{Token: tok, Expr: expr}
}

func (stmt *ExprStmt) TokenLiteral() string { return stmt.Token.Literal }
func (stmt *ExprStmt) String() string       { return render(stmt.Expr) }
func (stmt *ExprStmt) stmtNode()            {}
