// Package ast defines the abstract syntax tree produced by the parser.
//
// Every node keeps the token that introduced it, so diagnostics can point
// back at the source, and knows how to render itself back into canonical
// source text.
package ast

type Node interface {
	TokenLiteral() string
	String() string
}

type Statement interface {
	Node
	stmtNode()
}

type Expression interface {
	Node
	exprNode()
}

// render returns "" for an absent child, which keeps a nil expression from
// aborting the rendering of its parent.
func render(node Node) string {
	if node == nil || isNilNode(node) {
		return ""
	}
	return node.String()
}

func isNilNode(node Node) bool {
	switch n := node.(type) {
	case *IdExpr:
		return n == nil
	case *IntegerExpr:
		return n == nil
	case *PrefixExpr:
		return n == nil
	}
	return false
}

// Inspect traverses the tree rooted at node in depth-first order. If f
// returns false the children of that node are skipped.
func Inspect(node Node, f func(Node) bool) {
	if node == nil || isNilNode(node) || !f(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, stmt := range n.Statements {
			Inspect(stmt, f)
		}
	case *LetStmt:
		if n.Name != nil {
			Inspect(n.Name, f)
		}
		Inspect(n.Value, f)
	case *ReturnStmt:
		Inspect(n.Value, f)
	case *ExprStmt:
		Inspect(n.Expr, f)
	case *PrefixExpr:
		Inspect(n.Operand, f)
	}
}
