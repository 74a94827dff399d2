package ast

import "strings"

type Program struct {
	Statements []Statement
}

func NewProgram() *Program {
	return &Program{Statements: nil}
}

func (program *Program) Push(stmt Statement) {
	program.Statements = append(program.Statements, stmt)
}

func (program *Program) TokenLiteral() string {
	if len(program.Statements) > 0 {
		return program.Statements[0].TokenLiteral()
	}
	return ""
}

func (program *Program) String() string {
	var out strings.Builder
	for _, stmt := range program.Statements {
		out.WriteString(stmt.String())
	}
	return out.String()
}
