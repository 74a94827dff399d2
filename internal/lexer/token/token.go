package token

import "fmt"

type Token struct {
	Literal string
	Kind    Kind
	Pos     Pos
}

func New(literal string, kind Kind, position Pos) Token {
	return Token{Literal: literal, Kind: kind, Pos: position}
}

func (token Token) Is(kind Kind) bool { return token.Kind == kind }

func (token Token) String() string {
	return fmt.Sprintf("%q | %s | %s", token.Literal, token.Kind, token.Pos)
}
