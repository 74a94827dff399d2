package token

import "fmt"

type Kind int

const (
	// EOF
	EOF Kind = iota
	ILLEGAL

	// Identifier
	IDENTIFIER

	// Literals
	INTEGER

	// Keywords
	FN
	LET
	TRUE
	FALSE
	IF
	ELSE
	RETURN

	// =
	ASSIGN
	// ==
	EQUAL
	// !=
	NOT_EQUAL
	// !
	BANG

	// >
	GREATER
	// <
	LESS

	// +
	PLUS
	// -
	MINUS
	// *
	STAR
	// /
	SLASH

	// ,
	COMMA
	// ;
	SEMICOLON

	// (
	OPEN_PAREN
	// )
	CLOSE_PAREN

	// {
	OPEN_CURLY
	// }
	CLOSE_CURLY
)

// KEYWORDS is matched against whole words only: "letx" is an identifier.
var KEYWORDS map[string]Kind = map[string]Kind{
	"fn":     FN,
	"let":    LET,
	"true":   TRUE,
	"false":  FALSE,
	"if":     IF,
	"else":   ELSE,
	"return": RETURN,
}

// SYMBOLS holds every operator and punctuation mark that is exactly one
// character long. "==" and "!=" are resolved by the lexer before this table
// is consulted.
var SYMBOLS map[byte]Kind = map[byte]Kind{
	'=': ASSIGN,
	'+': PLUS,
	'-': MINUS,
	'/': SLASH,
	'*': STAR,
	'>': GREATER,
	'<': LESS,
	',': COMMA,
	';': SEMICOLON,
	'!': BANG,
	'(': OPEN_PAREN,
	')': CLOSE_PAREN,
	'{': OPEN_CURLY,
	'}': CLOSE_CURLY,
}

func LookupIdent(word string) Kind {
	if kind, ok := KEYWORDS[word]; ok {
		return kind
	}
	return IDENTIFIER
}

func (kind Kind) IsKeyword() bool {
	return kind >= FN && kind <= RETURN
}

func (kind Kind) IsOperator() bool {
	return kind >= ASSIGN && kind <= CLOSE_CURLY
}

func (kind Kind) String() string {
	switch kind {
	case EOF:
		return "EOF"
	case ILLEGAL:
		return "ILLEGAL"
	case IDENTIFIER:
		return "IDENTIFIER"
	case INTEGER:
		return "INTEGER"
	case FN:
		return "fn"
	case LET:
		return "let"
	case TRUE:
		return "true"
	case FALSE:
		return "false"
	case IF:
		return "if"
	case ELSE:
		return "else"
	case RETURN:
		return "return"
	case ASSIGN:
		return "="
	case EQUAL:
		return "=="
	case NOT_EQUAL:
		return "!="
	case BANG:
		return "!"
	case GREATER:
		return ">"
	case LESS:
		return "<"
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case STAR:
		return "*"
	case SLASH:
		return "/"
	case COMMA:
		return ","
	case SEMICOLON:
		return ";"
	case OPEN_PAREN:
		return "("
	case CLOSE_PAREN:
		return ")"
	case OPEN_CURLY:
		return "{"
	case CLOSE_CURLY:
		return "}"
	default:
		return fmt.Sprintf("Kind(%d)", int(kind))
	}
}
