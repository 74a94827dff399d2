package lexer

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/HicaroD/Tern/internal/lexer/token"
)

const eof = '\000'

// Lexer turns source text into tokens on demand. Once the end of input is
// reached every further call to Next yields EOF again; a Lexer cannot be
// rewound.
type Lexer struct {
	Filename string

	src    string
	offset int
	pos    token.Pos
}

func New(src string) *Lexer {
	return newLexer("", src)
}

// NewWithFilename is like New but stamps filename on every position.
func NewWithFilename(filename, src string) *Lexer {
	return newLexer(filename, src)
}

func NewFromFilePath(path string) (*Lexer, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return newLexer(filepath.Base(path), string(src)), nil
}

func newLexer(filename, src string) *Lexer {
	lexer := new(Lexer)
	lexer.Filename = filename
	lexer.src = src
	lexer.offset = 0
	lexer.pos = token.NewPosition(filename, 1, 1)
	return lexer
}

func (lex *Lexer) Next() token.Token {
	lex.skipWhitespace()

	tok := token.Token{Kind: token.ILLEGAL, Pos: lex.pos}

	character := lex.peekChar()
	if lex.offset >= len(lex.src) {
		tok.Kind = token.EOF
		return tok
	}

	switch character {
	case '=':
		if lex.peekNextChar() == '=' {
			lex.consume(&tok, token.EQUAL, 2)
			return tok
		}
	case '!':
		if lex.peekNextChar() == '=' {
			lex.consume(&tok, token.NOT_EQUAL, 2)
			return tok
		}
	}

	if kind, ok := token.SYMBOLS[character]; ok {
		lex.consume(&tok, kind, 1)
		return tok
	}

	switch {
	case isLetter(character):
		lex.getIdOrKeyword(&tok)
	case isDigit(character):
		lex.getIntegerLit(&tok)
	default:
		lex.consume(&tok, token.ILLEGAL, 1)
	}
	return tok
}

// Useful for testing
func (lex *Lexer) Tokenize() []token.Token {
	var tokens []token.Token
	for {
		tok := lex.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

func (lex *Lexer) getIdOrKeyword(tok *token.Token) {
	identifier := lex.readWhile(isLetter)
	tok.Literal = identifier
	tok.Kind = token.LookupIdent(identifier)
}

func (lex *Lexer) getIntegerLit(tok *token.Token) {
	tok.Literal = lex.readWhile(isDigit)
	tok.Kind = token.INTEGER
}

func (lex *Lexer) consume(tok *token.Token, kind token.Kind, width int) {
	start := lex.offset
	for i := 0; i < width; i++ {
		lex.nextChar()
	}
	tok.Kind = kind
	tok.Literal = lex.src[start:lex.offset]
}

func (lex *Lexer) skipWhitespace() {
	lex.readWhile(func(ch byte) bool {
		return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
	})
}

func (lex *Lexer) readWhile(isValid func(byte) bool) string {
	start := lex.offset
	for lex.offset < len(lex.src) && isValid(lex.peekChar()) {
		lex.nextChar()
	}
	return lex.src[start:lex.offset]
}

func (lex *Lexer) nextChar() byte {
	if lex.offset >= len(lex.src) {
		return eof
	}
	character := lex.src[lex.offset]
	lex.pos.Move(character)
	lex.offset++
	return character
}

func (lex *Lexer) peekChar() byte {
	if lex.offset >= len(lex.src) {
		return eof
	}
	return lex.src[lex.offset]
}

func (lex *Lexer) peekNextChar() byte {
	if lex.offset+1 >= len(lex.src) {
		return eof
	}
	return lex.src[lex.offset+1]
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
