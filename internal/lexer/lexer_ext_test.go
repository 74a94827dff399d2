package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/HicaroD/Tern/internal/lexer/token"
	"github.com/HicaroD/Tern/internal/testutil"
)

func TestNamedLexerStampsFilename(t *testing.T) {
	lex := testutil.NewLexer("fn(x) {\n  x != 10\n}", "")
	tokens := lex.Tokenize()

	assert.Equal(t, []token.Kind{
		token.FN, token.OPEN_PAREN, token.IDENTIFIER, token.CLOSE_PAREN, token.OPEN_CURLY,
		token.IDENTIFIER, token.NOT_EQUAL, token.INTEGER,
		token.CLOSE_CURLY, token.EOF,
	}, testutil.KindsOf(tokens))

	for _, tok := range tokens {
		assert.Equal(t, testutil.DefaultFilename, tok.Pos.Filename)
	}
	assert.Equal(t, "[test.tn:2:5]", tokens[6].Pos.String())
	assert.Equal(t, "[test.tn:3:2]", tokens[len(tokens)-1].Pos.String())
}
