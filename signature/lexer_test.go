package signature

import (
	"io"
	"testing"

	"github.com/pattyshack/gt/parseutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLexer(src string) *Lexer {
	return NewLexer(
		parseutil.NewBufferedByteLocationReaderFromSlice("test", []byte(src)))
}

func lexAll(t *testing.T, src string) []*TokenValue {
	lexer := newTestLexer(src)

	result := []*TokenValue{}
	for {
		token, err := lexer.Next()
		if err == io.EOF {
			return result
		}
		require.NoError(t, err)
		result = append(result, token)
	}
}

func TestLexer(t *testing.T) {
	tokens := lexAll(t, "call_site: (int,\tlong) void // trailing\r\n\n$")

	expectedIds := []SymbolId{
		IdentifierToken,
		ColonToken,
		LparenToken,
		IdentifierToken,
		CommaToken,
		IdentifierToken,
		RparenToken,
		IdentifierToken,
		NewlinesToken,
		LexErrorToken,
	}

	expectedValues := []string{
		"call_site", ":", "(", "int", ",", "long", ")", "void", "\n", "$",
	}

	require.Len(t, tokens, len(expectedIds))
	for idx, token := range tokens {
		assert.Equal(t, expectedIds[idx], token.SymbolId, idx)
		assert.Equal(t, expectedValues[idx], token.Value, idx)
	}
}

func TestLexerStandAloneCarriageReturn(t *testing.T) {
	lexer := newTestLexer("int\r void")

	token, err := lexer.Next()
	require.NoError(t, err)
	assert.Equal(t, "int", token.Value)

	_, err = lexer.Next()
	locErr := parseutil.LocationError{}
	require.ErrorAs(t, err, &locErr)
	assert.Equal(t, 1, locErr.Loc.Line)
	assert.Equal(t, 3, locErr.Loc.Column)
	assert.Contains(t, err.Error(), "unexpected stand-alone \\r")

	token, err = lexer.Next()
	require.NoError(t, err)
	assert.Equal(t, IdentifierToken, token.SymbolId)
	assert.Equal(t, "void", token.Value)

	_, err = lexer.Next()
	assert.Equal(t, io.EOF, err)
}

func TestLexerEmptyInput(t *testing.T) {
	assert.Empty(t, lexAll(t, ""))
	assert.Empty(t, lexAll(t, "   // only a comment"))
}

func TestSymbolIdString(t *testing.T) {
	assert.Equal(t, "IDENTIFIER", IdentifierToken.String())
	assert.Equal(t, "NEWLINES", NewlinesToken.String())
	assert.Equal(t, "UNKNOWN", SymbolId('?').String())
}
