package signature

import (
	"io"
	"unicode/utf8"

	"github.com/pattyshack/gt/parseutil"
	"github.com/pattyshack/gt/stringutil"
)

const (
	initialPeekWindowSize = 64
)

type SymbolId int

type TokenValue = parseutil.TokenValue[SymbolId]

const (
	SpacesToken      = SymbolId(' ')
	NewlinesToken    = SymbolId('\n')
	LparenToken      = SymbolId('(')
	RparenToken      = SymbolId(')')
	CommaToken       = SymbolId(',')
	ColonToken       = SymbolId(':')
	IdentifierToken  = SymbolId(256)
	LineCommentToken = SymbolId(-2)
	LexErrorToken    = SymbolId(-4)
)

func (id SymbolId) String() string {
	switch id {
	case SpacesToken:
		return "SPACES"
	case NewlinesToken:
		return "NEWLINES"
	case LparenToken:
		return "LPAREN"
	case RparenToken:
		return "RPAREN"
	case CommaToken:
		return "COMMA"
	case ColonToken:
		return "COLON"
	case IdentifierToken:
		return "IDENTIFIER"
	case LineCommentToken:
		return "LINE_COMMENT"
	case LexErrorToken:
		return "LEX_ERROR"
	default:
		return "UNKNOWN"
	}
}

// Lexer tokenizes signature files.  Spaces and line comments are dropped.
// Unexpected characters are returned as LexErrorToken so that the parser can
// report them and resynchronize at the next line.
type Lexer struct {
	parseutil.BufferedByteLocationReader
	*stringutil.InternPool
}

func NewLexer(reader parseutil.BufferedByteLocationReader) *Lexer {
	return &Lexer{
		BufferedByteLocationReader: reader,
		InternPool:                 stringutil.NewInternPool(),
	}
}

func (lexer *Lexer) CurrentLocation() parseutil.Location {
	return lexer.Location
}

// Returns io.EOF once the input is exhausted.  A stand-alone \r is reported
// as a parseutil.LocationError; lexing may resume after it.
func (lexer *Lexer) Next() (*TokenValue, error) {
	for {
		peeked, err := lexer.Peek(utf8.UTFMax)
		if len(peeked) > 0 && err == io.EOF {
			err = nil
		}
		if err != nil {
			return nil, err
		}

		char := peeked[0]

		if ('a' <= char && char <= 'z') ||
			('A' <= char && char <= 'Z') ||
			char == '_' {

			return lexer.lexIdentifier()
		}

		switch char {
		case ' ', '\t':
			err = lexer.discardSpaces()
			if err != nil {
				return nil, err
			}
			continue
		case '/':
			if len(peeked) > 1 && peeked[1] == '/' {
				err = lexer.discardLineComment()
				if err != nil {
					return nil, err
				}
				continue
			}
		case '\r', '\n':
			return lexer.lexNewlines()
		case '(':
			return lexer.fixedToken(LparenToken, "(", 1)
		case ')':
			return lexer.fixedToken(RparenToken, ")", 1)
		case ',':
			return lexer.fixedToken(CommaToken, ",", 1)
		case ':':
			return lexer.fixedToken(ColonToken, ":", 1)
		}

		_, size := utf8.DecodeRune(peeked)
		return lexer.fixedToken(LexErrorToken, string(peeked[:size]), size)
	}
}

func (lexer *Lexer) fixedToken(
	symbolId SymbolId,
	value string,
	size int,
) (
	*TokenValue,
	error,
) {
	loc := lexer.Location

	_, err := lexer.Discard(size)
	if err != nil {
		panic("should never happen")
	}

	return &TokenValue{
		SymbolId:    symbolId,
		StartEndPos: parseutil.NewStartEndPos(loc, lexer.Location),
		Value:       value,
	}, nil
}

func (lexer *Lexer) lexIdentifier() (*TokenValue, error) {
	token, err := parseutil.MaybeTokenizeIdentifier(
		lexer.BufferedByteLocationReader,
		initialPeekWindowSize,
		lexer.InternPool,
		IdentifierToken)
	if err != nil {
		return nil, err
	}

	if token == nil {
		panic("should never happen")
	}

	return token, nil
}

// Consecutive newlines are merged into a single token.
func (lexer *Lexer) lexNewlines() (*TokenValue, error) {
	token, foundInvalidNewline, err := parseutil.MaybeTokenizeNewlines(
		lexer.BufferedByteLocationReader,
		initialPeekWindowSize,
		NewlinesToken)
	if err != nil {
		return nil, err
	}

	if token == nil {
		panic("should never happen")
	}

	if foundInvalidNewline {
		return nil, parseutil.NewLocationError(
			token.StartPos,
			"unexpected stand-alone \\r")
	}

	return &TokenValue{
		SymbolId:    NewlinesToken,
		StartEndPos: token.StartEndPos,
		Value:       "\n",
	}, nil
}

func (lexer *Lexer) discardSpaces() error {
	token, err := parseutil.MaybeTokenizeSpaces(
		lexer.BufferedByteLocationReader,
		initialPeekWindowSize,
		SpacesToken)
	if err != nil {
		return err
	}

	if token == nil {
		panic("should never happen")
	}

	return nil
}

// Discards everything up to (but not including) the next newline.
func (lexer *Lexer) discardLineComment() error {
	token, err := parseutil.MaybeTokenizeLineComment(
		lexer.BufferedByteLocationReader,
		initialPeekWindowSize,
		LineCommentToken,
		false)
	if err != nil {
		return err
	}

	if token == nil {
		panic("should never happen")
	}

	return nil
}
