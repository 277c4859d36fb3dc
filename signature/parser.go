package signature

import (
	"errors"
	"io"

	"github.com/pattyshack/gt/parseutil"

	"github.com/pattyshack/regconfig/architecture"
)

// Parses newline separated signatures of the form
//
//	[name:] (kind, ...) kind
//
// Syntax errors are reported to the emitter; the offending line is skipped.
func Parse(
	reader parseutil.BufferedByteLocationReader,
	emitter *parseutil.Emitter,
) []*Signature {
	parser := &parser{
		lexer:   NewLexer(reader),
		emitter: emitter,
	}
	return parser.parse()
}

type parser struct {
	lexer   *Lexer
	emitter *parseutil.Emitter
}

// Returns the next non-empty line (without the newline token).  The line is
// invalid when the line contains lex errors (which are already emitted).  A
// stand-alone \r does not terminate the line.
func (parser *parser) readLine() ([]*TokenValue, bool, error) {
	result := []*TokenValue{}
	valid := true
	for {
		token, err := parser.lexer.Next()
		if err != nil {
			if err == io.EOF && len(result) > 0 {
				return result, valid, nil
			}

			locErr := parseutil.LocationError{}
			if errors.As(err, &locErr) {
				parser.emitter.EmitErrors(locErr)
				valid = false
				continue
			}

			return nil, false, err
		}

		switch token.SymbolId {
		case NewlinesToken:
			if len(result) == 0 {
				if !valid {
					return result, valid, nil
				}
				continue
			}
			return result, valid, nil
		case LexErrorToken:
			parser.emitter.Emit(
				token.Loc(),
				"unexpected character %q",
				token.Value)
			valid = false
		default:
			result = append(result, token)
		}
	}
}

func (parser *parser) parse() []*Signature {
	result := []*Signature{}
	for {
		line, valid, err := parser.readLine()
		if err != nil {
			if err != io.EOF {
				parser.emitter.EmitErrors(err)
			}
			return result
		}

		if !valid || len(line) == 0 {
			continue
		}

		sig := parser.parseLine(line)
		if sig != nil {
			result = append(result, sig)
		}
	}
}

type lineParser struct {
	tokens  []*TokenValue
	pos     int
	emitter *parseutil.Emitter
}

func (parser *lineParser) peek() *TokenValue {
	if parser.pos < len(parser.tokens) {
		return parser.tokens[parser.pos]
	}
	return nil
}

func (parser *lineParser) last() *TokenValue {
	return parser.tokens[len(parser.tokens)-1]
}

// Emits an error and returns nil when the next token is not the expected
// one.
func (parser *lineParser) expect(symbolId SymbolId) *TokenValue {
	token := parser.peek()
	if token == nil {
		parser.emitter.Emit(
			parser.last().End(),
			"expected %s, found end of line",
			symbolId)
		return nil
	}

	if token.SymbolId != symbolId {
		parser.emitter.Emit(
			token.Loc(),
			"expected %s, found %s (%s)",
			symbolId,
			token.SymbolId,
			token.Value)
		return nil
	}

	parser.pos++
	return token
}

func (parser *lineParser) kind(allowVoid bool) (architecture.Kind, bool) {
	token := parser.expect(IdentifierToken)
	if token == nil {
		return architecture.IllegalKind, false
	}

	kind, ok := architecture.ParseKind(token.Value)
	if !ok {
		parser.emitter.Emit(token.Loc(), "unknown kind: %s", token.Value)
		return architecture.IllegalKind, false
	}

	if kind == architecture.VoidKind && !allowVoid {
		parser.emitter.Emit(token.Loc(), "void is not a valid parameter kind")
		return architecture.IllegalKind, false
	}

	return kind, true
}

func (parser *parser) parseLine(tokens []*TokenValue) *Signature {
	line := &lineParser{
		tokens:  tokens,
		emitter: parser.emitter,
	}

	sig := &Signature{
		StartEndPos: parseutil.NewStartEndPos(
			tokens[0].Loc(),
			tokens[len(tokens)-1].End()),
		Parameters: []architecture.Kind{},
	}

	first := line.peek()
	if first.SymbolId == IdentifierToken {
		line.pos++
		if line.expect(ColonToken) == nil {
			return nil
		}
		sig.Name = first.Value
	}

	if line.expect(LparenToken) == nil {
		return nil
	}

	next := line.peek()
	if next != nil && next.SymbolId == RparenToken {
		line.pos++
	} else {
		for {
			kind, ok := line.kind(false)
			if !ok {
				return nil
			}
			sig.Parameters = append(sig.Parameters, kind)

			next = line.peek()
			if next != nil && next.SymbolId == CommaToken {
				line.pos++
				continue
			}

			if line.expect(RparenToken) == nil {
				return nil
			}
			break
		}
	}

	kind, ok := line.kind(true)
	if !ok {
		return nil
	}
	sig.Return = kind

	extra := line.peek()
	if extra != nil {
		parser.emitter.Emit(
			extra.Loc(),
			"unexpected %s (%s) after return kind",
			extra.SymbolId,
			extra.Value)
		return nil
	}

	return sig
}
