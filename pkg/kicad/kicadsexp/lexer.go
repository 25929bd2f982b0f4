package kicadsexp

import (
	"bufio"
	"fmt"
	"io"
	"unicode"
)

// tokenType classifies a lexical token.
type tokenType int

const (
	tokenEOF tokenType = iota
	tokenLeftParen
	tokenRightParen
	tokenAtom
)

// token is one lexical token. Atoms carry their value with quotes and
// escapes already resolved.
type token struct {
	typ   tokenType
	value string
}

// lexer tokenizes S-expressions from an io.Reader.
type lexer struct {
	reader *bufio.Reader
}

func newLexer(r io.Reader) *lexer {
	return &lexer{reader: bufio.NewReader(r)}
}

// next reads the next token, skipping whitespace.
func (l *lexer) next() (token, error) {
	for {
		ch, _, err := l.reader.ReadRune()
		if err == io.EOF {
			return token{typ: tokenEOF}, nil
		}
		if err != nil {
			return token{}, err
		}

		switch {
		case unicode.IsSpace(ch):
			continue
		case ch == '(':
			return token{typ: tokenLeftParen, value: "("}, nil
		case ch == ')':
			return token{typ: tokenRightParen, value: ")"}, nil
		case ch == '"':
			return l.readString()
		default:
			return l.readSymbol(ch)
		}
	}
}

// readString reads a quoted string; the opening quote is already
// consumed.
func (l *lexer) readString() (token, error) {
	var result []rune
	for {
		ch, _, err := l.reader.ReadRune()
		if err != nil {
			return token{}, fmt.Errorf("unexpected EOF in string")
		}
		if ch == '"' {
			return token{typ: tokenAtom, value: string(result)}, nil
		}
		if ch == '\\' {
			next, _, err := l.reader.ReadRune()
			if err != nil {
				return token{}, fmt.Errorf("unexpected EOF after backslash")
			}
			switch next {
			case 'n':
				result = append(result, '\n')
			case 't':
				result = append(result, '\t')
			case 'r':
				result = append(result, '\r')
			default:
				// \" and \\ resolve to the escaped rune itself
				result = append(result, next)
			}
			continue
		}
		result = append(result, ch)
	}
}

// readSymbol reads an unquoted atom starting with first.
func (l *lexer) readSymbol(first rune) (token, error) {
	result := []rune{first}
	for {
		ch, _, err := l.reader.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return token{}, err
		}
		if unicode.IsSpace(ch) || ch == '(' || ch == ')' || ch == '"' {
			l.reader.UnreadRune()
			break
		}
		result = append(result, ch)
	}
	return token{typ: tokenAtom, value: string(result)}, nil
}
