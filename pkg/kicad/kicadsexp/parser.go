package kicadsexp

import (
	"fmt"
	"io"
)

// parser builds Sexp trees from a token stream.
type parser struct {
	lexer *lexer
}

func newParser(r io.Reader) *parser {
	return &parser{lexer: newLexer(r)}
}

// parseAll parses all top-level S-expressions until EOF.
func (p *parser) parseAll() ([]Sexp, error) {
	var result []Sexp
	for {
		tok, err := p.lexer.next()
		if err != nil {
			return nil, err
		}
		switch tok.typ {
		case tokenEOF:
			return result, nil
		case tokenRightParen:
			return nil, fmt.Errorf("unexpected ')'")
		case tokenAtom:
			result = append(result, Atom(tok.value))
		case tokenLeftParen:
			list, err := p.parseList()
			if err != nil {
				return nil, err
			}
			result = append(result, list)
		}
	}
}

// parseList parses the body of a list; the opening paren is already
// consumed.
func (p *parser) parseList() (*List, error) {
	list := &List{}
	for {
		tok, err := p.lexer.next()
		if err != nil {
			return nil, err
		}
		switch tok.typ {
		case tokenEOF:
			return nil, fmt.Errorf("unexpected EOF in list")
		case tokenRightParen:
			return list, nil
		case tokenAtom:
			list.items = append(list.items, Atom(tok.value))
		case tokenLeftParen:
			sub, err := p.parseList()
			if err != nil {
				return nil, err
			}
			list.items = append(list.items, sub)
		}
	}
}
