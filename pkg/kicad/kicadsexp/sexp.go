// Package kicadsexp provides a small S-expression reader for KiCad
// footprint files. Footprint files are a few kilobytes, so nodes keep
// their children in slices for direct indexed access instead of
// streaming cons traversal.
package kicadsexp

import (
	"io"
	"strings"
)

// Sexp represents an S-expression node: either an atom or a list.
type Sexp interface {
	// IsLeaf returns true if this is an atom (not a list)
	IsLeaf() bool

	// String returns the string representation
	String() string
}

// Atom is an atomic value: a symbol, number or quoted string. Quotes
// and escape sequences are resolved during lexing.
type Atom string

func (a Atom) IsLeaf() bool   { return true }
func (a Atom) String() string { return string(a) }

// List is a parenthesized sequence of nodes.
type List struct {
	items []Sexp
}

func (l *List) IsLeaf() bool { return false }

// Len returns the number of child nodes.
func (l *List) Len() int { return len(l.items) }

// Get returns the child at index i, or nil when out of range.
func (l *List) Get(i int) Sexp {
	if i < 0 || i >= len(l.items) {
		return nil
	}
	return l.items[i]
}

// Items returns the child nodes.
func (l *List) Items() []Sexp { return l.items }

// Key returns the list's first atom, the conventional node tag in
// KiCad files. It returns "" when the list is empty or starts with a
// sublist.
func (l *List) Key() string {
	if len(l.items) == 0 {
		return ""
	}
	if a, ok := l.items[0].(Atom); ok {
		return string(a)
	}
	return ""
}

func (l *List) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, item := range l.items {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(item.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Parse reads all top-level S-expressions from r.
func Parse(r io.Reader) ([]Sexp, error) {
	return newParser(r).parseAll()
}

// ParseString reads all top-level S-expressions from s.
func ParseString(s string) ([]Sexp, error) {
	return Parse(strings.NewReader(s))
}
