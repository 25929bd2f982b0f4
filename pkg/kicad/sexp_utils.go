package kicad

import (
	"fmt"
	"strconv"

	"github.com/OpenTraceLab/OpenTraceFP/pkg/kicad/kicadsexp"
)

// S-expression navigation helpers

// findNode searches for a child list tagged with the given key.
// Example: findNode(pad, "at") finds (at 1.27 0) inside a pad node.
func findNode(s kicadsexp.Sexp, key string) (*kicadsexp.List, bool) {
	list, ok := s.(*kicadsexp.List)
	if !ok {
		return nil, false
	}
	for _, item := range list.Items() {
		if sub, ok := item.(*kicadsexp.List); ok && sub.Key() == key {
			return sub, true
		}
	}
	return nil, false
}

// findAllNodes finds all child lists tagged with the given key.
func findAllNodes(s kicadsexp.Sexp, key string) []*kicadsexp.List {
	list, ok := s.(*kicadsexp.List)
	if !ok {
		return nil
	}
	var results []*kicadsexp.List
	for _, item := range list.Items() {
		if sub, ok := item.(*kicadsexp.List); ok && sub.Key() == key {
			results = append(results, sub)
		}
	}
	return results
}

// Typed value extraction helpers

// getString extracts the atom at the given index in a list. Index 0 is
// the node key, 1 the first value, and so on.
func getString(l *kicadsexp.List, index int) (string, error) {
	item := l.Get(index)
	if item == nil {
		return "", fmt.Errorf("index %d out of bounds (length %d)", index, l.Len())
	}
	atom, ok := item.(kicadsexp.Atom)
	if !ok {
		return "", fmt.Errorf("expected atom at index %d, got a list", index)
	}
	return string(atom), nil
}

// getFloat extracts a float64 value at the given index.
func getFloat(l *kicadsexp.List, index int) (float64, error) {
	str, err := getString(l, index)
	if err != nil {
		return 0, err
	}
	val, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse float %q: %w", str, err)
	}
	return val, nil
}
