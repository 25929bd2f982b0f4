package geda

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// fileLexer defines the lexical structure of the emitted footprint
// subset: bracketed statements with quoted strings and decimal or hex
// integers. Comments (# to end of line) and blank lines are tolerated.
var fileLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments - pcb style (# to end of line)
	{Name: "Comment", Pattern: `#[^\n]*`},

	// Whitespace
	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	// Statement keywords. ElementLine and ElementArc must come before
	// Element so the longer names win.
	{Name: "KwElementLine", Pattern: `\bElementLine\b`},
	{Name: "KwElementArc", Pattern: `\bElementArc\b`},
	{Name: "KwElement", Pattern: `\bElement\b`},
	{Name: "KwPad", Pattern: `\bPad\b`},
	{Name: "KwPin", Pattern: `\bPin\b`},

	// Literals. Strings are written with %q, so embedded quotes and
	// backslashes arrive escaped.
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Hex", Pattern: `0[xX][0-9a-fA-F]+`},
	{Name: "Int", Pattern: `[-+]?[0-9]+`},

	// Brackets and parentheses
	{Name: "LBracket", Pattern: `\[`},
	{Name: "RBracket", Pattern: `\]`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
})
