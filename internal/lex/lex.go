// Package lex implements the assembler's lexical primitives: a cursor over
// one logical line at a time, word/delimiter scanning, quoted-string
// scanning, and token classification into opcode/directive/register/label/
// number (quoted strings are scanned, not classified).
//
// Indirect-register addressing (mode 3, see internal/encode) uses the
// lexeme "*rK" — an asterisk followed by a bare register name, K in 0-7 —
// distinct from the "@rK" form used by register mode.
package lex

import (
	"strings"
)

// Delim is the delimiter that terminated a scanned word.
type Delim int

const (
	DelimNone    Delim = iota // end of line reached
	DelimSpace                // whitespace (not included in the returned word)
	DelimComma                // ',' (included in the returned word)
	DelimColon                // ':' (included in the returned word)
)

// Cursor scans one logical line of assembly source. It never mutates the
// underlying string; all operations are pure advances of an integer
// offset, in the same rune-at-a-time style as the lexer this one is
// specialized from, but scoped to this ISA's simpler, single-line grammar.
type Cursor struct {
	line string
	pos  int
}

// NewCursor creates a cursor over a single logical line (no trailing
// newline expected).
func NewCursor(line string) *Cursor {
	return &Cursor{line: line}
}

// AtEnd reports whether the cursor has consumed the whole line.
func (c *Cursor) AtEnd() bool {
	return c.skipWhitespaceFrom(c.pos) >= len(c.line)
}

// Rest returns everything not yet consumed, with leading whitespace
// stripped — used to detect ExtraText after the last expected operand.
func (c *Cursor) Rest() string {
	start := c.skipWhitespaceFrom(c.pos)
	if start >= len(c.line) {
		return ""
	}
	return c.line[start:]
}

func (c *Cursor) skipWhitespaceFrom(i int) int {
	for i < len(c.line) && (c.line[i] == ' ' || c.line[i] == '\t') {
		i++
	}
	return i
}

// NextWord skips leading whitespace, then copies characters until the
// next of {whitespace, comma, colon} or end of line. A comma or colon
// delimiter is included in the returned word (so the caller can detect a
// trailing comma or a label-declaration colon); whitespace is not.
func (c *Cursor) NextWord() (word string, delim Delim) {
	i := c.skipWhitespaceFrom(c.pos)
	if i >= len(c.line) {
		c.pos = i
		return "", DelimNone
	}
	start := i
	for i < len(c.line) {
		ch := c.line[i]
		if ch == ' ' || ch == '\t' {
			c.pos = i + 1
			return c.line[start:i], DelimSpace
		}
		if ch == ',' {
			c.pos = i + 1
			return c.line[start : i+1], DelimComma
		}
		if ch == ':' {
			c.pos = i + 1
			return c.line[start : i+1], DelimColon
		}
		i++
	}
	c.pos = i
	return c.line[start:i], DelimNone
}

// PeekWordLength returns the length (in bytes, delimiter excluded) of the
// next word without advancing the cursor.
func (c *Cursor) PeekWordLength() int {
	save := c.pos
	word, delim := c.NextWord()
	c.pos = save
	if delim == DelimComma || delim == DelimColon {
		return len(word) - 1
	}
	return len(word)
}

// ScanQuotedString scans a leading '"', characters up to the closing '"',
// and returns the string body (quotes stripped) plus ok=false if the
// closing quote was never found (MissingQuote).
func (c *Cursor) ScanQuotedString() (body string, ok bool) {
	i := c.skipWhitespaceFrom(c.pos)
	if i >= len(c.line) || c.line[i] != '"' {
		c.pos = i
		return "", false
	}
	i++
	start := i
	for i < len(c.line) && c.line[i] != '"' {
		i++
	}
	if i >= len(c.line) {
		c.pos = i
		return "", false
	}
	body = c.line[start:i]
	c.pos = i + 1
	return body, true
}

// TrimDelim strips a trailing comma or colon delimiter character from a
// word previously returned by NextWord.
func TrimDelim(word string) string {
	if word == "" {
		return word
	}
	last := word[len(word)-1]
	if last == ',' || last == ':' {
		return word[:len(word)-1]
	}
	return word
}

// Opcodes is the reserved mnemonic set, in opcode-group order.
var Opcodes = map[string]bool{
	"mov": true, "cmp": true, "add": true, "sub": true, "lea": true,
	"not": true, "clr": true, "inc": true, "dec": true, "jmp": true,
	"bne": true, "red": true, "prn": true, "jsr": true, "rts": true,
	"stop": true,
}

// Directives is the reserved directive keyword set.
var Directives = map[string]bool{
	".data": true, ".string": true, ".entry": true, ".extern": true,
}

// IsRegister reports whether a word (without any operand prefix) is a
// valid register token @r0-@r7.
func IsRegister(word string) bool {
	if len(word) != 3 || word[0] != '@' || word[1] != 'r' {
		return false
	}
	return word[2] >= '0' && word[2] <= '7'
}

// RegisterIndex returns the 0-7 register index for a validated register token.
func RegisterIndex(word string) int {
	return int(word[2] - '0')
}

// Kind classifies a bare word (delimiter already stripped).
type Kind int

const (
	KindOpcode Kind = iota
	KindDirective
	KindRegister
	KindLabel
	KindNumber
	KindString
	KindOther
)

// Classify returns the lexical class of a word.
func Classify(word string) Kind {
	lower := strings.ToLower(word)
	switch {
	case Opcodes[lower]:
		return KindOpcode
	case Directives[lower]:
		return KindDirective
	case IsRegister(word):
		return KindRegister
	case IsNumber(word):
		return KindNumber
	default:
		return KindLabel
	}
}

// IsNumber reports whether a word is a valid signed decimal integer
// literal (optionally preceded by + or -).
func IsNumber(word string) bool {
	if word == "" {
		return false
	}
	i := 0
	if word[0] == '+' || word[0] == '-' {
		i = 1
	}
	if i == len(word) {
		return false
	}
	for ; i < len(word); i++ {
		if word[i] < '0' || word[i] > '9' {
			return false
		}
	}
	return true
}
