// Package macro implements the preprocessor: a single-pass, parameterless,
// non-recursive macro expander over mcro/endmcro blocks. The table shape
// follows parser.MacroTable's and the line-state-machine follows
// parser/preprocessor.go's idiom, reworked for unparameterized,
// verbatim-body macros rather than \param substitution and
// .include/.ifdef directives.
package macro

import (
	"fmt"
	"strings"

	"github.com/lookbusy1344/asm12/internal/diag"
	"github.com/lookbusy1344/asm12/internal/lex"
)

// Macro is a named, unparameterized block of verbatim source text.
type Macro struct {
	Name string
	Body []string // lines of the body, without trailing newlines
}

// Table is the ordered, unique-name macro definition list for one file.
type Table struct {
	order []*Macro
	byName map[string]*Macro
}

func newTable() *Table {
	return &Table{byName: make(map[string]*Macro)}
}

// Lookup returns the macro named name, if defined.
func (t *Table) Lookup(name string) (*Macro, bool) {
	m, ok := t.byName[name]
	return m, ok
}

type state int

const (
	stateOutside state = iota
	stateInside
)

// Preprocessor runs the mcro/endmcro state machine over an entire source
// file and produces the expanded text plus any diagnostics (duplicate/
// invalid macro names, a missing endmcro, stray text on a mcro/endmcro
// line, and so on).
type Preprocessor struct {
	filename string
	sink     *diag.Sink
	table    *Table
}

// New creates a preprocessor for one source file. Diagnostics are
// recorded into sink.
func New(filename string, sink *diag.Sink) *Preprocessor {
	return &Preprocessor{filename: filename, sink: sink, table: newTable()}
}

// Table returns the macro table accumulated so far (useful after Expand
// returns, to validate that no label collides with a macro name).
func (p *Preprocessor) Table() *Table { return p.table }

// Sink returns the diagnostic sink passed to New.
func (p *Preprocessor) Sink() *diag.Sink { return p.sink }

// Expand runs the full state machine over source and returns the expanded
// text. Diagnostics are recorded in p.sink; callers must check
// sink.HasErrors() before trusting the result — a file with any error
// produces no output.
func (p *Preprocessor) Expand(source string) string {
	lines := strings.Split(source, "\n")
	var out []string

	st := stateOutside
	var curName string
	var curValid bool
	var curBody []string
	var curPos diag.Position

	for i, raw := range lines {
		lineNo := i + 1
		pos := diag.Position{File: p.filename, Line: lineNo}
		trimmed := strings.TrimSpace(raw)
		fields := strings.Fields(trimmed)

		switch st {
		case stateOutside:
			switch {
			case len(fields) > 0 && fields[0] == "mcro":
				name := ""
				if len(fields) >= 2 {
					name = fields[1]
				}
				curValid = true
				if !validMacroName(name) {
					p.sink.Error(pos, diag.InvalidMacroName, fmt.Sprintf("invalid macro name %q", name))
					curValid = false
				} else if _, exists := p.table.Lookup(name); exists {
					p.sink.Error(pos, diag.DuplicateMacro, fmt.Sprintf("macro %q already defined", name))
					curValid = false
				}
				if len(fields) > 2 {
					p.sink.Error(pos, diag.ExtraText, "extraneous text after macro name")
				}
				st = stateInside
				curName = name
				curBody = nil
				curPos = pos

			case len(fields) > 0 && fields[0] == "endmcro":
				p.sink.Error(pos, diag.MissingMcro, "endmcro without a matching mcro")

			case len(fields) > 0 && isMacroCall(p.table, fields[0]):
				if len(fields) > 1 {
					p.sink.Error(pos, diag.ExtraText, "extraneous text on macro invocation line")
				}
				m, _ := p.table.Lookup(fields[0])
				out = append(out, m.Body...)

			default:
				out = append(out, raw)
			}

		case stateInside:
			switch {
			case len(fields) > 0 && fields[0] == "endmcro":
				if len(fields) > 1 {
					p.sink.Error(pos, diag.ExtraText, "extraneous text after endmcro")
				}
				if curName != "" && curValid {
					p.table.byName[curName] = &Macro{Name: curName, Body: curBody}
					p.table.order = append(p.table.order, p.table.byName[curName])
				}
				st = stateOutside

			case len(fields) > 0 && fields[0] == "mcro":
				p.sink.Error(curPos, diag.MissingEndmcro, fmt.Sprintf("macro %q missing endmcro", curName))
				curBody = nil
				// Stays Inside(curName) per the preprocessor state table
				// (spec.md §4.5): only the body accumulated so far is
				// discarded, not the macro currently being collected.

			default:
				curBody = append(curBody, raw)
			}
		}
	}

	if st == stateInside {
		p.sink.Error(curPos, diag.MissingEndmcro, fmt.Sprintf("macro %q missing endmcro", curName))
	}

	return strings.Join(out, "\n")
}

// isMacroCall reports whether word (as typed, no trailing delimiter) names
// a known macro.
func isMacroCall(t *Table, word string) bool {
	_, ok := t.Lookup(word)
	return ok
}

// validMacroName applies the same 1-31/alpha-then-alphanumeric rule as
// labels, since macro names share the label namespace, and rejects a name
// identical to an opcode mnemonic or directive keyword (spec.md §3/§4.5:
// macro names "follow the label rules").
func validMacroName(name string) bool {
	if name == "" || len(name) > 31 {
		return false
	}
	if !isAlpha(name[0]) {
		return false
	}
	for i := 1; i < len(name); i++ {
		if !isAlphaNumeric(name[i]) {
			return false
		}
	}
	lower := strings.ToLower(name)
	if lex.Opcodes[lower] || lex.Directives[lower] {
		return false
	}
	return true
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isAlphaNumeric(b byte) bool {
	return isAlpha(b) || (b >= '0' && b <= '9')
}
