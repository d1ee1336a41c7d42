// Package diag implements the assembler's diagnostic sink: source
// positions, typed error/warning kinds, and a per-file collector.
package diag

import (
	"fmt"
	"strings"
)

// Position identifies a location in a source file.
type Position struct {
	File   string
	Line   int
	Column int
}

func (p Position) String() string {
	if p.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d", p.File, p.Line)
}

// Kind enumerates every diagnostic the assembler can raise.
type Kind int

const (
	// Lexical
	LineTooLong Kind = iota
	MissingQuote
	IllegalCharacters
	ExtraText
	ExtraComma
	MissingComma
	MissingColon
	MissingDot

	// Macro
	InvalidMacroName
	DuplicateMacro
	MissingMcro
	MissingEndmcro
	MacroTooLong

	// Label
	InvalidLabel
	LabelStartsWithDigit
	DuplicateLabel
	ForbiddenLabelDeclare
	LabelDoesNotExist

	// Instruction
	InvalidOpcode
	MissingOperand
	TooManyOperands
	InvalidOperand
	IllegalOperand
	OperandTooLong
	InvalidRegister
	InvalidValue

	// Directive
	EmptyDirective
	InvalidSyntax
	DuplicateDirective
	BothDirectives
	MeaninglessLabel
	UnusedExtern

	// System
	OutOfMemory
	OpenFile
	Internal
)

var names = map[Kind]string{
	LineTooLong:           "LineTooLong",
	MissingQuote:          "MissingQuote",
	IllegalCharacters:     "IllegalCharacters",
	ExtraText:             "ExtraText",
	ExtraComma:            "ExtraComma",
	MissingComma:          "MissingComma",
	MissingColon:          "MissingColon",
	MissingDot:            "MissingDot",
	InvalidMacroName:      "InvalidMacroName",
	DuplicateMacro:        "DuplicateMacro",
	MissingMcro:           "MissingMcro",
	MissingEndmcro:        "MissingEndmcro",
	MacroTooLong:          "MacroTooLong",
	InvalidLabel:          "InvalidLabel",
	LabelStartsWithDigit:  "LabelStartsWithDigit",
	DuplicateLabel:        "DuplicateLabel",
	ForbiddenLabelDeclare: "ForbiddenLabelDeclare",
	LabelDoesNotExist:     "LabelDoesNotExist",
	InvalidOpcode:         "InvalidOpcode",
	MissingOperand:        "MissingOperand",
	TooManyOperands:       "TooManyOperands",
	InvalidOperand:        "InvalidOperand",
	IllegalOperand:        "IllegalOperand",
	OperandTooLong:        "OperandTooLong",
	InvalidRegister:       "InvalidRegister",
	InvalidValue:          "InvalidValue",
	EmptyDirective:        "EmptyDirective",
	InvalidSyntax:         "InvalidSyntax",
	DuplicateDirective:    "DuplicateDirective",
	BothDirectives:        "BothDirectives",
	MeaninglessLabel:      "MeaninglessLabel",
	UnusedExtern:          "UnusedExtern",
	OutOfMemory:           "OutOfMemory",
	OpenFile:              "OpenFile",
	Internal:              "Internal",
}

func (k Kind) String() string {
	if n, ok := names[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// fatalKinds abort the current file immediately on detection.
var fatalKinds = map[Kind]bool{
	OutOfMemory: true,
	Internal:    true,
}

// IsFatal reports whether a diagnostic of this kind aborts the file.
func (k Kind) IsFatal() bool { return fatalKinds[k] }

// Diagnostic is a single error or warning with its location and message.
type Diagnostic struct {
	Pos     Position
	Kind    Kind
	Message string
	Context string // the offending source line, if available
}

func (d *Diagnostic) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: error: %s (%s)\n", d.Pos, d.Message, d.Kind)
	if d.Context != "" {
		fmt.Fprintf(&sb, "    %s\n", d.Context)
	}
	return sb.String()
}

func (d *Diagnostic) String() string {
	return fmt.Sprintf("%s: warning: %s (%s)", d.Pos, d.Message, d.Kind)
}

// Sink collects the errors and warnings produced while processing one
// source file. Everything downstream of the preprocessor shares a single
// Sink so later stages can check HasErrors before ever touching disk.
type Sink struct {
	Errors   []*Diagnostic
	Warnings []*Diagnostic
}

// New returns an empty Sink.
func New() *Sink {
	return &Sink{}
}

// Error records a fatal-to-the-line diagnostic.
func (s *Sink) Error(pos Position, kind Kind, message string) {
	s.Errors = append(s.Errors, &Diagnostic{Pos: pos, Kind: kind, Message: message})
}

// ErrorWithContext records a diagnostic with the offending source line attached.
func (s *Sink) ErrorWithContext(pos Position, kind Kind, message, context string) {
	s.Errors = append(s.Errors, &Diagnostic{Pos: pos, Kind: kind, Message: message, Context: context})
}

// Warn records a non-fatal diagnostic.
func (s *Sink) Warn(pos Position, kind Kind, message string) {
	s.Warnings = append(s.Warnings, &Diagnostic{Pos: pos, Kind: kind, Message: message})
}

// HasErrors reports whether any error (not warning) was recorded.
func (s *Sink) HasErrors() bool {
	return len(s.Errors) > 0
}

// FormatErrors renders every collected error, one per line (plus context).
func (s *Sink) FormatErrors() string {
	var sb strings.Builder
	for _, e := range s.Errors {
		sb.WriteString(e.Error())
	}
	return sb.String()
}

// FormatWarnings renders every collected warning, one per line.
func (s *Sink) FormatWarnings() string {
	var sb strings.Builder
	for _, w := range s.Warnings {
		sb.WriteString(w.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
