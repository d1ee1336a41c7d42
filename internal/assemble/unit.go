// Package assemble implements the first pass and second pass/emitter: it
// consumes the macro-expanded source, builds the symbol table and data
// image, assigns addresses, resolves deferred operands, and writes the
// three output artifacts atomically. The line-dispatch shape follows
// parser.Parser's, reworked around this ISA's single contiguous address
// counter rather than a separate .org-relative code segment.
package assemble

import (
	"github.com/lookbusy1344/asm12/internal/diag"
	"github.com/lookbusy1344/asm12/internal/image"
	"github.com/lookbusy1344/asm12/internal/symtab"
)

// StartAddress is where the first machine word of a file is placed.
const StartAddress = 100

// MaxLabelLength is the maximum label/macro name length.
const MaxLabelLength = 31

// MaxLineLength is the maximum length of one logical source line.
const MaxLineLength = 80

// ExternalUsage records one code address that refers to an external
// symbol, for the .ext file.
type ExternalUsage struct {
	Name    string
	Address int
}

// Unit holds all per-file assembler state. It is created fresh on file
// entry and discarded on file exit; nothing persists across files.
type Unit struct {
	Filename string

	Symbols *symtab.Table
	Image   *image.Image
	Sink    *diag.Sink

	IC          int // code words written so far
	DC          int // data words written so far
	NextAddress int // next free address, starts at StartAddress

	Externals []ExternalUsage
}

// NewUnit creates the initial per-file assembler state.
func NewUnit(filename string) *Unit {
	return &Unit{
		Filename:    filename,
		Symbols:     symtab.New(),
		Image:       image.New(),
		Sink:        diag.New(),
		NextAddress: StartAddress,
	}
}

// reserve advances NextAddress by n words and returns the address the
// first of those n words was assigned.
func (u *Unit) reserve(n int) int {
	addr := u.NextAddress
	u.NextAddress += n
	return addr
}
