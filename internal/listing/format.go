package listing

import (
	"fmt"
	"strings"

	"github.com/lookbusy1344/asm12/internal/assemble"
	"github.com/lookbusy1344/asm12/internal/encode"
	"github.com/lookbusy1344/asm12/internal/symtab"
)

// FormatStyle selects how much detail Format includes per word.
type FormatStyle int

const (
	FormatDefault  FormatStyle = iota // address, base64 word, variant
	FormatCompact                     // address and base64 word only
	FormatExpanded                    // adds the full 12-bit binary pattern
)

// FormatOptions controls Format's column layout.
type FormatOptions struct {
	Style         FormatStyle
	AddressColumn int
	WordColumn    int
}

// DefaultFormatOptions mirrors the column widths a fixed-width listing needs.
func DefaultFormatOptions() *FormatOptions {
	return &FormatOptions{Style: FormatDefault, AddressColumn: 6, WordColumn: 4}
}

// Format renders a full memory listing for an assembled unit: every word
// in the data image with its address, and the symbol table beneath it.
func Format(u *assemble.Unit, opts *FormatOptions) string {
	if opts == nil {
		opts = DefaultFormatOptions()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%-*s  %-*s  %s\n", opts.AddressColumn, "ADDR", opts.WordColumn, "WORD", "KIND")
	for _, e := range u.Image.Entries() {
		label := variantLabel(e.Variant)
		switch opts.Style {
		case FormatCompact:
			fmt.Fprintf(&sb, "%0*d  %s\n", opts.AddressColumn, e.Address, encode.Base64Word(e.Word))
		case FormatExpanded:
			fmt.Fprintf(&sb, "%0*d  %s  %-12s  %s\n", opts.AddressColumn, e.Address, encode.Base64Word(e.Word), label, encode.Binary12(e.Word))
		default:
			fmt.Fprintf(&sb, "%0*d  %s  %s\n", opts.AddressColumn, e.Address, encode.Base64Word(e.Word), label)
		}
	}

	sb.WriteString("\nSymbols\n")
	for _, sym := range u.Symbols.Enumerate() {
		status := "defined"
		if !sym.DefinedHere && sym.Kind != symtab.External {
			status = "undefined"
		}
		fmt.Fprintf(&sb, "  %-20s %-20s addr=%d (%s)\n", sym.Name, sym.Kind, sym.Address, status)
	}

	return sb.String()
}
