package assemble

import (
	"fmt"

	"github.com/lookbusy1344/asm12/internal/diag"
	"github.com/lookbusy1344/asm12/internal/encode"
	"github.com/lookbusy1344/asm12/internal/image"
	"github.com/lookbusy1344/asm12/internal/symtab"
)

// SecondPass resolves every deferred operand against the symbol table
// built during the first pass: address references become relocatable or
// external words, and deferred .data values take on the address of the
// label they name. It records a LabelDoesNotExist diagnostic for any
// reference to a symbol that was never declared anywhere in the file,
// and appends one ExternalUsage per resolved reference to an external
// symbol.
func SecondPass(u *Unit) {
	pos := diag.Position{File: u.Filename}

	for _, e := range u.Image.Entries() {
		if e.Resolved {
			continue
		}
		sym, ok := u.Symbols.Lookup(e.SymbolRef)
		if !ok || (!sym.DefinedHere && sym.Kind != symtab.External) {
			u.Sink.Error(pos, diag.LabelDoesNotExist, fmt.Sprintf("undefined symbol %q", e.SymbolRef))
			continue
		}

		switch e.Variant {
		case image.VariantAddressReference:
			if sym.Kind == symtab.External {
				e.Word = encode.AddressReference(0, encode.AREExternal)
				u.Externals = append(u.Externals, ExternalUsage{Name: sym.Name, Address: e.Address})
			} else {
				e.Word = encode.AddressReference(sym.Address, encode.ARERelocatable)
			}
		case image.VariantImmediateValue:
			if sym.Kind == symtab.External {
				u.Externals = append(u.Externals, ExternalUsage{Name: sym.Name, Address: e.Address})
			}
			e.Word = encode.Immediate(sym.Address)
		}
		e.Resolved = true
	}

	for _, sym := range u.Symbols.Enumerate() {
		if sym.Kind == symtab.External && !usedExternal(u, sym.Name) {
			u.Sink.Warn(pos, diag.UnusedExtern, fmt.Sprintf("external symbol %q is never referenced", sym.Name))
		}
	}
}

func usedExternal(u *Unit, name string) bool {
	for _, ext := range u.Externals {
		if ext.Name == name {
			return true
		}
	}
	return false
}
