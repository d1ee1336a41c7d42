// Package listing implements read-only reporting over an assembled unit:
// a cross-reference report, a memory listing of the data image, and a set
// of style lint checks. It walks *assemble.Unit's symbol table and data
// image directly, since there is no source AST to annotate with
// cross-reference markers the way a full parse tree would carry.
package listing

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lookbusy1344/asm12/internal/assemble"
	"github.com/lookbusy1344/asm12/internal/image"
	"github.com/lookbusy1344/asm12/internal/symtab"
)

// XRefEntry is one symbol and every image address that refers to it.
type XRefEntry struct {
	Name       string
	Kind       symtab.Kind
	Address    int
	Defined    bool
	References []int // addresses of words that refer to this symbol
}

// BuildXRef produces a cross-reference table for one assembled unit.
func BuildXRef(u *assemble.Unit) []*XRefEntry {
	byName := make(map[string]*XRefEntry)

	for _, sym := range u.Symbols.Enumerate() {
		byName[sym.Name] = &XRefEntry{
			Name:    sym.Name,
			Kind:    sym.Kind,
			Address: sym.Address,
			Defined: sym.DefinedHere,
		}
	}

	for _, e := range u.Image.Entries() {
		if e.SymbolRef == "" {
			continue
		}
		entry, ok := byName[e.SymbolRef]
		if !ok {
			entry = &XRefEntry{Name: e.SymbolRef}
			byName[e.SymbolRef] = entry
		}
		entry.References = append(entry.References, e.Address)
	}

	entries := make([]*XRefEntry, 0, len(byName))
	for _, e := range byName {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// XRefReport renders a BuildXRef result as a text report.
func XRefReport(entries []*XRefEntry) string {
	var sb strings.Builder
	sb.WriteString("Symbol Cross-Reference\n")
	sb.WriteString("======================\n\n")

	for _, e := range entries {
		fmt.Fprintf(&sb, "%-30s", e.Name)
		if e.Defined {
			fmt.Fprintf(&sb, " [%s @ %d]\n", e.Kind, e.Address)
		} else {
			sb.WriteString(" [undefined]\n")
		}
		if len(e.References) == 0 {
			sb.WriteString("  Referenced:  (never)\n")
		} else {
			addrs := make([]string, len(e.References))
			for i, a := range e.References {
				addrs[i] = fmt.Sprintf("%d", a)
			}
			fmt.Fprintf(&sb, "  Referenced:  %d time(s) at %s\n", len(e.References), strings.Join(addrs, ", "))
		}
		sb.WriteString("\n")
	}

	var defined, undefined, unused int
	for _, e := range entries {
		if e.Defined {
			defined++
		} else {
			undefined++
		}
		if len(e.References) == 0 {
			unused++
		}
	}
	sb.WriteString("Summary\n")
	sb.WriteString("=======\n")
	fmt.Fprintf(&sb, "Total symbols: %d\n", len(entries))
	fmt.Fprintf(&sb, "Defined:       %d\n", defined)
	fmt.Fprintf(&sb, "Undefined:     %d\n", undefined)
	fmt.Fprintf(&sb, "Unreferenced:  %d\n", unused)

	return sb.String()
}

// variantLabel names an image.Variant for listing output.
func variantLabel(v image.Variant) string {
	switch v {
	case image.VariantImmediateValue:
		return "data"
	case image.VariantAddressReference:
		return "addr"
	case image.VariantRegisterPair:
		return "regpair"
	case image.VariantSingleRegister:
		return "reg"
	case image.VariantInstruction:
		return "instr"
	default:
		return "?"
	}
}
