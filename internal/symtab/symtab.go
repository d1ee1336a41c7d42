// Package symtab implements the assembler's symbol table: an
// insertion-ordered set of labels supporting forward references. The
// ordered-map shape follows parser.SymbolTable's, reshaped around a
// four-way symbol kind instead of a relocation-type model.
package symtab

import "fmt"

// Kind is the symbol's classification.
type Kind int

const (
	CodeOrData Kind = iota
	Entry
	External
	EntryAndCodeOrData
)

func (k Kind) String() string {
	switch k {
	case CodeOrData:
		return "CodeOrData"
	case Entry:
		return "Entry"
	case External:
		return "External"
	case EntryAndCodeOrData:
		return "EntryAndCodeOrData"
	default:
		return "Unknown"
	}
}

// Symbol is a named code or data label.
type Symbol struct {
	Name       string
	Kind       Kind
	Address    int
	DefinedHere bool
}

// ErrDuplicateLabel is returned by Declare when name already exists and
// cannot be merged.
var ErrDuplicateLabel = fmt.Errorf("duplicate label")

// ErrBothDirectives is returned when an External symbol collides with a
// local definition or an .entry/.extern pair conflict.
var ErrBothDirectives = fmt.Errorf("symbol declared both external and local")

// Table is the ordered symbol table for one source file.
type Table struct {
	order   []*Symbol
	byName  map[string]*Symbol
}

// New returns an empty symbol table.
func New() *Table {
	return &Table{byName: make(map[string]*Symbol)}
}

// Declare inserts a definition at address with the given kind, merging
// with any earlier forward reference or .entry declaration for the same
// name.
func (t *Table) Declare(name string, address int, kind Kind) error {
	if existing, ok := t.byName[name]; ok {
		return t.merge(existing, address, kind)
	}
	sym := &Symbol{Name: name, Kind: kind, Address: address, DefinedHere: true}
	t.byName[name] = sym
	t.order = append(t.order, sym)
	return nil
}

func (t *Table) merge(existing *Symbol, address int, kind Kind) error {
	if existing.Kind == External {
		return ErrBothDirectives
	}
	if existing.DefinedHere {
		return ErrDuplicateLabel
	}
	// existing was a pending reference (or a pending .entry); fill it in.
	existing.Address = address
	existing.DefinedHere = true
	if existing.Kind == Entry {
		existing.Kind = EntryAndCodeOrData
	} else {
		existing.Kind = kind
	}
	return nil
}

// Reference returns the entry for name, creating a pending undefined
// CodeOrData entry if it doesn't exist yet.
func (t *Table) Reference(name string) *Symbol {
	if sym, ok := t.byName[name]; ok {
		return sym
	}
	sym := &Symbol{Name: name, Kind: CodeOrData, Address: 0, DefinedHere: false}
	t.byName[name] = sym
	t.order = append(t.order, sym)
	return sym
}

// DeclareEntry marks name as an entry symbol, merging kinds if a local
// definition already exists.
func (t *Table) DeclareEntry(name string) (*Symbol, error) {
	sym := t.Reference(name)
	if sym.Kind == External {
		return sym, ErrBothDirectives
	}
	if sym.DefinedHere {
		sym.Kind = EntryAndCodeOrData
	} else {
		sym.Kind = Entry
	}
	return sym, nil
}

// DeclareExternal marks name as external, erroring if a local definition
// already exists.
func (t *Table) DeclareExternal(name string) (*Symbol, error) {
	if existing, ok := t.byName[name]; ok {
		if existing.DefinedHere || existing.Kind == Entry || existing.Kind == EntryAndCodeOrData {
			return existing, ErrBothDirectives
		}
		existing.Kind = External
		return existing, nil
	}
	sym := &Symbol{Name: name, Kind: External, Address: 0, DefinedHere: false}
	t.byName[name] = sym
	t.order = append(t.order, sym)
	return sym, nil
}

// Lookup returns the entry for name, if any.
func (t *Table) Lookup(name string) (*Symbol, bool) {
	sym, ok := t.byName[name]
	return sym, ok
}

// Enumerate returns every symbol in insertion order.
func (t *Table) Enumerate() []*Symbol {
	return t.order
}
