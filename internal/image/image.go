// Package image implements the data image: the ordered, append-only
// sequence of machine words produced by the first pass and completed by
// the second pass. The append-ordered layout follows encoder/memory.go's
// write pattern, reshaped around deferred entries instead of a literal pool.
package image

import "github.com/lookbusy1344/asm12/internal/encode"

// Variant tags how an entry's word should be completed/encoded.
type Variant int

const (
	VariantImmediateValue   Variant = iota // fully-known value, or a deferred .data label reference
	VariantAddressReference                // deferred: resolved from a symbol at emission
	VariantRegisterPair                    // fully-encoded at creation time
	VariantSingleRegister                  // fully-encoded at creation time
	VariantInstruction                     // fully-encoded at creation time
)

// Entry is one machine word pending or ready for emission.
type Entry struct {
	Address int
	Variant Variant

	// Set for already-complete entries (Instruction / RegisterPair /
	// SingleRegister / a resolved ImmediateValue).
	Word encode.Word

	// Set for a deferred ImmediateValue (".data NAME") or an
	// AddressReference: the label to resolve at emission time.
	SymbolRef string
	// True once SymbolRef has been resolved into Word.
	Resolved bool
}

// Image is the ordered sequence of every machine word for one file.
type Image struct {
	entries []*Entry
}

// New returns an empty image.
func New() *Image {
	return &Image{}
}

// Append adds a fully-encoded entry (instruction word, register-pair word,
// single-register word, or an already-known immediate) at address.
func (img *Image) Append(address int, variant Variant, word encode.Word) *Entry {
	e := &Entry{Address: address, Variant: variant, Word: word, Resolved: true}
	img.entries = append(img.entries, e)
	return e
}

// AppendDeferred adds an entry whose word depends on a symbol resolved
// later: an AddressReference operand, or a ".data NAME" value reference.
func (img *Image) AppendDeferred(address int, variant Variant, symbolName string) *Entry {
	e := &Entry{Address: address, Variant: variant, SymbolRef: symbolName, Resolved: false}
	img.entries = append(img.entries, e)
	return e
}

// Entries returns every entry in insertion (== address) order.
func (img *Image) Entries() []*Entry {
	return img.entries
}

// Len reports the number of words in the image.
func (img *Image) Len() int {
	return len(img.entries)
}
