package image

import (
	"testing"

	"github.com/lookbusy1344/asm12/internal/encode"
)

func TestAppendRecordsResolvedEntry(t *testing.T) {
	img := New()
	e := img.Append(100, VariantImmediateValue, encode.Immediate(5))
	if !e.Resolved {
		t.Error("Append should produce a resolved entry")
	}
	if img.Len() != 1 {
		t.Errorf("Len() = %d, want 1", img.Len())
	}
}

func TestAppendDeferredIsUnresolved(t *testing.T) {
	img := New()
	e := img.AppendDeferred(101, VariantAddressReference, "LOOP")
	if e.Resolved {
		t.Error("AppendDeferred should produce an unresolved entry")
	}
	if e.SymbolRef != "LOOP" {
		t.Errorf("SymbolRef = %q, want LOOP", e.SymbolRef)
	}
}

func TestEntriesPreservesOrder(t *testing.T) {
	img := New()
	img.Append(100, VariantImmediateValue, encode.Immediate(1))
	img.Append(101, VariantImmediateValue, encode.Immediate(2))

	entries := img.Entries()
	if len(entries) != 2 || entries[0].Address != 100 || entries[1].Address != 101 {
		t.Errorf("Entries() = %+v, want addresses 100 then 101", entries)
	}
}
