package symtab

import "testing"

func TestDeclareThenLookup(t *testing.T) {
	tab := New()
	if err := tab.Declare("LOOP", 100, CodeOrData); err != nil {
		t.Fatalf("Declare: %v", err)
	}
	sym, ok := tab.Lookup("LOOP")
	if !ok {
		t.Fatal("expected LOOP to be present")
	}
	if sym.Address != 100 || sym.Kind != CodeOrData || !sym.DefinedHere {
		t.Errorf("unexpected symbol state: %+v", sym)
	}
}

func TestDuplicateDeclareIsError(t *testing.T) {
	tab := New()
	if err := tab.Declare("X", 100, CodeOrData); err != nil {
		t.Fatalf("first Declare: %v", err)
	}
	if err := tab.Declare("X", 105, CodeOrData); err != ErrDuplicateLabel {
		t.Errorf("second Declare = %v, want ErrDuplicateLabel", err)
	}
}

func TestForwardReferenceThenDeclareMerges(t *testing.T) {
	tab := New()
	ref := tab.Reference("TARGET")
	if ref.DefinedHere {
		t.Fatal("a pending reference must not be DefinedHere")
	}
	if err := tab.Declare("TARGET", 120, CodeOrData); err != nil {
		t.Fatalf("Declare after Reference: %v", err)
	}
	sym, _ := tab.Lookup("TARGET")
	if !sym.DefinedHere || sym.Address != 120 {
		t.Errorf("forward reference did not resolve: %+v", sym)
	}
}

func TestEntryThenDeclareBecomesEntryAndCodeOrData(t *testing.T) {
	tab := New()
	if _, err := tab.DeclareEntry("M"); err != nil {
		t.Fatalf("DeclareEntry: %v", err)
	}
	if err := tab.Declare("M", 100, CodeOrData); err != nil {
		t.Fatalf("Declare: %v", err)
	}
	sym, _ := tab.Lookup("M")
	if sym.Kind != EntryAndCodeOrData {
		t.Errorf("Kind = %v, want EntryAndCodeOrData", sym.Kind)
	}
}

func TestExternalCannotMergeWithLocalDefinition(t *testing.T) {
	tab := New()
	if err := tab.Declare("K", 100, CodeOrData); err != nil {
		t.Fatalf("Declare: %v", err)
	}
	if _, err := tab.DeclareExternal("K"); err != ErrBothDirectives {
		t.Errorf("DeclareExternal after local Declare = %v, want ErrBothDirectives", err)
	}
}

func TestLocalDefinitionCannotMergeWithExternal(t *testing.T) {
	tab := New()
	if _, err := tab.DeclareExternal("K"); err != nil {
		t.Fatalf("DeclareExternal: %v", err)
	}
	if err := tab.Declare("K", 100, CodeOrData); err != ErrBothDirectives {
		t.Errorf("Declare after DeclareExternal = %v, want ErrBothDirectives", err)
	}
}

func TestEnumeratePreservesInsertionOrder(t *testing.T) {
	tab := New()
	tab.Declare("B", 101, CodeOrData)
	tab.Declare("A", 102, CodeOrData)
	tab.Declare("C", 103, CodeOrData)

	var names []string
	for _, sym := range tab.Enumerate() {
		names = append(names, sym.Name)
	}
	want := []string{"B", "A", "C"}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Enumerate()[%d] = %s, want %s", i, names[i], want[i])
		}
	}
}
