package listing

import (
	"strings"
	"testing"

	"github.com/lookbusy1344/asm12/internal/assemble"
)

func TestBuildXRefTracksReferences(t *testing.T) {
	u := assemble.FirstPass("t.as", "jmp FWD\nFWD: stop\n", nil)
	assemble.SecondPass(u)

	entries := BuildXRef(u)
	var fwd *XRefEntry
	for _, e := range entries {
		if e.Name == "FWD" {
			fwd = e
		}
	}
	if fwd == nil {
		t.Fatal("FWD not found in cross-reference")
	}
	if !fwd.Defined {
		t.Error("FWD should be marked defined")
	}
	if len(fwd.References) != 1 {
		t.Errorf("FWD should have 1 reference, got %d", len(fwd.References))
	}
}

func TestXRefReportListsUnreferencedSymbols(t *testing.T) {
	u := assemble.FirstPass("t.as", "X: .data 1\nstop\n", nil)
	assemble.SecondPass(u)

	report := XRefReport(BuildXRef(u))
	if !strings.Contains(report, "X") {
		t.Error("report should mention symbol X")
	}
	if !strings.Contains(report, "(never)") {
		t.Error("report should note X is never referenced")
	}
}

func TestFormatIncludesAddressesAndSymbols(t *testing.T) {
	u := assemble.FirstPass("t.as", "L: .data 7\n", nil)
	out := Format(u, nil)
	if !strings.Contains(out, "000100") {
		t.Errorf("formatted output should include the address 100, got: %s", out)
	}
	if !strings.Contains(out, "L") {
		t.Error("formatted output should list symbol L")
	}
}

func TestLintFlagsTrailingWhitespaceAndTabs(t *testing.T) {
	src := "stop  \n\tclr r1\n"
	issues := Lint(src, nil, nil)

	var sawTrailing, sawTab bool
	for _, iss := range issues {
		if iss.Code == "TRAILING_WS" {
			sawTrailing = true
		}
		if iss.Code == "TAB_CHAR" {
			sawTab = true
		}
	}
	if !sawTrailing {
		t.Error("expected a trailing-whitespace finding")
	}
	if !sawTab {
		t.Error("expected a tab-character finding")
	}
}

func TestLintFlagsUnusedLabels(t *testing.T) {
	u := assemble.FirstPass("t.as", "X: .data 1\nstop\n", nil)
	issues := Lint("X: .data 1\nstop\n", u, nil)

	found := false
	for _, iss := range issues {
		if iss.Code == "UNUSED_LABEL" {
			found = true
		}
	}
	if !found {
		t.Error("expected an UNUSED_LABEL finding for X")
	}
}
