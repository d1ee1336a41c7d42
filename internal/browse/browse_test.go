package browse

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lookbusy1344/asm12/internal/assemble"
)

func TestNewPopulatesViews(t *testing.T) {
	u := assemble.FirstPass("t.as", "L: .data 7\nstop\n", nil)
	assemble.SecondPass(u)

	b := New(u, "L: .data 7\nstop\n")

	if !strings.Contains(b.SourceView.GetText(true), "data 7") {
		t.Error("SourceView should contain the expanded source")
	}
	if !strings.Contains(b.SymbolsView.GetText(true), "L") {
		t.Error("SymbolsView should list symbol L")
	}
	if !strings.Contains(b.StatusBar.GetText(true), u.Filename) {
		t.Error("StatusBar should mention the filename")
	}
}

func TestHandleJumpReportsUnknownSymbol(t *testing.T) {
	u := assemble.FirstPass("t.as", "stop\n", nil)
	b := New(u, "stop\n")

	b.CommandInput.SetText("NOPE")
	b.handleJump(tcell.KeyEnter)

	if !strings.Contains(b.StatusBar.GetText(true), "no such symbol") {
		t.Errorf("StatusBar = %q, want a no-such-symbol message", b.StatusBar.GetText(true))
	}
}

func TestHandleJumpReportsKnownSymbol(t *testing.T) {
	u := assemble.FirstPass("t.as", "L: .data 7\n", nil)
	b := New(u, "L: .data 7\n")

	b.CommandInput.SetText("L")
	b.handleJump(tcell.KeyEnter)

	if !strings.Contains(b.StatusBar.GetText(true), "L") {
		t.Errorf("StatusBar = %q, want it to mention L", b.StatusBar.GetText(true))
	}
}
