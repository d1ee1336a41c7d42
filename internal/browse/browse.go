// Package browse implements a read-only terminal browser over an
// assembled unit: source on one side, the resolved memory listing and
// symbol table on the other. There is no execution model here — nothing
// to step, nothing to break on — so the layout keeps only source,
// listing, symbols, and a status bar, with the command input repurposed
// for jump-to-symbol lookups instead of execution control.
package browse

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lookbusy1344/asm12/internal/assemble"
	"github.com/lookbusy1344/asm12/internal/listing"
)

// Browser is the text user interface for inspecting one assembled unit.
type Browser struct {
	Unit *assemble.Unit
	Expanded string

	App  *tview.Application
	Flex *tview.Flex

	SourceView  *tview.TextView
	ListingView *tview.TextView
	SymbolsView *tview.TextView
	StatusBar   *tview.TextView
	CommandInput *tview.InputField
}

// New builds a Browser over an assembled unit and the expanded source
// text it was assembled from.
func New(u *assemble.Unit, expanded string) *Browser {
	b := &Browser{
		Unit:     u,
		Expanded: expanded,
		App:      tview.NewApplication(),
	}
	b.initializeViews()
	b.buildLayout()
	b.setupKeyBindings()
	return b
}

func (b *Browser) initializeViews() {
	b.SourceView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	b.SourceView.SetBorder(true).SetTitle(" Source (expanded) ")
	b.SourceView.SetText(tview.Escape(b.Expanded))

	b.ListingView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	b.ListingView.SetBorder(true).SetTitle(" Memory ")
	b.ListingView.SetText(tview.Escape(listing.Format(b.Unit, listing.DefaultFormatOptions())))

	b.SymbolsView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	b.SymbolsView.SetBorder(true).SetTitle(" Symbols ")
	b.SymbolsView.SetText(tview.Escape(symbolSummary(b.Unit)))

	b.StatusBar = tview.NewTextView().SetDynamicColors(true)
	b.StatusBar.SetText(fmt.Sprintf("[yellow]%s[-]  words=%d  errors=%d  warnings=%d  (/ to jump, q to quit)",
		b.Unit.Filename, b.Unit.Image.Len(), len(b.Unit.Sink.Errors), len(b.Unit.Sink.Warnings)))

	b.CommandInput = tview.NewInputField().
		SetLabel("/ ").
		SetFieldWidth(0)
	b.CommandInput.SetBorder(true).SetTitle(" Jump to symbol ")
	b.CommandInput.SetDoneFunc(b.handleJump)
}

func (b *Browser) buildLayout() {
	left := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(b.SourceView, 0, 2, false).
		AddItem(b.CommandInput, 3, 0, true)

	right := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(b.ListingView, 0, 2, false).
		AddItem(b.SymbolsView, 0, 1, false)

	body := tview.NewFlex().
		AddItem(left, 0, 1, true).
		AddItem(right, 0, 1, false)

	b.Flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(body, 0, 1, true).
		AddItem(b.StatusBar, 1, 0, false)
}

func (b *Browser) setupKeyBindings() {
	b.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Rune() == 'q' && b.App.GetFocus() != b.CommandInput {
			b.App.Stop()
			return nil
		}
		return event
	})
}

func (b *Browser) handleJump(key tcell.Key) {
	if key != tcell.KeyEnter {
		return
	}
	name := strings.TrimSpace(b.CommandInput.GetText())
	b.CommandInput.SetText("")
	if name == "" {
		return
	}
	sym, ok := b.Unit.Symbols.Lookup(name)
	if !ok {
		b.StatusBar.SetText(fmt.Sprintf("[red]no such symbol: %s[-]", name))
		return
	}
	b.StatusBar.SetText(fmt.Sprintf("[green]%s[-] -> %s @ %d", name, sym.Kind, sym.Address))
}

func symbolSummary(u *assemble.Unit) string {
	var sb strings.Builder
	for _, sym := range u.Symbols.Enumerate() {
		fmt.Fprintf(&sb, "%-20s %-20s %d\n", sym.Name, sym.Kind, sym.Address)
	}
	return sb.String()
}

// Run starts the TUI event loop. It blocks until the user quits.
func (b *Browser) Run() error {
	b.App.SetRoot(b.Flex, true).SetFocus(b.CommandInput)
	return b.App.Run()
}
