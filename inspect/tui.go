// Package inspect is a terminal UI for browsing one compiled file: its
// token stream, its AST, and the diagnostics raised while producing them.
package inspect

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/cfrontend/cfrontend/ast"
	"github.com/cfrontend/cfrontend/service"
)

// TUI is the three-pane token-stream / AST-tree / diagnostics browser.
type TUI struct {
	Frontend *service.Frontend
	App      *tview.Application
	Pages    *tview.Pages

	MainLayout *tview.Flex

	TokenView      *tview.TextView
	TreeView       *tview.TextView
	DiagnosticView *tview.TextView
	StatusBar      *tview.TextView
	CommandInput   *tview.InputField

	filename string
	content  string
}

// NewTUI compiles filename/content through frontend and builds a TUI over
// the result.
func NewTUI(frontend *service.Frontend, filename, content string) *TUI {
	return newTUI(frontend, filename, content, tview.NewApplication())
}

// NewTUIWithScreen is NewTUI but against a caller-supplied screen, used by
// tests to drive the UI against a tcell.SimulationScreen instead of a real
// terminal.
func NewTUIWithScreen(frontend *service.Frontend, filename, content string, screen tcell.Screen) *TUI {
	app := tview.NewApplication().SetScreen(screen)
	return newTUI(frontend, filename, content, app)
}

func newTUI(frontend *service.Frontend, filename, content string, app *tview.Application) *TUI {
	t := &TUI{
		Frontend: frontend,
		App:      app,
		filename: filename,
		content:  content,
	}

	t.initializeViews()
	t.buildLayout()
	t.setupKeyBindings()
	t.RefreshAll()

	return t
}

func (t *TUI) initializeViews() {
	t.TokenView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	t.TokenView.SetBorder(true).SetTitle(" Tokens ")

	t.TreeView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	t.TreeView.SetBorder(true).SetTitle(" AST ")

	t.DiagnosticView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(true)
	t.DiagnosticView.SetBorder(true).SetTitle(" Diagnostics ")

	t.StatusBar = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(false)
	t.StatusBar.SetBorder(true).SetTitle(" Status ")

	t.CommandInput = tview.NewInputField().
		SetLabel("> ").
		SetFieldWidth(0)
	t.CommandInput.SetBorder(true).SetTitle(" Command ")
	t.CommandInput.SetDoneFunc(t.handleCommand)
}

func (t *TUI) buildLayout() {
	leftPanel := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(t.TokenView, 0, 1, false).
		AddItem(t.TreeView, 0, 1, false)

	rightPanel := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(t.DiagnosticView, 0, 2, false).
		AddItem(t.StatusBar, 5, 0, false)

	mainContent := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(leftPanel, 0, 2, false).
		AddItem(rightPanel, 0, 1, false)

	t.MainLayout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(mainContent, 0, 4, false).
		AddItem(t.CommandInput, 3, 0, true)

	t.Pages = tview.NewPages().
		AddPage("main", t.MainLayout, true, true)
}

func (t *TUI) setupKeyBindings() {
	t.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyF5:
			t.RefreshAll()
			return nil
		case tcell.KeyCtrlC:
			t.App.Stop()
			return nil
		case tcell.KeyCtrlL:
			t.RefreshAll()
			return nil
		}
		return event
	})
}

// handleCommand treats the command line as a replacement source for the
// same filename and recompiles: there is no step/continue/breakpoint
// vocabulary for a pure front end, so the only command is "reload with
// this text".
func (t *TUI) handleCommand(key tcell.Key) {
	if key != tcell.KeyEnter {
		return
	}
	cmd := t.CommandInput.GetText()
	if cmd != "" {
		t.content = cmd
		t.CommandInput.SetText("")
		t.RefreshAll()
	}
}

// RefreshAll recompiles the current filename/content and repaints every
// pane from the new Result.
func (t *TUI) RefreshAll() {
	res := t.Frontend.Compile(t.filename, t.content)

	var tokens strings.Builder
	for _, tok := range res.Tokens {
		fmt.Fprintf(&tokens, "%-6s %-20s %s\n", tok.Value.Kind(), tok.Value.String(), tok.Loc)
	}
	t.TokenView.SetText(tokens.String())

	t.TreeView.SetText(ast.Dump(res.Tree))

	var diags strings.Builder
	for _, d := range res.Diags {
		fmt.Fprintf(&diags, "[%s] %s: %s\n", d.Level, d.Loc, d.Message)
	}
	if diags.Len() == 0 {
		diags.WriteString("(no diagnostics)\n")
	}
	t.DiagnosticView.SetText(diags.String())

	t.StatusBar.SetText(res.Describe())
}

// Run starts the TUI event loop.
func (t *TUI) Run() error {
	return t.App.SetRoot(t.Pages, true).SetFocus(t.CommandInput).Run()
}
