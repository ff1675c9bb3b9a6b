package inspect

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/cfrontend/cfrontend/service"
)

// TestHandleCommandReloadsWithNewContent is an internal test that can
// access the unexported handleCommand method directly.
func TestHandleCommandReloadsWithNewContent(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	defer screen.Fini()

	tui := NewTUIWithScreen(service.New(nil), "a.c", "int x;", screen)

	tui.CommandInput.SetText("int y;")
	tui.handleCommand(tcell.KeyEnter)

	text := tui.TokenView.GetText(true)
	if !strings.Contains(text, "y") {
		t.Fatalf("expected reloaded content to mention y, got %q", text)
	}
}

// TestHandleCommandIgnoresNonEnterKey checks the done-func only acts on
// Enter, matching the teacher's debugger TUI's handleCommand.
func TestHandleCommandIgnoresNonEnterKey(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	defer screen.Fini()

	tui := NewTUIWithScreen(service.New(nil), "a.c", "int x;", screen)

	before := tui.TokenView.GetText(true)
	tui.CommandInput.SetText("int y;")
	tui.handleCommand(tcell.KeyEscape)

	after := tui.TokenView.GetText(true)
	if before != after {
		t.Fatalf("expected no reload on non-Enter key; before=%q after=%q", before, after)
	}
}
