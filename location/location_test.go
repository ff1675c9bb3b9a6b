package location_test

import (
	"testing"

	"github.com/cfrontend/cfrontend/location"
)

func TestAdvanceColumn(t *testing.T) {
	l := location.New("a.c")
	l = l.AdvanceColumn().AdvanceColumn()
	if l.Line != 1 || l.Column != 3 {
		t.Fatalf("got line=%d col=%d, want line=1 col=3", l.Line, l.Column)
	}
}

func TestAdvanceLineResetsColumn(t *testing.T) {
	l := location.New("a.c").AdvanceColumn().AdvanceColumn().AdvanceLine()
	if l.Line != 2 || l.Column != 1 {
		t.Fatalf("got line=%d col=%d, want line=2 col=1", l.Line, l.Column)
	}
}

func TestRewindSaturatesAtOne(t *testing.T) {
	tests := []struct {
		name   string
		start  location.Location
		k      int
		column int
	}{
		{"simple rewind", location.Location{File: "a.c", Line: 1, Column: 5}, 2, 3},
		{"saturates at 1", location.Location{File: "a.c", Line: 1, Column: 2}, 10, 1},
		{"zero rewind is a no-op", location.Location{File: "a.c", Line: 3, Column: 4}, 0, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.start.Rewind(tt.k)
			if got.Column != tt.column {
				t.Fatalf("Rewind(%d) = col %d, want %d", tt.k, got.Column, tt.column)
			}
		})
	}
}

func TestLocationString(t *testing.T) {
	l := location.Location{File: "main.c", Line: 12, Column: 4}
	if got, want := l.String(), "main.c:12:4"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDiagSinkHasErrors(t *testing.T) {
	var sink location.DiagSink
	if sink.HasErrors() {
		t.Fatal("empty sink should not have errors")
	}

	sink.Push(location.Warningf(location.New("a.c"), "overflow"))
	if sink.HasErrors() {
		t.Fatal("warning-only sink should not have errors")
	}

	sink.Push(location.Errorf(location.New("a.c"), "bad digit"))
	if !sink.HasErrors() {
		t.Fatal("sink with an Error diagnostic should report HasErrors")
	}
}

func TestDiagSinkTakeDrains(t *testing.T) {
	var sink location.DiagSink
	sink.Push(location.Errorf(location.New("a.c"), "x"))

	drained := sink.Take()
	if len(drained) != 1 {
		t.Fatalf("expected 1 drained diagnostic, got %d", len(drained))
	}
	if remaining := sink.Take(); len(remaining) != 0 {
		t.Fatalf("expected sink to be empty after Take, got %d", len(remaining))
	}
}
