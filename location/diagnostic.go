package location

import "fmt"

// Level is the severity of a Diagnostic.
type Level int

const (
	// Error means the run is failed but continues; partial output is
	// still produced.
	Error Level = iota
	// Warning is surfaced but never fails the run.
	Warning
	// Suggestion is cosmetic, e.g. a style nit.
	Suggestion
)

func (l Level) String() string {
	switch l {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Suggestion:
		return "suggestion"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Diagnostic is a structured error/warning/suggestion anchored to a
// Location. Length is how many source columns it underlines; 0 means "just
// point at the location".
type Diagnostic struct {
	Loc     Location
	Message string
	Level   Level
	Length  int
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Loc, d.Level, d.Message)
}

// Errorf builds an Error-level diagnostic of length 1.
func Errorf(loc Location, format string, args ...any) Diagnostic {
	return Diagnostic{Loc: loc, Message: fmt.Sprintf(format, args...), Level: Error, Length: 1}
}

// Warningf builds a Warning-level diagnostic of length 1.
func Warningf(loc Location, format string, args ...any) Diagnostic {
	return Diagnostic{Loc: loc, Message: fmt.Sprintf(format, args...), Level: Warning, Length: 1}
}

// Suggestf builds a Suggestion-level diagnostic of length 1.
func Suggestf(loc Location, format string, args ...any) Diagnostic {
	return Diagnostic{Loc: loc, Message: fmt.Sprintf(format, args...), Level: Suggestion, Length: 1}
}

// WithLength overrides the underline length and returns the diagnostic.
func (d Diagnostic) WithLength(n int) Diagnostic {
	d.Length = n
	return d
}

// DiagSink is an append-only diagnostic container carried through lexing
// and parsing. It has no other behavior: pushing never aborts, and nothing
// is thrown.
type DiagSink struct {
	diags []Diagnostic
}

// Push appends a diagnostic.
func (s *DiagSink) Push(d Diagnostic) {
	s.diags = append(s.diags, d)
}

// Take drains and returns all accumulated diagnostics, used when handing
// off from the lexer to the parser.
func (s *DiagSink) Take() []Diagnostic {
	out := s.diags
	s.diags = nil
	return out
}

// All returns the accumulated diagnostics without draining them.
func (s *DiagSink) All() []Diagnostic {
	return s.diags
}

// HasErrors reports whether any Error-level diagnostic has been pushed.
func (s *DiagSink) HasErrors() bool {
	for _, d := range s.diags {
		if d.Level == Error {
			return true
		}
	}
	return false
}

// HasErrors reports whether any diagnostic in the slice is Error-level. A
// run is failed iff this is true, regardless of which sink produced them.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Level == Error {
			return true
		}
	}
	return false
}

// Res pairs a computed value with the diagnostics accumulated while
// producing it, mirroring the spec's Res<T> wrapper. Go has no tuple
// sugar for this, so it is a small struct instead.
type Res[T any] struct {
	Value T
	Diags []Diagnostic
}
