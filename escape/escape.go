// Package escape resolves the escape sequences the lexer encounters inside
// character and string literals: \n-style single-character escapes,
// \xNN / \hNN hex bytes, \NNN octal bytes, \uNNNN / \UNNNNNNNN Unicode code
// points.
package escape

import (
	"strconv"

	"github.com/cfrontend/cfrontend/location"
)

// BufferKind is which multi-digit escape form is currently being
// accumulated, or None if no escape is in progress.
type BufferKind int

const (
	None BufferKind = iota
	ShortUnicode
	Unicode
	Hexadecimal
	Octal
)

func (k BufferKind) maxDigits() int {
	switch k {
	case ShortUnicode:
		return 4
	case Unicode:
		return 8
	case Hexadecimal:
		return 3
	case Octal:
		return 3
	default:
		return 0
	}
}

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isOctalDigit(c rune) bool {
	return c >= '0' && c <= '7'
}

// single maps a simple one-character escape to the C1 control character it
// produces.
var single = map[rune]rune{
	'0': 0, 'a': 7, 'b': 8, 't': 9, 'n': 10, 'v': 11, 'f': 12, 'r': 13,
	'e': 27, '"': '"', '\'': '\'', '?': '?', '\\': '\\',
}

// Handler accumulates the digits of a multi-character escape sequence
// across successive Feed calls. The zero value is ready to use.
type Handler struct {
	kind   BufferKind
	digits []rune
	start  location.Location
}

// Active reports whether an escape is mid-accumulation.
func (h *Handler) Active() bool {
	return h.kind != None
}

// Start begins resolving a `\`-escape given the character right after the
// backslash. It returns the resolved code point directly for
// single-character escapes (done=true), or begins a multi-digit buffer
// (done=false) for u/U/x/h/octal escapes. diag is set on an unescapable
// character.
func (h *Handler) Start(next rune, loc location.Location) (r rune, done bool, diag *location.Diagnostic) {
	if c, ok := single[next]; ok {
		return c, true, nil
	}
	switch next {
	case 'u':
		h.kind, h.digits, h.start = ShortUnicode, nil, loc
		return 0, false, nil
	case 'U':
		h.kind, h.digits, h.start = Unicode, nil, loc
		return 0, false, nil
	case 'x', 'h':
		h.kind, h.digits, h.start = Hexadecimal, nil, loc
		return 0, false, nil
	}
	if isOctalDigit(next) {
		h.kind, h.digits, h.start = Octal, []rune{next}, loc
		return 0, false, nil
	}
	d := location.Errorf(loc, "character '%c' cannot be escaped", next)
	return 0, true, &d
}

// Feed offers the next character to an in-progress buffer. closed reports
// whether the buffer is now complete; fallthroughChar/hasFallthrough carry
// a character that was not part of the escape and must be reprocessed by
// the caller as ordinary input.
func (h *Handler) Feed(c rune) (closed bool, fallthroughChar rune, hasFallthrough bool) {
	matches := false
	switch h.kind {
	case Hexadecimal, ShortUnicode, Unicode:
		matches = isHexDigit(c)
	case Octal:
		matches = isOctalDigit(c)
	}

	if matches {
		// The octal buffer's third digit is only consumed if the byte
		// value so far (with this digit appended) stays within a
		// single byte (<= 0o377); otherwise the digit falls through
		// as ordinary text and the buffer closes on two digits.
		if h.kind == Octal && len(h.digits) == 2 {
			v, _ := strconv.ParseInt(string(h.digits)+string(c), 8, 32)
			if v > 0o377 {
				return true, c, true
			}
		}
		h.digits = append(h.digits, c)
		if len(h.digits) == h.kind.maxDigits() {
			return true, 0, false
		}
		return false, 0, false
	}
	return true, c, true
}

// Close finalizes the buffer, returning the resolved code point (or byte,
// for Hex/Octal) and any diagnostic produced by a too-short sequence.
func (h *Handler) Close() (r rune, diag *location.Diagnostic) {
	kind, digits, start := h.kind, h.digits, h.start
	h.kind, h.digits = None, nil

	switch kind {
	case ShortUnicode:
		if len(digits) < 4 {
			d := shortForm(digits, start)
			return 0, &d
		}
	case Unicode:
		if len(digits) <= 4 {
			d := location.Errorf(start, "\\U escape must contain 8 digits, but found only %d. Did you mean to use lowercase \\u?", len(digits))
			return 0, &d
		}
		if len(digits) < 8 {
			d := location.Errorf(start, "\\U escape must contain 8 digits, but found only %d", len(digits))
			return 0, &d
		}
	case Hexadecimal:
		if len(digits) < 2 {
			d := location.Errorf(start, "\\x escape must contain at least 2 digits, but found only %d", len(digits))
			return 0, &d
		}
	}

	if len(digits) == 0 {
		return 0, nil
	}
	v, _ := strconv.ParseInt(string(digits), baseOf(kind), 64)
	if kind == Hexadecimal && v > 0xFF {
		v &= 0xFF
	}
	return rune(v), nil
}

func shortForm(digits []rune, loc location.Location) location.Diagnostic {
	return location.Errorf(loc, "\\u escape must contain 4 digits, but found only %d", len(digits))
}

func baseOf(kind BufferKind) int {
	switch kind {
	case Octal:
		return 8
	default:
		return 16
	}
}
