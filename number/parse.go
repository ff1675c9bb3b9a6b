package number

import (
	"strconv"
	"strings"

	"github.com/cfrontend/cfrontend/location"
)

// Radix is the base a numeric literal was written in.
type Radix int

const (
	Decimal Radix = iota
	Hex
	Octal
	Binary
)

// DetectRadix inspects the digit-prefix of literal (suffix already
// stripped, '.' / exponent markers still present) and returns its radix.
// A bare "0" is decimal, per original_source/src/lexer/numbers/base/octal.rs:
// octal requires at least one digit after the leading zero.
func DetectRadix(digits string) Radix {
	if len(digits) >= 2 && digits[0] == '0' {
		switch digits[1] {
		case 'x', 'X':
			return Hex
		case 'b', 'B':
			return Binary
		}
		if !strings.ContainsAny(digits, ".eEpP") {
			for _, c := range digits[1:] {
				if c < '0' || c > '9' {
					return Decimal
				}
			}
			return Octal
		}
	}
	return Decimal
}

// suffixOrder lists every legal case-insensitive C suffix spelling,
// longest first so the caller can do a greedy longest-match scan from the
// right; suffixType maps each spelling to its NumberType.
var suffixOrder = []string{
	"ull", "llu", "uLL", "LLu", "ULL", "LLU", "Ull", "llU",
	"ll", "LL",
	"ul", "lu", "UL", "LU", "uL", "Ul", "lU", "Lu",
	"u", "U",
	"l", "L",
	"f", "F",
}

var suffixType = map[string]Type{
	"ull": ULongLong, "llu": ULongLong, "uLL": ULongLong, "LLu": ULongLong, "ULL": ULongLong, "LLU": ULongLong,
	"Ull": ULongLong, "llU": ULongLong,
	"ll": LongLong, "LL": LongLong,
	"ul": ULong, "lu": ULong, "UL": ULong, "LU": ULong,
	"uL": ULong, "Ul": ULong, "lU": ULong, "Lu": ULong,
	"u": UInt, "U": UInt,
	"l": Long, "L": Long,
	"f": Float, "F": Float,
}

// splitSuffix scans literal from the right for the longest known suffix
// and returns the digit portion and the matched Type (ok=false means no
// suffix was present).
func splitSuffix(literal string) (digits string, t Type, ok bool) {
	for _, s := range suffixOrder {
		if strings.HasSuffix(literal, s) {
			return literal[:len(literal)-len(s)], suffixType[s], true
		}
	}
	return literal, 0, false
}

func isFloatShaped(digits string) bool {
	return strings.ContainsAny(digits, ".") ||
		(DetectRadix(digits) == Decimal && strings.ContainsAny(digits, "eE")) ||
		(DetectRadix(digits) == Hex && strings.ContainsAny(digits, "pP"))
}

// defaultIntType picks the smallest of Int, Long, LongLong (or their
// unsigned analogues if unsigned is set) that can hold v.
func defaultIntType(v uint64, unsigned bool) Type {
	order := []Type{Int, Long, LongLong}
	if unsigned {
		order = []Type{UInt, ULong, ULongLong}
	}
	for _, t := range order {
		if v <= maxUnsigned[t] {
			return t
		}
	}
	return order[len(order)-1]
}

func validDigit(c byte, r Radix) bool {
	switch r {
	case Octal:
		return c >= '0' && c <= '7'
	case Binary:
		return c == '0' || c == '1'
	case Hex:
		return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
	default:
		return c >= '0' && c <= '9'
	}
}

// Parse parses literal (the full identifier-shaped token text, suffix
// included) into an OverParseRes. loc is the location of the literal's
// first character, used to anchor any diagnostics.
func Parse(literal string, loc location.Location) OverParseRes {
	digits, suffixT, hasSuffix := splitSuffix(literal)
	// On a hexadecimal integer a trailing f/F is a digit, not a suffix.
	if hasSuffix && suffixT == Float && DetectRadix(literal) == Hex && !strings.ContainsAny(literal, "pP") {
		digits, hasSuffix = literal, false
	}
	if digits == "" {
		return errRes(location.Errorf(loc, "empty numeric literal").WithLength(len(literal)))
	}

	floaty := isFloatShaped(digits)
	if floaty {
		return parseFloat(digits, suffixT, hasSuffix, literal, loc)
	}
	return parseInt(digits, suffixT, hasSuffix, literal, loc)
}

func parseFloat(digits string, suffixT Type, hasSuffix bool, literal string, loc location.Location) OverParseRes {
	t := Double
	if hasSuffix {
		switch suffixT {
		case Float:
			t = Float
		case Long:
			t = LongDouble
		default:
			return errRes(location.Errorf(loc, "invalid suffix on floating literal %q", literal).WithLength(len(literal)))
		}
	}
	if t == LongDouble {
		return errRes(location.Errorf(loc, "long double literal %q is not supported", literal).WithLength(len(literal)))
	}

	f, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return errRes(location.Errorf(loc, "malformed floating literal %q", literal).WithLength(len(literal)))
	}
	if t == Float {
		f = float64(float32(f))
	}
	return value(Number{Type: t, F: f})
}

func parseInt(digits string, suffixT Type, hasSuffix bool, literal string, loc location.Location) OverParseRes {
	radix := DetectRadix(digits)
	body := digits
	base := 10
	switch radix {
	case Hex:
		body, base = digits[2:], 16
	case Binary:
		body, base = digits[2:], 2
	case Octal:
		body, base = digits[1:], 8
	}
	if body == "" {
		body = "0"
	}

	for i := 0; i < len(body); i++ {
		if !validDigit(body[i], radix) {
			if radix == Octal {
				return errRes(location.Errorf(loc, "an octal constant must only contain digits between '0' and '7'").WithLength(len(literal)))
			}
			return errRes(location.Errorf(loc, "invalid digit %q for %s literal %q", body[i], radixName(radix), literal).WithLength(len(literal)))
		}
	}

	v, perr := strconv.ParseUint(body, base, 64)
	if perr != nil {
		// body exceeds even the widest representable type (uint64):
		// there is no value left to clamp to, unlike the narrower-type
		// overflows below, so this is the unsalvageable error case.
		return overflow()
	}

	var t Type
	if hasSuffix {
		t = suffixT
	} else {
		t = defaultIntType(v, false)
	}

	if max, ok := maxUnsigned[t]; ok && v > max {
		if hasSuffix {
			return valueOverflow(Number{Type: t, I: max})
		}
		// No suffix and no signed type holds v: fall back to the
		// unsigned analogues instead of reporting overflow.
		t = defaultIntType(v, true)
		if max := maxUnsigned[t]; v > max {
			return valueOverflow(Number{Type: t, I: max})
		}
	}

	return value(Number{Type: t, I: v})
}

func radixName(r Radix) string {
	switch r {
	case Hex:
		return "hexadecimal"
	case Octal:
		return "octal"
	case Binary:
		return "binary"
	default:
		return "decimal"
	}
}
