package number

import "github.com/cfrontend/cfrontend/location"

// ResKind is the tag of an OverParseRes, the explicit 5-case sum spec'd for
// number parsing. A plain tagged struct is used rather than a generic
// monadic type — the fold operation (IgnoreOverflow) is a simple switch,
// so there is nothing a heavier abstraction would buy here.
type ResKind int

const (
	// KindValue: the literal parsed cleanly.
	KindValue ResKind = iota
	// KindOverflow: the literal overflows and no value could be salvaged
	// (the magnitude exceeds even the widest representable type, so
	// there is nothing left to clamp to). Demoted to an error by
	// IgnoreOverflow.
	KindOverflow
	// KindValueOverflow: the literal overflows but carries a clamped
	// value. Demoted to a warning-carrying value by IgnoreOverflow.
	KindValueOverflow
	// KindErr: the literal is ill-formed and unrepresentable (e.g. a
	// malformed float). Always an error.
	KindErr
	// KindValueErr: a value is available but paired with a
	// pre-formed diagnostic (used after IgnoreOverflow has run).
	KindValueErr
)

// OverParseRes is the result of attempting to parse a numeric literal.
type OverParseRes struct {
	Kind  ResKind
	Value Number
	Diag  location.Diagnostic
}

func value(n Number) OverParseRes {
	return OverParseRes{Kind: KindValue, Value: n}
}

func overflow() OverParseRes {
	return OverParseRes{Kind: KindOverflow}
}

func valueOverflow(n Number) OverParseRes {
	return OverParseRes{Kind: KindValueOverflow, Value: n}
}

func errRes(d location.Diagnostic) OverParseRes {
	return OverParseRes{Kind: KindErr, Diag: d}
}

// IgnoreOverflow demotes Overflow to an Error diagnostic (no usable value)
// and ValueOverflow to a ValueErr carrying a Warning diagnostic (the
// clamped value is still usable). Value and Err pass through unchanged.
func (r OverParseRes) IgnoreOverflow(literal string, loc location.Location) OverParseRes {
	switch r.Kind {
	case KindOverflow:
		return errRes(location.Errorf(loc, "numeric literal %q does not fit any representable type", literal).WithLength(len(literal)))
	case KindValueOverflow:
		return OverParseRes{
			Kind:  KindValueErr,
			Value: r.Value,
			Diag:  location.Warningf(loc, "numeric literal %q overflows %s, value clamped", literal, r.Value.Type).WithLength(len(literal)),
		}
	default:
		return r
	}
}

// Diagnostics returns the zero-or-one diagnostics this result carries.
func (r OverParseRes) Diagnostics() []location.Diagnostic {
	switch r.Kind {
	case KindErr, KindValueErr:
		return []location.Diagnostic{r.Diag}
	default:
		return nil
	}
}

// HasValue reports whether r carries a usable Number.
func (r OverParseRes) HasValue() bool {
	return r.Kind == KindValue || r.Kind == KindValueOverflow || r.Kind == KindValueErr
}
