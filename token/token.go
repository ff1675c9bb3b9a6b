// Package token defines the lexical tokens produced by the lexer: their
// kinds, the symbol/keyword tables, and the Token type itself carrying a
// source location.
package token

import (
	"fmt"

	"github.com/cfrontend/cfrontend/location"
	"github.com/cfrontend/cfrontend/number"
)

// Kind is the tag of a Token's Value.
type Kind int

const (
	KindChar Kind = iota
	KindStr
	KindIdent
	KindKeyword
	KindNumber
	KindSymbol
)

func (k Kind) String() string {
	switch k {
	case KindChar:
		return "Char"
	case KindStr:
		return "Str"
	case KindIdent:
		return "Ident"
	case KindKeyword:
		return "Keyword"
	case KindNumber:
		return "Number"
	case KindSymbol:
		return "Symbol"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is the payload of a Token; one concrete type per Kind.
type Value interface {
	Kind() Kind
	String() string
}

// CharValue is a character literal's resolved code point.
type CharValue struct{ C rune }

func (CharValue) Kind() Kind        { return KindChar }
func (v CharValue) String() string  { return fmt.Sprintf("Char(%q)", v.C) }

// StrValue is a (possibly concatenated) string literal's bytes.
type StrValue struct{ S string }

func (StrValue) Kind() Kind       { return KindStr }
func (v StrValue) String() string { return fmt.Sprintf("Str(%q)", v.S) }

// IdentValue is an identifier name.
type IdentValue struct{ Name string }

func (IdentValue) Kind() Kind       { return KindIdent }
func (v IdentValue) String() string { return fmt.Sprintf("Ident(%s)", v.Name) }

// KeywordValue is one of the closed set of C keywords.
type KeywordValue struct{ Keyword Keyword }

func (KeywordValue) Kind() Kind       { return KindKeyword }
func (v KeywordValue) String() string { return fmt.Sprintf("Keyword(%s)", v.Keyword) }

// NumberValue is a parsed numeric literal.
type NumberValue struct{ Number number.Number }

func (NumberValue) Kind() Kind       { return KindNumber }
func (v NumberValue) String() string { return v.Number.String() }

// SymbolValue is one punctuation operator.
type SymbolValue struct{ Symbol Symbol }

func (SymbolValue) Kind() Kind       { return KindSymbol }
func (v SymbolValue) String() string { return fmt.Sprintf("Symbol(%s)", v.Symbol) }

// Token pairs a source Location with its Value.
type Token struct {
	Loc   location.Location
	Value Value
}

func (t Token) String() string {
	return t.Value.String()
}
