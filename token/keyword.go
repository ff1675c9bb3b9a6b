package token

// Keyword is one of the closed set of C23-superset keywords.
type Keyword int

const (
	KwAlignas Keyword = iota
	KwAlignof
	KwAuto
	KwBool
	KwBreak
	KwCase
	KwChar
	KwConst
	KwConstexpr
	KwContinue
	KwDefault
	KwDo
	KwDouble
	KwElse
	KwEnum
	KwExtern
	KwFalse
	KwFloat
	KwFor
	KwGoto
	KwIf
	KwInline
	KwInt
	KwLong
	KwNullptr
	KwRegister
	KwRestrict
	KwReturn
	KwShort
	KwSigned
	KwSizeof
	KwStatic
	KwStaticAssert
	KwStruct
	KwSwitch
	KwThreadLocal
	KwTrue
	KwTypedef
	KwTypeof
	KwTypeofUnqual
	KwUnion
	KwUnsigned
	KwVoid
	KwVolatile
	KwWhile
	KwAtomic
	KwBitInt
	KwComplex
	KwDecimal32
	KwDecimal64
	KwDecimal128
	KwGeneric
	KwImaginary
	KwNoreturn
)

var keywordText = map[Keyword]string{
	KwAlignas: "alignas", KwAlignof: "alignof", KwAuto: "auto", KwBool: "bool",
	KwBreak: "break", KwCase: "case", KwChar: "char", KwConst: "const",
	KwConstexpr: "constexpr", KwContinue: "continue", KwDefault: "default",
	KwDo: "do", KwDouble: "double", KwElse: "else", KwEnum: "enum",
	KwExtern: "extern", KwFalse: "false", KwFloat: "float", KwFor: "for",
	KwGoto: "goto", KwIf: "if", KwInline: "inline", KwInt: "int",
	KwLong: "long", KwNullptr: "nullptr", KwRegister: "register",
	KwRestrict: "restrict", KwReturn: "return", KwShort: "short",
	KwSigned: "signed", KwSizeof: "sizeof", KwStatic: "static",
	KwStaticAssert: "static_assert", KwStruct: "struct", KwSwitch: "switch",
	KwThreadLocal: "thread_local", KwTrue: "true", KwTypedef: "typedef",
	KwTypeof: "typeof", KwTypeofUnqual: "typeof_unqual", KwUnion: "union",
	KwUnsigned: "unsigned", KwVoid: "void", KwVolatile: "volatile",
	KwWhile: "while", KwAtomic: "_Atomic", KwBitInt: "_BitInt",
	KwComplex: "_Complex", KwDecimal32: "_Decimal32", KwDecimal64: "_Decimal64",
	KwDecimal128: "_Decimal128", KwGeneric: "_Generic", KwImaginary: "_Imaginary",
	KwNoreturn: "_Noreturn",
}

func (k Keyword) String() string {
	if s, ok := keywordText[k]; ok {
		return s
	}
	return "?"
}

var textKeyword map[string]Keyword

// deprecated maps a pre-C23 underscore-prefixed spelling to its C23
// keyword and the replacement text used in the deprecation diagnostic.
var deprecated = map[string]Keyword{
	"_Bool":          KwBool,
	"_Alignas":       KwAlignas,
	"_Alignof":       KwAlignof,
	"_Static_assert": KwStaticAssert,
	"_Thread_local":  KwThreadLocal,
}

func init() {
	textKeyword = make(map[string]Keyword, len(keywordText))
	for kw, text := range keywordText {
		textKeyword[text] = kw
	}
}

// LookupKeyword resolves an identifier's text to a Keyword, if it is one.
func LookupKeyword(name string) (Keyword, bool) {
	if kw, ok := textKeyword[name]; ok {
		return kw, true
	}
	if kw, ok := deprecated[name]; ok {
		return kw, true
	}
	return 0, false
}

// Deprecated reports whether name is a pre-C23 spelling superseded in
// C23, and the canonical replacement text to suggest.
func Deprecated(name string) (replacement string, ok bool) {
	if kw, found := deprecated[name]; found {
		return kw.String(), true
	}
	return "", false
}
