package token

// Family partitions the keyword set into the four dispatch families spec
// §4.7 requires. default is handled specially by the parser (it is
// ControlFlow only inside a switch body), so it is classified Attribute
// here — its context-dependent control-flow role is layered on by the
// parser's keyword dispatcher.
type Family int

const (
	FamilyLiteral Family = iota
	FamilyFunctionLike
	FamilyAttribute
	FamilyControlFlow
)

var family = map[Keyword]Family{
	KwTrue: FamilyLiteral, KwFalse: FamilyLiteral, KwNullptr: FamilyLiteral,

	KwSizeof: FamilyFunctionLike, KwAlignof: FamilyFunctionLike,
	KwStaticAssert: FamilyFunctionLike, KwTypeof: FamilyFunctionLike,
	KwTypeofUnqual: FamilyFunctionLike,

	KwIf: FamilyControlFlow, KwElse: FamilyControlFlow, KwWhile: FamilyControlFlow,
	KwDo: FamilyControlFlow, KwFor: FamilyControlFlow, KwSwitch: FamilyControlFlow,
	KwCase: FamilyControlFlow, KwBreak: FamilyControlFlow, KwContinue: FamilyControlFlow,
	KwReturn: FamilyControlFlow, KwGoto: FamilyControlFlow, KwEnum: FamilyControlFlow,
	KwStruct: FamilyControlFlow, KwUnion: FamilyControlFlow, KwTypedef: FamilyControlFlow,
}

// Family returns k's dispatch family. Keywords not explicitly listed above
// (int, long, const, volatile, static, extern, ...) are attribute
// keywords: they modify a pending declaration rather than driving their
// own parse.
func (k Keyword) Family() Family {
	if f, ok := family[k]; ok {
		return f
	}
	return FamilyAttribute
}

// default is context dependent: KwDefault deliberately has no Family
// table entry (falls through to FamilyAttribute) and the parser consults
// its own switch-body context stack before treating it as a case label.
