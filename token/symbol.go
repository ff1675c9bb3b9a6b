package token

// Symbol is one C punctuator, from single characters through the longest
// three-character operators.
type Symbol int

const (
	SymLParen Symbol = iota
	SymRParen
	SymLBracket
	SymRBracket
	SymLBrace
	SymRBrace
	SymTilde
	SymNot
	SymStar
	SymAmp
	SymPercent
	SymSlash
	SymGreater
	SymLess
	SymAssign
	SymPipe
	SymCaret
	SymComma
	SymQuestion
	SymColon
	SymSemicolon
	SymDot
	SymPlus
	SymMinus

	SymArrow    // ->
	SymIncr     // ++
	SymDecr     // --
	SymShl      // <<
	SymShr      // >>
	SymLe       // <=
	SymGe       // >=
	SymEq       // ==
	SymNe       // !=
	SymAndAnd   // &&
	SymOrOr     // ||
	SymAddAssn  // +=
	SymSubAssn  // -=
	SymMulAssn  // *=
	SymDivAssn  // /=
	SymModAssn  // %=
	SymAndAssn  // &=
	SymOrAssn   // |=
	SymXorAssn  // ^=
	SymEllipsis // ...
	SymShlAssn  // <<=
	SymShrAssn  // >>=
	SymArrowPtr // ->*
)

// symbolText is the canonical spelling of every symbol; its length is the
// symbol's canonical byte length.
var symbolText = map[Symbol]string{
	SymLParen: "(", SymRParen: ")", SymLBracket: "[", SymRBracket: "]",
	SymLBrace: "{", SymRBrace: "}", SymTilde: "~", SymNot: "!",
	SymStar: "*", SymAmp: "&", SymPercent: "%", SymSlash: "/",
	SymGreater: ">", SymLess: "<", SymAssign: "=", SymPipe: "|",
	SymCaret: "^", SymComma: ",", SymQuestion: "?", SymColon: ":",
	SymSemicolon: ";", SymDot: ".", SymPlus: "+", SymMinus: "-",

	SymArrow: "->", SymIncr: "++", SymDecr: "--", SymShl: "<<", SymShr: ">>",
	SymLe: "<=", SymGe: ">=", SymEq: "==", SymNe: "!=",
	SymAndAnd: "&&", SymOrOr: "||",
	SymAddAssn: "+=", SymSubAssn: "-=", SymMulAssn: "*=", SymDivAssn: "/=",
	SymModAssn: "%=", SymAndAssn: "&=", SymOrAssn: "|=", SymXorAssn: "^=",

	SymEllipsis: "...", SymShlAssn: "<<=", SymShrAssn: ">>=", SymArrowPtr: "->*",
}

var textSymbol map[string]Symbol

func init() {
	textSymbol = make(map[string]Symbol, len(symbolText))
	for sym, text := range symbolText {
		textSymbol[text] = sym
	}
}

func (s Symbol) String() string {
	if t, ok := symbolText[s]; ok {
		return t
	}
	return "?"
}

// Len returns the canonical byte length of s.
func (s Symbol) Len() int {
	return len(s.String())
}

// LookupSymbol resolves a punctuator's exact text to its Symbol.
func LookupSymbol(text string) (Symbol, bool) {
	s, ok := textSymbol[text]
	return s, ok
}

// operatorChars is every byte that can start or extend a symbol buffer,
// per spec §4.5 rule 6.
var operatorChars = map[byte]bool{}

func init() {
	for _, c := range "()[]{}~!*&%/><=|^,?:;.+-" {
		operatorChars[byte(c)] = true
	}
}

// IsOperatorChar reports whether b can start or extend a pending symbol.
func IsOperatorChar(b byte) bool {
	return operatorChars[b]
}
