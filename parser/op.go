package parser

import "github.com/cfrontend/cfrontend/token"

// Assoc is the direction in which operators of equal precedence group.
type Assoc int

const (
	LeftToRight Assoc = iota
	RightToLeft
)

// Op describes one binary operator: its source lexeme, its precedence
// level, and its associativity. Levels follow the classic single-pass C
// operator-precedence table (1 tightest, 15 loosest) rather than the
// "higher number binds tighter" convention, so that TernaryPrecedence
// below reads as the textbook value 13.
type Op struct {
	Lexeme string
	Level  int
	Assoc  Assoc
}

// TernaryPrecedence is `?:`'s level in the same table — between logical-or
// (12) and assignment (14), matching original_source's
// TernaryOperator::precedence constant.
const TernaryPrecedence = 13

// CommaPrecedence is the loosest level: the comma operator outside a list
// initialiser.
const CommaPrecedence = 15

// AssignPrecedence is assignment's level, one looser than the ternary so
// `a = b ? c : d` parses the ternary as the whole right-hand side.
const AssignPrecedence = 14

// binaryOps maps every binary-capable symbol to its Op. Symbols that are
// exclusively unary (e.g. `~`, `!`) are absent; symbols that are
// double-duty (`*`, `&`, `+`, `-`) appear here for their binary reading —
// parseUnary claims the unary reading by grammar position instead of by
// consulting this table.
var binaryOps = map[token.Symbol]Op{
	token.SymStar:    {"*", 3, LeftToRight},
	token.SymSlash:   {"/", 3, LeftToRight},
	token.SymPercent: {"%", 3, LeftToRight},

	token.SymPlus:  {"+", 4, LeftToRight},
	token.SymMinus: {"-", 4, LeftToRight},

	token.SymShl: {"<<", 5, LeftToRight},
	token.SymShr: {">>", 5, LeftToRight},

	token.SymLess:    {"<", 6, LeftToRight},
	token.SymLe:      {"<=", 6, LeftToRight},
	token.SymGreater: {">", 6, LeftToRight},
	token.SymGe:      {">=", 6, LeftToRight},

	token.SymEq: {"==", 7, LeftToRight},
	token.SymNe: {"!=", 7, LeftToRight},

	token.SymAmp:   {"&", 8, LeftToRight},
	token.SymCaret: {"^", 9, LeftToRight},
	token.SymPipe:  {"|", 10, LeftToRight},

	token.SymAndAnd: {"&&", 11, LeftToRight},
	token.SymOrOr:   {"||", 12, LeftToRight},

	token.SymAssign:    {"=", AssignPrecedence, RightToLeft},
	token.SymAddAssn:   {"+=", AssignPrecedence, RightToLeft},
	token.SymSubAssn:   {"-=", AssignPrecedence, RightToLeft},
	token.SymMulAssn:   {"*=", AssignPrecedence, RightToLeft},
	token.SymDivAssn:   {"/=", AssignPrecedence, RightToLeft},
	token.SymModAssn:   {"%=", AssignPrecedence, RightToLeft},
	token.SymAndAssn:   {"&=", AssignPrecedence, RightToLeft},
	token.SymOrAssn:    {"|=", AssignPrecedence, RightToLeft},
	token.SymXorAssn:   {"^=", AssignPrecedence, RightToLeft},
	token.SymShlAssn:   {"<<=", AssignPrecedence, RightToLeft},
	token.SymShrAssn:   {">>=", AssignPrecedence, RightToLeft},

	token.SymComma: {",", CommaPrecedence, LeftToRight},
}

// prefixUnary is every symbol that can open a unary-prefix expression.
var prefixUnary = map[token.Symbol]string{
	token.SymPlus:   "+",
	token.SymMinus:  "-",
	token.SymNot:    "!",
	token.SymTilde:  "~",
	token.SymStar:   "*",
	token.SymAmp:    "&",
	token.SymIncr:   "++",
	token.SymDecr:   "--",
}

// postfixUnary is every symbol that, immediately following a completed
// operand, continues it as a postfix unary node instead of starting a new
// binary operator.
var postfixUnary = map[token.Symbol]string{
	token.SymIncr: "++",
	token.SymDecr: "--",
}
