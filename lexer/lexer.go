// Package lexer implements the single-pass, character-driven state
// machine that turns C source text into a token stream: comments,
// char/string literals with escapes, numeric literals in four radices,
// multi-character symbol greedy matching, and line continuations.
package lexer

import (
	"strings"

	"github.com/cfrontend/cfrontend/escape"
	"github.com/cfrontend/cfrontend/location"
	"github.com/cfrontend/cfrontend/number"
	"github.com/cfrontend/cfrontend/token"
)

// Lexer holds the mutable state of one lexing pass: position, the current
// LexingState/EscapeState pair, and the accumulating diagnostic sink.
// Scoped to a single top-level call — there is no shared lifecycle with
// any other Lexer.
type Lexer struct {
	input string
	pos   int // byte offset of the next unread character
	loc   location.Location
	ch    byte
	atEOF bool

	state      stateKind
	commentSub commentSub
	esc        escState
	escHandler escape.Handler

	identBuf   string
	symBuf     string
	strBuf     strings.Builder
	charVal    rune
	haveChar   bool
	tokenStart location.Location

	tokens []token.Token
	diags  location.DiagSink
}

// NewLexer creates a lexer over content, attributing locations to the
// named file.
func NewLexer(filename, content string) *Lexer {
	l := &Lexer{input: content, loc: location.New(filename), state: stateStartOfLine}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.pos >= len(l.input) {
		l.atEOF = true
		l.ch = 0
		return
	}
	l.ch = l.input[l.pos]
	l.pos++
}

func (l *Lexer) peekChar() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

// advance moves past the current character, updating the location. CR is
// tolerated but does not itself advance the line.
func (l *Lexer) advance() {
	if l.ch == '\n' {
		l.loc = l.loc.AdvanceLine()
	} else if l.ch != '\r' {
		l.loc = l.loc.AdvanceColumn()
	}
	l.readChar()
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentCont(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Lex runs the full state machine over content and returns the resulting
// token stream plus any accumulated diagnostics. This is lex_file.
func Lex(filename, content string) ([]token.Token, []location.Diagnostic) {
	l := NewLexer(filename, content)
	for !l.atEOF {
		l.step()
	}
	l.closeCurrent()
	return l.tokens, l.diags.Take()
}

// step processes exactly one input character according to the
// (char, LexingState, EscapeState) triple, in the priority order spec
// §4.5 lists.
func (l *Lexer) step() {
	c := l.ch
	startLoc := l.loc

	// Priority 3: escapes take over while EscapeState != False, but only
	// inside a char/string literal.
	if (l.state == stateCharLit || l.state == stateStrLit) && l.esc != escFalse {
		l.stepEscape(c)
		return
	}

	switch l.state {
	case stateComment:
		l.stepComment(c)
		return
	case stateCharLit:
		l.stepCharLit(c, startLoc)
		return
	case stateStrLit:
		l.stepStrLit(c, startLoc)
		return
	}

	// Priority 1: leading whitespace on StartOfLine is skipped.
	if l.state == stateStartOfLine && isSpace(c) {
		l.advance()
		return
	}

	// Priority 2: comment entry. A lone pending '/' converts into a
	// comment as soon as a second '/' or a '*' follows, instead of being
	// matched as the divide/divide-assign operator.
	if l.state == stateSymbols && l.symBuf == "/" {
		if c == '*' {
			l.symBuf = ""
			l.state = stateComment
			l.commentSub = commentBody
			l.advance()
			return
		}
		if c == '/' {
			l.symBuf = ""
			l.state = stateComment
			l.commentSub = commentLine
			l.advance()
			return
		}
	}
	if c == '/' && (l.peekChar() == '*' || l.peekChar() == '/') {
		l.closeCurrent()
		l.state = stateSymbols
		l.symBuf = "/"
		l.tokenStart = startLoc
		l.advance()
		return
	}

	// Priority 4: quotes.
	if c == '\'' {
		l.openOrCloseChar(startLoc)
		return
	}
	if c == '"' {
		l.openOrCloseStr(startLoc)
		return
	}

	// Priority 5: number-continuation rules inside an identifier.
	if l.state == stateIdentifier && l.tryNumberContinuation(c) {
		return
	}

	// Priority 6: operator characters enter/extend a symbol buffer. '.'
	// immediately followed by a digit is rewritten as the identifier
	// "0.<digit>..." instead of the period symbol (spec §4.5 rule 8).
	if c == '.' && isDigit(l.peekChar()) {
		l.closeCurrent()
		l.state = stateIdentifier
		l.identBuf = "0."
		l.tokenStart = startLoc
		l.advance()
		return
	}
	if token.IsOperatorChar(c) {
		l.feedSymbol(c, startLoc)
		return
	}

	// Priority 7: whitespace outside char/string closes the current token.
	if isSpace(c) {
		l.closeCurrent()
		l.advance()
		return
	}
	if c == '\\' && l.peekLineContinuation() {
		l.consumeLineContinuation()
		return
	}

	// Priority 8: alphanumerics and '_' extend/start an identifier.
	if isIdentCont(c) || isDigit(c) {
		l.feedIdentifier(c, startLoc)
		return
	}

	l.diags.Push(location.Errorf(startLoc, "unsupported character %q", string(c)))
	l.advance()
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// peekLineContinuation reports whether the backslash under the cursor is
// a line continuation: optional trailing whitespace then a newline.
func (l *Lexer) peekLineContinuation() bool {
	i := l.pos
	for i < len(l.input) && (l.input[i] == ' ' || l.input[i] == '\t') {
		i++
	}
	return i < len(l.input) && l.input[i] == '\n'
}

func (l *Lexer) consumeLineContinuation() {
	startLoc := l.loc
	l.advance() // consume backslash
	sawSpace := false
	for l.ch == ' ' || l.ch == '\t' {
		sawSpace = true
		l.advance()
	}
	if sawSpace {
		l.diags.Push(location.Suggestf(startLoc, "whitespace after line continuation backslash"))
	}
	// consume the newline itself without closing the current token: the
	// LexingState is preserved across a \-continued line (resolves the
	// Open Question in spec §9 in favor of the "latter" behavior).
	l.advance()
}

func (l *Lexer) feedSymbol(c byte, startLoc location.Location) {
	if l.state != stateSymbols {
		l.closeCurrent()
		l.state = stateSymbols
		l.symBuf = ""
	}
	if l.symBuf == "" {
		l.symBuf = string(c)
		l.tokenStart = startLoc
	} else {
		l.symBuf += string(c)
	}
	if len(l.symBuf) == 3 {
		l.emitSymbolPrefix(3)
	}
	l.advance()
}

func (l *Lexer) feedIdentifier(c byte, startLoc location.Location) {
	if l.state != stateIdentifier {
		l.closeCurrent()
		l.state = stateIdentifier
		l.identBuf = ""
		l.tokenStart = startLoc
	}
	l.identBuf += string(c)
	l.advance()
}

// tryNumberContinuation implements spec §4.5 rule 5: '.' and exponent
// signs are absorbed into a number-shaped identifier instead of starting
// a new symbol/identifier.
func (l *Lexer) tryNumberContinuation(c byte) bool {
	if l.identBuf == "" || !isDigit(l.identBuf[0]) {
		return false
	}
	if c == '.' && !strings.Contains(l.identBuf, ".") {
		l.identBuf += "."
		l.advance()
		return true
	}
	if c == '+' || c == '-' {
		last := l.identBuf[len(l.identBuf)-1]
		isDecExp := (last == 'e' || last == 'E') && number.DetectRadix(l.identBuf) == number.Decimal
		isHexExp := (last == 'p' || last == 'P') && number.DetectRadix(l.identBuf) == number.Hex
		if isDecExp || isHexExp {
			l.identBuf += string(c)
			l.advance()
			return true
		}
	}
	return false
}
