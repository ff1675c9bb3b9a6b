package lexer

import (
	"github.com/cfrontend/cfrontend/location"
	"github.com/cfrontend/cfrontend/number"
	"github.com/cfrontend/cfrontend/token"
)

func (l *Lexer) push(loc location.Location, v token.Value) {
	l.tokens = append(l.tokens, token.Token{Loc: loc, Value: v})
}

// closeCurrent emits whatever token the current state has accumulated
// and returns the lexer to StartOfLine. Called whenever whitespace, a
// quote, an operator character, or end of input ends the current run.
func (l *Lexer) closeCurrent() {
	switch l.state {
	case stateIdentifier:
		l.closeIdentifier()
	case stateSymbols:
		l.drainSymbols()
	case stateCharLit:
		l.diags.Push(location.Errorf(l.tokenStart, "missing terminating ' character"))
	case stateStrLit:
		l.diags.Push(location.Errorf(l.tokenStart, "missing terminating \" character"))
	}
	l.state = stateStartOfLine
}

// advanceLoc returns loc moved forward by n columns. Used when a symbol
// match consumes fewer characters than remain in the pending buffer, so
// later emitted tokens still carry accurate locations.
func advanceLoc(loc location.Location, n int) location.Location {
	for i := 0; i < n; i++ {
		loc = loc.AdvanceColumn()
	}
	return loc
}

func (l *Lexer) closeIdentifier() {
	buf := l.identBuf
	l.identBuf = ""
	if buf == "" {
		return
	}
	if isDigit(buf[0]) {
		res := number.Parse(buf, l.tokenStart).IgnoreOverflow(buf, l.tokenStart)
		for _, d := range res.Diagnostics() {
			l.diags.Push(d)
		}
		if res.HasValue() {
			l.push(l.tokenStart, token.NumberValue{Number: res.Value})
		}
		return
	}

	if replacement, deprecated := token.Deprecated(buf); deprecated {
		l.diags.Push(location.Warningf(l.tokenStart,
			"Underscore operators are deprecated since C23. Consider using %s", replacement).WithLength(len(buf)))
	}
	if kw, ok := token.LookupKeyword(buf); ok {
		l.push(l.tokenStart, token.KeywordValue{Keyword: kw})
		return
	}
	l.push(l.tokenStart, token.IdentValue{Name: buf})
}

// drainSymbols empties the pending operator buffer by repeatedly matching
// the longest known prefix (3, then 2, then 1 characters), emitting one
// Symbol token per match. Each pass must strictly shrink the buffer or the
// implementation has a bug in the symbol table — that is unreachable and
// panics rather than looping forever.
func (l *Lexer) drainSymbols() {
	loc := l.tokenStart
	for l.symBuf != "" {
		before := len(l.symBuf)
		matched := false
		for n := 3; n >= 1; n-- {
			if n > len(l.symBuf) {
				continue
			}
			if sym, ok := token.LookupSymbol(l.symBuf[:n]); ok {
				l.push(loc, token.SymbolValue{Symbol: sym})
				loc = advanceLoc(loc, n)
				l.symBuf = l.symBuf[n:]
				matched = true
				break
			}
		}
		if !matched {
			// No known symbol matches even a single character: drop it
			// with a diagnostic rather than looping.
			l.diags.Push(location.Errorf(loc, "unsupported character %q", string(l.symBuf[0])))
			l.symBuf = l.symBuf[1:]
			matched = true
		}
		if len(l.symBuf) >= before {
			panic("unreachable: symbol buffer failed to shrink during drain")
		}
	}
}

// emitSymbolPrefix fires once the pending symbol buffer reaches n
// characters (feedSymbol calls it at n==3, the longest punctuator). It
// greedily matches the longest known symbol at the front of the buffer —
// 3, then 2, then 1 characters — emits it, and leaves the remainder (if
// any) in the buffer for subsequent characters to extend. Like
// drainSymbols, a pass that fails to shrink the buffer is unreachable.
func (l *Lexer) emitSymbolPrefix(n int) {
	before := len(l.symBuf)
	loc := l.tokenStart
	matched := false
	for m := n; m >= 1; m-- {
		if m > len(l.symBuf) {
			continue
		}
		if sym, ok := token.LookupSymbol(l.symBuf[:m]); ok {
			l.push(loc, token.SymbolValue{Symbol: sym})
			l.symBuf = l.symBuf[m:]
			l.tokenStart = advanceLoc(loc, m)
			matched = true
			break
		}
	}
	if !matched {
		l.diags.Push(location.Errorf(loc, "unsupported character %q", string(l.symBuf[0])))
		l.symBuf = l.symBuf[1:]
		l.tokenStart = advanceLoc(loc, 1)
	}
	if len(l.symBuf) >= before {
		panic("unreachable: symbol buffer failed to shrink during drain")
	}
}
