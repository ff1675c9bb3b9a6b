package lexer

import (
	"github.com/cfrontend/cfrontend/location"
	"github.com/cfrontend/cfrontend/token"
)

// openOrCloseChar begins a character literal. It is only reached from
// step()'s priority-4 dispatch, which means the lexer is not already
// inside one (stepCharLit owns the closing quote).
func (l *Lexer) openOrCloseChar(startLoc location.Location) {
	l.closeCurrent()
	l.state = stateCharLit
	l.haveChar = false
	l.charVal = 0
	l.tokenStart = startLoc
	l.advance()
}

func (l *Lexer) openOrCloseStr(startLoc location.Location) {
	l.closeCurrent()
	l.state = stateStrLit
	l.strBuf.Reset()
	l.tokenStart = startLoc
	l.advance()
}

func (l *Lexer) stepCharLit(c byte, startLoc location.Location) {
	switch c {
	case '\\':
		l.esc = escSingle
		l.advance()
	case '\'':
		if !l.haveChar {
			l.diags.Push(location.Errorf(l.tokenStart, "empty character literal"))
		}
		l.push(l.tokenStart, token.CharValue{C: l.charVal})
		l.state = stateStartOfLine
		l.advance()
	case '\n':
		l.diags.Push(location.Errorf(l.tokenStart, "missing terminating ' character"))
		l.state = stateStartOfLine
	default:
		l.appendLiteralRune(rune(c))
		l.advance()
	}
}

func (l *Lexer) stepStrLit(c byte, startLoc location.Location) {
	switch c {
	case '\\':
		l.esc = escSingle
		l.advance()
	case '"':
		l.pushStringLiteral(l.tokenStart, l.strBuf.String())
		l.state = stateStartOfLine
		l.advance()
	case '\n':
		l.diags.Push(location.Errorf(l.tokenStart, "missing terminating \" character"))
		l.state = stateStartOfLine
	default:
		l.appendLiteralRune(rune(c))
		l.advance()
	}
}

// appendLiteralRune records a resolved character (whether a plain byte or
// the product of an escape sequence) into whichever literal is open.
func (l *Lexer) appendLiteralRune(r rune) {
	switch l.state {
	case stateCharLit:
		if l.haveChar {
			l.diags.Push(location.Warningf(l.tokenStart, "multi-character character constant"))
			return
		}
		l.charVal = r
		l.haveChar = true
	case stateStrLit:
		l.strBuf.WriteRune(r)
	}
}

// pushStringLiteral implements adjacent string-literal concatenation:
// "\x41\x42" "C" lexes to one Str token, not two.
func (l *Lexer) pushStringLiteral(loc location.Location, s string) {
	if n := len(l.tokens); n > 0 {
		if sv, ok := l.tokens[n-1].Value.(token.StrValue); ok {
			l.tokens[n-1].Value = token.StrValue{S: sv.S + s}
			return
		}
	}
	l.push(loc, token.StrValue{S: s})
}

func (l *Lexer) stepComment(c byte) {
	switch l.commentSub {
	case commentLine:
		if c == '\n' {
			l.state = stateStartOfLine
		}
		l.advance()
	case commentBody:
		if c == '*' {
			l.commentSub = commentStar
		}
		l.advance()
	case commentStar:
		switch c {
		case '/':
			l.state = stateStartOfLine
			l.advance()
		case '*':
			l.advance()
		default:
			l.commentSub = commentBody
			l.advance()
		}
	}
}

// stepEscape drives the escape.Handler across the \-escSingle-escSequence
// states until it closes, appending the resolved rune into whichever
// literal (char or string) is currently open.
func (l *Lexer) stepEscape(c byte) {
	switch l.esc {
	case escSingle:
		r, done, diag := l.escHandler.Start(rune(c), l.loc)
		if diag != nil {
			l.diags.Push(*diag)
		}
		if done {
			l.esc = escFalse
			l.appendLiteralRune(r)
		} else {
			l.esc = escSequence
		}
		l.advance()
	case escSequence:
		closed, fallthroughChar, hasFallthrough := l.escHandler.Feed(rune(c))
		if !closed {
			l.advance()
			return
		}
		r, diag := l.escHandler.Close()
		if diag != nil {
			l.diags.Push(*diag)
		}
		l.esc = escFalse
		l.appendLiteralRune(r)
		if hasFallthrough {
			_ = fallthroughChar
			return // c was not consumed by the escape; step() reprocesses it.
		}
		l.advance()
	}
}
