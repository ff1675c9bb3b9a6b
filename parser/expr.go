package parser

import (
	"github.com/cfrontend/cfrontend/ast"
	"github.com/cfrontend/cfrontend/location"
	"github.com/cfrontend/cfrontend/token"
)

// parseExpression climbs operators no looser than maxLevel. The top-level
// caller passes CommaPrecedence (15); a function argument or list item
// passes a tighter ceiling to exclude the comma operator from swallowing
// the rest of the list, and a ?: else-branch passes TernaryPrecedence.
func (p *Parser) parseExpression(maxLevel int) ast.Node {
	left := p.parseUnary()

	for {
		if sym, ok := p.currentSymbol(); ok && sym == token.SymQuestion && TernaryPrecedence <= maxLevel {
			left = p.parseTernary(left)
			continue
		}

		sym, ok := p.currentSymbol()
		if !ok {
			break
		}
		op, ok := binaryOps[sym]
		if !ok || op.Level > maxLevel {
			break
		}
		p.advance()

		nextMax := op.Level - 1
		if op.Assoc == RightToLeft {
			nextMax = op.Level
		}
		right := p.parseExpression(nextMax)
		left = &ast.Binary{Op: op.Lexeme, Lhs: left, Rhs: right}
	}

	return left
}

// parseTernary handles `cond ? then : else`, right-associative at its own
// level so that a ? b : c ? d : e groups as a ? b : (c ? d : e).
func (p *Parser) parseTernary(cond ast.Node) ast.Node {
	loc := p.loc()
	p.advance() // consume '?'
	then := p.parseExpression(CommaPrecedence)
	if !p.expectSymbol(token.SymColon) {
		return &ast.Ternary{Loc: loc, Cond: cond, Then: then, Else: &ast.Empty{Loc: p.loc()}}
	}
	els := p.parseExpression(TernaryPrecedence)
	return &ast.Ternary{Loc: loc, Cond: cond, Then: then, Else: els}
}

// parseUnary resolves the prefix-unary/primary-expression distinction by
// grammar position: every symbol reaching here is being asked to fill an
// operand hole, so `*`, `&`, `+`, `-` are unconditionally unary here — the
// binary reading of the same lexemes is only ever considered by
// parseExpression's loop, once a left operand already exists. The one
// lexeme pair that truly needs a runtime choice, `++`/`--`, reads as
// prefix here and as postfix in parsePostfix below.
func (p *Parser) parseUnary() ast.Node {
	if sym, ok := p.currentSymbol(); ok {
		if lexeme, isUnary := prefixUnary[sym]; isUnary {
			loc := p.loc()
			p.advance()
			arg := p.parseUnary()
			return p.parsePostfix(&ast.Unary{Loc: loc, Op: lexeme, Fixity: ast.Prefix, Arg: arg})
		}
	}
	return p.parsePostfix(p.parsePrimary())
}

// parsePostfix attaches postfix ++/-- (call syntax after an identifier is
// handled earlier, in parsePrimary). The same symbols (++, --) that parseUnary
// treats as prefix are, found here after an operand already exists,
// postfix instead.
func (p *Parser) parsePostfix(n ast.Node) ast.Node {
	for {
		sym, ok := p.currentSymbol()
		if !ok {
			return n
		}
		if lexeme, isPostfix := postfixUnary[sym]; isPostfix {
			loc := p.loc()
			p.advance()
			n = &ast.Unary{Loc: loc, Op: lexeme, Fixity: ast.Postfix, Arg: n}
			continue
		}
		return n
	}
}

// parsePrimary parses a leaf, a parenthesised sub-expression, a brace
// list initialiser, or a function call (including the function-like
// keywords, which share FunctionCall's shape).
func (p *Parser) parsePrimary() ast.Node {
	loc := p.loc()

	if kw, ok := p.currentKeyword(); ok {
		if n, handled := p.tryParseKeywordPrimary(kw); handled {
			return n
		}
	}

	if sym, ok := p.currentSymbol(); ok {
		switch sym {
		case token.SymLParen:
			p.advance()
			inner := p.parseExpression(CommaPrecedence)
			p.expectSymbol(token.SymRParen)
			return &ast.ParensBlock{Loc: loc, Expr: inner}
		case token.SymLBrace:
			return p.parseListInitialiser()
		}
		p.diags.Push(location.Errorf(loc, "unexpected token %q", sym.String()))
		p.advance()
		return &ast.Empty{Loc: loc}
	}

	if p.atEOF() {
		p.diags.Push(location.Errorf(loc, "unexpected end of input, expected an expression"))
		return &ast.Empty{Loc: loc}
	}

	switch v := p.current().Value.(type) {
	case token.NumberValue:
		p.advance()
		return &ast.Leaf{Loc: loc, Lit: ast.Literal{Kind: ast.LitNumber, Number: v.Number}}
	case token.StrValue:
		p.advance()
		return &ast.Leaf{Loc: loc, Lit: ast.Literal{Kind: ast.LitString, String: v.S}}
	case token.CharValue:
		p.advance()
		return &ast.Leaf{Loc: loc, Lit: ast.Literal{Kind: ast.LitChar, Char: v.C}}
	case token.IdentValue:
		p.advance()
		if v.Name == "NULL" {
			return &ast.Leaf{Loc: loc, Lit: ast.Literal{Kind: ast.LitNullptr}}
		}
		if sym, ok := p.currentSymbol(); ok && sym == token.SymLParen {
			return p.parseCallArgs(loc, v.Name)
		}
		return &ast.Leaf{Loc: loc, Lit: ast.Literal{Kind: ast.LitIdent, Ident: v.Name}}
	}

	p.diags.Push(location.Errorf(loc, "unexpected token"))
	p.advance()
	return &ast.Empty{Loc: loc}
}

// parseCallArgs parses `(arg, arg, ...)` following a name already
// consumed — shared by ordinary calls and the function-like keywords.
func (p *Parser) parseCallArgs(loc location.Location, name string) ast.Node {
	p.advance() // consume '('
	call := &ast.FunctionCall{Loc: loc, Name: name}
	if sym, ok := p.currentSymbol(); ok && sym == token.SymRParen {
		p.advance()
		return call
	}
	for {
		call.Args = append(call.Args, p.parseExpression(CommaPrecedence - 1))
		if sym, ok := p.currentSymbol(); ok && sym == token.SymComma {
			p.advance()
			continue
		}
		break
	}
	p.expectSymbol(token.SymRParen)
	return call
}

// parseListInitialiser parses `{ a, b, c }`. A bare comma with no
// preceding item pushes an Empty hole, matching spec §4.6's "comma inside
// a list initialiser" rule (`{1, , 3}` has a hole in the middle).
func (p *Parser) parseListInitialiser() ast.Node {
	loc := p.loc()
	p.advance() // consume '{'
	list := &ast.ListInitialiser{Loc: loc}
	if sym, ok := p.currentSymbol(); ok && sym == token.SymRBrace {
		p.advance()
		return list
	}
	for {
		if sym, ok := p.currentSymbol(); ok && (sym == token.SymComma || sym == token.SymRBrace) {
			list.Items = append(list.Items, &ast.Empty{Loc: p.loc()})
		} else {
			list.Items = append(list.Items, p.parseExpression(CommaPrecedence - 1))
		}
		if sym, ok := p.currentSymbol(); ok && sym == token.SymComma {
			p.advance()
			continue
		}
		break
	}
	p.expectSymbol(token.SymRBrace)
	return list
}
