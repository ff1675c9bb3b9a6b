package parser

import (
	"github.com/cfrontend/cfrontend/ast"
	"github.com/cfrontend/cfrontend/location"
	"github.com/cfrontend/cfrontend/token"
)

// Dispatch classifies kw the way spec §4.7 requires: a total function of
// keyword and case context. Every keyword but `default` has a fixed
// family; `default` is FamilyControlFlow only while inSwitch, otherwise
// it is the generic-selection attribute keyword (default: in _Generic).
func Dispatch(kw token.Keyword, inSwitch bool) token.Family {
	if kw == token.KwDefault && inSwitch {
		return token.FamilyControlFlow
	}
	return kw.Family()
}

// tryParseKeywordPrimary handles the keyword families that can start a
// primary expression: literal keywords become a Leaf, function-like
// keywords become a FunctionCall, and attribute keywords become an
// identifier Leaf carrying the keyword's text.
func (p *Parser) tryParseKeywordPrimary(kw token.Keyword) (ast.Node, bool) {
	loc := p.loc()
	switch Dispatch(kw, p.switchDepth > 0) {
	case token.FamilyLiteral:
		p.advance()
		switch kw {
		case token.KwTrue:
			return &ast.Leaf{Loc: loc, Lit: ast.Literal{Kind: ast.LitBool, Bool: true}}, true
		case token.KwFalse:
			return &ast.Leaf{Loc: loc, Lit: ast.Literal{Kind: ast.LitBool, Bool: false}}, true
		case token.KwNullptr:
			return &ast.Leaf{Loc: loc, Lit: ast.Literal{Kind: ast.LitNullptr}}, true
		}
		return &ast.Empty{Loc: loc}, true
	case token.FamilyFunctionLike:
		name := kw.String()
		p.advance()
		if sym, ok := p.currentSymbol(); ok && sym == token.SymLParen {
			return p.parseCallArgs(loc, name), true
		}
		p.diags.Push(location.Errorf(p.loc(), "%s expects a parenthesised argument", name))
		return &ast.FunctionCall{Loc: loc, Name: name}, true
	case token.FamilyAttribute:
		p.advance()
		return &ast.Leaf{Loc: loc, Lit: ast.Literal{Kind: ast.LitIdent, Ident: kw.String()}}, true
	}
	return nil, false
}

// tryParseControlFlow handles the keyword families that drive their own
// statement-level parse shape. Attribute keywords (type/qualifier
// modifiers) are not consumed here: spec.md's non-goal of "being a
// validating compiler" means declarations are not a first-class AST
// shape in this parser, so a bare attribute keyword in statement
// position is left for parseStatement to fold into an expression
// (commonly an identifier leaf read as a type name inside a cast or
// function-like keyword argument).
func (p *Parser) tryParseControlFlow(kw token.Keyword) (ast.Node, bool) {
	if Dispatch(kw, p.switchDepth > 0) != token.FamilyControlFlow {
		return nil, false
	}
	loc := p.loc()
	p.advance()

	switch kw {
	case token.KwIf:
		cond := p.parseParenExpr()
		then := p.parseStatement()
		node := ast.CtrlFlowNode{Loc: loc, Kind: ast.CtrlIf, Cond: cond, Then: then}
		if k, ok := p.currentKeyword(); ok && k == token.KwElse {
			p.advance()
			node.Else = p.parseStatement()
		}
		return &ast.ControlFlow{Node: node}, true

	case token.KwWhile:
		cond := p.parseParenExpr()
		body := p.parseStatement()
		return &ast.ControlFlow{Node: ast.CtrlFlowNode{Loc: loc, Kind: ast.CtrlWhile, Cond: cond, Then: body}}, true

	case token.KwDo:
		body := p.parseStatement()
		if k, ok := p.currentKeyword(); !ok || k != token.KwWhile {
			p.diags.Push(location.Errorf(p.loc(), "expected 'while' after do-body"))
			return &ast.ControlFlow{Node: ast.CtrlFlowNode{Loc: loc, Kind: ast.CtrlDoWhile, Then: body}}, true
		}
		p.advance()
		cond := p.parseParenExpr()
		p.consumeOptionalSemicolon()
		return &ast.ControlFlow{Node: ast.CtrlFlowNode{Loc: loc, Kind: ast.CtrlDoWhile, Cond: cond, Then: body}}, true

	case token.KwFor:
		p.expectSymbol(token.SymLParen)
		init := p.parseForClause(token.SymSemicolon)
		p.expectSymbol(token.SymSemicolon)
		cond := p.parseForClause(token.SymSemicolon)
		p.expectSymbol(token.SymSemicolon)
		post := p.parseForClause(token.SymRParen)
		p.expectSymbol(token.SymRParen)
		body := p.parseStatement()
		return &ast.ControlFlow{Node: ast.CtrlFlowNode{
			Loc: loc, Kind: ast.CtrlFor, Init: init, Cond: cond, Post: post, Then: body,
		}}, true

	case token.KwSwitch:
		cond := p.parseParenExpr()
		p.switchDepth++
		body := p.parseStatement()
		p.switchDepth--
		return &ast.ControlFlow{Node: ast.CtrlFlowNode{
			Loc: loc, Kind: ast.CtrlSwitch, Cond: cond, Then: body, Cases: switchCases(body),
		}}, true

	case token.KwCase:
		value := p.parseExpression(CommaPrecedence - 1)
		p.expectSymbol(token.SymColon)
		return &ast.ControlFlow{Node: ast.CtrlFlowNode{Loc: loc, Kind: ast.CtrlCase, Value: value}}, true

	case token.KwDefault:
		p.expectSymbol(token.SymColon)
		return &ast.ControlFlow{Node: ast.CtrlFlowNode{Loc: loc, Kind: ast.CtrlDefault}}, true

	case token.KwBreak:
		p.consumeOptionalSemicolon()
		return &ast.ControlFlow{Node: ast.CtrlFlowNode{Loc: loc, Kind: ast.CtrlBreak}}, true

	case token.KwContinue:
		p.consumeOptionalSemicolon()
		return &ast.ControlFlow{Node: ast.CtrlFlowNode{Loc: loc, Kind: ast.CtrlContinue}}, true

	case token.KwReturn:
		node := ast.CtrlFlowNode{Loc: loc, Kind: ast.CtrlReturn}
		if sym, ok := p.currentSymbol(); !ok || sym != token.SymSemicolon {
			node.Value = p.parseExpression(CommaPrecedence - 1)
		}
		p.consumeOptionalSemicolon()
		return &ast.ControlFlow{Node: node}, true

	case token.KwGoto:
		label := ""
		if iv, ok := p.current().Value.(token.IdentValue); ok {
			label = iv.Name
			p.advance()
		} else {
			p.diags.Push(location.Errorf(p.loc(), "expected a label after goto"))
		}
		p.consumeOptionalSemicolon()
		return &ast.ControlFlow{Node: ast.CtrlFlowNode{Loc: loc, Kind: ast.CtrlGoto, Label: label}}, true

	case token.KwEnum, token.KwStruct, token.KwUnion:
		return p.parseAggregate(loc, kw), true

	case token.KwTypedef:
		for !p.atEOF() {
			if sym, ok := p.currentSymbol(); ok && sym == token.SymSemicolon {
				p.advance()
				break
			}
			p.advance()
		}
		return &ast.ControlFlow{Node: ast.CtrlFlowNode{Loc: loc, Kind: ast.CtrlTypedef}}, true
	}

	return nil, false
}

// switchCases collects a switch body's top-level case/default labels, so
// callers can enumerate them without re-walking the statement list for
// fallthrough semantics.
func switchCases(body ast.Node) []ast.Node {
	blk, ok := body.(*ast.Block)
	if !ok {
		return nil
	}
	var cases []ast.Node
	for _, stmt := range blk.Stmts {
		cf, ok := stmt.(*ast.ControlFlow)
		if !ok {
			continue
		}
		if cf.Node.Kind == ast.CtrlCase || cf.Node.Kind == ast.CtrlDefault {
			cases = append(cases, cf)
		}
	}
	return cases
}

func (p *Parser) parseParenExpr() ast.Node {
	p.expectSymbol(token.SymLParen)
	e := p.parseExpression(CommaPrecedence)
	p.expectSymbol(token.SymRParen)
	return e
}

// parseForClause parses one of for(init; cond; post)'s three (possibly
// empty) clauses, stopping at stop without consuming it.
func (p *Parser) parseForClause(stop token.Symbol) ast.Node {
	if sym, ok := p.currentSymbol(); ok && sym == stop {
		return &ast.Empty{Loc: p.loc()}
	}
	return p.parseExpression(CommaPrecedence - 1)
}

func (p *Parser) consumeOptionalSemicolon() {
	if sym, ok := p.currentSymbol(); ok && sym == token.SymSemicolon {
		p.advance()
	}
}

// parseAggregate handles enum/struct/union: an optional tag name, an
// optional brace-enclosed member list (identifiers only — full declarator
// grammar is out of scope per spec.md's non-goals), and an optional
// trailing semicolon.
func (p *Parser) parseAggregate(loc location.Location, kw token.Keyword) ast.Node {
	kind := ast.CtrlStruct
	switch kw {
	case token.KwEnum:
		kind = ast.CtrlEnum
	case token.KwUnion:
		kind = ast.CtrlUnion
	}
	node := ast.CtrlFlowNode{Loc: loc, Kind: kind}
	if iv, ok := p.current().Value.(token.IdentValue); ok {
		node.Name = iv.Name
		p.advance()
	}
	if sym, ok := p.currentSymbol(); ok && sym == token.SymLBrace {
		p.advance()
		for {
			if sym, ok := p.currentSymbol(); ok && sym == token.SymRBrace {
				p.advance()
				break
			}
			if p.atEOF() {
				p.diags.Push(location.Errorf(p.loc(), "unterminated %s body, expected '}'", kw.String()))
				break
			}
			if iv, ok := p.current().Value.(token.IdentValue); ok {
				node.Members = append(node.Members, &ast.Leaf{Loc: p.loc(), Lit: ast.Literal{Kind: ast.LitIdent, Ident: iv.Name}})
				p.advance()
			} else {
				p.advance()
			}
			if sym, ok := p.currentSymbol(); ok && sym == token.SymComma {
				p.advance()
			}
		}
	}
	p.consumeOptionalSemicolon()
	return &ast.ControlFlow{Node: node}
}
