package ast_test

import (
	"strings"
	"testing"

	"github.com/cfrontend/cfrontend/ast"
	"github.com/cfrontend/cfrontend/location"
)

func TestDumpRendersBinaryWithOperands(t *testing.T) {
	loc := location.New("a.c")
	n := &ast.Binary{
		Op:  "+",
		Lhs: &ast.Leaf{Loc: loc, Lit: ast.Literal{Kind: ast.LitIdent, Ident: "a"}},
		Rhs: &ast.Leaf{Loc: loc, Lit: ast.Literal{Kind: ast.LitIdent, Ident: "b"}},
	}
	out := ast.Dump(n)
	if !strings.Contains(out, "Binary +") {
		t.Fatalf("expected Binary + in output, got %q", out)
	}
	if !strings.Contains(out, "Leaf a") || !strings.Contains(out, "Leaf b") {
		t.Fatalf("expected both operands dumped, got %q", out)
	}
}

func TestDumpRendersControlFlowBranches(t *testing.T) {
	loc := location.New("a.c")
	cf := &ast.ControlFlow{Node: ast.CtrlFlowNode{
		Loc:  loc,
		Kind: ast.CtrlIf,
		Cond: &ast.Leaf{Loc: loc, Lit: ast.Literal{Kind: ast.LitIdent, Ident: "x"}},
		Then: &ast.Block{Loc: loc},
	}}
	out := ast.Dump(cf)
	if !strings.Contains(out, "CtrlFlow:If") {
		t.Fatalf("expected CtrlFlow:If in output, got %q", out)
	}
	if !strings.Contains(out, "cond:") || !strings.Contains(out, "then:") {
		t.Fatalf("expected cond/then sections, got %q", out)
	}
}

func TestDumpHandlesEmptyHole(t *testing.T) {
	out := ast.Dump(&ast.Empty{Loc: location.New("a.c")})
	if strings.TrimSpace(out) != "Empty" {
		t.Fatalf("got %q, want Empty", out)
	}
}
