package ast_test

import (
	"testing"

	"github.com/cfrontend/cfrontend/ast"
	"github.com/cfrontend/cfrontend/location"
)

func TestEmptyIsAHole(t *testing.T) {
	n := &ast.Binary{Op: "-", Lhs: &ast.Leaf{}, Rhs: &ast.Empty{Loc: location.New("a.c")}}
	if !ast.IsEmpty(n.Rhs) {
		t.Fatal("expected Rhs to be recognized as an unfilled hole")
	}
	if ast.IsEmpty(n.Lhs) {
		t.Fatal("Lhs is a Leaf, not a hole")
	}
}

func TestBinaryPosIsLeftOperandPos(t *testing.T) {
	loc := location.Location{File: "a.c", Line: 1, Column: 1}
	lhs := &ast.Leaf{Loc: loc}
	b := &ast.Binary{Lhs: lhs, Rhs: &ast.Empty{}}
	if b.Pos() != loc {
		t.Fatalf("got %v, want %v", b.Pos(), loc)
	}
}

func TestControlFlowWrapsNode(t *testing.T) {
	loc := location.New("a.c")
	cf := &ast.ControlFlow{Node: ast.CtrlFlowNode{Loc: loc, Kind: ast.CtrlIf}}
	if cf.Pos() != loc {
		t.Fatalf("got %v, want %v", cf.Pos(), loc)
	}
	if cf.Node.Kind != ast.CtrlIf {
		t.Fatalf("got kind %v, want CtrlIf", cf.Node.Kind)
	}
}
