package ast

import "github.com/cfrontend/cfrontend/location"

// CtrlFlowKind distinguishes the keyword-specific state machines spec §4.7
// describes: each control-flow keyword drives its own small parse shape.
type CtrlFlowKind int

const (
	CtrlIf CtrlFlowKind = iota
	CtrlWhile
	CtrlDoWhile
	CtrlFor
	CtrlSwitch
	CtrlCase
	CtrlDefault
	CtrlBreak
	CtrlContinue
	CtrlReturn
	CtrlGoto
	CtrlEnum
	CtrlStruct
	CtrlUnion
	CtrlTypedef
)

// CtrlFlowNode carries whatever fields its Kind needs; unused fields stay
// zero. This mirrors how the teacher's Instruction/Directive structs carry
// a superset of fields used selectively by mnemonic (parser/parser.go).
type CtrlFlowNode struct {
	Loc  location.Location
	Kind CtrlFlowKind

	// if / while / do-while / switch
	Cond Node
	Then Node
	Else Node // if's optional else branch; nil (not *Empty) when absent

	// for
	Init Node
	Post Node

	// switch: its top-level case/default labels
	Cases []Node

	// case / break / continue / goto / return
	Label string
	Value Node // case's label expression or return's optional value; goto's target via Label instead

	// enum / struct / union / typedef
	Name    string
	Members []Node
}

func (c *CtrlFlowNode) Pos() location.Location { return c.Loc }

// ControlFlow wraps a CtrlFlowNode as an ast.Node.
type ControlFlow struct {
	Node CtrlFlowNode
}

func (c *ControlFlow) Pos() location.Location { return c.Node.Loc }
func (*ControlFlow) astNode()                 {}
