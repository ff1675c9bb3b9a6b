package ast

import (
	"fmt"
	"strings"
)

// Dump renders n as an indented tree, one node per line, the way a
// debugger's "print tree" command would — used by the API's JSON
// responses and the TUI inspector's AST pane, both of which want a
// string rather than a typed walk.
func Dump(n Node) string {
	var sb strings.Builder
	dump(&sb, n, 0)
	return sb.String()
}

func dump(sb *strings.Builder, n Node, depth int) {
	indent := strings.Repeat("  ", depth)
	if n == nil {
		fmt.Fprintf(sb, "%s<nil>\n", indent)
		return
	}

	switch v := n.(type) {
	case *Empty:
		fmt.Fprintf(sb, "%sEmpty\n", indent)
	case *Leaf:
		fmt.Fprintf(sb, "%sLeaf %s\n", indent, dumpLiteral(v.Lit))
	case *Unary:
		fixity := "prefix"
		if v.Fixity == Postfix {
			fixity = "postfix"
		}
		fmt.Fprintf(sb, "%sUnary %s (%s)\n", indent, v.Op, fixity)
		dump(sb, v.Arg, depth+1)
	case *Binary:
		fmt.Fprintf(sb, "%sBinary %s\n", indent, v.Op)
		dump(sb, v.Lhs, depth+1)
		dump(sb, v.Rhs, depth+1)
	case *Ternary:
		fmt.Fprintf(sb, "%sTernary\n", indent)
		dump(sb, v.Cond, depth+1)
		dump(sb, v.Then, depth+1)
		dump(sb, v.Else, depth+1)
	case *FunctionCall:
		fmt.Fprintf(sb, "%sFunctionCall %s\n", indent, v.Name)
		for _, arg := range v.Args {
			dump(sb, arg, depth+1)
		}
	case *ListInitialiser:
		fmt.Fprintf(sb, "%sListInitialiser\n", indent)
		for _, item := range v.Items {
			dump(sb, item, depth+1)
		}
	case *Block:
		fmt.Fprintf(sb, "%sBlock\n", indent)
		for _, stmt := range v.Stmts {
			dump(sb, stmt, depth+1)
		}
	case *ParensBlock:
		fmt.Fprintf(sb, "%sParensBlock\n", indent)
		dump(sb, v.Expr, depth+1)
	case *ControlFlow:
		dumpCtrlFlow(sb, v.Node, depth)
	default:
		fmt.Fprintf(sb, "%s<unknown node>\n", indent)
	}
}

func dumpLiteral(lit Literal) string {
	switch lit.Kind {
	case LitNumber:
		return lit.Number.String()
	case LitString:
		return fmt.Sprintf("%q", lit.String)
	case LitChar:
		return fmt.Sprintf("%q", lit.Char)
	case LitIdent:
		return lit.Ident
	case LitBool:
		return fmt.Sprintf("%t", lit.Bool)
	case LitNullptr:
		return "nullptr"
	default:
		return "?"
	}
}

func ctrlFlowKindName(k CtrlFlowKind) string {
	switch k {
	case CtrlIf:
		return "If"
	case CtrlWhile:
		return "While"
	case CtrlDoWhile:
		return "DoWhile"
	case CtrlFor:
		return "For"
	case CtrlSwitch:
		return "Switch"
	case CtrlCase:
		return "Case"
	case CtrlDefault:
		return "Default"
	case CtrlBreak:
		return "Break"
	case CtrlContinue:
		return "Continue"
	case CtrlReturn:
		return "Return"
	case CtrlGoto:
		return "Goto"
	case CtrlEnum:
		return "Enum"
	case CtrlStruct:
		return "Struct"
	case CtrlUnion:
		return "Union"
	case CtrlTypedef:
		return "Typedef"
	default:
		return "?"
	}
}

func dumpCtrlFlow(sb *strings.Builder, node CtrlFlowNode, depth int) {
	indent := strings.Repeat("  ", depth)
	name := ctrlFlowKindName(node.Kind)
	if node.Name != "" {
		name = fmt.Sprintf("%s %s", name, node.Name)
	}
	if node.Label != "" {
		name = fmt.Sprintf("%s %s", name, node.Label)
	}
	fmt.Fprintf(sb, "%sCtrlFlow:%s\n", indent, name)

	if node.Cond != nil {
		fmt.Fprintf(sb, "%s  cond:\n", indent)
		dump(sb, node.Cond, depth+2)
	}
	if node.Init != nil {
		fmt.Fprintf(sb, "%s  init:\n", indent)
		dump(sb, node.Init, depth+2)
	}
	if node.Then != nil {
		fmt.Fprintf(sb, "%s  then:\n", indent)
		dump(sb, node.Then, depth+2)
	}
	if node.Post != nil {
		fmt.Fprintf(sb, "%s  post:\n", indent)
		dump(sb, node.Post, depth+2)
	}
	if node.Else != nil {
		fmt.Fprintf(sb, "%s  else:\n", indent)
		dump(sb, node.Else, depth+2)
	}
	if node.Value != nil {
		fmt.Fprintf(sb, "%s  value:\n", indent)
		dump(sb, node.Value, depth+2)
	}
	for _, c := range node.Cases {
		dump(sb, c, depth+1)
	}
	for _, m := range node.Members {
		dump(sb, m, depth+1)
	}
}
