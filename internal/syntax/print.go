package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indented s-expression rendering of n to w: each
// node is "Tag" followed by its scalar fields and one indented line
// per child. Used for -emit-ast text output and golden-file tests
// that don't need the full JSON shape.
func Fprint(w io.Writer, n Node) {
	fprint(w, n, 0)
}

// Sprint is Fprint rendered to a string.
func Sprint(n Node) string {
	var b strings.Builder
	Fprint(&b, n)
	return b.String()
}

func fprint(w io.Writer, n Node, depth int) {
	indent := strings.Repeat("  ", depth)
	if n == nil {
		fmt.Fprintf(w, "%s<nil>\n", indent)
		return
	}
	fmt.Fprintf(w, "%s%s%s\n", indent, n.Tag(), scalarSuffix(n))
	for _, c := range n.Children() {
		fprint(w, c, depth+1)
	}
}

// scalarSuffix renders a node's non-Node fields inline after its tag,
// e.g. "ExprVariable(x)" or "DefProcedure(P, [x, y])".
func scalarSuffix(n Node) string {
	switch x := n.(type) {
	case *DefProcedure:
		return fmt.Sprintf("(%s, %s)", x.Name, formatList(x.Params))
	case *DefFunction:
		return fmt.Sprintf("(%s, %s)", x.Name, formatList(x.Params))
	case *StmtForeach:
		return fmt.Sprintf("(%s)", x.Index)
	case *StmtAssignVariable:
		return fmt.Sprintf("(%s)", x.Name)
	case *StmtAssignTuple:
		return fmt.Sprintf("(%s)", formatList(x.Names))
	case *StmtProcedureCall:
		return fmt.Sprintf("(%s)", x.Name)
	case *PatternConstructor:
		return fmt.Sprintf("(%s, %s)", x.Ctor, formatList(x.Params))
	case *PatternTuple:
		return fmt.Sprintf("(%s)", formatList(x.Params))
	case *ExprVariable:
		return fmt.Sprintf("(%s)", x.Name)
	case *ExprConstantNumber:
		return fmt.Sprintf("(%s)", x.Tok)
	case *ExprConstantString:
		return fmt.Sprintf("(%q)", x.Tok)
	case *ExprConstructor:
		return fmt.Sprintf("(%s)", x.Ctor)
	case *ExprConstructorUpdate:
		return fmt.Sprintf("(%s)", x.Ctor)
	case *ExprFunctionCall:
		return fmt.Sprintf("(%s)", x.Name)
	case *FieldValue:
		return fmt.Sprintf("(%s)", x.Name)
	default:
		return ""
	}
}

func formatList(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}
