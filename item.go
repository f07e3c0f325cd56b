package letclone

import (
	"fmt"
	"strings"

	"github.com/deepnoodle-ai/letclone/ast"
	"github.com/deepnoodle-ai/letclone/errors"
)

// Item is one clone request: a parsed expression of a supported shape, the
// binding name derived from it, and an optional mutability marker.
type Item struct {
	// Mutable indicates the binding was requested with the "mut" marker.
	Mutable bool

	// Expr is the expression whose value is cloned.
	Expr ast.Expr

	// Name is the binding name derived from the expression's shape.
	Name string
}

// Statement renders the item as one self-contained binding statement,
// terminated by a semicolon and a newline.
func (item *Item) Statement(cloneMethod string) string {
	var out strings.Builder
	out.WriteString("let ")
	if item.Mutable {
		out.WriteString("mut ")
	}
	out.WriteString(item.Name)
	out.WriteString(" = ")
	out.WriteString(item.Expr.String())
	out.WriteString(".")
	out.WriteString(cloneMethod)
	out.WriteString("();\n")
	return out.String()
}

// classify derives the binding name for the expression, or rejects the
// expression if it is not one of the supported shapes. The type switch is
// exhaustive over the shapes the expander accepts; everything else falls
// through to the unsupported-expression error.
func classify(expr ast.Expr, mutable bool, n int, segText, source string) (*Item, error) {
	switch node := expr.(type) {
	case *ast.Ident:
		return &Item{Mutable: mutable, Expr: expr, Name: node.Name}, nil
	case *ast.GetAttr:
		return &Item{Mutable: mutable, Expr: expr, Name: node.Attr.Name}, nil
	case *ast.ObjectCall:
		if method, ok := node.Call.Fun.(*ast.Ident); ok {
			return &Item{Mutable: mutable, Expr: expr, Name: method.Name}, nil
		}
	case *ast.Call:
		if fn, ok := node.Fun.(*ast.Ident); ok {
			return &Item{Mutable: mutable, Expr: expr, Name: fn.Name}, nil
		}
	case *ast.GetIndex:
		return nil, &Error{
			code:    errors.E4003,
			message: fmt.Sprintf("positional field access is not supported (index %s)", node.Index.Literal),
			item:    n,
			segment: segText,
			pos:     node.Index.StartPosition,
			source:  source,
			hint:    "use a named field instead, or bind the value by hand",
		}
	}
	return nil, &Error{
		code:    errors.E4004,
		message: fmt.Sprintf("expression %q is not supported", expr.String()),
		item:    n,
		segment: segText,
		pos:     expr.Pos(),
		source:  source,
		hint:    "supported shapes: a variable (x), a named field access (a.b), or a method call (a.m())",
	}
}
