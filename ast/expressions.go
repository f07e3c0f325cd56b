package ast

import (
	"bytes"
	"strings"

	"github.com/deepnoodle-ai/letclone/internal/token"
)

// Ident is an expression node that refers to a variable by name.
type Ident struct {
	NamePos token.Position // position of identifier
	Name    string         // identifier name
}

func (x *Ident) exprNode() {}

func (x *Ident) Pos() token.Position { return x.NamePos }
func (x *Ident) End() token.Position { return x.NamePos.Advance(len(x.Name)) }

func (x *Ident) String() string { return x.Name }

// GetAttr is an expression node that describes the access of a named
// attribute on a base expression, as in "person.name".
type GetAttr struct {
	X      Expr           // base expression
	Period token.Position // position of "."
	Attr   *Ident         // attribute name
}

func (x *GetAttr) exprNode() {}

func (x *GetAttr) Pos() token.Position { return x.X.Pos() }
func (x *GetAttr) End() token.Position { return x.Attr.End() }

func (x *GetAttr) String() string {
	var out bytes.Buffer
	out.WriteString(x.X.String())
	out.WriteString(".")
	out.WriteString(x.Attr.Name)
	return out.String()
}

// GetIndex is an expression node that describes positional attribute access
// on a base expression, as in "pair.0". The clone expander never accepts
// this shape, but it must be represented so that it can be rejected with a
// specific error rather than a generic syntax error.
type GetIndex struct {
	X      Expr           // base expression
	Period token.Position // position of "."
	Index  token.Token    // the numeric index token
}

func (x *GetIndex) exprNode() {}

func (x *GetIndex) Pos() token.Position { return x.X.Pos() }
func (x *GetIndex) End() token.Position { return x.Index.EndPosition }

func (x *GetIndex) String() string {
	var out bytes.Buffer
	out.WriteString(x.X.String())
	out.WriteString(".")
	out.WriteString(x.Index.Literal)
	return out.String()
}

// Call is an expression node that describes the invocation of a function.
type Call struct {
	Fun    Expr           // function expression
	Lparen token.Position // position of "("
	Args   []Expr         // function arguments
	Rparen token.Position // position of ")"
}

func (x *Call) exprNode() {}

func (x *Call) Pos() token.Position { return x.Fun.Pos() }
func (x *Call) End() token.Position { return x.Rparen.Advance(1) }

func (x *Call) String() string {
	var out bytes.Buffer
	args := make([]string, 0, len(x.Args))
	for _, a := range x.Args {
		args = append(args, a.String())
	}
	out.WriteString(x.Fun.String())
	out.WriteString("(")
	out.WriteString(strings.Join(args, ", "))
	out.WriteString(")")
	return out.String()
}

// ObjectCall is an expression node that describes the invocation of a method
// on an object, as in "obj.method(x)".
type ObjectCall struct {
	X      Expr           // object expression
	Period token.Position // position of "."
	Call   *Call          // method call; Call.Fun is the method name
}

func (x *ObjectCall) exprNode() {}

func (x *ObjectCall) Pos() token.Position { return x.X.Pos() }
func (x *ObjectCall) End() token.Position { return x.Call.End() }

func (x *ObjectCall) String() string {
	var out bytes.Buffer
	out.WriteString(x.X.String())
	out.WriteString(".")
	out.WriteString(x.Call.String())
	return out.String()
}

// Index is an expression node that describes indexing on an object,
// as in "items[0]".
type Index struct {
	X      Expr           // object expression
	Lbrack token.Position // position of "["
	Index  Expr           // index expression
	Rbrack token.Position // position of "]"
}

func (x *Index) exprNode() {}

func (x *Index) Pos() token.Position { return x.X.Pos() }
func (x *Index) End() token.Position { return x.Rbrack.Advance(1) }

func (x *Index) String() string {
	var out bytes.Buffer
	out.WriteString(x.X.String())
	out.WriteString("[")
	out.WriteString(x.Index.String())
	out.WriteString("]")
	return out.String()
}

// Prefix is an operator expression where the operator precedes the operand.
// Examples include "!ok" and "-x".
type Prefix struct {
	OpPos token.Position // position of operator
	Op    string         // operator: "!", "-"
	X     Expr           // operand
}

func (x *Prefix) exprNode() {}

func (x *Prefix) Pos() token.Position { return x.OpPos }
func (x *Prefix) End() token.Position { return x.X.End() }

func (x *Prefix) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(x.Op)
	out.WriteString(x.X.String())
	out.WriteString(")")
	return out.String()
}

// Infix is an operator expression where the operator is between the operands.
// Examples include "x + y" and "5 - 1".
type Infix struct {
	X     Expr           // left operand
	OpPos token.Position // position of operator
	Op    string         // operator: "+", "-", "*", "/", etc.
	Y     Expr           // right operand
}

func (x *Infix) exprNode() {}

func (x *Infix) Pos() token.Position { return x.X.Pos() }
func (x *Infix) End() token.Position { return x.Y.End() }

func (x *Infix) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(x.X.String())
	out.WriteString(" " + x.Op + " ")
	out.WriteString(x.Y.String())
	out.WriteString(")")
	return out.String()
}
