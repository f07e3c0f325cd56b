package ast

import (
	"testing"

	"github.com/deepnoodle-ai/letclone/internal/token"
)

func TestString(t *testing.T) {
	expr := &GetAttr{
		X: &Ident{
			NamePos: token.Position{Line: 0, Column: 0},
			Name:    "person",
		},
		Period: token.Position{Line: 0, Column: 6},
		Attr: &Ident{
			NamePos: token.Position{Line: 0, Column: 7},
			Name:    "name",
		},
	}
	if expr.String() != "person.name" {
		t.Errorf("expr.String() wrong. got=%q", expr.String())
	}
}

func TestObjectCallString(t *testing.T) {
	expr := &ObjectCall{
		X: &Ident{Name: "obj"},
		Call: &Call{
			Fun:  &Ident{Name: "method"},
			Args: []Expr{&Ident{Name: "x"}, &Int{Literal: "1", Value: 1}},
		},
	}
	if expr.String() != "obj.method(x, 1)" {
		t.Errorf("expr.String() wrong. got=%q", expr.String())
	}
}

func TestGetIndexString(t *testing.T) {
	expr := &GetIndex{
		X:     &Ident{Name: "pair"},
		Index: token.Token{Type: token.INT, Literal: "0"},
	}
	if expr.String() != "pair.0" {
		t.Errorf("expr.String() wrong. got=%q", expr.String())
	}
}

func TestPositions(t *testing.T) {
	ident := &Ident{
		NamePos: token.Position{Line: 0, Column: 4, Char: 4},
		Name:    "value",
	}
	if ident.Pos().Char != 4 {
		t.Errorf("ident.Pos().Char = %d, want 4", ident.Pos().Char)
	}
	if ident.End().Char != 9 {
		t.Errorf("ident.End().Char = %d, want 9", ident.End().Char)
	}
}

func TestBadExpr(t *testing.T) {
	from := token.Position{Line: 0, Column: 5, File: "test.txt"}
	to := token.Position{Line: 0, Column: 15, File: "test.txt"}

	bad := &BadExpr{From: from, To: to}

	if bad.Pos() != from {
		t.Errorf("BadExpr.Pos() = %v, want %v", bad.Pos(), from)
	}
	if bad.End() != to {
		t.Errorf("BadExpr.End() = %v, want %v", bad.End(), to)
	}
	if bad.String() != "<bad expression>" {
		t.Errorf("BadExpr.String() = %q", bad.String())
	}

	// Test that BadExpr implements Expr interface
	var _ Expr = bad
}
