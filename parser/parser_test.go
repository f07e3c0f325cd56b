package parser

import (
	"context"
	"strings"
	"testing"

	"github.com/deepnoodle-ai/letclone/ast"
	"github.com/deepnoodle-ai/letclone/errors"
	"github.com/stretchr/testify/require"
)

func TestIdent(t *testing.T) {
	expr, err := Parse(context.Background(), "foobar")
	require.Nil(t, err)

	ident, ok := expr.(*ast.Ident)
	require.True(t, ok)
	require.Equal(t, "foobar", ident.Name)
	require.Equal(t, "foobar", ident.String())
	require.NotEqual(t, ident.Pos(), ident.End())
}

func TestGetAttr(t *testing.T) {
	expr, err := Parse(context.Background(), "person.name")
	require.Nil(t, err)

	attr, ok := expr.(*ast.GetAttr)
	require.True(t, ok)
	require.Equal(t, "name", attr.Attr.Name)
	require.Equal(t, "person.name", attr.String())

	base, ok := attr.X.(*ast.Ident)
	require.True(t, ok)
	require.Equal(t, "person", base.Name)
}

func TestGetAttrChain(t *testing.T) {
	expr, err := Parse(context.Background(), "a.b.c")
	require.Nil(t, err)

	attr, ok := expr.(*ast.GetAttr)
	require.True(t, ok)
	require.Equal(t, "c", attr.Attr.Name)
	require.Equal(t, "a.b.c", attr.String())

	inner, ok := attr.X.(*ast.GetAttr)
	require.True(t, ok)
	require.Equal(t, "b", inner.Attr.Name)
}

func TestGetIndex(t *testing.T) {
	expr, err := Parse(context.Background(), "pair.0")
	require.Nil(t, err)

	idx, ok := expr.(*ast.GetIndex)
	require.True(t, ok)
	require.Equal(t, "0", idx.Index.Literal)
	require.Equal(t, "pair.0", idx.String())
}

func TestObjectCall(t *testing.T) {
	expr, err := Parse(context.Background(), "obj.method(x, 1)")
	require.Nil(t, err)

	call, ok := expr.(*ast.ObjectCall)
	require.True(t, ok)
	require.Equal(t, "obj.method(x, 1)", call.String())

	method, ok := call.Call.Fun.(*ast.Ident)
	require.True(t, ok)
	require.Equal(t, "method", method.Name)
	require.Len(t, call.Call.Args, 2)
}

func TestObjectCallNoArgs(t *testing.T) {
	expr, err := Parse(context.Background(), "obj.method()")
	require.Nil(t, err)

	call, ok := expr.(*ast.ObjectCall)
	require.True(t, ok)
	require.Equal(t, "obj.method()", call.String())
	require.Len(t, call.Call.Args, 0)
}

func TestCall(t *testing.T) {
	expr, err := Parse(context.Background(), "build(1, 2)")
	require.Nil(t, err)

	call, ok := expr.(*ast.Call)
	require.True(t, ok)
	require.Equal(t, "build(1, 2)", call.String())

	fn, ok := call.Fun.(*ast.Ident)
	require.True(t, ok)
	require.Equal(t, "build", fn.Name)
}

func TestCallTrailingComma(t *testing.T) {
	expr, err := Parse(context.Background(), "f(a, b,)")
	require.Nil(t, err)

	call, ok := expr.(*ast.Call)
	require.True(t, ok)
	require.Len(t, call.Args, 2)
}

func TestNestedCallArgs(t *testing.T) {
	// Commas inside argument lists belong to the call, not to any
	// surrounding list.
	expr, err := Parse(context.Background(), "a.m(f(x, y), z)")
	require.Nil(t, err)

	call, ok := expr.(*ast.ObjectCall)
	require.True(t, ok)
	require.Len(t, call.Call.Args, 2)
	require.Equal(t, "a.m(f(x, y), z)", call.String())
}

func TestIndex(t *testing.T) {
	expr, err := Parse(context.Background(), "items[0]")
	require.Nil(t, err)

	idx, ok := expr.(*ast.Index)
	require.True(t, ok)
	require.Equal(t, "items[0]", idx.String())
}

func TestPrefix(t *testing.T) {
	tests := []struct {
		input    string
		operator string
	}{
		{"!ok", "!"},
		{"-x", "-"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expr, err := Parse(context.Background(), tt.input)
			require.Nil(t, err)

			prefix, ok := expr.(*ast.Prefix)
			require.True(t, ok)
			require.Equal(t, tt.operator, prefix.Op)
		})
	}
}

func TestInfix(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1+1", "(1 + 1)"},
		{"a - b", "(a - b)"},
		{"a * b + c", "((a * b) + c)"},
		{"a + b * c", "(a + (b * c))"},
		{"1 == 2", "(1 == 2)"},
		{"x % 2", "(x % 2)"},
		{"2 ** 8", "(2 ** 8)"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expr, err := Parse(context.Background(), tt.input)
			require.Nil(t, err)
			require.Equal(t, tt.expected, expr.String())
		})
	}
}

func TestLiterals(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"42", "42"},
		{"1.5", "1.5"},
		{`"hello"`, `"hello"`},
		{"[1, 2]", "[1, 2]"},
		{"{}", "{}"},
		{`{"a": 1}`, `{"a": 1}`},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expr, err := Parse(context.Background(), tt.input)
			require.Nil(t, err)
			require.Equal(t, tt.expected, expr.String())
		})
	}
}

func TestGroupedExpr(t *testing.T) {
	expr, err := Parse(context.Background(), "(a + b) * c")
	require.Nil(t, err)
	require.Equal(t, "((a + b) * c)", expr.String())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input   string
		message string
	}{
		{"", "expected an expression"},
		{"a b", `unexpected token "b" following expression`},
		{"a.", "expected an identifier after"},
		{"a.(", "expected an identifier after"},
		{"f(a", "unexpected end of input while parsing a call expression"},
		{"items[0", "unexpected end of input while parsing an index expression"},
		{"(a", "unexpected end of input while parsing a grouped expression"},
		{"+", "invalid syntax"},
		{"mut", "invalid syntax"},
		{`"oops`, "unterminated string literal"},
		{"a $ b", "unexpected token"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(context.Background(), tt.input)
			require.NotNil(t, err)
			require.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestParserErrorDetails(t *testing.T) {
	_, err := Parse(context.Background(), "foo..bar", WithFilename("clones.txt"))
	require.NotNil(t, err)

	perr, ok := err.(ParserError)
	require.True(t, ok)
	require.Equal(t, "clones.txt", perr.File())
	require.Equal(t, errors.E1003, perr.Code())
	require.Equal(t, "foo..bar", perr.SourceCode())

	msg := perr.FriendlyErrorMessage()
	require.Contains(t, msg, "parse error")
	require.Contains(t, msg, "clones.txt:1:")
}

func TestMaxDepth(t *testing.T) {
	input := strings.Repeat("(", 200) + "a" + strings.Repeat(")", 200)
	_, err := Parse(context.Background(), input)
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "maximum nesting depth exceeded")

	_, err = Parse(context.Background(), "((a))", WithMaxDepth(1))
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "maximum nesting depth exceeded")
}

func TestContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Parse(ctx, "a.b")
	require.NotNil(t, err)
	require.Equal(t, context.Canceled, err)
}
