package lexer

import (
	"testing"

	"github.com/deepnoodle-ai/letclone/internal/token"
	"github.com/stretchr/testify/require"
)

func TestNextToken(t *testing.T) {
	input := "mut data.field1, a.m(x, 1.5), items[0], {}"
	tests := []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.MUT, "mut"},
		{token.IDENT, "data"},
		{token.PERIOD, "."},
		{token.IDENT, "field1"},
		{token.COMMA, ","},
		{token.IDENT, "a"},
		{token.PERIOD, "."},
		{token.IDENT, "m"},
		{token.LPAREN, "("},
		{token.IDENT, "x"},
		{token.COMMA, ","},
		{token.FLOAT, "1.5"},
		{token.RPAREN, ")"},
		{token.COMMA, ","},
		{token.IDENT, "items"},
		{token.LBRACKET, "["},
		{token.INT, "0"},
		{token.RBRACKET, "]"},
		{token.COMMA, ","},
		{token.LBRACE, "{"},
		{token.RBRACE, "}"},
		{token.EOF, ""},
	}
	l := New(input)
	for i, tt := range tests {
		tok, err := l.Next()
		require.Nil(t, err)
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong, expected=%q, got=%q", i, tt.expectedType, tok.Type)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - Literal wrong, expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestOperators(t *testing.T) {
	input := "== != <= >= ** = ! < > + - * / % : ."
	tests := []token.Type{
		token.EQ,
		token.NOT_EQ,
		token.LT_EQUALS,
		token.GT_EQUALS,
		token.POW,
		token.ASSIGN,
		token.BANG,
		token.LT,
		token.GT,
		token.PLUS,
		token.MINUS,
		token.ASTERISK,
		token.SLASH,
		token.MOD,
		token.COLON,
		token.PERIOD,
		token.EOF,
	}
	l := New(input)
	for i, expected := range tests {
		tok, err := l.Next()
		require.Nil(t, err)
		if tok.Type != expected {
			t.Fatalf("tests[%d] - tokentype wrong, expected=%q, got=%q", i, expected, tok.Type)
		}
	}
}

func TestPositionalFieldTokens(t *testing.T) {
	// "a.0" must lex as IDENT PERIOD INT so that the parser can recognize
	// positional field access and reject it with a specific error.
	l := New("a.0")
	tok, err := l.Next()
	require.Nil(t, err)
	require.Equal(t, token.IDENT, tok.Type)
	tok, err = l.Next()
	require.Nil(t, err)
	require.Equal(t, token.PERIOD, tok.Type)
	tok, err = l.Next()
	require.Nil(t, err)
	require.Equal(t, token.INT, tok.Type)
	require.Equal(t, "0", tok.Literal)
}

func TestMutKeyword(t *testing.T) {
	// "mut" is a keyword only when it stands alone
	l := New("mut mutable")
	tok, err := l.Next()
	require.Nil(t, err)
	require.Equal(t, token.MUT, tok.Type)
	tok, err = l.Next()
	require.Nil(t, err)
	require.Equal(t, token.IDENT, tok.Type)
	require.Equal(t, "mutable", tok.Literal)
}

func TestStringLiteral(t *testing.T) {
	l := New(`"foo bar"`)
	tok, err := l.Next()
	require.Nil(t, err)
	require.Equal(t, token.STRING, tok.Type)
	require.Equal(t, "foo bar", tok.Literal)
}

func TestStringEscapes(t *testing.T) {
	l := New(`"a\nb\t\"c\""`)
	tok, err := l.Next()
	require.Nil(t, err)
	require.Equal(t, token.STRING, tok.Type)
	require.Equal(t, "a\nb\t\"c\"", tok.Literal)
}

func TestUnterminatedString(t *testing.T) {
	l := New(`"oops`)
	_, err := l.Next()
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "unterminated string")
}

func TestIllegalToken(t *testing.T) {
	l := New("a # b")
	tok, err := l.Next()
	require.Nil(t, err)
	require.Equal(t, token.IDENT, tok.Type)
	tok, err = l.Next()
	require.Nil(t, err)
	require.Equal(t, token.ILLEGAL, tok.Type)
	require.Equal(t, "#", tok.Literal)
}

func TestPositions(t *testing.T) {
	l := New("ab cd")
	tok, err := l.Next()
	require.Nil(t, err)
	require.Equal(t, 0, tok.StartPosition.Char)
	require.Equal(t, 0, tok.StartPosition.Column)
	require.Equal(t, 2, tok.EndPosition.Char)

	tok, err = l.Next()
	require.Nil(t, err)
	require.Equal(t, 3, tok.StartPosition.Char)
	require.Equal(t, 3, tok.StartPosition.Column)
	require.Equal(t, 5, tok.EndPosition.Char)
}

func TestMultilinePositions(t *testing.T) {
	l := New("a,\nb")
	var toks []token.Token
	for {
		tok, err := l.Next()
		require.Nil(t, err)
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	require.Len(t, toks, 4)
	b := toks[2]
	require.Equal(t, token.IDENT, b.Type)
	require.Equal(t, "b", b.Literal)
	require.Equal(t, 1, b.StartPosition.Line)
	require.Equal(t, 0, b.StartPosition.Column)
	require.Equal(t, 3, b.StartPosition.LineStart)
}

func TestGetLineText(t *testing.T) {
	l := New("first,\nsecond.field\nthird")
	var target token.Token
	for {
		tok, err := l.Next()
		require.Nil(t, err)
		if tok.Type == token.EOF {
			break
		}
		if tok.Literal == "field" {
			target = tok
		}
	}
	require.Equal(t, "second.field", l.GetLineText(target))
}

func TestTokenize(t *testing.T) {
	l := New("a, b")
	toks, err := l.Tokenize()
	require.Nil(t, err)
	require.Len(t, toks, 4)
	require.Equal(t, token.EOF, toks[3].Type)
}

func TestUnicodeIdentifiers(t *testing.T) {
	l := New("世界")
	tok, err := l.Next()
	require.Nil(t, err)
	require.Equal(t, token.IDENT, tok.Type)
	require.Equal(t, "世界", tok.Literal)
}
