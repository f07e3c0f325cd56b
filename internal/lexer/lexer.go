// Package lexer scans a clone-list input string into a stream of tokens.
//
// A lexer is created by calling New() with the input string. Tokens are then
// read one at a time using Next(), which returns an EOF token once the input
// is exhausted.
package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/deepnoodle-ai/letclone/internal/token"
)

// Lexer holds the state used while scanning one input string.
type Lexer struct {
	// input is the string being scanned
	input string

	// position is the byte offset of the current rune
	position int

	// readPosition is the byte offset of the next rune
	readPosition int

	// ch is the current rune
	ch rune

	// line is the 0-indexed line number of the current rune
	line int

	// lineStart is the byte offset of the start of the current line
	lineStart int

	// column is the 0-indexed column of the current rune
	column int

	// filename of the input, if known
	filename string
}

// New returns a Lexer for the given input string.
func New(input string) *Lexer {
	l := &Lexer{input: input, column: -1}
	l.readChar()
	return l
}

// SetFilename sets the filename associated with the input.
func (l *Lexer) SetFilename(filename string) {
	l.filename = filename
}

// Filename returns the filename associated with the input, if any.
func (l *Lexer) Filename() string {
	return l.filename
}

// GetLineText returns the full text of the line containing the given token.
func (l *Lexer) GetLineText(t token.Token) string {
	start := t.StartPosition.LineStart
	if start < 0 || start > len(l.input) {
		return ""
	}
	end := strings.IndexRune(l.input[start:], '\n')
	if end < 0 {
		return l.input[start:]
	}
	return l.input[start : start+end]
}

// Next returns the next token from the input. Once the input is exhausted,
// an EOF token is returned. An error is returned for malformed input that
// cannot be tokenized, such as an unterminated string.
func (l *Lexer) Next() (token.Token, error) {
	l.skipWhitespace()
	pos := l.currentPosition()
	switch l.ch {
	case rune(0):
		return l.newToken(token.EOF, pos, ""), nil
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return l.newToken(token.EQ, pos, "=="), nil
		}
		l.readChar()
		return l.newToken(token.ASSIGN, pos, "="), nil
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return l.newToken(token.NOT_EQ, pos, "!="), nil
		}
		l.readChar()
		return l.newToken(token.BANG, pos, "!"), nil
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return l.newToken(token.LT_EQUALS, pos, "<="), nil
		}
		l.readChar()
		return l.newToken(token.LT, pos, "<"), nil
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return l.newToken(token.GT_EQUALS, pos, ">="), nil
		}
		l.readChar()
		return l.newToken(token.GT, pos, ">"), nil
	case '*':
		if l.peekChar() == '*' {
			l.readChar()
			l.readChar()
			return l.newToken(token.POW, pos, "**"), nil
		}
		l.readChar()
		return l.newToken(token.ASTERISK, pos, "*"), nil
	case '+':
		l.readChar()
		return l.newToken(token.PLUS, pos, "+"), nil
	case '-':
		l.readChar()
		return l.newToken(token.MINUS, pos, "-"), nil
	case '/':
		l.readChar()
		return l.newToken(token.SLASH, pos, "/"), nil
	case '%':
		l.readChar()
		return l.newToken(token.MOD, pos, "%"), nil
	case '.':
		l.readChar()
		return l.newToken(token.PERIOD, pos, "."), nil
	case ',':
		l.readChar()
		return l.newToken(token.COMMA, pos, ","), nil
	case ':':
		l.readChar()
		return l.newToken(token.COLON, pos, ":"), nil
	case '(':
		l.readChar()
		return l.newToken(token.LPAREN, pos, "("), nil
	case ')':
		l.readChar()
		return l.newToken(token.RPAREN, pos, ")"), nil
	case '[':
		l.readChar()
		return l.newToken(token.LBRACKET, pos, "["), nil
	case ']':
		l.readChar()
		return l.newToken(token.RBRACKET, pos, "]"), nil
	case '{':
		l.readChar()
		return l.newToken(token.LBRACE, pos, "{"), nil
	case '}':
		l.readChar()
		return l.newToken(token.RBRACE, pos, "}"), nil
	case '"':
		str, err := l.readString()
		if err != nil {
			return l.newToken(token.ILLEGAL, pos, str), err
		}
		return l.newToken(token.STRING, pos, str), nil
	default:
		if isIdentStart(l.ch) {
			literal := l.readIdentifier()
			return l.newToken(token.LookupIdentifier(literal), pos, literal), nil
		}
		if isDigit(l.ch) {
			literal, isFloat := l.readNumber()
			if isFloat {
				return l.newToken(token.FLOAT, pos, literal), nil
			}
			return l.newToken(token.INT, pos, literal), nil
		}
		literal := string(l.ch)
		l.readChar()
		return l.newToken(token.ILLEGAL, pos, literal), nil
	}
}

// Tokenize reads all remaining tokens, up to and including the EOF token.
func (l *Lexer) Tokenize() ([]token.Token, error) {
	var tokens []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) newToken(typ token.Type, start token.Position, literal string) token.Token {
	return token.Token{
		Type:          typ,
		Literal:       literal,
		StartPosition: start,
		EndPosition:   l.currentPosition(),
	}
}

func (l *Lexer) currentPosition() token.Position {
	return token.Position{
		Char:      l.position,
		LineStart: l.lineStart,
		Line:      l.line,
		Column:    l.column,
		File:      l.filename,
	}
}

// readChar advances to the next rune in the input.
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.lineStart = l.readPosition
		l.column = -1
	}
	if l.readPosition >= len(l.input) {
		l.ch = rune(0)
		l.position = l.readPosition
		l.column++
		return
	}
	r, width := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += width
	l.column++
}

// peekChar returns the next rune without advancing.
func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return rune(0)
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.readChar()
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isIdentStart(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber reads an integer or float literal. The second return value is
// true if the literal contains a decimal point.
func (l *Lexer) readNumber() (string, bool) {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
		return l.input[start:l.position], true
	}
	return l.input[start:l.position], false
}

// readString reads a double-quoted string literal, returning its unquoted
// contents. The opening quote is the current rune when this is called.
func (l *Lexer) readString() (string, error) {
	var sb strings.Builder
	l.readChar() // consume the opening quote
	for {
		switch l.ch {
		case rune(0):
			return sb.String(), fmt.Errorf("unterminated string literal")
		case '\\':
			l.readChar()
			switch l.ch {
			case 'n':
				sb.WriteRune('\n')
			case 't':
				sb.WriteRune('\t')
			case 'r':
				sb.WriteRune('\r')
			case '"':
				sb.WriteRune('"')
			case '\\':
				sb.WriteRune('\\')
			default:
				return sb.String(), fmt.Errorf("invalid escape sequence \\%c", l.ch)
			}
			l.readChar()
		case '"':
			l.readChar() // consume the closing quote
			return sb.String(), nil
		default:
			sb.WriteRune(l.ch)
			l.readChar()
		}
	}
}

func isIdentStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
