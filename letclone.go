// Package letclone expands a comma-separated list of expressions into "let"
// binding statements that clone the value each expression denotes.
//
// Each list item is an optional "mut" marker followed by one expression.
// Three expression shapes are supported:
//
//	x           ->  let x = x.clone();
//	person.name ->  let name = person.name.clone();
//	obj.load()  ->  let load = obj.load().clone();
//
// The binding name is derived from the expression: the identifier itself, the
// accessed field name, or the called method name. Any other expression shape
// is an error. Expansion is all-or-nothing: the first invalid item aborts the
// whole expansion and no partial output is returned.
package letclone

import (
	"context"
	"fmt"
	"strings"

	"github.com/deepnoodle-ai/letclone/errors"
	"github.com/deepnoodle-ai/letclone/internal/lexer"
	"github.com/deepnoodle-ai/letclone/internal/token"
	"github.com/deepnoodle-ai/letclone/parser"
)

// DefaultCloneMethod is the method invoked on each expansion target to
// produce the duplicate that is bound.
const DefaultCloneMethod = "clone"

// Option configures an expansion.
type Option func(*options)

type options struct {
	filename    string
	cloneMethod string
}

func collectOptions(opts ...Option) *options {
	o := &options{cloneMethod: DefaultCloneMethod}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// WithFilename sets the filename for the input being expanded.
// This is used in error messages.
func WithFilename(filename string) Option {
	return func(o *options) {
		o.filename = filename
	}
}

// WithCloneMethod overrides the method name invoked on each expansion target.
// The default is "clone".
func WithCloneMethod(method string) Option {
	return func(o *options) {
		o.cloneMethod = method
	}
}

// Expand transforms a comma-separated clone list into a sequence of "let"
// binding statements, one per item, concatenated in input order. It returns
// an error describing the first invalid item, in which case no output is
// produced. Expand is a pure function of its input and is safe for
// concurrent use.
func Expand(ctx context.Context, input string, opts ...Option) (string, error) {
	o := collectOptions(opts...)

	if strings.TrimSpace(input) == "" {
		return "", &Error{
			code:    errors.E4001,
			message: "at least one expression is required",
		}
	}

	segments, err := splitList(input, o.filename)
	if err != nil {
		return "", err
	}

	var items []*Item
	for i, seg := range segments {
		if strings.TrimSpace(seg.text) == "" {
			// A trailing comma after a valid item leaves one empty segment
			// at the end of the list, which is tolerated. Everywhere else
			// an empty segment indicates a stray or doubled comma.
			if i == len(segments)-1 && len(items) > 0 {
				continue
			}
			return "", &Error{
				code:    errors.E4002,
				message: "empty expression in clone list",
				item:    i + 1,
			}
		}
		item, err := parseItem(ctx, seg, i+1, o)
		if err != nil {
			return "", err
		}
		items = append(items, item)
	}

	var out strings.Builder
	for _, item := range items {
		out.WriteString(item.Statement(o.cloneMethod))
	}
	return out.String(), nil
}

// segment is one comma-delimited piece of the input list.
type segment struct {
	text string // the segment's source text
}

// splitList cuts the input at commas that are not nested inside parentheses,
// brackets, or braces. The comma handling for call arguments and literals
// thus stays with the expression parser. Segment boundaries are computed
// from token byte offsets, so the returned segments are exact slices of the
// input.
func splitList(input, filename string) ([]segment, error) {
	l := lexer.New(input)
	l.SetFilename(filename)
	tokens, err := l.Tokenize()
	if err != nil {
		return nil, &Error{
			code:    errors.E1002,
			message: "while scanning the clone list",
			cause:   err,
		}
	}
	var segments []segment
	depth := 0
	start := 0
	for _, t := range tokens {
		switch t.Type {
		case token.LPAREN, token.LBRACKET, token.LBRACE:
			depth++
		case token.RPAREN, token.RBRACKET, token.RBRACE:
			// An unbalanced closer makes the segment invalid; the
			// expression parser reports it with full context.
			if depth > 0 {
				depth--
			}
		case token.COMMA:
			if depth == 0 {
				segments = append(segments, segment{text: input[start:t.StartPosition.Char]})
				start = t.EndPosition.Char
			}
		case token.EOF:
			segments = append(segments, segment{text: input[start:]})
		}
	}
	return segments, nil
}

// parseItem parses one non-empty segment into a classified Item: an optional
// leading "mut" marker, then exactly one expression of a supported shape.
func parseItem(ctx context.Context, seg segment, n int, o *options) (*Item, error) {
	exprText := seg.text
	mutable := false

	// The mutability marker is detected on token boundaries, so identifiers
	// like "mutable" are not mistaken for it.
	first, err := lexer.New(seg.text).Next()
	if err == nil && first.Type == token.MUT {
		mutable = true
		exprText = seg.text[first.EndPosition.Char:]
	}

	expr, err := parser.Parse(ctx, exprText, parser.WithFilename(o.filename))
	if err != nil {
		if perr, ok := err.(parser.ParserError); ok {
			return nil, &Error{
				code:    perr.Code(),
				message: fmt.Sprintf("while parsing item %d", n),
				item:    n,
				segment: strings.TrimSpace(seg.text),
				cause:   perr,
			}
		}
		return nil, err
	}
	return classify(expr, mutable, n, strings.TrimSpace(seg.text), exprText)
}
