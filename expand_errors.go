package letclone

import (
	"fmt"
	"strings"

	"github.com/deepnoodle-ai/letclone/errors"
	"github.com/deepnoodle-ai/letclone/internal/token"
)

// Error describes why an expansion failed. It identifies the offending list
// item and carries the underlying parser error when the failure occurred
// while parsing rather than while classifying.
type Error struct {
	code    errors.ErrorCode
	message string
	item    int            // 1-based item number; 0 if not tied to an item
	segment string         // source text of the offending segment
	cause   error          // underlying error, if any
	pos     token.Position // position of the offending construct
	source  string         // the source line shown in formatted output
	hint    string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("expand error: ")
	b.WriteString(e.message)
	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}
	if e.item > 0 && e.segment != "" {
		fmt.Fprintf(&b, " (item %d: %q)", e.item, e.segment)
	} else if e.item > 0 {
		fmt.Fprintf(&b, " (item %d)", e.item)
	}
	return b.String()
}

// Code returns the error code classifying this failure.
func (e *Error) Code() errors.ErrorCode {
	return e.code
}

// Item returns the 1-based number of the offending list item, or zero when
// the failure is not tied to a specific item.
func (e *Error) Item() int {
	return e.item
}

// Segment returns the source text of the offending list segment.
func (e *Error) Segment() string {
	return e.segment
}

func (e *Error) Unwrap() error {
	return e.cause
}

// FriendlyErrorMessage returns a formatted, human friendly rendering of the
// error, including the offending segment with a caret underline.
func (e *Error) FriendlyErrorMessage() string {
	formatter := errors.NewFormatter(false)
	return formatter.Format(e.ToFormatted())
}

// ToFormatted converts the error to a FormattedError for display. When the
// failure wraps a parser error, the parser's own formatting (which carries
// exact positions) is preferred, annotated with the item number.
func (e *Error) ToFormatted() *errors.FormattedError {
	if fe, ok := e.cause.(errors.FormattableError); ok {
		formatted := fe.ToFormatted()
		formatted.Note = e.message
		return formatted
	}
	formatted := &errors.FormattedError{
		Code:    e.code,
		Kind:    "expand error",
		Message: e.message,
		Hint:    e.hint,
	}
	// The source line is the expression text the parser saw, so the caret
	// column lines up with the node positions.
	line := e.source
	if line == "" {
		line = e.segment
	}
	if line != "" {
		formatted.Line = e.pos.LineNumber()
		formatted.Column = e.pos.ColumnNumber()
		formatted.Filename = e.pos.File
		formatted.SourceLines = []errors.SourceLineEntry{
			{Number: e.pos.LineNumber(), Text: line, IsMain: true},
		}
	}
	return formatted
}
