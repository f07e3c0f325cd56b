package errors

// ErrorCode represents a unique identifier for error types.
// Codes are organized by category:
//   - E1xxx: Parse errors
//   - E4xxx: Expansion errors
type ErrorCode string

const (
	// Parse errors (E1xxx)
	E1001 ErrorCode = "E1001" // Unexpected token
	E1002 ErrorCode = "E1002" // Unterminated string literal
	E1003 ErrorCode = "E1003" // Invalid syntax
	E1004 ErrorCode = "E1004" // Missing expression
	E1005 ErrorCode = "E1005" // Unclosed delimiter
	E1006 ErrorCode = "E1006" // Expected identifier
	E1007 ErrorCode = "E1007" // Maximum nesting depth exceeded

	// Expansion errors (E4xxx)
	E4001 ErrorCode = "E4001" // Empty clone list
	E4002 ErrorCode = "E4002" // Empty list segment
	E4003 ErrorCode = "E4003" // Unsupported positional field access
	E4004 ErrorCode = "E4004" // Unsupported expression shape
)

// codeDescriptions maps error codes to their short descriptions.
var codeDescriptions = map[ErrorCode]string{
	E1001: "unexpected token",
	E1002: "unterminated string literal",
	E1003: "invalid syntax",
	E1004: "missing expression",
	E1005: "unclosed delimiter",
	E1006: "expected identifier",
	E1007: "maximum nesting depth exceeded",

	E4001: "empty clone list",
	E4002: "empty list segment",
	E4003: "unsupported positional field access",
	E4004: "unsupported expression shape",
}

// Description returns the short description for an error code.
func (c ErrorCode) Description() string {
	if desc, ok := codeDescriptions[c]; ok {
		return desc
	}
	return "unknown error"
}

// String returns the error code as a string.
func (c ErrorCode) String() string {
	return string(c)
}

// Category returns the error category based on the code prefix.
func (c ErrorCode) Category() string {
	if len(c) < 2 {
		return "unknown"
	}
	switch c[1] {
	case '1':
		return "parse"
	case '4':
		return "expand"
	default:
		return "unknown"
	}
}
