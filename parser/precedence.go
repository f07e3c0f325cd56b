package parser

import "github.com/deepnoodle-ai/letclone/internal/token"

// Precedence order for operators
const (
	_ int = iota
	LOWEST
	EQUALS      // == or !=
	LESSGREATER // > or <
	SUM         // + or -
	PRODUCT     // * or /
	POWER       // **
	MOD         // %
	PREFIX      // -X or !X
	CALL        // myFunction(X)
	INDEX       // items[index], obj.attr
)

// Precedences for each token type
var precedences = map[token.Type]int{
	token.EQ:        EQUALS,
	token.NOT_EQ:    EQUALS,
	token.LT:        LESSGREATER,
	token.LT_EQUALS: LESSGREATER,
	token.GT:        LESSGREATER,
	token.GT_EQUALS: LESSGREATER,
	token.PLUS:      SUM,
	token.MINUS:     SUM,
	token.SLASH:     PRODUCT,
	token.ASTERISK:  PRODUCT,
	token.POW:       POWER,
	token.MOD:       MOD,
	token.LPAREN:    CALL,
	token.PERIOD:    INDEX,
	token.LBRACKET:  INDEX,
}
