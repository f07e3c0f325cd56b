package parser

import (
	"github.com/deepnoodle-ai/letclone/ast"
	"github.com/deepnoodle-ai/letclone/internal/token"
)

// Expression parsing methods for the Parser.
// This file contains methods that parse expression constructs:
// - Identifiers and prefix/infix expressions
// - Grouped expressions
// - Index expressions
// - Call expressions
// - Attribute access, both named and positional

func (p *Parser) parseIdent() ast.Expr {
	if p.curToken.Literal == "" {
		p.setTokenError(p.curToken, "invalid identifier")
		return nil
	}
	return p.newIdent(p.curToken)
}

func (p *Parser) parsePrefixExpr() ast.Expr {
	opPos := p.curToken.StartPosition
	op := p.curToken.Literal
	p.nextToken()
	if p.err != nil {
		return nil
	}
	right := p.parseExpression(PREFIX)
	if right == nil {
		return nil
	}
	return &ast.Prefix{OpPos: opPos, Op: op, X: right}
}

func (p *Parser) parseInfixExpr(left ast.Expr) ast.Expr {
	opPos := p.curToken.StartPosition
	op := p.curToken.Literal
	precedence := precedences[p.curToken.Type]
	p.nextToken()
	if p.err != nil {
		return nil
	}
	right := p.parseExpression(precedence)
	if right == nil {
		return nil
	}
	return &ast.Infix{X: left, OpPos: opPos, Op: op, Y: right}
}

func (p *Parser) parseGroupedExpr() ast.Expr {
	p.nextToken()
	if p.err != nil {
		return nil
	}
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	if !p.expectPeek("a grouped expression", token.RPAREN) {
		return nil
	}
	return expr
}

func (p *Parser) parseIndex(left ast.Expr) ast.Expr {
	lbrack := p.curToken.StartPosition
	p.nextToken()
	if p.err != nil {
		return nil
	}
	index := p.parseExpression(LOWEST)
	if index == nil {
		return nil
	}
	if !p.expectPeek("an index expression", token.RBRACKET) {
		return nil
	}
	rbrack := p.curToken.StartPosition
	return &ast.Index{X: left, Lbrack: lbrack, Index: index, Rbrack: rbrack}
}

func (p *Parser) parseCall(fn ast.Expr) ast.Expr {
	lparen := p.curToken.StartPosition
	args := p.parseExprList(token.RPAREN, "a call expression")
	if p.err != nil {
		return nil
	}
	rparen := p.curToken.StartPosition
	return &ast.Call{Fun: fn, Lparen: lparen, Args: args, Rparen: rparen}
}

// parseGetAttr parses the construct following a "." on a base expression.
// A named attribute produces a GetAttr or, when followed by an argument
// list, an ObjectCall. A numeric member produces a GetIndex, representing
// positional field access such as "pair.0".
func (p *Parser) parseGetAttr(obj ast.Expr) ast.Expr {
	period := p.curToken.StartPosition
	p.nextToken()
	if p.err != nil {
		return nil
	}
	switch p.curToken.Type {
	case token.IDENT:
		name := p.newIdent(p.curToken)
		if p.peekTokenIs(token.LPAREN) {
			p.nextToken()
			if p.err != nil {
				return nil
			}
			callExpr := p.parseCall(name)
			if callExpr == nil {
				return nil
			}
			call, ok := callExpr.(*ast.Call)
			if !ok {
				p.setTokenError(p.curToken, "invalid attribute expression")
				return nil
			}
			return &ast.ObjectCall{X: obj, Period: period, Call: call}
		}
		return &ast.GetAttr{X: obj, Period: period, Attr: name}
	case token.INT, token.FLOAT:
		// Positional field access: representable, never expandable. A float
		// member covers chained positional access such as "t.0.1", which
		// lexes as a single float literal.
		return &ast.GetIndex{X: obj, Period: period, Index: p.curToken}
	default:
		p.setTokenError(p.curToken, "expected an identifier after %q", ".")
		return nil
	}
}

// parseExprList parses a comma-separated list of expressions terminated by
// the given end token. The current token must be the list opener. On success
// the current token is the end token. A trailing comma is permitted.
func (p *Parser) parseExprList(end token.Type, context string) []ast.Expr {
	args := []ast.Expr{}
	if p.peekTokenIs(end) {
		p.nextToken()
		return args
	}
	for {
		p.nextToken()
		if p.err != nil {
			return nil
		}
		arg := p.parseExpression(LOWEST)
		if arg == nil {
			return nil
		}
		args = append(args, arg)
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			if p.err != nil {
				return nil
			}
			// Tolerate a trailing comma before the end token
			if p.peekTokenIs(end) {
				p.nextToken()
				return args
			}
			continue
		}
		if !p.expectPeek(context, end) {
			return nil
		}
		return args
	}
}
