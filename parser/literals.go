package parser

import (
	"fmt"
	"strconv"

	"github.com/deepnoodle-ai/letclone/ast"
	"github.com/deepnoodle-ai/letclone/internal/token"
)

func (p *Parser) parseInt() ast.Expr {
	value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.setTokenError(p.curToken, "invalid integer literal %q", p.curToken.Literal)
		return nil
	}
	return &ast.Int{
		ValuePos: p.curToken.StartPosition,
		Literal:  p.curToken.Literal,
		Value:    value,
	}
}

func (p *Parser) parseFloat() ast.Expr {
	value, err := strconv.ParseFloat(p.curToken.Literal, 64)
	if err != nil {
		p.setTokenError(p.curToken, "invalid float literal %q", p.curToken.Literal)
		return nil
	}
	return &ast.Float{
		ValuePos: p.curToken.StartPosition,
		Literal:  p.curToken.Literal,
		Value:    value,
	}
}

func (p *Parser) parseString() ast.Expr {
	return &ast.String{
		ValuePos: p.curToken.StartPosition,
		Literal:  fmt.Sprintf("%q", p.curToken.Literal),
		Value:    p.curToken.Literal,
	}
}

func (p *Parser) parseList() ast.Expr {
	lbrack := p.curToken.StartPosition
	items := p.parseExprList(token.RBRACKET, "a list literal")
	if p.err != nil {
		return nil
	}
	rbrack := p.curToken.StartPosition
	return &ast.List{Lbrack: lbrack, Items: items, Rbrack: rbrack}
}

func (p *Parser) parseMap() ast.Expr {
	lbrace := p.curToken.StartPosition
	items := map[ast.Expr]ast.Expr{}
	for !p.peekTokenIs(token.RBRACE) {
		p.nextToken()
		if p.err != nil {
			return nil
		}
		key := p.parseExpression(LOWEST)
		if key == nil {
			return nil
		}
		if !p.expectPeek("a map literal", token.COLON) {
			return nil
		}
		p.nextToken()
		if p.err != nil {
			return nil
		}
		value := p.parseExpression(LOWEST)
		if value == nil {
			return nil
		}
		items[key] = value
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			if p.err != nil {
				return nil
			}
			continue
		}
		break
	}
	if !p.expectPeek("a map literal", token.RBRACE) {
		return nil
	}
	rbrace := p.curToken.StartPosition
	return &ast.Map{Lbrace: lbrace, Items: items, Rbrace: rbrace}
}
