package parser

import (
	"github.com/shipsimfan/acsl/acslerr"
	"github.com/shipsimfan/acsl/ast"
	"github.com/shipsimfan/acsl/token"
)

func (p *parser) parseCodeBlock(depth int) (*ast.CodeBlock, *acslerr.ParseError) {
	if _, err := p.expect(token.LeftBrace); err != nil {
		return nil, err
	}

	block := &ast.CodeBlock{Depth: depth}
	for !p.check(token.RightBrace) {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
	if _, err := p.expect(token.RightBrace); err != nil {
		return nil, err
	}

	return block, nil
}

func (p *parser) parseStmt() (ast.Stmt, *acslerr.ParseError) {
	switch p.current().Kind {
	case token.Return:
		return p.parseReturn()
	case token.Let:
		return p.parseVariableDefinition()
	case token.Ident:
		return p.parseAssignment()
	case token.EOF:
		return nil, acslerr.NewUnexpectedEOF(p.current().Pos)
	default:
		return nil, acslerr.NewUnexpectedToken(p.current().String(), p.current().Pos)
	}
}

func (p *parser) parseReturn() (*ast.Return, *acslerr.ParseError) {
	pos := p.current().Pos
	p.advance() // 'return'

	var expr ast.Expr
	if p.check(token.Semicolon) {
		expr = &ast.Empty{Pos: p.current().Pos}
	} else {
		var err *acslerr.ParseError
		expr, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}

	return &ast.Return{Expr: expr, Pos: pos}, nil
}

func (p *parser) parseVariableDefinition() (*ast.VariableDefinition, *acslerr.ParseError) {
	pos := p.current().Pos
	p.advance() // 'let'

	mutable := false
	if p.check(token.Mut) {
		mutable = true
		p.advance()
	}

	name, _, err := p.parseIdentName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Equal); err != nil {
		return nil, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}

	return &ast.VariableDefinition{Name: name, Expr: expr, Mutable: mutable, Pos: pos}, nil
}

func (p *parser) parseAssignment() (*ast.Assignment, *acslerr.ParseError) {
	name, pos, err := p.parseIdentName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Equal); err != nil {
		return nil, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}

	return &ast.Assignment{Name: name, Expr: expr, Pos: pos}, nil
}
