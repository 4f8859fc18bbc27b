package parser

import (
	"github.com/shipsimfan/acsl/acslerr"
	"github.com/shipsimfan/acsl/ast"
	"github.com/shipsimfan/acsl/token"
)

// parseExpr is the grammar's `expr` production: additive.
func (p *parser) parseExpr() (ast.Expr, *acslerr.ParseError) {
	return p.parseAdditive()
}

// parseAdditive implements `add := mul (('+'|'-') mul)*`.
func (p *parser) parseAdditive() (ast.Expr, *acslerr.ParseError) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}

	for p.check(token.Plus) || p.check(token.Dash) {
		pos := p.current().Pos
		isAdd := p.check(token.Plus)
		p.advance()

		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}

		if isAdd {
			left = &ast.Add{Left: left, Right: right, Pos: pos}
		} else {
			left = &ast.Subtract{Left: left, Right: right, Pos: pos}
		}
	}

	return left, nil
}

// parseMultiplicative implements `mul := primary ('*' primary)*`.
func (p *parser) parseMultiplicative() (ast.Expr, *acslerr.ParseError) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for p.check(token.Star) {
		pos := p.current().Pos
		p.advance()

		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}

		left = &ast.Multiply{Left: left, Right: right, Pos: pos}
	}

	return left, nil
}

// parsePrimary implements the `primary` production, including the
// left-associative trailing `.ident` member-access chain.
func (p *parser) parsePrimary() (ast.Expr, *acslerr.ParseError) {
	expr, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	for p.check(token.Period) {
		pos := p.current().Pos
		p.advance()
		name, _, err := p.parseIdentName()
		if err != nil {
			return nil, err
		}
		expr = &ast.MemberAccess{Expr: expr, Name: name, Pos: pos}
	}

	return expr, nil
}

func (p *parser) parseAtom() (ast.Expr, *acslerr.ParseError) {
	switch p.current().Kind {
	case token.LeftParen:
		p.advance()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RightParen); err != nil {
			return nil, err
		}
		return expr, nil

	case token.FloatLiteral:
		t := p.advance()
		return &ast.FloatLiteral{Value: t.Float, Pos: t.Pos}, nil

	case token.IntegerLiteral:
		t := p.advance()
		return &ast.FloatLiteral{Value: float64(t.Int), Pos: t.Pos}, nil

	case token.Ident:
		name, pos, err := p.parseIdentName()
		if err != nil {
			return nil, err
		}

		switch p.current().Kind {
		case token.LeftParen:
			return p.parseFunctionCall(name, pos)
		case token.LeftBrace:
			return p.parseStructCreation(name, pos)
		default:
			return &ast.Variable{Name: name, Pos: pos}, nil
		}

	case token.EOF:
		return nil, acslerr.NewUnexpectedEOF(p.current().Pos)

	default:
		return nil, acslerr.NewUnexpectedToken(p.current().String(), p.current().Pos)
	}
}

func (p *parser) parseFunctionCall(name string, pos acslerr.Position) (*ast.FunctionCall, *acslerr.ParseError) {
	p.advance() // '('

	var args []ast.Expr
	if !p.check(token.RightParen) {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.check(token.Comma) {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(token.RightParen); err != nil {
		return nil, err
	}

	return &ast.FunctionCall{Name: name, Args: args, Pos: pos}, nil
}

func (p *parser) parseStructCreation(name string, pos acslerr.Position) (*ast.StructCreation, *acslerr.ParseError) {
	p.advance() // '{'

	var inits []ast.StructInit
	if !p.check(token.RightBrace) {
		for {
			memberName, _, err := p.parseIdentName()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.Colon); err != nil {
				return nil, err
			}
			expr, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			inits = append(inits, ast.StructInit{Name: memberName, Expr: expr})
			if !p.check(token.Comma) {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(token.RightBrace); err != nil {
		return nil, err
	}

	return &ast.StructCreation{Name: name, Inits: inits, Pos: pos}, nil
}
