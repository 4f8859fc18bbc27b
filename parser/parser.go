// Package parser implements the recursive-descent ACSL parser described in
// §4.3: it turns a token.Token stream into an untyped ast.TranslationUnit.
package parser

import (
	"github.com/shipsimfan/acsl/acslerr"
	"github.com/shipsimfan/acsl/ast"
	"github.com/shipsimfan/acsl/token"
)

type parser struct {
	tokens []token.Token
	pos    int
}

// Parse consumes a full token stream (as produced by lexer.Lex, terminated
// by an EOF token) and produces an untyped translation unit.
func Parse(tokens []token.Token) (*ast.TranslationUnit, *acslerr.ParseError) {
	p := &parser{tokens: tokens}
	unit := &ast.TranslationUnit{}

	for p.current().Kind != token.EOF {
		decl, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		unit.Declarations = append(unit.Declarations, decl)
	}

	return unit, nil
}

func (p *parser) current() token.Token {
	return p.tokens[p.pos]
}

func (p *parser) advance() token.Token {
	t := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *parser) expect(kind token.Kind) (token.Token, *acslerr.ParseError) {
	t := p.current()
	if t.Kind == token.EOF && kind != token.EOF {
		return token.Token{}, acslerr.NewUnexpectedEOF(t.Pos)
	}
	if t.Kind != kind {
		return token.Token{}, acslerr.NewUnexpectedToken(t.String(), t.Pos)
	}
	return p.advance(), nil
}

func (p *parser) check(kind token.Kind) bool {
	return p.current().Kind == kind
}

func (p *parser) parseDeclaration() (ast.Declaration, *acslerr.ParseError) {
	switch p.current().Kind {
	case token.Fn:
		return p.parseFunction()
	case token.Struct:
		return p.parseStruct()
	case token.CBuffer:
		return p.parseConstantBuffer()
	case token.Texture:
		return p.parseTexture()
	case token.Type:
		return p.parseTypeAlias()
	case token.Const:
		return p.parseConstant()
	case token.EOF:
		return nil, acslerr.NewUnexpectedEOF(p.current().Pos)
	default:
		return nil, acslerr.NewUnexpectedToken(p.current().String(), p.current().Pos)
	}
}

// parseIdentName consumes an identifier token and returns its lexeme.
func (p *parser) parseIdentName() (string, acslerr.Position, *acslerr.ParseError) {
	t, err := p.expect(token.Ident)
	if err != nil {
		return "", acslerr.Position{}, err
	}
	return t.Lexeme, t.Pos, nil
}

func (p *parser) parseFunction() (*ast.Function, *acslerr.ParseError) {
	pos := p.current().Pos
	p.advance() // 'fn'

	name, _, err := p.parseIdentName()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.LeftParen); err != nil {
		return nil, err
	}
	var params []ast.Param
	if !p.check(token.RightParen) {
		for {
			param, err := p.parseParam()
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.check(token.Comma) {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(token.RightParen); err != nil {
		return nil, err
	}

	returnType := ""
	if p.check(token.RightArrow) {
		p.advance()
		returnType, _, err = p.parseIdentName()
		if err != nil {
			return nil, err
		}
	}

	body, err := p.parseCodeBlock(0)
	if err != nil {
		return nil, err
	}

	return &ast.Function{Name: name, Params: params, ReturnType: returnType, Body: body, Pos: pos}, nil
}

func (p *parser) parseParam() (ast.Param, *acslerr.ParseError) {
	pos := p.current().Pos
	mutable := false
	if p.check(token.Mut) {
		mutable = true
		p.advance()
	}
	name, _, err := p.parseIdentName()
	if err != nil {
		return ast.Param{}, err
	}
	if _, err := p.expect(token.Colon); err != nil {
		return ast.Param{}, err
	}
	typeName, _, err := p.parseIdentName()
	if err != nil {
		return ast.Param{}, err
	}
	return ast.Param{Name: name, Type: typeName, Mutable: mutable, Pos: pos}, nil
}

func (p *parser) parseStruct() (*ast.Struct, *acslerr.ParseError) {
	pos := p.current().Pos
	p.advance() // 'struct'

	name, _, err := p.parseIdentName()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.LeftBrace); err != nil {
		return nil, err
	}

	var members []ast.Member
	for !p.check(token.RightBrace) {
		member, err := p.parseMember()
		if err != nil {
			return nil, err
		}
		members = append(members, member)
		if p.check(token.Comma) {
			p.advance()
		} else {
			break
		}
	}
	if _, err := p.expect(token.RightBrace); err != nil {
		return nil, err
	}

	return &ast.Struct{Name: name, Members: members, Pos: pos}, nil
}

func (p *parser) parseMember() (ast.Member, *acslerr.ParseError) {
	pos := p.current().Pos
	name, _, err := p.parseIdentName()
	if err != nil {
		return ast.Member{}, err
	}
	if _, err := p.expect(token.Colon); err != nil {
		return ast.Member{}, err
	}
	// "texture" lexes as a keyword but is also a valid member type name.
	typeName := "texture"
	if p.check(token.Texture) {
		p.advance()
	} else if typeName, _, err = p.parseIdentName(); err != nil {
		return ast.Member{}, err
	}
	semantic := ""
	if p.check(token.Colon) {
		p.advance()
		semantic, _, err = p.parseIdentName()
		if err != nil {
			return ast.Member{}, err
		}
	}
	return ast.Member{Name: name, Type: typeName, Semantic: semantic, Pos: pos}, nil
}

func (p *parser) parseConstantBuffer() (*ast.ConstantBuffer, *acslerr.ParseError) {
	pos := p.current().Pos
	p.advance() // 'cbuffer'

	name, _, err := p.parseIdentName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon); err != nil {
		return nil, err
	}
	typeName, _, err := p.parseIdentName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon); err != nil {
		return nil, err
	}
	slotTok, err := p.expect(token.IntegerLiteral)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}

	return &ast.ConstantBuffer{Name: name, Slot: slotTok.Int, Type: typeName, Pos: pos}, nil
}

func (p *parser) parseTexture() (*ast.Texture, *acslerr.ParseError) {
	pos := p.current().Pos
	p.advance() // 'texture'

	elementType := "float4"
	if p.check(token.Less) {
		p.advance()
		var err *acslerr.ParseError
		elementType, _, err = p.parseIdentName()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Greater); err != nil {
			return nil, err
		}
	}

	name, _, err := p.parseIdentName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon); err != nil {
		return nil, err
	}
	slotTok, err := p.expect(token.IntegerLiteral)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}

	return &ast.Texture{Name: name, Slot: slotTok.Int, ElementType: elementType, Pos: pos}, nil
}

func (p *parser) parseTypeAlias() (*ast.TypeAlias, *acslerr.ParseError) {
	pos := p.current().Pos
	p.advance() // 'type'

	name, _, err := p.parseIdentName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Equal); err != nil {
		return nil, err
	}
	typeName, _, err := p.parseIdentName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}

	return &ast.TypeAlias{Name: name, Type: typeName, Pos: pos}, nil
}

func (p *parser) parseConstant() (*ast.Constant, *acslerr.ParseError) {
	pos := p.current().Pos
	p.advance() // 'const'

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

	return &ast.Constant{Name: name, Expr: expr, Pos: pos}, nil
}
