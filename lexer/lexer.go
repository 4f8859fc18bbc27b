// Package lexer tokenizes ACSL source text into a token.Token stream.
package lexer

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/shipsimfan/acsl/acslerr"
	"github.com/shipsimfan/acsl/token"
)

// Lex tokenizes source in full, returning the token stream terminated by an
// EOF token, or the first lexical error encountered.
func Lex(source string) ([]token.Token, *acslerr.LexError) {
	s := newStream(source)
	tokens := make([]token.Token, 0, len(source)/4+1)

	for {
		tok, err := nextToken(s)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, nil
		}
	}
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// nextToken implements the single-entry next_token(stream) of §4.2.
func nextToken(s *stream) (token.Token, *acslerr.LexError) {
	skipWhitespaceAndComments(s)

	pos := s.position()
	c := s.currentChar()

	switch {
	case c == eof:
		return token.Token{Kind: token.EOF, Pos: pos}, nil

	case isIdentStart(c):
		return lexIdentifier(s, pos), nil

	case unicode.IsDigit(c):
		return lexNumber(s, pos)

	case c == '.' && unicode.IsDigit(s.peekChar()):
		s.advance() // consume '.'
		return lexFractional(s, pos, "0")

	default:
		return lexPunctuation(s, pos)
	}
}

func skipWhitespaceAndComments(s *stream) {
	for {
		c := s.currentChar()
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			s.advance()
		case c == '/' && s.peekChar() == '/':
			for s.currentChar() != '\n' && s.currentChar() != eof {
				s.advance()
			}
		default:
			return
		}
	}
}

func lexIdentifier(s *stream, pos acslerr.Position) token.Token {
	var b strings.Builder
	for isIdentPart(s.currentChar()) {
		b.WriteRune(s.advance())
	}
	lexeme := b.String()
	kind := token.LookupIdent(lexeme)
	if kind == token.Ident {
		return token.Token{Kind: token.Ident, Lexeme: lexeme, Pos: pos}
	}
	return token.Token{Kind: kind, Lexeme: lexeme, Pos: pos}
}

func lexNumber(s *stream, pos acslerr.Position) (token.Token, *acslerr.LexError) {
	var b strings.Builder
	for unicode.IsDigit(s.currentChar()) {
		b.WriteRune(s.advance())
	}

	if s.currentChar() == '.' && unicode.IsDigit(s.peekChar()) {
		s.advance() // consume '.'
		return lexFractional(s, pos, b.String())
	}
	if s.currentChar() == 'e' || s.currentChar() == 'E' {
		return lexExponent(s, pos, b.String(), "0")
	}

	v, _ := strconv.ParseUint(b.String(), 10, 64)
	return token.Token{Kind: token.IntegerLiteral, Int: v, Pos: pos}, nil
}

func lexFractional(s *stream, pos acslerr.Position, whole string) (token.Token, *acslerr.LexError) {
	var frac strings.Builder
	for unicode.IsDigit(s.currentChar()) {
		frac.WriteRune(s.advance())
	}
	if frac.Len() == 0 {
		frac.WriteByte('0')
	}

	if s.currentChar() == 'e' || s.currentChar() == 'E' {
		return lexExponent(s, pos, whole, frac.String())
	}

	v, _ := strconv.ParseFloat(whole+"."+frac.String(), 64)
	return token.Token{Kind: token.FloatLiteral, Float: v, Pos: pos}, nil
}

func lexExponent(s *stream, pos acslerr.Position, whole, frac string) (token.Token, *acslerr.LexError) {
	s.advance() // consume 'e'/'E'

	sign := ""
	if s.currentChar() == '+' || s.currentChar() == '-' {
		sign = string(s.advance())
	}

	var exp strings.Builder
	for unicode.IsDigit(s.currentChar()) {
		exp.WriteRune(s.advance())
	}
	if exp.Len() == 0 {
		return token.Token{}, acslerr.NewNoExponentialDigits(pos)
	}

	v, _ := strconv.ParseFloat(whole+"."+frac+"e"+sign+exp.String(), 64)
	return token.Token{Kind: token.FloatLiteral, Float: v, Pos: pos}, nil
}

func lexPunctuation(s *stream, pos acslerr.Position) (token.Token, *acslerr.LexError) {
	c := s.advance()

	simple := func(k token.Kind) (token.Token, *acslerr.LexError) {
		return token.Token{Kind: k, Pos: pos}, nil
	}

	switch c {
	case '(':
		return simple(token.LeftParen)
	case ')':
		return simple(token.RightParen)
	case '{':
		return simple(token.LeftBrace)
	case '}':
		return simple(token.RightBrace)
	case '<':
		return simple(token.Less)
	case '>':
		return simple(token.Greater)
	case ':':
		return simple(token.Colon)
	case ';':
		return simple(token.Semicolon)
	case ',':
		return simple(token.Comma)
	case '.':
		return simple(token.Period)
	case '=':
		return simple(token.Equal)
	case '*':
		return simple(token.Star)
	case '+':
		return simple(token.Plus)
	case '-':
		if s.currentChar() == '>' {
			s.advance()
			return token.Token{Kind: token.RightArrow, Pos: pos}, nil
		}
		return simple(token.Dash)
	default:
		return token.Token{}, acslerr.NewUnknownCharacter(c, pos)
	}
}
