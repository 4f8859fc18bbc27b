// Package token defines the lexical tokens produced by the ACSL lexer and
// consumed by the parser.
package token

import "github.com/shipsimfan/acsl/acslerr"

// Kind represents the class of a token.
type Kind uint8

const (
	EOF Kind = iota

	// Literals and identifiers
	Ident
	FloatLiteral
	IntegerLiteral

	// Keywords
	Fn
	Struct
	CBuffer
	Texture
	Type
	Const
	Return
	Let
	Mut

	// Punctuation
	LeftParen    // (
	RightParen   // )
	LeftBrace    // {
	RightBrace   // }
	Less         // <
	Greater      // >
	Colon        // :
	Semicolon    // ;
	Comma        // ,
	Period       // .
	Equal        // =
	Star         // *
	Plus         // +
	Dash         // -
	RightArrow   // ->
)

var keywords = map[string]Kind{
	"fn":       Fn,
	"struct":   Struct,
	"cbuffer":  CBuffer,
	"texture":  Texture,
	"type":     Type,
	"const":    Const,
	"return":   Return,
	"let":      Let,
	"mut":      Mut,
}

// LookupIdent classifies an identifier lexeme as a keyword kind, or Ident if
// it isn't reserved.
func LookupIdent(lexeme string) Kind {
	if kind, ok := keywords[lexeme]; ok {
		return kind
	}
	return Ident
}

// String renders a kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case EOF:
		return "end of file"
	case Ident:
		return "identifier"
	case FloatLiteral:
		return "float literal"
	case IntegerLiteral:
		return "integer literal"
	case Fn:
		return "fn"
	case Struct:
		return "struct"
	case CBuffer:
		return "cbuffer"
	case Texture:
		return "texture"
	case Type:
		return "type"
	case Const:
		return "const"
	case Return:
		return "return"
	case Let:
		return "let"
	case Mut:
		return "mut"
	case LeftParen:
		return "("
	case RightParen:
		return ")"
	case LeftBrace:
		return "{"
	case RightBrace:
		return "}"
	case Less:
		return "<"
	case Greater:
		return ">"
	case Colon:
		return ":"
	case Semicolon:
		return ";"
	case Comma:
		return ","
	case Period:
		return "."
	case Equal:
		return "="
	case Star:
		return "*"
	case Plus:
		return "+"
	case Dash:
		return "-"
	case RightArrow:
		return "->"
	default:
		return "unknown"
	}
}

// Token is a single lexical token tagged with its source position.
type Token struct {
	Kind   Kind
	Lexeme string // raw identifier/keyword text, empty otherwise
	Float  float64
	Int    uint64
	Pos    acslerr.Position
}

// String renders the token's lexeme (or its kind, for punctuation/EOF) for
// diagnostics.
func (t Token) String() string {
	switch t.Kind {
	case Ident:
		return t.Lexeme
	case FloatLiteral:
		return formatFloat(t.Float)
	case IntegerLiteral:
		return formatUint(t.Int)
	default:
		return t.Kind.String()
	}
}
