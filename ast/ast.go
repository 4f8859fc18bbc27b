// Package ast defines the untyped syntax tree produced by the parser: a
// TranslationUnit is an ordered sequence of Declarations, whose expressions
// and statements have not yet been resolved to types.
package ast

import "github.com/shipsimfan/acsl/acslerr"

// TranslationUnit is the parser's top-level output: an ordered sequence of
// declarations, in source order.
type TranslationUnit struct {
	Declarations []Declaration
}

// Declaration is a tagged variant: Function, Struct, ConstantBuffer,
// Texture, TypeAlias, or Constant.
type Declaration interface {
	declNode()
}

// Param is a function parameter: a name, a type name, and whether it was
// declared with `mut`.
type Param struct {
	Name    string
	Type    string
	Mutable bool
	Pos     acslerr.Position
}

// Function is a `fn` declaration.
type Function struct {
	Name       string
	Params     []Param
	ReturnType string // empty means no return-type annotation (void)
	Body       *CodeBlock
	Pos        acslerr.Position
}

func (*Function) declNode() {}

// Member is a struct member: a name, a type name, and an optional semantic
// tag (e.g. "SV_POSITION").
type Member struct {
	Name     string
	Type     string
	Semantic string // empty means no semantic
	Pos      acslerr.Position
}

// Struct is a `struct` declaration.
type Struct struct {
	Name    string
	Members []Member
	Pos     acslerr.Position
}

func (*Struct) declNode() {}

// ConstantBuffer is a `cbuffer` declaration.
type ConstantBuffer struct {
	Name string
	Slot uint64
	Type string
	Pos  acslerr.Position
}

func (*ConstantBuffer) declNode() {}

// Texture is a `texture` declaration.
type Texture struct {
	Name        string
	Slot        uint64
	ElementType string
	Pos         acslerr.Position
}

func (*Texture) declNode() {}

// TypeAlias is a `type` declaration.
type TypeAlias struct {
	Name string
	Type string
	Pos  acslerr.Position
}

func (*TypeAlias) declNode() {}

// Constant is a `const` declaration.
type Constant struct {
	Name string
	Expr Expr
	Pos  acslerr.Position
}

func (*Constant) declNode() {}
