// Package annotated defines the typed (annotated) syntax tree: the output
// of semantic analysis and the sole input to both code generation backends.
// Every expression carries its computed types.Type; every statement its
// contextual types. Nothing in this package performs analysis itself — see
// the sema package for the analyzer that builds these trees.
package annotated

import (
	"github.com/shipsimfan/acsl/acslerr"
	"github.com/shipsimfan/acsl/types"
)

// CBufferSlots is the fixed capacity of the constant-buffer slot table.
const CBufferSlots = 32

// TextureSlots is the fixed capacity of the texture slot table.
const TextureSlots = 8

// DeclKind tags an entry in TranslationUnit.DeclOrder.
type DeclKind uint8

const (
	DeclStruct DeclKind = iota
	DeclCBuffer
	DeclTexture
	DeclFunction
	DeclConstant
)

// DeclRef names one declaration in source order. TypeAlias declarations are
// never recorded here: they are erased at emission (§4.7/§4.8).
type DeclRef struct {
	Kind DeclKind
	Name string
}

// Param is a fully typed function parameter.
type Param struct {
	Name    string
	Type    types.Type
	Mutable bool
}

// Function is a fully typed function declaration, including vertex_main and
// fragment_main.
type Function struct {
	Name       string
	Params     []Param
	ReturnType types.Type
	Body       *CodeBlock
	Pos        acslerr.Position
	// BuiltIn is true for entries pre-populated by the semantic analyzer
	// (scalar/vector constructors, sample_texture, ...); such functions
	// have no Body and are never part of DeclOrder.
	BuiltIn bool
}

// ConstantBuffer is a fully typed cbuffer declaration.
type ConstantBuffer struct {
	Name string
	Slot int
	Type types.Type
	Pos  acslerr.Position
}

// Texture is a fully typed texture declaration.
type Texture struct {
	Name        string
	Slot        int
	ElementType types.Type
	Pos         acslerr.Position
}

// Constant is a fully typed top-level constant.
type Constant struct {
	Name string
	Type types.Type
	Expr Expr
	Pos  acslerr.Position
}

// TranslationUnit is the complete annotated program: every declaration
// resolved and typed, plus the entry-point contract slots filled in by
// analysis.
type TranslationUnit struct {
	Functions  map[string]*Function
	UserStructs []*types.Struct

	CBuffers [CBufferSlots]*ConstantBuffer
	Textures [TextureSlots]*Texture

	Aliases   []*types.Alias
	Constants map[string]*Constant

	DeclOrder []DeclRef

	// VertexInputType and FragmentInputType are the entry-point contract
	// slots of §3. VertexInputType is filled by vertex_main;
	// FragmentInputType by whichever of vertex_main and fragment_main is
	// analyzed first, and checked against by the other.
	VertexInputType   *types.Struct
	FragmentInputType *types.Struct
}

// NewTranslationUnit returns an empty annotated unit ready for incremental
// construction by the semantic analyzer.
func NewTranslationUnit() *TranslationUnit {
	return &TranslationUnit{
		Functions: make(map[string]*Function),
		Constants: make(map[string]*Constant),
	}
}
