// Package types implements the ACSL type lattice: primitives, user structs
// compared by identity, and transparent aliases, plus the operator algebra
// (sum_type, product_type, member_type) of §4.4.
package types

import "fmt"

// Type is a tagged variant: *Primitive, *Struct, or *Alias.
type Type interface {
	typeNode()
	String() string
}

// PrimitiveKind enumerates the primitive type families.
type PrimitiveKind uint8

const (
	Void PrimitiveKind = iota
	Float
	FloatVec
	FloatMatrix
	Uint
	TextureKind
)

// Primitive is a scalar, vector, matrix, the uint type, the texture handle
// type, or void. Dims are only meaningful for FloatVec (Rows holds N) and
// FloatMatrix (Rows, Cols).
type Primitive struct {
	Kind PrimitiveKind
	Rows int
	Cols int
}

func (*Primitive) typeNode() {}

func (p *Primitive) String() string {
	switch p.Kind {
	case Void:
		return "void"
	case Float:
		return "float"
	case FloatVec:
		return fmt.Sprintf("float%d", p.Rows)
	case FloatMatrix:
		return fmt.Sprintf("float%dx%d", p.Rows, p.Cols)
	case Uint:
		return "uint"
	case TextureKind:
		return "texture"
	default:
		return "?"
	}
}

// Canonical primitive singletons.
var (
	TVoid    = &Primitive{Kind: Void}
	TFloat   = &Primitive{Kind: Float}
	TUint    = &Primitive{Kind: Uint}
	TTexture = &Primitive{Kind: TextureKind}
)

// FloatVecN returns the canonical FloatVec(n) type, n in 1..4.
func FloatVecN(n int) *Primitive { return &Primitive{Kind: FloatVec, Rows: n} }

// FloatMatrixRC returns the canonical FloatMatrix(rows, cols) type.
func FloatMatrixRC(rows, cols int) *Primitive { return &Primitive{Kind: FloatMatrix, Rows: rows, Cols: cols} }

// StructMember is one field of a user struct: a name, a type, and an
// optional semantic tag.
type StructMember struct {
	Name     string
	Type     Type
	Semantic string
}

// Struct is a user-defined struct type. Two structs with identical shapes
// are distinct types: equality is by pointer identity, never by contents.
// Struct values are immutable once constructed and shared by reference
// wherever they are used as a type.
type Struct struct {
	Name    string
	Members []StructMember
}

func (*Struct) typeNode() {}

func (s *Struct) String() string { return s.Name }

// Member looks up a member by name, returning a zero StructMember and false
// if absent.
func (s *Struct) Member(name string) (StructMember, bool) {
	for _, m := range s.Members {
		if m.Name == name {
			return m, true
		}
	}
	return StructMember{}, false
}

// HasSemantics reports whether every member carries a semantic tag. Structs
// must have either all members tagged or none (§4.6).
func (s *Struct) HasSemantics() bool {
	for _, m := range s.Members {
		if m.Semantic == "" {
			return false
		}
	}
	return len(s.Members) > 0
}

// SemanticMember finds the (unique) member tagged with the given semantic.
func (s *Struct) SemanticMember(semantic string) (StructMember, bool) {
	for _, m := range s.Members {
		if m.Semantic == semantic {
			return m, true
		}
	}
	return StructMember{}, false
}

// Alias is a transparent type alias: it equals its underlying type
// everywhere except textual rendering, where its own name is preserved for
// diagnostics.
type Alias struct {
	Name  string
	Inner Type
}

func (*Alias) typeNode() {}

func (a *Alias) String() string { return a.Name }

// Underlying unwraps a chain of aliases down to the first non-alias type.
func Underlying(t Type) Type {
	for {
		a, ok := t.(*Alias)
		if !ok {
			return t
		}
		t = a.Inner
	}
}

// Equal reports structural equality for primitives, identity equality for
// structs, and is alias-transparent on both sides.
func Equal(a, b Type) bool {
	a, b = Underlying(a), Underlying(b)

	switch av := a.(type) {
	case *Primitive:
		bv, ok := b.(*Primitive)
		return ok && av.Kind == bv.Kind && av.Rows == bv.Rows && av.Cols == bv.Cols
	case *Struct:
		bv, ok := b.(*Struct)
		return ok && av == bv
	default:
		return false
	}
}

// IsFloat reports whether t (alias-unwrapped) is the scalar Float type.
func IsFloat(t Type) bool {
	p, ok := Underlying(t).(*Primitive)
	return ok && p.Kind == Float
}

// IsStruct reports whether t (alias-unwrapped) is a user struct.
func IsStruct(t Type) bool {
	_, ok := Underlying(t).(*Struct)
	return ok
}
