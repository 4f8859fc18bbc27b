package annotated

import (
	"github.com/shipsimfan/acsl/acslerr"
	"github.com/shipsimfan/acsl/types"
)

// Expr is a fully typed expression node: every variant exposes its computed
// types.Type alongside the original source position.
type Expr interface {
	exprNode()
	Type() types.Type
	Position() acslerr.Position
}

// Variable references a resolved binding in scope.
type Variable struct {
	Name string
	T    types.Type
	Pos  acslerr.Position
}

func (*Variable) exprNode()                   {}
func (e *Variable) Type() types.Type           { return e.T }
func (e *Variable) Position() acslerr.Position { return e.Pos }

// FunctionCall invokes a resolved user or built-in function.
type FunctionCall struct {
	Name string
	Args []Expr
	T    types.Type
	Pos  acslerr.Position
}

func (*FunctionCall) exprNode()                   {}
func (e *FunctionCall) Type() types.Type           { return e.T }
func (e *FunctionCall) Position() acslerr.Position { return e.Pos }

// FloatLiteral is always typed Float.
type FloatLiteral struct {
	Value float64
	Pos   acslerr.Position
}

func (*FloatLiteral) exprNode()                   {}
func (e *FloatLiteral) Type() types.Type           { return types.TFloat }
func (e *FloatLiteral) Position() acslerr.Position { return e.Pos }

// StructInit pairs a resolved member with its initializing expression.
type StructInit struct {
	Name string
	Expr Expr
}

// StructCreation constructs a resolved user struct from per-member
// initializers, in the struct's declared member order.
type StructCreation struct {
	StructType *types.Struct
	Inits      []StructInit
	Pos        acslerr.Position
}

func (*StructCreation) exprNode()                   {}
func (e *StructCreation) Type() types.Type           { return e.StructType }
func (e *StructCreation) Position() acslerr.Position { return e.Pos }

// MemberAccess projects a named, resolved member out of Expr's value.
type MemberAccess struct {
	Expr Expr
	Name string
	T    types.Type
	Pos  acslerr.Position
}

func (*MemberAccess) exprNode()                   {}
func (e *MemberAccess) Type() types.Type           { return e.T }
func (e *MemberAccess) Position() acslerr.Position { return e.Pos }

// Multiply is `*`, typed via types.ProductType.
type Multiply struct {
	Left, Right Expr
	T           types.Type
	Pos         acslerr.Position
}

func (*Multiply) exprNode()                   {}
func (e *Multiply) Type() types.Type           { return e.T }
func (e *Multiply) Position() acslerr.Position { return e.Pos }

// Add is `+`, typed via types.SumType.
type Add struct {
	Left, Right Expr
	T           types.Type
	Pos         acslerr.Position
}

func (*Add) exprNode()                   {}
func (e *Add) Type() types.Type           { return e.T }
func (e *Add) Position() acslerr.Position { return e.Pos }

// Subtract is `-`, typed via types.SumType.
type Subtract struct {
	Left, Right Expr
	T           types.Type
	Pos         acslerr.Position
}

func (*Subtract) exprNode()                   {}
func (e *Subtract) Type() types.Type           { return e.T }
func (e *Subtract) Position() acslerr.Position { return e.Pos }

// Empty is always typed Void.
type Empty struct {
	Pos acslerr.Position
}

func (*Empty) exprNode()                   {}
func (e *Empty) Type() types.Type           { return types.TVoid }
func (e *Empty) Position() acslerr.Position { return e.Pos }
