package ast

import "github.com/shipsimfan/acsl/acslerr"

// Expr is a tagged variant of the expression tree: Variable, FunctionCall,
// FloatLiteral, StructCreation, MemberAccess, Multiply, Add, Subtract, or
// Empty.
type Expr interface {
	exprNode()
	Position() acslerr.Position
}

// Variable references a named value in scope.
type Variable struct {
	Name string
	Pos  acslerr.Position
}

func (*Variable) exprNode()                   {}
func (e *Variable) Position() acslerr.Position { return e.Pos }

// FunctionCall invokes a user or built-in function by name.
type FunctionCall struct {
	Name string
	Args []Expr
	Pos  acslerr.Position
}

func (*FunctionCall) exprNode()                   {}
func (e *FunctionCall) Position() acslerr.Position { return e.Pos }

// FloatLiteral is a literal float64 value.
type FloatLiteral struct {
	Value float64
	Pos   acslerr.Position
}

func (*FloatLiteral) exprNode()                   {}
func (e *FloatLiteral) Position() acslerr.Position { return e.Pos }

// StructInit pairs a member name with its initializing expression, as used
// inside a StructCreation.
type StructInit struct {
	Name string
	Expr Expr
}

// StructCreation constructs a named struct from per-member initializers.
type StructCreation struct {
	Name  string
	Inits []StructInit
	Pos   acslerr.Position
}

func (*StructCreation) exprNode()                   {}
func (e *StructCreation) Position() acslerr.Position { return e.Pos }

// MemberAccess projects a named member out of an expression's value.
type MemberAccess struct {
	Expr Expr
	Name string
	Pos  acslerr.Position
}

func (*MemberAccess) exprNode()                   {}
func (e *MemberAccess) Position() acslerr.Position { return e.Pos }

// Multiply is the `*` binary operator.
type Multiply struct {
	Left, Right Expr
	Pos         acslerr.Position
}

func (*Multiply) exprNode()                   {}
func (e *Multiply) Position() acslerr.Position { return e.Pos }

// Add is the `+` binary operator.
type Add struct {
	Left, Right Expr
	Pos         acslerr.Position
}

func (*Add) exprNode()                   {}
func (e *Add) Position() acslerr.Position { return e.Pos }

// Subtract is the `-` binary operator.
type Subtract struct {
	Left, Right Expr
	Pos         acslerr.Position
}

func (*Subtract) exprNode()                   {}
func (e *Subtract) Position() acslerr.Position { return e.Pos }

// Empty is the absence of an expression (e.g. a bodiless return).
type Empty struct {
	Pos acslerr.Position
}

func (*Empty) exprNode()                   {}
func (e *Empty) Position() acslerr.Position { return e.Pos }
