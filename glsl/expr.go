package glsl

import (
	"fmt"
	"strings"

	"github.com/shipsimfan/acsl/annotated"
	"github.com/shipsimfan/acsl/types"
)

// renderExpr emits expr as GLSL source. Unlike HLSL, GLSL's `*` operator is
// itself matrix-aware, so Multiply always emits `(a * b)`. The other
// rewrites are float{1..4} constructors, sample_texture, float literal
// formatting, and struct creation emitted as a `Name(args)` constructor
// call (§4.8).
func (w *writer) renderExpr(expr annotated.Expr) string {
	switch e := expr.(type) {
	case *annotated.Variable:
		return e.Name

	case *annotated.FunctionCall:
		return w.renderFunctionCall(e)

	case *annotated.FloatLiteral:
		return types.FormatFloat(e.Value)

	case *annotated.StructCreation:
		args := make([]string, len(e.Inits))
		for i, init := range e.Inits {
			args[i] = w.renderExpr(init.Expr)
		}
		return fmt.Sprintf("%s(%s)", e.StructType.Name, strings.Join(args, ", "))

	case *annotated.MemberAccess:
		return fmt.Sprintf("%s.%s", w.renderExpr(e.Expr), e.Name)

	case *annotated.Multiply:
		return fmt.Sprintf("(%s * %s)", w.renderExpr(e.Left), w.renderExpr(e.Right))

	case *annotated.Add:
		return fmt.Sprintf("(%s + %s)", w.renderExpr(e.Left), w.renderExpr(e.Right))

	case *annotated.Subtract:
		return fmt.Sprintf("(%s - %s)", w.renderExpr(e.Left), w.renderExpr(e.Right))

	case *annotated.Empty:
		return ""

	default:
		return ""
	}
}

func (w *writer) renderFunctionCall(e *annotated.FunctionCall) string {
	name := e.Name
	switch name {
	case "sample_texture":
		return fmt.Sprintf("texture(%s, %s)", w.renderExpr(e.Args[0]), w.renderExpr(e.Args[1]))
	case "float1", "float2", "float3", "float4":
		name = "vec" + name[len("float"):]
	}

	args := make([]string, len(e.Args))
	for i, arg := range e.Args {
		args[i] = w.renderExpr(arg)
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(args, ", "))
}
