package hlsl

import (
	"fmt"
	"strings"

	"github.com/shipsimfan/acsl/annotated"
	"github.com/shipsimfan/acsl/types"
)

// renderExpr emits expr as HLSL source. Expression emission is syntactic
// except for the Multiply mul()-vs-(*) choice, sample_texture, float
// literal formatting, and struct-creation constructor calls (§4.7).
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
		return fmt.Sprintf("%s(%s)", constructorName(e.StructType.Name), strings.Join(args, ", "))

	case *annotated.MemberAccess:
		return fmt.Sprintf("%s.%s", w.renderExpr(e.Expr), e.Name)

	case *annotated.Multiply:
		if isMatrixOperand(e.Left.Type()) && (isMatrixOperand(e.Right.Type()) || isVectorOperand(e.Right.Type())) {
			return fmt.Sprintf("mul(%s, %s)", w.renderExpr(e.Left), w.renderExpr(e.Right))
		}
		if isVectorOperand(e.Left.Type()) && isMatrixOperand(e.Right.Type()) {
			return fmt.Sprintf("mul(%s, %s)", w.renderExpr(e.Left), w.renderExpr(e.Right))
		}
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
	if e.Name == "sample_texture" {
		// Semantic analysis guarantees this argument is a direct reference
		// to a top-level texture declaration (checkTextureArgument in
		// sema/expr.go), so the rendered text is always that declared
		// name. Render it generically rather than asserting the concrete
		// node type, so an unexpected shape degrades to syntactically odd
		// output instead of panicking the backend.
		texName := w.renderExpr(e.Args[0])
		return fmt.Sprintf("%s.Sample(%s, %s)", texName, samplerStateName(texName), w.renderExpr(e.Args[1]))
	}

	args := make([]string, len(e.Args))
	for i, arg := range e.Args {
		args[i] = w.renderExpr(arg)
	}
	return fmt.Sprintf("%s(%s)", e.Name, strings.Join(args, ", "))
}

func isMatrixOperand(t types.Type) bool {
	p, ok := types.Underlying(t).(*types.Primitive)
	return ok && p.Kind == types.FloatMatrix
}

func isVectorOperand(t types.Type) bool {
	p, ok := types.Underlying(t).(*types.Primitive)
	return ok && p.Kind == types.FloatVec
}
