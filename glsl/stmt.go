package glsl

import (
	"github.com/shipsimfan/acsl/annotated"
	"github.com/shipsimfan/acsl/types"
)

// entryContext carries which entry point (if any) a statement is being
// emitted inside, and the reserved name gl_Position is assigned from — an
// explicit record passed down the walk rather than hidden writer state
// (§9).
type entryContext struct {
	inVertexMain   bool
	inFragmentMain bool
	positionMember string
}

func (w *writer) writeCodeBlock(target *stream, block *annotated.CodeBlock, ctx entryContext) error {
	for _, stmt := range block.Statements {
		if err := w.writeStmt(target, stmt, ctx); err != nil {
			return err
		}
	}
	return nil
}

func (w *writer) writeStmt(target *stream, stmt annotated.Stmt, ctx entryContext) error {
	switch s := stmt.(type) {
	case *annotated.Return:
		return w.writeReturn(target, s, ctx)
	case *annotated.VariableDefinition:
		target.writeLine("%s %s = %s;", typeName(s.Expr.Type()), s.Name, w.renderExpr(s.Expr))
	case *annotated.Assignment:
		target.writeLine("%s = %s;", s.Name, w.renderExpr(s.Expr))
	}
	return nil
}

func (w *writer) writeReturn(target *stream, s *annotated.Return, ctx entryContext) error {
	switch {
	case ctx.inVertexMain:
		structType := types.Underlying(s.Expr.Type()).(*types.Struct)
		const tmp = "acsl_return_value"
		target.writeLine("%s %s = %s;", typeName(s.Expr.Type()), tmp, w.renderExpr(s.Expr))
		for _, m := range structType.Members {
			target.writeLine("%s = %s.%s;", pixelInputName(m.Name), tmp, m.Name)
		}
		target.writeLine("gl_Position = %s;", pixelInputName(ctx.positionMember))
		target.writeLine("return;")

	case ctx.inFragmentMain:
		target.writeLine("%s = %s;", fragmentColorName, w.renderExpr(s.Expr))
		target.writeLine("return;")

	default:
		if _, ok := s.Expr.(*annotated.Empty); ok {
			target.writeLine("return;")
		} else {
			target.writeLine("return %s;", w.renderExpr(s.Expr))
		}
	}
	return nil
}
