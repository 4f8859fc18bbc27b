package hlsl

import "github.com/shipsimfan/acsl/annotated"

func (w *writer) writeCodeBlock(block *annotated.CodeBlock) error {
	for _, stmt := range block.Statements {
		if err := w.writeStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (w *writer) writeStmt(stmt annotated.Stmt) error {
	switch s := stmt.(type) {
	case *annotated.Return:
		if _, ok := s.Expr.(*annotated.Empty); ok {
			w.writeLine("return;")
			return nil
		}
		w.writeLine("return %s;", w.renderExpr(s.Expr))
	case *annotated.VariableDefinition:
		w.writeLine("%s %s = %s;", typeName(s.Expr.Type()), s.Name, w.renderExpr(s.Expr))
	case *annotated.Assignment:
		w.writeLine("%s = %s;", s.Name, w.renderExpr(s.Expr))
	}
	return nil
}
