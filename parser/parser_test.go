package parser

import (
	"testing"

	"github.com/shipsimfan/acsl/ast"
	"github.com/shipsimfan/acsl/lexer"
)

func mustParse(t *testing.T, source string) *ast.TranslationUnit {
	t.Helper()
	tokens, lexErr := lexer.Lex(source)
	if lexErr != nil {
		t.Fatalf("lex error: %v", lexErr)
	}
	unit, err := Parse(tokens)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return unit
}

func TestParseStruct(t *testing.T) {
	unit := mustParse(t, `struct VIn { pos: float4 : SV_POSITION, uv: float2 }`)
	if len(unit.Declarations) != 1 {
		t.Fatalf("got %d declarations", len(unit.Declarations))
	}
	s, ok := unit.Declarations[0].(*ast.Struct)
	if !ok {
		t.Fatalf("got %T", unit.Declarations[0])
	}
	if s.Name != "VIn" || len(s.Members) != 2 {
		t.Fatalf("got %+v", s)
	}
	if s.Members[0].Semantic != "SV_POSITION" {
		t.Errorf("got semantic %q", s.Members[0].Semantic)
	}
	if s.Members[1].Semantic != "" {
		t.Errorf("got semantic %q, want none", s.Members[1].Semantic)
	}
}

func TestParseFunctionWithExpression(t *testing.T) {
	unit := mustParse(t, `
		fn vertex_main(v: VIn) -> VOut {
			return VOut { pos: (xforms.mvp * v.pos) + v.pos };
		}
	`)
	fn := unit.Declarations[0].(*ast.Function)
	if fn.Name != "vertex_main" || fn.ReturnType != "VOut" {
		t.Fatalf("got %+v", fn)
	}
	if len(fn.Params) != 1 || fn.Params[0].Name != "v" || fn.Params[0].Type != "VIn" {
		t.Fatalf("got params %+v", fn.Params)
	}

	ret := fn.Body.Statements[0].(*ast.Return)
	sc, ok := ret.Expr.(*ast.StructCreation)
	if !ok || sc.Name != "VOut" {
		t.Fatalf("got %T", ret.Expr)
	}

	add, ok := sc.Inits[0].Expr.(*ast.Add)
	if !ok {
		t.Fatalf("got %T, want Add", sc.Inits[0].Expr)
	}
	mul, ok := add.Left.(*ast.Multiply)
	if !ok {
		t.Fatalf("got %T, want Multiply", add.Left)
	}
	if _, ok := mul.Left.(*ast.MemberAccess); !ok {
		t.Fatalf("got %T, want MemberAccess", mul.Left)
	}
}

func TestParseCBufferAndTexture(t *testing.T) {
	unit := mustParse(t, `
		cbuffer xforms : Mats : 0;
		texture<float4> albedo : 0;
	`)
	cb := unit.Declarations[0].(*ast.ConstantBuffer)
	if cb.Name != "xforms" || cb.Type != "Mats" || cb.Slot != 0 {
		t.Fatalf("got %+v", cb)
	}
	tex := unit.Declarations[1].(*ast.Texture)
	if tex.Name != "albedo" || tex.ElementType != "float4" || tex.Slot != 0 {
		t.Fatalf("got %+v", tex)
	}
}

func TestParseLetAndAssignment(t *testing.T) {
	unit := mustParse(t, `
		fn f() {
			let mut x = 1.0;
			x = 2.0;
		}
	`)
	fn := unit.Declarations[0].(*ast.Function)
	def := fn.Body.Statements[0].(*ast.VariableDefinition)
	if def.Name != "x" || !def.Mutable {
		t.Fatalf("got %+v", def)
	}
	assign := fn.Body.Statements[1].(*ast.Assignment)
	if assign.Name != "x" {
		t.Fatalf("got %+v", assign)
	}
}

func TestParseUnexpectedTokenError(t *testing.T) {
	tokens, _ := lexer.Lex(`struct 123`)
	if _, err := Parse(tokens); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestParseUnexpectedEOFError(t *testing.T) {
	tokens, _ := lexer.Lex(`struct VIn {`)
	if _, err := Parse(tokens); err == nil {
		t.Fatal("expected parse error")
	}
}
