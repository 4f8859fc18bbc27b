package sema

import (
	"testing"

	"github.com/shipsimfan/acsl/acslerr"
	"github.com/shipsimfan/acsl/annotated"
	"github.com/shipsimfan/acsl/lexer"
	"github.com/shipsimfan/acsl/parser"
)

func mustAnalyze(t *testing.T, source string) *annotated.TranslationUnit {
	t.Helper()
	tokens, lexErr := lexer.Lex(source)
	if lexErr != nil {
		t.Fatalf("lex error: %v", lexErr)
	}
	tree, parseErr := parser.Parse(tokens)
	if parseErr != nil {
		t.Fatalf("parse error: %v", parseErr)
	}
	unit, semErr := Analyze(tree)
	if semErr != nil {
		t.Fatalf("semantic error: %v", semErr)
	}
	return unit
}

func analyzeExpectErr(t *testing.T, source string) *acslerr.SemanticError {
	t.Helper()
	tokens, lexErr := lexer.Lex(source)
	if lexErr != nil {
		t.Fatalf("lex error: %v", lexErr)
	}
	tree, parseErr := parser.Parse(tokens)
	if parseErr != nil {
		t.Fatalf("parse error: %v", parseErr)
	}
	_, semErr := Analyze(tree)
	if semErr == nil {
		t.Fatal("expected a semantic error, got none")
	}
	return semErr
}

const minimalShader = `
struct VIn  { pos: float4 : SV_POSITION }
struct VOut { pos: float4 : SV_POSITION }
fn vertex_main(v: VIn)   -> VOut    { return VOut { pos: v.pos }; }
fn fragment_main(p: VOut) -> float4 { return p.pos; }
`

func TestAnalyzeMinimalShaderSucceeds(t *testing.T) {
	unit := mustAnalyze(t, minimalShader)
	if unit.VertexInputType == nil || unit.FragmentInputType == nil {
		t.Fatal("expected VertexInputType and FragmentInputType to be set")
	}
	if unit.VertexInputType.Name != "VIn" {
		t.Errorf("got VertexInputType %q", unit.VertexInputType.Name)
	}
	if unit.FragmentInputType.Name != "VOut" {
		t.Errorf("got FragmentInputType %q", unit.FragmentInputType.Name)
	}
	if _, ok := unit.Functions["vertex_main"]; !ok {
		t.Error("vertex_main missing from Functions")
	}
	if _, ok := unit.Functions["fragment_main"]; !ok {
		t.Error("fragment_main missing from Functions")
	}
}

func TestEntryPointsAnalyzedInEitherOrder(t *testing.T) {
	const reordered = `
struct VIn  { pos: float4 : SV_POSITION }
struct VOut { pos: float4 : SV_POSITION }
fn fragment_main(p: VOut) -> float4 { return p.pos; }
fn vertex_main(v: VIn)   -> VOut    { return VOut { pos: v.pos }; }
`
	unit := mustAnalyze(t, reordered)
	if unit.FragmentInputType.Name != "VOut" {
		t.Errorf("got FragmentInputType %q", unit.FragmentInputType.Name)
	}
}

func TestMissingVertexMainRejected(t *testing.T) {
	const source = `
struct VOut { pos: float4 : SV_POSITION }
fn fragment_main(p: VOut) -> float4 { return p.pos; }
`
	err := analyzeExpectErr(t, source)
	if err.Kind != acslerr.NoVertexMain {
		t.Errorf("got kind %v", err.Kind)
	}
}

func TestMissingFragmentMainRejected(t *testing.T) {
	const source = `
struct VIn { pos: float4 : SV_POSITION }
fn vertex_main(v: VIn) -> VIn { return VIn { pos: v.pos }; }
`
	err := analyzeExpectErr(t, source)
	if err.Kind != acslerr.NoFragmentMain {
		t.Errorf("got kind %v", err.Kind)
	}
}

func TestFragmentMainParameterTypeMismatch(t *testing.T) {
	const source = `
struct A { pos: float4 : SV_POSITION }
struct B { pos: float4 : SV_POSITION }
fn vertex_main(v: A) -> A { return A { pos: v.pos }; }
fn fragment_main(p: B) -> float4 { return p.pos; }
`
	err := analyzeExpectErr(t, source)
	if err.Kind != acslerr.FragmentMainParameterTypeMismatch {
		t.Errorf("got kind %v", err.Kind)
	}
}

func TestVertexMainMissingPositionSemantic(t *testing.T) {
	const source = `
struct VIn  { pos: float4 : SV_POSITION }
struct VOut { pos: float4 }
fn vertex_main(v: VIn) -> VOut { return VOut { pos: v.pos }; }
fn fragment_main(p: VOut) -> float4 { return p.pos; }
`
	err := analyzeExpectErr(t, source)
	if err.Kind != acslerr.InvalidVertexMainReturnType {
		t.Errorf("got kind %v", err.Kind)
	}
}

func TestReservedIdentifierPrefixRejected(t *testing.T) {
	const source = minimalShader + `
fn helper() { let acsl_x = 1.0; }
`
	err := analyzeExpectErr(t, source)
	if err.Kind != acslerr.InvalidVariableName {
		t.Errorf("got kind %v", err.Kind)
	}
}

func TestReservedGLPrefixRejected(t *testing.T) {
	const source = minimalShader + `
fn helper() { let gl_x = 1.0; }
`
	err := analyzeExpectErr(t, source)
	if err.Kind != acslerr.InvalidVariableName {
		t.Errorf("got kind %v", err.Kind)
	}
}

func TestDuplicateTopLevelNameRejected(t *testing.T) {
	const source = minimalShader + `
struct VIn { other: float }
`
	err := analyzeExpectErr(t, source)
	if err.Kind != acslerr.MultipleDefinition {
		t.Errorf("got kind %v", err.Kind)
	}
}

func TestCBufferSlotOutOfRangeRejected(t *testing.T) {
	const source = minimalShader + `
struct Mats { mvp: float4x4 }
cbuffer xforms : Mats : 32;
`
	err := analyzeExpectErr(t, source)
	if err.Kind != acslerr.SlotOutOfRange {
		t.Errorf("got kind %v", err.Kind)
	}
}

func TestTextureSlotOutOfRangeRejected(t *testing.T) {
	const source = minimalShader + `
texture<float4> tooMany : 8;
`
	err := analyzeExpectErr(t, source)
	if err.Kind != acslerr.SlotOutOfRange {
		t.Errorf("got kind %v", err.Kind)
	}
}

func TestAssignmentToImmutableRejected(t *testing.T) {
	const source = minimalShader + `
fn helper() {
	let x = 1.0;
	x = 2.0;
}
`
	err := analyzeExpectErr(t, source)
	if err.Kind != acslerr.AssignmentToImmutable {
		t.Errorf("got kind %v", err.Kind)
	}
}

func TestUnknownVariableRejected(t *testing.T) {
	const source = minimalShader + `
fn helper() -> float { return missing; }
`
	err := analyzeExpectErr(t, source)
	if err.Kind != acslerr.UnknownVariable {
		t.Errorf("got kind %v", err.Kind)
	}
}

func TestScopeGetVariableWalksParentChain(t *testing.T) {
	global := NewGlobalScope()
	if err := global.DefineVariable("g", nil, false, acslerr.Position{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	child := global.NewChild()
	if _, _, err := child.GetVariable("g", acslerr.Position{}); err != nil {
		t.Errorf("expected child to resolve parent-defined variable, got %v", err)
	}
	if err := child.DefineVariable("c", nil, true, acslerr.Position{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := global.GetVariable("c", acslerr.Position{}); err == nil {
		t.Error("expected parent scope NOT to see child-defined variable")
	}
}

func TestScopeRejectsRedefinitionInSameScope(t *testing.T) {
	s := NewGlobalScope()
	if err := s.DefineVariable("x", nil, false, acslerr.Position{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.DefineVariable("x", nil, false, acslerr.Position{}); err == nil {
		t.Fatal("expected MultipleDefinition on redefinition")
	} else if err.Kind != acslerr.MultipleDefinition {
		t.Errorf("got kind %v", err.Kind)
	}
}

func TestSampleTextureRejectsNonDeclarationArgument(t *testing.T) {
	const source = `
struct VIn  { pos: float4 : SV_POSITION }
struct VOut { pos: float4 : SV_POSITION, uv: float2 : TEXCOORD0 }
struct Holder { tex: texture }
texture<float4> albedo : 0;
fn vertex_main(v: VIn) -> VOut { return VOut { pos: v.pos, uv: float2(0.0, 0.0) }; }
fn fragment_main(p: VOut) -> float4 {
	let h = Holder { tex: albedo };
	return sample_texture(h.tex, p.uv);
}
`
	err := analyzeExpectErr(t, source)
	if err.Kind != acslerr.InvalidTextureArgument {
		t.Errorf("got kind %v", err.Kind)
	}
}

func TestSampleTextureAcceptsDirectDeclarationReference(t *testing.T) {
	const source = `
struct VIn  { pos: float4 : SV_POSITION }
struct VOut { pos: float4 : SV_POSITION, uv: float2 : TEXCOORD0 }
texture<float4> albedo : 0;
fn vertex_main(v: VIn) -> VOut { return VOut { pos: v.pos, uv: float2(0.0, 0.0) }; }
fn fragment_main(p: VOut) -> float4 { return sample_texture(albedo, p.uv); }
`
	mustAnalyze(t, source)
}

func TestBuiltinFunctionCallResolves(t *testing.T) {
	const source = minimalShader + `
fn helper() -> float4 { return float4(1.0, 1.0, 1.0, 1.0); }
`
	mustAnalyze(t, source)
}
