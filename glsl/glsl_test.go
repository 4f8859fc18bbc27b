package glsl

import (
	"strings"
	"testing"

	"github.com/shipsimfan/acsl/annotated"
	"github.com/shipsimfan/acsl/lexer"
	"github.com/shipsimfan/acsl/parser"
	"github.com/shipsimfan/acsl/sema"
)

func mustAnnotate(t *testing.T, source string) *annotated.TranslationUnit {
	t.Helper()
	tokens, lexErr := lexer.Lex(source)
	if lexErr != nil {
		t.Fatalf("lex error: %v", lexErr)
	}
	tree, parseErr := parser.Parse(tokens)
	if parseErr != nil {
		t.Fatalf("parse error: %v", parseErr)
	}
	unit, semErr := sema.Analyze(tree)
	if semErr != nil {
		t.Fatalf("semantic error: %v", semErr)
	}
	return unit
}

const minimalShader = `
struct VIn  { pos: float4 : SV_POSITION }
struct VOut { pos: float4 : SV_POSITION }
fn vertex_main(v: VIn)   -> VOut    { return VOut { pos: v.pos }; }
fn fragment_main(p: VOut) -> float4 { return p.pos; }
`

func TestGeneratePerMemberIORewrite(t *testing.T) {
	vertex, fragment, err := Generate(mustAnnotate(t, minimalShader))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	const header = "#version 430 core\n\n// Generated from Alexandria Common Shader Language\n\n"
	if !strings.HasPrefix(vertex, header) {
		t.Errorf("missing mandatory vertex output header:\n%s", vertex)
	}
	if !strings.HasPrefix(fragment, header) {
		t.Errorf("missing mandatory fragment output header:\n%s", fragment)
	}
	if !strings.Contains(vertex, "layout(location = 0) in vec4 acsl_vertex_input_pos;") {
		t.Errorf("missing vertex input decl:\n%s", vertex)
	}
	if !strings.Contains(vertex, "out vec4 acsl_pixel_input_pos;") {
		t.Errorf("missing vertex varying out decl:\n%s", vertex)
	}
	if !strings.Contains(fragment, "in vec4 acsl_pixel_input_pos;") {
		t.Errorf("missing fragment varying in decl:\n%s", fragment)
	}
	if !strings.Contains(vertex, "gl_Position = acsl_pixel_input_pos;") {
		t.Errorf("missing gl_Position synthesis:\n%s", vertex)
	}
	if !strings.Contains(fragment, "out vec4 acsl_fragment_color;") {
		t.Errorf("missing fragment color output:\n%s", fragment)
	}
}

func TestGenerateVertexMainRewrittenToVoidMain(t *testing.T) {
	vertex, _, err := Generate(mustAnnotate(t, minimalShader))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(vertex, "void main() {") {
		t.Errorf("expected void main():\n%s", vertex)
	}
	if !strings.Contains(vertex, "VIn v = VIn(acsl_vertex_input_pos);") {
		t.Errorf("expected synthesized input struct construction:\n%s", vertex)
	}
}

func TestGenerateMatrixMultiplyStaysInfix(t *testing.T) {
	const source = `
struct VIn  { pos: float4 : SV_POSITION }
struct VOut { pos: float4 : SV_POSITION }
struct Mats { mvp: float4x4 }
cbuffer xforms : Mats : 0;
fn vertex_main(v: VIn) -> VOut { return VOut { pos: (xforms.mvp * v.pos) }; }
fn fragment_main(p: VOut) -> float4 { return p.pos; }
`
	vertex, _, err := Generate(mustAnnotate(t, source))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(vertex, "(xforms.mvp * v.pos)") {
		t.Errorf("expected plain infix multiply:\n%s", vertex)
	}
	if !strings.Contains(vertex, "mat4x4 mvp;") {
		t.Errorf("expected GLSL column-major matrix spelling matCxR:\n%s", vertex)
	}
}

func TestGenerateTextureSamplingUsesTextureBuiltin(t *testing.T) {
	const source = `
struct VIn  { pos: float4 : SV_POSITION }
struct VOut { pos: float4 : SV_POSITION, uv: float2 : TEXCOORD0 }
texture<float4> albedo : 0;
fn vertex_main(v: VIn) -> VOut { return VOut { pos: v.pos, uv: float2(0.0, 0.0) }; }
fn fragment_main(p: VOut) -> float4 { return sample_texture(albedo, p.uv); }
`
	_, fragment, err := Generate(mustAnnotate(t, source))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(fragment, "texture(albedo, p.uv)") {
		t.Errorf("missing texture() call:\n%s", fragment)
	}
	if !strings.Contains(fragment, "layout(location = 32) uniform sampler2D albedo;") {
		t.Errorf("missing sampler uniform decl at texture location base:\n%s", fragment)
	}
}

func TestGenerateFragmentMainAssignsFragmentColor(t *testing.T) {
	_, fragment, err := Generate(mustAnnotate(t, minimalShader))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(fragment, "acsl_fragment_color = p.pos;") {
		t.Errorf("expected fragment color assignment:\n%s", fragment)
	}
}

func TestGenerateUserFunctionEmittedIntoBothUnits(t *testing.T) {
	const source = `
struct VIn  { pos: float4 : SV_POSITION }
struct VOut { pos: float4 : SV_POSITION }
fn scale(v: float) -> float { return (v * 2.0); }
fn vertex_main(v: VIn) -> VOut { return VOut { pos: v.pos }; }
fn fragment_main(p: VOut) -> float4 { return p.pos; }
`
	vertex, fragment, err := Generate(mustAnnotate(t, source))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(vertex, "float scale(float v) {") {
		t.Errorf("expected helper function in vertex unit:\n%s", vertex)
	}
	if !strings.Contains(fragment, "float scale(float v) {") {
		t.Errorf("expected helper function in fragment unit:\n%s", fragment)
	}
}
