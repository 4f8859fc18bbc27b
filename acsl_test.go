package acsl

import (
	"strings"
	"testing"
)

const scenarioA = `
struct VIn  { pos: float4 : SV_POSITION }
struct VOut { pos: float4 : SV_POSITION }
fn vertex_main(v: VIn)   -> VOut    { return VOut { pos: v.pos }; }
fn fragment_main(p: VOut) -> float4 { return p.pos; }
`

func TestScenarioA_MinimalPassThrough(t *testing.T) {
	hlslOut, err := CompileHLSL(scenarioA)
	if err != nil {
		t.Fatalf("CompileHLSL: %v", err)
	}
	if !strings.HasPrefix(hlslOut, "// Generated from Alexandria Common Shader Language\n\n") {
		t.Errorf("HLSL missing mandatory output header:\n%s", hlslOut)
	}
	if !strings.Contains(hlslOut, "acsl_create_VOut(v.pos)") {
		t.Errorf("HLSL missing constructor call:\n%s", hlslOut)
	}

	vertex, fragment, err := CompileGLSL(scenarioA)
	if err != nil {
		t.Fatalf("CompileGLSL: %v", err)
	}
	const glslHeader = "#version 430 core\n\n// Generated from Alexandria Common Shader Language\n\n"
	if !strings.HasPrefix(vertex, glslHeader) {
		t.Errorf("GLSL vertex missing mandatory output header:\n%s", vertex)
	}
	if !strings.HasPrefix(fragment, glslHeader) {
		t.Errorf("GLSL fragment missing mandatory output header:\n%s", fragment)
	}
	if !strings.Contains(vertex, "layout(location = 0) in vec4 acsl_vertex_input_pos;") {
		t.Errorf("GLSL vertex missing input decl:\n%s", vertex)
	}
	if !strings.Contains(vertex, "out vec4 acsl_pixel_input_pos;") {
		t.Errorf("GLSL vertex missing output decl:\n%s", vertex)
	}
	if !strings.Contains(vertex, "gl_Position = acsl_pixel_input_pos;") {
		t.Errorf("GLSL vertex missing gl_Position assignment:\n%s", vertex)
	}
}

func TestScenarioB_MatrixProduct(t *testing.T) {
	const source = `
struct VIn  { pos: float4 : SV_POSITION }
struct VOut { pos: float4 : SV_POSITION }
struct Mats { mvp: float4x4 }
cbuffer xforms : Mats : 0;
fn vertex_main(v: VIn) -> VOut { return VOut { pos: (xforms.mvp * v.pos) }; }
fn fragment_main(p: VOut) -> float4 { return p.pos; }
`
	hlslOut, err := CompileHLSL(source)
	if err != nil {
		t.Fatalf("CompileHLSL: %v", err)
	}
	if !strings.Contains(hlslOut, "mul(xforms.mvp, v.pos)") {
		t.Errorf("HLSL missing mul():\n%s", hlslOut)
	}

	vertex, _, err := CompileGLSL(source)
	if err != nil {
		t.Fatalf("CompileGLSL: %v", err)
	}
	if !strings.Contains(vertex, "(xforms.mvp * v.pos)") {
		t.Errorf("GLSL missing (a * b):\n%s", vertex)
	}
}

func TestScenarioC_TextureSampling(t *testing.T) {
	const source = `
struct VIn  { pos: float4 : SV_POSITION }
struct VOut { pos: float4 : SV_POSITION, uv: float2 : TEXCOORD0 }
texture<float4> albedo : 0;
fn vertex_main(v: VIn) -> VOut { return VOut { pos: v.pos, uv: float2(0.0, 0.0) }; }
fn fragment_main(p: VOut) -> float4 { return sample_texture(albedo, p.uv); }
`
	hlslOut, err := CompileHLSL(source)
	if err != nil {
		t.Fatalf("CompileHLSL: %v", err)
	}
	if !strings.Contains(hlslOut, "albedo.Sample(acsl_albedo_sampler_state, p.uv)") {
		t.Errorf("HLSL missing Sample() call:\n%s", hlslOut)
	}

	_, fragment, err := CompileGLSL(source)
	if err != nil {
		t.Fatalf("CompileGLSL: %v", err)
	}
	if !strings.Contains(fragment, "texture(albedo, p.uv)") {
		t.Errorf("GLSL missing texture() call:\n%s", fragment)
	}
	if !strings.Contains(fragment, "layout(location = 32) uniform sampler2D albedo;") {
		t.Errorf("GLSL missing sampler decl:\n%s", fragment)
	}
}

func TestScenarioD_ReservedNameRejection(t *testing.T) {
	const source = scenarioA + `
fn helper() { let acsl_foo = 0.0; }
`
	if _, err := CompileHLSL(source); err == nil {
		t.Fatal("expected InvalidVariableName error")
	} else if !strings.Contains(err.Error(), "InvalidVariableName") {
		t.Errorf("got error %v", err)
	}
}

func TestScenarioE_EntryPointMismatch(t *testing.T) {
	const source = `
struct A { pos: float4 : SV_POSITION }
struct B { pos: float4 : SV_POSITION }
fn vertex_main(v: A) -> A { return A { pos: v.pos }; }
fn fragment_main(p: B) -> float4 { return p.pos; }
`
	if _, err := CompileHLSL(source); err == nil {
		t.Fatal("expected FragmentMainParameterTypeMismatch error")
	} else if !strings.Contains(err.Error(), "FragmentMainParameterTypeMismatch") {
		t.Errorf("got error %v", err)
	}
}

func TestScenarioF_OperatorTyping(t *testing.T) {
	const source = `
struct VIn  { pos: float4 : SV_POSITION }
struct VOut { pos: float4 : SV_POSITION }
fn vertex_main(v: VIn) -> VOut { return VOut { pos: v.pos }; }
fn fragment_main(p: VOut) -> float4 {
	let bad = float2(0.0, 0.0) + float3(0.0, 0.0, 0.0);
	return p.pos;
}
`
	if _, err := CompileHLSL(source); err == nil {
		t.Fatal("expected InvalidOperation error")
	} else if !strings.Contains(err.Error(), "InvalidOperation") {
		t.Errorf("got error %v", err)
	}
}

func TestDeterministicEmission(t *testing.T) {
	a, err := CompileHLSL(scenarioA)
	if err != nil {
		t.Fatalf("CompileHLSL: %v", err)
	}
	b, err := CompileHLSL(scenarioA)
	if err != nil {
		t.Fatalf("CompileHLSL: %v", err)
	}
	if a != b {
		t.Error("CompileHLSL is not deterministic across runs")
	}
}

func TestMissingVertexMain(t *testing.T) {
	const source = `
struct VOut { pos: float4 : SV_POSITION }
fn fragment_main(p: VOut) -> float4 { return p.pos; }
`
	if _, err := CompileHLSL(source); err == nil {
		t.Fatal("expected NoVertexMain error")
	} else if !strings.Contains(err.Error(), "NoVertexMain") {
		t.Errorf("got error %v", err)
	}
}

func TestSampleTextureThroughStructMemberRejectedNotPanicked(t *testing.T) {
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
	if _, err := CompileHLSL(source); err == nil {
		t.Fatal("expected InvalidTextureArgument error")
	} else if !strings.Contains(err.Error(), "InvalidTextureArgument") {
		t.Errorf("got error %v", err)
	}
}

func TestSlotOutOfRange(t *testing.T) {
	const source = scenarioA + `
texture<float4> tooMany : 8;
`
	if _, err := CompileHLSL(source); err == nil {
		t.Fatal("expected SlotOutOfRange error")
	} else if !strings.Contains(err.Error(), "SlotOutOfRange") {
		t.Errorf("got error %v", err)
	}
}
