package glsl

import (
	"strings"

	"github.com/shipsimfan/acsl/annotated"
	"github.com/shipsimfan/acsl/types"
)

// writeVertexIO performs the per-member I/O rewrite of §4.8 step 1-2: the
// vertex-input struct becomes per-location `in` attributes in the vertex
// unit, and the shared pixel-input struct becomes matching `out` varyings
// in the vertex unit and `in` varyings in the fragment unit.
func (w *writer) writeVertexIO() {
	in := w.unit.VertexInputType
	for i, m := range in.Members {
		w.v.writeLine("layout(location = %d) in %s %s;", i, typeName(m.Type), vertexInputName(m.Name))
	}
	w.v.out.WriteByte('\n')

	out := w.unit.FragmentInputType
	for _, m := range out.Members {
		w.v.writeLine("out %s %s;", typeName(m.Type), pixelInputName(m.Name))
		w.f.writeLine("in %s %s;", typeName(m.Type), pixelInputName(m.Name))
	}
	w.v.out.WriteByte('\n')
	w.f.out.WriteByte('\n')

	m, _ := out.SemanticMember("SV_POSITION")
	w.positionMember = m.Name
}

func (w *writer) writeStructBoth(s *types.Struct) {
	if s == nil {
		return
	}
	for _, target := range []*stream{w.v, w.f} {
		target.writeLine("struct %s {", s.Name)
		target.pushIndent()
		for _, m := range s.Members {
			target.writeLine("%s %s;", typeName(m.Type), m.Name)
		}
		target.popIndent()
		target.writeLine("};")
		target.out.WriteByte('\n')
	}
}

func (w *writer) writeConstantBufferBoth(cb *annotated.ConstantBuffer) {
	if cb == nil {
		return
	}
	for _, target := range []*stream{w.v, w.f} {
		target.writeLine("layout(location = %d) uniform %s %s;", cb.Slot, typeName(cb.Type), cb.Name)
		target.out.WriteByte('\n')
	}
}

func (w *writer) writeTextureBoth(tex *annotated.Texture) {
	if tex == nil {
		return
	}
	for _, target := range []*stream{w.v, w.f} {
		target.writeLine("layout(location = %d) uniform %s %s;", textureLocationBase+tex.Slot, samplerTypeName(tex.ElementType), tex.Name)
		target.out.WriteByte('\n')
	}
}

func (w *writer) writeConstantBoth(c *annotated.Constant) {
	if c == nil {
		return
	}
	for _, target := range []*stream{w.v, w.f} {
		target.writeLine("const %s %s = %s;", typeName(c.Type), c.Name, w.renderExpr(c.Expr))
		target.out.WriteByte('\n')
	}
}

// writeFunction dispatches entry points to their rewritten `void main()`
// form and emits regular user functions unchanged into both units.
func (w *writer) writeFunction(fn *annotated.Function) error {
	switch fn.Name {
	case "vertex_main":
		return w.writeEntryPoint(w.v, fn, true)
	case "fragment_main":
		return w.writeEntryPoint(w.f, fn, false)
	default:
		return w.writeUserFunctionBoth(fn)
	}
}

func (w *writer) writeUserFunctionBoth(fn *annotated.Function) error {
	for _, target := range []*stream{w.v, w.f} {
		params := make([]string, len(fn.Params))
		for i, p := range fn.Params {
			params[i] = typeName(p.Type) + " " + p.Name
		}
		target.writeLine("%s %s(%s) {", typeName(fn.ReturnType), fn.Name, strings.Join(params, ", "))
		target.pushIndent()
		if err := w.writeCodeBlock(target, fn.Body, entryContext{}); err != nil {
			return err
		}
		target.popIndent()
		target.writeLine("}")
		target.out.WriteByte('\n')
	}
	return nil
}

// writeEntryPoint rewrites vertex_main/fragment_main into `void main()`,
// synthesizing the input struct from the per-location inputs (§4.8 step 4).
func (w *writer) writeEntryPoint(target *stream, fn *annotated.Function, isVertex bool) error {
	target.writeLine("void main() {")
	target.pushIndent()

	param := fn.Params[0]
	inputStruct := types.Underlying(param.Type).(*types.Struct)

	args := make([]string, len(inputStruct.Members))
	for i, m := range inputStruct.Members {
		if isVertex {
			args[i] = vertexInputName(m.Name)
		} else {
			args[i] = pixelInputName(m.Name)
		}
	}
	target.writeLine("%s %s = %s(%s);", typeName(param.Type), param.Name, typeName(param.Type), strings.Join(args, ", "))

	ctx := entryContext{inVertexMain: isVertex, inFragmentMain: !isVertex, positionMember: w.positionMember}
	if err := w.writeCodeBlock(target, fn.Body, ctx); err != nil {
		return err
	}

	target.popIndent()
	target.writeLine("}")
	target.out.WriteByte('\n')
	return nil
}
