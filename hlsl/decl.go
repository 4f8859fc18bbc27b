package hlsl

import (
	"strings"

	"github.com/shipsimfan/acsl/annotated"
	"github.com/shipsimfan/acsl/types"
)

// writeStruct emits `struct N { ... };` followed by the synthetic
// per-member constructor `N acsl_create_N(...)` that StructCreation
// expressions call into (§4.7).
func (w *writer) writeStruct(s *types.Struct) {
	if s == nil {
		return
	}

	w.writeLine("struct %s {", s.Name)
	w.pushIndent()
	for _, m := range s.Members {
		if m.Semantic != "" {
			w.writeLine("%s %s : %s;", typeName(m.Type), m.Name, m.Semantic)
		} else {
			w.writeLine("%s %s;", typeName(m.Type), m.Name)
		}
	}
	w.popIndent()
	w.writeLine("};")
	w.out.WriteByte('\n')

	w.writeStructConstructor(s)
}

func (w *writer) writeStructConstructor(s *types.Struct) {
	params := make([]string, len(s.Members))
	for i, m := range s.Members {
		params[i] = typeName(m.Type) + " " + m.Name
	}

	w.writeLine("%s %s(%s) {", s.Name, constructorName(s.Name), strings.Join(params, ", "))
	w.pushIndent()
	w.writeLine("%s output;", s.Name)
	for _, m := range s.Members {
		w.writeLine("output.%s = %s;", m.Name, m.Name)
	}
	w.writeLine("return output;")
	w.popIndent()
	w.writeLine("}")
	w.out.WriteByte('\n')
}

// writeConstantBuffer emits `cbuffer acsl_constant_buffer_S : register(bS) { T N; }`.
func (w *writer) writeConstantBuffer(cb *annotated.ConstantBuffer) {
	if cb == nil {
		return
	}
	w.writeLine("cbuffer acsl_constant_buffer_%d : register(b%d) {", cb.Slot, cb.Slot)
	w.pushIndent()
	w.writeLine("%s %s;", typeName(cb.Type), cb.Name)
	w.popIndent()
	w.writeLine("};")
	w.out.WriteByte('\n')
}

// writeTexture emits `Texture2D<E> N : register(tS);` and the paired
// sampler-state declaration.
func (w *writer) writeTexture(tex *annotated.Texture) {
	if tex == nil {
		return
	}
	w.writeLine("Texture2D<%s> %s : register(t%d);", typeName(tex.ElementType), tex.Name, tex.Slot)
	w.writeLine("SamplerState %s : register(s%d);", samplerStateName(tex.Name), tex.Slot)
	w.out.WriteByte('\n')
}

// writeConstant emits `static const T N = expr;`.
func (w *writer) writeConstant(c *annotated.Constant) {
	if c == nil {
		return
	}
	w.writeLine("static const %s %s = %s;", typeName(c.Type), c.Name, w.renderExpr(c.Expr))
	w.out.WriteByte('\n')
}

// writeFunction emits `R N(T1 p1, ...) [: SV_TARGET] { ... }`. The
// SV_TARGET semantic is attached iff N is fragment_main.
func (w *writer) writeFunction(fn *annotated.Function) error {
	params := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = typeName(p.Type) + " " + p.Name
	}

	semantic := ""
	if fn.Name == "fragment_main" {
		semantic = " : SV_TARGET"
	}

	w.writeLine("%s %s(%s)%s {", typeName(fn.ReturnType), fn.Name, strings.Join(params, ", "), semantic)
	w.pushIndent()
	if err := w.writeCodeBlock(fn.Body); err != nil {
		return err
	}
	w.popIndent()
	w.writeLine("}")
	w.out.WriteByte('\n')
	return nil
}
