// Package glsl emits paired vertex/fragment GLSL source from an
// annotated.TranslationUnit (§4.8): the key transform is rewriting the
// shared pixel-input struct into per-member layout(location=i) in/out
// declarations instead of passing a single struct across pipeline stages.
package glsl

import (
	"fmt"
	"strings"

	"github.com/shipsimfan/acsl/annotated"
	"github.com/shipsimfan/acsl/types"
)

// stream is one output unit's accumulated source plus its indent depth.
type stream struct {
	out    strings.Builder
	indent int
}

func (s *stream) writeLine(format string, args ...any) {
	s.writeIndent()
	if len(args) == 0 {
		s.out.WriteString(format)
	} else {
		fmt.Fprintf(&s.out, format, args...)
	}
	s.out.WriteByte('\n')
}

func (s *stream) writeIndent() {
	for i := 0; i < s.indent; i++ {
		s.out.WriteString("    ")
	}
}

func (s *stream) pushIndent() { s.indent++ }

func (s *stream) popIndent() {
	if s.indent > 0 {
		s.indent--
	}
}

// writer drives both the vertex and fragment streams from a single
// declaration-order walk, so both halves stay in lockstep.
type writer struct {
	unit *annotated.TranslationUnit
	v    *stream
	f    *stream

	// positionMember is the name of the fragment-input-type member tagged
	// SV_POSITION; gl_Position is fabricated from it on every vertex return.
	positionMember string
}

// Generate emits the vertex and fragment GLSL shaders for unit.
func Generate(unit *annotated.TranslationUnit) (vertex string, fragment string, err error) {
	w := &writer{unit: unit, v: &stream{}, f: &stream{}}
	if err := w.writeModule(); err != nil {
		return "", "", err
	}
	return w.v.out.String(), w.f.out.String(), nil
}

func (w *writer) writeModule() error {
	w.v.writeLine("#version 430 core")
	w.v.out.WriteByte('\n')
	w.v.writeLine("// Generated from Alexandria Common Shader Language")
	w.v.out.WriteByte('\n')
	w.f.writeLine("#version 430 core")
	w.f.out.WriteByte('\n')
	w.f.writeLine("// Generated from Alexandria Common Shader Language")
	w.f.out.WriteByte('\n')

	w.writeVertexIO()
	w.f.writeLine("out vec4 %s;", fragmentColorName)
	w.f.out.WriteByte('\n')

	for _, ref := range w.unit.DeclOrder {
		switch ref.Kind {
		case annotated.DeclStruct:
			w.writeStructBoth(w.lookupStruct(ref.Name))
		case annotated.DeclCBuffer:
			w.writeConstantBufferBoth(w.unit.CBuffers[w.cbufferSlotByName(ref.Name)])
		case annotated.DeclTexture:
			w.writeTextureBoth(w.unit.Textures[w.textureSlotByName(ref.Name)])
		case annotated.DeclConstant:
			w.writeConstantBoth(w.unit.Constants[ref.Name])
		case annotated.DeclFunction:
			if err := w.writeFunction(w.unit.Functions[ref.Name]); err != nil {
				return err
			}
		}
	}

	return nil
}

func (w *writer) lookupStruct(name string) *types.Struct {
	for _, s := range w.unit.UserStructs {
		if s.Name == name {
			return s
		}
	}
	return nil
}

func (w *writer) cbufferSlotByName(name string) int {
	for i, cb := range w.unit.CBuffers {
		if cb != nil && cb.Name == name {
			return i
		}
	}
	return -1
}

func (w *writer) textureSlotByName(name string) int {
	for i, t := range w.unit.Textures {
		if t != nil && t.Name == name {
			return i
		}
	}
	return -1
}
