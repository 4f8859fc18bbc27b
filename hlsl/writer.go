// Package hlsl emits HLSL source from an annotated.TranslationUnit (§4.7):
// a single pass over declaration_order, one string output containing both
// vertex_main and fragment_main.
package hlsl

import (
	"fmt"
	"strings"

	"github.com/shipsimfan/acsl/annotated"
	"github.com/shipsimfan/acsl/types"
)

// writer accumulates HLSL source text in declaration order.
type writer struct {
	unit   *annotated.TranslationUnit
	out    strings.Builder
	indent int
}

// Generate emits the full HLSL shader for unit.
func Generate(unit *annotated.TranslationUnit) (string, error) {
	w := &writer{unit: unit}
	if err := w.writeModule(); err != nil {
		return "", err
	}
	return w.out.String(), nil
}

func (w *writer) writeModule() error {
	w.out.WriteString("// Generated from Alexandria Common Shader Language\n\n")

	for _, ref := range w.unit.DeclOrder {
		switch ref.Kind {
		case annotated.DeclStruct:
			w.writeStruct(w.lookupStruct(ref.Name))
		case annotated.DeclCBuffer:
			w.writeConstantBuffer(w.unit.CBuffers[w.cbufferSlotByName(ref.Name)])
		case annotated.DeclTexture:
			w.writeTexture(w.unit.Textures[w.textureSlotByName(ref.Name)])
		case annotated.DeclConstant:
			w.writeConstant(w.unit.Constants[ref.Name])
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

func (w *writer) writeLine(format string, args ...any) {
	w.writeIndent()
	if len(args) == 0 {
		w.out.WriteString(format)
	} else {
		fmt.Fprintf(&w.out, format, args...)
	}
	w.out.WriteByte('\n')
}

func (w *writer) writeIndent() {
	for i := 0; i < w.indent; i++ {
		w.out.WriteString("    ")
	}
}

func (w *writer) pushIndent() { w.indent++ }

func (w *writer) popIndent() {
	if w.indent > 0 {
		w.indent--
	}
}
