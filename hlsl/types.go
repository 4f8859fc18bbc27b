package hlsl

import (
	"fmt"

	"github.com/shipsimfan/acsl/types"
)

// typeName renders t as its HLSL spelling. User struct names are carried
// over verbatim; aliases are transparent and are unwrapped first, so this
// always resolves to either a struct name or a primitive spelling.
func typeName(t types.Type) string {
	switch v := types.Underlying(t).(type) {
	case *types.Primitive:
		switch v.Kind {
		case types.Void:
			return "void"
		case types.Float:
			return "float"
		case types.FloatVec:
			return fmt.Sprintf("float%d", v.Rows)
		case types.FloatMatrix:
			return fmt.Sprintf("float%dx%d", v.Rows, v.Cols)
		case types.Uint:
			return "uint"
		case types.TextureKind:
			return "Texture2D"
		}
	case *types.Struct:
		return v.Name
	}
	return "?"
}

// samplerStateName is the reserved sampler-state identifier paired with a
// Texture2D declaration.
func samplerStateName(textureName string) string {
	return "acsl_" + textureName + "_sampler_state"
}

// constructorName is the synthetic per-struct constructor emitted alongside
// each struct declaration.
func constructorName(structName string) string {
	return "acsl_create_" + structName
}
