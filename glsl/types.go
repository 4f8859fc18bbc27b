package glsl

import (
	"fmt"

	"github.com/shipsimfan/acsl/types"
)

// typeName renders t as its GLSL spelling. Float-matrix names are rendered
// column-major (matCxR), the reverse of HLSL's row-major floatRxC — this is
// intentional (§9) and test vectors must assume it.
func typeName(t types.Type) string {
	switch v := types.Underlying(t).(type) {
	case *types.Primitive:
		switch v.Kind {
		case types.Void:
			return "void"
		case types.Float:
			return "float"
		case types.FloatVec:
			return fmt.Sprintf("vec%d", v.Rows)
		case types.FloatMatrix:
			return fmt.Sprintf("mat%dx%d", v.Cols, v.Rows)
		case types.Uint:
			return "uint"
		case types.TextureKind:
			return "sampler2D"
		}
	case *types.Struct:
		return v.Name
	}
	return "?"
}

// samplerTypeName renders the sampler type for a texture declaration: the
// "u" prefix is required when the element type is uint.
func samplerTypeName(elementType types.Type) string {
	if p, ok := types.Underlying(elementType).(*types.Primitive); ok && p.Kind == types.Uint {
		return "usampler2D"
	}
	return "sampler2D"
}

// vertexInputName is the reserved per-member vertex-input identifier.
func vertexInputName(member string) string {
	return "acsl_vertex_input_" + member
}

// pixelInputName is the reserved per-member vertex-to-fragment varying
// identifier.
func pixelInputName(member string) string {
	return "acsl_pixel_input_" + member
}

const fragmentColorName = "acsl_fragment_color"

// textureLocationBase reserves the first 32 uniform locations for constant
// buffers; texture locations start immediately after.
const textureLocationBase = 32
