package sema

import (
	"sync"

	"github.com/shipsimfan/acsl/annotated"
	"github.com/shipsimfan/acsl/types"
)

var (
	builtinFunctionsOnce sync.Once
	builtinFunctions     map[string]*annotated.Function
)

// builtins returns the immutable table of pre-populated built-in functions
// (§4.6): scalar/vector constructors, texture sampling, fractional-part and
// floor helpers, and the uint/float conversion. The table is built once and
// is safe to share across concurrent analyses.
func builtins() map[string]*annotated.Function {
	builtinFunctionsOnce.Do(func() {
		fn := func(name string, params []types.Type, ret types.Type) *annotated.Function {
			ps := make([]annotated.Param, len(params))
			for i, t := range params {
				ps[i] = annotated.Param{Name: "_", Type: t}
			}
			return &annotated.Function{Name: name, Params: ps, ReturnType: ret, BuiltIn: true}
		}

		builtinFunctions = map[string]*annotated.Function{
			"float":  fn("float", []types.Type{types.TFloat}, types.TFloat),
			"float1": fn("float1", []types.Type{types.TFloat}, types.FloatVecN(1)),
			"float2": fn("float2", []types.Type{types.TFloat, types.TFloat}, types.FloatVecN(2)),
			"float3": fn("float3", []types.Type{types.TFloat, types.TFloat, types.TFloat}, types.FloatVecN(3)),
			"float4": fn("float4", []types.Type{types.TFloat, types.TFloat, types.TFloat, types.TFloat}, types.FloatVecN(4)),

			"sample_texture": fn("sample_texture", []types.Type{types.TTexture, types.FloatVecN(2)}, types.FloatVecN(4)),
			"load":           fn("load", []types.Type{types.TTexture, types.FloatVecN(3)}, types.TUint),
			"uint_to_float":  fn("uint_to_float", []types.Type{types.TUint}, types.TFloat),

			"frac":  fn("frac", []types.Type{types.TFloat}, types.TFloat),
			"frac2": fn("frac2", []types.Type{types.FloatVecN(2)}, types.FloatVecN(2)),
			"frac3": fn("frac3", []types.Type{types.FloatVecN(3)}, types.FloatVecN(3)),
			"frac4": fn("frac4", []types.Type{types.FloatVecN(4)}, types.FloatVecN(4)),

			"floor": fn("floor", []types.Type{types.TFloat}, types.TFloat),
		}
	})
	return builtinFunctions
}

// builtinTypeNames are reserved as struct/alias/function names regardless
// of whether a matching built-in function exists.
var builtinTypeNames = map[string]bool{
	"void": true, "float": true, "uint": true, "texture": true,
	"float1": true, "float2": true, "float3": true, "float4": true,
	"float1x1": true, "float1x2": true, "float1x3": true, "float1x4": true,
	"float2x1": true, "float2x2": true, "float2x3": true, "float2x4": true,
	"float3x1": true, "float3x2": true, "float3x3": true, "float3x4": true,
	"float4x1": true, "float4x2": true, "float4x3": true, "float4x4": true,
	// Reserved target-language type names, so a user name can never collide
	// with a generated GLSL/HLSL identifier.
	"vec1": true, "vec2": true, "vec3": true, "vec4": true,
	"mat": true, "sampler2D": true, "Texture2D": true,
}
