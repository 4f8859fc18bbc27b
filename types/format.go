package types

import (
	"strconv"
	"strings"

	"github.com/chewxy/math32"
)

// FormatFloat renders a literal the way HLSL/GLSL require: the value is
// first rounded to float32 (both targets are single-precision), then
// printed with a mandatory fractional part so the literal is never
// misread as an integer (e.g. "2.0", never "2").
func FormatFloat(v float64) string {
	f32 := float32(v)
	s := strconv.FormatFloat(float64(f32), 'g', -1, 32)

	idx := strings.IndexAny(s, "eE")
	mantissa, rest := s, ""
	if idx >= 0 {
		mantissa, rest = s[:idx], s[idx:]
	}

	if IsIntegral(v) && !strings.Contains(mantissa, ".") {
		// Integral mantissa: HLSL/GLSL require a fractional part so the
		// literal isn't parsed as an integer-typed constant.
		mantissa += ".0"
	}

	return mantissa + rest
}

// IsIntegral reports whether v has no fractional component once rounded to
// float32 precision, matching the single-precision arithmetic of the
// target shading languages.
func IsIntegral(v float64) bool {
	f32 := float32(v)
	return math32.Abs(f32-math32.Trunc(f32)) < 1e-9
}
