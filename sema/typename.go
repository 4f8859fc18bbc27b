package sema

import (
	"github.com/shipsimfan/acsl/acslerr"
	"github.com/shipsimfan/acsl/types"
)

// resolveTypeName resolves a type name written in source to a types.Type:
// a built-in primitive spelling ("float", "floatN", "floatRxC", "uint",
// "texture", "void"), a previously declared alias, or a previously declared
// user struct. Forward references are not supported: a type name must have
// been declared earlier in the translation unit.
func (a *analyzer) resolveTypeName(name string, pos acslerr.Position) (types.Type, *acslerr.SemanticError) {
	if t, ok := primitiveTypeName(name); ok {
		return t, nil
	}
	if alias, ok := a.aliasesByName[name]; ok {
		return alias, nil
	}
	if s, ok := a.structsByName[name]; ok {
		return s, nil
	}
	return nil, acslerr.NewUnknownType(name, pos)
}

func primitiveTypeName(name string) (types.Type, bool) {
	switch name {
	case "void":
		return types.TVoid, true
	case "float":
		return types.TFloat, true
	case "uint":
		return types.TUint, true
	case "texture":
		return types.TTexture, true
	}

	if n, ok := parseDigit1to4(name, "float"); ok {
		return types.FloatVecN(n), true
	}

	if rows, cols, ok := parseMatrixName(name); ok {
		return types.FloatMatrixRC(rows, cols), true
	}

	return nil, false
}

// parseDigit1to4 matches prefix+N where N is a single digit 1..4 and the
// name is exactly len(prefix)+1 runes long.
func parseDigit1to4(name, prefix string) (int, bool) {
	if len(name) != len(prefix)+1 || name[:len(prefix)] != prefix {
		return 0, false
	}
	d := name[len(prefix)]
	if d < '1' || d > '4' {
		return 0, false
	}
	return int(d - '0'), true
}

// parseMatrixName matches "floatRxC" with R, C in 1..4.
func parseMatrixName(name string) (rows, cols int, ok bool) {
	const prefix = "float"
	if len(name) != len(prefix)+3 || name[:len(prefix)] != prefix {
		return 0, 0, false
	}
	r, x, c := name[len(prefix)], name[len(prefix)+1], name[len(prefix)+2]
	if r < '1' || r > '4' || x != 'x' || c < '1' || c > '4' {
		return 0, 0, false
	}
	return int(r - '0'), int(c - '0'), true
}
