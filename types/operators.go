package types

import "github.com/shipsimfan/acsl/acslerr"

// SumType implements sum_type(a, b) of §4.4, used for + and -. It is
// alias-transparent; the error, if any, reports the original (aliased)
// type names.
func SumType(a, b Type, pos acslerr.Position) (Type, *acslerr.SemanticError) {
	ua, ub := Underlying(a), Underlying(b)

	pa, aOK := ua.(*Primitive)
	pb, bOK := ub.(*Primitive)
	if aOK && bOK {
		switch {
		case pa.Kind == Float && pb.Kind == Float:
			return TFloat, nil
		case pa.Kind == FloatVec && pb.Kind == FloatVec && pa.Rows == pb.Rows:
			return FloatVecN(pa.Rows), nil
		case pa.Kind == Uint && pb.Kind == Uint:
			return TUint, nil
		}
	}

	return nil, acslerr.NewInvalidOperation(a.String(), "+", b.String(), pos)
}

// ProductType implements product_type(a, b) of §4.4, used for *. Unlike the
// source it mirrors, the FloatMatrix x FloatMatrix case requires the inner
// dimensions to match (see the matrix-product open question).
func ProductType(a, b Type, pos acslerr.Position) (Type, *acslerr.SemanticError) {
	ua, ub := Underlying(a), Underlying(b)

	pa, aOK := ua.(*Primitive)
	pb, bOK := ub.(*Primitive)
	if !aOK || !bOK {
		return nil, acslerr.NewInvalidOperation(a.String(), "*", b.String(), pos)
	}

	switch pa.Kind {
	case Float:
		switch pb.Kind {
		case Float:
			return TFloat, nil
		case FloatVec:
			return FloatVecN(pb.Rows), nil
		case FloatMatrix:
			return FloatMatrixRC(pb.Rows, pb.Cols), nil
		}

	case FloatVec:
		switch pb.Kind {
		case Float:
			return FloatVecN(pa.Rows), nil
		case FloatVec:
			if pa.Rows == pb.Rows {
				return FloatVecN(pa.Rows), nil
			}
		case FloatMatrix:
			if pa.Rows == pb.Rows {
				return FloatVecN(pb.Cols), nil
			}
		}

	case FloatMatrix:
		switch pb.Kind {
		case Float:
			return FloatMatrixRC(pa.Rows, pa.Cols), nil
		case FloatVec:
			if pa.Cols == pb.Rows {
				return FloatVecN(pa.Rows), nil
			}
		case FloatMatrix:
			if pa.Cols == pb.Rows {
				return FloatMatrixRC(pa.Rows, pb.Cols), nil
			}
		}

	case Uint:
		if pb.Kind == Uint {
			return TUint, nil
		}
	}

	return nil, acslerr.NewInvalidOperation(a.String(), "*", b.String(), pos)
}

// MemberType implements member_type(t, name) of §4.4: alias-transparent
// lookup of a member's type by name, using the canonical x/y/z/w mapping
// for primitive floats and vectors and the member list for user structs.
func MemberType(t Type, name string, pos acslerr.Position) (Type, *acslerr.SemanticError) {
	u := Underlying(t)

	if s, ok := u.(*Struct); ok {
		if m, ok := s.Member(name); ok {
			return m.Type, nil
		}
		return nil, acslerr.NewInvalidMember(t.String(), name, pos)
	}

	if p, ok := u.(*Primitive); ok {
		if p.Kind == Float || (p.Kind == FloatVec && p.Rows == 1) {
			if name == "x" {
				return TFloat, nil
			}
		} else if p.Kind == FloatVec {
			if idx := vectorComponentIndex(name); idx >= 0 && idx < p.Rows {
				return TFloat, nil
			}
		}
	}

	return nil, acslerr.NewInvalidMember(t.String(), name, pos)
}

func vectorComponentIndex(name string) int {
	switch name {
	case "x":
		return 0
	case "y":
		return 1
	case "z":
		return 2
	case "w":
		return 3
	default:
		return -1
	}
}
