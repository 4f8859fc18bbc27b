package types

import (
	"strings"
	"testing"

	"github.com/shipsimfan/acsl/acslerr"
)

func TestSumType(t *testing.T) {
	pos := acslerr.Position{}

	if got, err := SumType(TFloat, TFloat, pos); err != nil || got.(*Primitive).Kind != Float {
		t.Fatalf("Float+Float: got %v, err %v", got, err)
	}
	if got, err := SumType(FloatVecN(3), FloatVecN(3), pos); err != nil || got.(*Primitive).Rows != 3 {
		t.Fatalf("float3+float3: got %v, err %v", got, err)
	}
	if _, err := SumType(FloatVecN(2), FloatVecN(3), pos); err == nil {
		t.Fatal("float2+float3: expected InvalidOperation")
	} else if err.Kind != acslerr.InvalidOperation {
		t.Errorf("got kind %v", err.Kind)
	}
	if _, err := SumType(TUint, TFloat, pos); err == nil {
		t.Fatal("uint+float: expected InvalidOperation")
	}
}

func TestProductTypeTable(t *testing.T) {
	pos := acslerr.Position{}

	cases := []struct {
		name    string
		a, b    Type
		wantErr bool
		check   func(Type) bool
	}{
		{"float*float", TFloat, TFloat, false, func(r Type) bool { return Equal(r, TFloat) }},
		{"float*float3", TFloat, FloatVecN(3), false, func(r Type) bool { return Equal(r, FloatVecN(3)) }},
		{"float3*float", FloatVecN(3), TFloat, false, func(r Type) bool { return Equal(r, FloatVecN(3)) }},
		{"float3*float3", FloatVecN(3), FloatVecN(3), false, func(r Type) bool { return Equal(r, FloatVecN(3)) }},
		{"float2*float3 mismatch", FloatVecN(2), FloatVecN(3), true, nil},
		{"float4x4*float4", FloatMatrixRC(4, 4), FloatVecN(4), false, func(r Type) bool { return Equal(r, FloatVecN(4)) }},
		{"float3x4*float3 mismatch", FloatMatrixRC(3, 4), FloatVecN(3), true, nil},
		{"mat*mat inner dims match", FloatMatrixRC(4, 3), FloatMatrixRC(3, 2), false, func(r Type) bool {
			return Equal(r, FloatMatrixRC(4, 2))
		}},
		{"mat*mat inner dims mismatch", FloatMatrixRC(4, 3), FloatMatrixRC(4, 2), true, nil},
		{"uint*uint", TUint, TUint, false, func(r Type) bool { return Equal(r, TUint) }},
		{"uint*float invalid", TUint, TFloat, true, nil},
	}

	for _, c := range cases {
		got, err := ProductType(c.a, c.b, pos)
		if c.wantErr {
			if err == nil {
				t.Errorf("%s: expected error, got %v", c.name, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: unexpected error %v", c.name, err)
		}
		if !c.check(got) {
			t.Errorf("%s: got %v", c.name, got)
		}
	}
}

func TestAliasTransparency(t *testing.T) {
	alias := &Alias{Name: "Scalar", Inner: TFloat}
	pos := acslerr.Position{}

	if !IsFloat(alias) {
		t.Error("alias of Float should report IsFloat")
	}
	if !Equal(alias, TFloat) {
		t.Error("alias should equal its underlying type")
	}
	if _, err := SumType(alias, TFloat, pos); err != nil {
		t.Errorf("alias sum_type: unexpected error %v", err)
	}
}

func TestStructIdentityNotShape(t *testing.T) {
	a := &Struct{Name: "A", Members: []StructMember{{Name: "x", Type: TFloat}}}
	b := &Struct{Name: "B", Members: []StructMember{{Name: "x", Type: TFloat}}}
	if Equal(a, b) {
		t.Error("structs with identical shape but distinct identity must not be equal")
	}
	if !Equal(a, a) {
		t.Error("a struct must equal itself")
	}
}

func TestMemberTypeVectorComponents(t *testing.T) {
	pos := acslerr.Position{}
	if ty, err := MemberType(FloatVecN(3), "z", pos); err != nil || !Equal(ty, TFloat) {
		t.Fatalf("got %v, %v", ty, err)
	}
	if _, err := MemberType(FloatVecN(2), "z", pos); err == nil {
		t.Fatal("float2.z should be InvalidMember")
	}
}

func TestFormatFloat(t *testing.T) {
	cases := map[float64]string{
		2:   "2.0",
		0:   "0.0",
		1.5: "1.5",
		-3:  "-3.0",
	}
	for in, want := range cases {
		if got := FormatFloat(in); got != want {
			t.Errorf("FormatFloat(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatFloatRoundsSuffixDecisionAtFloat32Precision(t *testing.T) {
	// float32's 24-bit mantissa has a representable spacing of 2.0 at this
	// magnitude, so this float64 value — fractional at float64 precision —
	// rounds to an exact integral float32 and still needs the mandatory
	// ".0"-style fractional marker so it isn't read back as an int literal.
	got := FormatFloat(16777216.4)
	if !strings.Contains(got, ".") {
		t.Errorf("FormatFloat(16777216.4) = %q, want a fractional marker", got)
	}
}

func TestIsIntegralUsesFloat32Precision(t *testing.T) {
	// Fractional at float64 precision, but float32 rounds it to an exact
	// integral value because of the reduced mantissa width.
	if !IsIntegral(16777216.4) {
		t.Error("expected 16777216.4 to be integral at float32 precision")
	}
	if IsIntegral(1.5) {
		t.Error("expected 1.5 to not be integral")
	}
}
