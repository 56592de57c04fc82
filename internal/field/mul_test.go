package field

import (
	"testing"
)

// fixtureA and fixtureB are the canonical benchmark operands, masked to 52
// bits on load. The raw words deliberately exceed 52 bits in the low limbs
// of a to exercise the masking path.
func fixtureA() Element {
	return NewElementFromRaw([NumLimbs]uint64{
		0x123456789ABCDEF0,
		0x0FEDCBA987654321,
		0x1111111111111111,
		0x2222222222222222,
		0x3333333333333333,
	})
}

func fixtureB() Element {
	return NewElementFromRaw([NumLimbs]uint64{
		0x1111111111111111,
		0x2222222222222222,
		0x3333333333333333,
		0x4444444444444444,
		0x5555555555555555,
	})
}

// fixtureProduct is the pinned low-half product of the fixture operands,
// verified against an independent big-integer truncation.
func fixtureProduct() Element {
	return Element{
		0x94f918f48bdf0,
		0x30eca8641fdba,
		0xb851eb851eb86,
		0xfa4fa4fa4fa50,
		0xd4c3b2a1907f7,
	}
}

func allMultipliers() []Multiplier {
	return []Multiplier{ConvolutionMultiplier{}, DecomposedMultiplier{}}
}

// TestFixtureVector pins the end-to-end regression vector for both
// strategies.
func TestFixtureVector(t *testing.T) {
	a, b := fixtureA(), fixtureB()
	want := fixtureProduct()

	for _, m := range allMultipliers() {
		t.Run(m.Name(), func(t *testing.T) {
			var r Element
			m.Mul(&r, &a, &b)
			if !r.Equal(&want) {
				t.Errorf("Mul(a, b) = %s, want %s", r.Hex(), want.Hex())
			}
		})
	}
}

// TestStrategyEquivalence_FixedVectors checks limb-for-limb agreement of the
// two strategies on a spread of hand-picked operands, including boundary
// limbs.
func TestStrategyEquivalence_FixedVectors(t *testing.T) {
	maxLimb := uint64(LimbMask)
	cases := []struct {
		name string
		a, b Element
	}{
		{"fixture", fixtureA(), fixtureB()},
		{"all max limbs", Element{maxLimb, maxLimb, maxLimb, maxLimb, maxLimb}, Element{maxLimb, maxLimb, maxLimb, maxLimb, maxLimb}},
		{"single high limb", Element{0, 0, 0, 0, maxLimb}, Element{0, 0, 0, 0, maxLimb}},
		{"alternating", Element{maxLimb, 0, maxLimb, 0, maxLimb}, Element{0, maxLimb, 0, maxLimb, 0}},
		{"small", Element{2, 3, 5, 7, 11}, Element{13, 17, 19, 23, 29}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var rs, rk Element
			MulSchoolbook(&rs, &tc.a, &tc.b)
			MulKaratsuba(&rk, &tc.a, &tc.b)
			if !rs.Equal(&rk) {
				t.Errorf("strategies diverge:\n  schoolbook %s\n  karatsuba  %s", rs.Hex(), rk.Hex())
			}
		})
	}
}

// TestZeroAbsorption verifies that multiplying by zero yields zero for any
// second operand.
func TestZeroAbsorption(t *testing.T) {
	var zero Element
	b := fixtureB()

	for _, m := range allMultipliers() {
		t.Run(m.Name(), func(t *testing.T) {
			var r Element
			m.Mul(&r, &zero, &b)
			if !r.Equal(&zero) {
				t.Errorf("Mul(0, b) = %s, want zero", r.Hex())
			}
			m.Mul(&r, &b, &zero)
			if !r.Equal(&zero) {
				t.Errorf("Mul(b, 0) = %s, want zero", r.Hex())
			}
		})
	}
}

// TestMultiplicativeIdentity verifies that multiplying by (1,0,0,0,0)
// reproduces the other operand: with bounded limbs no carries fire, so the
// truncated product equals a exactly.
func TestMultiplicativeIdentity(t *testing.T) {
	one := Element{1, 0, 0, 0, 0}
	a := fixtureA()

	for _, m := range allMultipliers() {
		t.Run(m.Name(), func(t *testing.T) {
			var r Element
			m.Mul(&r, &a, &one)
			if !r.Equal(&a) {
				t.Errorf("Mul(a, 1) = %s, want %s", r.Hex(), a.Hex())
			}
		})
	}
}

// TestOutputBounds verifies the output invariant: limbs 0..3 are always
// below 2^52. Limb 4 sits on the truncation boundary and is only masked,
// which the low52 extraction already guarantees; it is checked too.
func TestOutputBounds(t *testing.T) {
	maxLimb := uint64(LimbMask)
	a := Element{maxLimb, maxLimb, maxLimb, maxLimb, maxLimb}

	for _, m := range allMultipliers() {
		t.Run(m.Name(), func(t *testing.T) {
			var r Element
			m.Mul(&r, &a, &a)
			for i, l := range r {
				if l > LimbMask {
					t.Errorf("limb %d = %#x exceeds 2^52", i, l)
				}
			}
		})
	}
}

// TestDeterminism verifies that repeated invocation with identical inputs
// yields identical outputs.
func TestDeterminism(t *testing.T) {
	a, b := fixtureA(), fixtureB()

	for _, m := range allMultipliers() {
		t.Run(m.Name(), func(t *testing.T) {
			var first Element
			m.Mul(&first, &a, &b)
			for i := 0; i < 100; i++ {
				var r Element
				m.Mul(&r, &a, &b)
				if !r.Equal(&first) {
					t.Fatalf("iteration %d: result changed from %s to %s", i, first.Hex(), r.Hex())
				}
			}
		})
	}
}

// TestOutputAliasing verifies that the output buffer may alias an input:
// all partial products are read before the first output limb is written.
func TestOutputAliasing(t *testing.T) {
	want := fixtureProduct()

	for _, m := range allMultipliers() {
		t.Run(m.Name(), func(t *testing.T) {
			a, b := fixtureA(), fixtureB()
			m.Mul(&a, &a, &b)
			if !a.Equal(&want) {
				t.Errorf("aliased Mul(a, a, b) = %s, want %s", a.Hex(), want.Hex())
			}
		})
	}
}

var benchSink Element

func BenchmarkMulSchoolbook(b *testing.B) {
	x, y := fixtureA(), fixtureB()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		MulSchoolbook(&benchSink, &x, &y)
	}
}

func BenchmarkMulKaratsuba(b *testing.B) {
	x, y := fixtureA(), fixtureB()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		MulKaratsuba(&benchSink, &x, &y)
	}
}
