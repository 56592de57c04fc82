package field

import (
	"math/rand"
	"testing"

	"github.com/ncw/gmp"
)

// toGMP assembles an element into the integer it represents,
// Σ e[i] * 2^(52i), using GMP as an implementation wholly independent of the
// limb arithmetic under test.
func toGMP(e *Element) *gmp.Int {
	v := gmp.NewInt(0)
	for i := NumLimbs - 1; i >= 0; i-- {
		v.Lsh(v, LimbBits)
		v.Add(v, gmp.NewInt(int64(e[i])))
	}
	return v
}

// truncatedProductGMP computes the reference low-half product: the full
// double-width integer product, split back into five 52-bit limbs with the
// higher limbs discarded.
func truncatedProductGMP(a, b *Element) Element {
	p := new(gmp.Int).Mul(toGMP(a), toGMP(b))
	mask := gmp.NewInt(int64(LimbMask))

	var r Element
	limb := new(gmp.Int)
	for i := 0; i < NumLimbs; i++ {
		limb.And(new(gmp.Int).Rsh(p, uint(i*LimbBits)), mask)
		r[i] = uint64(limb.Int64())
	}
	return r
}

// TestBigIntegerOracle cross-checks both strategies against the GMP
// truncated product on the fixture and on randomized operands. This pins the
// semantics of the truncation boundary independently of the two strategies
// agreeing with each other.
func TestBigIntegerOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	randomElement := func() Element {
		var e Element
		for i := range e {
			e[i] = rng.Uint64() & LimbMask
		}
		return e
	}

	check := func(t *testing.T, a, b Element) {
		t.Helper()
		want := truncatedProductGMP(&a, &b)
		for _, m := range allMultipliers() {
			var r Element
			m.Mul(&r, &a, &b)
			if !r.Equal(&want) {
				t.Errorf("%s: Mul = %s, oracle = %s\n  a = %s\n  b = %s",
					m.Name(), r.Hex(), want.Hex(), a.Hex(), b.Hex())
			}
		}
	}

	t.Run("fixture", func(t *testing.T) {
		a, b := fixtureA(), fixtureB()
		check(t, a, b)
	})

	t.Run("randomized", func(t *testing.T) {
		for i := 0; i < 200; i++ {
			check(t, randomElement(), randomElement())
		}
	})
}
