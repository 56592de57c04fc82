package field

// MulKaratsuba computes the same truncated product as MulSchoolbook using a
// five-limb generalization of the Karatsuba identity: 14 partial products
// over sums of limb pairs replace the 25 schoolbook multiplications, and the
// convolution coefficients are recovered by addition and subtraction alone.
// The limb sums stay below 2^54, so every partial product fits comfortably
// in a 128-bit accumulator.
//
// Carries flow directly between the live coefficient accumulators; no
// temporary array is materialized. Inputs must have limbs below 2^52 (not
// checked). out, a and b may alias.
func MulKaratsuba(out, a, b *Element) {
	p1 := mul128(a[0], b[0])
	p2 := mul128(a[0]+a[1], b[0]+b[1])
	p3 := mul128(a[1], b[1])
	p4 := mul128(a[0]+a[2], b[0]+b[2])
	p5 := mul128(a[0]+a[1]+a[2]+a[3], b[0]+b[1]+b[2]+b[3])
	p6 := mul128(a[1]+a[3], b[1]+b[3])
	p7 := mul128(a[0]+a[2]+a[4], b[0]+b[2]+b[4])
	p8 := mul128(a[4], b[4])
	p9 := mul128(a[1]+a[3]+a[4], b[1]+b[3]+b[4])
	p10 := mul128(a[2], b[2])
	p11 := mul128(a[2]+a[3], b[2]+b[3])
	p12 := mul128(a[3], b[3])
	p13 := mul128(a[2]+a[4], b[2]+b[4])
	p14 := mul128(a[3]+a[4], b[3]+b[4])

	// Shared subexpressions across the coefficient formulas.
	s1 := p1.add(p3)
	s3 := p10.sub(p8)
	_ = s3 // feeds only the c6..c8 coefficients, which lie past the truncation boundary

	c0 := p1
	c1 := p2.sub(s1)
	c2 := p3.add(p4).sub(p1).sub(p10)
	c3 := p5.sub(p2).add(s1).sub(p4).sub(p6).sub(p11).add(p10).add(p12)
	c4 := p7.sub(p4).add(p6).sub(p3).sub(p13).add(p10.shl1()).sub(p12)
	c5 := p9.sub(p6).add(p11).sub(p10).sub(p14)

	// Carry chain, strictly in index order. c5 absorbs the final carry but
	// is never read back: it belongs to the discarded high half.
	c1 = c1.add(c0.shr52())
	out[0] = c0.low52()
	c2 = c2.add(c1.shr52())
	out[1] = c1.low52()
	c3 = c3.add(c2.shr52())
	out[2] = c2.low52()
	c4 = c4.add(c3.shr52())
	out[3] = c3.low52()
	c5 = c5.add(c4.shr52())
	out[4] = c4.low52()
	_ = c5
}

// DecomposedMultiplier exposes MulKaratsuba behind the Multiplier interface.
// It is stateless; the zero value is ready to use.
type DecomposedMultiplier struct{}

// Name returns the strategy identifier.
func (DecomposedMultiplier) Name() string { return "Karatsuba" }

// Mul implements Multiplier.
func (DecomposedMultiplier) Mul(out, a, b *Element) { MulKaratsuba(out, a, b) }
