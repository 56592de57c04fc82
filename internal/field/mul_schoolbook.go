package field

// MulSchoolbook computes the truncated product out = (a*b) mod 2^260 by
// direct convolution: the nine sums t[k] = Σ_{i+j=k} a[i]*b[j] accumulate in
// 128-bit words, then the low five are carry-propagated into the output
// limbs. The upper four sums are computed but never consumed; the result is
// the low half of the double-width product only (no modular folding).
//
// Inputs must have limbs below 2^52 (not checked). out, a and b may alias.
func MulSchoolbook(out, a, b *Element) {
	var t [2*NumLimbs - 1]uint128

	t[0] = mul128(a[0], b[0])
	t[1] = mul128(a[0], b[1]).add(mul128(a[1], b[0]))
	t[2] = mul128(a[0], b[2]).add(mul128(a[1], b[1])).add(mul128(a[2], b[0]))
	t[3] = mul128(a[0], b[3]).add(mul128(a[1], b[2])).add(mul128(a[2], b[1])).add(mul128(a[3], b[0]))
	t[4] = mul128(a[0], b[4]).add(mul128(a[1], b[3])).add(mul128(a[2], b[2])).add(mul128(a[3], b[1])).add(mul128(a[4], b[0]))
	t[5] = mul128(a[1], b[4]).add(mul128(a[2], b[3])).add(mul128(a[3], b[2])).add(mul128(a[4], b[1]))
	t[6] = mul128(a[2], b[4]).add(mul128(a[3], b[3])).add(mul128(a[4], b[2]))
	t[7] = mul128(a[3], b[4]).add(mul128(a[4], b[3]))
	t[8] = mul128(a[4], b[4])

	// Carry chain over the low five sums, strictly in index order. The
	// overflow out of t[4] falls past the truncation boundary.
	out[0] = t[0].low52()
	t[1] = t[1].add(t[0].shr52())
	out[1] = t[1].low52()
	t[2] = t[2].add(t[1].shr52())
	out[2] = t[2].low52()
	t[3] = t[3].add(t[2].shr52())
	out[3] = t[3].low52()
	t[4] = t[4].add(t[3].shr52())
	out[4] = t[4].low52()
}

// ConvolutionMultiplier exposes MulSchoolbook behind the Multiplier
// interface. It is stateless; the zero value is ready to use.
type ConvolutionMultiplier struct{}

// Name returns the strategy identifier.
func (ConvolutionMultiplier) Name() string { return "Schoolbook" }

// Mul implements Multiplier.
func (ConvolutionMultiplier) Mul(out, a, b *Element) { MulSchoolbook(out, a, b) }
