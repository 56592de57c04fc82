package field

import "math/bits"

// uint128 is a two-word accumulator for limb products and their sums. All
// operations are modulo 2^128, so subtraction chains that dip "negative"
// inside a coefficient reconstruction behave exactly like unsigned 128-bit
// hardware arithmetic and cancel out once the final value is non-negative.
type uint128 struct {
	lo, hi uint64
}

// mul128 returns the full 128-bit product x*y.
func mul128(x, y uint64) uint128 {
	hi, lo := bits.Mul64(x, y)
	return uint128{lo: lo, hi: hi}
}

// add returns u+v mod 2^128.
func (u uint128) add(v uint128) uint128 {
	lo, carry := bits.Add64(u.lo, v.lo, 0)
	hi, _ := bits.Add64(u.hi, v.hi, carry)
	return uint128{lo: lo, hi: hi}
}

// sub returns u-v mod 2^128.
func (u uint128) sub(v uint128) uint128 {
	lo, borrow := bits.Sub64(u.lo, v.lo, 0)
	hi, _ := bits.Sub64(u.hi, v.hi, borrow)
	return uint128{lo: lo, hi: hi}
}

// shl1 returns u*2 mod 2^128.
func (u uint128) shl1() uint128 {
	return uint128{lo: u.lo << 1, hi: u.hi<<1 | u.lo>>63}
}

// shr52 returns u >> 52, the carry flowing out of a limb accumulator.
func (u uint128) shr52() uint128 {
	return uint128{lo: u.lo>>LimbBits | u.hi<<(64-LimbBits), hi: u.hi >> LimbBits}
}

// low52 extracts the low 52 bits, the limb retained after carry extraction.
func (u uint128) low52() uint64 {
	return u.lo & LimbMask
}
