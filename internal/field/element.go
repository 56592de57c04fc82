// Package field implements multiplication of field elements represented in
// radix 2^52: five unsigned limbs packed into 64-bit words, index 0 least
// significant. The package provides two algebraically distinct multiplication
// strategies that produce bit-identical truncated (low-half) products, plus
// the shared limb and carry conventions they rely on.
//
// The representation follows the unsaturated-limb convention used by
// ed25519-style field arithmetic: limbs carry fewer bits than the word that
// holds them, so partial sums fit in the word and products fit in a two-word
// accumulator without intermediate reductions.
package field

import (
	"fmt"
	"strconv"
	"strings"
)

// LimbBits is the radix exponent: each limb conceptually holds a value below
// 2^52.
const LimbBits = 52

// LimbMask extracts the low 52 bits of a word.
const LimbMask = (uint64(1) << LimbBits) - 1

// NumLimbs is the fixed operand width. The multipliers are specialized to
// this width; there is no variable-length path.
const NumLimbs = 5

// Element is a field element in radix 2^52. An element e represents the
// integer e[0] + e[1]*2^52 + e[2]*2^104 + e[3]*2^156 + e[4]*2^208.
//
// Multiplier inputs must have every limb below 2^52. The multipliers do not
// check this; out-of-range limbs produce well-defined but meaningless carry
// arithmetic. Use NewElementFromRaw to load untrusted words, or IsValid to
// assert the bound.
type Element [NumLimbs]uint64

// NewElementFromRaw builds an Element from five raw 64-bit words, masking
// each to 52 bits. This is the canonical way to load literal or external
// operands.
func NewElementFromRaw(raw [NumLimbs]uint64) Element {
	var e Element
	for i, w := range raw {
		e[i] = w & LimbMask
	}
	return e
}

// IsValid reports whether every limb is below 2^52, i.e. whether the element
// satisfies the multiplier input invariant.
func (e *Element) IsValid() bool {
	for _, l := range e {
		if l > LimbMask {
			return false
		}
	}
	return true
}

// Equal reports limb-for-limb equality.
func (e *Element) Equal(other *Element) bool {
	return *e == *other
}

// Hex renders the element as five fixed-width (13 hex digit) limbs,
// most-significant limb first, separated by spaces. This matches the width
// of a full 52-bit limb and is intended for human inspection and fixtures.
func (e *Element) Hex() string {
	var sb strings.Builder
	for i := NumLimbs - 1; i >= 0; i-- {
		if i < NumLimbs-1 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%013x", e[i])
	}
	return sb.String()
}

// String implements fmt.Stringer using the Hex rendering.
func (e *Element) String() string { return e.Hex() }

// ParseElement parses a comma-separated list of five hex limbs (least
// significant first, with or without "0x" prefixes) into an Element, masking
// each limb to 52 bits on load.
func ParseElement(s string) (Element, error) {
	parts := strings.Split(s, ",")
	if len(parts) != NumLimbs {
		return Element{}, fmt.Errorf("expected %d comma-separated limbs, got %d", NumLimbs, len(parts))
	}
	var raw [NumLimbs]uint64
	for i, p := range parts {
		p = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(p), "0x"))
		v, err := strconv.ParseUint(p, 16, 64)
		if err != nil {
			return Element{}, fmt.Errorf("limb %d: invalid hex %q: %w", i, parts[i], err)
		}
		raw[i] = v
	}
	return NewElementFromRaw(raw), nil
}
