package texpix

import "math"

// halfToFloat32 widens an IEEE 754 half-precision bit pattern to float32.
// The conversion is exact: every half value, subnormals included, has a
// float32 representation.
func halfToFloat32(h uint16) float32 {
	sign := uint32(h>>15) & 0x1
	exp := uint32(h>>10) & 0x1F
	mant := uint32(h) & 0x3FF

	switch exp {
	case 0:
		if mant == 0 {
			return math.Float32frombits(sign << 31) // signed zero
		}
		// Half subnormals renormalize: shift the mantissa up until its
		// implicit bit appears, lowering the exponent from 2^-14 as we go.
		exp32 := uint32(127 - 15 + 1)
		for mant&0x400 == 0 {
			mant <<= 1
			exp32--
		}
		return math.Float32frombits(sign<<31 | exp32<<23 | (mant&0x3FF)<<13)
	case 0x1F:
		// Infinity keeps an empty mantissa, NaN its payload.
		return math.Float32frombits(sign<<31 | 0x7F800000 | mant<<13)
	default:
		return math.Float32frombits(sign<<31 | (exp+127-15)<<23 | mant<<13)
	}
}

// float32ToHalf narrows a float32 to an IEEE 754 half-precision bit pattern
// with round-to-nearest-even. Out-of-range magnitudes become infinity.
func float32ToHalf(f float32) uint16 {
	b := math.Float32bits(f)
	sign := uint16((b >> 16) & 0x8000)
	exp := int32((b>>23)&0xFF) - 127 + 15
	mant := b & 0x7FFFFF

	if (b>>23)&0xFF == 0xFF {
		if mant != 0 {
			return sign | 0x7E00 // NaN
		}
		return sign | 0x7C00 // Inf
	}

	if exp >= 0x1F {
		return sign | 0x7C00
	}

	if exp <= 0 {
		if exp < -10 {
			return sign
		}
		// Subnormal half.
		mant |= 0x800000
		shift := uint32(14 - exp)
		half := uint16(mant >> shift)
		round := mant >> (shift - 1) & 1
		sticky := mant&((1<<(shift-1))-1) != 0
		if round == 1 && (sticky || half&1 == 1) {
			half++
		}
		return sign | half
	}

	half := sign | uint16(exp)<<10 | uint16(mant>>13)
	round := mant >> 12 & 1
	sticky := mant&0xFFF != 0
	if round == 1 && (sticky || half&1 == 1) {
		half++
	}
	return half
}
