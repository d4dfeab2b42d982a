package texpix

// signExtend interprets the low width bits of v as two's complement.
func signExtend(v int, width uint) int {
	if v&(1<<(width-1)) != 0 {
		v -= 1 << width
	}
	return v
}

// bc6hUnquantize expands an endpoint channel to the 17-bit working range
// used for interpolation.
func bc6hUnquantize(comp int, prec uint, signed bool) int {
	if !signed {
		if prec >= 15 {
			return comp
		}
		if comp == 0 {
			return 0
		}
		if comp == (1<<prec)-1 {
			return 0xFFFF
		}
		return ((comp << 16) + 0x8000) >> prec
	}

	if prec >= 16 {
		return comp
	}
	neg := comp < 0
	if neg {
		comp = -comp
	}
	var unq int
	switch {
	case comp == 0:
		unq = 0
	case comp >= (1<<(prec-1))-1:
		unq = 0x7FFF
	default:
		unq = ((comp << 15) + 0x4000) >> (prec - 1)
	}
	if neg {
		return -unq
	}
	return unq
}

// bc6hFinish rescales an interpolated component to its final half-float bit
// pattern.
func bc6hFinish(comp int, signed bool) uint16 {
	if !signed {
		return uint16((comp * 31) >> 6)
	}
	if comp < 0 {
		return 0x8000 | uint16(((-comp)*31)>>5)
	}
	return uint16((comp * 31) >> 5)
}

// decodeBC6HBlock expands a 16-byte BC6H block into HDR texels (alpha 1).
// Reserved mode patterns decode as opaque black, matching hardware behavior
// for undefined blocks.
func decodeBC6HBlock(block []byte, signed bool, out *[16]Color) {
	bits := newBlockBits(block)

	modeVal := bits.read(2)
	if modeVal >= 2 {
		modeVal |= bits.read(3) << 2
	}
	md, ok := bc6hModes[modeVal]
	if !ok {
		for i := range out {
			out[i] = Color{A: 1}
		}
		return
	}

	var ep [12]int
	partition := 0
	for _, op := range md.ops {
		v := int(bits.read(uint(op.count)))
		if op.field == fD {
			partition |= v << op.shift
		} else {
			ep[op.field] |= v << op.shift
		}
	}

	// Base endpoints of signed blocks are two's complement at full
	// endpoint precision; deltas are always two's complement at their own
	// width and accumulate onto the base modulo the endpoint precision.
	if signed {
		for ch := 0; ch < 3; ch++ {
			ep[fRW+ch] = signExtend(ep[fRW+ch], md.epBits)
		}
	}
	slots := md.subsets * 2
	mask := (1 << md.epBits) - 1
	for slot := 1; slot < slots; slot++ {
		for ch := 0; ch < 3; ch++ {
			f := slot*3 + ch
			if md.transformed {
				d := signExtend(ep[f], md.deltaBits[ch])
				ep[f] = (ep[fRW+ch] + d) & mask
				if signed {
					ep[f] = signExtend(ep[f]&mask, md.epBits)
				}
			} else if signed {
				ep[f] = signExtend(ep[f], md.epBits)
			}
		}
	}

	var unq [12]int
	for slot := 0; slot < slots; slot++ {
		for ch := 0; ch < 3; ch++ {
			unq[slot*3+ch] = bc6hUnquantize(ep[slot*3+ch], md.epBits, signed)
		}
	}

	// Index stream: 4-bit ramp for single-subset blocks, 3-bit for
	// two-subset blocks, one fewer bit at each subset's anchor texel.
	indexBits := uint(4)
	if md.subsets == 2 {
		indexBits = 3
	}
	weights := bc7Weights(indexBits)

	for i := 0; i < 16; i++ {
		subset := 0
		anchor := i == 0
		if md.subsets == 2 {
			subset = int(partitions2[partition][i])
			anchor = i == 0 || (subset == 1 && i == int(anchors2[partition]))
		}

		n := indexBits
		if anchor {
			n--
		}
		w := weights[bits.read(n)]

		e0 := subset * 6 // W or Y slot
		e1 := e0 + 3     // X or Z slot

		var comp [3]uint16
		for ch := 0; ch < 3; ch++ {
			v := ((64-w)*unq[e0+ch] + w*unq[e1+ch] + 32) >> 6
			comp[ch] = bc6hFinish(v, signed)
		}

		out[i] = Color{
			R: halfToFloat32(comp[0]),
			G: halfToFloat32(comp[1]),
			B: halfToFloat32(comp[2]),
			A: 1,
		}
	}
}
