package texpix

// bc7Mode fixes the field widths of one of the eight BC7 block modes.
// Fields are laid out contiguously in mode order: mode bits, partition,
// rotation, index-mode bit, endpoints (all R, all G, all B, all A), p-bits,
// then the index stream(s).
type bc7Mode struct {
	subsets       int
	partitionBits uint
	rotationBits  uint
	indexModeBits uint
	colorBits     uint
	alphaBits     uint
	perEndpointP  bool // one p-bit per endpoint
	sharedP       bool // one p-bit per subset endpoint pair
	indexBits     uint
	index2Bits    uint // second index stream width (modes 4 and 5)
}

var bc7Modes = [8]bc7Mode{
	{subsets: 3, partitionBits: 4, colorBits: 4, perEndpointP: true, indexBits: 3},
	{subsets: 2, partitionBits: 6, colorBits: 6, sharedP: true, indexBits: 3},
	{subsets: 3, partitionBits: 6, colorBits: 5, indexBits: 2},
	{subsets: 2, partitionBits: 6, colorBits: 7, perEndpointP: true, indexBits: 2},
	{subsets: 1, rotationBits: 2, indexModeBits: 1, colorBits: 5, alphaBits: 6, indexBits: 2, index2Bits: 3},
	{subsets: 1, rotationBits: 2, colorBits: 7, alphaBits: 8, indexBits: 2, index2Bits: 2},
	{subsets: 1, colorBits: 7, alphaBits: 7, perEndpointP: true, indexBits: 4},
	{subsets: 2, partitionBits: 6, colorBits: 5, alphaBits: 5, perEndpointP: true, indexBits: 2},
}

// bc7Unquantize expands an endpoint channel read at bits precision to 8 bits
// by left-aligning and replicating the high bits into the low end.
func bc7Unquantize(v uint32, bits uint) uint32 {
	v <<= 8 - bits
	return v | v>>bits
}

func bc7Weights(bits uint) []int {
	switch bits {
	case 2:
		return weights2[:]
	case 3:
		return weights3[:]
	default:
		return weights4[:]
	}
}

// bc7SubsetOf resolves the subset and anchor status of texel i for the
// block's partition pattern.
func bc7SubsetOf(subsets, partition, i int) (subset int, anchor bool) {
	switch subsets {
	case 2:
		subset = int(partitions2[partition][i])
		anchor = i == 0 || (subset == 1 && i == int(anchors2[partition]))
	case 3:
		subset = int(partitions3[partition][i])
		anchor = i == 0 ||
			(subset == 1 && i == int(anchors3a[partition])) ||
			(subset == 2 && i == int(anchors3b[partition]))
	default:
		subset = 0
		anchor = i == 0
	}
	return subset, anchor
}

// decodeBC7Block expands a 16-byte BC7 block. An invalid mode field (eight
// leading zero bits) produces transparent black, matching hardware.
func decodeBC7Block(block []byte, out *[16]Color) {
	bits := newBlockBits(block)

	mode := 0
	for bits.readBit() == 0 {
		mode++
		if mode > 7 {
			for i := range out {
				out[i] = Color{}
			}
			return
		}
	}
	m := bc7Modes[mode]

	partition := int(bits.read(m.partitionBits))
	rotation := bits.read(m.rotationBits)
	indexMode := bits.read(m.indexModeBits)

	// Endpoints, channel-major: R for every endpoint, then G, B, A.
	numEndpoints := m.subsets * 2
	var ep [6][4]uint32
	for ch := 0; ch < 3; ch++ {
		for e := 0; e < numEndpoints; e++ {
			ep[e][ch] = bits.read(m.colorBits)
		}
	}
	if m.alphaBits > 0 {
		for e := 0; e < numEndpoints; e++ {
			ep[e][3] = bits.read(m.alphaBits)
		}
	}

	// P-bits extend every present channel by one low-order bit. Shared
	// p-bits cover both endpoints of a subset pair.
	cb, ab := m.colorBits, m.alphaBits
	if m.perEndpointP || m.sharedP {
		var pbits [6]uint32
		if m.perEndpointP {
			for e := 0; e < numEndpoints; e++ {
				pbits[e] = bits.readBit()
			}
		} else {
			for s := 0; s < m.subsets; s++ {
				p := bits.readBit()
				pbits[s*2] = p
				pbits[s*2+1] = p
			}
		}
		for e := 0; e < numEndpoints; e++ {
			for ch := 0; ch < 4; ch++ {
				if ch == 3 && m.alphaBits == 0 {
					continue
				}
				ep[e][ch] = ep[e][ch]<<1 | pbits[e]
			}
		}
		cb++
		if ab > 0 {
			ab++
		}
	}

	for e := 0; e < numEndpoints; e++ {
		for ch := 0; ch < 3; ch++ {
			ep[e][ch] = bc7Unquantize(ep[e][ch], cb)
		}
		if m.alphaBits > 0 {
			ep[e][3] = bc7Unquantize(ep[e][3], ab)
		} else {
			ep[e][3] = 255
		}
	}

	// Index streams. Anchor texels carry one fewer bit; their high bit is
	// implied zero.
	var idx1, idx2 [16]uint32
	for i := 0; i < 16; i++ {
		_, anchor := bc7SubsetOf(m.subsets, partition, i)
		n := m.indexBits
		if anchor {
			n--
		}
		idx1[i] = bits.read(n)
	}
	if m.index2Bits > 0 {
		for i := 0; i < 16; i++ {
			n := m.index2Bits
			if i == 0 {
				n--
			}
			idx2[i] = bits.read(n)
		}
	}

	colorWeights := bc7Weights(m.indexBits)
	alphaWeights := colorWeights
	colorIdx, alphaIdx := &idx1, &idx1
	if m.index2Bits > 0 {
		alphaIdx = &idx2
		alphaWeights = bc7Weights(m.index2Bits)
		if indexMode == 1 {
			colorIdx, alphaIdx = alphaIdx, colorIdx
			colorWeights, alphaWeights = alphaWeights, colorWeights
		}
	}

	for i := 0; i < 16; i++ {
		subset, _ := bc7SubsetOf(m.subsets, partition, i)
		e0 := &ep[subset*2]
		e1 := &ep[subset*2+1]

		cw := colorWeights[colorIdx[i]]
		aw := alphaWeights[alphaIdx[i]]

		r := ((64-cw)*int(e0[0]) + cw*int(e1[0]) + 32) >> 6
		g := ((64-cw)*int(e0[1]) + cw*int(e1[1]) + 32) >> 6
		b := ((64-cw)*int(e0[2]) + cw*int(e1[2]) + 32) >> 6
		a := ((64-aw)*int(e0[3]) + aw*int(e1[3]) + 32) >> 6

		switch rotation {
		case 1:
			r, a = a, r
		case 2:
			g, a = a, g
		case 3:
			b, a = a, b
		}

		out[i] = Color{
			R: float32(r) / 255,
			G: float32(g) / 255,
			B: float32(b) / 255,
			A: float32(a) / 255,
		}
	}
}
