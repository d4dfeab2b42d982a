package texpix

// bc4Ramp builds the 8-entry interpolation table for a BC4-style scalar
// channel. e0 > e1 selects the 8-step ramp; e0 <= e1 selects the 6-step ramp
// whose last two entries are the constants 0.0 and 1.0.
func bc4Ramp(e0, e1 uint8) [8]float32 {
	v0 := float32(e0) / 255
	v1 := float32(e1) / 255

	var ramp [8]float32
	ramp[0] = v0
	ramp[1] = v1
	if e0 > e1 {
		for i := 2; i < 8; i++ {
			ramp[i] = (float32(8-i)*v0 + float32(i-1)*v1) / 7
		}
	} else {
		for i := 2; i < 6; i++ {
			ramp[i] = (float32(6-i)*v0 + float32(i-1)*v1) / 5
		}
		ramp[6] = 0
		ramp[7] = 1
	}
	return ramp
}

// decodeBC4Channel expands one 8-byte BC4 channel block: two 8-bit endpoints
// followed by sixteen 3-bit ramp indices packed little-endian over 48 bits.
func decodeBC4Channel(block []byte, out *[16]float32) {
	ramp := bc4Ramp(block[0], block[1])

	var indices uint64
	for i := 0; i < 6; i++ {
		indices |= uint64(block[2+i]) << (uint(i) * 8)
	}
	for i := 0; i < 16; i++ {
		out[i] = ramp[indices>>(uint(i)*3)&0x7]
	}
}

// decodeBC4Block expands a single-channel BC4 block into red, with the
// unused channels at their fixed defaults.
func decodeBC4Block(block []byte, out *[16]Color) {
	var r [16]float32
	decodeBC4Channel(block[0:8], &r)
	for i := 0; i < 16; i++ {
		out[i] = Color{R: r[i], G: 1, B: 1, A: 1}
	}
}
