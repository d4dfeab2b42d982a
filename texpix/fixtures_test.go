package texpix_test

import (
	"encoding/binary"
	"math"

	"github.com/orbitools/texpix/texpix"
)

// refGrid is the 4x4 reference pattern shared by the fixture tests: the
// primaries and secondaries, grays, a dark ramp, and a mixed bottom row.
var refGrid = [16]texpix.Color32{
	{R: 255, A: 255}, {G: 255, A: 255}, {B: 255, A: 255}, {R: 255, G: 255, A: 255},
	{R: 255, B: 255, A: 255}, {G: 255, B: 255, A: 255}, {R: 128, G: 128, B: 128, A: 255}, {R: 255, G: 255, B: 255, A: 255},
	{R: 64, A: 255}, {G: 64, A: 255}, {B: 64, A: 255}, {R: 64, G: 64, A: 255},
	{A: 255}, {R: 32, G: 32, B: 32, A: 255}, {R: 192, G: 192, B: 192, A: 255}, {R: 128, B: 128, A: 255},
}

// pack565 quantizes an 8-bit RGB triple to a little-endian RGB565 word.
func pack565(r, g, b uint8) uint16 {
	q5 := func(v uint8) uint16 { return uint16(math.Round(float64(v) * 31 / 255)) }
	q6 := func(v uint8) uint16 { return uint16(math.Round(float64(v) * 63 / 255)) }
	return q5(r)<<11 | q6(g)<<5 | q5(b)
}

// quantByte round-trips an 8-bit value through an n-level channel, giving
// the byte a decoder reproduces after quantization.
func quantByte(v uint8, levels float64) uint8 {
	q := math.Round(float64(v) * levels / 255)
	return uint8(math.Round(q * 255 / levels))
}

// bc1FlatBlock encodes a solid-color BC1 block: quantized color in c0,
// all indices zero.
func bc1FlatBlock(c texpix.Color32) []byte {
	block := make([]byte, 8)
	binary.LittleEndian.PutUint16(block[0:2], pack565(c.R, c.G, c.B))
	return block
}

// bc4FlatBlock encodes a solid scalar BC4 block with all indices on e0.
func bc4FlatBlock(v uint8) []byte {
	block := make([]byte, 8)
	block[0] = v
	return block
}

// bc7FlatBlock encodes a solid-color mode 6 block. The shared low bit comes
// from the p-bits, so even channel values land one step high; the error is
// at most one 8-bit step.
func bc7FlatBlock(c texpix.Color32) []byte {
	var lo, hi uint64
	pos := uint(0)
	put := func(v uint64, n uint) {
		v &= 1<<n - 1
		if pos < 64 {
			lo |= v << pos
			if pos+n > 64 {
				hi |= v >> (64 - pos)
			}
		} else {
			hi |= v << (pos - 64)
		}
		pos += n
	}

	put(1<<6, 7)
	for _, ch := range [4]uint8{c.R, c.G, c.B, c.A} {
		put(uint64(ch>>1), 7) // endpoint 0
		put(uint64(ch>>1), 7) // endpoint 1
	}
	put(1, 1) // p-bits
	put(1, 1)
	put(0, 63) // all indices on endpoint 0

	block := make([]byte, 16)
	binary.LittleEndian.PutUint64(block[0:8], lo)
	binary.LittleEndian.PutUint64(block[8:16], hi)
	return block
}

// bc1GridBlock quantizes a 4x4 tile to a four-color BC1 block: endpoints
// from the extreme-luminance pixels, then nearest-palette indices. It
// returns the block alongside the exact colors a decoder must reproduce.
func bc1GridBlock(px [16]texpix.Color32) ([]byte, [16]texpix.Color) {
	lum := func(c texpix.Color32) int { return 299*int(c.R) + 587*int(c.G) + 114*int(c.B) }
	hi, lo := 0, 0
	for i, c := range px {
		if lum(c) > lum(px[hi]) {
			hi = i
		}
		if lum(c) < lum(px[lo]) {
			lo = i
		}
	}
	c0 := pack565(px[hi].R, px[hi].G, px[hi].B)
	c1 := pack565(px[lo].R, px[lo].G, px[lo].B)
	if c0 < c1 {
		c0, c1 = c1, c0
	}

	unpack := func(v uint16) texpix.Color {
		return texpix.Color{R: float32(v>>11&0x1F) / 31, G: float32(v>>5&0x3F) / 63, B: float32(v&0x1F) / 31, A: 1}
	}
	e0, e1 := unpack(c0), unpack(c1)
	pal := [4]texpix.Color{
		e0,
		e1,
		{R: (2*e0.R + e1.R) / 3, G: (2*e0.G + e1.G) / 3, B: (2*e0.B + e1.B) / 3, A: 1},
		{R: (e0.R + 2*e1.R) / 3, G: (e0.G + 2*e1.G) / 3, B: (e0.B + 2*e1.B) / 3, A: 1},
	}

	var bits uint32
	var want [16]texpix.Color
	for i, c := range px {
		best, bestD := 0, math.MaxFloat64
		for j, p := range pal {
			dr := float64(p.R) - float64(c.R)/255
			dg := float64(p.G) - float64(c.G)/255
			db := float64(p.B) - float64(c.B)/255
			if d := dr*dr + dg*dg + db*db; d < bestD {
				best, bestD = j, d
			}
		}
		bits |= uint32(best) << (uint(i) * 2)
		want[i] = pal[best]
	}

	block := make([]byte, 8)
	binary.LittleEndian.PutUint16(block[0:2], c0)
	binary.LittleEndian.PutUint16(block[2:4], c1)
	binary.LittleEndian.PutUint32(block[4:8], bits)
	return block, want
}

// bc4GridChannel quantizes sixteen scalar samples to one BC4 channel block:
// min/max endpoints, then nearest-ramp indices. It returns the block and the
// ramp values the decoder must land on.
func bc4GridChannel(vals [16]uint8) ([]byte, [16]float32) {
	e0, e1 := vals[0], vals[0]
	for _, v := range vals {
		if v > e0 {
			e0 = v
		}
		if v < e1 {
			e1 = v
		}
	}

	v0 := float32(e0) / 255
	v1 := float32(e1) / 255
	ramp := [8]float32{v0, v1}
	if e0 > e1 {
		for i := 2; i < 8; i++ {
			ramp[i] = (float32(8-i)*v0 + float32(i-1)*v1) / 7
		}
	} else {
		for i := 2; i < 6; i++ {
			ramp[i] = (float32(6-i)*v0 + float32(i-1)*v1) / 5
		}
		ramp[6], ramp[7] = 0, 1
	}

	var bits uint64
	var want [16]float32
	for i, v := range vals {
		f := float32(v) / 255
		best := 0
		bestD := float32(math.MaxFloat32)
		for j, r := range ramp {
			d := f - r
			if d < 0 {
				d = -d
			}
			if d < bestD {
				best, bestD = j, d
			}
		}
		bits |= uint64(best) << (uint(i) * 3)
		want[i] = ramp[best]
	}

	block := make([]byte, 8)
	block[0], block[1] = e0, e1
	for i := 0; i < 6; i++ {
		block[2+i] = byte(bits >> (uint(i) * 8))
	}
	return block, want
}

// flatBlockPayload tiles an 8x8 single-mip payload from four solid blocks.
func flatBlockPayload(encode func(c texpix.Color32) []byte, colors [4]texpix.Color32) []byte {
	var payload []byte
	for _, c := range colors {
		payload = append(payload, encode(c)...)
	}
	return payload
}

// palettePayload lays out a palette texture over the reference grid: the
// RGBA32 color table, padded to the format's fixed entry count, followed by
// the identity index stream.
func palettePayload(format texpix.Format) []byte {
	entries := 16
	if format == texpix.FormatPalette8 {
		entries = 256
	}
	payload := make([]byte, 0, entries*4+16)
	for _, c := range refGrid {
		payload = append(payload, c.R, c.G, c.B, c.A)
	}
	payload = append(payload, make([]byte, (entries-16)*4)...)

	if format == texpix.FormatPalette4 {
		for i := 0; i < 16; i += 2 {
			payload = append(payload, uint8(i+1)<<4|uint8(i)) // low nibble first
		}
	} else {
		for i := 0; i < 16; i++ {
			payload = append(payload, uint8(i))
		}
	}
	return payload
}
