package texpix

import "encoding/binary"

// unpack565 expands a 16-bit RGB565 endpoint to a float color (alpha 1).
func unpack565(v uint16) Color {
	return Color{
		R: float32(v>>11&0x1F) / 31,
		G: float32(v>>5&0x3F) / 63,
		B: float32(v&0x1F) / 31,
		A: 1,
	}
}

// bc1Palette builds the 4-entry color table for a BC1-style color block.
//
// The branch on endpoint ordering is load-bearing: c0 > c1 selects the
// opaque 4-color mode, c0 <= c1 the 3-color punch-through mode whose last
// entry is transparent black. fourColor forces the opaque table regardless
// of ordering (BC3's color half has no punch-through mode).
func bc1Palette(c0raw, c1raw uint16, fourColor bool) [4]Color {
	c0 := unpack565(c0raw)
	c1 := unpack565(c1raw)

	var pal [4]Color
	pal[0] = c0
	pal[1] = c1
	if fourColor || c0raw > c1raw {
		pal[2] = Color{
			R: (2*c0.R + c1.R) / 3,
			G: (2*c0.G + c1.G) / 3,
			B: (2*c0.B + c1.B) / 3,
			A: 1,
		}
		pal[3] = Color{
			R: (c0.R + 2*c1.R) / 3,
			G: (c0.G + 2*c1.G) / 3,
			B: (c0.B + 2*c1.B) / 3,
			A: 1,
		}
	} else {
		pal[2] = Color{
			R: (c0.R + c1.R) / 2,
			G: (c0.G + c1.G) / 2,
			B: (c0.B + c1.B) / 2,
			A: 1,
		}
		pal[3] = Color{} // transparent black
	}
	return pal
}

// decodeBC1Block expands an 8-byte BC1/DXT1 block: two RGB565 endpoints
// followed by sixteen 2-bit palette indices in row-major order.
func decodeBC1Block(block []byte, out *[16]Color) {
	pal := bc1Palette(
		binary.LittleEndian.Uint16(block[0:2]),
		binary.LittleEndian.Uint16(block[2:4]),
		false,
	)
	indices := binary.LittleEndian.Uint32(block[4:8])
	for i := 0; i < 16; i++ {
		out[i] = pal[indices>>(uint(i)*2)&0x3]
	}
}
