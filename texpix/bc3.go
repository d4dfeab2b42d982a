package texpix

import "encoding/binary"

// decodeBC3Block expands a 16-byte BC3/DXT5 block: a BC4-style alpha half
// followed by a BC1-style color half. The color half is always decoded in
// the opaque 4-color mode.
func decodeBC3Block(block []byte, out *[16]Color) {
	var alpha [16]float32
	decodeBC4Channel(block[0:8], &alpha)

	pal := bc1Palette(
		binary.LittleEndian.Uint16(block[8:10]),
		binary.LittleEndian.Uint16(block[10:12]),
		true,
	)
	indices := binary.LittleEndian.Uint32(block[12:16])
	for i := 0; i < 16; i++ {
		c := pal[indices>>(uint(i)*2)&0x3]
		c.A = alpha[i]
		out[i] = c
	}
}
