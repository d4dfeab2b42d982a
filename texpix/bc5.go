package texpix

// decodeBC5Block expands a 16-byte BC5 block: two independent BC4 channel
// halves carrying red and green.
func decodeBC5Block(block []byte, out *[16]Color) {
	var r, g [16]float32
	decodeBC4Channel(block[0:8], &r)
	decodeBC4Channel(block[8:16], &g)
	for i := 0; i < 16; i++ {
		out[i] = Color{R: r[i], G: g[i], B: 1, A: 1}
	}
}
