package texpix

import "encoding/binary"

// blockBuilder assembles a 128-bit block LSB-first, mirroring the read
// cursor so tests can lay out fields exactly as the decoders consume them.
type blockBuilder struct {
	lo, hi uint64
	pos    uint
}

func (b *blockBuilder) put(v uint64, n uint) {
	v &= 1<<n - 1
	if b.pos < 64 {
		b.lo |= v << b.pos
		if b.pos+n > 64 {
			b.hi |= v >> (64 - b.pos)
		}
	} else {
		b.hi |= v << (b.pos - 64)
	}
	b.pos += n
}

func (b *blockBuilder) bytes() []byte {
	out := make([]byte, 16)
	binary.LittleEndian.PutUint64(out[0:8], b.lo)
	binary.LittleEndian.PutUint64(out[8:16], b.hi)
	return out
}
