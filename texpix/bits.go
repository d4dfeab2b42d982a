package texpix

import "encoding/binary"

// blockBits is a bit cursor over one 16-byte compressed block, held as two
// little-endian 64-bit words. Reads transparently span the lo/hi boundary.
// Both the BC6H and BC7 decoders consume their blocks through this cursor.
type blockBits struct {
	lo, hi uint64
	pos    uint
}

func newBlockBits(block []byte) blockBits {
	return blockBits{
		lo: binary.LittleEndian.Uint64(block[0:8]),
		hi: binary.LittleEndian.Uint64(block[8:16]),
	}
}

// read consumes the next n bits (n <= 32) and returns them right-aligned.
func (b *blockBits) read(n uint) uint32 {
	if n == 0 {
		return 0
	}
	var v uint64
	if b.pos < 64 {
		// Go defines x<<64 as 0, so the hi term vanishes when pos is 0.
		v = (b.lo >> b.pos) | (b.hi << (64 - b.pos))
	} else {
		v = b.hi >> (b.pos - 64)
	}
	b.pos += n
	return uint32(v) & ((1 << n) - 1)
}

// readBit consumes a single bit.
func (b *blockBits) readBit() uint32 {
	return b.read(1)
}
