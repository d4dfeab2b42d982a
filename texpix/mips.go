package texpix

// texDims holds the immutable top-level dimensions shared by every decoder.
// Mip m has dimensions max(width>>m, 1) x max(height>>m, 1).
type texDims struct {
	width    int
	height   int
	mipCount int
}

func (d texDims) Width() int    { return d.width }
func (d texDims) Height() int   { return d.height }
func (d texDims) MipCount() int { return d.mipCount }

// MipSize reports the pixel dimensions of mip level mip.
func (d texDims) MipSize(mip int) (w, h int, err error) {
	if mip < 0 || mip >= d.mipCount {
		return 0, 0, newError(ErrIndexOutOfRange, "texpix: mip index out of range")
	}
	w, h = mipDim(d.width, mip), mipDim(d.height, mip)
	return w, h, nil
}

func mipDim(dim, mip int) int {
	dim >>= uint(mip)
	if dim < 1 {
		return 1
	}
	return dim
}

// linearPixelCount is the total pixel count of mips [0, mips).
func linearPixelCount(width, height, mips int) int {
	n := 0
	for m := 0; m < mips; m++ {
		n += mipDim(width, m) * mipDim(height, m)
	}
	return n
}

// linearMipOffset is the pixel offset of mip level mip within the chain.
func linearMipOffset(width, height, mip int) int {
	return linearPixelCount(width, height, mip)
}

func blockDim(dim, mip int) int {
	return (mipDim(dim, mip) + 3) / 4
}

// blockCount is the total 4x4 block count of mips [0, mips).
func blockCount(width, height, mips int) int {
	n := 0
	for m := 0; m < mips; m++ {
		n += blockDim(width, m) * blockDim(height, m)
	}
	return n
}

// blockMipOffset is the block offset of mip level mip within the chain.
func blockMipOffset(width, height, mip int) int {
	return blockCount(width, height, mip)
}

// clampCoord applies clamp-to-edge addressing: out-of-range coordinates
// resolve to the nearest edge pixel, never wrap and never error.
func clampCoord(v, dim int) int {
	if v < 0 {
		return 0
	}
	if v >= dim {
		return dim - 1
	}
	return v
}
