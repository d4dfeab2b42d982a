package texpix

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// parallelThreshold is the work-item count below which bulk decode runs
// sequentially; goroutine startup dominates for tiny mips.
const parallelThreshold = 32

// decodeParallel runs fn(i) for every i in [0, n). Items are handed to
// workers through an atomic counter; each item writes only its own output
// range, so ordering never affects the result.
func decodeParallel(n int, fn func(i int)) {
	procs := runtime.GOMAXPROCS(0)
	if procs > n {
		procs = n
	}
	if procs <= 1 || n < parallelThreshold {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var next uint32
	var wg sync.WaitGroup
	wg.Add(procs)
	for w := 0; w < procs; w++ {
		go func() {
			defer wg.Done()
			for {
				i := int(atomic.AddUint32(&next, 1) - 1)
				if i >= n {
					return
				}
				fn(i)
			}
		}()
	}
	wg.Wait()
}

// blockDecodeFunc expands one compressed block into its 16 texels in
// row-major order.
type blockDecodeFunc func(block []byte, out *[16]Color)

// blockSource decodes the 4x4-block families. Single-pixel queries decode
// the containing block and select one texel; bulk queries fan out over the
// mip's block grid.
type blockSource struct {
	texDims
	format      Format
	data        []byte
	blockBytes  int
	decodeBlock blockDecodeFunc
}

func newBlockSource(format Format, data []byte, dims texDims, decode blockDecodeFunc) *blockSource {
	return &blockSource{
		texDims:     dims,
		format:      format,
		data:        data,
		blockBytes:  format.BlockBytes(),
		decodeBlock: decode,
	}
}

func (s *blockSource) Format() Format { return s.format }
func (s *blockSource) Raw() []byte    { return s.data }

func (s *blockSource) block(mip, bx, by int) []byte {
	idx := blockMipOffset(s.width, s.height, mip) + by*blockDim(s.width, mip) + bx
	off := idx * s.blockBytes
	return s.data[off : off+s.blockBytes]
}

func (s *blockSource) Pixel(x, y, mip int) (Color, error) {
	w, h, err := s.MipSize(mip)
	if err != nil {
		return Color{}, err
	}
	x = clampCoord(x, w)
	y = clampCoord(y, h)

	var texels [16]Color
	s.decodeBlock(s.block(mip, x/4, y/4), &texels)
	return texels[(y%4)*4+(x%4)], nil
}

func (s *blockSource) Pixel32(x, y, mip int) (Color32, error) {
	c, err := s.Pixel(x, y, mip)
	if err != nil {
		return Color32{}, err
	}
	return c.To32(), nil
}

func (s *blockSource) Pixels(mip int) ([]Color, error) {
	w, h, err := s.MipSize(mip)
	if err != nil {
		return nil, err
	}
	out := make([]Color, w*h)
	s.decodeMip(mip, w, h, func(i int, c Color) { out[i] = c })
	return out, nil
}

func (s *blockSource) Pixels32(mip int) ([]Color32, error) {
	w, h, err := s.MipSize(mip)
	if err != nil {
		return nil, err
	}
	out := make([]Color32, w*h)
	s.decodeMip(mip, w, h, func(i int, c Color) { out[i] = c.To32() })
	return out, nil
}

// decodeMip expands every block of the mip, clipping texels that fall beyond
// the pixel grid on non-multiple-of-4 dimensions. Blocks map to disjoint
// output regions.
func (s *blockSource) decodeMip(mip, w, h int, set func(i int, c Color)) {
	bw := blockDim(s.width, mip)
	bh := blockDim(s.height, mip)
	decodeParallel(bw*bh, func(bi int) {
		bx, by := bi%bw, bi/bw

		var texels [16]Color
		s.decodeBlock(s.block(mip, bx, by), &texels)

		for ty := 0; ty < 4; ty++ {
			py := by*4 + ty
			if py >= h {
				break
			}
			for tx := 0; tx < 4; tx++ {
				px := bx*4 + tx
				if px >= w {
					break
				}
				set(py*w+px, texels[ty*4+tx])
			}
		}
	})
}
