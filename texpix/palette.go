package texpix

// paletteSource decodes the fixed-palette indexed layouts: an RGBA32 color
// table prefix (16 or 256 entries) followed by a packed index stream, 4 or 8
// bits per pixel. Palette textures carry a single mip level.
type paletteSource struct {
	texDims
	format    Format
	data      []byte
	tableLen  int // bytes occupied by the color table
	fourBit   bool
}

func newPaletteSource(format Format, data []byte, dims texDims) *paletteSource {
	return &paletteSource{
		texDims:  dims,
		format:   format,
		data:     data,
		tableLen: format.paletteEntries() * 4,
		fourBit:  format == FormatPalette4,
	}
}

func (s *paletteSource) Format() Format { return s.format }
func (s *paletteSource) Raw() []byte    { return s.data }

// entry reads palette entry n. No interpolation anywhere: palette decode is
// an exact table lookup.
func (s *paletteSource) entry(n int) Color {
	p := s.data[n*4 : n*4+4]
	return Color32{R: p[0], G: p[1], B: p[2], A: p[3]}.Color()
}

func (s *paletteSource) index(i int) int {
	if s.fourBit {
		b := s.data[s.tableLen+i/2]
		if i%2 == 0 {
			return int(b & 0xF) // low nibble first
		}
		return int(b >> 4)
	}
	return int(s.data[s.tableLen+i])
}

func (s *paletteSource) Pixel(x, y, mip int) (Color, error) {
	w, h, err := s.MipSize(mip)
	if err != nil {
		return Color{}, err
	}
	x = clampCoord(x, w)
	y = clampCoord(y, h)
	return s.entry(s.index(y*w + x)), nil
}

func (s *paletteSource) Pixel32(x, y, mip int) (Color32, error) {
	c, err := s.Pixel(x, y, mip)
	if err != nil {
		return Color32{}, err
	}
	return c.To32(), nil
}

func (s *paletteSource) Pixels(mip int) ([]Color, error) {
	w, h, err := s.MipSize(mip)
	if err != nil {
		return nil, err
	}
	out := make([]Color, w*h)
	decodeParallel(h, func(y int) {
		for x := 0; x < w; x++ {
			out[y*w+x] = s.entry(s.index(y*w + x))
		}
	})
	return out, nil
}

func (s *paletteSource) Pixels32(mip int) ([]Color32, error) {
	w, h, err := s.MipSize(mip)
	if err != nil {
		return nil, err
	}
	out := make([]Color32, w*h)
	decodeParallel(h, func(y int) {
		for x := 0; x < w; x++ {
			out[y*w+x] = s.entry(s.index(y*w + x)).To32()
		}
	})
	return out, nil
}
