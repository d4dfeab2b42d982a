package texpix

import (
	"encoding/binary"
	"math"
)

// linearSource decodes all uncompressed layouts through a per-format unpack
// function over fixed-size pixel records.
//
// Formats narrower than four channels fill the missing channels with the
// format's fixed defaults; those defaults are part of the decode contract
// (missing color data reads as 1.0, see unpack functions below).
type linearSource struct {
	texDims
	format   Format
	data     []byte
	pixBytes int
	unpack   func(p []byte) Color
}

func newLinearSource(format Format, data []byte, dims texDims) *linearSource {
	return &linearSource{
		texDims:  dims,
		format:   format,
		data:     data,
		pixBytes: format.PixelBytes(),
		unpack:   linearUnpackers[format],
	}
}

func (s *linearSource) Format() Format { return s.format }
func (s *linearSource) Raw() []byte    { return s.data }

func (s *linearSource) Pixel(x, y, mip int) (Color, error) {
	w, h, err := s.MipSize(mip)
	if err != nil {
		return Color{}, err
	}
	x = clampCoord(x, w)
	y = clampCoord(y, h)
	idx := linearMipOffset(s.width, s.height, mip) + y*w + x
	off := idx * s.pixBytes
	return s.unpack(s.data[off : off+s.pixBytes]), nil
}

func (s *linearSource) Pixel32(x, y, mip int) (Color32, error) {
	c, err := s.Pixel(x, y, mip)
	if err != nil {
		return Color32{}, err
	}
	return c.To32(), nil
}

func (s *linearSource) Pixels(mip int) ([]Color, error) {
	w, h, err := s.MipSize(mip)
	if err != nil {
		return nil, err
	}
	out := make([]Color, w*h)
	s.decodeMip(mip, w, h, func(i int, c Color) { out[i] = c })
	return out, nil
}

func (s *linearSource) Pixels32(mip int) ([]Color32, error) {
	w, h, err := s.MipSize(mip)
	if err != nil {
		return nil, err
	}
	out := make([]Color32, w*h)
	s.decodeMip(mip, w, h, func(i int, c Color) { out[i] = c.To32() })
	return out, nil
}

// decodeMip fans rows out over workers; each row writes a disjoint output
// range, so parallel and sequential decode produce identical results.
func (s *linearSource) decodeMip(mip, w, h int, set func(i int, c Color)) {
	base := linearMipOffset(s.width, s.height, mip)
	decodeParallel(h, func(y int) {
		off := (base + y*w) * s.pixBytes
		for x := 0; x < w; x++ {
			set(y*w+x, s.unpack(s.data[off:off+s.pixBytes]))
			off += s.pixBytes
		}
	})
}

var linearUnpackers = map[Format]func(p []byte) Color{
	FormatAlpha8:    unpackAlpha8,
	FormatR8:        unpackR8,
	FormatR16:       unpackR16,
	FormatRG16:      unpackRG16,
	FormatRGB24:     unpackRGB24,
	FormatRGB565:    unpackRGB565,
	FormatARGB4444:  unpackARGB4444,
	FormatRGBA4444:  unpackRGBA4444,
	FormatRGBA32:    unpackRGBA32,
	FormatARGB32:    unpackARGB32,
	FormatBGRA32:    unpackBGRA32,
	FormatRHalf:     unpackRHalf,
	FormatRGHalf:    unpackRGHalf,
	FormatRGBAHalf:  unpackRGBAHalf,
	FormatRFloat:    unpackRFloat,
	FormatRGFloat:   unpackRGFloat,
	FormatRGBAFloat: unpackRGBAFloat,
}

func unpackAlpha8(p []byte) Color {
	return Color{R: 1, G: 1, B: 1, A: float32(p[0]) / 255}
}

func unpackR8(p []byte) Color {
	return Color{R: float32(p[0]) / 255, G: 1, B: 1, A: 1}
}

func unpackR16(p []byte) Color {
	v := binary.LittleEndian.Uint16(p)
	return Color{R: float32(v) / 65535, G: 1, B: 1, A: 1}
}

func unpackRG16(p []byte) Color {
	return Color{R: float32(p[0]) / 255, G: float32(p[1]) / 255, B: 1, A: 1}
}

func unpackRGB24(p []byte) Color {
	return Color{
		R: float32(p[0]) / 255,
		G: float32(p[1]) / 255,
		B: float32(p[2]) / 255,
		A: 1,
	}
}

func unpackRGB565(p []byte) Color {
	v := binary.LittleEndian.Uint16(p)
	return Color{
		R: float32(v>>11&0x1F) / 31,
		G: float32(v>>5&0x3F) / 63,
		B: float32(v&0x1F) / 31,
		A: 1,
	}
}

func unpackARGB4444(p []byte) Color {
	v := binary.LittleEndian.Uint16(p)
	return Color{
		A: float32(v>>12&0xF) / 15,
		R: float32(v>>8&0xF) / 15,
		G: float32(v>>4&0xF) / 15,
		B: float32(v&0xF) / 15,
	}
}

func unpackRGBA4444(p []byte) Color {
	v := binary.LittleEndian.Uint16(p)
	return Color{
		R: float32(v>>12&0xF) / 15,
		G: float32(v>>8&0xF) / 15,
		B: float32(v>>4&0xF) / 15,
		A: float32(v&0xF) / 15,
	}
}

func unpackRGBA32(p []byte) Color {
	return Color{
		R: float32(p[0]) / 255,
		G: float32(p[1]) / 255,
		B: float32(p[2]) / 255,
		A: float32(p[3]) / 255,
	}
}

func unpackARGB32(p []byte) Color {
	return Color{
		A: float32(p[0]) / 255,
		R: float32(p[1]) / 255,
		G: float32(p[2]) / 255,
		B: float32(p[3]) / 255,
	}
}

func unpackBGRA32(p []byte) Color {
	return Color{
		B: float32(p[0]) / 255,
		G: float32(p[1]) / 255,
		R: float32(p[2]) / 255,
		A: float32(p[3]) / 255,
	}
}

func unpackRHalf(p []byte) Color {
	return Color{R: halfToFloat32(binary.LittleEndian.Uint16(p)), G: 1, B: 1, A: 1}
}

func unpackRGHalf(p []byte) Color {
	return Color{
		R: halfToFloat32(binary.LittleEndian.Uint16(p[0:2])),
		G: halfToFloat32(binary.LittleEndian.Uint16(p[2:4])),
		B: 1,
		A: 1,
	}
}

func unpackRGBAHalf(p []byte) Color {
	return Color{
		R: halfToFloat32(binary.LittleEndian.Uint16(p[0:2])),
		G: halfToFloat32(binary.LittleEndian.Uint16(p[2:4])),
		B: halfToFloat32(binary.LittleEndian.Uint16(p[4:6])),
		A: halfToFloat32(binary.LittleEndian.Uint16(p[6:8])),
	}
}

func unpackRFloat(p []byte) Color {
	return Color{R: math.Float32frombits(binary.LittleEndian.Uint32(p)), G: 1, B: 1, A: 1}
}

func unpackRGFloat(p []byte) Color {
	return Color{
		R: math.Float32frombits(binary.LittleEndian.Uint32(p[0:4])),
		G: math.Float32frombits(binary.LittleEndian.Uint32(p[4:8])),
		B: 1,
		A: 1,
	}
}

func unpackRGBAFloat(p []byte) Color {
	return Color{
		R: math.Float32frombits(binary.LittleEndian.Uint32(p[0:4])),
		G: math.Float32frombits(binary.LittleEndian.Uint32(p[4:8])),
		B: math.Float32frombits(binary.LittleEndian.Uint32(p[8:12])),
		A: math.Float32frombits(binary.LittleEndian.Uint32(p[12:16])),
	}
}
