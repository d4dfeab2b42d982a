package texpix

import "fmt"

// Format identifies the pixel encoding of a texture buffer. The caller
// derives the tag from container metadata (for example a DDS header); this
// package only interprets the raw payload.
type Format uint32

const (
	FormatInvalid Format = iota

	// Uncompressed layouts.
	FormatAlpha8
	FormatR8
	FormatR16
	FormatRG16
	FormatRGB24
	FormatRGB565
	FormatARGB4444
	FormatRGBA4444
	FormatRGBA32
	FormatARGB32
	FormatBGRA32
	FormatRHalf
	FormatRGHalf
	FormatRGBAHalf
	FormatRFloat
	FormatRGFloat
	FormatRGBAFloat

	// Block-compressed families (4x4 texel blocks).
	FormatDXT1
	FormatDXT5
	FormatBC4
	FormatBC5
	FormatBC6H
	FormatBC6HSigned
	FormatBC7

	// Fixed-palette indexed layouts (single mip only).
	FormatPalette4
	FormatPalette8
)

var formatNames = map[Format]string{
	FormatAlpha8:     "Alpha8",
	FormatR8:         "R8",
	FormatR16:        "R16",
	FormatRG16:       "RG16",
	FormatRGB24:      "RGB24",
	FormatRGB565:     "RGB565",
	FormatARGB4444:   "ARGB4444",
	FormatRGBA4444:   "RGBA4444",
	FormatRGBA32:     "RGBA32",
	FormatARGB32:     "ARGB32",
	FormatBGRA32:     "BGRA32",
	FormatRHalf:      "RHalf",
	FormatRGHalf:     "RGHalf",
	FormatRGBAHalf:   "RGBAHalf",
	FormatRFloat:     "RFloat",
	FormatRGFloat:    "RGFloat",
	FormatRGBAFloat:  "RGBAFloat",
	FormatDXT1:       "DXT1",
	FormatDXT5:       "DXT5",
	FormatBC4:        "BC4",
	FormatBC5:        "BC5",
	FormatBC6H:       "BC6H",
	FormatBC6HSigned: "BC6HSigned",
	FormatBC7:        "BC7",
	FormatPalette4:   "Palette4",
	FormatPalette8:   "Palette8",
}

func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Format(%d)", uint32(f))
}

// ParseFormat resolves a format name as printed by Format.String.
func ParseFormat(s string) (Format, error) {
	for f, name := range formatNames {
		if name == s {
			return f, nil
		}
	}
	return FormatInvalid, newError(ErrUnsupportedFormat, "texpix: unknown format "+s)
}

// PixelBytes reports the per-pixel byte size of an uncompressed format,
// or 0 for block and palette formats.
func (f Format) PixelBytes() int {
	switch f {
	case FormatAlpha8, FormatR8, FormatPalette8:
		return 1
	case FormatR16, FormatRG16, FormatRGB565, FormatARGB4444, FormatRGBA4444, FormatRHalf:
		return 2
	case FormatRGB24:
		return 3
	case FormatRGBA32, FormatARGB32, FormatBGRA32, FormatRGHalf, FormatRFloat:
		return 4
	case FormatRGBAHalf, FormatRGFloat:
		return 8
	case FormatRGBAFloat:
		return 16
	default:
		return 0
	}
}

// BlockBytes reports the per-block byte size of a block format, or 0.
func (f Format) BlockBytes() int {
	switch f {
	case FormatDXT1, FormatBC4:
		return 8
	case FormatDXT5, FormatBC5, FormatBC6H, FormatBC6HSigned, FormatBC7:
		return 16
	default:
		return 0
	}
}

// paletteEntries is the fixed color-table length of a palette format, or 0.
func (f Format) paletteEntries() int {
	switch f {
	case FormatPalette4:
		return 16
	case FormatPalette8:
		return 256
	default:
		return 0
	}
}

// DataSize returns the exact byte length a buffer must have to hold the full
// mip chain of a texture in the given format.
func DataSize(format Format, width, height, mipCount int) (int, error) {
	if width < 1 || height < 1 || mipCount < 1 {
		return 0, newError(ErrBadDimensions, "texpix: dimensions and mip count must be >= 1")
	}
	if n := format.paletteEntries(); n > 0 {
		if mipCount != 1 {
			return 0, newError(ErrBadDimensions, "texpix: palette formats hold a single mip level")
		}
		bitsPerIndex := 8
		if format == FormatPalette4 {
			bitsPerIndex = 4
		}
		return n*4 + (width*height*bitsPerIndex+7)/8, nil
	}
	if n := format.BlockBytes(); n > 0 {
		return blockCount(width, height, mipCount) * n, nil
	}
	if n := format.PixelBytes(); n > 0 {
		return linearPixelCount(width, height, mipCount) * n, nil
	}
	return 0, newError(ErrUnsupportedFormat, "texpix: no decoder for "+format.String())
}

// PixelSource is the uniform read-only contract every decoder implements.
//
// Pixel coordinates are clamped to the mip's edges; mip indices at or beyond
// MipCount fail with ErrIndexOutOfRange. A PixelSource holds no mutable
// state, so any number of goroutines may query it concurrently.
type PixelSource interface {
	Format() Format
	Width() int
	Height() int
	MipCount() int
	MipSize(mip int) (w, h int, err error)
	Pixel(x, y, mip int) (Color, error)
	Pixel32(x, y, mip int) (Color32, error)
	Pixels(mip int) ([]Color, error)
	Pixels32(mip int) ([]Color32, error)
	Raw() []byte
}

// New constructs a decoder view over data, which must hold the texture's
// entire mip chain in the given format. The buffer is borrowed, never copied
// and never written; it must outlive the returned view.
//
// Construction validates the buffer length against DataSize and fails with
// ErrSizeMismatch on any difference.
func New(format Format, data []byte, width, height, mipCount int) (PixelSource, error) {
	want, err := DataSize(format, width, height, mipCount)
	if err != nil {
		return nil, err
	}
	if len(data) != want {
		return nil, newError(ErrSizeMismatch, fmt.Sprintf(
			"texpix: %s %dx%d with %d mips needs %d bytes, got %d",
			format, width, height, mipCount, want, len(data)))
	}

	dims := texDims{width: width, height: height, mipCount: mipCount}

	switch format {
	case FormatAlpha8, FormatR8, FormatR16, FormatRG16, FormatRGB24,
		FormatRGB565, FormatARGB4444, FormatRGBA4444, FormatRGBA32,
		FormatARGB32, FormatBGRA32, FormatRHalf, FormatRGHalf,
		FormatRGBAHalf, FormatRFloat, FormatRGFloat, FormatRGBAFloat:
		return newLinearSource(format, data, dims), nil
	case FormatDXT1:
		return newBlockSource(format, data, dims, decodeBC1Block), nil
	case FormatDXT5:
		return newBlockSource(format, data, dims, decodeBC3Block), nil
	case FormatBC4:
		return newBlockSource(format, data, dims, decodeBC4Block), nil
	case FormatBC5:
		return newBlockSource(format, data, dims, decodeBC5Block), nil
	case FormatBC6H:
		return newBlockSource(format, data, dims, func(block []byte, out *[16]Color) {
			decodeBC6HBlock(block, false, out)
		}), nil
	case FormatBC6HSigned:
		return newBlockSource(format, data, dims, func(block []byte, out *[16]Color) {
			decodeBC6HBlock(block, true, out)
		}), nil
	case FormatBC7:
		return newBlockSource(format, data, dims, decodeBC7Block), nil
	case FormatPalette4, FormatPalette8:
		return newPaletteSource(format, data, dims), nil
	default:
		return nil, newError(ErrUnsupportedFormat, "texpix: no decoder for "+format.String())
	}
}
