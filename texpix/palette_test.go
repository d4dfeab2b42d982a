package texpix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orbitools/texpix/texpix"
)

func TestPaletteFormats(t *testing.T) {
	for _, format := range []texpix.Format{texpix.FormatPalette4, texpix.FormatPalette8} {
		t.Run(format.String(), func(t *testing.T) {
			payload := palettePayload(format)

			want, err := texpix.DataSize(format, 4, 4, 1)
			require.NoError(t, err)
			require.Len(t, payload, want)

			src, err := texpix.New(format, payload, 4, 4, 1)
			require.NoError(t, err)

			// Palette decode is an exact table lookup.
			px, err := src.Pixels32(0)
			require.NoError(t, err)
			require.Equal(t, refGrid[:], px)

			for i, c := range refGrid {
				got, err := src.Pixel32(i%4, i/4, 0)
				require.NoError(t, err)
				require.Equal(t, c, got, "texel %d", i)
			}
		})
	}
}

func TestPalette4NibbleOrder(t *testing.T) {
	// 2x1 texture: one index byte carrying pixel 0 in the low nibble.
	payload := make([]byte, 16*4+1)
	payload[1*4+0] = 255 // entry 1 = red
	payload[1*4+3] = 255
	payload[2*4+2] = 255 // entry 2 = blue
	payload[2*4+3] = 255
	payload[64] = 2<<4 | 1

	src, err := texpix.New(texpix.FormatPalette4, payload, 2, 1, 1)
	require.NoError(t, err)

	p0, err := src.Pixel32(0, 0, 0)
	require.NoError(t, err)
	require.Equal(t, texpix.Color32{R: 255, A: 255}, p0)

	p1, err := src.Pixel32(1, 0, 0)
	require.NoError(t, err)
	require.Equal(t, texpix.Color32{B: 255, A: 255}, p1)
}

func TestPaletteRejectsMipChains(t *testing.T) {
	_, err := texpix.DataSize(texpix.FormatPalette8, 4, 4, 2)
	require.Equal(t, texpix.ErrBadDimensions, texpix.ErrorCodeOf(err))
}
