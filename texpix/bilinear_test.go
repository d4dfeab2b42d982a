package texpix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orbitools/texpix/texpix"
)

func gridSource(t *testing.T) texpix.PixelSource {
	t.Helper()
	var payload []byte
	for _, c := range refGrid {
		payload = append(payload, c.R, c.G, c.B, c.A)
	}
	src, err := texpix.New(texpix.FormatRGBA32, payload, 4, 4, 1)
	require.NoError(t, err)
	return src
}

func TestBilinearTexelCenters(t *testing.T) {
	// Sampling at (x+0.5)/w, (y+0.5)/h must reproduce texel (x,y) with no
	// blending at all.
	src := gridSource(t)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			u := (float32(x) + 0.5) / 4
			v := (float32(y) + 0.5) / 4

			want, err := src.Pixel(x, y, 0)
			require.NoError(t, err)
			got, err := texpix.Bilinear(src, u, v, 0)
			require.NoError(t, err)
			require.Equal(t, want, got, "texel (%d,%d)", x, y)
		}
	}
}

func TestBilinearMidpoints(t *testing.T) {
	src := gridSource(t)

	// Halfway between texels (0,0) and (1,0): the horizontal average of
	// red and green.
	got, err := texpix.Bilinear(src, 0.25, 0.125, 0)
	require.NoError(t, err)
	require.InDelta(t, 0.5, got.R, 1e-6)
	require.InDelta(t, 0.5, got.G, 1e-6)
	require.InDelta(t, 0, got.B, 1e-6)
	require.InDelta(t, 1, got.A, 1e-6)

	// Center of the top-left 2x2 quad: equal weights on four texels.
	got, err = texpix.Bilinear(src, 0.25, 0.25, 0)
	require.NoError(t, err)
	wantR := (1.0 + 0 + 1 + 0) / 4.0
	wantG := (0.0 + 1 + 0 + 1) / 4.0
	wantB := (0.0 + 0 + 1 + 1) / 4.0
	require.InDelta(t, wantR, got.R, 1e-6)
	require.InDelta(t, wantG, got.G, 1e-6)
	require.InDelta(t, wantB, got.B, 1e-6)
}

func TestBilinearEdgeClamp(t *testing.T) {
	// Samples at and beyond the texture border clamp to the edge texels.
	src := gridSource(t)

	corner, err := src.Pixel(0, 0, 0)
	require.NoError(t, err)

	for _, uv := range [][2]float32{{0, 0}, {-1, -1}, {0.01, 0}} {
		got, err := texpix.Bilinear(src, uv[0], uv[1], 0)
		require.NoError(t, err)
		require.InDelta(t, corner.R, got.R, 1e-6, "uv %v", uv)
		require.InDelta(t, corner.G, got.G, 1e-6, "uv %v", uv)
	}

	far, err := src.Pixel(3, 3, 0)
	require.NoError(t, err)
	got, err := texpix.Bilinear(src, 2, 2, 0)
	require.NoError(t, err)
	require.Equal(t, far, got)
}

func TestBilinearWorksOnBlockFormats(t *testing.T) {
	// The sampler is format-agnostic: the same code path runs on top of a
	// compressed source.
	var indices [16]uint32
	src, err := texpix.New(texpix.FormatDXT1, bc1Block(0xF800, 0x001F, indices), 4, 4, 1)
	require.NoError(t, err)

	got, err := texpix.Bilinear(src, 0.5, 0.5, 0)
	require.NoError(t, err)
	require.Equal(t, texpix.Color{R: 1, A: 1}, got)
}

func TestBilinearMipOutOfRange(t *testing.T) {
	src := gridSource(t)
	_, err := texpix.Bilinear(src, 0.5, 0.5, 1)
	require.Equal(t, texpix.ErrIndexOutOfRange, texpix.ErrorCodeOf(err))
}
