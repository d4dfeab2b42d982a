package texpix_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbitools/texpix/texpix"
)

func TestAsTypeUint32(t *testing.T) {
	data := make([]byte, 64)
	for i := 0; i < 16; i++ {
		binary.LittleEndian.PutUint32(data[i*4:], uint32(i)*0x01010101)
	}
	src, err := texpix.New(texpix.FormatRGBA32, data, 4, 4, 1)
	require.NoError(t, err)

	words, err := texpix.AsType[uint32](src)
	require.NoError(t, err)
	require.Len(t, words, 16)
	for i, w := range words {
		assert.Equal(t, uint32(i)*0x01010101, w)
	}

	// The view aliases the buffer: writes through it are visible to the
	// decoder.
	words[0] = 0x000000FF
	px, err := src.Pixel32(0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, texpix.Color32{R: 255}, px)
}

func TestAsTypeStruct(t *testing.T) {
	type rgba struct{ R, G, B, A uint8 }

	data := make([]byte, 64)
	data[4], data[5], data[6], data[7] = 1, 2, 3, 4
	src, err := texpix.New(texpix.FormatRGBA32, data, 4, 4, 1)
	require.NoError(t, err)

	px, err := texpix.AsType[rgba](src)
	require.NoError(t, err)
	require.Len(t, px, 16)
	assert.Equal(t, rgba{1, 2, 3, 4}, px[1])
}

func TestAsTypeSizeMismatch(t *testing.T) {
	src, err := texpix.New(texpix.FormatRGB24, make([]byte, 48), 4, 4, 1)
	require.NoError(t, err)

	// 48 bytes of RGB24 do not divide into 16-byte elements.
	_, err = texpix.AsType[[16]byte](src)
	assert.Equal(t, texpix.ErrSizeMismatch, texpix.ErrorCodeOf(err))

	// But they do divide into 3-byte records.
	px, err := texpix.AsType[[3]byte](src)
	require.NoError(t, err)
	assert.Len(t, px, 16)
}
