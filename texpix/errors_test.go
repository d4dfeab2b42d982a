package texpix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/orbitools/texpix/texpix"
)

func TestErrorString(t *testing.T) {
	cases := []struct {
		code texpix.ErrorCode
		want string
	}{
		{texpix.OK, "TEXPIX_OK"},
		{texpix.ErrSizeMismatch, "TEXPIX_ERR_SIZE_MISMATCH"},
		{texpix.ErrIndexOutOfRange, "TEXPIX_ERR_INDEX_OUT_OF_RANGE"},
		{texpix.ErrUnsupportedFormat, "TEXPIX_ERR_UNSUPPORTED_FORMAT"},
		{texpix.ErrBadDimensions, "TEXPIX_ERR_BAD_DIMENSIONS"},
		{texpix.ErrorCode(255), ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, texpix.ErrorString(c.code))
	}
}

func TestErrorCodeOf(t *testing.T) {
	assert.Equal(t, texpix.OK, texpix.ErrorCodeOf(nil))

	_, err := texpix.New(texpix.FormatRGBA32, make([]byte, 5), 4, 4, 1)
	assert.Equal(t, texpix.ErrSizeMismatch, texpix.ErrorCodeOf(err))

	// Foreign errors fall back to the unsupported-format code.
	assert.Equal(t, texpix.ErrUnsupportedFormat, texpix.ErrorCodeOf(errors.New("boom")))
}

func TestErrorMessage(t *testing.T) {
	e := &texpix.Error{Code: texpix.ErrSizeMismatch, Msg: "texpix: short buffer"}
	assert.Equal(t, "texpix: short buffer", e.Error())

	bare := &texpix.Error{Code: texpix.ErrIndexOutOfRange}
	assert.Equal(t, "texpix: TEXPIX_ERR_INDEX_OUT_OF_RANGE", bare.Error())

	var typed *texpix.Error
	_, err := texpix.New(texpix.FormatRGBA32, nil, 4, 4, 1)
	assert.True(t, errors.As(err, &typed))
	assert.Equal(t, texpix.ErrSizeMismatch, typed.Code)
	assert.NotEmpty(t, err.Error())
}
