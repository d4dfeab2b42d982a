package texpix

import "errors"

// ErrorCode classifies decoder failures. Every error returned by this
// package carries one of these codes.
type ErrorCode uint32

const (
	// OK is the code reported for a nil error.
	OK ErrorCode = 0

	// ErrSizeMismatch means the pixel buffer length does not match the
	// size implied by the format and dimensions. Raised at construction.
	ErrSizeMismatch ErrorCode = 1

	// ErrIndexOutOfRange means a mip index at or beyond the mip count was
	// requested on an explicit query.
	ErrIndexOutOfRange ErrorCode = 2

	// ErrUnsupportedFormat means the caller asked for a format tag this
	// package has no decoder for. Callers typically treat this as a signal
	// to fall back to a different loading strategy.
	ErrUnsupportedFormat ErrorCode = 3

	// ErrBadDimensions means width, height or mip count is out of range
	// for the format (zero dimensions, or mips on a single-mip format).
	ErrBadDimensions ErrorCode = 4
)

// ErrorString returns the stable name for a code, or "" for unknown codes.
func ErrorString(code ErrorCode) string {
	switch code {
	case OK:
		return "TEXPIX_OK"
	case ErrSizeMismatch:
		return "TEXPIX_ERR_SIZE_MISMATCH"
	case ErrIndexOutOfRange:
		return "TEXPIX_ERR_INDEX_OUT_OF_RANGE"
	case ErrUnsupportedFormat:
		return "TEXPIX_ERR_UNSUPPORTED_FORMAT"
	case ErrBadDimensions:
		return "TEXPIX_ERR_BAD_DIMENSIONS"
	default:
		return ""
	}
}

// Error is a typed error carrying a texpix error code.
type Error struct {
	Code ErrorCode
	Msg  string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg != "" {
		return e.Msg
	}
	if s := ErrorString(e.Code); s != "" {
		return "texpix: " + s
	}
	return "texpix: error"
}

// ErrorCodeOf returns the code carried by err, or OK for nil.
//
// For non-*Error errors it returns ErrUnsupportedFormat as a conservative
// fallback.
func ErrorCodeOf(err error) ErrorCode {
	if err == nil {
		return OK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrUnsupportedFormat
}

func newError(code ErrorCode, msg string) error {
	return &Error{Code: code, Msg: msg}
}
