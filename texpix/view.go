package texpix

import "unsafe"

// AsType reinterprets a decoder's raw bytes as a slice of T without copying,
// for handing still-packed pixel data onward (for example to a GPU upload
// path). The buffer length must be an exact multiple of T's size; the
// returned slice aliases the buffer and must not be resized or written.
func AsType[T any](src PixelSource) ([]T, error) {
	return bytesAsType[T](src.Raw())
}

func bytesAsType[T any](raw []byte) ([]T, error) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if len(raw)%size != 0 {
		return nil, newError(ErrSizeMismatch, "texpix: buffer length is not a multiple of the element size")
	}
	if len(raw) == 0 {
		return nil, nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&raw[0])), len(raw)/size), nil
}
