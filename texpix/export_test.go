package texpix

// Hooks for the external test package.
var (
	Float32ToHalf = float32ToHalf
	HalfToFloat32 = halfToFloat32
)
