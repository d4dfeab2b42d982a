package texpix

// Color is a linear RGBA sample with float32 components. Unorm formats map
// their channels into [0, 1]; HDR formats may exceed that range.
type Color struct {
	R, G, B, A float32
}

// Color32 is an RGBA sample with 8-bit components.
type Color32 struct {
	R, G, B, A uint8
}

// To32 converts to a byte sample by rounding each component of c*255,
// clamping to [0, 255].
func (c Color) To32() Color32 {
	return Color32{
		R: unormToByte(c.R),
		G: unormToByte(c.G),
		B: unormToByte(c.B),
		A: unormToByte(c.A),
	}
}

// Color converts to a float sample by dividing each component by 255.
func (c Color32) Color() Color {
	return Color{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255,
	}
}

func unormToByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

func lerpColor(a, b Color, t float32) Color {
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}
