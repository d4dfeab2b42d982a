package texpix

import "math"

// Bilinear samples src at normalized coordinates (u, v) in [0, 1] with
// bilinear filtering and clamp-to-edge addressing. It is implemented once,
// on top of each decoder's own Pixel accessor, and works for every format.
//
// Sample positions follow the half-texel convention: u = (x+0.5)/w hits
// texel x exactly, with no blending at texel centers.
func Bilinear(src PixelSource, u, v float32, mip int) (Color, error) {
	w, h, err := src.MipSize(mip)
	if err != nil {
		return Color{}, err
	}

	u = clampUnit(u)
	v = clampUnit(v)

	x := u*float32(w) - 0.5
	y := v*float32(h) - 0.5

	x0 := int(math.Floor(float64(x)))
	y0 := int(math.Floor(float64(y)))
	fx := x - float32(x0)
	fy := y - float32(y0)

	// Pixel clamps each tap independently, which yields the correct edge
	// behavior for the taps that fall outside the mip.
	c00, _ := src.Pixel(x0, y0, mip)
	c10, _ := src.Pixel(x0+1, y0, mip)
	c01, _ := src.Pixel(x0, y0+1, mip)
	c11, _ := src.Pixel(x0+1, y0+1, mip)

	top := lerpColor(c00, c10, fx)
	bottom := lerpColor(c01, c11, fx)
	return lerpColor(top, bottom, fy), nil
}

func clampUnit(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
