package convert

import "math"

// RefWhiteD65 is the D65 reference white used by the Lab conversions,
// scaled so Y is 100.
var RefWhiteD65 = XYZ{95.047, 100.0, 108.883}

// linear sRGB to XYZ (D65). The inverse is derived numerically rather than
// written out as rounded constants, so the two matrices stay exact inverses
// and matrix round trips only carry floating-point error.
var (
	rgb2XyzMatrix = [3][3]float64{
		{0.4124564, 0.3575761, 0.1804375},
		{0.2126729, 0.7151522, 0.0721750},
		{0.0193339, 0.1191920, 0.9503041},
	}
	xyz2RgbMatrix = invert3(rgb2XyzMatrix)
)

// invert3 inverts a 3x3 matrix by its adjugate.
func invert3(m [3][3]float64) [3][3]float64 {
	a, b, c := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]

	ca := e*i - f*h
	cb := f*g - d*i
	cc := d*h - e*g
	det := a*ca + b*cb + c*cc

	return [3][3]float64{
		{ca / det, (c*h - b*i) / det, (b*f - c*e) / det},
		{cb / det, (a*i - c*g) / det, (c*d - a*f) / det},
		{cc / det, (b*g - a*h) / det, (a*e - b*d) / det},
	}
}

const (
	labEpsilon = 216.0 / 24389.0 // (6/29)^3
	labKappa   = 24389.0 / 27.0
)

// RGB2XYZ converts an RGB color to XYZ: each channel is gamma-decoded with
// the sRGB piecewise curve, then pushed through the sRGB-to-XYZ matrix.
func RGB2XYZ(c RGB) XYZ {
	r := gamma2Linear(c.R() / 255)
	g := gamma2Linear(c.G() / 255)
	b := gamma2Linear(c.B() / 255)

	var out XYZ
	for i, row := range rgb2XyzMatrix {
		out[i] = 100 * (row[0]*r + row[1]*g + row[2]*b)
	}
	return out
}

// XYZ2RGB converts an XYZ color to RGB with the inverse matrix followed by
// sRGB gamma encoding.
func XYZ2RGB(c XYZ) RGB {
	x, y, z := c.X()/100, c.Y()/100, c.Z()/100

	var out RGB
	for i, row := range xyz2RgbMatrix {
		out[i] = 255 * linear2Gamma(row[0]*x+row[1]*y+row[2]*z)
	}
	return out
}

// XYZ2Lab converts an XYZ color to Lab against the D65 reference white.
func XYZ2Lab(c XYZ) Lab {
	fx := labF(c.X() / RefWhiteD65.X())
	fy := labF(c.Y() / RefWhiteD65.Y())
	fz := labF(c.Z() / RefWhiteD65.Z())

	return Lab{116*fy - 16, 500 * (fx - fy), 200 * (fy - fz)}
}

// Lab2XYZ converts a Lab color back to XYZ against the D65 reference white.
func Lab2XYZ(c Lab) XYZ {
	fy := (c.L() + 16) / 116
	fx := fy + c.A()/500
	fz := fy - c.B()/200

	return XYZ{
		RefWhiteD65.X() * labFInv(fx),
		RefWhiteD65.Y() * labFInv(fy),
		RefWhiteD65.Z() * labFInv(fz),
	}
}

func gamma2Linear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

func linear2Gamma(c float64) float64 {
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1/2.4) - 0.055
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

func labFInv(t float64) float64 {
	if t3 := t * t * t; t3 > labEpsilon {
		return t3
	}
	return (116*t - 16) / labKappa
}
