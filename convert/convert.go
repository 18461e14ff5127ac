// Package convert implements closed-form conversions between the RGB, HSV,
// HLS, XYZ, and CIELAB color spaces.
//
// Conventions, held consistently across the whole package: RGB channels are
// on the 0-255 scale, hue is in degrees in [0, 360), saturation, value, and
// lightness are in [0, 1], XYZ is relative to sRGB/D65 with the white point
// scaled to (95.047, 100, 108.883), and Lab lightness is in [0, 100].
//
// Every conversion is a pure function of its input triplet. Out-of-range
// inputs are not clamped or rejected; the formula is simply applied.
package convert

import "math"

type (
	// RGB represents a color by its red, green, and blue channels,
	// each on the 0-255 scale.
	RGB [3]float64
	// HSV represents a color by hue (degrees), saturation, and value.
	HSV [3]float64
	// HLS represents a color by hue (degrees), lightness, and saturation.
	HLS [3]float64
	// XYZ represents a color by its CIE 1931 tristimulus values,
	// scaled so that the Y of the reference white is 100.
	XYZ [3]float64
	// Lab represents a color in CIELAB, relative to the D65 white.
	Lab [3]float64
)

func (c RGB) R() float64 { return c[0] }
func (c RGB) G() float64 { return c[1] }
func (c RGB) B() float64 { return c[2] }

func (c HSV) H() float64 { return c[0] }
func (c HSV) S() float64 { return c[1] }
func (c HSV) V() float64 { return c[2] }

func (c HLS) H() float64 { return c[0] }
func (c HLS) L() float64 { return c[1] }
func (c HLS) S() float64 { return c[2] }

func (c XYZ) X() float64 { return c[0] }
func (c XYZ) Y() float64 { return c[1] }
func (c XYZ) Z() float64 { return c[2] }

func (c Lab) L() float64 { return c[0] }
func (c Lab) A() float64 { return c[1] }
func (c Lab) B() float64 { return c[2] }

// The cross conversions below compose through RGB, and through XYZ when Lab
// is an endpoint. The paths are fixed so round trips are deterministic.

// HSV2HLS converts an HSV color to HLS via RGB.
func HSV2HLS(c HSV) HLS { return RGB2HLS(HSV2RGB(c)) }

// HLS2HSV converts an HLS color to HSV via RGB.
func HLS2HSV(c HLS) HSV { return RGB2HSV(HLS2RGB(c)) }

// RGB2Lab converts an RGB color to Lab via XYZ.
func RGB2Lab(c RGB) Lab { return XYZ2Lab(RGB2XYZ(c)) }

// Lab2RGB converts a Lab color to RGB via XYZ.
func Lab2RGB(c Lab) RGB { return XYZ2RGB(Lab2XYZ(c)) }

// HSV2XYZ converts an HSV color to XYZ via RGB.
func HSV2XYZ(c HSV) XYZ { return RGB2XYZ(HSV2RGB(c)) }

// XYZ2HSV converts an XYZ color to HSV via RGB.
func XYZ2HSV(c XYZ) HSV { return RGB2HSV(XYZ2RGB(c)) }

// HLS2XYZ converts an HLS color to XYZ via RGB.
func HLS2XYZ(c HLS) XYZ { return RGB2XYZ(HLS2RGB(c)) }

// XYZ2HLS converts an XYZ color to HLS via RGB.
func XYZ2HLS(c XYZ) HLS { return RGB2HLS(XYZ2RGB(c)) }

// HSV2Lab converts an HSV color to Lab via RGB and XYZ.
func HSV2Lab(c HSV) Lab { return RGB2Lab(HSV2RGB(c)) }

// Lab2HSV converts a Lab color to HSV via XYZ and RGB.
func Lab2HSV(c Lab) HSV { return RGB2HSV(Lab2RGB(c)) }

// HLS2Lab converts an HLS color to Lab via RGB and XYZ.
func HLS2Lab(c HLS) Lab { return RGB2Lab(HLS2RGB(c)) }

// Lab2HLS converts a Lab color to HLS via XYZ and RGB.
func Lab2HLS(c Lab) HLS { return RGB2HLS(Lab2RGB(c)) }

// Map applies a conversion to every triplet in a slice. The result is
// element-wise identical to calling the conversion on each triplet
// individually.
func Map[In, Out ~[3]float64](f func(In) Out, in []In) []Out {
	out := make([]Out, len(in))
	for i, c := range in {
		out[i] = f(c)
	}
	return out
}

// Index flattens an RGB triplet into a single index in [0, 256^3),
// rounding each channel to the nearest integer first.
func Index(c RGB) int {
	r := int(math.Round(c.R()))
	g := int(math.Round(c.G()))
	b := int(math.Round(c.B()))
	return r<<16 | g<<8 | b
}
