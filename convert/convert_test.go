package convert

import (
	"math/rand"
	"testing"

	"github.com/jkl1337/go-chromath"
	"github.com/stretchr/testify/assert"
)

// gray ramp with known sRGB/D65 XYZ and Lab values
var grays = []struct {
	rgb RGB
	xyz XYZ
	lab Lab
}{
	{RGB{255, 255, 255}, XYZ{95.0470, 100.0000, 108.8830}, Lab{100.0000, 0, 0}},
	{RGB{254, 254, 254}, XYZ{94.2013, 99.1102, 107.9142}, Lab{99.6549, 0, 0}},
	{RGB{230, 230, 230}, XYZ{75.2105, 79.1298, 86.1589}, Lab{91.2930, 0, 0}},
	{RGB{204, 204, 204}, XYZ{57.3920, 60.3827, 65.7465}, Lab{82.0458, 0, 0}},
	{RGB{179, 179, 179}, XYZ{42.8458, 45.0786, 49.0829}, Lab{72.9436, 0, 0}},
	{RGB{153, 153, 153}, XYZ{30.2769, 31.8547, 34.6843}, Lab{63.2226, 0, 0}},
	{RGB{128, 128, 128}, XYZ{20.5169, 21.5861, 23.5035}, Lab{53.5850, 0, 0}},
	{RGB{102, 102, 102}, XYZ{12.6287, 13.2868, 14.4671}, Lab{43.1923, 0, 0}},
	{RGB{77, 77, 77}, XYZ{7.0538, 7.4214, 8.0806}, Lab{32.7475, 0, 0}},
	{RGB{51, 51, 51}, XYZ{3.1465, 3.3105, 3.6045}, Lab{21.2467, 0, 0}},
	{RGB{26, 26, 26}, XYZ{0.9818, 1.0330, 1.1247}, Lab{9.2632, 0, 0}},
	{RGB{1, 1, 1}, XYZ{0.0288, 0.0304, 0.0330}, Lab{0.2742, 0, 0}},
	{RGB{0, 0, 0}, XYZ{0, 0, 0}, Lab{0, 0, 0}},
}

func tripletInDelta[T ~[3]float64](t *testing.T, want, got T, tol float64) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], tol)
	}
}

func TestPrecision(t *testing.T) {
	const tol = 0.01
	for _, tt := range grays {
		tripletInDelta(t, tt.xyz, RGB2XYZ(tt.rgb), tol)
		tripletInDelta(t, tt.rgb, XYZ2RGB(tt.xyz), tol)
		tripletInDelta(t, tt.lab, XYZ2Lab(tt.xyz), tol)
		tripletInDelta(t, tt.xyz, Lab2XYZ(tt.lab), tol)
		tripletInDelta(t, tt.lab, RGB2Lab(tt.rgb), tol)
		tripletInDelta(t, tt.rgb, Lab2RGB(tt.lab), tol)
	}
}

func randomRGBs(n int) []RGB {
	rng := rand.New(rand.NewSource(1))
	cs := make([]RGB, 0, n)
	for len(cs) < n {
		c := RGB{
			float64(rng.Intn(256)),
			float64(rng.Intn(256)),
			float64(rng.Intn(256)),
		}
		// grays have no hue, which makes hue round trips ill-conditioned
		if c.R() == c.G() && c.G() == c.B() {
			continue
		}
		cs = append(cs, c)
	}
	return cs
}

func TestReversible(t *testing.T) {
	const tol = 1e-6
	for _, rgb := range randomRGBs(50) {
		tripletInDelta(t, rgb, HSV2RGB(RGB2HSV(rgb)), tol)
		tripletInDelta(t, rgb, HLS2RGB(RGB2HLS(rgb)), tol)
		tripletInDelta(t, rgb, XYZ2RGB(RGB2XYZ(rgb)), tol)
		tripletInDelta(t, rgb, Lab2RGB(RGB2Lab(rgb)), tol)

		hsv := RGB2HSV(rgb)
		tripletInDelta(t, hsv, HLS2HSV(HSV2HLS(hsv)), tol)
		tripletInDelta(t, hsv, XYZ2HSV(HSV2XYZ(hsv)), tol)
		tripletInDelta(t, hsv, Lab2HSV(HSV2Lab(hsv)), tol)

		hls := RGB2HLS(rgb)
		tripletInDelta(t, hls, XYZ2HLS(HLS2XYZ(hls)), tol)
		tripletInDelta(t, hls, Lab2HLS(HLS2Lab(hls)), tol)

		xyz := RGB2XYZ(rgb)
		tripletInDelta(t, xyz, Lab2XYZ(XYZ2Lab(xyz)), tol)
	}
}

// The inverse matrix must be the exact numeric inverse of the forward one;
// independently rounded constants would put matrix round trips off by ~2e-5
// on the 0-255 scale, well past what TestReversible allows.
func TestMatricesAreInverses(t *testing.T) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += xyz2RgbMatrix[i][k] * rgb2XyzMatrix[k][j]
			}
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, sum, 1e-12)
		}
	}
}

func TestBoundaries(t *testing.T) {
	const tol = 1e-9

	tripletInDelta(t, HSV{0, 0, 0}, RGB2HSV(RGB{0, 0, 0}), tol)
	tripletInDelta(t, HLS{0, 0, 0}, RGB2HLS(RGB{0, 0, 0}), tol)

	tripletInDelta(t, HSV{0, 0, 1}, RGB2HSV(RGB{255, 255, 255}), tol)
	tripletInDelta(t, HLS{0, 1, 0}, RGB2HLS(RGB{255, 255, 255}), tol)

	tripletInDelta(t, HSV{0, 1, 1}, RGB2HSV(RGB{255, 0, 0}), tol)
	tripletInDelta(t, HSV{120, 1, 1}, RGB2HSV(RGB{0, 255, 0}), tol)
	tripletInDelta(t, HSV{240, 1, 1}, RGB2HSV(RGB{0, 0, 255}), tol)

	// sRGB white against the D65 reference white
	tripletInDelta(t, Lab{100, 0, 0}, RGB2Lab(RGB{255, 255, 255}), 0.5)
}

func TestRangeInvariants(t *testing.T) {
	const eps = 1e-9
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 15 {
				rgb := RGB{float64(r), float64(g), float64(b)}

				hsv := RGB2HSV(rgb)
				assert.GreaterOrEqual(t, hsv.H(), 0.0)
				assert.Less(t, hsv.H(), 360.0)
				assert.GreaterOrEqual(t, hsv.S(), 0.0)
				assert.LessOrEqual(t, hsv.S(), 1.0)
				assert.GreaterOrEqual(t, hsv.V(), 0.0)
				assert.LessOrEqual(t, hsv.V(), 1.0)

				hls := RGB2HLS(rgb)
				assert.GreaterOrEqual(t, hls.L(), 0.0)
				assert.LessOrEqual(t, hls.L(), 1.0)
				assert.GreaterOrEqual(t, hls.S(), 0.0)
				assert.LessOrEqual(t, hls.S(), 1.0+eps)

				// the matrix rows carry rounded constants, so white can
				// overshoot L=100 by a few millionths
				lab := RGB2Lab(rgb)
				assert.GreaterOrEqual(t, lab.L(), 0.0)
				assert.LessOrEqual(t, lab.L(), 100.0+1e-5)
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	for _, rgb := range randomRGBs(20) {
		assert.Equal(t, RGB2HSV(rgb), RGB2HSV(rgb))
		assert.Equal(t, RGB2HLS(rgb), RGB2HLS(rgb))
		assert.Equal(t, RGB2XYZ(rgb), RGB2XYZ(rgb))
		assert.Equal(t, RGB2Lab(rgb), RGB2Lab(rgb))
	}
}

func TestMapConsistency(t *testing.T) {
	in := randomRGBs(100)
	out := Map(RGB2Lab, in)

	assert.Len(t, out, len(in))
	for i, c := range in {
		assert.Equal(t, RGB2Lab(c), out[i])
	}
}

func TestIndex(t *testing.T) {
	assert.Equal(t, 0, Index(RGB{0, 0, 0}))
	assert.Equal(t, 256*256*256-1, Index(RGB{255, 255, 255}))
	assert.Equal(t, 1<<16|2<<8|3, Index(RGB{1, 2, 3}))
	assert.Equal(t, 1<<16|2<<8|3, Index(RGB{1.2, 1.8, 3.4}))
}

// RGB2Lab should agree with go-chromath's sRGB/D65 pipeline.
func TestChromathAgreement(t *testing.T) {
	rgb2Xyz := chromath.NewRGBTransformer(&chromath.SpaceSRGB, nil, nil, &chromath.Scaler8bClamping, 1.0, nil)
	lab2Xyz := chromath.NewLabTransformer(&chromath.IlluminantRefD65)

	for _, rgb := range randomRGBs(50) {
		xyz := rgb2Xyz.Convert(chromath.RGB{rgb.R(), rgb.G(), rgb.B()})
		want := lab2Xyz.Invert(xyz)

		got := RGB2Lab(rgb)
		assert.InDelta(t, want[0], got.L(), 0.01)
		assert.InDelta(t, want[1], got.A(), 0.01)
		assert.InDelta(t, want[2], got.B(), 0.01)
	}
}
