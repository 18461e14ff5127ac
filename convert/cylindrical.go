package convert

import "math"

// RGB2HSV converts an RGB color to HSV. Black maps to s=0 and any
// zero-chroma color maps to h=0, so no input divides by zero.
func RGB2HSV(c RGB) HSV {
	r, g, b := c.R()/255, c.G()/255, c.B()/255
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	delta := max - min

	s := 0.0
	if max > 0 {
		s = delta / max
	}

	return HSV{hue(r, g, b, max, delta), s, max}
}

// HSV2RGB converts an HSV color to RGB using the standard sector
// reconstruction.
func HSV2RGB(c HSV) RGB {
	h, s, v := c.H(), c.S(), c.V()

	i := math.Floor(h / 60)
	f := h/60 - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}

	return RGB{255 * r, 255 * g, 255 * b}
}

// RGB2HLS converts an RGB color to HLS. Zero chroma (including black and
// white, where l is 0 or 1) maps to h=0 and s=0.
func RGB2HLS(c RGB) HLS {
	r, g, b := c.R()/255, c.G()/255, c.B()/255
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	delta := max - min

	l := (max + min) / 2
	s := 0.0
	if delta != 0 {
		if l <= 0.5 {
			s = delta / (max + min)
		} else {
			s = delta / (2 - max - min)
		}
	}

	return HLS{hue(r, g, b, max, delta), l, s}
}

// HLS2RGB converts an HLS color to RGB.
func HLS2RGB(c HLS) RGB {
	h, l, s := c.H(), c.L(), c.S()
	if s == 0 {
		return RGB{255 * l, 255 * l, 255 * l}
	}

	var m2 float64
	if l <= 0.5 {
		m2 = l * (1 + s)
	} else {
		m2 = l + s - l*s
	}
	m1 := 2*l - m2

	return RGB{
		255 * hue2Channel(m1, m2, h+120),
		255 * hue2Channel(m1, m2, h),
		255 * hue2Channel(m1, m2, h-120),
	}
}

// hue computes the shared HSV/HLS hue in degrees from prescaled channels.
func hue(r, g, b, max, delta float64) float64 {
	if delta == 0 {
		return 0
	}

	var h float64
	switch max {
	case r:
		h = math.Mod((g-b)/delta, 6)
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}

	h *= 60
	if h < 0 {
		h += 360
	}
	return h
}

// hue2Channel resolves one RGB channel from the HLS helper values m1 and m2
// and a channel-shifted hue.
func hue2Channel(m1, m2, h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}

	switch {
	case h < 60:
		return m1 + (m2-m1)*h/60
	case h < 180:
		return m2
	case h < 240:
		return m1 + (m2-m1)*(240-h)/60
	default:
		return m1
	}
}
