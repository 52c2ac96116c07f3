package paint

import (
	"image"
	"image/color"
	"math"
)

// LinearGradient is an image.Image whose color runs diagonally from the
// top-left to the bottom-right corner of its bounds.
type LinearGradient struct {
	Rect     image.Rectangle
	From, To color.NRGBA
}

func (g *LinearGradient) ColorModel() color.Model { return color.NRGBAModel }
func (g *LinearGradient) Bounds() image.Rectangle { return g.Rect }

func (g *LinearGradient) At(x, y int) color.Color {
	span := float64(g.Rect.Dx() + g.Rect.Dy())
	if span == 0 {
		return g.From
	}
	t := float64(x-g.Rect.Min.X+y-g.Rect.Min.Y) / span
	return lerpNRGBA(g.From, g.To, Clamp01(t))
}

// RadialGradient is an image.Image whose color runs from Center outward to
// Radius. Points past the radius take the To color.
type RadialGradient struct {
	Rect     image.Rectangle
	Center   image.Point
	Radius   float64
	From, To color.NRGBA
}

func (g *RadialGradient) ColorModel() color.Model { return color.NRGBAModel }
func (g *RadialGradient) Bounds() image.Rectangle { return g.Rect }

func (g *RadialGradient) At(x, y int) color.Color {
	if g.Radius <= 0 {
		return g.To
	}
	d := math.Hypot(float64(x-g.Center.X), float64(y-g.Center.Y))
	return lerpNRGBA(g.From, g.To, Clamp01(d/g.Radius))
}

func lerpNRGBA(a, b color.NRGBA, t float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(Lerp(float64(a.R), float64(b.R), t)),
		G: uint8(Lerp(float64(a.G), float64(b.G), t)),
		B: uint8(Lerp(float64(a.B), float64(b.B), t)),
		A: uint8(Lerp(float64(a.A), float64(b.A), t)),
	}
}

// HSLA converts hue (degrees), saturation, lightness and alpha in [0,1] to an
// NRGBA color. The chill overlay cycles hues with it.
func HSLA(hue, sat, light, alpha float64) color.NRGBA {
	hue = math.Mod(math.Mod(hue, 360)+360, 360) / 360

	var r, g, b float64
	if sat == 0 {
		r, g, b = light, light, light
	} else {
		var q float64
		if light < 0.5 {
			q = light * (1 + sat)
		} else {
			q = light + sat - light*sat
		}
		p := 2*light - q
		r = hueToRGB(p, q, hue+1.0/3.0)
		g = hueToRGB(p, q, hue)
		b = hueToRGB(p, q, hue-1.0/3.0)
	}

	return color.NRGBA{
		R: uint8(r * 255),
		G: uint8(g * 255),
		B: uint8(b * 255),
		A: uint8(Clamp01(alpha) * 255),
	}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}
