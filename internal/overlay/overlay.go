// Package overlay draws the per-theme atmosphere pass that sits between the
// background and the lyric text. Overlay appearance uses per-frame
// randomness on purpose: two renders of the same frame differ, which is an
// accepted property of the effects, not a defect.
package overlay

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"math/rand"

	"golang.org/x/image/math/f64"

	"github.com/ivlev/lyric2video/internal/paint"
	"github.com/ivlev/lyric2video/internal/theme"
)

// Draw renders the theme's overlay for time t.
func Draw(dst *image.RGBA, th theme.Theme, t float64, r *rand.Rand) {
	switch th {
	case theme.Rock:
		drawRock(dst, r)
	case theme.Country:
		drawCountry(dst, t)
	case theme.Chill:
		drawChill(dst, t)
	case theme.Underground:
		drawUnderground(dst, r)
	}
}

// Darken applies the flat 40% black wash every theme gets, every frame.
func Darken(dst *image.RGBA) {
	paint.Fill(dst, color.NRGBA{A: 255}, 0.4)
}

var (
	yellow  = color.NRGBA{R: 255, G: 255, A: 255}
	ember   = color.NRGBA{R: 255, G: 69, A: 255}
	magenta = color.NRGBA{R: 255, B: 255, A: 255}
	cyan    = color.NRGBA{G: 255, B: 255, A: 255}
	dust    = color.NRGBA{R: 255, G: 220, B: 180, A: 153}
)

func drawRock(dst *image.RGBA, r *rand.Rand) {
	b := dst.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	// Low-probability lightning bolt: a jagged polyline from the top edge,
	// drawn twice for a cheap glow.
	if r.Float64() > 0.92 {
		startX := r.Float64() * w
		pts := make([]f64.Vec2, 0, 6)
		pts = append(pts, f64.Vec2{startX, 0})
		for i := 0; i < 5; i++ {
			pts = append(pts, f64.Vec2{
				startX + (r.Float64()-0.5)*100,
				float64(i+1) * h / 5,
			})
		}
		paint.StrokePolyline(dst, pts, 9, yellow, 0.15)
		paint.StrokePolyline(dst, pts, 3, yellow, 0.4)
	}

	// Scattered sparks and embers.
	for i := 0; i < 15; i++ {
		c := ember
		if r.Float64() > 0.5 {
			c = yellow
		}
		paint.FillCircle(dst, r.Float64()*w, r.Float64()*h, r.Float64()*3+1, c, 0.2)
	}
}

func drawCountry(dst *image.RGBA, t float64) {
	b := dst.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	// Slowly orbiting warm dust motes. Positions are periodic in t so the
	// motes drift instead of flickering.
	for i := 0; i < 20; i++ {
		fi := float64(i)
		x := (math.Sin(t*0.1+fi)*0.3 + 0.5) * w
		y := (math.Cos(t*0.08+fi*0.5)*0.4 + 0.5) * h
		size := math.Sin(t*0.2+fi)*2 + 3
		paint.FillCircle(dst, x, y, size, dust, 0.1)
	}

	vignette := &paint.RadialGradient{
		Rect:   b,
		Center: image.Point{X: b.Min.X + b.Dx()/2, Y: b.Min.Y + b.Dy()/2},
		Radius: math.Max(w, h) / 2,
		From:   color.NRGBA{},
		To:     color.NRGBA{R: 101, G: 67, B: 33, A: 38},
	}
	draw.Draw(dst, b, vignette, b.Min, draw.Over)
}

func drawChill(dst *image.RGBA, t float64) {
	b := dst.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	// Soft color-cycling circles.
	for i := 0; i < 25; i++ {
		fi := float64(i)
		x := (math.Sin(t*0.05+fi)*0.4 + 0.5) * w
		y := (math.Cos(t*0.03+fi*0.7)*0.3 + 0.5) * h
		size := math.Sin(t*0.1+fi)*4 + 6
		c := paint.HSLA(t*10+fi*30, 0.6, 0.8, 0.3)
		paint.FillCircle(dst, x, y, size, c, 0.08)
	}

	pastel := &paint.LinearGradient{
		Rect: b,
		From: color.NRGBA{R: 173, G: 216, B: 230, A: 13},
		To:   color.NRGBA{R: 255, G: 182, B: 193, A: 13},
	}
	draw.Draw(dst, b, pastel, b.Min, draw.Over)
}

func drawUnderground(dst *image.RGBA, r *rand.Rand) {
	b := dst.Bounds()
	h := b.Dy()

	// Horizontal color-fringe VHS lines.
	for i := 0; i < 8; i++ {
		c := magenta
		if r.Float64() > 0.5 {
			c = cyan
		}
		y := b.Min.Y + r.Intn(h)
		height := r.Intn(3) + 1
		paint.FillRect(dst, image.Rect(b.Min.X, y, b.Max.X, y+height), c, 0.15)
	}

	addNoise(dst, r, 3000)

	// Occasional full-width glitch bar.
	if r.Float64() > 0.95 {
		y := b.Min.Y + r.Intn(h)
		paint.FillRect(dst, image.Rect(b.Min.X, y, b.Max.X, y+2), magenta, 0.3)
	}
}

// addNoise blends n random single-pixel specks into the frame. Direct Pix
// writes: a draw call per speck would dominate the frame budget.
func addNoise(dst *image.RGBA, r *rand.Rand, n int) {
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return
	}
	for i := 0; i < n; i++ {
		x := r.Intn(w)
		y := r.Intn(h)
		// Random color at 8% of a random base alpha.
		a := 0.08 * r.Float64()
		offset := dst.PixOffset(b.Min.X+x, b.Min.Y+y)
		blendPixel(dst.Pix[offset:offset+4], uint8(r.Intn(256)), uint8(r.Intn(256)), uint8(r.Intn(256)), a)
	}
}

func blendPixel(px []byte, r, g, b uint8, alpha float64) {
	inv := 1 - alpha
	px[0] = uint8(float64(px[0])*inv + float64(r)*alpha)
	px[1] = uint8(float64(px[1])*inv + float64(g)*alpha)
	px[2] = uint8(float64(px[2])*inv + float64(b)*alpha)
}
