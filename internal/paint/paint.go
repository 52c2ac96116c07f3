// Package paint provides the raster primitives the frame compositor draws
// with: alpha-blended fills, vector shapes, cover-fit image blits and affine
// transforms over an *image.RGBA frame buffer.
package paint

import (
	"image"
	"image/color"
	stddraw "image/draw"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"
)

// Lerp performs linear interpolation between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 clamps v into [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// WithAlpha scales the alpha channel of c by alpha.
func WithAlpha(c color.Color, alpha float64) color.NRGBA {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	nrgba.A = uint8(Clamp01(alpha) * float64(nrgba.A))
	return nrgba
}

// FillRect fills rect with c at the given extra alpha, blending over the
// existing content.
func FillRect(dst *image.RGBA, rect image.Rectangle, c color.Color, alpha float64) {
	if alpha <= 0 {
		return
	}
	stddraw.Draw(dst, rect, image.NewUniform(WithAlpha(c, alpha)), image.Point{}, stddraw.Over)
}

// Fill covers the whole frame with c at the given alpha.
func Fill(dst *image.RGBA, c color.Color, alpha float64) {
	FillRect(dst, dst.Bounds(), c, alpha)
}

// Clear resets the frame to opaque black. Pooled buffers arrive with stale
// pixel data, so every frame starts here.
func Clear(dst *image.RGBA) {
	stddraw.Draw(dst, dst.Bounds(), image.NewUniform(color.RGBA{A: 255}), image.Point{}, stddraw.Src)
}

// circleKappa is the cubic Bezier circle approximation constant.
const circleKappa = 0.5523

// FillCircle draws a filled circle centered at (cx, cy).
func FillCircle(dst *image.RGBA, cx, cy, radius float64, c color.Color, alpha float64) {
	if alpha <= 0 || radius <= 0 {
		return
	}
	b := dst.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	k := radius * circleKappa

	r.MoveTo(float32(cx+radius), float32(cy))
	r.CubeTo(float32(cx+radius), float32(cy+k), float32(cx+k), float32(cy+radius), float32(cx), float32(cy+radius))
	r.CubeTo(float32(cx-k), float32(cy+radius), float32(cx-radius), float32(cy+k), float32(cx-radius), float32(cy))
	r.CubeTo(float32(cx-radius), float32(cy-k), float32(cx-k), float32(cy-radius), float32(cx), float32(cy-radius))
	r.CubeTo(float32(cx+k), float32(cy-radius), float32(cx+radius), float32(cy-k), float32(cx+radius), float32(cy))
	r.ClosePath()

	r.Draw(dst, b, image.NewUniform(WithAlpha(c, alpha)), image.Point{})
}

// StrokePolyline draws the open polyline through pts with the given stroke
// width. Each segment is rasterized as a quad; joints are left unmitered,
// which is invisible at the stroke widths the overlays use.
func StrokePolyline(dst *image.RGBA, pts []f64.Vec2, width float64, c color.Color, alpha float64) {
	if alpha <= 0 || len(pts) < 2 {
		return
	}
	b := dst.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	half := width / 2

	for i := 0; i < len(pts)-1; i++ {
		x0, y0 := pts[i][0], pts[i][1]
		x1, y1 := pts[i+1][0], pts[i+1][1]
		dx, dy := x1-x0, y1-y0
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		// Perpendicular unit offset.
		nx, ny := -dy/length*half, dx/length*half

		r.MoveTo(float32(x0+nx), float32(y0+ny))
		r.LineTo(float32(x1+nx), float32(y1+ny))
		r.LineTo(float32(x1-nx), float32(y1-ny))
		r.LineTo(float32(x0-nx), float32(y0-ny))
		r.ClosePath()
	}

	r.Draw(dst, b, image.NewUniform(WithAlpha(c, alpha)), image.Point{})
}

// DrawImageCover scales src to cover the whole frame, cropping the overflow.
// zoom > 1 narrows the visible source window; offX/offY shift the crop as a
// fraction of the leftover source area, with 0 meaning centered.
func DrawImageCover(dst *image.RGBA, src image.Image, zoom, offX, offY, alpha float64) {
	if src == nil || alpha <= 0 {
		return
	}
	sb := src.Bounds()
	srcW, srcH := float64(sb.Dx()), float64(sb.Dy())
	if srcW == 0 || srcH == 0 {
		return
	}
	db := dst.Bounds()
	dstAspect := float64(db.Dx()) / float64(db.Dy())
	srcAspect := srcW / srcH

	visW, visH := srcW, srcH
	if srcAspect > dstAspect {
		visW = visH * dstAspect
	} else {
		visH = visW / dstAspect
	}
	if zoom > 0 {
		visW /= zoom
		visH /= zoom
	}

	x0 := (srcW - visW) * (0.5 + offX)
	y0 := (srcH - visH) * (0.5 + offY)
	sr := image.Rect(
		sb.Min.X+int(x0),
		sb.Min.Y+int(y0),
		sb.Min.X+int(x0+visW),
		sb.Min.Y+int(y0+visH),
	)
	sr = sr.Intersect(sb)
	if sr.Empty() {
		return
	}

	opts := maskOptions(alpha)
	draw.ApproxBiLinear.Scale(dst, db, src, sr, draw.Over, opts)
}

// DrawImageRotated draws src scaled to size x size pixels, rotated by
// angleDeg around its own center which is placed at (cx, cy).
func DrawImageRotated(dst *image.RGBA, src image.Image, cx, cy, size, angleDeg, alpha float64) {
	if src == nil || alpha <= 0 || size <= 0 {
		return
	}
	sb := src.Bounds()
	srcW, srcH := float64(sb.Dx()), float64(sb.Dy())
	if srcW == 0 || srcH == 0 {
		return
	}

	scale := size / srcW
	rad := angleDeg * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	// Source center in source coordinates.
	scx := float64(sb.Min.X) + srcW/2
	scy := float64(sb.Min.Y) + srcH/2

	m := f64.Aff3{
		scale * cos, -scale * sin, cx - scale*(cos*scx-sin*scy),
		scale * sin, scale * cos, cy - scale*(sin*scx+cos*scy),
	}
	draw.ApproxBiLinear.Transform(dst, m, src, sb, draw.Over, maskOptions(alpha))
}

// BlitScaled composites src over dst scaled by scale around (cx, cy) and
// shifted by (dx, dy). A scale of 1 with no shift takes a direct blend path.
func BlitScaled(dst, src *image.RGBA, scale, dx, dy, cx, cy, alpha float64) {
	if alpha <= 0 {
		return
	}
	if scale == 1 && dx == 0 && dy == 0 {
		stddraw.DrawMask(dst, dst.Bounds(), src, src.Bounds().Min, alphaMask(alpha), image.Point{}, stddraw.Over)
		return
	}
	m := f64.Aff3{
		scale, 0, cx - scale*cx + dx,
		0, scale, cy - scale*cy + dy,
	}
	draw.ApproxBiLinear.Transform(dst, m, src, src.Bounds(), draw.Over, maskOptions(alpha))
}

func alphaMask(alpha float64) image.Image {
	return image.NewUniform(color.Alpha{A: uint8(Clamp01(alpha) * 255)})
}

func maskOptions(alpha float64) *draw.Options {
	if alpha >= 1 {
		return nil
	}
	return &draw.Options{SrcMask: alphaMask(alpha)}
}
