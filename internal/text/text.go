// Package text lays out the active lyric line and draws its intro animation
// and karaoke highlight.
package text

import (
	"image"
	"image/color"
	stddraw "image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/ivlev/lyric2video/internal/paint"
	"github.com/ivlev/lyric2video/internal/system"
	"github.com/ivlev/lyric2video/internal/theme"
)

// IntroDuration is how long the per-lyric entrance animation runs.
const IntroDuration = 0.5

// Wrap greedily packs words into lines no wider than maxWidth pixels under
// the given face. A single word wider than maxWidth gets its own line.
func Wrap(face font.Face, text string, maxWidth int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	lines := []string{}
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if font.MeasureString(face, candidate).Ceil() < maxWidth {
			current = candidate
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	return append(lines, current)
}

// IntroPose is the deterministic part of the entrance animation at a given
// progress: how the finished text block is faded, scaled and shifted before
// compositing. JitterAmp is the amplitude of the random shake some themes
// add while the intro runs; Ghost enables the underground double-draw.
type IntroPose struct {
	Alpha     float64
	Scale     float64
	DX, DY    float64
	JitterAmp float64
	Ghost     bool
}

// ComputeIntro returns the intro pose for a theme at the given progress,
// clamped to [0, 1]. At progress >= 1 every theme settles on the identity
// pose with full opacity.
func ComputeIntro(th theme.Theme, progress float64) IntroPose {
	p := paint.Clamp01(progress)
	pose := IntroPose{Alpha: p, Scale: 1}
	running := p < 1

	switch th {
	case theme.Rock:
		pose.Scale = paint.Lerp(1.3, 1, p)
		if running {
			pose.JitterAmp = 8
		}
	case theme.Country:
		pose.Scale = paint.Lerp(1.05, 1, p)
	case theme.Chill:
		pose.Scale = paint.Lerp(0.9, 1, p)
		pose.DY = paint.Lerp(30, 0, p)
	case theme.Underground:
		// Hard cut: invisible for the first 20% of the intro, then full on.
		if p > 0.2 {
			pose.Alpha = 1
		} else {
			pose.Alpha = 0
		}
		if running {
			pose.JitterAmp = 10
			pose.Ghost = true
		}
	default:
		pose.DY = paint.Lerp(20, 0, p)
	}

	return pose
}

// Randomizer is the subset of math/rand the glitch effects sample from.
type Randomizer interface {
	Float64() float64
}

// Draw renders the lyric line onto the frame: wrapped text with the theme's
// base styling, the karaoke highlight clipped to lyricProgress, and the
// entrance animation at introProgress.
func Draw(dst *image.RGBA, face font.Face, style *theme.Style, th theme.Theme, line string, introProgress, lyricProgress float64, r Randomizer) {
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()

	maxWidth := int(float64(w) * 0.9)
	lines := Wrap(face, line, maxWidth)
	if len(lines) == 0 {
		return
	}

	lineHeight := int(float64(w) / 20 * 1.2)
	totalHeight := len(lines) * lineHeight
	startY := h/2 - totalHeight/2 + lineHeight/2
	pose := ComputeIntro(th, introProgress)

	if pose.Ghost && r.Float64() > 0.5 {
		// Magenta ghost copy, drawn straight onto the frame offset down-right.
		drawBlock(dst, face, lines, b.Min.X+w/2+5, b.Min.Y+startY+5, lineHeight, magentaStyle, 1)
	}

	if pose.Alpha <= 0 {
		return
	}

	// The block is rendered at identity into a scratch layer, then
	// composited with the intro transform. Keeps the text path free of
	// per-glyph affine math.
	layer := getClearLayer(b)
	defer putLayer(layer)

	drawBlock(layer, face, lines, b.Min.X+w/2, b.Min.Y+startY, lineHeight, style, lyricProgress)

	dx, dy := pose.DX, pose.DY
	if pose.JitterAmp > 0 {
		dx += (r.Float64() - 0.5) * pose.JitterAmp
		dy += (r.Float64() - 0.5) * pose.JitterAmp
	}
	paint.BlitScaled(dst, layer, pose.Scale, dx, dy, float64(b.Min.X+w/2), float64(b.Min.Y+startY), pose.Alpha)
}

var magentaStyle = &theme.Style{
	BaseFill:  ghostMagenta,
	Highlight: ghostMagenta,
}

// drawBlock renders the wrapped lines centered on centerX, first line
// visually centered on topY, with the karaoke highlight clipped to progress.
// All lines share the same progress value.
func drawBlock(dst *image.RGBA, face font.Face, lines []string, centerX, topY, lineHeight int, style *theme.Style, progress float64) {
	metrics := face.Metrics()
	// textBaseline "middle": shift the baseline so the glyph box centers on
	// the line's y position.
	baselineShift := (metrics.Ascent - metrics.Descent).Ceil() / 2

	for i, s := range lines {
		yPos := topY + i*lineHeight
		baseline := yPos + baselineShift
		width := font.MeasureString(face, s).Ceil()
		x := centerX - width/2

		// Soft shadow approximation.
		if style.Shadow.A > 0 {
			drawString(dst, face, s, x+2, baseline+2, style, shadowPass)
		}
		drawString(dst, face, s, x, baseline, style, basePass)

		highlightWidth := int(float64(width) * paint.Clamp01(progress))
		if highlightWidth <= 0 {
			continue
		}
		clip := image.Rect(x, yPos-lineHeight/2, x+highlightWidth, yPos+lineHeight/2)
		sub, ok := dst.SubImage(clip).(*image.RGBA)
		if !ok || sub.Bounds().Empty() {
			continue
		}
		drawString(sub, face, s, x, baseline, style, highlightPass)
	}
}

type pass int

const (
	basePass pass = iota
	highlightPass
	shadowPass
)

var ghostMagenta = color.NRGBA{R: 255, B: 255, A: 255}

func drawString(dst *image.RGBA, face font.Face, s string, x, baseline int, style *theme.Style, p pass) {
	src := style.BaseFill
	switch p {
	case highlightPass:
		src = style.Highlight
	case shadowPass:
		src = style.Shadow
	}
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(src),
		Face: face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(s)
}

func getClearLayer(b image.Rectangle) *image.RGBA {
	layer := system.GetImage(b)
	stddraw.Draw(layer, layer.Bounds(), image.Transparent, image.Point{}, stddraw.Src)
	return layer
}

func putLayer(layer *image.RGBA) {
	system.PutImage(layer)
}
