// Package watermark places the persistent overlay mark: a user-supplied
// image, or a generated QR code pointing at the project URL.
package watermark

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math/rand"
	"os"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/ivlev/lyric2video/internal/paint"
)

// MoveInterval is how often the mark jumps to a new spot during playback.
const MoveInterval = 10.0

// Placement is where and how the mark sits this interval. The x band keeps
// the mark away from the frame edges; y lands in either the upper or lower
// band so the mark never covers the centered lyric text.
type Placement struct {
	X     float64 // fraction of canvas width, [0.2, 0.8]
	Y     float64 // fraction of canvas height, [0.1, 0.3] or [0.7, 0.9]
	Angle float64 // degrees, [-20, 20]
}

// RandomPlacement samples a fresh placement.
func RandomPlacement(r *rand.Rand) Placement {
	y := r.Float64()*0.2 + 0.7
	if r.Float64() < 0.5 {
		y = r.Float64()*0.2 + 0.1
	}
	return Placement{
		X:     r.Float64()*0.6 + 0.2,
		Y:     y,
		Angle: r.Float64()*40 - 20,
	}
}

// Model owns the mark image and its placement, re-rolling the placement on a
// fixed media-time interval and on explicit request. Single-writer: only the
// frame tick and the user action mutate it, never concurrently.
type Model struct {
	Image     image.Image
	Placement Placement

	rng      *rand.Rand
	lastMove float64
}

// NewModel builds a model around the given mark image, which may be nil
// (the mark layer is then skipped).
func NewModel(img image.Image, rng *rand.Rand) *Model {
	m := &Model{Image: img, rng: rng}
	m.Move()
	return m
}

// Move re-rolls the placement immediately (the "move watermark" action).
func (m *Model) Move() {
	m.Placement = RandomPlacement(m.rng)
}

// Tick advances the interval clock to media time t, moving the mark when
// MoveInterval has elapsed. Seeking backward resets the reference point
// instead of firing a move.
func (m *Model) Tick(t float64) {
	if t < m.lastMove {
		m.lastMove = t
		return
	}
	if t-m.lastMove >= MoveInterval {
		m.Move()
		m.lastMove = t
	}
}

// Draw composites the mark at 70% opacity, rotated about its center, sized
// to canvasWidth/4.2.
func (m *Model) Draw(dst *image.RGBA) {
	if m.Image == nil {
		return
	}
	b := dst.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	size := w / 4.2
	cx := float64(b.Min.X) + w*m.Placement.X
	cy := float64(b.Min.Y) + h*m.Placement.Y
	paint.DrawImageRotated(dst, m.Image, cx, cy, size, m.Placement.Angle, 0.7)
}

// LoadImage decodes a watermark image from disk.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding watermark %s: %w", path, err)
	}
	return img, nil
}

// GenerateQR renders a QR code for the given URL, used as the mark when no
// watermark image is configured.
func GenerateQR(url string, size int) (image.Image, error) {
	qr, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("generating QR watermark: %w", err)
	}
	qr.DisableBorder = true
	return qr.Image(size), nil
}
