// Package particles animates the short-lived glyph bursts that fire when a
// new lyric with a glyph becomes active.
package particles

import (
	"image"
	"image/color"
	"math/rand"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/ivlev/lyric2video/internal/paint"
)

// BurstSize is how many particles one lyric change spawns.
const BurstSize = 5

// MaxParticles caps the live collection. Culling normally keeps the count
// far below this; the cap only guards against spawn outpacing decay.
const MaxParticles = 200

// Particle is one glyph in flight.
type Particle struct {
	ID      int
	X, Y    float64
	VX, VY  float64
	Opacity float64
	Glyph   string
	Size    float64
}

// System owns the live particle collection. It is mutated only by the frame
// tick: Burst and Step must never run concurrently with each other.
type System struct {
	particles []Particle
	nextID    int
	rng       *rand.Rand

	// DecayPerFrame is subtracted from each particle's opacity every Step.
	// The frame-count-based default matches the source behavior; callers
	// wanting refresh-rate independence can scale it by elapsed time before
	// each Step.
	DecayPerFrame float64
}

// NewSystem creates an empty particle system.
func NewSystem(rng *rand.Rand) *System {
	return &System{rng: rng, DecayPerFrame: 0.01}
}

// Count returns the number of live particles.
func (s *System) Count() int {
	return len(s.particles)
}

// Particles exposes the live collection for drawing and tests.
func (s *System) Particles() []Particle {
	return s.particles
}

// Burst spawns BurstSize particles of the given glyph: random x within the
// middle 60% of the canvas, fixed y at 60% height, drifting sideways and
// upward, fading from full opacity.
func (s *System) Burst(glyph string, canvasW, canvasH int) {
	if glyph == "" {
		return
	}
	w, h := float64(canvasW), float64(canvasH)
	for i := 0; i < BurstSize; i++ {
		if len(s.particles) >= MaxParticles {
			return
		}
		s.particles = append(s.particles, Particle{
			ID:      s.nextID,
			X:       w * (s.rng.Float64()*0.6 + 0.2),
			Y:       h * 0.6,
			VX:      (s.rng.Float64() - 0.5) * 1,
			VY:      -s.rng.Float64()*1.5 - 0.5,
			Opacity: 1,
			Glyph:   glyph,
			Size:    (w / 40) * (s.rng.Float64()*0.5 + 0.75),
		})
		s.nextID++
	}
}

// Step advances every particle one frame and culls the ones that have faded
// out: Euler position integration, then the opacity decrement.
func (s *System) Step() {
	live := s.particles[:0]
	for _, p := range s.particles {
		p.X += p.VX
		p.Y += p.VY
		p.Opacity -= s.DecayPerFrame
		if p.Opacity > 0 {
			live = append(live, p)
		}
	}
	s.particles = live
}

// FacePicker returns a font face suited to drawing a glyph at the given
// pixel size.
type FacePicker func(size float64) (font.Face, error)

// Draw renders every live particle as white text at its own opacity.
func (s *System) Draw(dst *image.RGBA, pick FacePicker) {
	for _, p := range s.particles {
		face, err := pick(p.Size)
		if err != nil {
			// Missing face, skip the layer rather than fail the frame.
			continue
		}
		d := font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(paint.WithAlpha(white, p.Opacity)),
			Face: face,
			Dot:  fixed.P(int(p.X), int(p.Y)),
		}
		d.DrawString(p.Glyph)
	}
}

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
