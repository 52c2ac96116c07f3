package particles

import (
	"image"
	"math"
	"math/rand"
	"testing"

	"github.com/ivlev/lyric2video/internal/theme"
)

func TestBurst(t *testing.T) {
	s := NewSystem(rand.New(rand.NewSource(7)))

	s.Burst("♪", 1280, 720)
	if s.Count() != BurstSize {
		t.Fatalf("Count = %d, want %d", s.Count(), BurstSize)
	}

	seen := make(map[int]bool)
	for _, p := range s.Particles() {
		if seen[p.ID] {
			t.Errorf("duplicate particle ID %d", p.ID)
		}
		seen[p.ID] = true

		if p.X < 1280*0.2 || p.X >= 1280*0.8 {
			t.Errorf("X = %f outside the middle 60%% of the canvas", p.X)
		}
		if p.Y != 720*0.6 {
			t.Errorf("Y = %f, want %f", p.Y, 720*0.6)
		}
		if p.VX < -0.5 || p.VX >= 0.5 {
			t.Errorf("VX = %f outside [-0.5, 0.5)", p.VX)
		}
		if p.VY >= -0.5 || p.VY < -2.0 {
			t.Errorf("VY = %f outside [-2.0, -0.5)", p.VY)
		}
		if p.Opacity != 1 {
			t.Errorf("Opacity = %f, want 1", p.Opacity)
		}
		if p.Glyph != "♪" {
			t.Errorf("Glyph = %q", p.Glyph)
		}
		minSize, maxSize := 1280.0/40*0.75, 1280.0/40*1.25
		if p.Size < minSize || p.Size >= maxSize {
			t.Errorf("Size = %f outside [%f, %f)", p.Size, minSize, maxSize)
		}
	}
}

func TestBurstEmptyGlyphIsNoop(t *testing.T) {
	s := NewSystem(rand.New(rand.NewSource(7)))
	s.Burst("", 1280, 720)
	if s.Count() != 0 {
		t.Errorf("Count = %d after empty-glyph burst, want 0", s.Count())
	}
}

func TestStepIntegratesAndDecays(t *testing.T) {
	s := NewSystem(rand.New(rand.NewSource(7)))
	s.Burst("★", 1280, 720)

	before := append([]Particle(nil), s.Particles()...)
	s.Step()
	after := s.Particles()

	if len(after) != len(before) {
		t.Fatalf("particle count changed on first step: %d -> %d", len(before), len(after))
	}
	for i := range after {
		wantX := before[i].X + before[i].VX
		wantY := before[i].Y + before[i].VY
		if math.Abs(after[i].X-wantX) > 1e-12 || math.Abs(after[i].Y-wantY) > 1e-12 {
			t.Errorf("particle %d position (%f, %f), want (%f, %f)", i, after[i].X, after[i].Y, wantX, wantY)
		}
		if math.Abs(after[i].Opacity-(before[i].Opacity-s.DecayPerFrame)) > 1e-12 {
			t.Errorf("particle %d opacity = %f", i, after[i].Opacity)
		}
	}
}

func TestStepCullsFadedParticles(t *testing.T) {
	s := NewSystem(rand.New(rand.NewSource(7)))
	s.Burst("♪", 1280, 720)

	// Opacity starts at 1 and loses 0.01 per frame: the particle hits zero on
	// step 100 and must be gone.
	for i := 0; i < 99; i++ {
		s.Step()
	}
	if s.Count() != BurstSize {
		t.Fatalf("Count after 99 steps = %d, want %d", s.Count(), BurstSize)
	}
	s.Step()
	if s.Count() != 0 {
		t.Errorf("Count after 100 steps = %d, want 0", s.Count())
	}
}

func TestBurstRespectsCap(t *testing.T) {
	s := NewSystem(rand.New(rand.NewSource(7)))
	for i := 0; i < MaxParticles; i++ {
		s.Burst("♪", 1280, 720)
	}
	if s.Count() != MaxParticles {
		t.Errorf("Count = %d, want cap %d", s.Count(), MaxParticles)
	}
}

func TestDraw(t *testing.T) {
	s := NewSystem(rand.New(rand.NewSource(7)))
	s.Burst("♪", 640, 360)

	fs, err := theme.NewFaceSet(theme.StyleFor(theme.Default))
	if err != nil {
		t.Fatalf("NewFaceSet failed: %v", err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, 640, 360))
	s.Draw(dst, fs.Face)

	lit := 0
	for i := 3; i < len(dst.Pix); i += 4 {
		if dst.Pix[i] != 0 {
			lit++
		}
	}
	if lit == 0 {
		t.Error("Draw painted nothing")
	}
}
