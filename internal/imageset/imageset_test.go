package imageset

import (
	"image"
	"image/color"
	"testing"
)

func flat(c color.NRGBA) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return img
}

func testSet() *Set {
	return New(map[string]image.Image{
		"verse_0":  flat(color.NRGBA{R: 255, A: 255}),
		"verse_1":  flat(color.NRGBA{G: 255, A: 255}),
		"chorus_0": flat(color.NRGBA{B: 255, A: 255}),
		"chorus_1": flat(color.NRGBA{R: 255, G: 255, A: 255}),
		"chorus_2": flat(color.NRGBA{G: 255, B: 255, A: 255}),
		"bridge":   flat(color.NRGBA{A: 255}),
	})
}

func TestImageIndex(t *testing.T) {
	tests := []struct {
		section   string
		progress  float64
		available int
		want      int
	}{
		// chorus switches at thirds
		{"chorus", 0.0, 3, 0},
		{"chorus", 0.2, 3, 0},
		{"chorus", 0.33, 3, 1},
		{"chorus", 0.5, 3, 1},
		{"chorus", 0.67, 3, 2},
		{"chorus", 0.9, 3, 2},
		{"chorus", 1.0, 3, 2},
		// everything else switches at the midpoint
		{"verse", 0.0, 2, 0},
		{"verse", 0.49, 2, 0},
		{"verse", 0.5, 2, 1},
		{"verse", 1.0, 2, 1},
		{"bridge", 0.8, 2, 1},
		// clamped to what is actually available
		{"chorus", 0.9, 2, 1},
		{"chorus", 0.9, 1, 0},
		{"verse", 0.9, 1, 0},
		{"verse", 0.9, 0, 0},
	}

	for _, tt := range tests {
		got := ImageIndex(tt.section, tt.progress, tt.available)
		if got != tt.want {
			t.Errorf("ImageIndex(%q, %.2f, %d) = %d, want %d",
				tt.section, tt.progress, tt.available, got, tt.want)
		}
	}
}

func TestResolve(t *testing.T) {
	s := testSet()

	tests := []struct {
		section  string
		progress float64
		wantKey  string
	}{
		{"chorus", 0.2, "chorus_0"},
		{"chorus", 0.5, "chorus_1"},
		{"chorus", 0.9, "chorus_2"},
		{"verse", 0.1, "verse_0"},
		{"verse", 0.7, "verse_1"},
	}

	for _, tt := range tests {
		img, key := s.Resolve(tt.section, tt.progress)
		if key != tt.wantKey {
			t.Errorf("Resolve(%q, %.2f) key = %q, want %q", tt.section, tt.progress, key, tt.wantKey)
		}
		if img == nil {
			t.Errorf("Resolve(%q, %.2f) returned nil image", tt.section, tt.progress)
		}
	}
}

func TestResolveFallsBackToBareSectionKey(t *testing.T) {
	s := testSet()

	// bridge has no indexed keys, but a bare "bridge" image exists.
	img, key := s.Resolve("bridge", 0.5)
	if img == nil {
		t.Fatal("expected the bare section image")
	}
	if key != "bridge" {
		t.Errorf("key = %q, want %q", key, "bridge")
	}
}

func TestResolveMissingSection(t *testing.T) {
	s := testSet()

	img, key := s.Resolve("outro", 0.5)
	if img != nil {
		t.Error("expected nil image for an unknown section")
	}
	if key != "outro_0" {
		t.Errorf("key = %q, want %q", key, "outro_0")
	}
}

func TestSectionKeysSorted(t *testing.T) {
	s := testSet()

	keys := s.SectionKeys("chorus")
	want := []string{"chorus_0", "chorus_1", "chorus_2"}
	if len(keys) != len(want) {
		t.Fatalf("SectionKeys(chorus) = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("SectionKeys(chorus) = %v, want %v", keys, want)
		}
	}

	if s.Len() != 6 {
		t.Errorf("Len() = %d, want 6", s.Len())
	}
}

func TestNewSkipsNilImages(t *testing.T) {
	s := New(map[string]image.Image{
		"verse_0": flat(color.NRGBA{A: 255}),
		"verse_1": nil,
	})

	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
	if got := s.SectionKeys("verse"); len(got) != 1 || got[0] != "verse_0" {
		t.Errorf("SectionKeys(verse) = %v, want [verse_0]", got)
	}
}
