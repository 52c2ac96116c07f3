package theme

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		want    Theme
		wantErr bool
	}{
		{"", Default, false},
		{"default", Default, false},
		{"rock", Rock, false},
		{"country", Country, false},
		{"chill", Chill, false},
		{"underground", Underground, false},
		{"ROCK", "", true},
		{"disco", "", true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.name)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Parse(%q) = %q, want error", tt.name, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestStyleFor(t *testing.T) {
	for _, th := range All {
		s := StyleFor(th)
		if s == nil {
			t.Fatalf("StyleFor(%s) = nil", th)
		}
		if len(s.FontTTF) == 0 {
			t.Errorf("theme %s has no font data", th)
		}
		if s.FontDivisor <= 0 {
			t.Errorf("theme %s FontDivisor = %f", th, s.FontDivisor)
		}
		if s.BaseFill.A == 0 {
			t.Errorf("theme %s base fill is fully transparent", th)
		}
		if s.Glyph == "" {
			t.Errorf("theme %s has no default glyph", th)
		}
	}

	// Unknown themes fall back to the default styling.
	if StyleFor(Theme("disco")) != StyleFor(Default) {
		t.Error("unknown theme did not fall back to default style")
	}
}

func TestFaceSet(t *testing.T) {
	fs, err := NewFaceSet(StyleFor(Default))
	if err != nil {
		t.Fatalf("NewFaceSet failed: %v", err)
	}

	a, err := fs.Face(36)
	if err != nil {
		t.Fatalf("Face(36) failed: %v", err)
	}
	// Same rounded size must hit the cache.
	b, err := fs.Face(36.7)
	if err != nil {
		t.Fatalf("Face(36.7) failed: %v", err)
	}
	if a != b {
		t.Error("faces for the same pixel size were not cached")
	}

	c, err := fs.Face(18)
	if err != nil {
		t.Fatalf("Face(18) failed: %v", err)
	}
	if a == c {
		t.Error("different sizes returned the same face")
	}

	// Degenerate sizes clamp instead of failing.
	if _, err := fs.Face(0.2); err != nil {
		t.Errorf("Face(0.2) failed: %v", err)
	}
}
