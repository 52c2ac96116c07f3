package overlay

import (
	"image"
	"math/rand"
	"testing"

	"github.com/ivlev/lyric2video/internal/theme"
)

func litPixels(img *image.RGBA) int {
	lit := 0
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 || img.Pix[i+1] != 0 || img.Pix[i+2] != 0 {
			lit++
		}
	}
	return lit
}

func TestDrawPerTheme(t *testing.T) {
	// Every non-default theme must paint something onto a black frame; the
	// default theme paints nothing.
	for _, th := range theme.All {
		dst := image.NewRGBA(image.Rect(0, 0, 160, 90))
		Draw(dst, th, 12.0, rand.New(rand.NewSource(5)))

		lit := litPixels(dst)
		if th == theme.Default && lit != 0 {
			t.Errorf("default theme painted %d pixels", lit)
		}
		if th != theme.Default && lit == 0 {
			t.Errorf("theme %s painted nothing", th)
		}
	}
}

func TestDarken(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for i := 0; i < len(dst.Pix); i += 4 {
		dst.Pix[i+0] = 200
		dst.Pix[i+3] = 255
	}

	Darken(dst)

	// 40% black over R=200 lands at 120.
	c := dst.RGBAAt(8, 8)
	if c.R < 115 || c.R > 125 {
		t.Errorf("darkened R = %d, want ~120", c.R)
	}
}

func TestUndergroundNoiseStaysInBounds(t *testing.T) {
	// A subimage with a non-zero origin: direct Pix writes must respect the
	// bounds offset, or this panics.
	base := image.NewRGBA(image.Rect(0, 0, 200, 120))
	sub := base.SubImage(image.Rect(40, 20, 180, 100)).(*image.RGBA)

	Draw(sub, theme.Underground, 3.0, rand.New(rand.NewSource(5)))

	for y := 0; y < 120; y++ {
		for x := 0; x < 200; x++ {
			inside := x >= 40 && x < 180 && y >= 20 && y < 100
			if inside {
				continue
			}
			o := base.PixOffset(x, y)
			px := base.Pix[o : o+4]
			if px[0] != 0 || px[1] != 0 || px[2] != 0 || px[3] != 0 {
				t.Fatalf("overlay wrote outside its bounds at (%d, %d)", x, y)
			}
		}
	}
}
