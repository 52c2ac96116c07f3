package system

import (
	"image"
	"testing"
)

func TestImagePoolReuse(t *testing.T) {
	rect := image.Rect(0, 0, 64, 48)

	img := GetImage(rect)
	if img == nil {
		t.Fatal("GetImage returned nil")
	}
	if img.Rect != rect {
		t.Fatalf("got rect %v, want %v", img.Rect, rect)
	}

	img.Pix[0] = 42
	PutImage(img)

	// Pooled buffers come back with stale pixel data; callers clear them.
	again := GetImage(rect)
	if again.Rect != rect {
		t.Fatalf("got rect %v after reuse, want %v", again.Rect, rect)
	}
	PutImage(again)
}

func TestImagePoolSeparateSizes(t *testing.T) {
	a := GetImage(image.Rect(0, 0, 10, 10))
	b := GetImage(image.Rect(0, 0, 20, 20))

	if a.Rect == b.Rect {
		t.Fatal("pools for different sizes returned the same rect")
	}
	if len(a.Pix) == len(b.Pix) {
		t.Fatal("pools for different sizes returned equally sized buffers")
	}

	PutImage(a)
	PutImage(b)
}

func TestPutImageNil(t *testing.T) {
	// Must not panic.
	PutImage(nil)
}
