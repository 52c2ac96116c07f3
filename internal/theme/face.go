package theme

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// FaceSet owns the parsed font of a style and hands out faces at the sizes
// the frame needs. Faces are built once per session; font.Face values are not
// safe for concurrent use, which is fine on the single-goroutine frame path.
type FaceSet struct {
	fnt   *opentype.Font
	faces map[int]font.Face
}

// NewFaceSet parses the style's font.
func NewFaceSet(s *Style) (*FaceSet, error) {
	fnt, err := opentype.Parse(s.FontTTF)
	if err != nil {
		return nil, fmt.Errorf("parsing theme font: %w", err)
	}
	return &FaceSet{fnt: fnt, faces: make(map[int]font.Face)}, nil
}

// Face returns a face at the given pixel size, creating and caching it on
// first use. Sizes are rounded to whole pixels to bound the cache.
func (fs *FaceSet) Face(size float64) (font.Face, error) {
	px := int(size)
	if px < 1 {
		px = 1
	}
	if f, ok := fs.faces[px]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(fs.fnt, &opentype.FaceOptions{
		Size:    float64(px),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("creating %dpx face: %w", px, err)
	}
	fs.faces[px] = f
	return f, nil
}
