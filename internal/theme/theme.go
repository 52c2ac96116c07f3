// Package theme defines the fixed set of visual themes and the font and
// color styling each one applies to the frame.
package theme

import (
	"fmt"
	"image/color"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Theme selects fonts, colors, overlay generator and camera jitter.
type Theme string

const (
	Default     Theme = "default"
	Rock        Theme = "rock"
	Country     Theme = "country"
	Chill       Theme = "chill"
	Underground Theme = "underground"
)

// All lists every supported theme.
var All = []Theme{Default, Rock, Country, Chill, Underground}

// Parse validates a theme name. The empty string maps to Default.
func Parse(name string) (Theme, error) {
	if name == "" {
		return Default, nil
	}
	for _, t := range All {
		if string(t) == name {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown theme %q", name)
}

// Style carries the text styling of one theme. FontDivisor sets the lyric
// font size as canvasWidth/FontDivisor, matching the per-theme sizes of the
// player.
type Style struct {
	FontTTF     []byte
	FontDivisor float64
	BaseFill    color.NRGBA
	Highlight   color.NRGBA
	Shadow      color.NRGBA
	Glyph       string
}

var styles = map[Theme]*Style{
	Default: {
		FontTTF:     gobold.TTF,
		FontDivisor: 18,
		BaseFill:    color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Highlight:   color.NRGBA{G: 255, B: 255, A: 255},
		Shadow:      color.NRGBA{A: 255},
		Glyph:       "♪",
	},
	Rock: {
		FontTTF:     gobold.TTF,
		FontDivisor: 14,
		BaseFill:    color.NRGBA{R: 224, G: 224, B: 224, A: 255},
		Highlight:   color.NRGBA{R: 255, G: 69, A: 255},
		Shadow:      color.NRGBA{A: 255},
		Glyph:       "♪",
	},
	Country: {
		FontTTF:     goitalic.TTF,
		FontDivisor: 16,
		BaseFill:    color.NRGBA{R: 245, G: 230, B: 211, A: 255},
		Highlight:   color.NRGBA{R: 255, G: 215, A: 255},
		Shadow:      color.NRGBA{R: 101, G: 67, B: 33, A: 204},
		Glyph:       "♪",
	},
	Chill: {
		FontTTF:     goregular.TTF,
		FontDivisor: 18,
		BaseFill:    color.NRGBA{R: 255, G: 255, B: 255, A: 204},
		Highlight:   color.NRGBA{R: 135, G: 206, B: 235, A: 255},
		Shadow:      color.NRGBA{A: 77},
		Glyph:       "♪",
	},
	Underground: {
		FontTTF:     gomono.TTF,
		FontDivisor: 18,
		BaseFill:    color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Highlight:   color.NRGBA{G: 255, B: 255, A: 255},
		Shadow:      color.NRGBA{A: 255},
		Glyph:       "♪",
	},
}

// StyleFor returns the styling for a theme; unknown themes get Default's.
func StyleFor(t Theme) *Style {
	if s, ok := styles[t]; ok {
		return s
	}
	return styles[Default]
}
