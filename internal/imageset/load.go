package imageset

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// LoadDirectory decodes every image in dir into a set. File names (without
// extension) become the image keys, e.g. "chorus_0.png" -> "chorus_0".
func LoadDirectory(dir string) (*Set, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	images := make(map[string]image.Image)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
			continue
		}
		img, err := decodeFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", entry.Name(), err)
		}
		key := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		images[key] = img
	}

	if len(images) == 0 {
		return nil, fmt.Errorf("no images found in %s", dir)
	}
	return New(images), nil
}

// LoadPDF rasterizes every page of a PDF and assigns the pages to the given
// sections round-robin: with sections [verse chorus], page 0 becomes
// "verse_0", page 1 "chorus_0", page 2 "verse_1" and so on.
func LoadPDF(path string, sections []string, dpi int) (*Set, error) {
	if len(sections) == 0 {
		sections = []string{"verse"}
	}

	doc, err := fitz.New(path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	images := make(map[string]image.Image)
	for page := 0; page < doc.NumPage(); page++ {
		img, err := doc.ImageDPI(page, float64(dpi))
		if err != nil {
			return nil, fmt.Errorf("rendering page %d: %w", page+1, err)
		}
		section := sections[page%len(sections)]
		key := fmt.Sprintf("%s_%d", section, page/len(sections))
		images[key] = img
	}

	if len(images) == 0 {
		return nil, fmt.Errorf("PDF %s has no pages", path)
	}
	return New(images), nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}
