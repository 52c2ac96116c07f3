// Package imageset holds the decoded background images of a session, keyed
// "{section}_{index}", and implements the per-frame image selection policy.
//
// The set is populated once, before the first frame, and read-only afterward:
// the frame path only looks images up and treats misses as "nothing to draw".
package imageset

import (
	"fmt"
	"image"
	"sort"
	"strings"
)

// Set maps image keys to decoded rasters.
type Set struct {
	images      map[string]image.Image
	sectionKeys map[string][]string
}

// New builds a set from already-decoded images.
func New(images map[string]image.Image) *Set {
	s := &Set{
		images:      make(map[string]image.Image, len(images)),
		sectionKeys: make(map[string][]string),
	}
	for key, img := range images {
		if img == nil {
			continue
		}
		s.images[key] = img
		if i := strings.LastIndex(key, "_"); i > 0 {
			section := key[:i]
			s.sectionKeys[section] = append(s.sectionKeys[section], key)
		}
	}
	for _, keys := range s.sectionKeys {
		sort.Strings(keys)
	}
	return s
}

// Len returns the number of images in the set.
func (s *Set) Len() int {
	return len(s.images)
}

// Lookup returns the image for an exact key, or nil.
func (s *Set) Lookup(key string) image.Image {
	return s.images[key]
}

// SectionKeys returns the sorted "{section}_{index}" keys available for a
// section.
func (s *Set) SectionKeys(section string) []string {
	return s.sectionKeys[section]
}

// ImageIndex picks which of a section's images to show at the given section
// progress. The chorus switches at thirds; every other section switches at
// the midpoint. The index is clamped to the images actually available.
func ImageIndex(section string, progress float64, available int) int {
	if available <= 1 {
		return 0
	}
	var idx int
	if section == "chorus" {
		switch {
		case progress < 0.33:
			idx = 0
		case progress < 0.67:
			idx = 1
		default:
			idx = 2
		}
	} else {
		if progress < 0.5 {
			idx = 0
		} else {
			idx = 1
		}
	}
	if idx > available-1 {
		idx = available - 1
	}
	return idx
}

// Resolve picks the image for a section at the given progress and returns it
// with its resolved key. Missing keys fall back from the exact key to the
// bare section key; when neither exists the image is nil and absence is a
// valid "nothing to draw" state.
func (s *Set) Resolve(section string, progress float64) (image.Image, string) {
	keys := s.SectionKeys(section)
	idx := ImageIndex(section, progress, len(keys))

	key := fmt.Sprintf("%s_%d", section, idx)
	if len(keys) > 0 {
		key = keys[idx]
	}

	if img := s.images[key]; img != nil {
		return img, key
	}
	if img := s.images[section]; img != nil {
		return img, section
	}
	return nil, key
}
