// Package timeline holds the ordered, timed lyric entries of a session and
// answers the per-frame question "which entry is active at time t".
package timeline

// DefaultSection is assumed when an entry carries no section tag.
const DefaultSection = "verse"

// Entry is one timed lyric line.
type Entry struct {
	Line      string  `yaml:"line"`
	Section   string  `yaml:"section"`
	StartTime float64 `yaml:"start"`
	EndTime   float64 `yaml:"end"`
	Glyph     string  `yaml:"glyph,omitempty"`
}

// Valid reports whether the entry occupies a positive time window. Malformed
// entries (EndTime <= StartTime) are never active; they are skipped rather
// than rejected so that upstream editing mistakes cannot crash a frame.
func (e *Entry) Valid() bool {
	return e.EndTime > e.StartTime
}

// SectionOrDefault returns the entry's section tag, or DefaultSection when
// the tag is empty.
func (e *Entry) SectionOrDefault() string {
	if e.Section == "" {
		return DefaultSection
	}
	return e.Section
}

// Timeline is the lookup model over an entry sequence. Entries are expected
// sorted by StartTime and non-overlapping; when that is violated the first
// matching entry wins, deterministically.
//
// The timeline is read by the frame tick and may be retimed by an editor, but
// only between ticks: the engine permits no writer concurrent with a frame.
type Timeline struct {
	entries []Entry
}

// New copies entries into a fresh timeline.
func New(entries []Entry) *Timeline {
	t := &Timeline{}
	t.Replace(entries)
	return t
}

// Len returns the number of entries.
func (t *Timeline) Len() int {
	return len(t.entries)
}

// Entry returns the entry at index i, or nil when out of range.
func (t *Timeline) Entry(i int) *Entry {
	if i < 0 || i >= len(t.entries) {
		return nil
	}
	return &t.entries[i]
}

// Entries returns the backing entry slice. Callers must not mutate it while
// frames are being rendered.
func (t *Timeline) Entries() []Entry {
	return t.entries
}

// ActiveIndex returns the index of the first entry with
// StartTime <= at < EndTime, or -1 when no entry is active. A linear scan is
// deliberate: song line counts are small and the scan keeps lookups stable
// under arbitrary entry timings.
func (t *Timeline) ActiveIndex(at float64) int {
	for i := range t.entries {
		e := &t.entries[i]
		if !e.Valid() {
			continue
		}
		if at >= e.StartTime && at < e.EndTime {
			return i
		}
	}
	return -1
}

// ActiveEntry returns the active entry at the given time, or nil.
func (t *Timeline) ActiveEntry(at float64) *Entry {
	return t.Entry(t.ActiveIndex(at))
}

// EntriesInSection returns the indices of all entries tagged with section, in
// timeline order.
func (t *Timeline) EntriesInSection(section string) []int {
	var idx []int
	for i := range t.entries {
		if t.entries[i].SectionOrDefault() == section {
			idx = append(idx, i)
		}
	}
	return idx
}

// SectionProgress returns how far entry i sits within its section: its rank
// divided by (count-1), or 0 for a single-entry section or an invalid index.
func (t *Timeline) SectionProgress(i int) float64 {
	e := t.Entry(i)
	if e == nil {
		return 0
	}
	peers := t.EntriesInSection(e.SectionOrDefault())
	if len(peers) < 2 {
		return 0
	}
	for rank, idx := range peers {
		if idx == i {
			return float64(rank) / float64(len(peers)-1)
		}
	}
	return 0
}

// Progress returns the elapsed fraction of entry i's active window at the
// given time, clamped to [0, 1]. Zero-width entries report 1.
func (t *Timeline) Progress(i int, at float64) float64 {
	e := t.Entry(i)
	if e == nil {
		return 0
	}
	if !e.Valid() {
		return 1
	}
	p := (at - e.StartTime) / (e.EndTime - e.StartTime)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// SetTiming retimes entry i. A live editor calls this between frame ticks.
func (t *Timeline) SetTiming(i int, start, end float64) {
	if e := t.Entry(i); e != nil {
		e.StartTime = start
		e.EndTime = end
	}
}

// Replace swaps in a new entry sequence, again only between ticks.
func (t *Timeline) Replace(entries []Entry) {
	t.entries = make([]Entry, len(entries))
	copy(t.entries, entries)
}

// Sections returns the distinct section tags in order of first appearance.
func (t *Timeline) Sections() []string {
	var out []string
	seen := make(map[string]bool)
	for i := range t.entries {
		s := t.entries[i].SectionOrDefault()
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// EndTime returns the end of the last valid entry, or 0 for an empty
// timeline.
func (t *Timeline) EndTime() float64 {
	var end float64
	for i := range t.entries {
		if t.entries[i].Valid() && t.entries[i].EndTime > end {
			end = t.entries[i].EndTime
		}
	}
	return end
}
