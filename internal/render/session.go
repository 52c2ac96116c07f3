// Package render composes every animation system into frames: given a media
// time it deterministically computes the background, camera, overlays, text,
// particles and watermark, and paints them in a fixed layer order.
package render

import (
	"image"
	"math/rand"
	"time"

	"github.com/ivlev/lyric2video/internal/camera"
	"github.com/ivlev/lyric2video/internal/config"
	"github.com/ivlev/lyric2video/internal/imageset"
	"github.com/ivlev/lyric2video/internal/overlay"
	"github.com/ivlev/lyric2video/internal/paint"
	"github.com/ivlev/lyric2video/internal/particles"
	"github.com/ivlev/lyric2video/internal/system"
	"github.com/ivlev/lyric2video/internal/text"
	"github.com/ivlev/lyric2video/internal/theme"
	"github.com/ivlev/lyric2video/internal/timeline"
	"github.com/ivlev/lyric2video/internal/watermark"
)

// CrossfadeDuration is the background blend time on an image change.
const CrossfadeDuration = 1.0

// CrossfadeAlpha returns the opacities of the outgoing and incoming
// background images at time t for a transition that started at start. The
// two always sum to 1.
func CrossfadeAlpha(t, start float64) (outgoing, incoming float64) {
	p := paint.Clamp01((t - start) / CrossfadeDuration)
	return 1 - p, p
}

// Options tune an optional part of a session.
type Options struct {
	// Duration of the song; defaults to the end of the last timeline entry.
	Duration float64
	// WatermarkImage overlays the frames; nil skips the watermark layer.
	WatermarkImage image.Image
	// UseThemeGlyph substitutes the theme's default glyph for entries that
	// have none, so every lyric change fires a particle burst.
	UseThemeGlyph bool
	// Rand seeds the session's camera path and effect randomness. Defaults
	// to a time-seeded source.
	Rand *rand.Rand
}

// Session is one complete rendering configuration: lyrics, images, theme and
// aspect ratio, plus all mutable per-frame tracking state. The tracking
// state is owned by whoever calls RenderFrame; only one goroutine may do so.
type Session struct {
	theme  theme.Theme
	style  *theme.Style
	faces  *theme.FaceSet
	tl     *timeline.Timeline
	images *imageset.Set
	path   camera.Path

	particles *particles.System
	watermark *watermark.Model

	width, height int
	duration      float64
	useThemeGlyph bool
	rng           *rand.Rand
	frame         *image.RGBA

	lastIndex       int
	lastSection     string
	lastKey         string
	prevImage       image.Image
	curImage        image.Image
	transitionStart float64
	introStart      float64
}

// NewSession builds a session. The image set must already be fully decoded:
// nothing loads on the frame path.
func NewSession(tl *timeline.Timeline, images *imageset.Set, th theme.Theme, aspect config.AspectRatio, opts Options) (*Session, error) {
	style := theme.StyleFor(th)
	faces, err := theme.NewFaceSet(style)
	if err != nil {
		return nil, err
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	duration := opts.Duration
	if duration <= 0 {
		duration = tl.EndTime()
	}

	w, h := aspect.CanvasSize()
	s := &Session{
		theme:         th,
		style:         style,
		faces:         faces,
		tl:            tl,
		images:        images,
		path:          camera.NewPath(rng),
		particles:     particles.NewSystem(rng),
		watermark:     watermark.NewModel(opts.WatermarkImage, rng),
		width:         w,
		height:        h,
		duration:      duration,
		useThemeGlyph: opts.UseThemeGlyph,
		rng:           rng,
		frame:         system.GetImage(image.Rect(0, 0, w, h)),
		lastIndex:     -1,
	}
	return s, nil
}

// Close releases the session's frame buffer. The session must not be used
// afterwards.
func (s *Session) Close() {
	system.PutImage(s.frame)
	s.frame = nil
}

// Timeline returns the session's timeline for between-tick retiming.
func (s *Session) Timeline() *timeline.Timeline {
	return s.tl
}

// Duration returns the session's song duration in seconds.
func (s *Session) Duration() float64 {
	return s.duration
}

// Size returns the canvas dimensions.
func (s *Session) Size() (width, height int) {
	return s.width, s.height
}

// MoveWatermark re-rolls the watermark placement on user request.
func (s *Session) MoveWatermark() {
	s.watermark.Move()
}

// CameraPath exposes the session's Ken-Burns parameters.
func (s *Session) CameraPath() camera.Path {
	return s.path
}

// RenderFrame computes and paints the frame for media time t, returning the
// session-owned frame buffer. The buffer is reused by the next call; copy it
// to keep it. Missing assets skip their layer, never fail the frame.
func (s *Session) RenderFrame(t float64) *image.RGBA {
	paint.Clear(s.frame)

	idx := s.tl.ActiveIndex(t)
	entry := s.tl.Entry(idx)
	section := s.currentSection(entry)
	s.lastSection = section

	sectionProgress := 0.0
	if entry != nil {
		sectionProgress = s.tl.SectionProgress(idx)
	}

	// Background with cross-fade. The transition trigger is the resolved
	// image key changing since the previous frame.
	img, key := s.images.Resolve(section, sectionProgress)
	if key != s.lastKey {
		s.transitionStart = t
		s.prevImage = s.curImage
		s.lastKey = key
	}
	s.curImage = img

	oldAlpha, newAlpha := CrossfadeAlpha(t, s.transitionStart)
	pose := s.path.Pose(t, s.duration, s.theme)
	paint.DrawImageCover(s.frame, s.prevImage, pose.Zoom, pose.X, pose.Y, oldAlpha)
	paint.DrawImageCover(s.frame, s.curImage, pose.Zoom, pose.X, pose.Y, newAlpha)

	overlay.Draw(s.frame, s.theme, t, s.rng)
	overlay.Darken(s.frame)

	// Particle burst fires once per lyric change, before the tracking index
	// is advanced.
	if idx != s.lastIndex && entry != nil {
		if glyph := s.glyphFor(entry); glyph != "" {
			s.particles.Burst(glyph, s.width, s.height)
		}
	}
	s.particles.Step()
	s.particles.Draw(s.frame, s.faces.Face)

	if idx != s.lastIndex {
		s.introStart = t
		s.lastIndex = idx
	}

	if entry != nil {
		face, err := s.faces.Face(float64(s.width) / s.style.FontDivisor)
		if err == nil {
			introProgress := (t - s.introStart) / text.IntroDuration
			text.Draw(s.frame, face, s.style, s.theme, entry.Line, introProgress, s.tl.Progress(idx, t), s.rng)
		}
	}

	s.watermark.Tick(t)
	s.watermark.Draw(s.frame)

	return s.frame
}

// currentSection keeps showing the previous section's backdrop through
// instrumental gaps instead of cutting to black.
func (s *Session) currentSection(entry *timeline.Entry) string {
	if entry != nil {
		return entry.SectionOrDefault()
	}
	if s.lastSection != "" {
		return s.lastSection
	}
	if first := s.tl.Entry(0); first != nil {
		return first.SectionOrDefault()
	}
	return timeline.DefaultSection
}

func (s *Session) glyphFor(entry *timeline.Entry) string {
	if entry.Glyph != "" {
		return entry.Glyph
	}
	if s.useThemeGlyph {
		return s.style.Glyph
	}
	return ""
}

