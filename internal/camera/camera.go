// Package camera implements the Ken-Burns pan/zoom path of a session and the
// themed per-frame jitter layered on top of it.
package camera

import (
	"math"
	"math/rand"

	"github.com/ivlev/lyric2video/internal/theme"
)

// Path holds the session's Ken-Burns parameters. Zoom endpoints are fixed;
// the pan offsets are drawn once when the session starts and stay immutable
// for its lifetime.
type Path struct {
	StartZoom float64
	EndZoom   float64
	StartX    float64
	StartY    float64
	EndX      float64
	EndY      float64
}

// NewPath draws a random pan path. Offsets are Uniform(-0.25, 0.25),
// expressed as fractions of the leftover source area around the crop window.
func NewPath(r *rand.Rand) Path {
	offset := func() float64 { return (r.Float64() - 0.5) * 0.5 }
	return Path{
		StartZoom: 1.0,
		EndZoom:   1.15,
		StartX:    offset(),
		StartY:    offset(),
		EndX:      offset(),
		EndY:      offset(),
	}
}

// Pose is the camera position for one frame.
type Pose struct {
	Zoom float64
	X    float64
	Y    float64
}

// Pose computes the camera pose at time t for a song of the given duration.
// The base term lerps along the path by normalized progress; theme jitter is
// added on top. The result depends only on the inputs, so a seek lands on
// exactly the pose the time would have reached during playback.
func (p Path) Pose(t, duration float64, th theme.Theme) Pose {
	progress := 0.0
	if duration > 0 {
		progress = clamp01(t / duration)
	}

	pose := Pose{
		Zoom: lerp(p.StartZoom, p.EndZoom, progress),
		X:    lerp(p.StartX, p.EndX, progress),
		Y:    lerp(p.StartY, p.EndY, progress),
	}

	j := Jitter(th, t)
	pose.Zoom *= j.ZoomMul
	pose.X += j.DX
	pose.Y += j.DY
	return pose
}

// JitterTerm is the themed additive disturbance for one frame. All terms are
// smooth periodic functions of t, never random, so they too survive seeks.
type JitterTerm struct {
	ZoomMul float64
	DX      float64
	DY      float64
}

// Jitter returns the theme's camera disturbance at time t.
func Jitter(th theme.Theme, t float64) JitterTerm {
	j := JitterTerm{ZoomMul: 1}

	switch th {
	case theme.Rock:
		// Beat pump at 0.4s intervals: sharp attack, linear decay over the
		// first 15% of the period, plus a constant shake.
		const period = 0.4
		phase := math.Mod(t, period) / period
		if phase < 0.15 {
			j.ZoomMul = 1 + (1-phase/0.15)*0.12
		}
		j.DX = math.Sin(t*2.5) * 0.008
		j.DY = math.Cos(t*2.8) * 0.008

	case theme.Country:
		j.ZoomMul = 1 + math.Sin(t*0.2)*0.015
		j.DX = math.Sin(t*0.15) * 0.008
		j.DY = math.Cos(t*0.12) * 0.006

	case theme.Chill:
		j.ZoomMul = 1 + math.Sin(t*0.1)*0.01
		j.DX = math.Sin(t*0.08) * 0.003
		j.DY = math.Cos(t*0.06) * 0.003

	case theme.Underground:
		// 120 BPM bump, decaying over the first 10% of each beat.
		const period = 0.5
		phase := math.Mod(t, period) / period
		if phase < 0.1 {
			j.ZoomMul = 1 + (1-phase/0.1)*0.08
		}
		j.DX = math.Sin(t*0.3) * 0.005
		j.DY = math.Cos(t*0.25) * 0.005
	}

	return j
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
