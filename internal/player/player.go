// Package player binds a render session to an external time source and
// drives the per-frame redraw loop.
//
// Time is never tracked internally: every tick reads the clock's current
// position fresh, so the frames cannot drift from the audio.
package player

import (
	"context"
	"image"
	"sync"
	"time"
)

// Clock is the external, continuously advancing time source — in practice
// the audio element position.
type Clock interface {
	CurrentTime() float64
	Duration() float64
	Play()
	Pause()
	Seek(t float64)
	Ended() bool
}

// State is the transport position in its lifecycle.
type State int

const (
	StateIdle State = iota
	StatePlaying
	StatePaused
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateEnded:
		return "ended"
	}
	return "unknown"
}

// Transport is the playback state machine over a Clock. User actions and the
// frame tick may arrive from different goroutines, so state moves are
// mutex-guarded; everything else the engine touches stays single-threaded.
type Transport struct {
	mu    sync.Mutex
	clock Clock
	state State
}

// NewTransport wraps a clock in an idle transport.
func NewTransport(clock Clock) *Transport {
	return &Transport{clock: clock}
}

// State returns the current transport state.
func (tr *Transport) State() State {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return tr.state
}

// Play starts playback. From the ended state the position rewinds to 0
// first; from any other state the position is untouched.
func (tr *Transport) Play() {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	if tr.state == StatePlaying {
		return
	}
	if tr.state == StateEnded {
		tr.clock.Seek(0)
	}
	tr.state = StatePlaying
	tr.clock.Play()
}

// Pause suspends playback; only meaningful while playing.
func (tr *Transport) Pause() {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	if tr.state != StatePlaying {
		return
	}
	tr.state = StatePaused
	tr.clock.Pause()
}

// Seek moves the position, clamped to [0, duration], without changing the
// play/pause state.
func (tr *Transport) Seek(t float64) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	if t < 0 {
		t = 0
	}
	if d := tr.clock.Duration(); t > d {
		t = d
	}
	tr.clock.Seek(t)
}

// Observe advances the state machine from the clock's side: a playing clock
// that has run out transitions the transport to ended. The driver calls this
// once per tick.
func (tr *Transport) Observe() {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	if tr.state == StatePlaying && tr.clock.Ended() {
		tr.state = StateEnded
	}
}

// CurrentTime reads the clock position.
func (tr *Transport) CurrentTime() float64 {
	return tr.clock.CurrentTime()
}

// Scheduler invokes tick once per display frame until the context is
// cancelled. It abstracts the host's "next frame" callback so the engine
// stays free of platform timing APIs.
type Scheduler interface {
	Run(ctx context.Context, tick func()) error
}

// TickerScheduler schedules frames off a wall-clock ticker, the default when
// no host vsync callback is available.
type TickerScheduler struct {
	Interval time.Duration
}

// Run ticks until the context is cancelled. Ticks are strictly sequential:
// a new tick never starts before the previous one returned.
func (s TickerScheduler) Run(ctx context.Context, tick func()) error {
	interval := s.Interval
	if interval <= 0 {
		interval = time.Second / 60
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			tick()
		}
	}
}

// Driver runs the redraw loop: each tick it reads the clock, renders the
// frame for that time and presents it. Rendering happens in every transport
// state, not just while playing, so a seek while paused still redraws.
type Driver struct {
	Transport *Transport
	Render    func(t float64) *image.RGBA
	Present   func(frame *image.RGBA)
	Scheduler Scheduler
}

// Run drives frames until the context is cancelled; cancelling is how a
// session is torn down.
func (d *Driver) Run(ctx context.Context) error {
	scheduler := d.Scheduler
	if scheduler == nil {
		scheduler = TickerScheduler{}
	}
	return scheduler.Run(ctx, func() {
		t := d.Transport.CurrentTime()
		frame := d.Render(t)
		if d.Present != nil {
			d.Present(frame)
		}
		d.Transport.Observe()
	})
}
