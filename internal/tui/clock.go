package tui

import "time"

// Player is a simulated per-segment playback handle: a clock the TUI
// advances on its tick messages. It implements playback.Handle for the
// session, which reads the current time when placing markers.
type Player struct {
	duration float64
	position float64
	playing  bool
}

// NewPlayer creates a paused player for a segment of the given duration.
func NewPlayer(durationS float64) *Player {
	return &Player{duration: durationS}
}

// Play resumes the clock.
func (p *Player) Play() { p.playing = true }

// Pause stops the clock.
func (p *Player) Pause() { p.playing = false }

// Playing reports whether the clock is running.
func (p *Player) Playing() bool { return p.playing }

// CurrentTime returns the playhead position in seconds.
func (p *Player) CurrentTime() float64 { return p.position }

// Duration returns the segment duration in seconds.
func (p *Player) Duration() float64 { return p.duration }

// SeekTo moves the playhead, clamped to the segment bounds.
func (p *Player) SeekTo(s float64) {
	if s < 0 {
		s = 0
	}
	if s > p.duration {
		s = p.duration
	}
	p.position = s
}

// Advance moves the playhead forward while playing and reports whether
// the segment finished on this step. A finished player pauses at the end.
func (p *Player) Advance(dt time.Duration) bool {
	if !p.playing {
		return false
	}
	p.position += dt.Seconds()
	if p.position >= p.duration {
		p.position = p.duration
		p.playing = false
		return true
	}
	return false
}
