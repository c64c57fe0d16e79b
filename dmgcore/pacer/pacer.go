package pacer

import (
	"time"

	"github.com/mattock/dmgcore/cpu"
)

// Pacer counts instructions and, at each frame boundary, sleeps via its
// Limiter unless Turbo is set, and enforces an optional frame-profile
// limit (spec §4.8).
type Pacer struct {
	limiter Limiter

	// Turbo skips sleeping between frames entirely, whether configured
	// by the host or held via a joypad button.
	Turbo bool

	frameLimit   int // 0 = unbounded
	frames       int
	lastBoundary uint64 // instruction count of the last boundary counted
	start        time.Time
}

// New creates a pacer. frameLimit of 0 disables the profile-mode timeout.
func New(limiter Limiter, frameLimit int) *Pacer {
	return &Pacer{limiter: limiter, frameLimit: frameLimit, start: time.Now()}
}

// CheckBoundary should be called once per CPU tick with the CPU's
// completed-instruction count. At each frame boundary it sleeps (unless
// Turbo) and, if a profile limit is configured and exceeded, returns a
// cpu.Timeout naming the frame count and elapsed wall-clock duration.
func (p *Pacer) CheckBoundary(instrCount uint64) error {
	if instrCount%InstructionsPerFrame != frameBoundaryOffset || instrCount == p.lastBoundary {
		return nil
	}
	p.lastBoundary = instrCount

	p.frames++
	if !p.Turbo {
		p.limiter.WaitForNextFrame()
	}

	if p.frameLimit > 0 && p.frames >= p.frameLimit {
		return cpu.Timeout{Frames: p.frames, Seconds: time.Since(p.start).Seconds()}
	}
	return nil
}

// Frames returns the number of frame boundaries crossed so far.
func (p *Pacer) Frames() int { return p.frames }

// Reset clears frame-count and timing state, useful after a pause.
func (p *Pacer) Reset() {
	p.frames = 0
	p.start = time.Now()
	p.limiter.Reset()
}
