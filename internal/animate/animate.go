// Package animate interpolates a number from one value to another over a
// fixed duration, one frame at a time.
package animate

import (
	"context"
	"sync"
	"time"
)

const (
	DefaultDuration = time.Second
	DefaultInterval = 16 * time.Millisecond
)

// Lerp returns the value progress of the way from from to to. Progress is
// clamped to [0, 1].
func Lerp(from, to, progress float64) float64 {
	switch {
	case progress <= 0:
		return from
	case progress >= 1:
		return to
	}
	return from + (to-from)*progress
}

// Animator drives one count-up at a time. Starting a new run supersedes the
// previous one: a superseded run never emits again.
type Animator struct {
	duration time.Duration
	interval time.Duration
	onFrame  func(float64)

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

// New returns an Animator calling onFrame with every interpolated value.
// onFrame is called with the animator's lock held and must not block or
// start another animation.
func New(duration, interval time.Duration, onFrame func(float64)) *Animator {
	if duration <= 0 {
		duration = DefaultDuration
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Animator{
		duration: duration,
		interval: interval,
		onFrame:  onFrame,
	}
}

// Animate starts counting from from to to. The last frame is exactly to.
func (a *Animator) Animate(from, to float64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cancel != nil {
		a.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	a.gen++

	go a.run(ctx, a.gen, from, to)
}

// Stop cancels the running animation, if any.
func (a *Animator) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	a.gen++
}

func (a *Animator) run(ctx context.Context, gen uint64, from, to float64) {
	start := time.Now()
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			progress := float64(now.Sub(start)) / float64(a.duration)
			if !a.emit(gen, Lerp(from, to, progress)) || progress >= 1 {
				return
			}
		}
	}
}

func (a *Animator) emit(gen uint64, v float64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if gen != a.gen {
		return false
	}
	a.onFrame(v)
	return true
}
