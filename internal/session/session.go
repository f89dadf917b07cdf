// Package session keeps the in-memory draft of every open invoice form.
//
// A form lives from the page load that creates it until its page goes away:
// its frame stream disconnects and it stays idle past the store's TTL.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/angelofallars/hyperinvoice/internal/animate"
	"github.com/angelofallars/hyperinvoice/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Form is one open invoice form.
type Form struct {
	ID uuid.UUID

	mu       sync.Mutex
	draft    domain.Draft
	total    decimal.Decimal
	lastSeen time.Time

	counter *animate.Animator

	// streamsMu is taken inside the animator's lock, never around f.mu.
	streamsMu sync.Mutex
	streams   map[chan float64]struct{}
}

// Update replaces the draft and its total. A changed total restarts the
// count-up from the previous total.
func (f *Form) Update(d domain.Draft, total decimal.Decimal) {
	f.mu.Lock()
	defer f.mu.Unlock()

	prev := f.total
	f.draft = d
	f.total = total
	f.lastSeen = time.Now()

	if !prev.Equal(total) {
		f.counter.Animate(prev.InexactFloat64(), total.InexactFloat64())
	}
}

// Snapshot returns the current draft and its total.
func (f *Form) Snapshot() (domain.Draft, decimal.Decimal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft, f.total
}

// Attach registers a live frame stream and returns its frames. Every
// attached stream sees every frame; a stream that falls behind only keeps
// the newest one. detach must be called once the stream closes.
func (f *Form) Attach() (frames <-chan float64, detach func()) {
	ch := make(chan float64, 1)

	f.streamsMu.Lock()
	f.streams[ch] = struct{}{}
	f.streamsMu.Unlock()
	f.touch(time.Now())

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			f.streamsMu.Lock()
			delete(f.streams, ch)
			f.streamsMu.Unlock()
			f.touch(time.Now())
		})
	}
}

// Streams is the number of attached frame streams.
func (f *Form) Streams() int {
	f.streamsMu.Lock()
	defer f.streamsMu.Unlock()
	return len(f.streams)
}

func (f *Form) touch(now time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastSeen = now
}

func (f *Form) expired(now time.Time, ttl time.Duration) bool {
	if f.Streams() > 0 {
		return false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return now.Sub(f.lastSeen) > ttl
}

func (f *Form) pushFrame(v float64) {
	f.streamsMu.Lock()
	defer f.streamsMu.Unlock()
	for ch := range f.streams {
		offerLatest(ch, v)
	}
}

// offerLatest sends v on ch, replacing a frame nobody picked up yet.
func offerLatest(ch chan float64, v float64) {
	select {
	case ch <- v:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- v:
	default:
	}
}

// Store holds the open forms.
type Store struct {
	slog *slog.Logger

	ttl      time.Duration
	duration time.Duration
	interval time.Duration

	mu    sync.RWMutex
	forms map[uuid.UUID]*Form
}

type Option func(*Store)

// WithTTL sets how long a form without a frame stream survives.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) { s.ttl = ttl }
}

// WithCountUp sets the duration and frame interval of the total count-up.
func WithCountUp(duration, interval time.Duration) Option {
	return func(s *Store) {
		s.duration = duration
		s.interval = interval
	}
}

func NewStore(slog *slog.Logger, opts ...Option) *Store {
	s := &Store{
		slog:     slog,
		ttl:      30 * time.Minute,
		duration: animate.DefaultDuration,
		interval: animate.DefaultInterval,
		forms:    make(map[uuid.UUID]*Form),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create opens a form with an empty draft.
func (s *Store) Create() *Form {
	f := &Form{
		ID:       uuid.New(),
		draft:    domain.Draft{HoursMode: domain.HoursPerWeek},
		total:    decimal.Zero,
		lastSeen: time.Now(),
		streams:  make(map[chan float64]struct{}),
	}
	f.counter = animate.New(s.duration, s.interval, f.pushFrame)

	s.mu.Lock()
	s.forms[f.ID] = f
	s.mu.Unlock()

	s.slog.Debug("form opened", "form", f.ID)
	return f
}

// Get looks up an open form and marks it as seen.
func (s *Store) Get(id uuid.UUID) (*Form, bool) {
	s.mu.RLock()
	f, ok := s.forms[id]
	s.mu.RUnlock()

	if ok {
		f.touch(time.Now())
	}
	return f, ok
}

// Delete discards a form and stops its count-up.
func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	f, ok := s.forms[id]
	delete(s.forms, id)
	s.mu.Unlock()

	if ok {
		f.counter.Stop()
		s.slog.Debug("form closed", "form", id)
	}
}

// Len is the number of open forms.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.forms)
}

// Sweep discards every form that has no frame stream and has been idle for
// longer than the TTL. It returns how many were discarded.
func (s *Store) Sweep(now time.Time) int {
	s.mu.RLock()
	var stale []uuid.UUID
	for id, f := range s.forms {
		if f.expired(now, s.ttl) {
			stale = append(stale, id)
		}
	}
	s.mu.RUnlock()

	for _, id := range stale {
		s.Delete(id)
	}
	return len(stale)
}

// Run sweeps the store until ctx is done.
func (s *Store) Run(ctx context.Context) {
	interval := s.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := s.Sweep(now); n > 0 {
				s.slog.Info("discarded idle forms", "count", n, "open", s.Len())
			}
		}
	}
}
