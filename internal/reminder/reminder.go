// Package reminder runs the once-daily notification check. A single
// background loop wakes every minute and fires at most one desktop
// notification per calendar day, at or after the configured wall-clock time.
package reminder

import (
	"fmt"
	"log"
	"sync"
	"time"

	"fencing/internal/notify"
)

// Tag groups the daily reminder's notifications so supporting platforms
// replace a stale one instead of stacking.
const Tag = "daily-reminder"

const (
	defaultTitle = "Fencing"
	defaultBody  = "Time for your daily fencing entry. Guard your heart."
)

// Config is the user-facing reminder configuration.
type Config struct {
	Enabled bool
	Time    string // HH:MM wall-clock time
}

// StateStore is the durable cell recording the day the reminder last fired.
// Only the scheduler writes it; it is independent of the main data document.
type StateStore interface {
	LastNotifiedDate() (string, error)
	SetLastNotifiedDate(date string) error
}

// loop is the handle for one running check loop. Stopping closes stop and
// waits on done, so a replaced loop is fully gone before a new one starts.
type loop struct {
	stop chan struct{}
	done chan struct{}
}

// Scheduler owns the reminder loop. Reconfigure always releases the previous
// loop before starting a new one, so at most one loop runs at any time.
type Scheduler struct {
	state    StateStore
	notifier notify.Notifier
	logger   *log.Logger

	mu   sync.Mutex
	cfg  Config
	loop *loop
	now  func() time.Time
	tick time.Duration
}

// New creates a stopped scheduler. Call Reconfigure to start it.
func New(state StateStore, notifier notify.Notifier, logger *log.Logger) *Scheduler {
	if logger == nil {
		logger = log.Default()
	}
	return &Scheduler{
		state:    state,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
		tick:     time.Minute,
	}
}

// SetNowFunc overrides the scheduler clock. Passing nil resets it to
// time.Now.
func (s *Scheduler) SetNowFunc(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if now == nil {
		s.now = time.Now
		return
	}
	s.now = now
}

// SetTickInterval overrides the recheck period. Intended for tests; the
// default is one minute.
func (s *Scheduler) SetTickInterval(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d > 0 {
		s.tick = d
	}
}

// Config returns the current configuration.
func (s *Scheduler) Config() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// Running reports whether a check loop is active.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loop != nil
}

// Reconfigure applies a new configuration. The previous loop, if any, is
// stopped before anything else happens; when the new configuration is
// enabled, a check runs immediately and a fresh loop takes over. Called on
// startup and on every settings change.
func (s *Scheduler) Reconfigure(cfg Config) error {
	if cfg.Enabled {
		if _, _, err := parseClock(cfg.Time); err != nil {
			return err
		}
	}

	s.mu.Lock()
	old := s.loop
	s.loop = nil
	s.cfg = cfg

	var l *loop
	if cfg.Enabled {
		l = &loop{stop: make(chan struct{}), done: make(chan struct{})}
		s.loop = l
	}
	tick := s.tick
	s.mu.Unlock()

	// Release the old loop without holding mu: its goroutine may be in the
	// middle of a check that needs the lock to finish.
	releaseLoop(old)

	if l == nil {
		return nil
	}

	// Fire-or-skip right away so a time already in the past today is not
	// silently deferred to tomorrow.
	s.CheckAndNotify()

	go s.run(l, tick)
	return nil
}

// Stop tears down the active loop, if any. Safe to call repeatedly.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	old := s.loop
	s.loop = nil
	s.mu.Unlock()
	releaseLoop(old)
}

// releaseLoop signals a loop to stop and waits for its goroutine to exit.
// Must be called without mu held so an in-flight check can still take the
// lock and drain.
func releaseLoop(l *loop) {
	if l == nil {
		return
	}
	close(l.stop)
	<-l.done
}

func (s *Scheduler) run(l *loop, tick time.Duration) {
	defer close(l.done)

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.CheckAndNotify()
		case <-l.stop:
			return
		}
	}
}

// CheckAndNotify runs one reminder check: if reminders are enabled, today's
// target time has passed, and nothing fired yet today, it dispatches the
// notification and durably marks today as notified. A dispatch failure is
// logged but still marks the day, so a broken notifier cannot turn into a
// notification storm.
func (s *Scheduler) CheckAndNotify() {
	s.mu.Lock()
	cfg := s.cfg
	now := s.now()
	s.mu.Unlock()

	if !cfg.Enabled {
		return
	}

	hour, min, err := parseClock(cfg.Time)
	if err != nil {
		s.logger.Printf("reminder: %v", err)
		return
	}

	today := now.Format("2006-01-02")

	last, err := s.state.LastNotifiedDate()
	if err != nil {
		s.logger.Printf("reminder: read last notified date: %v", err)
		return
	}
	if last == today {
		return
	}

	target := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
	if now.Before(target) {
		return
	}

	if err := s.notifier.Send(notify.Notification{
		Title:              defaultTitle,
		Body:               defaultBody,
		Tag:                Tag,
		RequireInteraction: true,
	}); err != nil {
		s.logger.Printf("reminder: dispatch failed: %v", err)
	}

	if err := s.state.SetLastNotifiedDate(today); err != nil {
		s.logger.Printf("reminder: persist last notified date: %v", err)
	}
}

func parseClock(t string) (hour, min int, err error) {
	parsed, err := time.Parse("15:04", t)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid reminder time %q: expected HH:MM", t)
	}
	return parsed.Hour(), parsed.Minute(), nil
}
