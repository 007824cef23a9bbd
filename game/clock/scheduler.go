// Package clock provides the periodic scheduling facility the game loop
// ticks on. Callbacks always run on the goroutine that drives the scheduler,
// so game state needs no locking.
package clock

import (
	"sort"
	"time"
)

// Scheduler starts periodic callbacks.
type Scheduler interface {
	// Every calls fn once per period, first one period from now, until the
	// returned handle is cancelled.
	Every(period time.Duration, fn func()) Handle
}

// Handle controls one periodic schedule.
type Handle interface {
	Cancel()
	Active() bool
}

// PollScheduler fires due callbacks from Poll, which the owning frame or
// event loop calls regularly.
type PollScheduler struct {
	Now func() time.Time

	entries []*entry
	seq     uint64
}

type entry struct {
	period time.Duration
	next   time.Time
	fn     func()
	seq    uint64
	active bool
}

func (e *entry) Cancel()      { e.active = false }
func (e *entry) Active() bool { return e.active }

func NewPollScheduler() *PollScheduler {
	return &PollScheduler{Now: time.Now}
}

func (s *PollScheduler) Every(period time.Duration, fn func()) Handle {
	s.seq++
	e := &entry{
		period: period,
		next:   s.Now().Add(period),
		fn:     fn,
		seq:    s.seq,
		active: true,
	}
	s.entries = append(s.entries, e)
	return e
}

// Poll runs every callback due at or before now, oldest deadline first.
// A schedule that fell several periods behind fires once and is re-armed
// from now. Returns the number of callbacks run.
func (s *PollScheduler) Poll(now time.Time) int {
	s.prune()
	due := make([]*entry, 0, len(s.entries))
	for _, e := range s.entries {
		if !e.next.After(now) {
			due = append(due, e)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].next.Equal(due[j].next) {
			return due[i].seq < due[j].seq
		}
		return due[i].next.Before(due[j].next)
	})

	fired := 0
	for _, e := range due {
		// an earlier callback may have cancelled this one
		if !e.active {
			continue
		}
		e.next = e.next.Add(e.period)
		if !e.next.After(now) {
			e.next = now.Add(e.period)
		}
		e.fn()
		fired++
	}
	return fired
}

// Pending returns the number of active schedules.
func (s *PollScheduler) Pending() int {
	s.prune()
	return len(s.entries)
}

// NextDeadline returns the earliest pending deadline.
func (s *PollScheduler) NextDeadline() (time.Time, bool) {
	s.prune()
	var next time.Time
	for i, e := range s.entries {
		if i == 0 || e.next.Before(next) {
			next = e.next
		}
	}
	return next, len(s.entries) > 0
}

func (s *PollScheduler) prune() {
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.active {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(s.entries); i++ {
		s.entries[i] = nil
	}
	s.entries = kept
}
