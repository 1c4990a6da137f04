package core

import "time"

// Scheduler is a queue of deferred callbacks driven by the game loop.
// There is no cancellation: each timer carries a predicate that is
// evaluated when it fires, and the callback is skipped if it returns false.
type Scheduler struct {
	now    time.Duration
	seq    uint64
	timers []*timer
}

type timer struct {
	due   time.Duration
	seq   uint64
	fn    func()
	valid func() bool
}

// NewScheduler creates an empty scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the scheduler clock (sum of all Advance calls).
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of timers that have not fired yet.
func (s *Scheduler) Pending() int {
	return len(s.timers)
}

// After schedules fn to run once d has elapsed. valid may be nil.
func (s *Scheduler) After(d time.Duration, fn func(), valid func() bool) {
	if d < 0 {
		d = 0
	}
	s.seq++
	s.timers = append(s.timers, &timer{
		due:   s.now + d,
		seq:   s.seq,
		fn:    fn,
		valid: valid,
	})
}

// Advance moves the clock forward by dt and fires every timer that became
// due, earliest first and in scheduling order for equal due times.
// Timers scheduled by a callback fire in the same call if they fall due.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt

	for {
		next := s.popDue(target)
		if next == nil {
			break
		}
		if next.due > s.now {
			s.now = next.due
		}
		if next.valid == nil || next.valid() {
			next.fn()
		}
	}

	s.now = target
}

func (s *Scheduler) popDue(target time.Duration) *timer {
	best := -1
	for i, t := range s.timers {
		if t.due > target {
			continue
		}
		if best < 0 || t.due < s.timers[best].due ||
			(t.due == s.timers[best].due && t.seq < s.timers[best].seq) {
			best = i
		}
	}
	if best < 0 {
		return nil
	}

	t := s.timers[best]
	s.timers = append(s.timers[:best], s.timers[best+1:]...)
	return t
}
