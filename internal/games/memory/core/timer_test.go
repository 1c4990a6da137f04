package core

import (
	"slices"
	"testing"
	"time"
)

func TestSchedulerOrder(t *testing.T) {
	s := NewScheduler()
	var order []string

	s.After(2*time.Second, func() { order = append(order, "b") }, nil)
	s.After(time.Second, func() { order = append(order, "a1") }, nil)
	s.After(time.Second, func() { order = append(order, "a2") }, nil)

	s.Advance(500 * time.Millisecond)
	if len(order) != 0 {
		t.Fatalf("nothing should fire yet, got %v", order)
	}

	s.Advance(2 * time.Second)
	if !slices.Equal(order, []string{"a1", "a2", "b"}) {
		t.Errorf("fire order = %v", order)
	}
	if s.Pending() != 0 {
		t.Errorf("pending = %d, want 0", s.Pending())
	}
	if s.Now() != 2500*time.Millisecond {
		t.Errorf("now = %v", s.Now())
	}
}

func TestSchedulerValidCheckedAtFireTime(t *testing.T) {
	s := NewScheduler()
	ok := true
	fired := false

	s.After(time.Second, func() { fired = true }, func() bool { return ok })
	ok = false
	s.Advance(time.Second)

	if fired {
		t.Error("timer fired although its predicate was false")
	}
	if s.Pending() != 0 {
		t.Error("skipped timer should still be consumed")
	}
}

func TestSchedulerNestedTimers(t *testing.T) {
	s := NewScheduler()
	var order []string

	s.After(time.Second, func() {
		order = append(order, "outer")
		s.After(0, func() { order = append(order, "inner") }, nil)
		s.After(time.Second, func() { order = append(order, "later") }, nil)
	}, nil)

	s.Advance(time.Second)
	if !slices.Equal(order, []string{"outer", "inner"}) {
		t.Fatalf("order after first advance = %v", order)
	}

	s.Advance(time.Second)
	if !slices.Equal(order, []string{"outer", "inner", "later"}) {
		t.Errorf("order after second advance = %v", order)
	}
}

func TestSchedulerClockAtFireTime(t *testing.T) {
	s := NewScheduler()
	var at time.Duration

	s.After(300*time.Millisecond, func() { at = s.Now() }, nil)
	s.Advance(time.Second)

	if at != 300*time.Millisecond {
		t.Errorf("callback saw now = %v, want 300ms", at)
	}
}
