package booking

import (
	"errors"
	"sync"
	"testing"
)

func contains(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}

func TestShowState_FreshStateAllSeatsAvailable(t *testing.T) {
	state := NewShowState()

	if mask := state.Snapshot(); mask != 0 {
		t.Fatalf("expected empty mask, got %#x", mask)
	}

	seats := state.Available()
	if len(seats) != SeatCount {
		t.Fatalf("expected %d available seats, got %d", SeatCount, len(seats))
	}
	if !contains(seats, "a1") || !contains(seats, "a20") {
		t.Fatalf("expected a1 and a20 available, got %v", seats)
	}
}

func TestShowState_ReserveMarksSeatsUnavailable(t *testing.T) {
	state := NewShowState()

	if err := state.Reserve([]string{"a1", "a2", "a3"}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	seats := state.Available()
	if contains(seats, "a1") || contains(seats, "a2") || contains(seats, "a3") {
		t.Fatalf("expected a1..a3 booked, got %v", seats)
	}
	if !contains(seats, "a4") {
		t.Fatalf("expected a4 still available, got %v", seats)
	}
	if len(seats) != SeatCount-3 {
		t.Fatalf("expected %d available seats, got %d", SeatCount-3, len(seats))
	}
}

func TestShowState_RejectEmptyRequest(t *testing.T) {
	state := NewShowState()
	if err := state.Reserve(nil); !errors.Is(err, ErrNoSeats) {
		t.Fatalf("expected ErrNoSeats, got %v", err)
	}
	if err := state.Reserve([]string{}); !errors.Is(err, ErrNoSeats) {
		t.Fatalf("expected ErrNoSeats, got %v", err)
	}
}

func TestShowState_RejectInvalidLabelWithoutSideEffects(t *testing.T) {
	state := NewShowState()
	before := state.Snapshot()

	for _, label := range []string{"a0", "b1", "a1x"} {
		err := state.Reserve([]string{label})
		var invalid *InvalidLabelError
		if !errors.As(err, &invalid) {
			t.Fatalf("expected InvalidLabelError for %q, got %v", label, err)
		}
		if invalid.Label != label {
			t.Fatalf("expected error to name %q, got %q", label, invalid.Label)
		}
	}

	if after := state.Snapshot(); after != before {
		t.Fatalf("mask changed by invalid requests: %#x -> %#x", before, after)
	}
}

func TestShowState_RejectDuplicateLabelWithoutSideEffects(t *testing.T) {
	state := NewShowState()
	before := state.Snapshot()

	err := state.Reserve([]string{"a1", "a1"})
	var dup *DuplicateLabelError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateLabelError, got %v", err)
	}
	if dup.Label != "a1" {
		t.Fatalf("expected duplicate a1, got %q", dup.Label)
	}

	// Case variants decode to the same index.
	if err := state.Reserve([]string{"a2", "A2"}); !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateLabelError for case variants, got %v", err)
	}

	if after := state.Snapshot(); after != before {
		t.Fatalf("mask changed by duplicate requests: %#x -> %#x", before, after)
	}
}

func TestShowState_AllOrNothing(t *testing.T) {
	state := NewShowState()

	if err := state.Reserve([]string{"a1"}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	// a1 is booked, a2 is free: the whole request must fail and a2 stay free.
	if err := state.Reserve([]string{"a1", "a2"}); !errors.Is(err, ErrSeatsTaken) {
		t.Fatalf("expected ErrSeatsTaken, got %v", err)
	}

	seats := state.Available()
	if contains(seats, "a1") {
		t.Fatalf("expected a1 booked, got %v", seats)
	}
	if !contains(seats, "a2") {
		t.Fatalf("expected a2 still available, got %v", seats)
	}
}

func TestShowState_CannotBookSameSeatTwice(t *testing.T) {
	state := NewShowState()

	if err := state.Reserve([]string{"a10"}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := state.Reserve([]string{"a10"}); !errors.Is(err, ErrSeatsTaken) {
		t.Fatalf("expected ErrSeatsTaken, got %v", err)
	}
}

func TestShowState_OnlyOneWinnerForContestedSeat(t *testing.T) {
	state := NewShowState()

	const callers = 16
	start := make(chan struct{})
	var wg sync.WaitGroup
	results := make(chan error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			results <- state.Reserve([]string{"a1"})
		}()
	}

	close(start)
	wg.Wait()
	close(results)

	successes := 0
	for err := range results {
		if err == nil {
			successes++
		} else if !errors.Is(err, ErrSeatsTaken) {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if successes != 1 {
		t.Fatalf("expected exactly one success, got %d", successes)
	}
	if mask := state.Snapshot(); mask != 1 {
		t.Fatalf("expected only seat a1 booked, mask %#x", mask)
	}
}

func TestShowState_DisjointConcurrentBookingsAllSucceed(t *testing.T) {
	state := NewShowState()

	const callers = 16
	start := make(chan struct{})
	var wg sync.WaitGroup
	results := make(chan error, callers)

	for i := 0; i < callers; i++ {
		label := SeatLabelFromIndex(i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			results <- state.Reserve([]string{label})
		}()
	}

	close(start)
	wg.Wait()
	close(results)

	for err := range results {
		if err != nil {
			t.Fatalf("expected every disjoint booking to succeed, got %v", err)
		}
	}

	want := uint32(1<<callers) - 1
	if mask := state.Snapshot(); mask != want {
		t.Fatalf("expected mask %#x, got %#x", want, mask)
	}
}
