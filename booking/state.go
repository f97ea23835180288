package booking

import "sync/atomic"

// ShowState tracks seat occupancy for a single show as an atomic bitmask.
// Bit i set means seat i is booked; bits at or above SeatCount stay zero.
// Bits are only ever set, never cleared, so booking is monotonic.
//
// All mutation goes through Reserve's compare-and-swap loop; there is no
// lock and no cross-show shared state.
type ShowState struct {
	booked atomic.Uint32
}

func NewShowState() *ShowState {
	return &ShowState{}
}

// Snapshot returns the current seat mask as a single atomic load.
func (s *ShowState) Snapshot() uint32 {
	return s.booked.Load()
}

// Available lists the labels of all free seats in ascending seat order.
// The result is stable across calls unless a booking lands in between.
func (s *ShowState) Available() []string {
	mask := s.booked.Load()
	out := make([]string, 0, SeatCount)
	for i := 0; i < SeatCount; i++ {
		if mask&(1<<uint(i)) == 0 {
			out = append(out, SeatLabelFromIndex(i))
		}
	}
	return out
}

// Reserve books every requested seat or none of them.
//
// Validation (empty request, label parsing, in-request duplicates) happens
// before the mask is read, so an invalid request never observes or touches
// shared state. The commit is a CAS loop: an overlap with already-booked
// seats fails immediately without retrying, while a CAS lost to a concurrent
// booking reloads the mask and decides the overlap again against the fresh
// value. Each lost CAS means another caller made progress, and only SeatCount
// free-to-booked transitions exist, so the loop always terminates.
func (s *ShowState) Reserve(labels []string) error {
	if len(labels) == 0 {
		return ErrNoSeats
	}

	req, err := maskFromLabels(labels)
	if err != nil {
		return err
	}

	current := s.booked.Load()
	for {
		if current&req != 0 {
			return ErrSeatsTaken
		}
		if s.booked.CompareAndSwap(current, current|req) {
			return nil
		}
		current = s.booked.Load()
	}
}

// maskFromLabels validates a request and folds it into a bitmask. It checks
// label format and in-request duplicates only; it never looks at live state.
func maskFromLabels(labels []string) (uint32, error) {
	var mask uint32
	for _, label := range labels {
		index0, ok := ParseSeatLabel(label)
		if !ok {
			return 0, &InvalidLabelError{Label: label}
		}
		bit := uint32(1) << uint(index0)
		if mask&bit != 0 {
			return 0, &DuplicateLabelError{Label: label}
		}
		mask |= bit
	}
	return mask, nil
}
