package store

import (
	"testing"
	"time"
)

func setTestConfigDir(t *testing.T) {
	t.Helper()
	root := t.TempDir()
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", root)
}

func TestRememberBooking_RoundTrip(t *testing.T) {
	setTestConfigDir(t)

	history, err := LoadRecentBookings()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("expected empty history, got %+v", history)
	}

	first := RecentBooking{
		MovieTitle:  "Inception",
		TheaterName: "Central Cinema",
		Seats:       []string{"a1", "a2"},
		BookedAt:    time.Now(),
	}
	if err := RememberBooking(first); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	second := RecentBooking{
		MovieTitle:  "The Matrix",
		TheaterName: "Mall Theater",
		Seats:       []string{"a20"},
		BookedAt:    time.Now(),
	}
	if err := RememberBooking(second); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	history, err = LoadRecentBookings()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(history))
	}
	if history[0].MovieTitle != "The Matrix" {
		t.Fatalf("expected newest entry first, got %+v", history[0])
	}
	if len(history[1].Seats) != 2 || history[1].Seats[0] != "a1" {
		t.Fatalf("unexpected seats on older entry: %+v", history[1])
	}
}

func TestRememberBooking_CapsHistory(t *testing.T) {
	setTestConfigDir(t)

	for i := 0; i < maxRecentBookings+3; i++ {
		booking := RecentBooking{
			MovieTitle:  "Inception",
			TheaterName: "Central Cinema",
			Seats:       []string{"a1"},
			BookedAt:    time.Now(),
		}
		if err := RememberBooking(booking); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	}

	history, err := LoadRecentBookings()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(history) != maxRecentBookings {
		t.Fatalf("expected history capped at %d, got %d", maxRecentBookings, len(history))
	}
}
