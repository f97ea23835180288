package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"
)

const maxRecentBookings = 8

// RecentBooking is one entry of the user's local booking history. It exists
// for display only; seat occupancy itself is never persisted.
type RecentBooking struct {
	MovieTitle  string    `json:"movie_title"`
	TheaterName string    `json:"theater_name"`
	Seats       []string  `json:"seats"`
	BookedAt    time.Time `json:"booked_at"`
}

type bookingHistory struct {
	Bookings []RecentBooking `json:"bookings"`
}

// LoadRecentBookings returns the stored history, newest first. A missing
// file is not an error.
func LoadRecentBookings() ([]RecentBooking, error) {
	path, err := configPath("bookings.json")
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var history bookingHistory
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, errors.New("invalid booking history format")
	}
	return history.Bookings, nil
}

// RememberBooking prepends a booking to the history, keeping the newest
// entries up to a fixed cap.
func RememberBooking(booking RecentBooking) error {
	history, _ := LoadRecentBookings()

	next := []RecentBooking{booking}
	for _, existing := range history {
		next = append(next, existing)
		if len(next) >= maxRecentBookings {
			break
		}
	}
	return saveRecentBookings(next)
}

func saveRecentBookings(bookings []RecentBooking) error {
	path, err := configPath("bookings.json")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	history := bookingHistory{Bookings: bookings}
	payload, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

func configPath(name string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "cinebook-cli", name), nil
}
