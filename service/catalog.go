package service

import (
	"sort"

	"cinebook-cli/booking"
	"cinebook-cli/model"
)

// Catalog owns the movie/theater/show dataset and the per-show reservation
// registry. The dataset is fixed at construction; only seat state changes
// afterwards, and only through the registry's atomic operations.
type Catalog struct {
	movies   []model.Movie
	theaters []model.Theater
	shows    []model.Show
	registry *booking.Registry
}

// NewCatalog builds the sample dataset and one reservation entry per show.
func NewCatalog() *Catalog {
	movies := []model.Movie{
		{ID: 1, Title: "Inception"},
		{ID: 2, Title: "Interstellar"},
		{ID: 3, Title: "The Matrix"},
	}
	theaters := []model.Theater{
		{ID: 1, Name: "Central Cinema"},
		{ID: 2, Name: "Mall Theater"},
	}
	shows := []model.Show{
		{ID: 1, MovieID: 1, TheaterID: 1},
		{ID: 2, MovieID: 1, TheaterID: 2},
		{ID: 3, MovieID: 2, TheaterID: 1},
		{ID: 4, MovieID: 3, TheaterID: 2},
	}

	showIDs := make([]model.ShowID, 0, len(shows))
	for _, show := range shows {
		showIDs = append(showIDs, show.ID)
	}

	return &Catalog{
		movies:   movies,
		theaters: theaters,
		shows:    shows,
		registry: booking.NewRegistry(showIDs),
	}
}

// Movies returns every movie in the catalog.
func (c *Catalog) Movies() []model.Movie {
	out := make([]model.Movie, len(c.movies))
	copy(out, c.movies)
	return out
}

// TheatersForMovie returns the theaters with at least one show for the given
// movie, ascending by theater id so output stays deterministic.
func (c *Catalog) TheatersForMovie(movieID model.MovieID) []model.Theater {
	showing := make(map[model.TheaterID]bool)
	for _, show := range c.shows {
		if show.MovieID == movieID {
			showing[show.TheaterID] = true
		}
	}

	var result []model.Theater
	for _, theater := range c.theaters {
		if showing[theater.ID] {
			result = append(result, theater)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// FindShow resolves a (movie, theater) pair to its show id.
func (c *Catalog) FindShow(movieID model.MovieID, theaterID model.TheaterID) (model.ShowID, bool) {
	for _, show := range c.shows {
		if show.MovieID == movieID && show.TheaterID == theaterID {
			return show.ID, true
		}
	}
	return 0, false
}

// AvailableSeats lists free seat labels for a show, empty for unknown ids.
func (c *Catalog) AvailableSeats(showID model.ShowID) []string {
	return c.registry.Available(showID)
}

// SeatMask returns the raw occupancy mask for a show.
func (c *Catalog) SeatMask(showID model.ShowID) (uint32, bool) {
	state, ok := c.registry.Lookup(showID)
	if !ok {
		return 0, false
	}
	return state.Snapshot(), true
}

// BookSeats books seats on a show, all-or-nothing. Failure messages come
// straight from the reservation errors and are safe to show the user.
func (c *Catalog) BookSeats(showID model.ShowID, labels []string) model.BookingResult {
	if err := c.registry.Reserve(showID, labels); err != nil {
		return model.BookingResult{Success: false, Message: err.Error()}
	}
	return model.BookingResult{Success: true, Message: "Booked successfully"}
}
