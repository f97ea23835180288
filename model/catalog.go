package model

type MovieID = int

type TheaterID = int

type ShowID = int

type Movie struct {
	ID    MovieID
	Title string
}

type Theater struct {
	ID   TheaterID
	Name string
}

// Show is one movie playing at one theater.
type Show struct {
	ID        ShowID
	MovieID   MovieID
	TheaterID TheaterID
}

// BookingResult carries the outcome of a booking attempt. Message is
// user-facing and rendered verbatim by both frontends.
type BookingResult struct {
	Success bool
	Message string
}
