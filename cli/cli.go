// Package cli implements the one-shot command mode: a scriptable counterpart
// to the interactive TUI, printing plain tables instead of taking over the
// terminal.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"cinebook-cli/service"
)

const usage = `Commands:
  movies
  theaters <movie_id>
  seats <movie_id> <theater_id>
  book <movie_id> <theater_id> a1 a2 ...`

// ErrBookingFailed signals a refused booking so scripted callers can exit
// non-zero. The FAIL line has already been written to out when Run returns
// this error.
var ErrBookingFailed = errors.New("booking failed")

// Run executes a single command against the catalog and writes the result to
// out. It returns an error for unknown commands or malformed arguments, and
// ErrBookingFailed for a booking the reservation state refused.
func Run(catalog *service.Catalog, out io.Writer, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing command\n%s", usage)
	}

	switch args[0] {
	case "movies":
		return runMovies(catalog, out)
	case "theaters":
		return runTheaters(catalog, out, args[1:])
	case "seats":
		return runSeats(catalog, out, args[1:])
	case "book":
		return runBook(catalog, out, args[1:])
	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}
}

func runMovies(catalog *service.Catalog, out io.Writer) error {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"ID", "Title"})
	for _, movie := range catalog.Movies() {
		t.AppendRow(table.Row{movie.ID, movie.Title})
	}
	t.Render()
	return nil
}

func runTheaters(catalog *service.Catalog, out io.Writer, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: theaters <movie_id>")
	}
	movieID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid movie id %q", args[0])
	}

	theaters := catalog.TheatersForMovie(movieID)
	if len(theaters) == 0 {
		fmt.Fprintf(out, "No theaters found for movie_id=%d\n", movieID)
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"ID", "Theater"})
	for _, theater := range theaters {
		t.AppendRow(table.Row{theater.ID, theater.Name})
	}
	t.Render()
	return nil
}

func runSeats(catalog *service.Catalog, out io.Writer, args []string) error {
	showID, ok, err := resolveShow(catalog, "seats", args)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(out, "No show for that movie+theater")
		return nil
	}

	seats := catalog.AvailableSeats(showID)
	fmt.Fprintf(out, "Available seats (%d): %s\n", len(seats), strings.Join(seats, ", "))
	return nil
}

func runBook(catalog *service.Catalog, out io.Writer, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: book <movie_id> <theater_id> a1 a2 ...")
	}
	showID, ok, err := resolveShow(catalog, "book", args[:2])
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(out, "No show for that movie+theater")
		return nil
	}

	result := catalog.BookSeats(showID, args[2:])
	if !result.Success {
		fmt.Fprintf(out, "FAIL: %s\n", result.Message)
		return ErrBookingFailed
	}
	fmt.Fprintf(out, "OK: %s\n", result.Message)
	return nil
}

// resolveShow parses a movie and theater id pair and maps it to a show id.
// A false ok with nil error means the ids are well-formed but the pair has
// no show.
func resolveShow(catalog *service.Catalog, cmd string, args []string) (int, bool, error) {
	if len(args) != 2 {
		return 0, false, fmt.Errorf("usage: %s <movie_id> <theater_id>", cmd)
	}
	movieID, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, false, fmt.Errorf("invalid movie id %q", args[0])
	}
	theaterID, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, false, fmt.Errorf("invalid theater id %q", args[1])
	}

	showID, ok := catalog.FindShow(movieID, theaterID)
	return showID, ok, nil
}
