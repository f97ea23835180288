package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"cinebook-cli/cli"
	"cinebook-cli/service"
	"cinebook-cli/tui"
)

const appName = "cinebook-cli"

var (
	version = "dev"
	commit  = "none"
)

func printUsage(out *os.File) {
	fmt.Fprintf(out, "Usage: %s [command]\n\n", appName)
	fmt.Fprintln(out, "Without arguments an interactive seat picker starts.")
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  movies                                 list movies")
	fmt.Fprintln(out, "  theaters <movie_id>                    list theaters showing a movie")
	fmt.Fprintln(out, "  seats <movie_id> <theater_id>          list available seats")
	fmt.Fprintln(out, "  book <movie_id> <theater_id> a1 a2 ... book seats")
}

func printVersion() {
	fmt.Printf("%s %s", appName, version)
	if commit != "none" && commit != "" {
		fmt.Printf(" (%s)", commit)
	}
	fmt.Println()
}

// handleArgs reports whether the interactive TUI should start.
func handleArgs(args []string) bool {
	if len(args) == 0 {
		return true
	}

	switch args[0] {
	case "-h", "--help", "help":
		printUsage(os.Stdout)
		return false
	case "-v", "--version", "version":
		printVersion()
		return false
	}

	if err := cli.Run(service.NewCatalog(), os.Stdout, args); err != nil {
		if errors.Is(err, cli.ErrBookingFailed) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return false
}

func main() {
	if !handleArgs(os.Args[1:]) {
		return
	}

	if _, err := tea.NewProgram(tui.New(), tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
