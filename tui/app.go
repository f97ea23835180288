package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cinebook-cli/booking"
	"cinebook-cli/model"
	"cinebook-cli/service"
	"cinebook-cli/store"
)

type appState int

const (
	stateSelectMovie appState = iota
	stateSelectTheater
	stateSeatMap
	stateHistory
	stateError
)

// seatMapColumns is display layout only: the seat space is a flat a1..a20
// strip, drawn as rows of ten so it fits a terminal.
const seatMapColumns = 10

type appModel struct {
	catalog *service.Catalog

	state     appState
	lastState appState
	err       error

	width  int
	height int

	movie   model.Movie
	theater model.Theater
	showID  model.ShowID

	movieList   list.Model
	theaterList list.Model
	historyList list.Model

	mask            uint32
	cursor          int
	selected        map[int]bool
	showSeatNumbers bool

	statusMsg string
	statusOK  bool
}

type bookResultMsg struct {
	result model.BookingResult
	seats  []string
}

type historyMsg struct {
	bookings []store.RecentBooking
	err      error
}

type errMsg struct {
	err error
}

func New() tea.Model {
	catalog := service.NewCatalog()
	m := appModel{
		catalog:  catalog,
		state:    stateSelectMovie,
		selected: make(map[int]bool),
	}

	m.movieList = newList("Select Movie")
	m.theaterList = newList("Select Theater")
	m.historyList = newList("Recent Bookings")
	m.movieList.SetItems(buildMovieItems(catalog))
	m.showSeatNumbers = true

	return m
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		if m.handleFilterInput(msg) {
			return m, nil
		}
		m, cmd, handled := m.handleKey(msg)
		if handled {
			return m, cmd
		}

	case errMsg:
		m.err = msg.err
		m.lastState = m.state
		m.state = stateError
		return m, nil

	case bookResultMsg:
		if mask, ok := m.catalog.SeatMask(m.showID); ok {
			m.mask = mask
		}
		m.statusMsg = msg.result.Message
		m.statusOK = msg.result.Success
		if msg.result.Success {
			m.selected = make(map[int]bool)
		}
		return m, nil

	case historyMsg:
		if msg.err != nil {
			return m, errCmd(msg.err)
		}
		m.historyList.SetItems(buildHistoryItems(msg.bookings))
		m.lastState = m.state
		m.state = stateHistory
		return m, nil
	}

	var cmd tea.Cmd
	switch m.state {
	case stateSelectMovie:
		m.movieList, cmd = m.movieList.Update(msg)
	case stateSelectTheater:
		m.theaterList, cmd = m.theaterList.Update(msg)
	case stateHistory:
		m.historyList, cmd = m.historyList.Update(msg)
	}
	return m, cmd
}

func (m appModel) View() string {
	header := m.headerView()
	switch m.state {
	case stateSelectMovie:
		return header + "\n\n" + m.movieList.View()
	case stateSelectTheater:
		return header + "\n\n" + m.theaterList.View()
	case stateSeatMap:
		return header + "\n\n" + m.renderSeatMap()
	case stateHistory:
		return header + "\n\n" + m.historyList.View()
	case stateError:
		body := lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(m.err.Error())
		return header + "\n\n" + body + "\n\n" + hint("Press esc to go back or ctrl+c to quit.")
	default:
		return header
	}
}

func (m appModel) headerView() string {
	title := lipgloss.NewStyle().Bold(true).Render("Cinebook")
	sub := []string{}
	if m.movie.Title != "" {
		sub = append(sub, fmt.Sprintf("Movie: %s", m.movie.Title))
	}
	if m.theater.Name != "" {
		sub = append(sub, fmt.Sprintf("Theater: %s", m.theater.Name))
	}
	meta := strings.Join(sub, " • ")
	if meta != "" {
		meta = "\n" + lipgloss.NewStyle().Faint(true).Render(meta)
	}

	hints := "ctrl+c quit • esc back • type to filter • enter select • ctrl+h history"
	if m.state == stateSeatMap {
		hints = "ctrl+c quit • esc back • arrows move • space toggle seat • enter book • n toggle numbers"
	}
	if m.state == stateHistory {
		hints = "ctrl+c quit • esc back"
	}

	filterLine := ""
	if listPtr := m.activeList(); listPtr != nil {
		if filter := listPtr.FilterValue(); filter != "" {
			filterLine = "\n" + hint(fmt.Sprintf("Filter: %s", filter))
		}
	}
	return title + meta + filterLine + "\n" + hint(hints)
}

func (m appModel) handleKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit, true
	case "esc":
		if listPtr := m.activeList(); listPtr != nil {
			if listPtr.SettingFilter() || listPtr.IsFiltered() {
				listPtr.ResetFilter()
				return m, nil, true
			}
		}
		return m.goBack(), nil, true
	case "ctrl+h":
		if m.state == stateSelectMovie || m.state == stateSelectTheater {
			return m, loadHistoryCmd(), true
		}
	case "n":
		if m.state == stateSeatMap {
			m.showSeatNumbers = !m.showSeatNumbers
			return m, nil, true
		}
	case "left", "h":
		if m.state == stateSeatMap {
			m.moveCursor(-1)
			return m, nil, true
		}
	case "right", "l":
		if m.state == stateSeatMap {
			m.moveCursor(1)
			return m, nil, true
		}
	case "up", "k":
		if m.state == stateSeatMap {
			m.moveCursor(-seatMapColumns)
			return m, nil, true
		}
	case "down", "j":
		if m.state == stateSeatMap {
			m.moveCursor(seatMapColumns)
			return m, nil, true
		}
	case " ":
		if m.state == stateSeatMap {
			m.toggleSeat(m.cursor)
			return m, nil, true
		}
	}

	if msg.Type == tea.KeyEnter {
		switch m.state {
		case stateSelectMovie:
			item, ok := m.movieList.SelectedItem().(movieItem)
			if !ok {
				return m, nil, true
			}
			m.movie = item.movie
			m.theater = model.Theater{}
			m.theaterList.SetItems(buildTheaterItems(m.catalog, m.movie))
			m.theaterList.Select(0)
			m.state = stateSelectTheater
			return m, nil, true

		case stateSelectTheater:
			item, ok := m.theaterList.SelectedItem().(theaterItem)
			if !ok {
				return m, nil, true
			}
			showID, ok := m.catalog.FindShow(m.movie.ID, item.theater.ID)
			if !ok {
				return m, errCmd(fmt.Errorf("no show for %s at %s", m.movie.Title, item.theater.Name)), true
			}
			m.theater = item.theater
			m.showID = showID
			if mask, ok := m.catalog.SeatMask(showID); ok {
				m.mask = mask
			}
			m.cursor = 0
			m.selected = make(map[int]bool)
			m.statusMsg = ""
			m.state = stateSeatMap
			return m, nil, true

		case stateSeatMap:
			return m, m.bookCmd(m.selectedLabels()), true
		}
	}
	return m, nil, false
}

func (m appModel) goBack() appModel {
	switch m.state {
	case stateSelectTheater:
		m.state = stateSelectMovie
		m.theater = model.Theater{}
	case stateSeatMap:
		// Availability may have changed while the map was open.
		m.theaterList.SetItems(buildTheaterItems(m.catalog, m.movie))
		m.state = stateSelectTheater
		m.theater = model.Theater{}
		m.statusMsg = ""
	case stateHistory, stateError:
		m.state = m.lastState
	}
	return m
}

func (m *appModel) moveCursor(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= booking.SeatCount {
		return
	}
	m.cursor = next
}

// toggleSeat flips selection of a free seat; booked seats cannot be selected.
func (m *appModel) toggleSeat(index0 int) {
	if m.mask&(1<<uint(index0)) != 0 {
		return
	}
	if m.selected[index0] {
		delete(m.selected, index0)
	} else {
		m.selected[index0] = true
	}
}

// selectedLabels returns the selection in ascending seat order, so the
// booking request is deterministic.
func (m appModel) selectedLabels() []string {
	labels := make([]string, 0, len(m.selected))
	for i := 0; i < booking.SeatCount; i++ {
		if m.selected[i] {
			labels = append(labels, booking.SeatLabelFromIndex(i))
		}
	}
	return labels
}

func (m appModel) bookCmd(seats []string) tea.Cmd {
	catalog := m.catalog
	showID := m.showID
	movie := m.movie
	theater := m.theater
	return func() tea.Msg {
		result := catalog.BookSeats(showID, seats)
		if result.Success {
			_ = store.RememberBooking(store.RecentBooking{
				MovieTitle:  movie.Title,
				TheaterName: theater.Name,
				Seats:       seats,
				BookedAt:    time.Now(),
			})
		}
		return bookResultMsg{result: result, seats: seats}
	}
}

func loadHistoryCmd() tea.Cmd {
	return func() tea.Msg {
		bookings, err := store.LoadRecentBookings()
		return historyMsg{bookings: bookings, err: err}
	}
}

func errCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return errMsg{err: err}
	}
}

func (m *appModel) handleFilterInput(msg tea.KeyMsg) bool {
	listPtr := m.activeList()
	if listPtr == nil {
		return false
	}
	if !listPtr.FilteringEnabled() {
		return false
	}
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return false
		}
		m.appendFilter(listPtr, string(msg.Runes))
		return true
	case tea.KeySpace:
		m.appendFilter(listPtr, " ")
		return true
	case tea.KeyBackspace, tea.KeyDelete:
		if listPtr.FilterValue() == "" {
			return false
		}
		m.popFilter(listPtr)
		return true
	default:
		return false
	}
}

func (m *appModel) appendFilter(listPtr *list.Model, value string) {
	if value == "" {
		return
	}
	current := listPtr.FilterValue()
	listPtr.SetFilterText(current + value)
}

func (m *appModel) popFilter(listPtr *list.Model) {
	value := listPtr.FilterValue()
	if value == "" {
		return
	}
	value = trimLastRune(value)
	if value == "" {
		listPtr.ResetFilter()
		return
	}
	listPtr.SetFilterText(value)
}

func trimLastRune(value string) string {
	runes := []rune(value)
	if len(runes) <= 1 {
		return ""
	}
	return string(runes[:len(runes)-1])
}

func (m *appModel) activeList() *list.Model {
	switch m.state {
	case stateSelectMovie:
		return &m.movieList
	case stateSelectTheater:
		return &m.theaterList
	case stateHistory:
		return &m.historyList
	default:
		return nil
	}
}

func (m *appModel) resizeLists() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := m.height - 6
	if h < 6 {
		h = 6
	}
	m.movieList.SetSize(m.width, h)
	m.theaterList.SetSize(m.width, h)
	m.historyList.SetSize(m.width, h)
}

func newList(title string) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = title
	l.Filter = caseInsensitiveFilter
	l.SetFilteringEnabled(true)
	l.SetShowFilter(true)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

func hint(text string) string {
	return lipgloss.NewStyle().Faint(true).Render(text)
}

func caseInsensitiveFilter(term string, targets []string) []list.Rank {
	term = strings.ToLower(term)
	lower := make([]string, len(targets))
	for i, t := range targets {
		lower[i] = strings.ToLower(t)
	}
	return list.DefaultFilter(term, lower)
}

type movieItem struct {
	movie    model.Movie
	theaters int
}

func (i movieItem) Title() string { return i.movie.Title }

func (i movieItem) Description() string {
	if i.theaters == 1 {
		return "1 theater"
	}
	return fmt.Sprintf("%d theaters", i.theaters)
}

func (i movieItem) FilterValue() string { return strings.ToLower(i.movie.Title) }

type theaterItem struct {
	theater   model.Theater
	available int
}

func (i theaterItem) Title() string { return i.theater.Name }

func (i theaterItem) Description() string {
	return fmt.Sprintf("%d of %d seats available", i.available, booking.SeatCount)
}

func (i theaterItem) FilterValue() string { return strings.ToLower(i.theater.Name) }

type historyItem struct {
	booking store.RecentBooking
}

func (i historyItem) Title() string {
	return fmt.Sprintf("%s • %s", i.booking.MovieTitle, i.booking.TheaterName)
}

func (i historyItem) Description() string {
	when := ""
	if !i.booking.BookedAt.IsZero() {
		when = " • " + i.booking.BookedAt.Format("2006-01-02 15:04")
	}
	return strings.Join(i.booking.Seats, ", ") + when
}

func (i historyItem) FilterValue() string {
	return strings.ToLower(i.booking.MovieTitle + " " + i.booking.TheaterName)
}

func buildMovieItems(catalog *service.Catalog) []list.Item {
	movies := catalog.Movies()
	items := make([]list.Item, 0, len(movies))
	for _, movie := range movies {
		items = append(items, movieItem{
			movie:    movie,
			theaters: len(catalog.TheatersForMovie(movie.ID)),
		})
	}
	return items
}

func buildTheaterItems(catalog *service.Catalog, movie model.Movie) []list.Item {
	theaters := catalog.TheatersForMovie(movie.ID)
	items := make([]list.Item, 0, len(theaters))
	for _, theater := range theaters {
		available := 0
		if showID, ok := catalog.FindShow(movie.ID, theater.ID); ok {
			available = len(catalog.AvailableSeats(showID))
		}
		items = append(items, theaterItem{theater: theater, available: available})
	}
	return items
}

func buildHistoryItems(bookings []store.RecentBooking) []list.Item {
	items := make([]list.Item, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, historyItem{booking: b})
	}
	return items
}
