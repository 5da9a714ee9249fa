// Package browse is the terminal client: a query box, a paginated result
// grid, and a detail overlay, backed by either a direct catalog service or a
// running proxy.
package browse

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/showscope/showscope/pkg/catalog"
	"github.com/showscope/showscope/pkg/omdb"
	"github.com/showscope/showscope/pkg/pagination"
)

// pageSize is the number of cards per page (a 3x3 grid).
const pageSize = 9

// User-facing messages. Raw errors never reach the view.
const (
	msgEmptyQuery  = "Enter a search term."
	msgNoResults   = "No series found."
	msgTimeout     = "The request took too long to respond. Try again."
	msgGeneric     = "Something went wrong while searching. Try again."
	msgDetailError = "Couldn't load details for this show."
)

// Searcher is the result source the UI talks to. Both catalog.Service
// (direct OMDb access) and catalog.ProxyClient satisfy it.
type Searcher interface {
	Search(ctx context.Context, query string) (*catalog.SearchResult, error)
	Details(ctx context.Context, id string) (*catalog.Show, error)
}

type phase int

const (
	phaseIdle phase = iota
	phaseLoading
	phaseResults
	phaseError
)

// Model is the view-state machine. Exactly one of the idle prompt, the
// loading spinner, the error banner, or the results grid is visible at a
// time; the detail overlay only exists on top of results.
type Model struct {
	searcher Searcher

	input   textinput.Model
	spinner spinner.Model
	theme   Theme
	styles  Styles

	phase    phase
	query    string
	shows    []catalog.Show
	page     pagination.State
	cursor   int // selection within the current page
	excluded int
	errMsg   string

	// searchToken/detailToken identify the latest accepted fetch of each
	// kind; responses carrying an older token are discarded on arrival.
	searchToken int
	detailToken int

	detailOpen    bool
	detailLoading bool
	detail        *catalog.Show

	width  int
	height int
}

// New creates the browse model with the input focused on an empty prompt.
func New(searcher Searcher, theme Theme) Model {
	ti := textinput.New()
	ti.Placeholder = "Search for a series..."
	ti.CharLimit = 100
	ti.Width = 44
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	styles := newStyles(theme)
	sp.Style = styles.Spinner

	return Model{
		searcher: searcher,
		input:    ti,
		spinner:  sp,
		theme:    theme,
		styles:   styles,
		phase:    phaseIdle,
		page:     pagination.New(pageSize),
	}
}

// WithQuery pre-fills the search box, e.g. from a command line flag. The
// search still has to be submitted by the user.
func (m Model) WithQuery(query string) Model {
	m.input.SetValue(query)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if m.phase != phaseLoading && !m.detailLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case searchDoneMsg:
		return m.commitSearch(msg)

	case detailDoneMsg:
		return m.commitDetail(msg)

	case themeSavedMsg:
		// Best-effort persistence; nothing to render either way.
		return m, nil
	}

	return m.updateInput(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		if m.detailOpen {
			return m.closeDetail(), nil
		}
		if m.input.Focused() {
			m.input.Blur()
		}
		return m, nil
	case "enter":
		if m.detailOpen {
			return m, nil
		}
		if m.input.Focused() {
			return m.submitSearch()
		}
		return m.openDetail()
	}

	if m.input.Focused() {
		return m.updateInput(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/", "s":
		return m, m.input.Focus()
	case "t":
		return m.toggleTheme()
	case "left", "h":
		return m.changePage(m.page.Prev(len(m.shows))), nil
	case "right", "l":
		return m.changePage(m.page.Next(len(m.shows))), nil
	case "up", "k":
		if !m.detailOpen && m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if !m.detailOpen && m.cursor < len(m.visibleShows())-1 {
			m.cursor++
		}
		return m, nil
	}

	return m, nil
}

func (m Model) updateInput(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submitSearch accepts a new search unless one is already in flight. An
// accepted search gets the next token; only the response carrying the
// latest token may commit.
func (m Model) submitSearch() (Model, tea.Cmd) {
	if m.phase == phaseLoading {
		return m, nil
	}

	query := strings.TrimSpace(m.input.Value())
	if query == "" {
		m.phase = phaseError
		m.errMsg = msgEmptyQuery
		return m, nil
	}

	m.searchToken++
	m.phase = phaseLoading
	m.errMsg = ""
	m.query = query
	m = m.closeDetail()
	m.input.Blur()

	return m, tea.Batch(m.spinner.Tick, m.searchCmd(m.searchToken, query))
}

func (m Model) searchCmd(token int, query string) tea.Cmd {
	return func() tea.Msg {
		result, err := m.searcher.Search(context.Background(), query)
		return searchDoneMsg{token: token, result: result, err: err}
	}
}

func (m Model) commitSearch(msg searchDoneMsg) (Model, tea.Cmd) {
	if msg.token != m.searchToken {
		// A newer search has been accepted since this one started; its
		// result is stale and must not touch the view.
		return m, nil
	}

	if msg.err != nil {
		if errors.Is(msg.err, omdb.ErrNotFound) {
			// No matches is an empty result set, not a failure.
			m.phase = phaseResults
			m.shows = []catalog.Show{}
			m.excluded = 0
			m.page = pagination.New(pageSize)
			m.cursor = 0
			m.errMsg = ""
			return m, nil
		}
		m.phase = phaseError
		m.errMsg = searchErrorMessage(msg.err)
		m.shows = nil
		return m, nil
	}

	m.phase = phaseResults
	m.shows = msg.result.Shows
	m.excluded = msg.result.Excluded
	m.page = pagination.New(pageSize)
	m.cursor = 0
	m.errMsg = ""
	return m, nil
}

// searchErrorMessage maps a failed search onto the two user-facing
// variants: timed out and generic failure. Not-found never reaches here; it
// commits as an empty result set.
func searchErrorMessage(err error) string {
	if errors.Is(err, omdb.ErrTimeout) {
		return msgTimeout
	}
	return msgGeneric
}

// changePage commits a page transition only when pagination accepted it; a
// rejected request is a no-op.
func (m Model) changePage(next pagination.State, ok bool) Model {
	if !ok || m.detailOpen || m.phase != phaseResults {
		return m
	}
	m.page = next
	m.cursor = 0
	m.errMsg = ""
	return m
}

// openDetail starts a detail fetch for the selected show. Shows without an
// identifier have no detail affordance.
func (m Model) openDetail() (Model, tea.Cmd) {
	if m.phase != phaseResults || m.detailOpen {
		return m, nil
	}

	visible := m.visibleShows()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return m, nil
	}
	show := visible[m.cursor]
	if show.ID == "" {
		return m, nil
	}

	m.detailToken++
	m.detailOpen = true
	m.detailLoading = true
	m.detail = nil
	m.errMsg = ""

	return m, tea.Batch(m.spinner.Tick, m.detailCmd(m.detailToken, show.ID))
}

func (m Model) detailCmd(token int, id string) tea.Cmd {
	return func() tea.Msg {
		show, err := m.searcher.Details(context.Background(), id)
		return detailDoneMsg{token: token, show: show, err: err}
	}
}

func (m Model) commitDetail(msg detailDoneMsg) (Model, tea.Cmd) {
	if msg.token != m.detailToken || !m.detailOpen {
		return m, nil
	}

	m.detailLoading = false
	if msg.err != nil {
		// A failed detail fetch never costs the user their results: the
		// overlay closes and the grid stays up with a note.
		m = m.closeDetail()
		m.errMsg = msgDetailError
		return m, nil
	}

	m.detail = msg.show
	return m, nil
}

func (m Model) closeDetail() Model {
	// Bumping the token orphans any in-flight detail fetch.
	m.detailToken++
	m.detailOpen = false
	m.detailLoading = false
	m.detail = nil
	return m
}

// toggleTheme is orthogonal to the search machine: it restyles the view and
// persists the preference without touching any other state.
func (m Model) toggleTheme() (Model, tea.Cmd) {
	if m.theme == ThemeDark {
		m.theme = ThemeLight
	} else {
		m.theme = ThemeDark
	}
	m.styles = newStyles(m.theme)
	m.spinner.Style = m.styles.Spinner

	theme := m.theme
	return m, func() tea.Msg {
		return themeSavedMsg{err: SaveTheme(theme)}
	}
}

// visibleShows returns the slice of results on the current page.
func (m Model) visibleShows() []catalog.Show {
	return pagination.Slice(m.shows, m.page)
}
