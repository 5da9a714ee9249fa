package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/showscope/showscope/pkg/catalog"
	"github.com/showscope/showscope/pkg/pagination"
)

// gridColumns is the number of cards per row.
const gridColumns = 3

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("ShowScope"))
	b.WriteString("\n")
	b.WriteString(m.styles.Prompt.Render(m.input.View()))
	b.WriteString("\n")

	if m.detailOpen {
		b.WriteString(m.viewDetail())
	} else {
		b.WriteString(m.viewBody())
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	return b.String()
}

// viewBody renders exactly one of the idle prompt, the spinner, the error
// banner, or the results grid.
func (m Model) viewBody() string {
	switch m.phase {
	case phaseLoading:
		return m.styles.Prompt.Render(m.spinner.View() + " Searching...")
	case phaseError:
		return m.styles.Error.Render(m.errMsg)
	case phaseResults:
		return m.viewResults()
	}
	return m.styles.Prompt.Render("Type a series name and press enter.")
}

func (m Model) viewResults() string {
	visible := m.visibleShows()
	if len(visible) == 0 {
		return m.styles.Prompt.Render(msgNoResults)
	}

	var rows []string
	for start := 0; start < len(visible); start += gridColumns {
		end := start + gridColumns
		if end > len(visible) {
			end = len(visible)
		}
		var cards []string
		for i := start; i < end; i++ {
			cards = append(cards, m.viewCard(visible[i], i == m.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	grid := lipgloss.JoinVertical(lipgloss.Left, rows...)
	if m.excluded > 0 {
		note := fmt.Sprintf("%d result(s) could not be loaded and are hidden.", m.excluded)
		grid = lipgloss.JoinVertical(lipgloss.Left, grid, m.styles.Note.Render(note))
	}
	if m.errMsg != "" {
		grid = lipgloss.JoinVertical(lipgloss.Left, grid, m.styles.Note.Render(m.errMsg))
	}
	return grid
}

func (m Model) viewCard(show catalog.Show, selected bool) string {
	style := m.styles.Card
	if selected {
		style = m.styles.CardSel
	}

	title := show.Title
	if show.ID == "" {
		// No identifier means no detail view for this entry.
		title += " *"
	}
	return style.Render(title + "\n" + m.styles.CardYear.Render(show.Year))
}

func (m Model) viewDetail() string {
	if m.detailLoading {
		return m.styles.Overlay.Render(m.spinner.View() + " Loading details...")
	}
	if m.detail == nil {
		return m.styles.Overlay.Render(msgDetailError)
	}

	d := m.detail
	var b strings.Builder
	b.WriteString(m.styles.Label.Render(d.Title))
	b.WriteString("  " + m.styles.CardYear.Render(d.Year))
	b.WriteString("\n\n")
	b.WriteString(d.Plot)
	b.WriteString("\n\n")
	b.WriteString(m.styles.Label.Render("Genre   ") + d.Genre + "\n")
	b.WriteString(m.styles.Label.Render("Rating  ") + d.Rating + "\n")
	b.WriteString(m.styles.Label.Render("Runtime ") + d.Runtime + "\n")
	b.WriteString(m.styles.Label.Render("Cast    ") + d.Actors)
	for _, r := range d.Ratings {
		if r.Source == "" && r.Value == "" {
			continue
		}
		b.WriteString("\n" + m.styles.CardYear.Render(r.Source+": "+r.Value))
	}
	return m.styles.Overlay.Render(b.String())
}

func (m Model) viewFooter() string {
	if m.detailOpen {
		return m.styles.Footer.Render(m.styles.FootKey.Render("esc") + " close")
	}

	hints := []string{
		m.styles.FootKey.Render("/") + " search",
		m.styles.FootKey.Render("t") + " theme",
		m.styles.FootKey.Render("q") + " quit",
	}
	if m.phase == phaseResults && len(m.shows) > 0 {
		total := pagination.TotalPages(len(m.shows), m.page.Size)
		hints = append([]string{
			fmt.Sprintf("Page %d of %d", m.page.Page, total),
			m.styles.FootKey.Render("←/→") + " page",
			m.styles.FootKey.Render("enter") + " details",
		}, hints...)
	}
	return m.styles.Footer.Render(strings.Join(hints, "  "))
}
