package browse

import "github.com/charmbracelet/lipgloss"

// Styles holds every lipgloss style the view uses, built once per theme so
// a theme toggle is a single struct swap.
type Styles struct {
	Title    lipgloss.Style
	Prompt   lipgloss.Style
	Spinner  lipgloss.Style
	Error    lipgloss.Style
	Card     lipgloss.Style
	CardSel  lipgloss.Style
	CardYear lipgloss.Style
	Overlay  lipgloss.Style
	Label    lipgloss.Style
	Footer   lipgloss.Style
	FootKey  lipgloss.Style
	Note     lipgloss.Style
}

func newStyles(theme Theme) Styles {
	var (
		text      = lipgloss.Color("255")
		muted     = lipgloss.Color("245")
		accent    = lipgloss.Color("212")
		border    = lipgloss.Color("240")
		errorRed  = lipgloss.Color("196")
		cardWidth = 26
	)
	if theme == ThemeLight {
		text = lipgloss.Color("235")
		muted = lipgloss.Color("243")
		accent = lipgloss.Color("162")
		border = lipgloss.Color("250")
		errorRed = lipgloss.Color("160")
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Foreground(text).
		Width(cardWidth).
		Padding(0, 1)

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Padding(0, 1),
		Prompt: lipgloss.NewStyle().
			Foreground(muted).
			Padding(1, 1),
		Spinner: lipgloss.NewStyle().
			Foreground(accent),
		Error: lipgloss.NewStyle().
			Foreground(errorRed).
			Bold(true).
			Padding(1, 1),
		Card: card,
		CardSel: card.
			BorderForeground(accent).
			Bold(true),
		CardYear: lipgloss.NewStyle().
			Foreground(muted),
		Overlay: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(accent).
			Foreground(text).
			Width(64).
			Padding(1, 2),
		Label: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),
		Footer: lipgloss.NewStyle().
			Foreground(muted).
			Padding(1, 1),
		FootKey: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),
		Note: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true).
			Padding(0, 1),
	}
}
