package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/dex/internal/domain"
	"github.com/mmcdole/dex/internal/tui/styles"
)

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.State == StateHelp {
		return m.renderHelp()
	}

	content := m.List.View()
	if m.Inspector.IsOpen() {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, m.Inspector.View())
	}

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		content,
		m.renderFooter(),
	)

	// Overlays
	switch {
	case m.TypePicker.IsVisible():
		view = lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, m.TypePicker.View())
	case m.GenPicker.IsVisible():
		view = lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, m.GenPicker.View())
	case m.OpenModal.IsVisible():
		view = lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, m.OpenModal.View())
	}

	return view
}

// renderHeader renders the facet buttons
func (m Model) renderHeader() string {
	f := m.Browser.Facets()

	typeLabel := "Type: All"
	typeStyle := styles.FacetIdleStyle
	if f.Category != "" {
		typeLabel = "Type: " + domain.DisplayName(f.Category)
		typeStyle = styles.FacetActiveStyle
	}

	genLabel := "Generation: All"
	genStyle := styles.FacetIdleStyle
	if f.Range != nil {
		genLabel = "Generation: " + f.Range.Label
		genStyle = styles.FacetActiveStyle
	}

	header := styles.AccentStyle.Render("t") + " " + typeStyle.Render(typeLabel) + "  " +
		styles.AccentStyle.Render("e") + " " + genStyle.Render(genLabel)

	if q := strings.TrimSpace(f.Query); q != "" {
		header += "  " + styles.FilterStyle.Render("/ "+q)
	}
	return header
}

// renderFooter renders a single-line minimal footer
func (m Model) renderFooter() string {
	// Left side: spinner while loading, then the status message
	var left string
	if m.Loading() {
		left = RenderSpinner(m.SpinnerFrame) + " "
		if m.StatusMsg == "" {
			left += styles.DimStyle.Render("Loading...")
		}
	}
	if m.StatusMsg != "" {
		if m.StatusIsErr {
			left += styles.ErrorStyle.Render(m.StatusMsg)
		} else {
			left += styles.NoticeStyle.Render(m.StatusMsg)
		}
	}

	right := styles.AccentStyle.Render("?") + styles.DimStyle.Render(" help")

	gap := max(m.Width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	return left + strings.Repeat(" ", gap) + right
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	help := `
NAVIGATION                      FILTERS
  j/k        Up/down               t      Pick type
  g/Home     First entry           e      Pick generation
  G/End      Last entry            /      Search by name
  PgUp/PgDn  Scroll page           x      Clear type and generation
  Ctrl+u/d   Scroll half page

DETAILS                         OTHER
  Enter      Show details          r      Reload catalog
  o          Open by name/number   q      Quit
  h/Esc      Close details         ?      This help

Press any key to return...
`

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(help))
}

// RenderSpinner renders the loading indicator frame
func RenderSpinner(frame int) string {
	frames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	return styles.SpinnerStyle.Render(frames[frame%len(frames)])
}
