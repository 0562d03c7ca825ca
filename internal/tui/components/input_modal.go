package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/dex/internal/tui/styles"
)

// InputModal asks for a single line of text, such as an entry name or number
type InputModal struct {
	visible bool
	title   string
	input   textinput.Model
}

// NewInputModal creates a new input modal
func NewInputModal() InputModal {
	ti := textinput.New()
	ti.Placeholder = "name or number..."
	ti.CharLimit = 40
	ti.Width = 30
	ti.Prompt = ""
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	return InputModal{input: ti}
}

// Show displays the modal with a title
func (m *InputModal) Show(title string) {
	m.visible = true
	m.title = title
	m.input.SetValue("")
	m.input.Focus()
}

// Hide dismisses the modal
func (m *InputModal) Hide() {
	m.visible = false
	m.input.Blur()
}

// IsVisible returns whether the modal is shown
func (m InputModal) IsVisible() bool {
	return m.visible
}

// Value returns the current input value
func (m InputModal) Value() string {
	return m.input.Value()
}

// Update handles input events, returns (modal, cmd, submitted)
func (m InputModal) Update(msg tea.Msg) (InputModal, tea.Cmd, bool) {
	if !m.visible {
		return m, nil, false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEnter:
			return m, nil, true
		case tea.KeyEsc:
			m.Hide()
			return m, nil, false
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd, false
}

// View renders the input modal
func (m InputModal) View() string {
	if !m.visible {
		return ""
	}

	const modalWidth = 36

	titleStyle := lipgloss.NewStyle().
		Foreground(styles.White).
		Bold(true).
		Width(modalWidth).
		Background(styles.SlateDark)

	inputStyle := lipgloss.NewStyle().
		Width(modalWidth).
		Background(styles.SlateDark)

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.title),
		inputStyle.Render(""),
		inputStyle.Render(m.input.View()),
	)

	return styles.ModalStyle.Render(content)
}
