package tui

// Layout proportions
const (
	// List + inspector split when a detail is open
	ListColumnPercent      = 40
	InspectorColumnPercent = 60

	MinColumnWidth = 20

	// Header (facet bar) and footer take one line each
	ChromeHeight = 2
)

// updateLayout recomputes component sizes after a resize or when the
// inspector opens or closes
func (m *Model) updateLayout() {
	if !m.Ready {
		return
	}

	contentHeight := max(m.Height-ChromeHeight, 3)

	m.TypePicker.SetHeight(contentHeight - 6)
	m.GenPicker.SetHeight(contentHeight - 6)

	if !m.Inspector.IsOpen() {
		m.List.SetSize(m.Width, contentHeight)
		return
	}

	listWidth := max(m.Width*ListColumnPercent/100, MinColumnWidth)
	inspectorWidth := max(m.Width-listWidth, MinColumnWidth)
	m.List.SetSize(listWidth, contentHeight)
	m.Inspector.SetSize(inspectorWidth, contentHeight)
}
