package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.State == StateHelp {
		m.State = StateBrowsing
		return m, nil
	}

	// Modals take every key while visible
	if m.OpenModal.IsVisible() {
		var cmd tea.Cmd
		var submitted bool
		m.OpenModal, cmd, submitted = m.OpenModal.Update(msg)
		if submitted {
			id := strings.TrimSpace(m.OpenModal.Value())
			m.OpenModal.Hide()
			if id == "" {
				return m, nil
			}
			return m, m.openDetail(id)
		}
		return m, cmd
	}

	if m.TypePicker.IsVisible() {
		if _, sel := m.TypePicker.HandleKey(msg); sel != nil {
			return m, m.selectCategory(*sel)
		}
		return m, nil
	}

	if m.GenPicker.IsVisible() {
		if _, sel := m.GenPicker.HandleKey(msg); sel != nil {
			return m, m.selectGeneration(*sel)
		}
		return m, nil
	}

	// Search typing goes to the list before any shortcut
	if m.List.IsSearchTyping() {
		return m.updateList(msg)
	}

	if m.Inspector.IsOpen() {
		switch {
		case key.Matches(msg, Keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, Keys.Back):
			m.Inspector.Close()
			m.updateLayout()
			return m, nil
		case key.Matches(msg, Keys.Down):
			m.Inspector.ScrollDown()
			return m, nil
		case key.Matches(msg, Keys.Up):
			m.Inspector.ScrollUp()
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.Types):
		if m.Browser.CatalogSize() == 0 {
			return m, m.setStatus("Entry list not loaded yet", false)
		}
		if cached, ok := m.Resolver.CachedCategories(); ok {
			m.showTypePicker(cached)
			return m, nil
		}
		m.openTypesOnLoad = true
		if m.categoriesLoading {
			return m, nil
		}
		m.categoriesLoading = true
		return m, LoadCategoriesCmd(m.Resolver)

	case key.Matches(msg, Keys.Generations):
		m.showGenerationPicker()
		return m, nil

	case key.Matches(msg, Keys.ClearFilters):
		return m, m.clearFilters()

	case key.Matches(msg, Keys.Open):
		m.OpenModal.Show("Open entry")
		return m, nil

	case key.Matches(msg, Keys.Refresh):
		return m, m.refresh()

	case key.Matches(msg, Keys.Enter):
		if e := m.List.SelectedEntry(); e != nil {
			return m, m.openDetail(e.Name)
		}
		return m, nil
	}

	return m.updateList(msg)
}

// updateList forwards a key to the list column and re-runs the filter when
// the search text changed
func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, changed := m.List.Update(msg)
	if !changed {
		return m, cmd
	}

	m.Browser.SetQuery(m.List.Query())
	m.syncList()
	return m, tea.Batch(cmd, m.flushNotices())
}
