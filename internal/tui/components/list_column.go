package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/dex/internal/domain"
	"github.com/mmcdole/dex/internal/tui/styles"
)

var listColumnSpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Layout constants for list columns
const (
	// Border adds 1 char on each side (left+right for width, top+bottom for height)
	BorderWidth  = 2
	BorderHeight = 2

	// Scroll indicators ("↑ more" and "↓ more") each take 1 line
	ScrollIndicatorLines = 2
)

// ListColumn is a scrollable list of catalog entries with a search bar.
// It only displays entries; narrowing them is up to the caller, which
// reads Query after every keystroke.
type ListColumn struct {
	entries []domain.Entry
	total   int // size of the unfiltered catalog, for the count badge

	// Selection
	cursor     int
	offset     int
	maxVisible int

	// Dimensions
	width   int
	height  int
	focused bool

	title string

	loading      bool
	spinnerFrame int
	emptyText    string

	// Search state
	searchActive bool
	searchInput  textinput.Model

	keys ListColumnKeyMap
}

// NewListColumn creates an empty entry column with the given title
func NewListColumn(title string) *ListColumn {
	ti := textinput.New()
	ti.Placeholder = "type to search..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	return &ListColumn{
		title:       title,
		searchInput: ti,
		emptyText:   "No entries",
		focused:     true,
		keys:        DefaultListColumnKeyMap(),
	}
}

// Update handles navigation and search typing. queryChanged reports
// that Query returns a new value.
func (c *ListColumn) Update(msg tea.Msg) (cmd tea.Cmd, queryChanged bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !c.focused {
		return nil, false
	}

	// Typing into the search bar
	if c.searchActive && c.searchInput.Focused() {
		before := c.searchInput.Value()
		switch {
		case key.Matches(keyMsg, c.keys.Escape):
			c.clearSearch()
			return nil, before != ""
		case key.Matches(keyMsg, c.keys.Enter):
			// Keep the query, go back to navigating the results
			c.searchInput.Blur()
			return nil, false
		case keyMsg.Type == tea.KeyBackspace && before == "":
			c.clearSearch()
			return nil, false
		}

		c.searchInput, cmd = c.searchInput.Update(msg)
		return cmd, c.searchInput.Value() != before
	}

	if c.searchActive {
		switch {
		case key.Matches(keyMsg, c.keys.Escape):
			had := c.searchInput.Value() != ""
			c.clearSearch()
			return nil, had
		case key.Matches(keyMsg, c.keys.Filter):
			c.searchInput.Focus()
			return nil, false
		}
	}

	if key.Matches(keyMsg, c.keys.Filter) {
		c.searchActive = true
		c.recalcMaxVisible()
		return c.searchInput.Focus(), false
	}

	count := len(c.entries)
	if count == 0 {
		return nil, false
	}

	switch {
	case key.Matches(keyMsg, c.keys.Down):
		if c.cursor < count-1 {
			c.cursor++
		}
	case key.Matches(keyMsg, c.keys.Up):
		if c.cursor > 0 {
			c.cursor--
		}
	case key.Matches(keyMsg, c.keys.Home):
		c.cursor = 0
		c.offset = 0
	case key.Matches(keyMsg, c.keys.End):
		c.cursor = count - 1
	case key.Matches(keyMsg, c.keys.HalfDown):
		c.cursor = min(c.cursor+c.maxVisible/2, count-1)
	case key.Matches(keyMsg, c.keys.HalfUp):
		c.cursor = max(c.cursor-c.maxVisible/2, 0)
	case key.Matches(keyMsg, c.keys.PageDown):
		c.cursor = min(c.cursor+c.maxVisible, count-1)
	case key.Matches(keyMsg, c.keys.PageUp):
		c.cursor = max(c.cursor-c.maxVisible, 0)
	}
	c.ensureVisible()
	return nil, false
}

// View renders the column inside its border
func (c *ListColumn) View() string {
	style := styles.InactiveBorder
	if c.focused {
		style = styles.ActiveBorder
	}

	frameW, frameH := style.GetFrameSize()
	return style.
		Width(max(c.width-frameW, 0)).
		Height(max(c.height-frameH, 0)).
		Render(c.renderContent())
}

// SetSize updates the component dimensions
func (c *ListColumn) SetSize(width, height int) {
	c.width = width
	c.height = height
	c.recalcMaxVisible()
	c.ensureVisible()
}

// SetFocused sets whether keys reach the column
func (c *ListColumn) SetFocused(focused bool) {
	c.focused = focused
}

// SetTitle replaces the header text
func (c *ListColumn) SetTitle(title string) {
	c.title = title
}

// SetEmptyText sets the text shown when there are no entries
func (c *ListColumn) SetEmptyText(text string) {
	c.emptyText = text
}

// SetEntries replaces the displayed entries. The cursor stays on the
// previously selected entry when it is still listed.
func (c *ListColumn) SetEntries(entries []domain.Entry, total int) {
	var selectedID string
	if e := c.SelectedEntry(); e != nil {
		selectedID = e.ID
	}

	c.entries = entries
	c.total = total
	c.cursor = 0
	for i, e := range entries {
		if e.ID == selectedID {
			c.cursor = i
			break
		}
	}
	if c.cursor < c.offset {
		c.offset = 0
	}
	c.ensureVisible()
}

// Entries returns the displayed entries
func (c *ListColumn) Entries() []domain.Entry {
	return c.entries
}

// SelectedEntry returns the entry under the cursor, or nil
func (c *ListColumn) SelectedEntry() *domain.Entry {
	if c.cursor < 0 || c.cursor >= len(c.entries) {
		return nil
	}
	e := c.entries[c.cursor]
	return &e
}

// SelectedIndex returns the cursor position
func (c *ListColumn) SelectedIndex() int {
	return c.cursor
}

// SetLoading toggles the loading placeholder
func (c *ListColumn) SetLoading(loading bool) {
	c.loading = loading
}

// SetSpinnerFrame advances the loading animation
func (c *ListColumn) SetSpinnerFrame(frame int) {
	c.spinnerFrame = frame
}

// Query returns the search text
func (c *ListColumn) Query() string {
	if !c.searchActive {
		return ""
	}
	return c.searchInput.Value()
}

// IsSearching returns true if the search bar is shown
func (c *ListColumn) IsSearching() bool {
	return c.searchActive
}

// IsSearchTyping returns true if the search bar has keyboard focus
func (c *ListColumn) IsSearchTyping() bool {
	return c.searchActive && c.searchInput.Focused()
}

// Internal methods

func (c *ListColumn) recalcMaxVisible() {
	interiorHeight := c.height - BorderHeight
	c.maxVisible = interiorHeight - ScrollIndicatorLines - 1 // -1 for title
	if c.searchActive {
		c.maxVisible--
	}
	if c.maxVisible < 1 {
		c.maxVisible = 1
	}
}

func (c *ListColumn) ensureVisible() {
	// Don't adjust offset if size hasn't been set yet
	if c.maxVisible <= 0 {
		return
	}
	if c.cursor < c.offset {
		c.offset = c.cursor
	}
	if c.cursor >= c.offset+c.maxVisible {
		c.offset = c.cursor - c.maxVisible + 1
	}
}

func (c *ListColumn) clearSearch() {
	c.searchActive = false
	c.searchInput.SetValue("")
	c.searchInput.Blur()
	c.recalcMaxVisible()
}

func (c *ListColumn) renderContent() string {
	itemWidth := max(c.width-BorderWidth, 10)

	titleLine := styles.AccentStyle.Render(styles.Truncate(c.title, itemWidth))

	if c.loading && len(c.entries) == 0 {
		spinner := listColumnSpinnerFrames[c.spinnerFrame%len(listColumnSpinnerFrames)]
		loadingLine := styles.DimStyle.Render(spinner + " Loading...")
		return titleLine + "\n" + " " + "\n" + loadingLine + "\n" + " "
	}

	count := len(c.entries)
	if count == 0 {
		content := titleLine + "\n" + " " + "\n" + styles.DimStyle.Render(c.emptyText) + "\n" + " "
		if c.searchActive {
			content += "\n" + c.renderSearchBar()
		}
		return content
	}

	end := min(c.offset+c.maxVisible, count)

	var lines []string
	for i := c.offset; i < end; i++ {
		lines = append(lines, renderEntryRow(c.entries[i], i == c.cursor, itemWidth))
	}

	// Always reserve the indicator rows to prevent layout shifts
	header := " "
	if c.offset > 0 {
		header = styles.DimStyle.Render("↑ more")
	}
	footer := " "
	if end < count {
		footer = styles.DimStyle.Render("↓ more")
	}

	content := titleLine + "\n" + header + "\n" + strings.Join(lines, "\n") + "\n" + footer
	if c.searchActive {
		content += "\n" + c.renderSearchBar()
	}
	return content
}

func renderEntryRow(e domain.Entry, selected bool, width int) string {
	number := fmt.Sprintf("#%-5s", e.ID)
	name := styles.Truncate(e.DisplayName(), max(width-len(number)-3, 1))

	dim := styles.DimGray
	parts := []styles.RowPart{
		{Text: number, Foreground: &dim},
		{Text: " " + name},
	}
	return styles.RenderListRow(parts, selected, width)
}

func (c *ListColumn) renderSearchBar() string {
	input := c.searchInput.View()
	if c.searchInput.Value() == "" {
		return input
	}
	return input + styles.DimStyle.Render(fmt.Sprintf(" [%d/%d]", len(c.entries), c.total))
}
