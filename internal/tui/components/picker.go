package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/mmcdole/dex/internal/tui/styles"
)

const pickerWidth = 36

// PickerOption is one selectable value and the text shown for it
type PickerOption struct {
	Value string
	Label string
}

// PickerOptions builds options whose labels are the values themselves
func PickerOptions(values ...string) []PickerOption {
	opts := make([]PickerOption, len(values))
	for i, v := range values {
		opts[i] = PickerOption{Value: v, Label: v}
	}
	return opts
}

// PickerSelection is a confirmed picker choice. Clear is set when the
// user picked the clear option; Value is empty then.
type PickerSelection struct {
	Value string
	Clear bool
}

// Picker is a popup for choosing one facet value. The first row always
// clears the facet. Typing narrows the options with fuzzy matching.
type Picker struct {
	visible    bool
	title      string
	clearLabel string
	options    []PickerOption
	labels     []string // option labels, the fuzzy match source
	active     string

	query   string
	matches fuzzy.Matches // nil when query is empty
	cursor  int           // 0 = clear row
	height  int

	keys PickerKeyMap
}

// NewPicker creates a picker; clearLabel is the text of the clear row
func NewPicker(title, clearLabel string) Picker {
	return Picker{title: title, clearLabel: clearLabel, height: 12, keys: DefaultPickerKeyMap()}
}

// Show displays the picker with the given options, marking the one whose
// value is active. The cursor starts on the active option.
func (p *Picker) Show(options []PickerOption, active string) {
	p.visible = true
	p.options = options
	p.labels = make([]string, len(options))
	for i, opt := range options {
		p.labels[i] = opt.Label
	}
	p.active = active
	p.query = ""
	p.matches = nil
	p.cursor = 0
	for i, opt := range options {
		if opt.Value == active {
			p.cursor = i + 1
			break
		}
	}
}

// Hide dismisses the picker
func (p *Picker) Hide() {
	p.visible = false
}

// IsVisible returns whether the picker is shown
func (p Picker) IsVisible() bool {
	return p.visible
}

// SetHeight bounds the number of option rows drawn
func (p *Picker) SetHeight(h int) {
	if h < 3 {
		h = 3
	}
	p.height = h
}

// Query returns the current type-ahead text
func (p Picker) Query() string {
	return p.query
}

// rows returns the options currently listed after the clear row
func (p Picker) rows() []PickerOption {
	if p.query == "" {
		return p.options
	}
	out := make([]PickerOption, len(p.matches))
	for i, m := range p.matches {
		out[i] = p.options[m.Index]
	}
	return out
}

func (p *Picker) setQuery(q string) {
	p.query = q
	if q == "" {
		p.matches = nil
	} else {
		p.matches = fuzzy.Find(q, p.labels)
	}
	// Jump to the best match, or back to the clear row
	if len(p.rows()) > 0 && q != "" {
		p.cursor = 1
	} else {
		p.cursor = 0
	}
}

// HandleKey processes a key press, returns (handled, selection).
// If selection is non-nil, the user confirmed a choice.
func (p *Picker) HandleKey(msg tea.KeyMsg) (handled bool, selection *PickerSelection) {
	if !p.visible {
		return false, nil
	}

	rows := p.rows()
	switch {
	case key.Matches(msg, p.keys.Down):
		if p.cursor < len(rows) {
			p.cursor++
		}
		return true, nil
	case key.Matches(msg, p.keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
		return true, nil
	case key.Matches(msg, p.keys.Enter):
		p.visible = false
		if p.cursor == 0 {
			return true, &PickerSelection{Clear: true}
		}
		return true, &PickerSelection{Value: rows[p.cursor-1].Value}
	case key.Matches(msg, p.keys.Escape):
		if p.query != "" {
			p.setQuery("")
			return true, nil
		}
		p.visible = false
		return true, nil
	case msg.Type == tea.KeyBackspace:
		if r := []rune(p.query); len(r) > 0 {
			p.setQuery(string(r[:len(r)-1]))
		}
		return true, nil
	case msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace:
		p.setQuery(p.query + string(msg.Runes))
		return true, nil
	}

	return true, nil // consume all keys when visible
}

// View renders the picker
func (p Picker) View() string {
	if !p.visible {
		return ""
	}

	rows := p.rows()
	labels := []string{p.clearLabel}
	for _, opt := range rows {
		labels = append(labels, opt.Label)
	}

	// Scroll so the cursor stays inside the window
	start := 0
	if p.cursor >= p.height {
		start = p.cursor - p.height + 1
	}
	end := min(start+p.height, len(labels))

	var lines []string
	for i := start; i < end; i++ {
		selected := i == p.cursor
		isActive := (i == 0 && p.active == "") || (i > 0 && rows[i-1].Value == p.active)

		prefix := "  "
		if isActive {
			prefix = "✓ "
		}

		text := prefix + p.renderLabel(i, labels[i], selected)

		style := lipgloss.NewStyle().Foreground(styles.LightGray)
		switch {
		case selected:
			style = lipgloss.NewStyle().Foreground(styles.White).Background(styles.SlateLight)
		case isActive:
			style = lipgloss.NewStyle().Foreground(styles.DexRed)
		}
		lines = append(lines, style.Render(styles.Pad(text, pickerWidth)))
	}

	if len(rows) == 0 {
		lines = append(lines, styles.DimStyle.Render(styles.Pad("  no matches", pickerWidth)))
	}

	title := p.title
	if p.query != "" {
		title += "  " + styles.FilterStyle.Render(p.query)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.DexRed).
		Background(styles.SlateDark).
		Padding(0, 1).
		Render(styles.ModalTitleStyle.Render(title) + "\n" + strings.Join(lines, "\n"))
}

// renderLabel highlights the fuzzy-matched characters of row i
func (p Picker) renderLabel(i int, label string, selected bool) string {
	if i == 0 || p.query == "" || selected || i-1 >= len(p.matches) {
		return label
	}

	matched := make(map[int]bool, len(p.matches[i-1].MatchedIndexes))
	for _, idx := range p.matches[i-1].MatchedIndexes {
		matched[idx] = true
	}

	var b strings.Builder
	for idx, r := range label {
		if matched[idx] {
			b.WriteString(styles.MatchHighlightStyle.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
