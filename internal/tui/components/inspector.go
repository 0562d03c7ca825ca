package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/dex/internal/domain"
	"github.com/mmcdole/dex/internal/tui/styles"
)

// InspectorBorderHeight is the rows taken by the border
const InspectorBorderHeight = 2

// Inspector shows the detail record of one entry. It is either loading,
// showing a detail, or showing an error.
type Inspector struct {
	id      string // identifier the inspector is waiting for or showing
	loading bool
	detail  *domain.EntryDetail
	err     string

	width  int
	height int
	offset int
}

// NewInspector creates an empty inspector
func NewInspector() Inspector {
	return Inspector{}
}

// Open starts waiting for the detail of id
func (i *Inspector) Open(id string) {
	i.id = id
	i.loading = true
	i.detail = nil
	i.err = ""
	i.offset = 0
}

// Close clears the inspector
func (i *Inspector) Close() {
	*i = Inspector{width: i.width, height: i.height}
}

// IsOpen reports whether the inspector has something to show
func (i Inspector) IsOpen() bool {
	return i.id != ""
}

// Waiting reports whether id is the identifier being loaded
func (i Inspector) Waiting(id string) bool {
	return i.loading && i.id == id
}

// ID returns the identifier the inspector was opened for
func (i Inspector) ID() string {
	return i.id
}

// SetDetail shows a loaded detail
func (i *Inspector) SetDetail(d *domain.EntryDetail) {
	i.loading = false
	i.detail = d
	i.err = ""
}

// SetError shows a failure message instead of a detail
func (i *Inspector) SetError(msg string) {
	i.loading = false
	i.detail = nil
	i.err = msg
}

// Detail returns the displayed detail, if any
func (i Inspector) Detail() *domain.EntryDetail {
	return i.detail
}

// SetSize updates the component dimensions
func (i *Inspector) SetSize(width, height int) {
	i.width = width
	i.height = height
}

// ScrollDown moves the body one line down
func (i *Inspector) ScrollDown() {
	i.offset++
}

// ScrollUp moves the body one line up
func (i *Inspector) ScrollUp() {
	if i.offset > 0 {
		i.offset--
	}
}

// View renders the component
func (i Inspector) View() string {
	contentWidth := max(i.width-4, 10)

	var lines []string
	switch {
	case i.loading:
		lines = []string{styles.DimStyle.Render("Loading " + i.id + "...")}
	case i.err != "":
		lines = strings.Split(wordWrap(i.err, contentWidth), "\n")
		for n, l := range lines {
			lines[n] = styles.ErrorStyle.Render(l)
		}
	case i.detail != nil:
		lines = renderDetail(i.detail, contentWidth)
	}

	visible := max(i.height-InspectorBorderHeight, 1)
	offset := min(i.offset, max(len(lines)-visible, 0))
	end := min(offset+visible, len(lines))

	return styles.ActiveBorder.
		Width(max(i.width-InspectorBorderHeight, 0)).
		Height(visible).
		Render(strings.Join(lines[offset:end], "\n"))
}

func renderDetail(d *domain.EntryDetail, width int) []string {
	lines := []string{
		styles.TitleStyle.Render(styles.Truncate(d.Heading(), width)),
		"",
	}

	if url := d.ImageURL(); url != "" {
		lines = append(lines, styles.DimStyle.Render("Artwork"), styles.Truncate(url, width), "")
	}

	field := func(label, value string) string {
		return styles.SubtitleStyle.Render(fmt.Sprintf("%-8s", label)) + " " + value
	}
	lines = append(lines,
		field("Types", d.FormattedTypes()),
		field("Height", d.FormattedHeight()),
		field("Weight", d.FormattedWeight()),
		"",
		styles.AccentStyle.Render("Base stats"),
	)

	for _, s := range d.DisplayStats() {
		lines = append(lines, "  "+s)
	}
	return lines
}

// wordWrap breaks text on spaces so no line exceeds width cells
func wordWrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	var result strings.Builder
	lineLen := 0
	for i, word := range strings.Fields(text) {
		wordLen := lipgloss.Width(word)
		if lineLen+wordLen+1 > width && lineLen > 0 {
			result.WriteString("\n")
			lineLen = 0
		}
		if i > 0 && lineLen > 0 {
			result.WriteString(" ")
			lineLen++
		}
		result.WriteString(word)
		lineLen += wordLen
	}
	return result.String()
}
