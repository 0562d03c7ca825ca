package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	DexRed     = lipgloss.Color("#E3350D")
	SlateDark  = lipgloss.Color("#1F2937")
	SlateLight = lipgloss.Color("#374151")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Yellow     = lipgloss.Color("#FACC15")
	Red        = lipgloss.Color("#EF4444")
	Blue       = lipgloss.Color("#3B82F6")
)

// Borders
var (
	ActiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DexRed)

	InactiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray)
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(DexRed)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(Yellow)
)

// Facet button styles for the header bar
var (
	FacetActiveStyle = lipgloss.NewStyle().
				Foreground(White).
				Background(DexRed).
				Padding(0, 1)

	FacetIdleStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Background(SlateLight).
			Padding(0, 1)
)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DexRed).
			Padding(1, 2).
			Background(SlateDark)

	ModalTitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true).
			MarginBottom(1)
)

// Spinner style
var (
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(DexRed)
)

// Search bar styles
var (
	FilterStyle = lipgloss.NewStyle().
			Foreground(DexRed)

	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(DexRed).
				Bold(true)
)

// Match highlight style for picker type-ahead
var (
	MatchHighlightStyle = lipgloss.NewStyle().
				Foreground(DexRed).
				Bold(true)
)

// Truncate shortens s to width display cells, ending with an ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	if width <= 3 {
		return string(r[:min(width, len(r))])
	}
	for len(r) > 0 && lipgloss.Width(string(r))+3 > width {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}

// Pad right-pads s with spaces to width display cells
func Pad(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return Truncate(s, width)
	}
	return s + spaces(width-w)
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

// RenderListRow renders a complete list row with uniform background when selected.
// Each part is styled on its own so ANSI resets do not break the background.
func RenderListRow(parts []RowPart, selected bool, width int) string {
	bg := SlateLight
	defaultFg := LightGray
	selectedFg := White

	var result string
	visibleLen := 0

	for _, part := range parts {
		style := lipgloss.NewStyle()
		if part.Foreground != nil {
			style = style.Foreground(*part.Foreground)
		} else if selected {
			style = style.Foreground(selectedFg)
		} else {
			style = style.Foreground(defaultFg)
		}
		if selected {
			style = style.Background(bg)
		}
		result += style.Render(part.Text)
		visibleLen += lipgloss.Width(part.Text)
	}

	// 2 cells of margin
	paddingNeeded := width - visibleLen - 2
	if paddingNeeded > 0 {
		padStyle := lipgloss.NewStyle()
		if selected {
			padStyle = padStyle.Background(bg)
		}
		result += padStyle.Render(spaces(paddingNeeded))
	}

	marginStyle := lipgloss.NewStyle()
	if selected {
		marginStyle = marginStyle.Background(bg)
	}
	margin := marginStyle.Render(" ")

	return margin + result + margin
}

// RowPart is a piece of a row with optional foreground color
type RowPart struct {
	Text       string
	Foreground *lipgloss.Color
}
