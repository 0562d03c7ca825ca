package tui

import (
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/dex/internal/catalog"
	"github.com/mmcdole/dex/internal/detail"
	"github.com/mmcdole/dex/internal/domain"
	"github.com/mmcdole/dex/internal/tui/components"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateHelp
)

const (
	statusDuration = 4 * time.Second
	tickInterval   = 100 * time.Millisecond
)

// Model is the main Bubble Tea model for the application.
//
// Update is the only place the browser is mutated; commands do network
// work and report back through messages.
type Model struct {
	// Application state
	State ApplicationState
	Ready bool

	// Services
	Browser   *catalog.Browser
	Resolver  *catalog.Resolver
	Details   *detail.Service
	Presenter *Presenter
	logger    *slog.Logger

	// UI Components
	List       *components.ListColumn
	Inspector  components.Inspector
	TypePicker components.Picker
	GenPicker  components.Picker
	OpenModal  components.InputModal

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg    string
	StatusIsErr  bool
	statusSeq    int
	SpinnerFrame int

	// In-flight requests
	catalogLoading    bool
	categoriesLoading bool
	openTypesOnLoad   bool // show the type picker when categories arrive
}

// NewModel creates a new application model. presenter must be the
// observer the browser was built with.
func NewModel(
	browser *catalog.Browser,
	resolver *catalog.Resolver,
	details *detail.Service,
	presenter *Presenter,
	logger *slog.Logger,
) Model {
	if logger == nil {
		logger = slog.Default()
	}
	return Model{
		State:      StateBrowsing,
		Browser:    browser,
		Resolver:   resolver,
		Details:    details,
		Presenter:  presenter,
		logger:     logger,
		List:       components.NewListColumn("Entries"),
		Inspector:  components.NewInspector(),
		TypePicker: components.NewPicker("Type", "ALL TYPES (Clear Filter)"),
		GenPicker:  components.NewPicker("Generation", "ALL GENERATIONS (Clear Filter)"),
		OpenModal:  components.NewInputModal(),
	}
}

// Init starts the catalog download
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.startCatalogLoad(),
		TickCmd(tickInterval),
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case TickMsg:
		m.SpinnerFrame++
		m.List.SetSpinnerFrame(m.SpinnerFrame)
		return m, TickCmd(tickInterval)

	case CatalogLoadedMsg:
		m.catalogLoading = false
		m.List.SetLoading(false)
		m.Browser.InstallCatalog(msg.Entries, msg.Err)
		m.syncList()
		return m, m.flushNotices()

	case CategoriesLoadedMsg:
		m.categoriesLoading = false
		open := m.openTypesOnLoad
		m.openTypesOnLoad = false
		if msg.Err != nil {
			n := catalog.NoticeFromError("Failed to load types", msg.Err)
			return m, m.setStatus(n.Message, true)
		}
		if open {
			m.showTypePicker(msg.Categories)
		}
		return m, nil

	case CategoryResolvedMsg:
		if !m.Browser.ApplyCategory(msg.Result) {
			return m, nil
		}
		m.syncList()
		return m, m.flushNotices()

	case DetailLoadedMsg:
		if !m.Inspector.Waiting(msg.ID) {
			m.logger.Debug("discarding stale detail", "id", msg.ID)
			return m, nil
		}
		if msg.Err != nil {
			n := catalog.NoticeFromError(fmt.Sprintf("Error fetching details for %q", msg.ID), msg.Err)
			m.Inspector.SetError(n.Message)
			return m, nil
		}
		m.Inspector.SetDetail(msg.Detail)
		return m, nil

	case StatusMsg:
		return m, m.setStatus(msg.Message, msg.IsError)

	case ClearStatusMsg:
		if msg.Seq == m.statusSeq {
			m.StatusMsg = ""
			m.StatusIsErr = false
		}
		return m, nil
	}

	return m, nil
}

// Loading reports whether any request is in flight
func (m Model) Loading() bool {
	return m.catalogLoading || m.categoriesLoading || m.Browser.Pending() || m.Inspector.Waiting(m.Inspector.ID())
}

// refresh reloads the catalog and drops cached details
func (m *Model) refresh() tea.Cmd {
	if m.catalogLoading {
		return nil
	}
	m.Details.Invalidate()
	return m.startCatalogLoad()
}

func (m *Model) startCatalogLoad() tea.Cmd {
	m.catalogLoading = true
	m.List.SetLoading(true)
	return LoadCatalogCmd(m.Browser)
}

// syncList copies the browser output into the list column
func (m *Model) syncList() {
	m.List.SetEntries(m.Presenter.Entries(), m.Browser.CatalogSize())
	m.List.SetTitle(m.listTitle())
	if m.Browser.Pending() {
		m.List.SetEmptyText("Loading type...")
	} else {
		m.List.SetEmptyText(catalog.EmptyResultMessage)
	}
}

// flushNotices moves queued browser notices to the status bar. The last
// notice wins; errors outrank empty-result notices.
func (m *Model) flushNotices() tea.Cmd {
	notices := m.Presenter.TakeNotices()
	if len(notices) == 0 {
		return nil
	}

	chosen := notices[len(notices)-1]
	for _, n := range notices {
		if n.Kind == catalog.NoticeError {
			chosen = n
		}
		if n.Err != nil {
			m.logger.Warn("notice", "message", n.Message, "error", n.Err)
		}
	}
	return m.setStatus(chosen.Message, chosen.Kind == catalog.NoticeError)
}

func (m *Model) setStatus(msg string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.StatusMsg = msg
	m.StatusIsErr = isErr
	return ClearStatusCmd(m.statusSeq, statusDuration)
}

// selectCategory applies a type picker choice
func (m *Model) selectCategory(sel components.PickerSelection) tea.Cmd {
	name := sel.Value
	if sel.Clear {
		name = ""
	}

	req := m.Browser.SetCategory(name)
	m.syncList()
	cmd := m.flushNotices()
	if req == nil {
		return cmd
	}
	return tea.Batch(cmd, ResolveCategoryCmd(m.Browser, *req))
}

// selectGeneration applies a generation picker choice
func (m *Model) selectGeneration(sel components.PickerSelection) tea.Cmd {
	label := sel.Value
	if sel.Clear {
		label = ""
	}

	if err := m.Browser.SetRange(label); err != nil {
		m.logger.Error("failed to select generation", "label", label, "error", err)
		return m.setStatus(err.Error(), true)
	}
	m.syncList()
	return m.flushNotices()
}

// clearFilters drops the type and generation facets; the search stays
func (m *Model) clearFilters() tea.Cmd {
	f := m.Browser.Facets()
	if f.Category != "" {
		m.Browser.SetCategory("")
	}
	if f.Range != nil {
		_ = m.Browser.SetRange("")
	}
	m.syncList()
	m.Presenter.TakeNotices()
	return m.setStatus("Type and generation cleared", false)
}

func (m *Model) showTypePicker(categories []domain.Category) {
	opts := make([]components.PickerOption, len(categories))
	for i, c := range categories {
		opts[i] = components.PickerOption{Value: c.Name, Label: c.DisplayName()}
	}
	m.TypePicker.Show(opts, m.Browser.Facets().Category)
}

func (m *Model) showGenerationPicker() {
	ranges := m.Browser.Ranges()
	labels := make([]string, len(ranges))
	for i, r := range ranges {
		labels[i] = r.Label
	}
	m.GenPicker.Show(components.PickerOptions(labels...), m.Browser.Facets().RangeLabel())
}

// openDetail shows the inspector and requests the detail of id
func (m *Model) openDetail(id string) tea.Cmd {
	m.Inspector.Open(id)
	m.updateLayout()
	return LoadDetailCmd(m.Details, id, m.Browser.Catalog())
}

func (m Model) listTitle() string {
	f := m.Browser.Facets()
	title := fmt.Sprintf("Entries (%d)", len(m.Presenter.Entries()))
	if f.Category != "" {
		title += " · " + domain.DisplayName(f.Category)
	}
	if f.Range != nil {
		title += " · " + f.Range.Label
	}
	return title
}
