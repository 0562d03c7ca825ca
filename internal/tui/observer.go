package tui

import (
	"github.com/mmcdole/dex/internal/catalog"
	"github.com/mmcdole/dex/internal/domain"
)

// Presenter adapts catalog.Observer for Bubble Tea. The browser calls it
// synchronously from Update; the model then reads what it collected.
type Presenter struct {
	entries []domain.Entry
	notices []catalog.Notice
}

// NewPresenter creates an empty presenter
func NewPresenter() *Presenter {
	return &Presenter{}
}

// OnResult records the latest displayed list
func (p *Presenter) OnResult(entries []domain.Entry) {
	p.entries = entries
}

// OnNotice queues a notice for the status bar
func (p *Presenter) OnNotice(n catalog.Notice) {
	p.notices = append(p.notices, n)
}

// Entries returns the latest displayed list
func (p *Presenter) Entries() []domain.Entry {
	return p.entries
}

// TakeNotices returns and clears the queued notices
func (p *Presenter) TakeNotices() []catalog.Notice {
	n := p.notices
	p.notices = nil
	return n
}
