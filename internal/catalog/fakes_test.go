package catalog

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/mmcdole/dex/internal/domain"
)

func entry(id int, name string) domain.Entry {
	return domain.Entry{ID: strconv.Itoa(id), Name: name}
}

// fakeRepo serves a fixed catalog and category table
type fakeRepo struct {
	mu         sync.Mutex
	entries    []domain.Entry
	listErr    error
	categories []domain.Category
	catErr     error
	members    map[string][]domain.Entry
	memberErr  map[string]error

	listCalls     atomic.Int32
	categoryCalls atomic.Int32
	// gate, when set, blocks ListCategories until closed
	gate chan struct{}
}

func (f *fakeRepo) ListEntries(_ context.Context, limit int) ([]domain.Entry, error) {
	f.listCalls.Add(1)
	if f.listErr != nil {
		return nil, f.listErr
	}
	if limit > 0 && limit < len(f.entries) {
		return f.entries[:limit], nil
	}
	return f.entries, nil
}

func (f *fakeRepo) GetEntry(_ context.Context, idOrName string) (*domain.EntryDetail, error) {
	return nil, &domain.NotFoundError{ID: idOrName}
}

func (f *fakeRepo) ListCategories(_ context.Context, _ int) ([]domain.Category, error) {
	f.categoryCalls.Add(1)
	if f.gate != nil {
		<-f.gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.catErr != nil {
		return nil, f.catErr
	}
	return f.categories, nil
}

func (f *fakeRepo) GetCategoryMembers(_ context.Context, name string) ([]domain.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.memberErr[name]; err != nil {
		return nil, err
	}
	members, ok := f.members[name]
	if !ok {
		return nil, &domain.FetchError{Op: "get type " + name, StatusCode: 404, Err: fmt.Errorf("not found")}
	}
	return members, nil
}

// recordingObserver keeps everything the browser publishes
type recordingObserver struct {
	results [][]domain.Entry
	notices []Notice
}

func (o *recordingObserver) OnResult(entries []domain.Entry) {
	o.results = append(o.results, entries)
}

func (o *recordingObserver) OnNotice(n Notice) {
	o.notices = append(o.notices, n)
}

func (o *recordingObserver) last() []domain.Entry {
	if len(o.results) == 0 {
		return nil
	}
	return o.results[len(o.results)-1]
}

func names(entries []domain.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

// sampleCatalog mixes entries from several generations and types
func sampleCatalog() []domain.Entry {
	return []domain.Entry{
		entry(1, "bulbasaur"),
		entry(4, "charmander"),
		entry(5, "charmeleon"),
		entry(6, "charizard"),
		entry(7, "squirtle"),
		entry(152, "chikorita"),
		entry(155, "cyndaquil"),
		entry(158, "totodile"),
		entry(252, "treecko"),
		entry(255, "torchic"),
	}
}

func sampleRepo() *fakeRepo {
	return &fakeRepo{
		entries: sampleCatalog(),
		categories: []domain.Category{
			{Name: "normal"}, {Name: "fire"}, {Name: "water"}, {Name: "grass"},
			{Name: "unknown"}, {Name: "shadow"},
		},
		members: map[string][]domain.Entry{
			"fire":  {entry(4, "charmander"), entry(5, "charmeleon"), entry(6, "charizard"), entry(155, "cyndaquil"), entry(255, "torchic")},
			"water": {entry(7, "squirtle"), entry(158, "totodile")},
			"grass": {entry(1, "bulbasaur"), entry(152, "chikorita"), entry(252, "treecko")},
		},
		memberErr: map[string]error{},
	}
}
