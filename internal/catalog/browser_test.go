package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/dex/internal/domain"
)

func newTestBrowser(t *testing.T, repo *fakeRepo) (*Browser, *recordingObserver) {
	t.Helper()
	obs := &recordingObserver{}
	store := NewStore(repo, 0, nil)
	b := NewBrowser(store, NewResolver(repo, 50, nil), domain.Generations, obs, nil)
	b.InstallCatalog(b.FetchCatalog(context.Background()))
	require.Equal(t, len(repo.entries), b.CatalogSize())
	return b, obs
}

// selectCategory runs a category change to completion
func selectCategory(b *Browser, name string) {
	if req := b.SetCategory(name); req != nil {
		b.ApplyCategory(b.ResolveCategory(context.Background(), *req))
	}
}

func TestBrowser_LoadPublishesFullCatalog(t *testing.T) {
	b, obs := newTestBrowser(t, sampleRepo())

	assert.Equal(t, sampleCatalog(), b.Result())
	assert.Equal(t, sampleCatalog(), obs.last())
	assert.Empty(t, obs.notices)
}

func TestBrowser_LoadFailureEmitsNotice(t *testing.T) {
	repo := sampleRepo()
	repo.listErr = &domain.FetchError{Op: "list entries", Err: domain.ErrServerOffline}
	obs := &recordingObserver{}
	b := NewBrowser(NewStore(repo, 0, nil), NewResolver(repo, 50, nil), domain.Generations, obs, nil)

	entries, err := b.FetchCatalog(context.Background())
	require.Error(t, err)
	b.InstallCatalog(entries, err)
	require.Len(t, obs.notices, 1)
	assert.Equal(t, NoticeError, obs.notices[0].Kind)
	assert.Equal(t, "Error fetching entry list: server unreachable", obs.notices[0].Message)
	assert.Empty(t, b.Result())
}

func TestBrowser_InstallCatalog(t *testing.T) {
	repo := sampleRepo()
	obs := &recordingObserver{}
	b := NewBrowser(NewStore(repo, 0, nil), NewResolver(repo, 50, nil), domain.Generations, obs, nil)

	b.InstallCatalog(nil, &domain.ParseError{Op: "list entries"})
	require.Len(t, obs.notices, 1)
	assert.Equal(t, "Error fetching entry list: malformed response", obs.notices[0].Message)

	b.InstallCatalog(sampleCatalog(), nil)
	assert.Equal(t, sampleCatalog(), b.Result())
}

func TestBrowser_SetQueryAndRange(t *testing.T) {
	b, _ := newTestBrowser(t, sampleRepo())

	require.NoError(t, b.SetRange("Gen I"))
	b.SetQuery("char")
	assert.Equal(t, []string{"charmander", "charmeleon", "charizard"}, names(b.Result()))

	b.SetQuery("  ")
	assert.Len(t, b.Result(), 5)

	require.NoError(t, b.SetRange(""))
	assert.Equal(t, sampleCatalog(), b.Result())
	assert.Nil(t, b.Facets().Range)
}

func TestBrowser_SetRangeRejectsUnknownLabel(t *testing.T) {
	b, _ := newTestBrowser(t, sampleRepo())
	require.NoError(t, b.SetRange("Gen II"))

	err := b.SetRange("Gen X")
	require.ErrorIs(t, err, ErrUnknownRange)
	assert.Equal(t, "Gen II", b.Facets().RangeLabel())
}

func TestBrowser_CategoryReplacesBase(t *testing.T) {
	b, _ := newTestBrowser(t, sampleRepo())

	selectCategory(b, "fire")
	assert.Equal(t, []string{"charmander", "charmeleon", "charizard", "cyndaquil", "torchic"}, names(b.Result()))

	require.NoError(t, b.SetRange("Gen II"))
	assert.Equal(t, []string{"cyndaquil"}, names(b.Result()))

	selectCategory(b, "")
	assert.Equal(t, []string{"chikorita", "cyndaquil", "totodile"}, names(b.Result()))
	assert.Equal(t, "", b.Facets().Category)
}

func TestBrowser_CategoryFailureClearsList(t *testing.T) {
	repo := sampleRepo()
	b, obs := newTestBrowser(t, repo)

	selectCategory(b, "water")
	require.Len(t, b.Result(), 2)

	repo.memberErr["fire"] = &domain.FetchError{Op: "get type fire", Err: domain.ErrServerOffline}
	selectCategory(b, "fire")

	assert.Empty(t, b.Result())
	assert.Empty(t, obs.last())

	var errs []Notice
	for _, n := range obs.notices {
		if n.Kind == NoticeError {
			errs = append(errs, n)
		}
	}
	require.Len(t, errs, 1)
	assert.Equal(t, "Failed to load entries of type 'fire': server unreachable", errs[0].Message)
	assert.ErrorIs(t, errs[0].Err, domain.ErrServerOffline)
}

func TestBrowser_StaleCategoryResultDiscarded(t *testing.T) {
	b, _ := newTestBrowser(t, sampleRepo())
	ctx := context.Background()

	grass := b.SetCategory("grass")
	require.NotNil(t, grass)
	water := b.SetCategory("water")
	require.NotNil(t, water)
	assert.Greater(t, water.Generation, grass.Generation)

	waterResult := b.ResolveCategory(ctx, *water)
	grassResult := b.ResolveCategory(ctx, *grass)

	// water resolves first, then the superseded grass request arrives
	assert.True(t, b.ApplyCategory(waterResult))
	assert.False(t, b.ApplyCategory(grassResult))
	assert.Equal(t, []string{"squirtle", "totodile"}, names(b.Result()))

	// and the reverse arrival order ends the same way
	grass = b.SetCategory("grass")
	water = b.SetCategory("water")
	assert.False(t, b.ApplyCategory(b.ResolveCategory(ctx, *grass)))
	assert.True(t, b.Pending())
	assert.True(t, b.ApplyCategory(b.ResolveCategory(ctx, *water)))
	assert.False(t, b.Pending())
	assert.Equal(t, []string{"squirtle", "totodile"}, names(b.Result()))
}

func TestBrowser_ReselectingSameCategoryStillSupersedes(t *testing.T) {
	b, _ := newTestBrowser(t, sampleRepo())
	ctx := context.Background()

	first := b.SetCategory("water")
	second := b.SetCategory("water")

	assert.False(t, b.ApplyCategory(b.ResolveCategory(ctx, *first)))
	assert.True(t, b.ApplyCategory(b.ResolveCategory(ctx, *second)))
}

func TestBrowser_ClearWhilePendingDiscardsResult(t *testing.T) {
	b, _ := newTestBrowser(t, sampleRepo())

	req := b.SetCategory("grass")
	require.NotNil(t, req)
	assert.Nil(t, b.SetCategory(""))
	assert.False(t, b.Pending())

	assert.False(t, b.ApplyCategory(b.ResolveCategory(context.Background(), *req)))
	assert.Equal(t, sampleCatalog(), b.Result())
}

func TestBrowser_InterimStateKeepsOldBaseWithoutEmptyNotice(t *testing.T) {
	b, obs := newTestBrowser(t, sampleRepo())

	require.NoError(t, b.SetRange("Gen III"))
	b.SetQuery("tor")
	require.Equal(t, []string{"torchic"}, names(b.Result()))

	b.SetQuery("squirtle")
	require.Len(t, obs.notices, 1)
	assert.Equal(t, NoticeEmpty, obs.notices[0].Kind)

	// interim recomputation against the stale base stays silent
	req := b.SetCategory("water")
	assert.Empty(t, b.Result())
	assert.Len(t, obs.notices, 1)

	b.ApplyCategory(b.ResolveCategory(context.Background(), *req))
	require.Len(t, obs.notices, 2)
	assert.Equal(t, EmptyResultMessage, obs.notices[1].Message)
}

func TestBrowser_DisjointFacetsYieldEmptyNotice(t *testing.T) {
	b, obs := newTestBrowser(t, sampleRepo())

	selectCategory(b, "water")
	require.NoError(t, b.SetRange("Gen III"))

	assert.Empty(t, b.Result())
	require.NotEmpty(t, obs.notices)
	last := obs.notices[len(obs.notices)-1]
	assert.Equal(t, NoticeEmpty, last.Kind)
	assert.Equal(t, EmptyResultMessage, last.Message)
}

func TestBrowser_ResultIsCopy(t *testing.T) {
	b, _ := newTestBrowser(t, sampleRepo())

	got := b.Result()
	got[0].Name = "changed"
	assert.Equal(t, "bulbasaur", b.Result()[0].Name)
}

func TestBrowser_CatalogInstallKeepsAppliedCategory(t *testing.T) {
	b, obs := newTestBrowser(t, sampleRepo())

	selectCategory(b, "water")
	require.Equal(t, []string{"squirtle", "totodile"}, names(b.Result()))

	refreshed := append(sampleCatalog(), entry(258, "mudkip"))
	b.InstallCatalog(refreshed, nil)

	assert.Equal(t, "water", b.Facets().Category)
	assert.Equal(t, []string{"squirtle", "totodile"}, names(b.Result()))
	assert.Equal(t, []string{"squirtle", "totodile"}, names(obs.last()))
	assert.Equal(t, len(refreshed), b.CatalogSize())

	// clearing afterwards shows the refreshed catalog
	selectCategory(b, "")
	assert.Equal(t, refreshed, b.Result())
}

func TestBrowser_CatalogInstallKeepsFailedCategoryEmpty(t *testing.T) {
	repo := sampleRepo()
	repo.memberErr["fire"] = &domain.FetchError{Op: "get type fire", StatusCode: 500}
	b, _ := newTestBrowser(t, repo)

	selectCategory(b, "fire")
	require.Empty(t, b.Result())

	b.InstallCatalog(sampleCatalog(), nil)
	assert.Empty(t, b.Result())
}

func TestBrowser_CatalogArrivesWhileCategoryPending(t *testing.T) {
	repo := sampleRepo()
	obs := &recordingObserver{}
	b := NewBrowser(NewStore(repo, 0, nil), NewResolver(repo, 50, nil), domain.Generations, obs, nil)

	req := b.SetCategory("water")
	require.NotNil(t, req)
	assert.Empty(t, b.Result())

	// the interim list follows the catalog until the members arrive
	b.InstallCatalog(sampleCatalog(), nil)
	assert.True(t, b.Pending())
	assert.Equal(t, sampleCatalog(), b.Result())

	require.True(t, b.ApplyCategory(b.ResolveCategory(context.Background(), *req)))
	assert.Equal(t, []string{"squirtle", "totodile"}, names(b.Result()))
	assert.Empty(t, obs.notices)
}

func TestBrowser_CatalogArrivesAfterCategoryApplied(t *testing.T) {
	repo := sampleRepo()
	b := NewBrowser(NewStore(repo, 0, nil), NewResolver(repo, 50, nil), domain.Generations, nil, nil)

	selectCategory(b, "water")
	require.Equal(t, []string{"squirtle", "totodile"}, names(b.Result()))

	b.InstallCatalog(sampleCatalog(), nil)
	assert.Equal(t, []string{"squirtle", "totodile"}, names(b.Result()))
}
