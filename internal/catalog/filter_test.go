package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/dex/internal/domain"
)

func genI(t *testing.T) *domain.RangeGroup {
	t.Helper()
	g, ok := domain.FindRangeGroup(domain.Generations, "Gen I")
	require.True(t, ok)
	return &g
}

func TestApply_NoFacetsIsIdentity(t *testing.T) {
	base := sampleCatalog()
	assert.Equal(t, base, Apply(base, nil, ""))
}

func TestApply_RangeMembership(t *testing.T) {
	got := Apply(sampleCatalog(), genI(t), "")
	assert.Equal(t, []string{"bulbasaur", "charmander", "charmeleon", "charizard", "squirtle"}, names(got))
	for _, e := range got {
		id, ok := e.NumericID()
		require.True(t, ok)
		assert.True(t, id >= 1 && id <= 151)
	}
}

func TestApply_RangeBoundsInclusive(t *testing.T) {
	base := []domain.Entry{entry(151, "mew"), entry(152, "chikorita"), entry(251, "celebi"), entry(252, "treecko")}
	gen2, _ := domain.FindRangeGroup(domain.Generations, "Gen II")

	assert.Equal(t, []string{"chikorita", "celebi"}, names(Apply(base, &gen2, "")))
}

func TestApply_QueryCaseInsensitive(t *testing.T) {
	got := Apply(sampleCatalog(), nil, "CHAR")
	assert.Equal(t, []string{"charmander", "charmeleon", "charizard"}, names(got))
}

func TestApply_QueryUsesCaseFolding(t *testing.T) {
	base := []domain.Entry{entry(1, "Straße"), entry(2, "flabébé")}

	assert.Equal(t, []string{"Straße"}, names(Apply(base, nil, "STRASSE")))
	assert.Equal(t, []string{"flabébé"}, names(Apply(base, nil, "FLABÉBÉ")))
}

func TestApply_WhitespaceQueryIsBlank(t *testing.T) {
	base := sampleCatalog()
	assert.Equal(t, base, Apply(base, nil, "   \t"))
}

func TestApply_QueryIsTrimmed(t *testing.T) {
	got := Apply(sampleCatalog(), nil, "  squirt ")
	assert.Equal(t, []string{"squirtle"}, names(got))
}

func TestApply_RangeThenQuery(t *testing.T) {
	got := Apply(sampleCatalog(), genI(t), "char")
	assert.Equal(t, []string{"charmander", "charmeleon", "charizard"}, names(got))

	got = Apply(sampleCatalog(), genI(t), "cyndaquil")
	assert.Empty(t, got)
}

func TestApply_Idempotent(t *testing.T) {
	base := sampleCatalog()
	rng := genI(t)

	once := Apply(base, rng, "ch")
	twice := Apply(once, rng, "ch")
	assert.Equal(t, once, twice)
}

func TestApply_PreservesBaseOrder(t *testing.T) {
	base := []domain.Entry{entry(6, "charizard"), entry(4, "charmander"), entry(5, "charmeleon")}
	assert.Equal(t, []string{"charizard", "charmander", "charmeleon"}, names(Apply(base, genI(t), "char")))
}

func TestApply_NonIntegerIDsDroppedOnlyWithRange(t *testing.T) {
	base := []domain.Entry{{ID: "abc", Name: "missingno"}, entry(25, "pikachu")}

	assert.Equal(t, []string{"pikachu"}, names(Apply(base, genI(t), "")))
	assert.Equal(t, []string{"missingno", "pikachu"}, names(Apply(base, nil, "")))
}

func TestApply_EmptyBase(t *testing.T) {
	got := Apply(nil, genI(t), "a")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestApply_OutOfSpaceRange(t *testing.T) {
	far := &domain.RangeGroup{Label: "far", Low: 5000, High: 6000}
	assert.Empty(t, Apply(sampleCatalog(), far, ""))
}

func TestApply_DoesNotAliasBase(t *testing.T) {
	base := sampleCatalog()
	got := Apply(base, nil, "")
	got[0].Name = "changed"
	assert.Equal(t, "bulbasaur", base[0].Name)
}

func TestApply_GenerationAndQueryScenario(t *testing.T) {
	base := []domain.Entry{
		{ID: "1", Name: "Bulbasaur"},
		{ID: "4", Name: "Charmander"},
		{ID: "152", Name: "Chikorita"},
	}

	got := Apply(base, genI(t), "char")
	assert.Equal(t, []domain.Entry{{ID: "4", Name: "Charmander"}}, got)
}
