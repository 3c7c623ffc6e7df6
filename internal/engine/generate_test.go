package engine

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}

func TestGenerateCoversEveryCategoryWithoutRepeats(t *testing.T) {
	c := DefaultCatalog()
	for seed := int64(1); seed <= 200; seed++ {
		qs := Generate(rand.New(rand.NewSource(seed)), c, counterIDs("q"))
		require.Len(t, qs, QuestSetSize, "seed %d", seed)

		cats := map[Category]int{}
		titles := map[string]bool{}
		ids := map[string]bool{}
		for _, q := range qs {
			cats[q.Category]++
			assert.False(t, titles[q.Title], "seed %d: duplicate %q", seed, q.Title)
			titles[q.Title] = true
			ids[q.ID] = true
			assert.False(t, q.Completed)
			assert.True(t, q.valid(), "seed %d: %+v", seed, q)
		}
		assert.Len(t, ids, QuestSetSize)
		for _, cat := range Categories {
			assert.GreaterOrEqual(t, cats[cat], 1, "seed %d: no %s quest", seed, cat)
		}
	}
}

func TestGenerateFirstPicksFollowPoolOrder(t *testing.T) {
	qs := Generate(rand.New(rand.NewSource(7)), DefaultCatalog(), counterIDs("q"))
	require.Len(t, qs, QuestSetSize)
	assert.Equal(t, CategoryPhysical, qs[0].Category)
	assert.Equal(t, CategoryMental, qs[1].Category)
	assert.Equal(t, CategoryIntelligence, qs[2].Category)
}

func TestGenerateDegradesOnSmallCatalog(t *testing.T) {
	full := DefaultCatalog()
	small := Catalog{
		Physical:     full.Physical[:1],
		Intelligence: full.Intelligence[:2],
	}

	qs := Generate(rand.New(rand.NewSource(1)), small, counterIDs("q"))
	require.Len(t, qs, 3, "only three templates exist")
	assert.Equal(t, CategoryPhysical, qs[0].Category)

	assert.Empty(t, Generate(rand.New(rand.NewSource(1)), Catalog{}, counterIDs("q")))
}

func TestGenerateIsDeterministicForSeed(t *testing.T) {
	a := Generate(rand.New(rand.NewSource(42)), DefaultCatalog(), counterIDs("q"))
	b := Generate(rand.New(rand.NewSource(42)), DefaultCatalog(), counterIDs("q"))
	assert.Equal(t, a, b)
}

func TestCatalogValidate(t *testing.T) {
	require.NoError(t, DefaultCatalog().Validate())
	assert.Equal(t, 12, DefaultCatalog().Size())

	bad := DefaultCatalog()
	bad.Mental = append([]Template(nil), bad.Mental...)
	bad.Mental[0].StatBonus.Type = "luck"
	assert.ErrorContains(t, bad.Validate(), "invalid stat")

	misfiled := DefaultCatalog()
	misfiled.Physical = append(misfiled.Physical, misfiled.Mental[0])
	assert.ErrorContains(t, misfiled.Validate(), "does not match pool")
}
