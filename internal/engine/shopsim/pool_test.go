package shopsim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcspirits/spirits-api/internal/engine/shopsim"
	"github.com/arcspirits/spirits-api/internal/entities/spirits"
)

func TestBuildPool(t *testing.T) {
	pool := shopsim.BuildPool(map[spirits.Rarity]int{
		spirits.RarityRare:   2,
		spirits.RarityCommon: 3,
		spirits.RarityMythic: -1,
	})

	// Tier order, negatives dropped.
	assert.Equal(t, []spirits.Rarity{
		spirits.RarityCommon, spirits.RarityCommon, spirits.RarityCommon,
		spirits.RarityRare, spirits.RarityRare,
	}, pool)
}

func TestBuildPoolEmpty(t *testing.T) {
	assert.Empty(t, shopsim.BuildPool(nil))
	assert.Empty(t, shopsim.BuildPool(map[spirits.Rarity]int{spirits.RarityEpic: 0}))
}

func TestDrawFromPoolEmptyPool(t *testing.T) {
	pool := []spirits.Rarity{}
	_, ok := shopsim.DrawFromPool(&pool, nil, true, shopsim.NewSeededRNG(1))
	assert.False(t, ok)
}

func TestDrawFromPoolUnrestricted(t *testing.T) {
	pool := []spirits.Rarity{spirits.RarityCommon, spirits.RarityRare}
	rng := shopsim.NewSeededRNG(1)

	first, ok := shopsim.DrawFromPool(&pool, nil, false, rng)
	require.True(t, ok)
	second, ok := shopsim.DrawFromPool(&pool, nil, false, rng)
	require.True(t, ok)

	assert.ElementsMatch(t, []spirits.Rarity{spirits.RarityCommon, spirits.RarityRare}, []spirits.Rarity{first, second})
	assert.Empty(t, pool)
}

func TestDrawFromPoolAllowedSubset(t *testing.T) {
	pool := []spirits.Rarity{
		spirits.RarityCommon, spirits.RarityCommon, spirits.RarityRare,
	}
	allowed := map[spirits.Rarity]bool{spirits.RarityRare: true}

	drawn, ok := shopsim.DrawFromPool(&pool, allowed, false, shopsim.NewSeededRNG(1))
	require.True(t, ok)
	assert.Equal(t, spirits.RarityRare, drawn)
	assert.Len(t, pool, 2)
}

func TestDrawFromPoolFallback(t *testing.T) {
	allowed := map[spirits.Rarity]bool{spirits.RarityMythic: true}

	// No fallback: ineligible pool means no draw and no mutation.
	pool := []spirits.Rarity{spirits.RarityCommon}
	_, ok := shopsim.DrawFromPool(&pool, allowed, false, shopsim.NewSeededRNG(1))
	assert.False(t, ok)
	assert.Len(t, pool, 1)

	// Fallback: draw uniformly from the whole pool instead.
	drawn, ok := shopsim.DrawFromPool(&pool, allowed, true, shopsim.NewSeededRNG(1))
	require.True(t, ok)
	assert.Equal(t, spirits.RarityCommon, drawn)
	assert.Empty(t, pool)
}
