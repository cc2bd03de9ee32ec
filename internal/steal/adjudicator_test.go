package steal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
	"github.com/punaab/discord-ts-UQkA/internal/utils"
)

func TestSuccessChance(t *testing.T) {
	tests := []struct {
		name   string
		actor  int
		target int
		want   float64
	}{
		{"equal levels", 5, 5, 0.30},
		{"two levels ahead", 7, 5, 0.40},
		{"three levels behind", 2, 5, 0.15},
		{"far behind clamps low", 1, 100, 0.10},
		{"far ahead clamps high", 100, 1, 0.80},
		{"exact upper bound", 15, 5, 0.80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SuccessChance(tt.actor, tt.target), 1e-9)
		})
	}
}

func TestSuccessChance_AlwaysClamped(t *testing.T) {
	for actor := 1; actor <= 120; actor += 7 {
		for target := 1; target <= 120; target += 11 {
			c := SuccessChance(actor, target)
			assert.GreaterOrEqual(t, c, MinChance)
			assert.LessOrEqual(t, c, MaxChance)
		}
	}
}

func newPair() (*domain.Account, *domain.Account, []*domain.Fruit) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	actor := domain.NewAccount("a", "alice", now)
	target := domain.NewAccount("b", "bob", now)
	target.Stats.TotalPicked = 2
	inv := []*domain.Fruit{
		{ID: "f1", OwnerKey: "b", Name: "Apple", Rarity: domain.RarityCommon, Value: 10},
		{ID: "f2", OwnerKey: "b", Name: "Kiwi", Rarity: domain.RarityRare, Value: 25},
	}
	return actor, target, inv
}

func TestAdjudicator_Attempt(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("success transfers the chosen fruit", func(t *testing.T) {
		// ARRANGE
		actor, target, inv := newPair()
		adj := NewAdjudicator(utils.NewSequenceRandom([]float64{0.29}, []int{1}))

		// ACT
		out, err := adj.Attempt(actor, target, inv, now)

		// ASSERT
		require.NoError(t, err)
		assert.True(t, out.Success)
		assert.InDelta(t, 0.30, out.Chance, 1e-9)
		require.NotNil(t, out.Fruit)
		assert.Equal(t, "f2", out.Fruit.ID)
		assert.Equal(t, "a", out.Fruit.OwnerKey)
		assert.Equal(t, 1, actor.Stats.TotalPicked)
		assert.Equal(t, 1, target.Stats.TotalPicked)
		require.NotNil(t, actor.LastStealAt)
		assert.Equal(t, now, *actor.LastStealAt)
	})

	t.Run("failure leaves inventory alone but sets cooldown", func(t *testing.T) {
		actor, target, inv := newPair()
		adj := NewAdjudicator(utils.NewSequenceRandom([]float64{0.30}, nil))

		out, err := adj.Attempt(actor, target, inv, now)

		require.NoError(t, err)
		assert.False(t, out.Success)
		assert.Nil(t, out.Fruit)
		assert.Equal(t, "b", inv[0].OwnerKey)
		assert.Equal(t, "b", inv[1].OwnerKey)
		assert.Equal(t, 0, actor.Stats.TotalPicked)
		assert.Equal(t, 2, target.Stats.TotalPicked)
		require.NotNil(t, actor.LastStealAt)
	})

	t.Run("self steal rejected before roll", func(t *testing.T) {
		actor, _, inv := newPair()
		_, err := NewAdjudicator(utils.NewSequenceRandom(nil, nil)).Attempt(actor, actor, inv, now)
		assert.ErrorIs(t, err, domain.ErrSelfSteal)
		assert.Nil(t, actor.LastStealAt)
	})

	t.Run("empty or sold inventory rejected", func(t *testing.T) {
		actor, target, inv := newPair()
		for _, f := range inv {
			f.Sold = true
		}
		_, err := NewAdjudicator(utils.NewSequenceRandom(nil, nil)).Attempt(actor, target, inv, now)
		assert.ErrorIs(t, err, domain.ErrEmptyTargetInventory)
		assert.True(t, domain.IsInvalidTarget(err))
		assert.Nil(t, actor.LastStealAt)
	})

	t.Run("target stat never goes negative", func(t *testing.T) {
		actor, target, inv := newPair()
		target.Stats.TotalPicked = 0
		_, err := NewAdjudicator(utils.NewSequenceRandom([]float64{0}, []int{0})).Attempt(actor, target, inv, now)
		require.NoError(t, err)
		assert.Equal(t, 0, target.Stats.TotalPicked)
	})
}
