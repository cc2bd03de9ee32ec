package quest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
	"github.com/punaab/discord-ts-UQkA/internal/utils"
)

var now = time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

func fruit(name string, r domain.Rarity) *domain.Fruit {
	return &domain.Fruit{ID: name, Name: name, Rarity: r}
}

func TestTracker_Roll(t *testing.T) {
	tr := NewTracker(testCatalog(t), utils.NewSequenceRandom(nil, []int{1}))

	q := tr.Roll(domain.CycleDaily, now)

	assert.Equal(t, "Rare Hunter", q.Type)
	assert.Equal(t, domain.CycleDaily, q.Cycle)
	assert.Equal(t, 0, q.Progress)
	assert.Equal(t, now, q.StartedAt)
	assert.Equal(t, domain.QuestActive, q.State())

	// the rolled copy does not alias the catalog template
	*q.RequiredRarity = domain.RarityMythic
	assert.Equal(t, domain.RarityRare, *testCatalog(t).Templates(domain.CycleDaily)[1].RequiredRarity)
}

func TestExpired(t *testing.T) {
	q := &domain.QuestProgress{Cycle: domain.CycleDaily, StartedAt: now}

	assert.True(t, Expired(nil, domain.CycleDaily, now))
	assert.False(t, Expired(q, domain.CycleDaily, now.Add(24*time.Hour)), "exactly one cycle is still current")
	assert.True(t, Expired(q, domain.CycleDaily, now.Add(24*time.Hour+time.Second)))
	assert.False(t, Expired(q, domain.CycleWeekly, now.Add(6*24*time.Hour)))
	assert.True(t, Expired(q, domain.CycleWeekly, now.Add(7*24*time.Hour+time.Second)))
}

func TestTracker_EnsureCycles(t *testing.T) {
	tr := NewTracker(testCatalog(t), utils.NewSequenceRandom(nil, []int{0}))
	acct := domain.NewAccount("k", "u", now)

	rolled := tr.EnsureCycles(acct, now)
	assert.Equal(t, []domain.QuestCycle{domain.CycleDaily, domain.CycleWeekly}, rolled)
	require.NotNil(t, acct.Quests.Daily)
	require.NotNil(t, acct.Quests.Weekly)

	assert.Empty(t, tr.EnsureCycles(acct, now.Add(time.Hour)))

	rolled = tr.EnsureCycles(acct, now.Add(25*time.Hour))
	assert.Equal(t, []domain.QuestCycle{domain.CycleDaily}, rolled)
}

func TestQualifies(t *testing.T) {
	ungated := domain.QuestTemplate{Target: 1}
	rareGate := domain.QuestTemplate{Target: 1, RequiredRarity: rarityPtr(domain.RarityRare)}
	typeGate := domain.QuestTemplate{Target: 1, RequiredTypes: []string{"Apple"}}
	both := domain.QuestTemplate{Target: 1, RequiredRarity: rarityPtr(domain.RarityMythic), RequiredTypes: []string{"Apple"}}

	tests := []struct {
		name  string
		tmpl  domain.QuestTemplate
		fruit *domain.Fruit
		want  bool
	}{
		{"ungated counts everything", ungated, fruit("Banana", domain.RarityCommon), true},
		{"rarity gate admits equal tier", rareGate, fruit("Kiwi", domain.RarityRare), true},
		{"rarity gate admits higher tier", rareGate, fruit("Moon Berry", domain.RarityMythic), true},
		{"rarity gate rejects lower tier", rareGate, fruit("Grape", domain.RarityUncommon), false},
		{"type gate admits listed type", typeGate, fruit("Apple", domain.RarityCommon), true},
		{"type gate rejects others", typeGate, fruit("Banana", domain.RarityCommon), false},
		{"either gate admits", both, fruit("Apple", domain.RarityCommon), true},
		{"neither gate admits", both, fruit("Kiwi", domain.RarityRare), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Qualifies(tt.tmpl, tt.fruit))
		})
	}
}

func TestTracker_ApplyFruits(t *testing.T) {
	tr := NewTracker(testCatalog(t), utils.NewSequenceRandom(nil, []int{0}))
	acct := domain.NewAccount("k", "u", now)
	tr.EnsureCycles(acct, now) // daily: Fruit Collector (3), weekly: Apple Fan (2)

	completed := tr.ApplyFruits(acct, []*domain.Fruit{fruit("Apple", domain.RarityCommon), fruit("Banana", domain.RarityCommon)})
	assert.Empty(t, completed)
	assert.Equal(t, 2, acct.Quests.Daily.Progress)
	assert.Equal(t, 1, acct.Quests.Weekly.Progress)

	completed = tr.ApplyFruits(acct, []*domain.Fruit{
		fruit("Apple", domain.RarityCommon), fruit("Apple", domain.RarityCommon), fruit("Kiwi", domain.RarityRare),
	})
	assert.ElementsMatch(t, []domain.QuestCycle{domain.CycleDaily, domain.CycleWeekly}, completed)
	assert.Equal(t, 5, acct.Quests.Daily.Progress, "progress is not clamped at target")
	assert.Equal(t, 3, acct.Quests.Weekly.Progress)

	// already completed slots are not reported again
	assert.Empty(t, tr.ApplyFruits(acct, []*domain.Fruit{fruit("Apple", domain.RarityCommon)}))
}

func TestTracker_Claim(t *testing.T) {
	t.Run("not completed", func(t *testing.T) {
		tr := NewTracker(testCatalog(t), utils.NewSequenceRandom(nil, []int{0}))
		acct := domain.NewAccount("k", "u", now)
		tr.EnsureCycles(acct, now)

		_, err := tr.Claim(acct, domain.CycleDaily, now)

		assert.ErrorIs(t, err, domain.ErrQuestNotCompleted)
		assert.Equal(t, 0, acct.Coins)
	})

	t.Run("absent slot", func(t *testing.T) {
		tr := NewTracker(testCatalog(t), utils.NewSequenceRandom(nil, []int{0}))
		_, err := tr.Claim(domain.NewAccount("k", "u", now), domain.CycleWeekly, now)
		assert.ErrorIs(t, err, domain.ErrQuestNotFound)
	})

	t.Run("invalid cycle", func(t *testing.T) {
		tr := NewTracker(testCatalog(t), utils.NewSequenceRandom(nil, []int{0}))
		_, err := tr.Claim(domain.NewAccount("k", "u", now), "monthly", now)
		assert.ErrorIs(t, err, domain.ErrInvalidCycle)
	})

	t.Run("completed claim pays once and re-rolls", func(t *testing.T) {
		// ARRANGE
		tr := NewTracker(testCatalog(t), utils.NewSequenceRandom(nil, []int{0}))
		acct := domain.NewAccount("k", "u", now)
		tr.EnsureCycles(acct, now)
		acct.Quests.Daily.Progress = 4
		later := now.Add(2 * time.Hour)

		// ACT
		res, err := tr.Claim(acct, domain.CycleDaily, later)

		// ASSERT
		require.NoError(t, err)
		assert.Equal(t, "Fruit Collector", res.Claimed.Type)
		assert.Equal(t, 50, acct.Coins)
		assert.Equal(t, 1, acct.Gems)
		assert.Equal(t, 0, acct.Stats.TotalEarned, "quest rewards are not counted as earnings")
		require.NotNil(t, res.Next)
		assert.Equal(t, later, acct.Quests.Daily.StartedAt)
		assert.Equal(t, 0, acct.Quests.Daily.Progress)

		_, err = tr.Claim(acct, domain.CycleDaily, later)
		assert.ErrorIs(t, err, domain.ErrQuestNotCompleted)
		assert.Equal(t, 50, acct.Coins, "double claim pays once")
	})
}

func TestBoard(t *testing.T) {
	tr := NewTracker(testCatalog(t), utils.NewSequenceRandom(nil, []int{0}))
	acct := domain.NewAccount("k", "u", now)

	empty := Board(acct)
	assert.Equal(t, domain.QuestAbsent, empty.Daily.State)
	assert.Nil(t, empty.Daily.ExpiresAt)

	tr.EnsureCycles(acct, now)
	acct.Quests.Weekly.Progress = 2
	board := Board(acct)
	assert.Equal(t, domain.QuestActive, board.Daily.State)
	assert.Equal(t, domain.QuestCompleted, board.Weekly.State)
	require.NotNil(t, board.Daily.ExpiresAt)
	assert.Equal(t, now.Add(24*time.Hour), *board.Daily.ExpiresAt)
	assert.Equal(t, now.Add(7*24*time.Hour), *board.Weekly.ExpiresAt)
}

func TestTracker_RefreshAchievements(t *testing.T) {
	tr := NewTracker(testCatalog(t), utils.NewSequenceRandom(nil, nil))
	acct := domain.NewAccount("k", "u", now)

	assert.Empty(t, tr.RefreshAchievements(acct))
	assert.Empty(t, acct.Achievements, "records are created lazily")

	acct.Coins = 40
	assert.Empty(t, tr.RefreshAchievements(acct))
	require.Len(t, acct.Achievements, 1)
	assert.Equal(t, 40, acct.Achievement("Piggy Bank").Progress)

	acct.Stats.TotalPicked = 1
	acct.Coins = 120
	assert.ElementsMatch(t, []string{"First Harvest", "Piggy Bank"}, tr.RefreshAchievements(acct))

	acct.Coins = 5
	assert.Empty(t, tr.RefreshAchievements(acct))
	rec := acct.Achievement("Piggy Bank")
	assert.True(t, rec.Completed, "completion latches")
	assert.Equal(t, 5, rec.Progress)
}

func TestTracker_ClaimAchievement(t *testing.T) {
	tr := NewTracker(testCatalog(t), utils.NewSequenceRandom(nil, nil))

	t.Run("unknown", func(t *testing.T) {
		_, err := tr.ClaimAchievement(domain.NewAccount("k", "u", now), "Nope")
		assert.ErrorIs(t, err, domain.ErrAchievementNotFound)
	})

	t.Run("not completed", func(t *testing.T) {
		_, err := tr.ClaimAchievement(domain.NewAccount("k", "u", now), "First Harvest")
		assert.ErrorIs(t, err, domain.ErrAchievementNotCompleted)
	})

	t.Run("claims once with xp and level", func(t *testing.T) {
		// ARRANGE
		acct := domain.NewAccount("k", "u", now)
		acct.Coins = 100
		tr.RefreshAchievements(acct)

		// ACT
		res, err := tr.ClaimAchievement(acct, "Piggy Bank")

		// ASSERT
		require.NoError(t, err)
		assert.Equal(t, 110, res.Coins)
		assert.Equal(t, 1, res.Gems)
		assert.Equal(t, 1000, res.XP)
		assert.Equal(t, 4, res.Level)
		assert.True(t, res.LevelUp)
		assert.True(t, acct.Achievement("Piggy Bank").Claimed)

		_, err = tr.ClaimAchievement(acct, "Piggy Bank")
		assert.ErrorIs(t, err, domain.ErrAchievementAlreadyClaimed)
		assert.Equal(t, 110, acct.Coins)
	})
}

func TestTracker_AchievementViews(t *testing.T) {
	tr := NewTracker(testCatalog(t), utils.NewSequenceRandom(nil, nil))
	acct := domain.NewAccount("k", "u", now)
	acct.Stats.TotalPicked = 3
	tr.RefreshAchievements(acct)

	views := tr.AchievementViews(acct)

	require.Len(t, views, 2)
	assert.Equal(t, "First Harvest", views[0].Name)
	assert.True(t, views[0].Completed)
	assert.Equal(t, 3, views[0].Progress)
	assert.False(t, views[1].Completed)
	assert.Equal(t, 0, views[1].Progress)
}
