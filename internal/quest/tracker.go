package quest

import (
	"fmt"
	"slices"
	"time"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
	"github.com/punaab/discord-ts-UQkA/internal/economy"
	"github.com/punaab/discord-ts-UQkA/internal/utils"
)

// Tracker drives quest and achievement progress on an in-memory account.
// It never touches storage; callers persist the account afterwards.
type Tracker struct {
	catalog *Catalog
	rnd     utils.Random
}

// NewTracker creates a tracker over catalog
func NewTracker(catalog *Catalog, rnd utils.Random) *Tracker {
	return &Tracker{catalog: catalog, rnd: rnd}
}

// Catalog returns the definitions the tracker uses
func (t *Tracker) Catalog() *Catalog {
	return t.catalog
}

// Roll picks a template for cycle uniformly and starts it at zero progress
func (t *Tracker) Roll(cycle domain.QuestCycle, now time.Time) *domain.QuestProgress {
	pool := t.catalog.Templates(cycle)
	tmpl := pool[t.rnd.Intn(len(pool))]
	tmpl.RequiredTypes = slices.Clone(tmpl.RequiredTypes)
	if tmpl.RequiredRarity != nil {
		r := *tmpl.RequiredRarity
		tmpl.RequiredRarity = &r
	}
	return &domain.QuestProgress{
		QuestTemplate: tmpl,
		Cycle:         cycle,
		StartedAt:     now,
	}
}

// Expired reports whether the slot must be re-rolled at now
func Expired(q *domain.QuestProgress, cycle domain.QuestCycle, now time.Time) bool {
	return q == nil || now.Sub(q.StartedAt) > cycle.Duration()
}

// EnsureCycles re-rolls absent or expired slots and returns the cycles that changed
func (t *Tracker) EnsureCycles(account *domain.Account, now time.Time) []domain.QuestCycle {
	var rolled []domain.QuestCycle
	for _, cycle := range []domain.QuestCycle{domain.CycleDaily, domain.CycleWeekly} {
		if Expired(account.Quests.Slot(cycle), cycle, now) {
			account.Quests.SetSlot(cycle, t.Roll(cycle, now))
			rolled = append(rolled, cycle)
		}
	}
	return rolled
}

// Qualifies reports whether fruit counts toward tmpl. Ungated templates
// count everything; otherwise either gate admits the fruit.
func Qualifies(tmpl domain.QuestTemplate, fruit *domain.Fruit) bool {
	if tmpl.RequiredRarity == nil && len(tmpl.RequiredTypes) == 0 {
		return true
	}
	if tmpl.RequiredRarity != nil && fruit.Rarity.AtLeast(*tmpl.RequiredRarity) {
		return true
	}
	return slices.Contains(tmpl.RequiredTypes, fruit.Name)
}

// ApplyFruits adds qualifying fruits to both slots. Progress is not
// clamped at the target. Returns the cycles that became completed.
func (t *Tracker) ApplyFruits(account *domain.Account, fruits []*domain.Fruit) []domain.QuestCycle {
	var completed []domain.QuestCycle
	for _, cycle := range []domain.QuestCycle{domain.CycleDaily, domain.CycleWeekly} {
		q := account.Quests.Slot(cycle)
		if q == nil {
			continue
		}
		before := q.State()
		for _, f := range fruits {
			if Qualifies(q.QuestTemplate, f) {
				q.Progress++
			}
		}
		if before != domain.QuestCompleted && q.State() == domain.QuestCompleted {
			completed = append(completed, cycle)
		}
	}
	return completed
}

// Claim pays a completed quest and immediately re-rolls the slot, so a
// second claim finds a fresh active quest and fails.
func (t *Tracker) Claim(account *domain.Account, cycle domain.QuestCycle, now time.Time) (*domain.QuestClaimResult, error) {
	if !cycle.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCycle, cycle)
	}
	q := account.Quests.Slot(cycle)
	if q == nil {
		return nil, fmt.Errorf("%w: no %s quest", domain.ErrQuestNotFound, cycle)
	}
	if q.State() != domain.QuestCompleted {
		return nil, fmt.Errorf("%w: %s is %d/%d", domain.ErrQuestNotCompleted, q.Type, q.Progress, q.Target)
	}

	account.Coins += q.Reward.Coins
	account.Gems += q.Reward.Gems

	next := t.Roll(cycle, now)
	account.Quests.SetSlot(cycle, next)

	return &domain.QuestClaimResult{
		Cycle:   cycle,
		Claimed: q.QuestTemplate,
		Reward:  q.Reward,
		Next:    next,
		Coins:   account.Coins,
		Gems:    account.Gems,
	}, nil
}

// Board renders both slots with their derived states
func Board(account *domain.Account) *domain.QuestBoard {
	view := func(cycle domain.QuestCycle) domain.QuestView {
		q := account.Quests.Slot(cycle)
		v := domain.QuestView{Cycle: cycle, State: q.State(), Quest: q}
		if q != nil {
			exp := q.ExpiresAt()
			v.ExpiresAt = &exp
		}
		return v
	}
	return &domain.QuestBoard{
		AccountKey: account.Key,
		Daily:      view(domain.CycleDaily),
		Weekly:     view(domain.CycleWeekly),
	}
}

// RefreshAchievements sets every record's progress to the current stat
// value, creating records the first time a stat is positive. Completion
// latches. Returns the names that became completed.
func (t *Tracker) RefreshAchievements(account *domain.Account) []string {
	var completed []string
	for _, def := range t.catalog.Achievements() {
		value, ok := account.StatValue(def.Requirements.Stat)
		if !ok {
			continue
		}
		rec := account.Achievement(def.Name)
		if rec == nil {
			if value <= 0 {
				continue
			}
			rec = &domain.AchievementRecord{Name: def.Name}
			account.Achievements = append(account.Achievements, rec)
		}
		rec.Progress = value
		if !rec.Completed && value >= def.Requirements.Target {
			rec.Completed = true
			completed = append(completed, def.Name)
		}
	}
	return completed
}

// ClaimAchievement pays an achievement exactly once
func (t *Tracker) ClaimAchievement(account *domain.Account, name string) (*domain.AchievementClaimResult, error) {
	def, ok := t.catalog.Achievement(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrAchievementNotFound, name)
	}
	rec := account.Achievement(name)
	if rec == nil || !rec.Completed {
		return nil, fmt.Errorf("%w: %q", domain.ErrAchievementNotCompleted, name)
	}
	if rec.Claimed {
		return nil, fmt.Errorf("%w: %q", domain.ErrAchievementAlreadyClaimed, name)
	}

	account.Coins += def.Rewards.Coins
	account.Gems += def.Rewards.Gems
	progress := economy.GrantXP(account, def.Rewards.XP)
	rec.Claimed = true

	return &domain.AchievementClaimResult{
		Name:    def.Name,
		Reward:  def.Rewards,
		Coins:   account.Coins,
		Gems:    account.Gems,
		XP:      account.XP,
		Level:   account.Level,
		LevelUp: progress.LeveledUp(),
	}, nil
}

// AchievementViews pairs every definition with the account's record
func (t *Tracker) AchievementViews(account *domain.Account) []domain.AchievementView {
	views := make([]domain.AchievementView, 0, len(t.catalog.Achievements()))
	for _, def := range t.catalog.Achievements() {
		v := domain.AchievementView{Achievement: def}
		if rec := account.Achievement(def.Name); rec != nil {
			v.Progress = rec.Progress
			v.Completed = rec.Completed
			v.Claimed = rec.Claimed
		}
		views = append(views, v)
	}
	return views
}
