package steal

import (
	"time"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
	"github.com/punaab/discord-ts-UQkA/internal/utils"
)

// Success chance tuning
const (
	BaseChance  = 0.30
	LevelFactor = 0.05
	MinChance   = 0.10
	MaxChance   = 0.80
)

// SuccessChance is 0.3 + 0.05 per level of advantage, clamped to [0.10, 0.80]
func SuccessChance(actorLevel, targetLevel int) float64 {
	return utils.ClampFloat(BaseChance+float64(actorLevel-targetLevel)*LevelFactor, MinChance, MaxChance)
}

// Outcome is the adjudicated result of one steal attempt
type Outcome struct {
	Success bool
	Chance  float64
	Fruit   *domain.Fruit
}

// Adjudicator decides steal attempts. It mutates the accounts and the
// chosen fruit in memory; persisting the transfer is the caller's job.
type Adjudicator struct {
	rnd utils.Random
}

// NewAdjudicator creates an Adjudicator drawing from rnd
func NewAdjudicator(rnd utils.Random) *Adjudicator {
	return &Adjudicator{rnd: rnd}
}

// Attempt rolls once against SuccessChance. On success one unsold fruit is
// picked uniformly from targetInventory and moved to actor, and the
// totalPicked stats follow it. actor.LastStealAt is set in both outcomes.
func (a *Adjudicator) Attempt(actor, target *domain.Account, targetInventory []*domain.Fruit, now time.Time) (Outcome, error) {
	if actor.Key == target.Key {
		return Outcome{}, domain.ErrSelfSteal
	}
	candidates := make([]*domain.Fruit, 0, len(targetInventory))
	for _, f := range targetInventory {
		if !f.Sold && f.OwnerKey == target.Key {
			candidates = append(candidates, f)
		}
	}
	if len(candidates) == 0 {
		return Outcome{}, domain.ErrEmptyTargetInventory
	}

	outcome := Outcome{Chance: SuccessChance(actor.Level, target.Level)}
	stealAt := now
	actor.LastStealAt = &stealAt

	if a.rnd.Float64() >= outcome.Chance {
		return outcome, nil
	}

	fruit := candidates[a.rnd.Intn(len(candidates))]
	fruit.OwnerKey = actor.Key
	actor.Stats.TotalPicked++
	if target.Stats.TotalPicked > 0 {
		target.Stats.TotalPicked--
	}
	outcome.Success = true
	outcome.Fruit = fruit
	return outcome, nil
}
