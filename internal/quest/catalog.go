package quest

import (
	"fmt"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
	"github.com/punaab/discord-ts-UQkA/internal/utils"
	"github.com/punaab/discord-ts-UQkA/internal/validation"
)

// PoolConfig is the on-disk quest template pool
type PoolConfig struct {
	Version string                 `json:"version"`
	Daily   []domain.QuestTemplate `json:"daily"`
	Weekly  []domain.QuestTemplate `json:"weekly"`
}

// AchievementConfig is the on-disk achievement catalog
type AchievementConfig struct {
	Version      string               `json:"version"`
	Achievements []domain.Achievement `json:"achievements"`
}

// Catalog is the read-only set of quest templates and achievement definitions
type Catalog struct {
	daily        []domain.QuestTemplate
	weekly       []domain.QuestTemplate
	achievements []domain.Achievement
	byName       map[string]int
}

// NewCatalog checks the definitions and indexes achievements by name
func NewCatalog(pool PoolConfig, achievements []domain.Achievement) (*Catalog, error) {
	if len(pool.Daily) == 0 || len(pool.Weekly) == 0 {
		return nil, fmt.Errorf("%w: quest pool needs daily and weekly templates", domain.ErrInvalidInput)
	}
	for _, tmpl := range append(append([]domain.QuestTemplate{}, pool.Daily...), pool.Weekly...) {
		if tmpl.Target <= 0 {
			return nil, fmt.Errorf("%w: quest %q has non-positive target", domain.ErrInvalidInput, tmpl.Type)
		}
	}

	c := &Catalog{
		daily:        pool.Daily,
		weekly:       pool.Weekly,
		achievements: achievements,
		byName:       make(map[string]int, len(achievements)),
	}
	probe := &domain.Account{}
	for i, a := range achievements {
		if _, dup := c.byName[a.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate achievement %q", domain.ErrInvalidInput, a.Name)
		}
		if _, ok := probe.StatValue(a.Requirements.Stat); !ok {
			return nil, fmt.Errorf("%w: achievement %q tracks unknown stat %q", domain.ErrInvalidInput, a.Name, a.Requirements.Stat)
		}
		if a.Requirements.Target <= 0 {
			return nil, fmt.Errorf("%w: achievement %q has non-positive target", domain.ErrInvalidInput, a.Name)
		}
		c.byName[a.Name] = i
	}
	return c, nil
}

// LoadCatalog reads and schema-checks both catalog files
func LoadCatalog(v validation.SchemaValidator, questPath, questSchema, achievementPath, achievementSchema string) (*Catalog, error) {
	questFile, err := validation.FindFile(questPath)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadQuestPool, err)
	}
	if err := v.ValidateFile(questFile, questSchema); err != nil {
		return nil, fmt.Errorf(ErrMsgLoadQuestPool, err)
	}
	var pool PoolConfig
	if err := utils.LoadJSON(questFile, &pool); err != nil {
		return nil, fmt.Errorf(ErrMsgLoadQuestPool, err)
	}

	achievementFile, err := validation.FindFile(achievementPath)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadAchievements, err)
	}
	if err := v.ValidateFile(achievementFile, achievementSchema); err != nil {
		return nil, fmt.Errorf(ErrMsgLoadAchievements, err)
	}
	var achievements AchievementConfig
	if err := utils.LoadJSON(achievementFile, &achievements); err != nil {
		return nil, fmt.Errorf(ErrMsgLoadAchievements, err)
	}

	return NewCatalog(pool, achievements.Achievements)
}

// Templates returns the pool for a cycle
func (c *Catalog) Templates(cycle domain.QuestCycle) []domain.QuestTemplate {
	if cycle == domain.CycleWeekly {
		return c.weekly
	}
	return c.daily
}

// Achievements returns every definition in catalog order
func (c *Catalog) Achievements() []domain.Achievement {
	return c.achievements
}

// Achievement looks up a definition by name
func (c *Catalog) Achievement(name string) (domain.Achievement, bool) {
	i, ok := c.byName[name]
	if !ok {
		return domain.Achievement{}, false
	}
	return c.achievements[i], true
}
