package domain

import "time"

// QuestCycle is the recurrence window of a quest slot
type QuestCycle string

const (
	CycleDaily  QuestCycle = "daily"
	CycleWeekly QuestCycle = "weekly"
)

// Duration returns the cycle length
func (c QuestCycle) Duration() time.Duration {
	switch c {
	case CycleWeekly:
		return 7 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// Valid reports whether c names a known cycle
func (c QuestCycle) Valid() bool {
	return c == CycleDaily || c == CycleWeekly
}

// QuestState is the lifecycle state of a quest slot
type QuestState string

const (
	QuestAbsent    QuestState = "absent"
	QuestActive    QuestState = "active"
	QuestCompleted QuestState = "completed"
	QuestClaimed   QuestState = "claimed"
)

// QuestReward is paid out when a completed quest is claimed
type QuestReward struct {
	Coins int `json:"coins"`
	Gems  int `json:"gems"`
}

// QuestTemplate is a catalog entry a quest slot is rolled from
type QuestTemplate struct {
	Type           string      `json:"type"`
	Description    string      `json:"description"`
	Target         int         `json:"target"`
	Reward         QuestReward `json:"reward"`
	RequiredRarity *Rarity     `json:"required_rarity,omitempty"`
	RequiredTypes  []string    `json:"required_types,omitempty"`
}

// QuestProgress is an active quest embedded in an account
type QuestProgress struct {
	QuestTemplate
	Cycle     QuestCycle `json:"cycle"`
	Progress  int        `json:"progress"`
	StartedAt time.Time  `json:"started_at"`
}

// State derives the lifecycle state. Claimed is never stored: claiming re-rolls the slot.
func (q *QuestProgress) State() QuestState {
	if q == nil {
		return QuestAbsent
	}
	if q.Progress >= q.Target {
		return QuestCompleted
	}
	return QuestActive
}

// ExpiresAt is when the cycle ends and the slot is re-rolled
func (q *QuestProgress) ExpiresAt() time.Time {
	return q.StartedAt.Add(q.Cycle.Duration())
}

// QuestSlots holds the daily and weekly quest of an account
type QuestSlots struct {
	Daily  *QuestProgress `json:"daily,omitempty"`
	Weekly *QuestProgress `json:"weekly,omitempty"`
}

// Slot returns the quest for a cycle
func (s *QuestSlots) Slot(cycle QuestCycle) *QuestProgress {
	if cycle == CycleWeekly {
		return s.Weekly
	}
	return s.Daily
}

// SetSlot replaces the quest for a cycle
func (s *QuestSlots) SetSlot(cycle QuestCycle, q *QuestProgress) {
	if cycle == CycleWeekly {
		s.Weekly = q
		return
	}
	s.Daily = q
}

func (s QuestSlots) clone() QuestSlots {
	return QuestSlots{Daily: s.Daily.clone(), Weekly: s.Weekly.clone()}
}

func (q *QuestProgress) clone() *QuestProgress {
	if q == nil {
		return nil
	}
	c := *q
	if q.RequiredRarity != nil {
		r := *q.RequiredRarity
		c.RequiredRarity = &r
	}
	c.RequiredTypes = append([]string(nil), q.RequiredTypes...)
	return &c
}

// QuestView is a quest slot as presented to a player
type QuestView struct {
	Cycle     QuestCycle     `json:"cycle"`
	State     QuestState     `json:"state"`
	Quest     *QuestProgress `json:"quest,omitempty"`
	ExpiresAt *time.Time     `json:"expires_at,omitempty"`
}

// QuestBoard is the daily and weekly quest view of one account
type QuestBoard struct {
	AccountKey string    `json:"account_key"`
	Daily      QuestView `json:"daily"`
	Weekly     QuestView `json:"weekly"`
}

// QuestClaimResult is returned after a quest reward has been paid
type QuestClaimResult struct {
	Cycle   QuestCycle     `json:"cycle"`
	Claimed QuestTemplate  `json:"claimed"`
	Reward  QuestReward    `json:"reward"`
	Next    *QuestProgress `json:"next"`
	Coins   int            `json:"coins"`
	Gems    int            `json:"gems"`
}
