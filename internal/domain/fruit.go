package domain

import "time"

// FruitType is a catalog entry for something that can be picked
type FruitType struct {
	Name      string `json:"name"`
	Emoji     string `json:"emoji"`
	Rarity    Rarity `json:"rarity"`
	BaseValue int    `json:"base_value"`
}

// DisplayName renders the emoji-prefixed name shown to players
func (f FruitType) DisplayName() string {
	return f.Emoji + " " + f.Name
}

// Fruit is a single inventory item. Value is fixed when the fruit is picked.
type Fruit struct {
	ID       string     `json:"id"`
	OwnerKey string     `json:"owner_key"`
	Name     string     `json:"name"`
	Rarity   Rarity     `json:"rarity"`
	Value    int        `json:"value"`
	PickedAt time.Time  `json:"picked_at"`
	Sold     bool       `json:"sold"`
	SoldAt   *time.Time `json:"sold_at,omitempty"`
	SoldFor  int        `json:"sold_for"`
}

// RarityGroup aggregates unsold fruits of one tier
type RarityGroup struct {
	Rarity     Rarity   `json:"rarity"`
	Count      int      `json:"count"`
	TotalValue int      `json:"total_value"`
	Fruits     []*Fruit `json:"fruits"`
}

// InventorySummary is the unsold inventory grouped by rarity
type InventorySummary struct {
	AccountKey string        `json:"account_key"`
	Groups     []RarityGroup `json:"groups"`
	TotalCount int           `json:"total_count"`
	TotalValue int           `json:"total_value"`
}
