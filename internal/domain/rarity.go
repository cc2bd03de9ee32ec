package domain

import (
	"fmt"
	"strings"
)

// Rarity is one of the five ordered fruit tiers. The zero value is Common.
type Rarity int

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityLegendary
	RarityMythic
)

// Rarities lists every tier in ascending order. Weight tables and reports walk this order.
var Rarities = []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityLegendary, RarityMythic}

var rarityNames = [...]string{"common", "uncommon", "rare", "legendary", "mythic"}

func (r Rarity) String() string {
	if !r.Valid() {
		return fmt.Sprintf("rarity(%d)", int(r))
	}
	return rarityNames[r]
}

// Valid reports whether r is one of the defined tiers
func (r Rarity) Valid() bool {
	return r >= RarityCommon && r <= RarityMythic
}

// AtLeast reports whether r is ranked the same as or above other
func (r Rarity) AtLeast(other Rarity) bool {
	return r >= other
}

// ParseRarity converts a lowercase tier name into a Rarity
func ParseRarity(s string) (Rarity, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range rarityNames {
		if n == name {
			return Rarity(i), nil
		}
	}
	return RarityCommon, fmt.Errorf("%w: %q", ErrInvalidRarity, s)
}

// MarshalText stores rarities by name in JSON and JSONB columns
func (r Rarity) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRarity, int(r))
	}
	return []byte(r.String()), nil
}

func (r *Rarity) UnmarshalText(text []byte) error {
	parsed, err := ParseRarity(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
