package economy

import "github.com/punaab/discord-ts-UQkA/internal/domain"

// Fruits is the catalog of everything that can be picked
var Fruits = []domain.FruitType{
	{Name: "Apple", Emoji: "🍎", Rarity: domain.RarityCommon, BaseValue: 10},
	{Name: "Banana", Emoji: "🍌", Rarity: domain.RarityCommon, BaseValue: 8},
	{Name: "Orange", Emoji: "🍊", Rarity: domain.RarityCommon, BaseValue: 12},
	{Name: "Grape", Emoji: "🍇", Rarity: domain.RarityUncommon, BaseValue: 15},
	{Name: "Strawberry", Emoji: "🍓", Rarity: domain.RarityUncommon, BaseValue: 18},
	{Name: "Kiwi", Emoji: "🥝", Rarity: domain.RarityRare, BaseValue: 25},
	{Name: "Pineapple", Emoji: "🍍", Rarity: domain.RarityRare, BaseValue: 30},
	{Name: "Golden Apple", Emoji: "🌟", Rarity: domain.RarityLegendary, BaseValue: 100},
	{Name: "Moon Berry", Emoji: "🌙", Rarity: domain.RarityMythic, BaseValue: 200},
}

var fruitsByRarity = func() map[domain.Rarity][]domain.FruitType {
	m := make(map[domain.Rarity][]domain.FruitType, len(domain.Rarities))
	for _, f := range Fruits {
		m[f.Rarity] = append(m[f.Rarity], f)
	}
	return m
}()

// FruitsOfRarity returns the catalog entries of one tier
func FruitsOfRarity(r domain.Rarity) []domain.FruitType {
	return fruitsByRarity[r]
}

// LookupFruit finds a catalog entry by name
func LookupFruit(name string) (domain.FruitType, bool) {
	for _, f := range Fruits {
		if f.Name == name {
			return f, true
		}
	}
	return domain.FruitType{}, false
}
