package economy

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
)

// RarityDisplayName renders a rarity for players, e.g. "Legendary"
func RarityDisplayName(r domain.Rarity) string {
	return TitleCase(r.String())
}

// UpgradeDisplayName splits a camelCase track name, e.g. "Basket Capacity"
func UpgradeDisplayName(track domain.UpgradeTrack) string {
	var b strings.Builder
	for i, ch := range string(track) {
		if i > 0 && unicode.IsUpper(ch) {
			b.WriteByte(' ')
		}
		b.WriteRune(ch)
	}
	return TitleCase(b.String())
}

// RarityEmoji is the icon used for a tier in market and inventory views
func RarityEmoji(r domain.Rarity) string {
	switch r {
	case domain.RarityUncommon:
		return "🍇"
	case domain.RarityRare:
		return "🥝"
	case domain.RarityLegendary:
		return "🌟"
	case domain.RarityMythic:
		return "🌙"
	default:
		return "🍎"
	}
}

// TitleCase capitalizes each word. A fresh Caser is built per call since a
// Caser is not safe for concurrent use.
func TitleCase(s string) string {
	return cases.Title(language.English).String(s)
}
