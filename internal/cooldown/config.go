package cooldown

import (
	"time"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
)

// Config holds cooldown service configuration
type Config struct {
	// DevMode bypasses all cooldowns when true
	DevMode bool

	// Cooldowns maps action names to their durations
	// If not specified, defaults from domain package are used
	Cooldowns map[string]time.Duration
}

// GetCooldownDuration returns the cooldown duration for an action
func (c *Config) GetCooldownDuration(action string) time.Duration {
	if c.Cooldowns != nil {
		if duration, ok := c.Cooldowns[action]; ok {
			return duration
		}
	}

	switch action {
	case domain.ActionPick:
		return domain.BasePickCooldown
	case domain.ActionDaily:
		return domain.DailyCooldown
	case domain.ActionSteal:
		return domain.StealCooldown
	default:
		return DefaultCooldownDuration
	}
}
