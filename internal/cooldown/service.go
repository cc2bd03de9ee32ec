package cooldown

import (
	"fmt"
	"time"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
)

// Service decides whether an action may run given when it last ran.
// Timestamps live on the account, so the service holds no state.
type Service interface {
	// Check returns ErrOnCooldown when action ran less than its configured duration ago
	Check(action string, lastUsed *time.Time, now time.Time) error

	// CheckWithDuration is Check with an explicit duration, for cooldowns scaled by upgrades
	CheckWithDuration(action string, lastUsed *time.Time, duration time.Duration, now time.Time) error

	// Duration returns the configured duration for action
	Duration(action string) time.Duration
}

// ErrOnCooldown is returned when action is still on cooldown
type ErrOnCooldown struct {
	Action    string
	Remaining time.Duration
}

func (e ErrOnCooldown) Error() string {
	minutes := int(e.Remaining.Minutes())
	seconds := int(e.Remaining.Seconds()) % 60

	if minutes > 0 {
		return fmt.Sprintf("action '%s' on cooldown: %dm %ds remaining", e.Action, minutes, seconds)
	}
	return fmt.Sprintf("action '%s' on cooldown: %ds remaining", e.Action, seconds)
}

// Is lets errors.Is match both ErrOnCooldown values and domain.ErrOnCooldown
func (e ErrOnCooldown) Is(target error) bool {
	if target == domain.ErrOnCooldown {
		return true
	}
	_, ok := target.(ErrOnCooldown)
	return ok
}

type service struct {
	config Config
}

// NewService creates a cooldown service
func NewService(config Config) Service {
	return &service{config: config}
}

func (s *service) Duration(action string) time.Duration {
	return s.config.GetCooldownDuration(action)
}

func (s *service) Check(action string, lastUsed *time.Time, now time.Time) error {
	return s.CheckWithDuration(action, lastUsed, s.Duration(action), now)
}

func (s *service) CheckWithDuration(action string, lastUsed *time.Time, duration time.Duration, now time.Time) error {
	if s.config.DevMode {
		return nil
	}
	if remaining := Remaining(lastUsed, duration, now); remaining > 0 {
		return ErrOnCooldown{Action: action, Remaining: remaining}
	}
	return nil
}

// Remaining is how long until an action used at lastUsed is available again
func Remaining(lastUsed *time.Time, duration time.Duration, now time.Time) time.Duration {
	if lastUsed == nil {
		return 0
	}
	elapsed := now.Sub(*lastUsed)
	if elapsed >= duration {
		return 0
	}
	return duration - elapsed
}

// NextAvailable is when an action used at lastUsed can run again. A nil
// lastUsed means it is available at now.
func NextAvailable(lastUsed *time.Time, duration time.Duration, now time.Time) time.Time {
	return now.Add(Remaining(lastUsed, duration, now))
}
