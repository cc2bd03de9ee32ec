package economy

import (
	"time"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
)

// ClaimDaily pays the daily reward. The streak is reset when the previous
// claim is older than the streak window, and the reward is computed with
// the streak as it stood before this claim. Cooldown checks are the
// caller's job.
func ClaimDaily(account *domain.Account, now time.Time) *domain.DailyResult {
	streakReset := false
	if account.LastDailyAt != nil && now.Sub(*account.LastDailyAt) > domain.DailyStreakWindow {
		streakReset = account.DailyStreak > 0
		account.DailyStreak = 0
	}

	reward := DailyReward(account.Level, account.DailyStreak)
	account.Coins += reward
	account.Stats.TotalEarned += reward
	account.DailyStreak++
	claimed := now
	account.LastDailyAt = &claimed

	return &domain.DailyResult{
		Reward:      reward,
		Streak:      account.DailyStreak,
		StreakReset: streakReset,
		Coins:       account.Coins,
		NextClaimAt: now.Add(domain.DailyCooldown),
	}
}
