package orchard

import (
	"context"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
)

// GetLeaderboard returns the top accounts by metric and the caller's rank.
// The rank is 0 when key is empty or has no account.
func (s *service) GetLeaderboard(ctx context.Context, key string, metric domain.LeaderboardMetric) (*domain.Leaderboard, error) {
	if metric == "" {
		metric = domain.MetricCoins
	}
	if !metric.Valid() {
		return nil, domain.ErrInvalidMetric
	}

	entries, err := s.repos.Accounts.GetLeaderboard(ctx, metric, domain.LeaderboardSize)
	if err != nil {
		return nil, infra(ErrMsgLoadLeaderboard, err)
	}
	board := &domain.Leaderboard{Metric: metric, Entries: entries}
	if key == "" {
		return board, nil
	}
	board.CallerRank, err = s.repos.Accounts.GetRank(ctx, metric, key)
	if err != nil {
		return nil, infra(ErrMsgLoadRankFailed, err)
	}
	return board, nil
}
