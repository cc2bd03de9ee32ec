package domain

// LeaderboardMetric selects the ranking column
type LeaderboardMetric string

const (
	MetricCoins  LeaderboardMetric = "coins"
	MetricPicked LeaderboardMetric = "picked"
	MetricGems   LeaderboardMetric = "gems"
	MetricLevel  LeaderboardMetric = "level"
)

// Valid reports whether m is a supported metric
func (m LeaderboardMetric) Valid() bool {
	switch m {
	case MetricCoins, MetricPicked, MetricGems, MetricLevel:
		return true
	}
	return false
}

// LeaderboardEntry is a single ranked row
type LeaderboardEntry struct {
	Rank       int    `json:"rank"`
	AccountKey string `json:"account_key"`
	Username   string `json:"username"`
	Value      int    `json:"value"`
}

// Leaderboard is the top of a ranking plus the caller's position
type Leaderboard struct {
	Metric     LeaderboardMetric  `json:"metric"`
	Entries    []LeaderboardEntry `json:"entries"`
	CallerRank int                `json:"caller_rank"`
}
