// Package memory is an in-process implementation of every repository. It
// backs local runs without Postgres and the service tests.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
	"github.com/punaab/discord-ts-UQkA/internal/repository"
)

var errTxClosed = errors.New(domain.ErrMsgTxClosed)

// Store keeps accounts, fruits, market state and guilds in maps
type Store struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
	fruits   map[string]*domain.Fruit
	order    []string
	market   *domain.MarketState
	guilds   map[string]*domain.Guild
}

// NewStore creates an empty store with the given market seed
func NewStore(marketSeed int64) *Store {
	return &Store{
		accounts: make(map[string]*domain.Account),
		fruits:   make(map[string]*domain.Fruit),
		market:   &domain.MarketState{Seed: marketSeed},
		guilds:   make(map[string]*domain.Guild),
	}
}

var (
	_ repository.AccountRepository   = (*Store)(nil)
	_ repository.InventoryRepository = (*Store)(nil)
	_ repository.MarketRepository    = (*Store)(nil)
	_ repository.GuildRepository     = (*Store)(nil)
)

// ---- accounts ----

func (s *Store) GetAccount(ctx context.Context, key string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acct, ok := s.accounts[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, key)
	}
	return acct.Clone(), nil
}

func (s *Store) CreateAccount(ctx context.Context, account *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[account.Key]; exists {
		return nil
	}
	stored := account.Clone()
	stored.Version = 1
	s.accounts[account.Key] = stored
	account.Version = 1
	return nil
}

func (s *Store) BeginTx(ctx context.Context) (repository.AccountTx, error) {
	return &tx{store: s}, nil
}

func metricValue(a *domain.Account, metric domain.LeaderboardMetric) int {
	switch metric {
	case domain.MetricPicked:
		return a.Stats.TotalPicked
	case domain.MetricGems:
		return a.Gems
	case domain.MetricLevel:
		return a.Level
	default:
		return a.Coins
	}
}

// ranked orders accounts by metric descending, then key ascending
func (s *Store) ranked(metric domain.LeaderboardMetric) []domain.LeaderboardEntry {
	entries := make([]domain.LeaderboardEntry, 0, len(s.accounts))
	for _, a := range s.accounts {
		entries = append(entries, domain.LeaderboardEntry{AccountKey: a.Key, Username: a.Username, Value: metricValue(a, metric)})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		return entries[i].AccountKey < entries[j].AccountKey
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

func (s *Store) GetLeaderboard(ctx context.Context, metric domain.LeaderboardMetric, limit int) ([]domain.LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := s.ranked(metric)
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (s *Store) GetRank(ctx context.Context, metric domain.LeaderboardMetric, key string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.ranked(metric) {
		if e.AccountKey == key {
			return e.Rank, nil
		}
	}
	return 0, nil
}

func (s *Store) ClearDailyQuestsStartedBefore(ctx context.Context, boundary time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var cleared int64
	for _, a := range s.accounts {
		if a.Quests.Daily != nil && a.Quests.Daily.StartedAt.Before(boundary) {
			a.Quests.Daily = nil
			a.Version++
			cleared++
		}
	}
	return cleared, nil
}

// ---- inventory ----

func (s *Store) GetUnsoldFruits(ctx context.Context, ownerKey string) ([]*domain.Fruit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*domain.Fruit
	for _, id := range s.order {
		f := s.fruits[id]
		if f.OwnerKey == ownerKey && !f.Sold {
			c := *f
			out = append(out, &c)
		}
	}
	return out, nil
}

func (s *Store) CountUnsoldFruits(ctx context.Context, ownerKey string) (int, error) {
	fruits, err := s.GetUnsoldFruits(ctx, ownerKey)
	return len(fruits), err
}

func (s *Store) GetSalesSince(ctx context.Context, since time.Time) ([]*domain.Fruit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*domain.Fruit
	for _, id := range s.order {
		f := s.fruits[id]
		if f.Sold && f.SoldAt != nil && !f.SoldAt.Before(since) {
			c := *f
			out = append(out, &c)
		}
	}
	return out, nil
}

// ---- market ----

func (s *Store) GetMarketState(ctx context.Context) (*domain.MarketState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c := *s.market
	return &c, nil
}

func (s *Store) SaveMarketState(ctx context.Context, state *domain.MarketState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *state
	s.market = &c
	return nil
}

// ---- guilds ----

func (s *Store) UpsertGuild(ctx context.Context, guild *domain.Guild) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *guild
	s.guilds[guild.GuildID] = &c
	return nil
}

func (s *Store) GetGuild(ctx context.Context, guildID string) (*domain.Guild, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.guilds[guildID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrGuildNotFound, guildID)
	}
	c := *g
	return &c, nil
}
