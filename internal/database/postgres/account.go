package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
	"github.com/punaab/discord-ts-UQkA/internal/repository"
)

// AccountRepository implements repository.AccountRepository for PostgreSQL.
// Scalar fields live in columns so leaderboards can sort on them; upgrades,
// quest slots and achievement records are JSONB documents.
type AccountRepository struct {
	db *pgxpool.Pool
}

var _ repository.AccountRepository = (*AccountRepository)(nil)

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{db: db}
}

// leaderboardColumns whitelists the sortable columns per metric
var leaderboardColumns = map[domain.LeaderboardMetric]string{
	domain.MetricCoins:  "coins",
	domain.MetricPicked: "total_picked",
	domain.MetricGems:   "gems",
	domain.MetricLevel:  "level",
}

func (r *AccountRepository) GetAccount(ctx context.Context, key string) (*domain.Account, error) {
	acct, err := scanAccount(r.db.QueryRow(ctx, queryGetAccount, key))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAccount, err)
	}
	return acct, nil
}

func (r *AccountRepository) CreateAccount(ctx context.Context, account *domain.Account) error {
	docs, err := marshalDocs(account)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, queryInsertAccount,
		account.Key, account.Username, account.Coins, account.Gems, account.XP, account.Level, docs.upgrades,
		account.Stats.TotalPicked, account.Stats.TotalSold, account.Stats.TotalEarned, account.Stats.RareFruitsFound,
		nullTime(account.LastPickAt), nullTime(account.LastDailyAt), nullTime(account.LastStealAt), account.DailyStreak,
		docs.quests, docs.achievements, account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertAccount, err)
	}
	account.Version = 1
	return nil
}

func (r *AccountRepository) BeginTx(ctx context.Context) (repository.AccountTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &accountTx{tx: tx}, nil
}

func (r *AccountRepository) GetLeaderboard(ctx context.Context, metric domain.LeaderboardMetric, limit int) ([]domain.LeaderboardEntry, error) {
	column, ok := leaderboardColumns[metric]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidMetric, metric)
	}

	rows, err := r.db.Query(ctx, fmt.Sprintf(queryLeaderboard, column, column), limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryLeaderboard, err)
	}
	rank := 0
	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.LeaderboardEntry, error) {
		var e domain.LeaderboardEntry
		if err := row.Scan(&e.AccountKey, &e.Username, &e.Value); err != nil {
			return e, err
		}
		rank++
		e.Rank = rank
		return e, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryLeaderboard, err)
	}
	return entries, nil
}

func (r *AccountRepository) GetRank(ctx context.Context, metric domain.LeaderboardMetric, key string) (int, error) {
	column, ok := leaderboardColumns[metric]
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidMetric, metric)
	}

	var rank int64
	err := r.db.QueryRow(ctx, fmt.Sprintf(queryRank, column), key).Scan(&rank)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRank, err)
	}
	return int(rank), nil
}

func (r *AccountRepository) ClearDailyQuestsStartedBefore(ctx context.Context, boundary time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, queryClearDailyQuests, boundary)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToClearQuests, err)
	}
	return tag.RowsAffected(), nil
}

type accountDocs struct {
	upgrades, quests, achievements []byte
}

func marshalDocs(a *domain.Account) (accountDocs, error) {
	var (
		docs accountDocs
		err  error
	)
	if docs.upgrades, err = json.Marshal(a.Upgrades); err != nil {
		return docs, fmt.Errorf("%s: %w", ErrMsgFailedToMarshalAccount, err)
	}
	if docs.quests, err = json.Marshal(a.Quests); err != nil {
		return docs, fmt.Errorf("%s: %w", ErrMsgFailedToMarshalAccount, err)
	}
	achievements := a.Achievements
	if achievements == nil {
		achievements = []*domain.AchievementRecord{}
	}
	if docs.achievements, err = json.Marshal(achievements); err != nil {
		return docs, fmt.Errorf("%s: %w", ErrMsgFailedToMarshalAccount, err)
	}
	return docs, nil
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var (
		a                              domain.Account
		docs                           accountDocs
		lastPick, lastDaily, lastSteal pgtype.Timestamptz
	)
	err := row.Scan(
		&a.Key, &a.Username, &a.Coins, &a.Gems, &a.XP, &a.Level, &docs.upgrades,
		&a.Stats.TotalPicked, &a.Stats.TotalSold, &a.Stats.TotalEarned, &a.Stats.RareFruitsFound,
		&lastPick, &lastDaily, &lastSteal, &a.DailyStreak,
		&docs.quests, &docs.achievements, &a.Version, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(docs.upgrades, &a.Upgrades); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalAccount, err)
	}
	if err := json.Unmarshal(docs.quests, &a.Quests); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalAccount, err)
	}
	if err := json.Unmarshal(docs.achievements, &a.Achievements); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalAccount, err)
	}
	if a.Achievements == nil {
		a.Achievements = []*domain.AchievementRecord{}
	}
	a.LastPickAt = ptrTime(lastPick)
	a.LastDailyAt = ptrTime(lastDaily)
	a.LastStealAt = ptrTime(lastSteal)
	a.CreatedAt = a.CreatedAt.UTC()
	a.UpdatedAt = a.UpdatedAt.UTC()
	return &a, nil
}
