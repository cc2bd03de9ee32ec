package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/punaab/discord-ts-UQkA/internal/concurrency"
	"github.com/punaab/discord-ts-UQkA/internal/domain"
	"github.com/punaab/discord-ts-UQkA/internal/logger"
	"github.com/punaab/discord-ts-UQkA/internal/repository"
)

// DefaultMaxRetries bounds how often a read-modify-write is replayed after
// a version conflict
const DefaultMaxRetries = 3

// MutateFunc changes account in memory and may stage inventory writes on
// tx. Returning an error discards every change.
type MutateFunc func(tx repository.AccountTx, account *domain.Account) error

// PairMutateFunc is MutateFunc for operations that touch two accounts
type PairMutateFunc func(tx repository.AccountTx, actor, target *domain.Account) error

// Manager serializes read-modify-write cycles per account key. In-process
// callers queue on a keyed lock; writers in other processes are caught by
// the version check and the cycle is replayed on fresh state.
type Manager struct {
	repo       repository.AccountRepository
	locks      *concurrency.LockManager
	maxRetries int
	now        func() time.Time
}

// NewManager creates a Manager over repo
func NewManager(repo repository.AccountRepository, locks *concurrency.LockManager) *Manager {
	return &Manager{
		repo:       repo,
		locks:      locks,
		maxRetries: DefaultMaxRetries,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// SetClock replaces the time source
func (m *Manager) SetClock(now func() time.Time) {
	m.now = now
}

// Now returns the manager's current time
func (m *Manager) Now() time.Time {
	return m.now()
}

// Get loads an account without locking
func (m *Manager) Get(ctx context.Context, key string) (*domain.Account, error) {
	acct, err := m.repo.GetAccount(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, err
		}
		return nil, infra(ErrMsgLoadAccountFailed, err)
	}
	return acct, nil
}

// Update runs fn on an existing account
func (m *Manager) Update(ctx context.Context, key string, fn MutateFunc) (*domain.Account, error) {
	unlock := m.locks.Lock(key)
	defer unlock()
	return m.run(ctx, key, func() (*domain.Account, error) { return m.Get(ctx, key) }, fn)
}

// UpdateOrCreate runs fn on the account, creating it with defaults first
// when it does not exist yet
func (m *Manager) UpdateOrCreate(ctx context.Context, key, username string, fn MutateFunc) (*domain.Account, error) {
	unlock := m.locks.Lock(key)
	defer unlock()
	return m.run(ctx, key, func() (*domain.Account, error) { return m.getOrCreate(ctx, key, username) }, fn)
}

func (m *Manager) run(ctx context.Context, key string, load func() (*domain.Account, error), fn MutateFunc) (*domain.Account, error) {
	log := logger.FromContext(ctx)
	for attempt := 0; ; attempt++ {
		acct, err := load()
		if err != nil {
			return nil, err
		}
		working := acct.Clone()

		err = m.commit(ctx, func(tx repository.AccountTx) error {
			if err := fn(tx, working); err != nil {
				return err
			}
			working.UpdatedAt = m.now()
			return tx.SaveAccount(ctx, working)
		})
		if errors.Is(err, domain.ErrVersionConflict) && attempt < m.maxRetries {
			log.Warn(LogMsgVersionConflictRetry, "account", key, "attempt", attempt+1)
			continue
		}
		if err != nil {
			return nil, err
		}
		return working, nil
	}
}

// UpdatePair runs fn on two existing accounts, locking both in a fixed
// global order. Both accounts are saved in one transaction.
func (m *Manager) UpdatePair(ctx context.Context, actorKey, targetKey string, fn PairMutateFunc) (*domain.Account, *domain.Account, error) {
	if actorKey == targetKey {
		return nil, nil, domain.ErrSelfSteal
	}
	unlock := m.locks.LockPair(actorKey, targetKey)
	defer unlock()

	log := logger.FromContext(ctx)
	for attempt := 0; ; attempt++ {
		actor, err := m.Get(ctx, actorKey)
		if err != nil {
			return nil, nil, err
		}
		target, err := m.Get(ctx, targetKey)
		if err != nil {
			return nil, nil, err
		}
		actor, target = actor.Clone(), target.Clone()

		err = m.commit(ctx, func(tx repository.AccountTx) error {
			if err := fn(tx, actor, target); err != nil {
				return err
			}
			now := m.now()
			actor.UpdatedAt, target.UpdatedAt = now, now
			// Saved in key order to match the lock order
			first, second := actor, target
			if second.Key < first.Key {
				first, second = second, first
			}
			if err := tx.SaveAccount(ctx, first); err != nil {
				return err
			}
			return tx.SaveAccount(ctx, second)
		})
		if errors.Is(err, domain.ErrVersionConflict) && attempt < m.maxRetries {
			log.Warn(LogMsgVersionConflictRetry, "actor", actorKey, "target", targetKey, "attempt", attempt+1)
			continue
		}
		if err != nil {
			return nil, nil, err
		}
		return actor, target, nil
	}
}

func (m *Manager) commit(ctx context.Context, fn func(tx repository.AccountTx) error) error {
	tx, err := m.repo.BeginTx(ctx)
	if err != nil {
		return infra(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := fn(tx); err != nil {
		if isDomainError(err) {
			return err
		}
		return infra(ErrMsgSaveAccountFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		if isDomainError(err) {
			return err
		}
		return infra(ErrMsgCommitFailed, err)
	}
	return nil
}

func (m *Manager) getOrCreate(ctx context.Context, key, username string) (*domain.Account, error) {
	acct, err := m.repo.GetAccount(ctx, key)
	if err == nil {
		if username != "" && acct.Username != username {
			acct.Username = username
		}
		return acct, nil
	}
	if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, infra(ErrMsgLoadAccountFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgAccountCreated, "account", key, "username", username)
	if err := m.repo.CreateAccount(ctx, domain.NewAccount(key, username, m.now())); err != nil {
		return nil, infra(ErrMsgCreateAccountFailed, err)
	}
	// Re-read so a concurrent creator's row wins
	acct, err = m.repo.GetAccount(ctx, key)
	if err != nil {
		return nil, infra(ErrMsgLoadAccountFailed, err)
	}
	return acct, nil
}

// isDomainError reports whether err is an expected, caller-facing failure
// rather than a storage problem
func isDomainError(err error) bool {
	for _, target := range domainErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

var domainErrors = []error{
	domain.ErrVersionConflict,
	domain.ErrInfrastructure,
	domain.ErrAccountNotFound,
	domain.ErrAchievementNotFound,
	domain.ErrQuestNotFound,
	domain.ErrFruitNotFound,
	domain.ErrOnCooldown,
	domain.ErrInsufficientFunds,
	domain.ErrSelfSteal,
	domain.ErrEmptyTargetInventory,
	domain.ErrNothingToSell,
	domain.ErrMaxTier,
	domain.ErrQuestNotCompleted,
	domain.ErrAchievementNotCompleted,
	domain.ErrAchievementAlreadyClaimed,
	domain.ErrInvalidInput,
	domain.ErrInvalidRarity,
	domain.ErrInvalidUpgrade,
	domain.ErrInvalidCycle,
	domain.ErrInvalidMetric,
	domain.ErrGuildNotFound,
}

func infra(msg string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrInfrastructure, msg, err)
}
