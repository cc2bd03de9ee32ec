package memory

import (
	"context"
	"fmt"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
)

type savedAccount struct {
	expectedVersion int
	account         *domain.Account
}

type transfer struct {
	fruitID, from, to string
}

// tx stages writes and applies them atomically on Commit. Version checks
// happen at commit time, under the store lock.
type tx struct {
	store     *Store
	accounts  []savedAccount
	created   []*domain.Fruit
	sold      []*domain.Fruit
	transfers []transfer
	done      bool
}

func (t *tx) SaveAccount(ctx context.Context, account *domain.Account) error {
	if t.done {
		return errTxClosed
	}
	t.accounts = append(t.accounts, savedAccount{expectedVersion: account.Version, account: account})
	account.Version++
	return nil
}

func (t *tx) CreateFruits(ctx context.Context, fruits []*domain.Fruit) error {
	if t.done {
		return errTxClosed
	}
	for _, f := range fruits {
		c := *f
		t.created = append(t.created, &c)
	}
	return nil
}

func (t *tx) MarkFruitsSold(ctx context.Context, fruits []*domain.Fruit) error {
	if t.done {
		return errTxClosed
	}
	for _, f := range fruits {
		c := *f
		t.sold = append(t.sold, &c)
	}
	return nil
}

func (t *tx) TransferFruit(ctx context.Context, fruitID, fromKey, toKey string) error {
	if t.done {
		return errTxClosed
	}
	t.transfers = append(t.transfers, transfer{fruitID: fruitID, from: fromKey, to: toKey})
	return nil
}

func (t *tx) Commit(ctx context.Context) error {
	if t.done {
		return errTxClosed
	}
	t.done = true

	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sa := range t.accounts {
		stored, ok := s.accounts[sa.account.Key]
		if !ok {
			return fmt.Errorf("%w: %s", domain.ErrAccountNotFound, sa.account.Key)
		}
		if stored.Version != sa.expectedVersion {
			return fmt.Errorf("%w: %s", domain.ErrVersionConflict, sa.account.Key)
		}
	}
	for _, f := range t.sold {
		stored, ok := s.fruits[f.ID]
		if !ok || stored.Sold {
			return fmt.Errorf("%w: %s", domain.ErrFruitNotFound, f.ID)
		}
	}
	for _, tr := range t.transfers {
		stored, ok := s.fruits[tr.fruitID]
		if !ok || stored.Sold || stored.OwnerKey != tr.from {
			return fmt.Errorf("%w: %s", domain.ErrFruitNotFound, tr.fruitID)
		}
	}

	for _, sa := range t.accounts {
		s.accounts[sa.account.Key] = sa.account.Clone()
	}
	for _, f := range t.created {
		s.fruits[f.ID] = f
		s.order = append(s.order, f.ID)
	}
	for _, f := range t.sold {
		stored := s.fruits[f.ID]
		stored.Sold = true
		stored.SoldAt = f.SoldAt
		stored.SoldFor = f.SoldFor
	}
	for _, tr := range t.transfers {
		s.fruits[tr.fruitID].OwnerKey = tr.to
	}
	return nil
}

func (t *tx) Rollback(ctx context.Context) error {
	if t.done {
		return errTxClosed
	}
	t.done = true
	return nil
}
