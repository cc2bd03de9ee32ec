package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
)

// accountTx implements repository.AccountTx over a pgx transaction
type accountTx struct {
	tx pgx.Tx
}

// SaveAccount writes the full account if the stored version still matches
func (t *accountTx) SaveAccount(ctx context.Context, account *domain.Account) error {
	docs, err := marshalDocs(account)
	if err != nil {
		return err
	}
	tag, err := t.tx.Exec(ctx, queryUpdateAccount,
		account.Key, account.Username, account.Coins, account.Gems, account.XP, account.Level, docs.upgrades,
		account.Stats.TotalPicked, account.Stats.TotalSold, account.Stats.TotalEarned, account.Stats.RareFruitsFound,
		nullTime(account.LastPickAt), nullTime(account.LastDailyAt), nullTime(account.LastStealAt), account.DailyStreak,
		docs.quests, docs.achievements, account.UpdatedAt, account.Version,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateAccount, err)
	}

	if tag.RowsAffected() == 0 {
		var exists bool
		if err := t.tx.QueryRow(ctx, queryAccountExists, account.Key).Scan(&exists); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToGetAccount, err)
		}
		if !exists {
			return fmt.Errorf("%w: %s", domain.ErrAccountNotFound, account.Key)
		}
		return fmt.Errorf("%w: %s", domain.ErrVersionConflict, account.Key)
	}

	account.Version++
	return nil
}

// CreateFruits bulk-inserts new fruits with the COPY protocol
func (t *accountTx) CreateFruits(ctx context.Context, fruits []*domain.Fruit) error {
	if len(fruits) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(fruits))
	for _, f := range fruits {
		id, err := parseFruitID(f.ID)
		if err != nil {
			return err
		}
		rows = append(rows, []any{id, f.OwnerKey, f.Name, int16(f.Rarity), f.Value, f.PickedAt})
	}

	_, err := t.tx.CopyFrom(ctx,
		pgx.Identifier{fruitsTable},
		[]string{"fruit_id", "owner_key", "name", "rarity", "value", "picked_at"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertFruits, err)
	}
	return nil
}

// MarkFruitsSold fails with domain.ErrFruitNotFound if any fruit is gone or
// already sold, which aborts the whole sale
func (t *accountTx) MarkFruitsSold(ctx context.Context, fruits []*domain.Fruit) error {
	batch := &pgx.Batch{}
	for _, f := range fruits {
		id, err := parseFruitID(f.ID)
		if err != nil {
			return err
		}
		batch.Queue(queryMarkFruitSold, id, nullTime(f.SoldAt), f.SoldFor)
	}

	results := t.tx.SendBatch(ctx, batch)
	defer results.Close()
	for _, f := range fruits {
		tag, err := results.Exec()
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToMarkFruitSold, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: %s", domain.ErrFruitNotFound, f.ID)
		}
	}
	return nil
}

func (t *accountTx) TransferFruit(ctx context.Context, fruitID, fromKey, toKey string) error {
	id, err := parseFruitID(fruitID)
	if err != nil {
		return err
	}
	tag, err := t.tx.Exec(ctx, queryTransferFruit, id, fromKey, toKey)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToTransferFruit, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrFruitNotFound, fruitID)
	}
	return nil
}

func (t *accountTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func (t *accountTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}
