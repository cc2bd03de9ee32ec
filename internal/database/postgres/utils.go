package postgres

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
)

// ptrTime converts a nullable timestamp column to *time.Time
func ptrTime(t pgtype.Timestamptz) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}

// nullTime converts *time.Time into a nullable timestamp parameter
func nullTime(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}

// scanFruit is a pgx.RowToFunc for fruitColumns
func scanFruit(row pgx.CollectableRow) (*domain.Fruit, error) {
	var (
		f      domain.Fruit
		id     pgtype.UUID
		rarity int16
		soldAt pgtype.Timestamptz
	)
	if err := row.Scan(&id, &f.OwnerKey, &f.Name, &rarity, &f.Value, &f.PickedAt, &f.Sold, &soldAt, &f.SoldFor); err != nil {
		return nil, err
	}
	f.ID = uuid.UUID(id.Bytes).String()
	f.Rarity = domain.Rarity(rarity)
	f.PickedAt = f.PickedAt.UTC()
	f.SoldAt = ptrTime(soldAt)
	return &f, nil
}

// parseFruitID parses a fruit ID into the UUID column type
func parseFruitID(id string) (uuid.UUID, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s: %s", domain.ErrFruitNotFound, ErrMsgFailedToParseFruitID, id)
	}
	return u, nil
}
