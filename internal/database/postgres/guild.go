package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
	"github.com/punaab/discord-ts-UQkA/internal/repository"
)

// GuildRepository persists per-server settings
type GuildRepository struct {
	db *pgxpool.Pool
}

var _ repository.GuildRepository = (*GuildRepository)(nil)

// NewGuildRepository creates a new GuildRepository
func NewGuildRepository(db *pgxpool.Pool) *GuildRepository {
	return &GuildRepository{db: db}
}

func (r *GuildRepository) UpsertGuild(ctx context.Context, guild *domain.Guild) error {
	_, err := r.db.Exec(ctx, queryUpsertGuild, guild.GuildID, guild.Name, guild.ChannelID, guild.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertGuild, err)
	}
	return nil
}

func (r *GuildRepository) GetGuild(ctx context.Context, guildID string) (*domain.Guild, error) {
	var g domain.Guild
	err := r.db.QueryRow(ctx, queryGetGuild, guildID).Scan(&g.GuildID, &g.Name, &g.ChannelID, &g.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrGuildNotFound, guildID)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetGuild, err)
	}
	g.UpdatedAt = g.UpdatedAt.UTC()
	return &g, nil
}
