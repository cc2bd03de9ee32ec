package repository

import (
	"context"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
)

// GuildRepository persists per-server settings
type GuildRepository interface {
	UpsertGuild(ctx context.Context, guild *domain.Guild) error
	// GetGuild returns domain.ErrGuildNotFound when the guild was never set up
	GetGuild(ctx context.Context, guildID string) (*domain.Guild, error)
}
