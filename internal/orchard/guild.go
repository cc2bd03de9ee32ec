package orchard

import (
	"context"
	"errors"
	"fmt"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
	"github.com/punaab/discord-ts-UQkA/internal/logger"
)

// SetupGuild stores the bot channel for a guild
func (s *service) SetupGuild(ctx context.Context, guild *domain.Guild) (*domain.Guild, error) {
	if guild == nil || guild.GuildID == "" || guild.ChannelID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgInvalidGuildSettings)
	}
	saved := *guild
	saved.UpdatedAt = s.accounts.Now()
	if err := s.repos.Guilds.UpsertGuild(ctx, &saved); err != nil {
		return nil, infra(ErrMsgSaveGuildFailed, err)
	}
	logger.FromContext(ctx).Info(LogMsgGuildConfigured, "guild", saved.GuildID, "channel", saved.ChannelID)
	return &saved, nil
}

// GetGuild returns domain.ErrGuildNotFound for guilds that never ran setup
func (s *service) GetGuild(ctx context.Context, guildID string) (*domain.Guild, error) {
	guild, err := s.repos.Guilds.GetGuild(ctx, guildID)
	if err != nil {
		if errors.Is(err, domain.ErrGuildNotFound) {
			return nil, err
		}
		return nil, infra(ErrMsgLoadGuildFailed, err)
	}
	return guild, nil
}
