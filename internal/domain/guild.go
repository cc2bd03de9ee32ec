package domain

import "time"

// Guild stores per-server bot settings
type Guild struct {
	GuildID   string    `json:"guild_id"`
	Name      string    `json:"name"`
	ChannelID string    `json:"channel_id"`
	UpdatedAt time.Time `json:"updated_at"`
}
