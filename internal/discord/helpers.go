package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
	"github.com/punaab/discord-ts-UQkA/internal/logger"
	"github.com/punaab/discord-ts-UQkA/internal/session"
)

// view is a rendered reply: one embed plus optional buttons
type view struct {
	Embed      *discordgo.MessageEmbed
	Components []discordgo.MessageComponent
}

// viewFunc renders a reply for user by calling the API
type viewFunc func(ctx context.Context, client *APIClient, user *discordgo.User) (*view, error)

// interactionContext carries a request ID so API logs can be correlated
func interactionContext() (context.Context, context.CancelFunc) {
	ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
	return context.WithTimeout(ctx, HandlerTimeout)
}

// getInteractionUser extracts the user from an interaction.
// Handles both guild (i.Member.User) and DM (i.User) contexts.
func getInteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	if i.User != nil {
		return i.User
	}
	return &discordgo.User{}
}

// getOptions extracts command options from an interaction
func getOptions(i *discordgo.InteractionCreate) []*discordgo.ApplicationCommandInteractionDataOption {
	return i.ApplicationCommandData().Options
}

// findOption returns the named option or nil
func findOption(options []*discordgo.ApplicationCommandInteractionDataOption, name string) *discordgo.ApplicationCommandInteractionDataOption {
	for _, opt := range options {
		if opt.Name == name {
			return opt
		}
	}
	return nil
}

// deferResponse acknowledges an interaction with a deferred message.
// Returns false if deferral failed and the handler should stop.
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate, ephemeral bool) bool {
	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}
	if ephemeral {
		resp.Data = &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral}
	}
	if err := s.InteractionRespond(i.Interaction, resp); err != nil {
		slog.Error(LogMsgRespondFailed, "error", err)
		return false
	}
	return true
}

// deferUpdate acknowledges a button press; the message is edited afterwards
func deferUpdate(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	}); err != nil {
		slog.Error(LogMsgRespondFailed, "error", err)
		return false
	}
	return true
}

// respondEphemeral answers immediately with a message only the user can see
func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}); err != nil {
		slog.Error(LogMsgRespondFailed, "error", err)
	}
}

// followupEphemeral posts a private message after the interaction was deferred
func followupEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if _, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: message,
		Flags:   discordgo.MessageFlagsEphemeral,
	}); err != nil {
		slog.Error(LogMsgRespondFailed, "error", err)
	}
}

// respondError replaces the deferred response with a plain message
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &message,
	}); err != nil {
		slog.Error(LogMsgEditFailed, "error", err)
	}
}

// respondFriendlyError turns an API or session error into a readable reply
func respondFriendlyError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	respondError(s, i, formatFriendlyError(err))
}

// sendView replaces the deferred response with v
func sendView(s *discordgo.Session, i *discordgo.InteractionCreate, v *view) {
	components := v.Components
	if components == nil {
		components = []discordgo.MessageComponent{}
	}
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds:     &[]*discordgo.MessageEmbed{v.Embed},
		Components: &components,
	}); err != nil {
		slog.Error(LogMsgEditFailed, "error", err)
	}
}

// runView defers, renders with fn and sends the result or a friendly error
func runView(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient, fn viewFunc, ephemeral bool) {
	if !deferResponse(s, i, ephemeral) {
		return
	}

	ctx, cancel := interactionContext()
	defer cancel()

	user := getInteractionUser(i)
	v, err := fn(ctx, client, user)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgCommandFailed, "user", user.ID, "error", err)
		respondFriendlyError(s, i, err)
		return
	}
	sendView(s, i, v)
}

// createEmbed creates a standard embed with the orchard footer
func createEmbed(title, description string, color int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: FooterOrchard,
		},
	}
}

// customID joins a component prefix and its arguments
func customID(prefix string, args ...string) string {
	return strings.Join(append([]string{prefix}, args...), customIDSeparator)
}

// parseCustomID splits a component custom ID into prefix and arguments
func parseCustomID(id string) (string, []string) {
	parts := strings.Split(id, customIDSeparator)
	return parts[0], parts[1:]
}

// formatFriendlyError maps API and session errors to player-facing text
func formatFriendlyError(err error) string {
	switch {
	case errors.Is(err, session.ErrSessionExpired):
		return "⌛ " + session.ErrMsgSessionExpired
	case errors.Is(err, session.ErrSessionNotOwner):
		return "🚫 " + session.ErrMsgSessionNotOwner
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return MsgConnectionError
	}

	switch apiErr.Status {
	case http.StatusTooManyRequests:
		if apiErr.RetryAfter > 0 {
			return fmt.Sprintf("%s\nWait for: **%s**", MsgCooldownActive, formatWait(apiErr.RetryAfter))
		}
		return MsgCooldownActive
	case http.StatusPaymentRequired:
		return MsgInsufficientFunds
	case http.StatusNotFound:
		if apiErr.Message == domain.ErrMsgAccountNotFound {
			return MsgAccountNotFound
		}
		return "❓ " + apiErr.Message
	case http.StatusUnauthorized, http.StatusForbidden:
		return MsgConnectionError
	}
	if apiErr.Status >= http.StatusInternalServerError {
		return MsgConnectionError
	}

	switch apiErr.Message {
	case domain.ErrMsgNothingToSell:
		return MsgNothingToSell
	case domain.ErrMsgMaxTier:
		return MsgMaxTier
	case domain.ErrMsgSelfSteal:
		return MsgSelfSteal
	case domain.ErrMsgEmptyTargetInventory:
		return MsgEmptyTarget
	case domain.ErrMsgQuestNotCompleted, domain.ErrMsgAchievementNotCompleted:
		return MsgNotCompleted
	case domain.ErrMsgAchievementAlreadyClaimed:
		return MsgAlreadyClaimed
	default:
		return "❌ " + apiErr.Message
	}
}

// formatWait renders a wait as "2h 5m", "4m 3s" or "12s"
func formatWait(d time.Duration) string {
	d = d.Round(time.Second)
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}

// relativeTimestamp renders a Discord relative timestamp such as "in 5 minutes"
func relativeTimestamp(t time.Time) string {
	return fmt.Sprintf("<t:%d:R>", t.Unix())
}

// buildProgressBar draws a fixed-width progress bar
func buildProgressBar(current, required, length int) string {
	if required <= 0 {
		return "[" + strings.Repeat("░", length) + "]"
	}

	filled := (current * length) / required
	if filled > length {
		filled = length
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", length-filled) + "]"
}
