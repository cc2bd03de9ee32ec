package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
	"github.com/punaab/discord-ts-UQkA/internal/economy"
	"github.com/punaab/discord-ts-UQkA/internal/logger"
	"github.com/punaab/discord-ts-UQkA/internal/session"
)

// shopView loads the shop and opens a shop session owned by user
func shopView(sessions *session.Manager) viewFunc {
	return func(ctx context.Context, client *APIClient, user *discordgo.User) (*view, error) {
		shop, err := client.GetShop(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		sess, err := sessions.Open(ctx, session.KindShop, user.ID, nil)
		if err != nil {
			return nil, err
		}
		return renderShop(shop, sess.ID, ""), nil
	}
}

// ShopCommand returns the shop command definition and handler
func ShopCommand(sessions *session.Manager) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "shop",
		Description: "Buy upgrades for your orchard",
	}
	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		runView(s, i, client, shopView(sessions), false)
	}
	return cmd, handler
}

// ShopButtonHandler buys the pressed upgrade and redraws the shop.
// Custom ID: shop:<session>:<track>
func ShopButtonHandler(sessions *session.Manager) ComponentHandler {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient, args []string) {
		if len(args) != 2 {
			respondEphemeral(s, i, MsgGenericError)
			return
		}
		sessionID, track := args[0], domain.UpgradeTrack(args[1])

		ctx, cancel := interactionContext()
		defer cancel()

		user := getInteractionUser(i)
		if _, err := sessions.Use(ctx, sessionID, user.ID); err != nil {
			respondEphemeral(s, i, formatFriendlyError(err))
			return
		}
		if !deferUpdate(s, i) {
			return
		}

		res, err := client.BuyUpgrade(ctx, user.ID, track)
		if err != nil {
			logger.FromContext(ctx).Warn(LogMsgCommandFailed, "user", user.ID, "track", track, "error", err)
			followupEphemeral(s, i, formatFriendlyError(err))
			return
		}

		shop, err := client.GetShop(ctx, user.ID)
		if err != nil {
			followupEphemeral(s, i, formatFriendlyError(err))
			return
		}
		notice := fmt.Sprintf("✅ Upgraded **%s** to tier %d for %d coins!",
			economy.UpgradeDisplayName(res.Track), res.NewTier, res.Price)
		sendView(s, i, renderShop(shop, sessionID, notice))
	}
}
