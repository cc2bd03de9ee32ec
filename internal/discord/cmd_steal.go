package discord

import (
	"net/http"

	"github.com/bwmarrin/discordgo"

	"github.com/punaab/discord-ts-UQkA/internal/logger"
)

// StealCommand returns the steal command definition and handler
func StealCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "steal",
		Description: "Try to steal a fruit from another player",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        OptionUser,
				Description: "Who to steal from",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		opt := findOption(getOptions(i), OptionUser)
		if opt == nil {
			respondEphemeral(s, i, MsgGenericError)
			return
		}
		target := opt.UserValue(nil)

		if !deferResponse(s, i, false) {
			return
		}
		ctx, cancel := interactionContext()
		defer cancel()

		user := getInteractionUser(i)
		res, err := client.Steal(ctx, user.ID, target.ID)
		if err != nil {
			logger.FromContext(ctx).Warn(LogMsgCommandFailed, "user", user.ID, "target", target.ID, "error", err)
			if IsStatus(err, http.StatusNotFound) {
				respondError(s, i, MsgTargetNotFound)
				return
			}
			respondFriendlyError(s, i, err)
			return
		}
		sendView(s, i, &view{Embed: renderSteal(res, target.Mention())})
	}
	return cmd, handler
}
