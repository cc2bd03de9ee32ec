package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/punaab/discord-ts-UQkA/internal/logger"
	"github.com/punaab/discord-ts-UQkA/internal/session"
)

var manageChannels int64 = discordgo.PermissionManageChannels

// SetupCommand returns the setup command definition and handler.
// It stores the orchard channel and posts the button panel there.
func SetupCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:                     "setup",
		Description:              "Post the orchard panel in a channel",
		DefaultMemberPermissions: &manageChannels,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionChannel,
				Name:         OptionChannel,
				Description:  "Channel for the orchard panel",
				Required:     true,
				ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if i.GuildID == "" || i.Member == nil {
			respondEphemeral(s, i, MsgGuildOnly)
			return
		}
		if i.Member.Permissions&discordgo.PermissionManageChannels == 0 {
			respondEphemeral(s, i, MsgManageChannels)
			return
		}
		opt := findOption(getOptions(i), OptionChannel)
		if opt == nil {
			respondEphemeral(s, i, MsgGenericError)
			return
		}
		channel := opt.ChannelValue(nil)

		if !deferResponse(s, i, true) {
			return
		}
		ctx, cancel := interactionContext()
		defer cancel()

		guildName := ""
		if g, err := s.State.Guild(i.GuildID); err == nil {
			guildName = g.Name
		}
		if _, err := client.SetupGuild(ctx, i.GuildID, guildName, channel.ID); err != nil {
			logger.FromContext(ctx).Warn(LogMsgCommandFailed, "guild", i.GuildID, "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		if _, err := s.ChannelMessageSendComplex(channel.ID, panelMessage()); err != nil {
			slog.Error("Failed to post orchard panel", "channel", channel.ID, "error", err)
			respondError(s, i, MsgGenericError)
			return
		}
		respondError(s, i, fmt.Sprintf(MsgSetupComplete, channel.ID))
	}
	return cmd, handler
}

// HelpCommand returns the help command definition and handler
func HelpCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "help",
		Description: "Learn how to play",
	}
	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, _ *APIClient) {
		if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Embeds: []*discordgo.MessageEmbed{renderHelp()},
				Flags:  discordgo.MessageFlagsEphemeral,
			},
		}); err != nil {
			slog.Error(LogMsgRespondFailed, "error", err)
		}
	}
	return cmd, handler
}

// PanelButtonHandler runs a panel action. Replies are ephemeral so each
// player sees only their own results. Custom ID: panel:<action>
func PanelButtonHandler(sessions *session.Manager) ComponentHandler {
	actions := map[string]viewFunc{
		PanelPick:      pickView,
		PanelInventory: inventoryView,
		PanelSell:      sellView(""),
		PanelShop:      shopView(sessions),
		PanelQuests:    questView(sessions),
		PanelProfile:   profileView,
	}

	return func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient, args []string) {
		if len(args) != 1 {
			respondEphemeral(s, i, MsgGenericError)
			return
		}
		fn, ok := actions[args[0]]
		if !ok {
			respondEphemeral(s, i, MsgGenericError)
			return
		}
		runView(s, i, client, fn, true)
	}
}
