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

// questView loads the quest board and opens a quest session owned by user
func questView(sessions *session.Manager) viewFunc {
	return func(ctx context.Context, client *APIClient, user *discordgo.User) (*view, error) {
		board, err := client.GetQuestBoard(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		sess, err := sessions.Open(ctx, session.KindQuest, user.ID, nil)
		if err != nil {
			return nil, err
		}
		return renderQuestBoard(board, sess.ID, ""), nil
	}
}

// QuestCommand returns the quest board command definition and handler
func QuestCommand(sessions *session.Manager) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "quest",
		Description: "View and claim your daily and weekly quests",
	}
	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		runView(s, i, client, questView(sessions), false)
	}
	return cmd, handler
}

// QuestButtonHandler claims the pressed quest slot and redraws the board.
// Custom ID: quest:<session>:<cycle>
func QuestButtonHandler(sessions *session.Manager) ComponentHandler {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient, args []string) {
		if len(args) != 2 {
			respondEphemeral(s, i, MsgGenericError)
			return
		}
		sessionID, cycle := args[0], domain.QuestCycle(args[1])

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

		res, err := client.ClaimQuest(ctx, user.ID, cycle)
		if err != nil {
			logger.FromContext(ctx).Warn(LogMsgCommandFailed, "user", user.ID, "cycle", cycle, "error", err)
			followupEphemeral(s, i, formatFriendlyError(err))
			return
		}

		board, err := client.GetQuestBoard(ctx, user.ID)
		if err != nil {
			followupEphemeral(s, i, formatFriendlyError(err))
			return
		}
		notice := fmt.Sprintf("🎉 %s quest complete! +%d coins", economy.TitleCase(string(res.Cycle)), res.Reward.Coins)
		if res.Reward.Gems > 0 {
			notice += fmt.Sprintf(", +%d gems", res.Reward.Gems)
		}
		sendView(s, i, renderQuestBoard(board, sessionID, notice))
	}
}

// AchievementCommand returns the achievement command definition and handler
func AchievementCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "achievement",
		Description: "Track and claim achievements",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        SubcommandList,
				Description: "List achievements and your progress",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        SubcommandClaim,
				Description: "Claim a completed achievement",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        OptionName,
						Description: "Achievement name",
						Required:    true,
					},
				},
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		options := getOptions(i)
		if len(options) == 0 {
			respondEphemeral(s, i, MsgGenericError)
			return
		}

		sub := options[0]
		switch sub.Name {
		case SubcommandClaim:
			name := ""
			if opt := findOption(sub.Options, OptionName); opt != nil {
				name = opt.StringValue()
			}
			runView(s, i, client, func(ctx context.Context, client *APIClient, user *discordgo.User) (*view, error) {
				res, err := client.ClaimAchievement(ctx, user.ID, name)
				if err != nil {
					return nil, err
				}
				return &view{Embed: renderAchievementClaim(res)}, nil
			}, false)
		default:
			runView(s, i, client, func(ctx context.Context, client *APIClient, user *discordgo.User) (*view, error) {
				views, err := client.GetAchievements(ctx, user.ID)
				if err != nil {
					return nil, err
				}
				return &view{Embed: renderAchievements(views)}, nil
			}, false)
		}
	}
	return cmd, handler
}
