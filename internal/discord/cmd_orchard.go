package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
	"github.com/punaab/discord-ts-UQkA/internal/economy"
)

func pickView(ctx context.Context, client *APIClient, user *discordgo.User) (*view, error) {
	res, err := client.Pick(ctx, user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	return &view{Embed: renderPick(res)}, nil
}

func inventoryView(ctx context.Context, client *APIClient, user *discordgo.User) (*view, error) {
	inv, err := client.GetInventory(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &view{Embed: renderInventory(user.Username, inv)}, nil
}

func sellView(rarity string) viewFunc {
	return func(ctx context.Context, client *APIClient, user *discordgo.User) (*view, error) {
		res, err := client.Sell(ctx, user.ID, rarity)
		if err != nil {
			return nil, err
		}
		return &view{Embed: renderSale(res)}, nil
	}
}

func profileView(ctx context.Context, client *APIClient, user *discordgo.User) (*view, error) {
	p, err := client.GetProfile(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &view{Embed: renderProfile(user, p)}, nil
}

// PickCommand returns the pick command definition and handler
func PickCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "pick",
		Description: "Pick fruit from your orchard",
	}
	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		runView(s, i, client, pickView, false)
	}
	return cmd, handler
}

// DailyCommand returns the daily reward command definition and handler
func DailyCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "daily",
		Description: "Claim your daily coin reward",
	}
	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		runView(s, i, client, func(ctx context.Context, client *APIClient, user *discordgo.User) (*view, error) {
			res, err := client.ClaimDaily(ctx, user.ID, user.Username)
			if err != nil {
				return nil, err
			}
			return &view{Embed: renderDaily(res)}, nil
		}, false)
	}
	return cmd, handler
}

func rarityChoices(includeAll bool) []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(domain.Rarities)+1)
	if includeAll {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: "All", Value: "all"})
	}
	for _, r := range domain.Rarities {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  economy.RarityDisplayName(r),
			Value: r.String(),
		})
	}
	return choices
}

// SellCommand returns the sell command definition and handler
func SellCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "sell",
		Description: "Sell your fruit at market prices",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptionRarity,
				Description: "Only sell fruit of this rarity (default: all)",
				Choices:     rarityChoices(true),
			},
		},
	}
	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		rarity := ""
		if opt := findOption(getOptions(i), OptionRarity); opt != nil && opt.StringValue() != "all" {
			rarity = opt.StringValue()
		}
		runView(s, i, client, sellView(rarity), false)
	}
	return cmd, handler
}

// InventoryCommand returns the inventory command definition and handler
func InventoryCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "inventory",
		Description: "See the fruit in your basket",
	}
	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		runView(s, i, client, inventoryView, false)
	}
	return cmd, handler
}

// MarketCommand returns the market command definition and handler
func MarketCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "market",
		Description: "Check current fruit prices",
	}
	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		runView(s, i, client, func(ctx context.Context, client *APIClient, _ *discordgo.User) (*view, error) {
			report, err := client.GetMarket(ctx)
			if err != nil {
				return nil, err
			}
			return &view{Embed: renderMarket(report)}, nil
		}, false)
	}
	return cmd, handler
}

// ProfileCommand returns the profile command definition and handler
func ProfileCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "profile",
		Description: "View your orchard stats",
	}
	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		runView(s, i, client, profileView, false)
	}
	return cmd, handler
}

// LeaderboardCommand returns the leaderboard command definition and handler
func LeaderboardCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "leaderboard",
		Description: "See the top players",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptionMetric,
				Description: "What to rank by (default: coins)",
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Coins", Value: string(domain.MetricCoins)},
					{Name: "Fruit Picked", Value: string(domain.MetricPicked)},
					{Name: "Gems", Value: string(domain.MetricGems)},
					{Name: "Level", Value: string(domain.MetricLevel)},
				},
			},
		},
	}
	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		var metric domain.LeaderboardMetric
		if opt := findOption(getOptions(i), OptionMetric); opt != nil {
			metric = domain.LeaderboardMetric(opt.StringValue())
		}
		runView(s, i, client, func(ctx context.Context, client *APIClient, user *discordgo.User) (*view, error) {
			lb, err := client.GetLeaderboard(ctx, user.ID, metric)
			if err != nil {
				return nil, err
			}
			return &view{Embed: renderLeaderboard(lb)}, nil
		}, false)
	}
	return cmd, handler
}
