package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
	"github.com/punaab/discord-ts-UQkA/internal/economy"
)

const progressBarLength = 10

func fruitDisplayName(f *domain.Fruit) string {
	if ft, ok := economy.LookupFruit(f.Name); ok {
		return ft.DisplayName()
	}
	return f.Name
}

func renderPick(res *domain.PickResult) *discordgo.MessageEmbed {
	var b strings.Builder
	for _, f := range res.Fruits {
		fmt.Fprintf(&b, "%s *(%s)* worth **%d** coins\n", fruitDisplayName(f), economy.RarityDisplayName(f.Rarity), f.Value)
	}
	fmt.Fprintf(&b, "\n⭐ +%d XP", res.XPGained)
	if res.LevelUp {
		fmt.Fprintf(&b, "\n🎉 **Level up!** You are now level %d", res.Level)
	}
	for _, name := range res.NewlyComplete {
		fmt.Fprintf(&b, "\n🏅 Achievement unlocked: **%s**", name)
	}
	fmt.Fprintf(&b, "\n\nNext pick %s", relativeTimestamp(res.NextPickAt))

	return createEmbed(fmt.Sprintf("🧺 You picked %d fruit!", len(res.Fruits)), b.String(), ColorGreen)
}

func renderDaily(res *domain.DailyResult) *discordgo.MessageEmbed {
	desc := fmt.Sprintf("💰 **+%d coins** (balance %d)\n🔥 Streak: **%d** day(s)", res.Reward, res.Coins, res.Streak)
	if res.StreakReset {
		desc += "\n*Your streak was reset. Claim every day to keep it going!*"
	}
	desc += "\n\nNext claim " + relativeTimestamp(res.NextClaimAt)
	return createEmbed("📅 Daily Reward", desc, ColorGold)
}

func renderSale(res *domain.SaleResult) *discordgo.MessageEmbed {
	counts := make(map[domain.Rarity]int)
	for _, f := range res.Sold {
		counts[f.Rarity]++
	}

	var b strings.Builder
	for _, r := range domain.Rarities {
		if n := counts[r]; n > 0 {
			fmt.Fprintf(&b, "%s %s × %d\n", economy.RarityEmoji(r), economy.RarityDisplayName(r), n)
		}
	}
	fmt.Fprintf(&b, "\n💰 Earned **%d** coins (balance %d)", res.Total, res.Coins)
	for _, name := range res.NewlyComplete {
		fmt.Fprintf(&b, "\n🏅 Achievement unlocked: **%s**", name)
	}
	return createEmbed(fmt.Sprintf("🛒 Sold %d fruit", res.Count), b.String(), ColorOrange)
}

func renderInventory(username string, inv *domain.InventorySummary) *discordgo.MessageEmbed {
	embed := createEmbed(fmt.Sprintf("🧺 %s's Basket", username), "", ColorBlue)
	if inv.TotalCount == 0 {
		embed.Description = "Your basket is empty. Use /pick to gather some fruit!"
		return embed
	}

	embed.Description = fmt.Sprintf("**%d** fruit worth **%d** coins", inv.TotalCount, inv.TotalValue)
	for _, g := range inv.Groups {
		if g.Count == 0 {
			continue
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("%s %s", economy.RarityEmoji(g.Rarity), economy.RarityDisplayName(g.Rarity)),
			Value:  fmt.Sprintf("%d fruit · %d coins", g.Count, g.TotalValue),
			Inline: true,
		})
	}
	return embed
}

func renderMarket(report *domain.MarketReport) *discordgo.MessageEmbed {
	embed := createEmbed("📈 Fruit Market",
		fmt.Sprintf("Prices refresh %s", relativeTimestamp(report.EndsAt)), ColorPurple)

	for _, q := range report.Quotes {
		trend := "➖"
		switch q.Trend.Direction {
		case domain.TrendAbove:
			trend = fmt.Sprintf("📈 +%d%%", q.Trend.Magnitude)
		case domain.TrendBelow:
			trend = fmt.Sprintf("📉 -%d%%", q.Trend.Magnitude)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("%s %s", economy.RarityEmoji(q.Rarity), economy.RarityDisplayName(q.Rarity)),
			Value:  fmt.Sprintf("**%d** coins (base %d)\n%s", q.Price, q.BasePrice, trend),
			Inline: true,
		})
	}
	return embed
}

func renderProfile(user *discordgo.User, p *domain.Profile) *discordgo.MessageEmbed {
	a := p.Account
	embed := createEmbed(fmt.Sprintf("%s's Orchard", user.Username), "", ColorGreen)
	embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: user.AvatarURL("")}
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Level", Value: fmt.Sprintf("%d\n%s %d/%d XP", a.Level,
			buildProgressBar(p.XPIntoLevel, p.XPForNext, progressBarLength), p.XPIntoLevel, p.XPForNext)},
		{Name: "Coins", Value: fmt.Sprintf("💰 %d", a.Coins), Inline: true},
		{Name: "Gems", Value: fmt.Sprintf("💎 %d", a.Gems), Inline: true},
		{Name: "Daily Streak", Value: fmt.Sprintf("🔥 %d", a.DailyStreak), Inline: true},
		{Name: "Fruit Picked", Value: fmt.Sprintf("%d", a.Stats.TotalPicked), Inline: true},
		{Name: "Fruit Sold", Value: fmt.Sprintf("%d", a.Stats.TotalSold), Inline: true},
		{Name: "In Basket", Value: fmt.Sprintf("%d", p.UnsoldFruits), Inline: true},
	}

	var upgrades strings.Builder
	for _, track := range domain.UpgradeTracks {
		fmt.Fprintf(&upgrades, "%s: tier %d\n", economy.UpgradeDisplayName(track), a.Upgrades.Tier(track))
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Upgrades", Value: upgrades.String()})

	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name: "Cooldowns",
		Value: fmt.Sprintf("Pick %s\nDaily %s\nSteal %s",
			relativeTimestamp(p.NextPickAt), relativeTimestamp(p.NextDailyAt), relativeTimestamp(p.NextStealAt)),
	})
	return embed
}

func renderLeaderboard(lb *domain.Leaderboard) *discordgo.MessageEmbed {
	embed := createEmbed("🏆 Leaderboard: "+economy.TitleCase(string(lb.Metric)), "", ColorGold)
	if len(lb.Entries) == 0 {
		embed.Description = "Nobody has picked any fruit yet."
		return embed
	}

	var b strings.Builder
	for _, e := range lb.Entries {
		medal := fmt.Sprintf("`#%d`", e.Rank)
		switch e.Rank {
		case 1:
			medal = "🥇"
		case 2:
			medal = "🥈"
		case 3:
			medal = "🥉"
		}
		fmt.Fprintf(&b, "%s **%s** · %d\n", medal, e.Username, e.Value)
	}
	if lb.CallerRank > 0 {
		fmt.Fprintf(&b, "\nYour rank: **#%d**", lb.CallerRank)
	}
	embed.Description = b.String()
	return embed
}

func renderSteal(res *domain.StealResult, targetMention string) *discordgo.MessageEmbed {
	chance := fmt.Sprintf("%.0f%%", res.Chance*100)
	if !res.Success {
		return createEmbed("🚨 Caught!",
			fmt.Sprintf("%s noticed you sneaking around. (%s chance)\nTry again %s", targetMention, chance, relativeTimestamp(res.NextStealAt)),
			ColorRed)
	}

	desc := fmt.Sprintf("You snatched a fruit from %s! (%s chance)", targetMention, chance)
	if res.Fruit != nil {
		desc = fmt.Sprintf("You snatched %s worth **%d** coins from %s! (%s chance)",
			fruitDisplayName(res.Fruit), res.Fruit.Value, targetMention, chance)
	}
	return createEmbed("🥷 Heist Successful", desc, ColorGreen)
}

// renderShop builds the shop embed with one buy button per track bound to sessionID
func renderShop(shop *domain.Shop, sessionID, notice string) *view {
	desc := fmt.Sprintf("💰 Balance: **%d** coins", shop.Coins)
	if notice != "" {
		desc = notice + "\n\n" + desc
	}
	embed := createEmbed("🛠️ Upgrade Shop", desc, ColorOrange)
	embed.Footer.Text = "Buttons expire after 60 seconds"

	buttons := make([]discordgo.MessageComponent, 0, len(shop.Entries))
	for _, e := range shop.Entries {
		price := "MAX"
		if e.NextPrice != nil {
			price = fmt.Sprintf("%d coins", *e.NextPrice)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%s (tier %d/%d)", e.Name, e.Tier, e.MaxTier),
			Value: fmt.Sprintf("%s\nNext: **%s**", e.Description, price),
		})

		style := discordgo.PrimaryButton
		if !e.Affordable {
			style = discordgo.SecondaryButton
		}
		buttons = append(buttons, discordgo.Button{
			Label:    economy.UpgradeDisplayName(e.Track),
			Style:    style,
			Disabled: e.NextPrice == nil,
			CustomID: customID(PrefixShop, sessionID, string(e.Track)),
		})
	}

	return &view{
		Embed:      embed,
		Components: []discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}},
	}
}

// renderQuestBoard builds the quest embed with claim buttons bound to sessionID
func renderQuestBoard(board *domain.QuestBoard, sessionID, notice string) *view {
	embed := createEmbed("📜 Quests", notice, ColorBlue)
	embed.Footer.Text = "Buttons expire after 5 minutes"

	var buttons []discordgo.MessageComponent
	for _, qv := range []domain.QuestView{board.Daily, board.Weekly} {
		name := economy.TitleCase(string(qv.Cycle)) + " Quest"
		if qv.Quest == nil {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: name, Value: "No quest available"})
			continue
		}

		q := qv.Quest
		status := "🔄 In Progress"
		if qv.State == domain.QuestCompleted {
			status = "✅ Ready to Claim!"
		}
		value := fmt.Sprintf("%s\n%s\n%s `%d/%d`\n💰 %d coins", q.Description, status,
			buildProgressBar(q.Progress, q.Target, progressBarLength), min(q.Progress, q.Target), q.Target, q.Reward.Coins)
		if q.Reward.Gems > 0 {
			value += fmt.Sprintf(" · 💎 %d gems", q.Reward.Gems)
		}
		if qv.ExpiresAt != nil {
			value += "\nRefreshes " + relativeTimestamp(*qv.ExpiresAt)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: name, Value: value})

		buttons = append(buttons, discordgo.Button{
			Label:    "Claim " + economy.TitleCase(string(qv.Cycle)),
			Style:    discordgo.SuccessButton,
			Disabled: qv.State != domain.QuestCompleted,
			CustomID: customID(PrefixQuest, sessionID, string(qv.Cycle)),
		})
	}

	v := &view{Embed: embed}
	if len(buttons) > 0 {
		v.Components = []discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}}
	}
	return v
}

func renderAchievements(views []domain.AchievementView) *discordgo.MessageEmbed {
	embed := createEmbed("🏅 Achievements", "", ColorPurple)
	completed := 0
	for _, v := range views {
		status := buildProgressBar(v.Progress, v.Requirements.Target, progressBarLength)
		switch {
		case v.Claimed:
			status = "🎁 Claimed"
			completed++
		case v.Completed:
			status = "✅ Ready to claim"
			completed++
		}
		icon := v.Icon
		if icon == "" {
			icon = economy.RarityEmoji(v.Rarity)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%s %s", icon, v.Name),
			Value: fmt.Sprintf("%s\n%s `%d/%d`", v.Description, status, min(v.Progress, v.Requirements.Target), v.Requirements.Target),
		})
	}
	embed.Description = fmt.Sprintf("%d of %d completed", completed, len(views))
	return embed
}

func renderAchievementClaim(res *domain.AchievementClaimResult) *discordgo.MessageEmbed {
	desc := fmt.Sprintf("Rewards: 💰 %d coins · 💎 %d gems · ⭐ %d XP", res.Reward.Coins, res.Reward.Gems, res.Reward.XP)
	if res.LevelUp {
		desc += fmt.Sprintf("\n🎉 **Level up!** You are now level %d", res.Level)
	}
	return createEmbed("🏅 "+res.Name, desc, ColorGold)
}

func renderHelp() *discordgo.MessageEmbed {
	embed := createEmbed("🍎 Orchard Help", "Pick fruit, sell it on the market and grow your orchard.", ColorGreen)
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "/pick", Value: "Pick fruit from your trees"},
		{Name: "/daily", Value: "Claim your daily coins and keep your streak"},
		{Name: "/sell [rarity]", Value: "Sell all your fruit, or one rarity"},
		{Name: "/inventory", Value: "See what's in your basket"},
		{Name: "/shop", Value: "Buy upgrades for your orchard"},
		{Name: "/market", Value: "Check current fruit prices"},
		{Name: "/steal user", Value: "Try to steal a fruit from another player"},
		{Name: "/quest", Value: "View and claim daily and weekly quests"},
		{Name: "/achievement list | claim", Value: "Track and claim achievements"},
		{Name: "/leaderboard [metric]", Value: "See the top players"},
		{Name: "/profile", Value: "View your stats"},
		{Name: "/setup channel", Value: "Post the orchard panel (Manage Channels)"},
	}
	return embed
}

// panelMessage is the persistent button panel posted by /setup
func panelMessage() *discordgo.MessageSend {
	button := func(label, emoji, action string, style discordgo.ButtonStyle) discordgo.Button {
		return discordgo.Button{
			Label:    label,
			Style:    style,
			Emoji:    &discordgo.ComponentEmoji{Name: emoji},
			CustomID: customID(PrefixPanel, action),
		}
	}

	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{
			createEmbed("🍎 The Orchard", "Use the buttons below to play. Replies are only visible to you.", ColorGreen),
		},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				button("Pick", "🧺", PanelPick, discordgo.SuccessButton),
				button("Inventory", "🎒", PanelInventory, discordgo.PrimaryButton),
				button("Sell All", "💰", PanelSell, discordgo.PrimaryButton),
			}},
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				button("Shop", "🛠️", PanelShop, discordgo.SecondaryButton),
				button("Quests", "📜", PanelQuests, discordgo.SecondaryButton),
				button("Profile", "👤", PanelProfile, discordgo.SecondaryButton),
			}},
		},
	}
}
