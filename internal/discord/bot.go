package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/punaab/discord-ts-UQkA/internal/session"
)

// Bot represents the Discord bot
type Bot struct {
	Session  *discordgo.Session
	Client   *APIClient
	AppID    string
	Registry *CommandRegistry
	Sessions *session.Manager
}

// Config holds the bot configuration
type Config struct {
	Token  string
	AppID  string
	APIURL string
	APIKey string
}

// New creates a new Discord bot
func New(cfg Config, sessions *session.Manager) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds

	return &Bot{
		Session:  s,
		Client:   NewAPIClient(cfg.APIURL, cfg.APIKey),
		AppID:    cfg.AppID,
		Registry: NewCommandRegistry(),
		Sessions: sessions,
	}, nil
}

// RegisterDefaults registers every slash command and button handler
func (b *Bot) RegisterDefaults() {
	for _, factory := range []func() (*discordgo.ApplicationCommand, CommandHandler){
		PickCommand,
		DailyCommand,
		SellCommand,
		InventoryCommand,
		MarketCommand,
		StealCommand,
		LeaderboardCommand,
		ProfileCommand,
		SetupCommand,
		HelpCommand,
		func() (*discordgo.ApplicationCommand, CommandHandler) { return ShopCommand(b.Sessions) },
		func() (*discordgo.ApplicationCommand, CommandHandler) { return QuestCommand(b.Sessions) },
		AchievementCommand,
	} {
		cmd, handler := factory()
		b.Registry.Register(cmd, handler)
	}

	b.Registry.RegisterComponent(PrefixShop, ShopButtonHandler(b.Sessions))
	b.Registry.RegisterComponent(PrefixQuest, QuestButtonHandler(b.Sessions))
	b.Registry.RegisterComponent(PrefixPanel, PanelButtonHandler(b.Sessions))
}

// Start opens the gateway connection
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	slog.Info("Discord bot is now running")
	return nil
}

// Stop closes the gateway connection
func (b *Bot) Stop() {
	if err := b.Session.Close(); err != nil {
		slog.Error("Failed to close Discord session", "error", err)
	}
}

// Run runs the bot until ctx is cancelled
func (b *Bot) Run(ctx context.Context) error {
	if err := b.Start(); err != nil {
		return err
	}
	defer b.Stop()

	<-ctx.Done()
	return nil
}

func (b *Bot) ready(s *discordgo.Session, _ *discordgo.Ready) {
	slog.Info(LogMsgBotReady, "user", s.State.User.Username)
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	b.Registry.Handle(s, i, b.Client)
}
