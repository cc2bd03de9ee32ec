package discord

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bwmarrin/discordgo"
)

// CommandHandler handles a slash command
type CommandHandler func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient)

// ComponentHandler handles a button press. args are the custom ID parts after the prefix.
type ComponentHandler func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient, args []string)

// CommandRegistry holds the registered commands and component handlers
type CommandRegistry struct {
	mu         sync.RWMutex
	Commands   map[string]*discordgo.ApplicationCommand
	Handlers   map[string]CommandHandler
	Components map[string]ComponentHandler

	received    atomic.Int64
	lastCommand atomic.Int64
}

// NewCommandRegistry creates a new registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		Commands:   make(map[string]*discordgo.ApplicationCommand),
		Handlers:   make(map[string]CommandHandler),
		Components: make(map[string]ComponentHandler),
	}
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand, handler CommandHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Commands[cmd.Name] = cmd
	r.Handlers[cmd.Name] = handler
}

// RegisterComponent routes button presses whose custom ID starts with prefix
func (r *CommandRegistry) RegisterComponent(prefix string, handler ComponentHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Components[prefix] = handler
}

// Handle processes an interaction
func (r *CommandRegistry) Handle(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		r.mu.RLock()
		h, ok := r.Handlers[i.ApplicationCommandData().Name]
		r.mu.RUnlock()
		if ok {
			r.record()
			h(s, i, client)
		}
	case discordgo.InteractionMessageComponent:
		prefix, args := parseCustomID(i.MessageComponentData().CustomID)
		r.mu.RLock()
		h, ok := r.Components[prefix]
		r.mu.RUnlock()
		if !ok {
			slog.Warn(LogMsgUnknownComponent, "custom_id", i.MessageComponentData().CustomID)
			return
		}
		r.record()
		h(s, i, client, args)
	}
}

func (r *CommandRegistry) record() {
	r.received.Add(1)
	r.lastCommand.Store(time.Now().UnixNano())
}

// Stats returns the number of handled interactions and when the last one arrived
func (r *CommandRegistry) Stats() (int64, time.Time) {
	var last time.Time
	if ns := r.lastCommand.Load(); ns > 0 {
		last = time.Unix(0, ns)
	}
	return r.received.Load(), last
}

// RegisterCommands registers or updates commands with Discord.
// Only performs updates if commands have changed to avoid rate limits.
func (b *Bot) RegisterCommands(forceUpdate bool) error {
	slog.Info("Checking Discord commands...")

	b.Registry.mu.RLock()
	desiredCmds := make([]*discordgo.ApplicationCommand, 0, len(b.Registry.Commands))
	for _, cmd := range b.Registry.Commands {
		desiredCmds = append(desiredCmds, cmd)
	}
	b.Registry.mu.RUnlock()

	if !forceUpdate {
		existingCmds, err := b.Session.ApplicationCommands(b.AppID, "")
		if err != nil {
			return fmt.Errorf("failed to fetch existing commands: %w", err)
		}
		if commandsEqual(existingCmds, desiredCmds) {
			slog.Info(LogMsgCommandsUnchanged, "count", len(existingCmds))
			return nil
		}
		slog.Info("Commands changed, updating...", "existing", len(existingCmds), "desired", len(desiredCmds))
	}

	if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, "", desiredCmds); err != nil {
		return fmt.Errorf("failed to update commands: %w", err)
	}
	slog.Info(LogMsgCommandsUpdated, "count", len(desiredCmds))
	return nil
}

// commandsEqual checks if two command sets are equivalent
func commandsEqual(existing, desired []*discordgo.ApplicationCommand) bool {
	if len(existing) != len(desired) {
		return false
	}

	existingMap := make(map[string]*discordgo.ApplicationCommand, len(existing))
	for _, cmd := range existing {
		existingMap[cmd.Name] = cmd
	}

	for _, d := range desired {
		e, ok := existingMap[d.Name]
		if !ok || !commandEqual(e, d) {
			return false
		}
	}
	return true
}

func commandEqual(a, b *discordgo.ApplicationCommand) bool {
	if a.Name != b.Name || a.Description != b.Description {
		return false
	}
	if (a.DefaultMemberPermissions == nil) != (b.DefaultMemberPermissions == nil) {
		return false
	}
	if a.DefaultMemberPermissions != nil && *a.DefaultMemberPermissions != *b.DefaultMemberPermissions {
		return false
	}
	return optionsEqual(a.Options, b.Options)
}

// optionsEqual compares option trees, including subcommand options
func optionsEqual(a, b []*discordgo.ApplicationCommandOption) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		x, y := a[i], b[i]
		if x.Type != y.Type || x.Name != y.Name || x.Description != y.Description || x.Required != y.Required {
			return false
		}
		if len(x.Choices) != len(y.Choices) {
			return false
		}
		for j := range x.Choices {
			if x.Choices[j].Name != y.Choices[j].Name || fmt.Sprint(x.Choices[j].Value) != fmt.Sprint(y.Choices[j].Value) {
				return false
			}
		}
		if !optionsEqual(x.Options, y.Options) {
			return false
		}
	}
	return true
}
