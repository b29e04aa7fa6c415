package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/luooka/casebot/internal/handler"
)

// CommandHandler handles a slash command
type CommandHandler func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient)

// CommandRegistry holds the registered commands
type CommandRegistry struct {
	Commands map[string]*discordgo.ApplicationCommand
	Handlers map[string]CommandHandler
}

// NewCommandRegistry creates a new registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		Commands: make(map[string]*discordgo.ApplicationCommand),
		Handlers: make(map[string]CommandHandler),
	}
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand, handler CommandHandler) {
	r.Commands[cmd.Name] = cmd
	r.Handlers[cmd.Name] = handler
}

// Handle processes an interaction
func (r *CommandRegistry) Handle(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	if h, ok := r.Handlers[i.ApplicationCommandData().Name]; ok {
		h(s, i, client)
	}
}

// RegisterCommands registers/updates commands with Discord.
// Only performs updates if commands have changed to avoid rate limits
func (b *Bot) RegisterCommands(registry *CommandRegistry, forceUpdate bool) error {
	slog.Info("Checking Discord commands...")

	existingCmds, err := b.Session.ApplicationCommands(b.AppID, "")
	if err != nil {
		return fmt.Errorf("failed to fetch existing commands: %w", err)
	}

	desiredCmds := make([]*discordgo.ApplicationCommand, 0, len(registry.Commands))
	for _, cmd := range registry.Commands {
		desiredCmds = append(desiredCmds, cmd)
	}

	if forceUpdate {
		slog.Info("Force update enabled - replacing all commands", "count", len(desiredCmds))
		_, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, "", desiredCmds)
		if err != nil {
			return fmt.Errorf("failed to bulk overwrite commands: %w", err)
		}
		slog.Info("Commands force updated successfully")
		return nil
	}

	if commandsEqual(existingCmds, desiredCmds) {
		slog.Info("Commands unchanged, skipping registration", "count", len(existingCmds))
		return nil
	}

	slog.Info("Commands changed, updating...",
		"existing", len(existingCmds),
		"desired", len(desiredCmds))

	_, err = b.Session.ApplicationCommandBulkOverwrite(b.AppID, "", desiredCmds)
	if err != nil {
		return fmt.Errorf("failed to update commands: %w", err)
	}

	slog.Info("Commands updated successfully", "count", len(desiredCmds))
	return nil
}

// commandsEqual checks if two command sets are equivalent
func commandsEqual(existing, desired []*discordgo.ApplicationCommand) bool {
	if len(existing) != len(desired) {
		return false
	}

	existingMap := make(map[string]*discordgo.ApplicationCommand)
	for _, cmd := range existing {
		existingMap[cmd.Name] = cmd
	}

	for _, want := range desired {
		have, ok := existingMap[want.Name]
		if !ok {
			return false
		}
		if !commandEqual(have, want) {
			return false
		}
	}

	return true
}

// commandEqual checks if two commands are equivalent
func commandEqual(a, b *discordgo.ApplicationCommand) bool {
	if a.Name != b.Name || a.Description != b.Description {
		return false
	}
	if len(a.Options) != len(b.Options) {
		return false
	}
	for idx := range a.Options {
		ao, bo := a.Options[idx], b.Options[idx]
		if ao.Name != bo.Name || ao.Description != bo.Description ||
			ao.Type != bo.Type || ao.Required != bo.Required {
			return false
		}
	}
	return true
}

// deferResponse sends a deferred response for slow operations.
// Returns false if deferral failed (should return early from handler).
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		slog.Error("Failed to send deferred response", "error", err)
		return false
	}
	return true
}

// getInteractionUser extracts the user from an interaction.
// Handles both guild (i.Member.User) and DM (i.User) contexts.
func getInteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// groupKey returns the quota/inventory grouping key for an interaction.
// Guild interactions group by guild, direct messages share one bucket.
func groupKey(i *discordgo.InteractionCreate) string {
	if i.GuildID != "" {
		return i.GuildID
	}
	return "dm"
}

// getOptions extracts command options from an interaction
func getOptions(i *discordgo.InteractionCreate) []*discordgo.ApplicationCommandInteractionDataOption {
	return i.ApplicationCommandData().Options
}

// respondError edits the deferred response with an error message
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &message,
	}); err != nil {
		slog.Error("Failed to send error response", "error", err)
	}
}

// respondFriendlyError formats the error message before responding
func respondFriendlyError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	respondError(s, i, formatFriendlyError(message))
}

// formatFriendlyError cleans up technical error messages
func formatFriendlyError(msg string) string {
	if strings.HasPrefix(msg, "API error: ") {
		msg = strings.TrimPrefix(msg, "API error: ")
	}

	switch {
	case strings.Contains(msg, handler.ErrMsgContainerNotFoundError):
		return MsgContainerNotFound
	case strings.Contains(msg, handler.ErrMsgItemNotFoundError):
		return MsgItemNotFound
	case strings.Contains(msg, handler.ErrMsgCatalogEmptyError):
		return MsgCatalogEmpty
	case strings.Contains(msg, handler.ErrMsgEmptyPoolError):
		return MsgEmptyPool
	case strings.Contains(msg, handler.ErrMsgLedgerBusyError):
		return MsgLedgerBusy
	case strings.Contains(msg, handler.ErrMsgUpstreamError):
		return MsgUpstreamDown
	default:
		return "❌ " + msg
	}
}

// sendEmbed edits the deferred response with an embed
func sendEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		slog.Error("Failed to send response", "error", err)
	}
}

// FooterCasebot is the standard footer for user-facing embeds
const FooterCasebot = "casebot"

// createEmbed creates a standard embed with the default footer
func createEmbed(title, description string, color int, footerText string) *discordgo.MessageEmbed {
	if footerText == "" {
		footerText = FooterCasebot
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: footerText,
		},
	}
}
