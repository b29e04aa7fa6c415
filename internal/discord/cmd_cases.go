package discord

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// CasesCommand returns the container-listing command definition and handler
func CasesCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "cases",
		Description: "List all openable containers",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		grouped, err := client.ListContainers()
		if err != nil {
			slog.Error("Failed to list containers", "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		description := formatContainerList(grouped)
		// Discord caps embed descriptions at 4096 characters
		if runes := []rune(description); len(runes) > 4000 {
			description = string(runes[:4000]) + "…"
		}

		embed := createEmbed("📦 可开启的容器", description, 0x3498db, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
