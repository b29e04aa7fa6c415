package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// OpenCommand returns the case-opening command definition and handler
func OpenCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "open",
		Description: "Open a weapon case",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "request",
				Description: "Container name, optionally with a count (e.g. 梦魇武器箱 5)",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		options := getOptions(i)
		if len(options) == 0 {
			respondError(s, i, MsgGenericError)
			return
		}

		name, count := ParseOpenRequest(options[0].StringValue())
		if name == "" {
			respondError(s, i, MsgContainerNotFound)
			return
		}

		resp, message, err := client.OpenCase(groupKey(i), user.ID, name, count)
		if err != nil {
			slog.Error("Failed to open case", "container", name, "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		title := fmt.Sprintf("📦 %s x%d", resp.ContainerName, resp.Opened)
		if resp.Opened == 0 {
			title = "📦 " + resp.ContainerName
		}

		description := formatOpenResult(resp)
		if message != "" && resp.Opened > 0 {
			description = "⚠️ " + message + "\n\n" + description
		}

		embed := createEmbed(title, description, embedColor(bestTier(resp).Color()), "")
		if resp.BestSpecial != nil && resp.BestSpecial.ImageURL != "" {
			embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: resp.BestSpecial.ImageURL}
		} else if resp.ContainerImage != "" {
			embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: resp.ContainerImage}
		}
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
