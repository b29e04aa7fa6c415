package discord

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// PriceCommand returns the price-lookup command definition and handler
func PriceCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "price",
		Description: "Look up market prices for an item",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "item",
				Description: "Item name to search for",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		options := getOptions(i)
		if len(options) == 0 {
			respondError(s, i, MsgGenericError)
			return
		}

		quote, err := client.GetPrice(options[0].StringValue())
		if err != nil {
			slog.Error("Failed to get price", "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		embed := createEmbed("💰 "+quote.Name, formatQuote(quote), 0xf1c40f, "")
		if quote.ImageURL != "" {
			embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: quote.ImageURL}
		}
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
