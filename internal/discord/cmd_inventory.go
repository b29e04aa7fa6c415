package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// InventoryCommand returns the inventory command definition and handler
func InventoryCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "inventory",
		Description: "View your case-opening inventory",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)

		view, err := client.GetInventory(groupKey(i), user.ID)
		if err != nil {
			slog.Error("Failed to get inventory", "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		embed := createEmbed(
			fmt.Sprintf("🎒 %s 的仓库", user.Username),
			formatInventory(view),
			0x9b59b6, // Purple
			"",
		)
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// PurgeCommand returns the inventory-clearing command definition and handler
func PurgeCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "purge",
		Description: "Clear your case-opening inventory",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)

		if err := client.PurgeInventory(groupKey(i), user.ID); err != nil {
			slog.Error("Failed to purge inventory", "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		embed := createEmbed("🧹 仓库已清空", "所有记录已删除。", 0x2ecc71, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
