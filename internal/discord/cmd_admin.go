package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

var adminPermission int64 = discordgo.PermissionAdministrator

// SyncCommand returns the admin catalog-sync command definition and handler
func SyncCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:                     "sync",
		Description:              "Refresh the container catalog from upstream (admin)",
		DefaultMemberPermissions: &adminPermission,
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		slog.Info("Catalog sync requested", "user", getInteractionUser(i).ID)

		count, err := client.SyncCatalog()
		if err != nil {
			slog.Error("Catalog sync failed", "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		embed := createEmbed(
			"🔄 同步完成",
			fmt.Sprintf("共收录 %d 个容器。", count),
			0x2ecc71,
			"",
		)
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// ResetQuotaCommand returns the admin quota-reset command definition and handler
func ResetQuotaCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:                     "resetquota",
		Description:              "Reset a user's daily opening allowance (admin)",
		DefaultMemberPermissions: &adminPermission,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "Whose allowance to reset",
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

		target := options[0].UserValue(s)
		if target == nil {
			respondError(s, i, MsgGenericError)
			return
		}

		if err := client.ResetQuota(groupKey(i), target.ID); err != nil {
			slog.Error("Failed to reset quota", "target", target.ID, "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		embed := createEmbed(
			"♻️ 已重置",
			fmt.Sprintf("%s 的今日开箱次数已重置。", target.Username),
			0x2ecc71,
			"",
		)
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
