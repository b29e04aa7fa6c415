package discord

import (
	"fmt"
	"sort"
	"strings"

	"github.com/luooka/casebot/internal/domain"
	"github.com/luooka/casebot/internal/opening"
	"github.com/luooka/casebot/internal/pricing"
	"github.com/luooka/casebot/internal/quota"
)

// maxOutcomeLines caps the per-drop listing in an embed; larger openings
// collapse to the tier summary.
const maxOutcomeLines = 20

func embedColor(c domain.TierColor) int {
	return int(c.R)<<16 | int(c.G)<<8 | int(c.B)
}

// bestTier returns the rarest tier present in the result, for embed color.
func bestTier(resp *opening.Response) domain.Tier {
	best := domain.TierConsumer
	for tier := range resp.TierSummary {
		if tier.Rank() > best.Rank() {
			best = tier
		}
	}
	return best
}

func formatOutcomeLine(o *domain.DropOutcome) string {
	line := fmt.Sprintf("【%s】%s (%s) %.8f", o.Tier, o.Name, o.WearLevel, o.WearValue)
	if o.IsSpecial {
		line = "🎉 " + line
	}
	return line
}

// formatOpenResult renders an opening result as an embed description.
func formatOpenResult(resp *opening.Response) string {
	var b strings.Builder

	if resp.Opened == 0 {
		b.WriteString("今日开箱次数已用完，明天再来吧。\n")
		return b.String()
	}

	if resp.Opened <= maxOutcomeLines {
		for _, o := range resp.Outcomes {
			b.WriteString(formatOutcomeLine(o))
			b.WriteByte('\n')
		}
	} else {
		for _, tier := range domain.AllTiers() {
			if n := resp.TierSummary[tier]; n > 0 {
				fmt.Fprintf(&b, "【%s】 x%d\n", tier, n)
			}
		}
	}

	if resp.BestSpecial != nil {
		fmt.Fprintf(&b, "\n✨ 最佳掉落: %s (%s) %.8f\n",
			resp.BestSpecial.Name, resp.BestSpecial.WearLevel, resp.BestSpecial.WearValue)
	}

	fmt.Fprintf(&b, "\n仓库总数: %d", resp.InventoryTotal)
	if resp.QuotaRemaining != quota.UnlimitedRemaining {
		fmt.Fprintf(&b, " | 今日剩余: %d", resp.QuotaRemaining)
	}

	return b.String()
}

// formatInventory renders a user's holdings as an embed description.
func formatInventory(view *InventoryView) string {
	if view.Stats == nil || view.Stats.Total == 0 {
		return "仓库是空的，先开几个箱子吧。"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "仓库总数: %d\n\n", view.Stats.Total)

	for _, tier := range domain.AllTiers() {
		if n := view.Stats.TierCounts[tier]; n > 0 {
			fmt.Fprintf(&b, "【%s】 x%d\n", tier, n)
		}
	}

	if len(view.Stats.Recent) > 0 {
		b.WriteString("\n最近的特殊掉落:\n")
		for _, item := range view.Stats.Recent {
			fmt.Fprintf(&b, "🎉 %s (%s) %.8f\n",
				item.Name, domain.WearLevelName(item.WearValue), item.WearValue)
		}
	}

	if view.Quota.Remaining != quota.UnlimitedRemaining {
		fmt.Fprintf(&b, "\n今日已开: %d | 剩余: %d", view.Quota.Used, view.Quota.Remaining)
	}

	return b.String()
}

// formatContainerList renders the grouped catalog as an embed description.
func formatContainerList(grouped map[string][]string) string {
	types := make([]string, 0, len(grouped))
	for typ := range grouped {
		types = append(types, typ)
	}
	sort.Strings(types)

	var b strings.Builder
	for _, typ := range types {
		fmt.Fprintf(&b, "**%s** (%d)\n", typ, len(grouped[typ]))
		b.WriteString(strings.Join(grouped[typ], "、"))
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatQuote renders a price quote as an embed description.
func formatQuote(q *pricing.Quote) string {
	var b strings.Builder
	fmt.Fprintf(&b, "BUFF: %s\n", q.Buff)
	fmt.Fprintf(&b, "悠悠有品: %s\n", q.YYYP)
	fmt.Fprintf(&b, "Steam: %s", q.Steam)
	if q.UpdatedAt != "" {
		fmt.Fprintf(&b, "\n\n更新时间: %s", q.UpdatedAt)
	}
	return b.String()
}
