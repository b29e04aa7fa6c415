// Package probability derives per-container drop distributions: a template
// (tier-level probability mass function) is selected from the container's tier
// set and each tier's mass is split equally among the pool items carrying it.
//
// The builder is pure and deterministic; it runs once per container whenever
// the catalog is loaded or updated. Stale probabilities after a pool change
// are a correctness bug, so callers must re-apply on every change.
package probability

import (
	"strings"

	"github.com/luooka/casebot/internal/domain"
)

// SelectTemplate picks the template for a container, evaluated in policy order
// against the container name and the set of tiers present in the pool.
func SelectTemplate(containerName string, tiers map[domain.Tier]bool) TemplateID {
	if strings.HasSuffix(containerName, domain.TerminalSuffix) {
		return TemplateTerminal
	}

	if tiers[domain.TierMilSpec] && !tiers[domain.TierConsumer] && !tiers[domain.TierIndustrial] {
		return TemplateMilSpec
	}

	if tiers[domain.TierConsumer] {
		switch {
		case tiers[domain.TierCovert]:
			return TemplateConsumer6
		case tiers[domain.TierClassified]:
			return TemplateConsumer5
		case tiers[domain.TierRestricted]:
			return TemplateConsumer4
		default:
			return TemplateConsumer3
		}
	}

	if tiers[domain.TierIndustrial] {
		return TemplateIndustrial3
	}

	return TemplateMilSpec
}

// Apply recomputes every item's probability in place. Each template tier's
// mass is divided equally among the pool items of that tier; items whose tier
// is absent from the template (or unrecognized) get probability 0 and are
// never selected, but stay listed for catalog display.
func Apply(c *domain.Container) TemplateID {
	id := SelectTemplate(c.Name, c.TierSet())
	tmpl := Get(id)

	counts := make(map[domain.Tier]int)
	for _, it := range c.Items {
		if _, ok := tmpl[it.Tier]; ok {
			counts[it.Tier]++
		}
	}

	for i := range c.Items {
		tier := c.Items[i].Tier
		if mass, ok := tmpl[tier]; ok && counts[tier] > 0 {
			c.Items[i].Probability = mass / float64(counts[tier])
		} else {
			c.Items[i].Probability = 0
		}
	}

	return id
}
