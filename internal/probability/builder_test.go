package probability

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luooka/casebot/internal/domain"
)

const massTolerance = 1e-6

func tierSet(tiers ...domain.Tier) map[domain.Tier]bool {
	set := make(map[domain.Tier]bool, len(tiers))
	for _, t := range tiers {
		set[t] = true
	}
	return set
}

func TestTemplateMassesSumToOne(t *testing.T) {
	ids := []TemplateID{
		TemplateTerminal, TemplateMilSpec, TemplateConsumer3,
		TemplateConsumer4, TemplateConsumer5, TemplateConsumer6,
		TemplateIndustrial3,
	}

	for _, id := range ids {
		t.Run(string(id), func(t *testing.T) {
			tmpl := Get(id)
			require.NotNil(t, tmpl)

			sum := 0.0
			for _, mass := range tmpl {
				assert.Greater(t, mass, 0.0)
				sum += mass
			}
			assert.InDelta(t, 1.0, sum, massTolerance)
		})
	}
}

func TestSelectTemplate(t *testing.T) {
	tests := []struct {
		name          string
		containerName string
		tiers         map[domain.Tier]bool
		want          TemplateID
	}{
		{
			name:          "terminal suffix wins over tier set",
			containerName: "武器箱终端机",
			tiers:         tierSet(domain.TierConsumer, domain.TierIndustrial),
			want:          TemplateTerminal,
		},
		{
			name:          "milspec base without low tiers",
			containerName: "命悬一线武器箱",
			tiers:         tierSet(domain.TierMilSpec, domain.TierRestricted, domain.TierClassified, domain.TierCovert),
			want:          TemplateMilSpec,
		},
		{
			name:          "consumer pool reaching covert",
			containerName: "某收藏品",
			tiers:         tierSet(domain.TierConsumer, domain.TierIndustrial, domain.TierMilSpec, domain.TierRestricted, domain.TierClassified, domain.TierCovert),
			want:          TemplateConsumer6,
		},
		{
			name:          "consumer pool topping at classified",
			containerName: "某收藏品",
			tiers:         tierSet(domain.TierConsumer, domain.TierIndustrial, domain.TierMilSpec, domain.TierRestricted, domain.TierClassified),
			want:          TemplateConsumer5,
		},
		{
			name:          "consumer pool topping at restricted",
			containerName: "某收藏品",
			tiers:         tierSet(domain.TierConsumer, domain.TierIndustrial, domain.TierMilSpec, domain.TierRestricted),
			want:          TemplateConsumer4,
		},
		{
			name:          "consumer pool topping at milspec",
			containerName: "某收藏品",
			tiers:         tierSet(domain.TierConsumer, domain.TierIndustrial, domain.TierMilSpec),
			want:          TemplateConsumer3,
		},
		{
			name:          "industrial base without consumer",
			containerName: "某收藏品",
			tiers:         tierSet(domain.TierIndustrial, domain.TierMilSpec, domain.TierRestricted),
			want:          TemplateIndustrial3,
		},
		{
			name:          "default fallback",
			containerName: "奇怪的容器",
			tiers:         tierSet(domain.TierClassified),
			want:          TemplateMilSpec,
		},
		{
			name:          "milspec with consumer present goes consumer path",
			containerName: "某收藏品",
			tiers:         tierSet(domain.TierConsumer, domain.TierMilSpec),
			want:          TemplateConsumer3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectTemplate(tt.containerName, tt.tiers)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplySplitsMassEqually(t *testing.T) {
	c := &domain.Container{
		Name: "测试武器箱",
		Type: domain.ContainerCase,
		Items: []domain.CatalogItem{
			{ShortName: "a", Tier: domain.TierMilSpec},
			{ShortName: "b", Tier: domain.TierMilSpec},
			{ShortName: "c", Tier: domain.TierMilSpec},
			{ShortName: "d", Tier: domain.TierRestricted},
			{ShortName: "e", Tier: domain.TierClassified},
			{ShortName: "f", Tier: domain.TierCovert},
			{ShortName: "g", Tier: domain.TierExtra},
		},
	}

	id := Apply(c)
	require.Equal(t, TemplateMilSpec, id)
	tmpl := Get(id)

	// Per-tier item probabilities sum to the template mass.
	perTier := make(map[domain.Tier]float64)
	for _, it := range c.Items {
		perTier[it.Tier] += it.Probability
	}
	for tier, mass := range tmpl {
		assert.InDelta(t, mass, perTier[tier], massTolerance, "tier %s", tier)
	}

	// Equal split within a tier.
	assert.InDelta(t, tmpl[domain.TierMilSpec]/3, c.Items[0].Probability, massTolerance)
	assert.InDelta(t, c.Items[0].Probability, c.Items[1].Probability, massTolerance)

	// Whole pool sums to 1.
	total := 0.0
	for _, it := range c.Items {
		total += it.Probability
	}
	assert.InDelta(t, 1.0, total, massTolerance)
}

func TestApplyZeroesAbsentTiers(t *testing.T) {
	c := &domain.Container{
		Name: "测试武器箱",
		Type: domain.ContainerCase,
		Items: []domain.CatalogItem{
			{ShortName: "a", Tier: domain.TierMilSpec, Probability: 0.5},
			{ShortName: "junk", Tier: domain.Tier("未知品质"), Probability: 0.5},
			{ShortName: "low", Tier: domain.TierConsumer, Probability: 0.5},
		},
	}

	// Consumer present, so the consumer3 template applies; milspec keeps mass,
	// the unknown tier is zeroed.
	id := Apply(c)
	require.Equal(t, TemplateConsumer3, id)

	assert.Zero(t, c.Items[1].Probability)
	assert.Greater(t, c.Items[0].Probability, 0.0)
	assert.Greater(t, c.Items[2].Probability, 0.0)
}

func TestApplyRecomputesOnPoolChange(t *testing.T) {
	c := &domain.Container{
		Name: "测试武器箱",
		Type: domain.ContainerCase,
		Items: []domain.CatalogItem{
			{ShortName: "a", Tier: domain.TierMilSpec},
			{ShortName: "b", Tier: domain.TierMilSpec},
		},
	}
	Apply(c)
	before := c.Items[0].Probability

	// Shrinking the tier population must change the split on re-apply.
	c.Items = c.Items[:1]
	Apply(c)
	after := c.Items[0].Probability

	assert.False(t, math.Abs(before-after) < massTolerance, "probability should change when pool shrinks")
	assert.InDelta(t, Get(TemplateMilSpec)[domain.TierMilSpec], after, massTolerance)
}
