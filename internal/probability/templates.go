package probability

import "github.com/luooka/casebot/internal/domain"

// TemplateID names one of the fixed probability-mass tables over tiers.
type TemplateID string

const (
	// TemplateTerminal is used by vending-terminal containers (name suffix 终端机).
	TemplateTerminal TemplateID = "terminal"
	// TemplateMilSpec covers pools that start at 军规级 with no consumer or
	// industrial tier. It is also the default fallback.
	TemplateMilSpec TemplateID = "milspec"
	// TemplateConsumer3 through TemplateConsumer6 cover consumer-based pools,
	// picked by the highest tier present.
	TemplateConsumer3 TemplateID = "consumer3"
	TemplateConsumer4 TemplateID = "consumer4"
	TemplateConsumer5 TemplateID = "consumer5"
	TemplateConsumer6 TemplateID = "consumer6"
	// TemplateIndustrial3 covers pools starting at 工业级 without 消费级.
	TemplateIndustrial3 TemplateID = "industrial3"
)

// Template is a fixed probability mass function over tiers. Masses sum to 1.0
// within floating-point tolerance.
type Template map[domain.Tier]float64

var templates = map[TemplateID]Template{
	TemplateTerminal: {
		domain.TierMilSpec:    0.80128,
		domain.TierRestricted: 0.16026,
		domain.TierClassified: 0.03205,
		domain.TierCovert:     0.00641,
	},
	TemplateMilSpec: {
		domain.TierMilSpec:    0.79923,
		domain.TierRestricted: 0.15985,
		domain.TierClassified: 0.03197,
		domain.TierCovert:     0.00639,
		domain.TierExtra:      0.00256,
	},
	TemplateConsumer3: {
		domain.TierConsumer:   0.80537,
		domain.TierIndustrial: 0.16107,
		domain.TierMilSpec:    0.03356,
	},
	TemplateConsumer4: {
		domain.TierConsumer:   0.80000,
		domain.TierIndustrial: 0.16000,
		domain.TierMilSpec:    0.03333,
		domain.TierRestricted: 0.00667,
	},
	TemplateConsumer5: {
		domain.TierConsumer:   0.79893,
		domain.TierIndustrial: 0.15979,
		domain.TierMilSpec:    0.03329,
		domain.TierRestricted: 0.00666,
		domain.TierClassified: 0.00133,
	},
	TemplateConsumer6: {
		domain.TierConsumer:   0.79872,
		domain.TierIndustrial: 0.15974,
		domain.TierMilSpec:    0.03328,
		domain.TierRestricted: 0.00666,
		domain.TierClassified: 0.00133,
		domain.TierCovert:     0.00027,
	},
	TemplateIndustrial3: {
		domain.TierIndustrial: 0.80000,
		domain.TierMilSpec:    0.16667,
		domain.TierRestricted: 0.03333,
	},
}

// Get returns the mass table for a template id.
func Get(id TemplateID) Template {
	return templates[id]
}

// Mass returns the template's mass for a tier (0 when the tier is absent).
func (t Template) Mass(tier domain.Tier) float64 {
	return t[tier]
}
