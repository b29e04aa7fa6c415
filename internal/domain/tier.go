package domain

// Tier is the rarity classification of a catalog item, ordered from common
// to extraordinary. Names follow the upstream catalog's Chinese labels.
type Tier string

const (
	TierConsumer   Tier = "消费级"
	TierIndustrial Tier = "工业级"
	TierMilSpec    Tier = "军规级"
	TierRestricted Tier = "受限"
	TierClassified Tier = "保密"
	TierCovert     Tier = "隐秘"
	TierExtra      Tier = "非凡"

	// TierContraband is a pseudo-tier for the rare cross-cutting extraordinary
	// category. It is never reported by the catalog directly; items reach it
	// via the ExtraordinaryMarker in their short name.
	TierContraband Tier = "Contraband"
)

// ExtraordinaryMarker in a catalog short name forces the item to TierExtra
// regardless of the tier code the catalog reports.
const ExtraordinaryMarker = "（★）"

// tierRanks orders tiers from common (0) to extraordinary. Contraband sorts
// above everything.
var tierRanks = map[Tier]int{
	TierConsumer:   0,
	TierIndustrial: 1,
	TierMilSpec:    2,
	TierRestricted: 3,
	TierClassified: 4,
	TierCovert:     5,
	TierExtra:      6,
	TierContraband: 7,
}

// TierColor is the display color associated with a tier.
type TierColor struct {
	R, G, B uint8
}

var tierColors = map[Tier]TierColor{
	TierConsumer:   {176, 195, 217},
	TierIndustrial: {94, 152, 217},
	TierMilSpec:    {75, 105, 255},
	TierRestricted: {136, 71, 255},
	TierClassified: {211, 44, 230},
	TierCovert:     {235, 75, 75},
	TierExtra:      {255, 215, 0},
	TierContraband: {255, 165, 0},
}

// Rank returns the tier's position in the rarity order, or -1 for unknown tiers.
func (t Tier) Rank() int {
	if r, ok := tierRanks[t]; ok {
		return r
	}
	return -1
}

// Known reports whether t is one of the recognized tiers.
func (t Tier) Known() bool {
	_, ok := tierRanks[t]
	return ok
}

// Catalogued reports whether t is a tier the upstream catalog may assign to
// an item. TierContraband is excluded; items only reach it through the
// ExtraordinaryMarker, never from the catalog itself.
func (t Tier) Catalogued() bool {
	return t.Known() && t != TierContraband
}

// Color returns the display color for the tier. Unknown tiers get a neutral grey.
func (t Tier) Color() TierColor {
	if c, ok := tierColors[t]; ok {
		return c
	}
	return TierColor{100, 100, 100}
}

// Special reports whether the tier belongs to the top rarity bands that are
// tracked as individual inventory rows.
func (t Tier) Special() bool {
	return t == TierCovert || t == TierExtra || t == TierContraband
}

// AllTiers lists the recognized tiers in rarity order, Contraband last.
func AllTiers() []Tier {
	return []Tier{
		TierConsumer, TierIndustrial, TierMilSpec, TierRestricted,
		TierClassified, TierCovert, TierExtra, TierContraband,
	}
}
