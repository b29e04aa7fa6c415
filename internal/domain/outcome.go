package domain

// WearLevelName maps a wear value to its display band. Display bands differ
// slightly from the draw bands (久经沙场 extends to 0.38 for display).
func WearLevelName(wear float64) string {
	switch {
	case wear < 0.07:
		return "崭新出厂"
	case wear < 0.15:
		return "略有磨损"
	case wear < 0.38:
		return "久经沙场"
	case wear < 0.45:
		return "破损不堪"
	default:
		return "战痕累累"
	}
}

// DropOutcome is the immutable result of resolving one container opening.
type DropOutcome struct {
	// Name is the display name with cosmetic tags applied (souvenir or
	// StatTrak prefix, doppler sub-pattern label).
	Name string `json:"name"`
	// RawName is the catalog short name before cosmetic processing.
	RawName   string  `json:"raw_name"`
	Tier      Tier    `json:"tier"`
	WearValue float64 `json:"wear_value"`
	WearLevel string  `json:"wear_level"`
	// TemplateID is a random display-variety id in [0, 999]; no semantic weight.
	TemplateID int    `json:"template_id"`
	ImageURL   string `json:"img_url,omitempty"`
	IsSpecial  bool   `json:"is_special"`
}

// SpecialDrop is a persisted detail row for a special outcome.
type SpecialDrop struct {
	Name      string  `json:"name"`
	Tier      Tier    `json:"tier"`
	WearValue float64 `json:"wear_value"`
	ImageURL  string  `json:"img_url,omitempty"`
}

// InventoryStats aggregates a user's recorded outcomes.
type InventoryStats struct {
	Total      int           `json:"total"`
	TierCounts map[Tier]int  `json:"tier_counts"`
	Recent     []SpecialDrop `json:"recent_special_items"`
}
