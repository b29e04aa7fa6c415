package domain

import "strings"

// ContainerType classifies a container by its naming convention.
type ContainerType string

const (
	ContainerCase       ContainerType = "case"
	ContainerSouvenir   ContainerType = "souvenir"
	ContainerCollection ContainerType = "collection"
	ContainerCapsule    ContainerType = "capsule"
)

// TerminalSuffix marks vending-terminal containers, which use their own
// probability template.
const TerminalSuffix = "终端机"

// capsuleKeywords mark decorative container categories that carry no wear.
var capsuleKeywords = []string{"胶囊", "涂鸦", "布章"}

// ContainerTypeOf derives the container type from its display name.
func ContainerTypeOf(name string) ContainerType {
	switch {
	case strings.Contains(name, "纪念包"):
		return ContainerSouvenir
	case strings.Contains(name, "收藏品"):
		return ContainerCollection
	}
	for _, kw := range capsuleKeywords {
		if strings.Contains(name, kw) {
			return ContainerCapsule
		}
	}
	return ContainerCase
}

// CatalogItem is one drop candidate in a container's pool. Probability is
// derived by the probability table builder, not stored in the catalog source.
type CatalogItem struct {
	ShortName   string  `json:"short_name"`
	Tier        Tier    `json:"tier"`
	ImageURL    string  `json:"img_url,omitempty"`
	Probability float64 `json:"probability"`
}

// Container is a named pool of drop candidates. It is created wholesale by a
// catalog sync and read-only during resolution; Items preserve catalog order.
type Container struct {
	Name     string        `json:"name"`
	ImageURL string        `json:"img_url,omitempty"`
	Type     ContainerType `json:"type"`
	Items    []CatalogItem `json:"items"`
}

// HasDrops reports whether the pool contains at least one item that can
// actually drop. A container whose items all carry zero probability cannot
// be opened.
func (c *Container) HasDrops() bool {
	for _, it := range c.Items {
		if it.Probability > 0 {
			return true
		}
	}
	return false
}

// TierSet returns the set of recognized tiers present in the pool.
func (c *Container) TierSet() map[Tier]bool {
	set := make(map[Tier]bool, len(c.Items))
	for _, it := range c.Items {
		if it.Tier.Known() {
			set[it.Tier] = true
		}
	}
	return set
}
