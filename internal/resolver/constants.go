package resolver

// Cosmetic name markers.
const (
	// SouvenirPrefix tags drops from souvenir packages.
	SouvenirPrefix = "纪念品 | "

	// StatTrakPrefix tags the trade-mark exterior variant.
	StatTrakPrefix = "StatTrak™ | "

	// GloveKeyword excludes glove items from the StatTrak roll.
	GloveKeyword = "手套"

	// DopplerMarker identifies the pattern family; GammaMarker identifies its
	// rarer sub-family.
	DopplerMarker = "多普勒"
	GammaMarker   = "伽玛"
)

// StatTrakChance is the independent probability of the trade-mark variant on
// case-type drops.
const StatTrakChance = 0.10

// TemplateIDRange bounds the random display template id (exclusive upper bound).
const TemplateIDRange = 1000

// wearPrecision rounds wear values to 8 decimal digits.
const wearPrecision = 1e8

// wearBand is one named range over the continuous wear value with a selection
// weight. Weights are normalized at draw time, so a table need not sum to 1.
type wearBand struct {
	name   string
	weight float64
	lo, hi float64
}

// wearBands is the standard 5-band wear table.
var wearBands = []wearBand{
	{"崭新出厂", 0.03, 0.00, 0.07},
	{"略有磨损", 0.24, 0.07, 0.15},
	{"久经沙场", 0.33, 0.15, 0.45},
	{"破损不堪", 0.24, 0.30, 0.45},
	{"战痕累累", 0.16, 0.45, 1.00},
}

// dopplerWearBands replaces the standard table for pattern-family drops,
// which only ever roll the two freshest bands.
var dopplerWearBands = []wearBand{
	{"崭新出厂", 0.03, 0.00, 0.87},
	{"略有磨损", 0.24, 0.07, 0.12},
}

// patternChoice is one weighted sub-pattern label of a pattern family.
type patternChoice struct {
	label  string
	weight float64
}

// dopplerPatterns is the standard 7-outcome family distribution.
var dopplerPatterns = []patternChoice{
	{"p1", 0.2},
	{"p2", 0.2},
	{"p3", 0.2},
	{"p4", 0.2},
	{"蓝宝石", 0.1},
	{"红宝石", 0.05},
	{"黑珍珠", 0.05},
}

// gammaDopplerPatterns is the rare sub-family's 5-outcome distribution.
var gammaDopplerPatterns = []patternChoice{
	{"p1", 0.2},
	{"p2", 0.2},
	{"p3", 0.2},
	{"p4", 0.2},
	{"绿宝石", 0.2},
}
