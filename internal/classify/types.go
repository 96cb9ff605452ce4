package classify

// Category is the closed set of item behaviours. Resolution assigns
// exactly one per item and is stateless, so it can be repeated every
// day without drift.
type Category int

const (
	Normal Category = iota
	AgedBrie
	Backstage
	Sulfuras
	Conjured
)

func (c Category) String() string {
	switch c {
	case Normal:
		return "normal"
	case AgedBrie:
		return "aged brie"
	case Backstage:
		return "backstage"
	case Sulfuras:
		return "sulfuras"
	case Conjured:
		return "conjured"
	default:
		return "unknown"
	}
}

// ThresholdTier selects which fuzzy cutoff applies to an entry.
type ThresholdTier int

const (
	// TierStrict guards the singular specials (Sulfuras, Aged Brie,
	// Backstage): a fuzzy hit must be a near-certain typo of the
	// canonical name.
	TierStrict ThresholdTier = iota
	// TierLoose covers the Conjured prefix family, where the canonical
	// name is only one representative of many real item names.
	TierLoose
)

// CanonicalEntry binds a category to its exact display string and the
// substring token that short-circuits fuzzy matching. Entries are
// fixed at startup; table order is the fuzzy tie-break precedence.
type CanonicalEntry struct {
	Category Category
	Display  string
	Token    string
	Tier     ThresholdTier

	// normalised display, filled once when the registry is built.
	normalised string
}

func categoryFromName(name string) (Category, bool) {
	switch Normalise(name) {
	case "normal":
		return Normal, true
	case "aged brie", "agedbrie", "brie":
		return AgedBrie, true
	case "backstage":
		return Backstage, true
	case "sulfuras":
		return Sulfuras, true
	case "conjured":
		return Conjured, true
	default:
		return Normal, false
	}
}

// Thresholds are the two hand-tuned fuzzy cutoffs in [0,1]. Higher
// means stricter matching: fewer false positives, more false negatives
// on typos.
type Thresholds struct {
	Strict float64 `yaml:"strict"`
	Loose  float64 `yaml:"loose"`
}
