package classify

import "fmt"

// Registry is the immutable resolution table: canonical entries in
// precedence order plus the fuzzy thresholds. Build it once and share
// it freely; it is read-only after construction.
type Registry struct {
	entries    []CanonicalEntry
	thresholds Thresholds
}

// NewRegistry validates the config and compiles it into a registry.
func NewRegistry(cfg Config) (*Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("classify config: %w", err)
	}
	r := &Registry{thresholds: cfg.Thresholds}
	for _, e := range cfg.Entries {
		category, _ := categoryFromName(e.Category)
		tier := TierStrict
		if e.Tier == "loose" {
			tier = TierLoose
		}
		r.entries = append(r.entries, CanonicalEntry{
			Category:   category,
			Display:    e.Display,
			Token:      Normalise(e.Token),
			Tier:       tier,
			normalised: Normalise(e.Display),
		})
	}
	return r, nil
}

// DefaultRegistry compiles the built-in table.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(DefaultConfig())
	if err != nil {
		// The built-in table is validated by tests; reaching this is a
		// programming error, not an input error.
		panic(err)
	}
	return r
}

// Entries returns a copy of the table, mostly for reporting.
func (r *Registry) Entries() []CanonicalEntry {
	out := make([]CanonicalEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *Registry) thresholdFor(tier ThresholdTier) float64 {
	if tier == TierLoose {
		return r.thresholds.Loose
	}
	return r.thresholds.Strict
}
