package classify

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full classifier configuration: the canonical-entry
// table and the two fuzzy thresholds. It is a plain value; build it
// once and hand it to NewRegistry. There is no runtime mutation path.
type Config struct {
	Thresholds Thresholds    `yaml:"thresholds"`
	Entries    []EntryConfig `yaml:"entries"`
}

// EntryConfig is the file-facing shape of a canonical entry.
type EntryConfig struct {
	Category string `yaml:"category"`
	Display  string `yaml:"display"`
	Token    string `yaml:"token"`
	Tier     string `yaml:"tier"`
}

// DefaultConfig returns the built-in table. Entry order is the fuzzy
// tie-break precedence, most specific first.
func DefaultConfig() Config {
	return Config{
		Thresholds: Thresholds{Strict: 0.85, Loose: 0.72},
		Entries: []EntryConfig{
			{Category: "sulfuras", Display: "Sulfuras, Hand of Ragnaros", Token: "sulfuras", Tier: "strict"},
			{Category: "backstage", Display: "Backstage passes to a TAFKAL80ETC concert", Token: "backstage", Tier: "strict"},
			{Category: "aged brie", Display: "Aged Brie", Token: "aged brie", Tier: "strict"},
			{Category: "conjured", Display: "Conjured Mana Cake", Token: "conjured", Tier: "loose"},
		},
	}
}

// LoadConfig reads a YAML config file. Missing sections fall back to
// the defaults, so a host can override just the thresholds.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Thresholds.Strict < 0 || c.Thresholds.Strict > 1 {
		return fmt.Errorf("strict threshold must be in [0,1], got %.2f", c.Thresholds.Strict)
	}
	if c.Thresholds.Loose < 0 || c.Thresholds.Loose > 1 {
		return fmt.Errorf("loose threshold must be in [0,1], got %.2f", c.Thresholds.Loose)
	}
	if len(c.Entries) == 0 {
		return fmt.Errorf("at least one canonical entry is required")
	}
	for i, e := range c.Entries {
		if _, ok := categoryFromName(e.Category); !ok {
			return fmt.Errorf("entry %d: unknown category %q", i, e.Category)
		}
		if Normalise(e.Display) == "" {
			return fmt.Errorf("entry %d (%s): display name is empty", i, e.Category)
		}
		if Normalise(e.Token) == "" {
			return fmt.Errorf("entry %d (%s): token is empty", i, e.Category)
		}
		switch e.Tier {
		case "strict", "loose":
		default:
			return fmt.Errorf("entry %d (%s): tier must be strict or loose, got %q", i, e.Category, e.Tier)
		}
	}
	return nil
}
