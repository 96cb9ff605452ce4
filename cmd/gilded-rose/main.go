package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/appengine-ltd/gilded-rose/internal/classify"
	"github.com/appengine-ltd/gilded-rose/internal/inventory"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		verbose     bool
		days        int
		configPath  string
		invPath     string
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.BoolVar(&verbose, "v", false, "log every item transition")
	flag.IntVar(&days, "days", 2, "number of days to simulate")
	flag.StringVar(&configPath, "config", "", "optional classifier config YAML")
	flag.StringVar(&invPath, "inventory", "", "optional inventory YAML (defaults to the demo stock)")
	flag.Parse()

	if showVersion {
		fmt.Printf("Gilded Rose %s (%s) %s\n", version, commit, date)
		return
	}
	if days < 0 {
		die("--days must not be negative")
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := classify.DefaultConfig()
	if strings.TrimSpace(configPath) != "" {
		loaded, err := classify.LoadConfig(configPath)
		if err != nil {
			die(err.Error())
		}
		cfg = loaded
	}
	registry, err := classify.NewRegistry(cfg)
	if err != nil {
		die(err.Error())
	}

	items := demoInventory()
	if strings.TrimSpace(invPath) != "" {
		items, err = loadInventory(invPath)
		if err != nil {
			die(err.Error())
		}
	}

	engine := inventory.New(
		inventory.WithRegistry(registry),
		inventory.WithLogger(logger),
	)

	for day := 0; day <= days; day++ {
		fmt.Printf("-------- day %d --------\n", day)
		fmt.Println("name, sellIn, quality")
		for _, it := range items {
			fmt.Println(it)
		}
		fmt.Println()
		if day == days {
			break
		}
		if err := engine.Tick(items); err != nil {
			die(fmt.Sprintf("advance day %d: %v", day+1, err))
		}
	}
}

type inventoryFile struct {
	Items []inventory.Item `yaml:"items"`
}

func loadInventory(path string) ([]*inventory.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read inventory: %w", err)
	}
	var file inventoryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse inventory: %w", err)
	}
	if len(file.Items) == 0 {
		return nil, fmt.Errorf("inventory %s has no items", path)
	}
	items := make([]*inventory.Item, len(file.Items))
	for i := range file.Items {
		items[i] = &file.Items[i]
	}
	return items, nil
}

func demoInventory() []*inventory.Item {
	return []*inventory.Item{
		{Name: "+5 Dexterity Vest", SellIn: 10, Quality: 20},
		{Name: "Aged Brie", SellIn: 2, Quality: 0},
		{Name: "Elixir of the Mongoose", SellIn: 5, Quality: 7},
		{Name: "Sulfuras, Hand of Ragnaros", SellIn: 0, Quality: 80},
		{Name: "Sulfuras, Hand of Ragnaros", SellIn: -1, Quality: 80},
		{Name: "Backstage passes to a TAFKAL80ETC concert", SellIn: 15, Quality: 20},
		{Name: "Backstage passes to a TAFKAL80ETC concert", SellIn: 10, Quality: 49},
		{Name: "Backstage passes to a TAFKAL80ETC concert", SellIn: 5, Quality: 49},
		{Name: "Conjured Mana Cake", SellIn: 3, Quality: 6},
	}
}

func die(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
