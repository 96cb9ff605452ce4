package inventory

import "fmt"

// Item is one inventory entry. Identity is positional within the
// inventory slice; there is no separate id. SellIn counts days until
// the sell-by date and goes negative once it has passed.
type Item struct {
	Name    string `yaml:"name"`
	SellIn  int    `yaml:"sell_in"`
	Quality int    `yaml:"quality"`
}

func (i Item) String() string {
	return fmt.Sprintf("%s, %d, %d", i.Name, i.SellIn, i.Quality)
}
