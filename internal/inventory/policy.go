package inventory

import "github.com/appengine-ltd/gilded-rose/internal/classify"

const (
	minQuality       = 0
	maxQuality       = 50
	legendaryQuality = 80

	backstageDoubleWindow = 10
	backstageTripleWindow = 5
)

// UpdatePolicy advances a single item by one business day, mutating
// SellIn and Quality in place. Policies are pure over the item: no
// logging, no I/O. Call once per simulated day.
type UpdatePolicy func(*Item)

// PolicyFor maps a category to its update rule. The switch is
// exhaustive over the closed category set; adding a category means
// adding a variant here and one entry to the classifier table.
func PolicyFor(category classify.Category) UpdatePolicy {
	switch category {
	case classify.AgedBrie:
		return updateAgedBrie
	case classify.Backstage:
		return updateBackstage
	case classify.Sulfuras:
		return updateSulfuras
	case classify.Conjured:
		return updateConjured
	default:
		return updateNormal
	}
}

func updateNormal(it *Item) {
	degrade(it, 1)
}

func updateConjured(it *Item) {
	degrade(it, 2)
}

// degrade is the shared decay flow: one guarded step before the sellIn
// decrement and another once past the sell-by date.
func degrade(it *Item, step int) {
	lowerQuality(it, step)
	it.SellIn--
	if it.SellIn < 0 {
		lowerQuality(it, step)
	}
	Clamp(it)
}

func updateAgedBrie(it *Item) {
	raiseQuality(it, 1)
	it.SellIn--
	if it.SellIn < 0 {
		raiseQuality(it, 1)
	}
	Clamp(it)
}

// updateBackstage grows quality faster as the concert approaches. The
// window checks read the pre-decrement sellIn; once the concert has
// passed the pass is worthless.
func updateBackstage(it *Item) {
	raiseQuality(it, 1)
	if it.SellIn <= backstageDoubleWindow {
		raiseQuality(it, 1)
	}
	if it.SellIn <= backstageTripleWindow {
		raiseQuality(it, 1)
	}
	it.SellIn--
	if it.SellIn < 0 {
		it.Quality = 0
	}
	Clamp(it)
}

// updateSulfuras pins quality at 80 and never touches sellIn. No
// clamp: 80 is outside the ordinary band on purpose.
func updateSulfuras(it *Item) {
	it.Quality = legendaryQuality
}

// lowerQuality decreases quality one guarded unit at a time so a
// multi-unit step never overshoots the floor.
func lowerQuality(it *Item, by int) {
	for n := 0; n < by; n++ {
		if it.Quality > minQuality {
			it.Quality--
		}
	}
}

func raiseQuality(it *Item, by int) {
	for n := 0; n < by; n++ {
		if it.Quality < maxQuality {
			it.Quality++
		}
	}
}

// Clamp saturates quality into [0,50]. It is the post-update safety
// net for every non-legendary policy; out-of-range input quality is
// not repaired before the day's delta is applied. Clamping twice is
// the same as clamping once.
func Clamp(it *Item) {
	if it.Quality < minQuality {
		it.Quality = minQuality
	} else if it.Quality > maxQuality {
		it.Quality = maxQuality
	}
}
