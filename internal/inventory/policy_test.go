package inventory

import (
	"testing"

	"github.com/appengine-ltd/gilded-rose/internal/classify"
)

func applyFor(t *testing.T, category classify.Category, it *Item) {
	t.Helper()
	PolicyFor(category)(it)
}

func TestNormalDegradesByOneBeforeSellBy(t *testing.T) {
	it := &Item{Name: "foo", SellIn: 10, Quality: 20}
	applyFor(t, classify.Normal, it)
	if it.SellIn != 9 || it.Quality != 19 {
		t.Fatalf("got (%d,%d) want (9,19)", it.SellIn, it.Quality)
	}
}

func TestNormalDegradesTwiceAfterSellBy(t *testing.T) {
	it := &Item{Name: "foo", SellIn: 0, Quality: 20}
	applyFor(t, classify.Normal, it)
	if it.SellIn != -1 || it.Quality != 18 {
		t.Fatalf("got (%d,%d) want (-1,18)", it.SellIn, it.Quality)
	}
}

func TestNormalQualityNeverNegative(t *testing.T) {
	it := &Item{Name: "foo", SellIn: 0, Quality: 0}
	applyFor(t, classify.Normal, it)
	if it.Quality != 0 {
		t.Fatalf("quality went negative: %d", it.Quality)
	}
}

func TestAgedBrieGains(t *testing.T) {
	it := &Item{Name: "Aged Brie", SellIn: 2, Quality: 0}
	applyFor(t, classify.AgedBrie, it)
	if it.SellIn != 1 || it.Quality != 1 {
		t.Fatalf("got (%d,%d) want (1,1)", it.SellIn, it.Quality)
	}
}

func TestAgedBrieGainsTwiceAfterSellByCappedAt50(t *testing.T) {
	it := &Item{Name: "Aged Brie", SellIn: 0, Quality: 49}
	applyFor(t, classify.AgedBrie, it)
	if it.SellIn != -1 || it.Quality != 50 {
		t.Fatalf("got (%d,%d) want (-1,50)", it.SellIn, it.Quality)
	}
}

func TestBackstageWindows(t *testing.T) {
	tests := []struct {
		sellIn      int
		quality     int
		wantSellIn  int
		wantQuality int
	}{
		{sellIn: 15, quality: 20, wantSellIn: 14, wantQuality: 21},
		{sellIn: 11, quality: 20, wantSellIn: 10, wantQuality: 21},
		{sellIn: 10, quality: 20, wantSellIn: 9, wantQuality: 22},
		{sellIn: 6, quality: 20, wantSellIn: 5, wantQuality: 22},
		{sellIn: 5, quality: 20, wantSellIn: 4, wantQuality: 23},
		{sellIn: 1, quality: 20, wantSellIn: 0, wantQuality: 23},
		{sellIn: 5, quality: 48, wantSellIn: 4, wantQuality: 50}, // would be 51 uncapped
		{sellIn: 10, quality: 49, wantSellIn: 9, wantQuality: 50},
		{sellIn: 0, quality: 20, wantSellIn: -1, wantQuality: 0}, // after the concert
	}
	for _, tc := range tests {
		it := &Item{Name: "Backstage passes to a TAFKAL80ETC concert", SellIn: tc.sellIn, Quality: tc.quality}
		applyFor(t, classify.Backstage, it)
		if it.SellIn != tc.wantSellIn || it.Quality != tc.wantQuality {
			t.Fatalf("backstage (%d,%d): got (%d,%d) want (%d,%d)",
				tc.sellIn, tc.quality, it.SellIn, it.Quality, tc.wantSellIn, tc.wantQuality)
		}
	}
}

func TestSulfurasNeverChanges(t *testing.T) {
	it := &Item{Name: "Sulfuras, Hand of Ragnaros", SellIn: 0, Quality: 80}
	applyFor(t, classify.Sulfuras, it)
	if it.SellIn != 0 || it.Quality != 80 {
		t.Fatalf("got (%d,%d) want (0,80)", it.SellIn, it.Quality)
	}
}

func TestSulfurasQualityRepinnedTo80(t *testing.T) {
	it := &Item{Name: "Sulfuras, Hand of Ragnaros", SellIn: 3, Quality: 42}
	applyFor(t, classify.Sulfuras, it)
	if it.SellIn != 3 || it.Quality != 80 {
		t.Fatalf("got (%d,%d) want (3,80)", it.SellIn, it.Quality)
	}
}

func TestConjuredDegradesTwiceAsFast(t *testing.T) {
	it := &Item{Name: "Conjured Mana Cake", SellIn: 3, Quality: 6}
	applyFor(t, classify.Conjured, it)
	if it.SellIn != 2 || it.Quality != 4 {
		t.Fatalf("got (%d,%d) want (2,4)", it.SellIn, it.Quality)
	}
	applyFor(t, classify.Conjured, it)
	if it.SellIn != 1 || it.Quality != 2 {
		t.Fatalf("got (%d,%d) want (1,2)", it.SellIn, it.Quality)
	}
}

func TestConjuredQuadDecayAfterSellBy(t *testing.T) {
	it := &Item{Name: "Conjured Mana Cake", SellIn: 0, Quality: 6}
	applyFor(t, classify.Conjured, it)
	if it.SellIn != -1 || it.Quality != 2 {
		t.Fatalf("got (%d,%d) want (-1,2)", it.SellIn, it.Quality)
	}
}

func TestConjuredDoesNotOvershootFloor(t *testing.T) {
	it := &Item{Name: "Conjured Mana Cake", SellIn: 5, Quality: 1}
	applyFor(t, classify.Conjured, it)
	if it.Quality != 0 {
		t.Fatalf("expected floor at 0, got %d", it.Quality)
	}
}

// Out-of-range input quality is not repaired before the day's delta;
// the post-update clamp is the only enforcement.
func TestOverRangeInputIsClampedAfterUpdate(t *testing.T) {
	it := &Item{Name: "foo", SellIn: 5, Quality: 55}
	applyFor(t, classify.Normal, it)
	if it.Quality != 50 {
		t.Fatalf("got quality %d want 50", it.Quality)
	}

	it = &Item{Name: "foo", SellIn: 3, Quality: -2}
	applyFor(t, classify.Normal, it)
	if it.Quality != 0 {
		t.Fatalf("got quality %d want 0", it.Quality)
	}
}

func TestClampIdempotent(t *testing.T) {
	for _, q := range []int{-10, 0, 25, 50, 99} {
		it := &Item{Name: "foo", Quality: q}
		Clamp(it)
		once := it.Quality
		Clamp(it)
		if it.Quality != once {
			t.Fatalf("clamp not idempotent for %d: %d then %d", q, once, it.Quality)
		}
		if it.Quality < 0 || it.Quality > 50 {
			t.Fatalf("clamp left %d out of range", it.Quality)
		}
	}
}
