package classify

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidInput marks items that cannot be classified at all: a nil
// item or an absent/empty name. An unrecognised but present name is
// never an error; it resolves to Normal.
var ErrInvalidInput = errors.New("invalid input")

// ResolveName maps a raw item name to its category. First match wins:
//
//  1. exact match against a canonical display string
//  2. token match on the normalised name
//  3. fuzzy fallback, scored per entry against its tier threshold
//
// Fuzzy qualifiers are disambiguated by table precedence, then score.
// Nothing qualifying means Normal. The exact and token paths cover the
// overwhelming majority of real names; fuzzy scoring only ever runs
// for genuinely malformed input.
func (r *Registry) ResolveName(raw string) (Category, error) {
	if strings.TrimSpace(raw) == "" {
		return Normal, fmt.Errorf("%w: item name is empty", ErrInvalidInput)
	}

	for _, e := range r.entries {
		if raw == e.Display {
			return e.Category, nil
		}
	}

	normalised := Normalise(raw)
	for _, e := range r.entries {
		if containsToken(normalised, e.Token) {
			return e.Category, nil
		}
	}

	type candidate struct {
		rank     int
		score    float64
		category Category
	}
	var cands []candidate
	for _, e := range r.entries {
		score := similarityNormalised(normalised, e.normalised)
		if score < r.thresholdFor(e.Tier) {
			continue
		}
		cands = append(cands, candidate{
			rank:     r.categoryRank(e.Category),
			score:    score,
			category: e.Category,
		})
	}
	if len(cands) == 0 {
		return Normal, nil
	}
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].rank != cands[j].rank {
			return cands[i].rank < cands[j].rank
		}
		return cands[i].score > cands[j].score
	})
	return cands[0].category, nil
}

// categoryRank is the precedence of a category: the position of its
// first entry in the table.
func (r *Registry) categoryRank(c Category) int {
	for i, e := range r.entries {
		if e.Category == c {
			return i
		}
	}
	return len(r.entries)
}

// containsToken reports whether the token occurs on word boundaries
// within the normalised name.
func containsToken(normalised, token string) bool {
	if token == "" {
		return false
	}
	return strings.Contains(" "+normalised+" ", " "+token+" ")
}
