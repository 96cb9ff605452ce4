package classify

import "github.com/agnivade/levenshtein"

// Similarity scores how alike two names are, in [0,1], 1.0 meaning
// identical after normalisation. The score is derived from levenshtein
// edit distance scaled by the longer input, which keeps it symmetric
// and length-aware: one typo in a long name barely dents the score,
// one typo in a short name costs a lot.
func Similarity(a, b string) float64 {
	return similarityNormalised(Normalise(a), Normalise(b))
}

func similarityNormalised(na, nb string) float64 {
	if na == nb {
		if na == "" {
			return 0
		}
		return 1
	}
	if na == "" || nb == "" {
		return 0
	}
	longest := len([]rune(na))
	if l := len([]rune(nb)); l > longest {
		longest = l
	}
	dist := levenshtein.ComputeDistance(na, nb)
	score := 1 - float64(dist)/float64(longest)
	return clampScore(score)
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
