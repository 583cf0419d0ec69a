package engine

import "sort"

// Rank sorts a distribution by score descending and truncates to topN. The
// sort is stable and no secondary tie-break is applied, so equal scores keep
// the scorer's emission order. When dropNonPositive is set, entries with a
// zero or negative score are removed before truncation.
func Rank(dist ScoreDistribution, topN int, dropNonPositive bool) []PredictionEntry {
	if topN <= 0 {
		topN = defaultTopN
	}
	entries := make(ScoreDistribution, len(dist))
	copy(entries, dist)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	out := make([]PredictionEntry, 0, topN)
	for _, e := range entries {
		if dropNonPositive && e.Score <= 0 {
			continue
		}
		out = append(out, PredictionEntry{Disease: e.Disease, Probability: e.Score})
		if len(out) == topN {
			break
		}
	}
	return out
}
