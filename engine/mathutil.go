package engine

import "math"

// softmax turns arbitrary real scores into a positive distribution summing
// to 1, shifting by the maximum for numerical stability. Empty input maps to
// empty output.
func softmax(scores []float64) []float64 {
	if len(scores) == 0 {
		return nil
	}
	maxv := scores[0]
	for _, v := range scores[1:] {
		if v > maxv {
			maxv = v
		}
	}
	exps := make([]float64, len(scores))
	var sum float64
	for i, v := range scores {
		exps[i] = math.Exp(v - maxv)
		sum += exps[i]
	}
	if sum <= 0 {
		for i := range exps {
			exps[i] = 0
		}
		return exps
	}
	for i := range exps {
		exps[i] /= sum
	}
	return exps
}
