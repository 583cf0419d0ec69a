package engine

// Scorer produces a score distribution over disease labels for one request.
// Implementations are selected at construction time, not per request; both
// statistical and heuristic variants satisfy the same contract.
//
// Symptoms passed to Score are already normalized tokens.
type Scorer interface {
	Name() string
	Score(symptoms []string, description string) (ScoreDistribution, error)
	// DropNonPositive reports whether zero or negative scores should be
	// filtered out before ranking. A well-formed classifier never emits
	// them, so the statistical variant keeps its full class list.
	DropNonPositive() bool
}
