package engine

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeClassifier struct {
	features []string
	classes  []string
	probs    []float32
	err      error
	lastVec  []float32
}

func (f *fakeClassifier) PredictProba(features []float32) ([]float32, error) {
	f.lastVec = features
	if f.err != nil {
		return nil, f.err
	}
	return f.probs, nil
}

func (f *fakeClassifier) FeatureNames() []string { return f.features }
func (f *fakeClassifier) Classes() []string      { return f.classes }

type fakeDecoder struct{ classes []string }

func (f fakeDecoder) Classes() []string { return f.classes }

func newStatisticalService(t *testing.T, clf Classifier, decoder LabelDecoder) *Service {
	t.Helper()
	svc, err := NewService(NewStatisticalScorer(clf, decoder), Config{}, nil)
	require.NoError(t, err)
	return svc
}

func TestInferStatisticalRanksByProbability(t *testing.T) {
	clf := &fakeClassifier{
		features: []string{"fever", "cough", "fatigue"},
		classes:  []string{"influenza", "common cold", "covid-19"},
		probs:    []float32{0.2, 0.7, 0.1},
	}
	svc := newStatisticalService(t, clf, nil)

	res, err := svc.Infer([]string{"cough"}, "")
	require.NoError(t, err)
	require.Equal(t, StatusSuccess, res.Status)
	require.Equal(t, "common cold", res.Predictions[0].Disease)
	require.Equal(t, []float32{0, 1, 0}, clf.lastVec)
	for i := 1; i < len(res.Predictions); i++ {
		require.LessOrEqual(t, res.Predictions[i].Probability, res.Predictions[i-1].Probability)
	}
}

func TestInferNoInputShortCircuits(t *testing.T) {
	clf := &fakeClassifier{err: errors.New("must not be called")}
	svc := newStatisticalService(t, clf, nil)

	res, err := svc.Infer(nil, "")
	require.NoError(t, err)
	require.Equal(t, StatusNoInput, res.Status)
	require.Empty(t, res.Predictions)
	require.Equal(t, UrgencyLow, res.Urgency.Level)
	require.Nil(t, clf.lastVec, "scorer must not run for empty input")
}

func TestInferModelUnavailable(t *testing.T) {
	svc := newStatisticalService(t, nil, nil)
	require.False(t, svc.Available())

	res, err := svc.Infer([]string{"fever"}, "")
	require.ErrorIs(t, err, ErrModelUnavailable)
	require.Equal(t, StatusModelUnavailable, res.Status)
	require.Empty(t, res.Predictions)
	// Triage is independent of the disease ranking and still answers.
	require.Equal(t, UrgencyMedium, res.Urgency.Level)
}

func TestInferInferenceFailureSurfaced(t *testing.T) {
	clf := &fakeClassifier{
		features: []string{"fever"},
		classes:  []string{"influenza"},
		err:      errors.New("shape mismatch"),
	}
	svc := newStatisticalService(t, clf, nil)

	res, err := svc.Infer([]string{"fever"}, "")
	require.Error(t, err)
	var infErr *InferenceError
	require.ErrorAs(t, err, &infErr)
	require.Contains(t, infErr.Error(), "shape mismatch")
	require.Equal(t, StatusError, res.Status)

	// A failed request must not invalidate the backend.
	clf.err = nil
	clf.probs = []float32{1}
	res, err = svc.Infer([]string{"fever"}, "")
	require.NoError(t, err)
	require.Equal(t, StatusSuccess, res.Status)
}

func TestClassLabelResolutionOrder(t *testing.T) {
	// Native classes win when the length matches.
	clf := &fakeClassifier{
		features: []string{"fever"},
		classes:  []string{"a", "b"},
		probs:    []float32{0.6, 0.4},
	}
	scorer := NewStatisticalScorer(clf, fakeDecoder{classes: []string{"x", "y"}})
	dist, err := scorer.Score([]string{"fever"}, "")
	require.NoError(t, err)
	require.Equal(t, "a", dist[0].Disease)

	// Decoder takes over when the native list length mismatches.
	clf.classes = []string{"a"}
	dist, err = scorer.Score([]string{"fever"}, "")
	require.NoError(t, err)
	require.Equal(t, "x", dist[0].Disease)

	// Positional indices as last resort.
	scorer = NewStatisticalScorer(clf, fakeDecoder{classes: []string{"only-one"}})
	dist, err = scorer.Score([]string{"fever"}, "")
	require.NoError(t, err)
	require.Equal(t, []string{"0", "1"}, []string{dist[0].Disease, dist[1].Disease})
}

func TestInferHeuristicProbabilitiesSumToOne(t *testing.T) {
	svc, err := NewService(NewHeuristicScorer(nil, 0), Config{}, nil)
	require.NoError(t, err)

	res, err := svc.Infer([]string{"fever", "cough", "shortness_of_breath"}, "")
	require.NoError(t, err)
	require.Equal(t, StatusSuccess, res.Status)
	// The softmax covers every knowledge entry; the returned ranking must
	// not be cut down, or the probabilities stop summing to 1.
	require.Len(t, res.Predictions, len(DefaultKnowledge()))
	var sum float64
	for _, p := range res.Predictions {
		sum += p.Probability
	}
	require.InDelta(t, 1.0, sum, 0.01, "heuristic probabilities must sum to 1")
}

func TestInferStatisticalTruncatesToTopN(t *testing.T) {
	classes := make([]string, 16)
	probs := make([]float32, 16)
	for i := range classes {
		classes[i] = string(rune('a' + i))
		probs[i] = 1.0 / 16
	}
	clf := &fakeClassifier{features: []string{"fever"}, classes: classes, probs: probs}
	svc := newStatisticalService(t, clf, nil)

	res, err := svc.Infer([]string{"fever"}, "")
	require.NoError(t, err)
	require.Len(t, res.Predictions, 10, "classifier output is cut to topN")
}

func TestInferHeuristicFallbackRanking(t *testing.T) {
	svc, err := NewService(NewHeuristicScorer(nil, 0), Config{}, nil)
	require.NoError(t, err)

	res, err := svc.Infer([]string{"glowing_aura"}, "")
	require.NoError(t, err)
	require.Equal(t, StatusSuccess, res.Status)
	require.Len(t, res.Predictions, 3)
	require.Equal(t, "common cold", res.Predictions[0].Disease)
	require.Equal(t, "influenza", res.Predictions[1].Disease)
}

func TestInferIdempotent(t *testing.T) {
	svc, err := NewService(NewHeuristicScorer(nil, 0), Config{}, nil)
	require.NoError(t, err)

	first, err := svc.Infer([]string{"fever", "cough"}, "dry cough for days")
	require.NoError(t, err)
	second, err := svc.Infer([]string{"fever", "cough"}, "dry cough for days")
	require.NoError(t, err)
	require.True(t, reflect.DeepEqual(first, second), "identical inputs must yield identical output")
}

func TestServiceRequiresScorer(t *testing.T) {
	_, err := NewService(nil, Config{}, nil)
	require.Error(t, err)
}
