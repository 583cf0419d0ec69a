package engine

import "strconv"

// Classifier is the predict_proba surface of a trained multi-class model.
// Implementations must be safe for concurrent read-only inference.
type Classifier interface {
	// PredictProba scores one feature vector and returns per-class
	// probabilities. The vector length matches FeatureNames.
	PredictProba(features []float32) ([]float32, error)
	// FeatureNames is the ordered one-hot column schema the model expects.
	FeatureNames() []string
	// Classes is the model's native class label list, empty when the
	// artifact does not carry one.
	Classes() []string
}

// LabelDecoder resolves class indices to disease labels when the classifier
// does not carry its own class list.
type LabelDecoder interface {
	Classes() []string
}

// StatisticalScorer delegates scoring to a loaded classifier. A nil
// classifier is the documented unavailable state: Score fails with
// ErrModelUnavailable but the scorer itself stays usable for later requests.
type StatisticalScorer struct {
	clf     Classifier
	decoder LabelDecoder
}

// NewStatisticalScorer wraps a classifier and an optional external label
// decoder. Either may be nil.
func NewStatisticalScorer(clf Classifier, decoder LabelDecoder) *StatisticalScorer {
	return &StatisticalScorer{clf: clf, decoder: decoder}
}

func (s *StatisticalScorer) Name() string { return "statistical" }

func (s *StatisticalScorer) DropNonPositive() bool { return false }

// Available reports whether a classifier is loaded.
func (s *StatisticalScorer) Available() bool { return s.clf != nil }

// Score encodes the symptoms against the model schema and returns the
// classifier's probabilities as-is; no renormalization is applied.
func (s *StatisticalScorer) Score(symptoms []string, _ string) (ScoreDistribution, error) {
	if s.clf == nil {
		return nil, ErrModelUnavailable
	}
	features := EncodeFeatures(symptoms, s.clf.FeatureNames())
	probs, err := s.clf.PredictProba(features)
	if err != nil {
		return nil, &InferenceError{Err: err}
	}
	labels := s.classLabels(len(probs))
	dist := make(ScoreDistribution, len(probs))
	for i, p := range probs {
		dist[i] = DiseaseScore{Disease: labels[i], Score: float64(p)}
	}
	return dist, nil
}

// classLabels resolves labels for an output vector of length n. The
// classifier's native list wins, then the external decoder, then positional
// indices; each candidate must match n exactly so a deployment mismatch
// between model and label artifact cannot mislabel classes.
func (s *StatisticalScorer) classLabels(n int) []string {
	if cs := s.clf.Classes(); len(cs) == n {
		return cs
	}
	if s.decoder != nil {
		if cs := s.decoder.Classes(); len(cs) == n {
			return cs
		}
	}
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(i)
	}
	return out
}
