package engine

import (
	"errors"
	"log"
)

// Service is the inference and triage engine. All per-request state is local
// to Infer, so one Service is safe for concurrent use; the scorer, triage
// flags and info table are loaded once at construction and never mutated.
type Service struct {
	scorer Scorer
	triage *TriageClassifier
	info   InfoTable
	cfg    Config
	logger *log.Logger
}

// NewService constructs the engine around a scorer selected by the caller.
func NewService(scorer Scorer, cfg Config, logger *log.Logger) (*Service, error) {
	if scorer == nil {
		return nil, errors.New("scorer is required")
	}
	cfg.ApplyDefaults()
	return &Service{
		scorer: scorer,
		triage: NewTriageClassifier(cfg.HighRiskFlags, cfg.ModerateFlags),
		info:   DefaultInfoTable(),
		cfg:    cfg,
		logger: logger,
	}, nil
}

// Backend returns the active scorer's name.
func (s *Service) Backend() string { return s.scorer.Name() }

// Available reports whether the active scorer can serve requests. The
// heuristic variant always can; the statistical variant only with a loaded
// classifier.
func (s *Service) Available() bool {
	type availability interface{ Available() bool }
	if a, ok := s.scorer.(availability); ok {
		return a.Available()
	}
	return true
}

// Lookup resolves a ranked disease label to its information record.
func (s *Service) Lookup(label string) (DiseaseInfoRecord, bool) {
	return s.info.Lookup(label)
}

// Infer runs the full pipeline for one request: normalize, triage, score,
// rank. An empty symptom list short-circuits before scoring with the
// no_input status; that is a caller error, not an inference ambiguity, so no
// fallback ranking is produced for it.
//
// On scorer failure the returned Result still carries a valid urgency and a
// status describing the failure class; the error holds the cause. A failed
// request never invalidates the loaded backend for subsequent requests.
func (s *Service) Infer(symptoms []string, description string) (Result, error) {
	given := NormalizeSymptoms(symptoms)
	if len(given) == 0 {
		return Result{
			Predictions: []PredictionEntry{},
			Urgency:     Urgency{Level: UrgencyLow, Recommendation: recommendNoInput},
			Status:      StatusNoInput,
		}, nil
	}

	urgency := s.triage.Classify(given, description)

	dist, err := s.scorer.Score(given, description)
	if err != nil {
		status := StatusError
		if errors.Is(err, ErrModelUnavailable) {
			status = StatusModelUnavailable
		}
		s.logf("scoring failed (%s backend): %v", s.scorer.Name(), err)
		return Result{
			Predictions: []PredictionEntry{},
			Urgency:     urgency,
			Status:      status,
		}, err
	}

	topN := s.cfg.TopN
	if s.scorer.DropNonPositive() {
		// Softmax output is returned whole: truncating it would leave the
		// probabilities summing below 1. Only classifier output, which
		// carries its full class list, is cut to topN.
		topN = len(dist)
	}
	preds := Rank(dist, topN, s.scorer.DropNonPositive())
	if len(preds) == 0 {
		// Scored but no usable signal: fixed lowest-acuity ranking so the
		// caller always receives actionable output.
		preds = append([]PredictionEntry(nil), s.cfg.Fallback...)
	}
	return Result{Predictions: preds, Urgency: urgency, Status: StatusSuccess}, nil
}

func (s *Service) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
