package engine

import "encoding/json"

// Status reports how an inference request was resolved.
type Status string

const (
	// StatusSuccess means the request was scored normally.
	StatusSuccess Status = "success"
	// StatusNoInput means the request carried no usable symptoms.
	StatusNoInput Status = "no_input"
	// StatusModelUnavailable means the statistical backend is not loaded.
	StatusModelUnavailable Status = "model_unavailable"
	// StatusError means the backend raised during scoring.
	StatusError Status = "error"
)

// UrgencyLevel is the coarse triage tier for a request.
type UrgencyLevel string

const (
	UrgencyLow    UrgencyLevel = "low"
	UrgencyMedium UrgencyLevel = "medium"
	UrgencyHigh   UrgencyLevel = "high"
)

// Urgency pairs a triage tier with the recommended next action.
type Urgency struct {
	Level          UrgencyLevel `json:"level"`
	Recommendation string       `json:"recommendation"`
}

// PredictionEntry is one ranked disease candidate. Entry order is the rank.
type PredictionEntry struct {
	Disease     string  `json:"disease"`
	Probability float64 `json:"probability"`
}

// Result is the full outcome of one inference call.
type Result struct {
	Predictions []PredictionEntry `json:"predictions"`
	Urgency     Urgency           `json:"urgency"`
	Status      Status            `json:"status"`
}

// DiseaseScore is a single entry of a ScoreDistribution.
type DiseaseScore struct {
	Disease string
	Score   float64
}

// ScoreDistribution holds per-disease scores in scorer emission order.
// It is a slice rather than a map so that equal scores keep a stable rank.
type ScoreDistribution []DiseaseScore

// Config aggregates the engine tunables persisted to config.json.
type Config struct {
	TopN             int               `json:"topN"`
	DescriptionBoost float64           `json:"descriptionBoost"`
	HighRiskFlags    []string          `json:"highRiskFlags"`
	ModerateFlags    []string          `json:"moderateFlags"`
	Fallback         []PredictionEntry `json:"fallback"`
	KnowledgePath    string            `json:"knowledgePath"`
}

const (
	defaultTopN             = 10
	defaultDescriptionBoost = 0.12
)

// Clone creates a deep copy of the configuration so callers can mutate safely.
func (c Config) Clone() Config {
	buf, _ := json.Marshal(c)
	var out Config
	_ = json.Unmarshal(buf, &out)
	return out
}

// ApplyDefaults populates zero values with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.TopN <= 0 {
		c.TopN = defaultTopN
	}
	if c.DescriptionBoost <= 0 {
		c.DescriptionBoost = defaultDescriptionBoost
	}
	if len(c.HighRiskFlags) == 0 {
		c.HighRiskFlags = []string{"chest_pain", "shortness_of_breath", "severe_breathing"}
	}
	if len(c.ModerateFlags) == 0 {
		c.ModerateFlags = []string{"fever", "cough", "fatigue"}
	}
	if len(c.Fallback) == 0 {
		c.Fallback = []PredictionEntry{
			{Disease: "common cold", Probability: 0.5},
			{Disease: "influenza", Probability: 0.3},
			{Disease: "covid-19", Probability: 0.2},
		}
	}
}
