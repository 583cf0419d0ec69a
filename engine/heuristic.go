package engine

import (
	"strings"
)

// KnowledgeEntry maps one disease to its canonical symptom token set.
type KnowledgeEntry struct {
	Disease  string   `json:"disease"`
	Symptoms []string `json:"symptoms"`
}

// DefaultKnowledge returns the built-in disease/symptom table. Order matters:
// it fixes the emission order of the heuristic distribution, and with it the
// rank of equal scores.
func DefaultKnowledge() []KnowledgeEntry {
	return []KnowledgeEntry{
		{Disease: "common cold", Symptoms: []string{"cough", "sore_throat", "runny_nose", "sneezing", "congestion"}},
		{Disease: "influenza", Symptoms: []string{"fever", "chills", "muscle_ache", "fatigue", "headache"}},
		{Disease: "covid-19", Symptoms: []string{"fever", "cough", "loss_of_taste_or_smell", "shortness_of_breath", "fatigue"}},
		{Disease: "pneumonia", Symptoms: []string{"fever", "cough", "shortness_of_breath", "chest_pain", "productive_cough"}},
		{Disease: "gastroenteritis", Symptoms: []string{"diarrhea", "vomiting", "nausea", "abdominal_pain"}},
		{Disease: "migraine", Symptoms: []string{"headache", "nausea", "sensitivity", "photophobia"}},
		{Disease: "urinary tract infection", Symptoms: []string{"burning", "frequency", "urinary", "dysuria"}},
		{Disease: "asthma", Symptoms: []string{"wheeze", "shortness_of_breath", "cough", "chest_tightness"}},
		{Disease: "sinusitis", Symptoms: []string{"facial_pain", "nasal_congestion", "purulent_discharge", "sinus_pressure"}},
		{Disease: "otitis media", Symptoms: []string{"ear_pain", "fever", "reduced_hearing"}},
		{Disease: "appendicitis", Symptoms: []string{"abdominal_pain", "right_lower_quadrant", "nausea", "vomiting"}},
		{Disease: "gastroesophageal reflux (gerd)", Symptoms: []string{"heartburn", "regurgitation", "chest_discomfort"}},
		{Disease: "cellulitis", Symptoms: []string{"redness", "swelling", "pain", "warmth"}},
		{Disease: "anaphylaxis", Symptoms: []string{"hives", "swelling", "difficulty_breathing", "low_blood_pressure"}},
		{Disease: "panic attack", Symptoms: []string{"palpitations", "shortness_of_breath", "sweating", "fear"}},
		{Disease: "kidney stone", Symptoms: []string{"flank_pain", "hematuria", "nausea", "vomiting"}},
	}
}

// HeuristicScorer computes overlap scores between the reported symptom set
// and each disease's canonical symptoms, adds a fixed boost per disease-name
// token found in the free-text description, and softmax-normalizes the
// result into a probability-like distribution.
type HeuristicScorer struct {
	knowledge []KnowledgeEntry
	sets      []map[string]struct{}
	nameToks  [][]string
	boost     float64
}

// NewHeuristicScorer compiles the knowledge table. A nil or empty table
// falls back to the built-in one; a non-positive boost falls back to the
// default increment.
func NewHeuristicScorer(knowledge []KnowledgeEntry, boost float64) *HeuristicScorer {
	if len(knowledge) == 0 {
		knowledge = DefaultKnowledge()
	}
	if boost <= 0 {
		boost = defaultDescriptionBoost
	}
	h := &HeuristicScorer{
		knowledge: knowledge,
		sets:      make([]map[string]struct{}, len(knowledge)),
		nameToks:  make([][]string, len(knowledge)),
		boost:     boost,
	}
	for i, entry := range knowledge {
		h.sets[i] = symptomSet(entry.Symptoms)
		h.nameToks[i] = strings.Fields(strings.ToLower(entry.Disease))
	}
	return h
}

func (h *HeuristicScorer) Name() string { return "heuristic" }

func (h *HeuristicScorer) DropNonPositive() bool { return true }

// Score returns softmax-normalized scores for every candidate disease, in
// knowledge-table order. When no candidate gets any overlap or description
// boost the distribution carries no signal; a uniform softmax over unrelated
// diseases would be meaningless, so an empty distribution is returned and the
// ranker applies its fallback policy.
func (h *HeuristicScorer) Score(symptoms []string, description string) (ScoreDistribution, error) {
	given := symptomSet(symptoms)
	desc := strings.ToLower(description)

	raw := make([]float64, len(h.knowledge))
	signal := false
	for i := range h.knowledge {
		matched := 0
		for tok := range h.sets[i] {
			if _, ok := given[tok]; ok {
				matched++
			}
		}
		denom := len(h.sets[i])
		if denom < 1 {
			denom = 1
		}
		score := float64(matched) / float64(denom)
		for _, tok := range h.nameToks[i] {
			if strings.Contains(desc, tok) {
				score += h.boost
			}
		}
		if score < 0 {
			score = 0
		}
		if score > 0 {
			signal = true
		}
		raw[i] = score
	}
	if !signal {
		return nil, nil
	}

	probs := softmax(raw)
	dist := make(ScoreDistribution, len(h.knowledge))
	for i, entry := range h.knowledge {
		dist[i] = DiseaseScore{Disease: entry.Disease, Score: probs[i]}
	}
	return dist, nil
}
