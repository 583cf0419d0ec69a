package engine

import "strings"

// Recommendation texts per triage tier.
const (
	recommendLow     = "Monitor your symptoms and follow up if they worsen."
	recommendMedium  = "Contact your primary care or urgent care for evaluation if symptoms persist or worsen."
	recommendHigh    = "Seek immediate medical attention (call emergency services or go to ER)."
	recommendNoInput = "Please provide at least one symptom."
)

// TriageClassifier derives an urgency tier from symptom flags and the free
// text description, independent of the disease ranking. Evaluation order is
// high, then medium, then low; the first matching tier wins so an input that
// satisfies both flag sets is over-triaged rather than under-triaged.
type TriageClassifier struct {
	high     map[string]struct{}
	moderate map[string]struct{}
}

// NewTriageClassifier normalizes and compiles the flag sets. Empty sets fall
// back to the built-in flags.
func NewTriageClassifier(highFlags, moderateFlags []string) *TriageClassifier {
	var defaults Config
	defaults.ApplyDefaults()
	if len(highFlags) == 0 {
		highFlags = defaults.HighRiskFlags
	}
	if len(moderateFlags) == 0 {
		moderateFlags = defaults.ModerateFlags
	}
	return &TriageClassifier{
		high:     symptomSet(highFlags),
		moderate: symptomSet(moderateFlags),
	}
}

// Classify is a pure function of the normalized symptom tokens and the
// lower-cased description; it never reports "cannot determine". The "chest"
// substring check catches free text that was not tokenized into the
// structured symptom set.
func (t *TriageClassifier) Classify(symptoms []string, description string) Urgency {
	given := symptomSet(symptoms)
	desc := strings.ToLower(description)

	if intersects(given, t.high) || strings.Contains(desc, "chest") {
		return Urgency{Level: UrgencyHigh, Recommendation: recommendHigh}
	}
	if intersects(given, t.moderate) {
		return Urgency{Level: UrgencyMedium, Recommendation: recommendMedium}
	}
	return Urgency{Level: UrgencyLow, Recommendation: recommendLow}
}

func intersects(a, b map[string]struct{}) bool {
	for tok := range a {
		if _, ok := b[tok]; ok {
			return true
		}
	}
	return false
}
