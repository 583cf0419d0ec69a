package engine

import (
	"strings"
	"testing"
)

func newTriage() *TriageClassifier {
	return NewTriageClassifier(nil, nil)
}

func TestTriageHighFlags(t *testing.T) {
	u := newTriage().Classify([]string{"chest_pain", "shortness_of_breath"}, "")
	if u.Level != UrgencyHigh {
		t.Fatalf("expected high urgency, got %s", u.Level)
	}
	if !strings.Contains(strings.ToLower(u.Recommendation), "immediate") {
		t.Fatalf("high urgency must advise emergency care, got %q", u.Recommendation)
	}
}

func TestTriageHighWinsOverMedium(t *testing.T) {
	// chest_pain plus every moderate flag: high must still win.
	u := newTriage().Classify([]string{"fever", "cough", "fatigue", "chest_pain"}, "")
	if u.Level != UrgencyHigh {
		t.Fatalf("precedence violated: got %s", u.Level)
	}
}

func TestTriageDescriptionChestCheck(t *testing.T) {
	u := newTriage().Classify([]string{"dizziness"}, "a tight feeling in my chest")
	if u.Level != UrgencyHigh {
		t.Fatalf("description 'chest' must trigger high urgency, got %s", u.Level)
	}
}

func TestTriageMedium(t *testing.T) {
	u := newTriage().Classify([]string{"fever", "headache"}, "")
	if u.Level != UrgencyMedium {
		t.Fatalf("expected medium urgency, got %s", u.Level)
	}
}

func TestTriageLowDefault(t *testing.T) {
	u := newTriage().Classify([]string{"sneezing"}, "a bit sniffly")
	if u.Level != UrgencyLow {
		t.Fatalf("expected low urgency, got %s", u.Level)
	}
	if u.Recommendation == "" {
		t.Fatal("recommendation must never be absent")
	}
}

func TestTriageNormalizesFlagsAndInput(t *testing.T) {
	u := newTriage().Classify([]string{"Chest Pain"}, "")
	if u.Level != UrgencyHigh {
		t.Fatalf("un-normalized input must still match flags, got %s", u.Level)
	}
}
