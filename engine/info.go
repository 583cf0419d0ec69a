package engine

import "strings"

// DiseaseInfoRecord is static, read-only reference data about one condition,
// used for presentation only.
type DiseaseInfoRecord struct {
	Name        string   `json:"name"`
	Emoji       string   `json:"emoji"`
	Description string   `json:"description"`
	Advice      string   `json:"advice"`
	Keywords    []string `json:"keywords"`
}

// InfoTable is an ordered disease knowledge table. Iteration order decides
// which record wins when several match, so the table is a slice.
type InfoTable []DiseaseInfoRecord

// DefaultInfoTable returns the built-in disease information records.
func DefaultInfoTable() InfoTable {
	return InfoTable{
		{
			Name:        "common cold",
			Emoji:       "🤧",
			Description: "A mild viral infection of the upper respiratory tract. Symptoms are usually mild and self-limited.",
			Advice:      "Rest, fluids, saline nasal spray, and OTC symptom relief. See a clinician if symptoms worsen or last >10 days.",
			Keywords:    []string{"cold", "rhinitis", "runny", "sore throat"},
		},
		{
			Name:        "influenza",
			Emoji:       "🤒",
			Description: "Influenza causes fever, body aches, cough and fatigue — can be more severe than a common cold.",
			Advice:      "Rest, fluids, and consider antivirals if within 48 hours and at-risk. Seek care for breathing difficulty.",
			Keywords:    []string{"flu", "influenza", "body ache", "myalgia"},
		},
		{
			Name:        "covid-19",
			Emoji:       "🦠",
			Description: "COVID-19 is caused by SARS-CoV-2 and can present with fever, cough, and loss of taste or smell.",
			Advice:      "Isolate, test if available, monitor oxygenation. Seek urgent care for shortness of breath or chest pain.",
			Keywords:    []string{"covid", "sars", "corona", "loss of taste", "loss of smell"},
		},
		{
			Name:        "migraine",
			Emoji:       "🤯",
			Description: "Migraines are recurrent headaches often with nausea and sensitivity to light/sound.",
			Advice:      "Rest in a dark room, use prescribed agents. Seek immediate care for a new sudden severe headache.",
			Keywords:    []string{"migraine", "headache", "throbbing"},
		},
		{
			Name:        "gastroenteritis",
			Emoji:       "🤢",
			Description: "Infection or inflammation of the stomach/intestine causing vomiting and diarrhea.",
			Advice:      "Hydrate with oral rehydration solutions. Seek care for bloody stools or severe dehydration.",
			Keywords:    []string{"diarrhea", "vomit", "gastro", "stomach"},
		},
		{
			Name:        "pneumonia",
			Emoji:       "🫁",
			Description: "Infection of the lungs causing cough, fever, and sometimes difficulty breathing.",
			Advice:      "Medical evaluation is recommended; antibiotics or hospital care may be needed depending on severity.",
			Keywords:    []string{"pneumonia", "lung infection", "consolidation"},
		},
		{
			Name:        "bronchitis",
			Emoji:       "🌬️",
			Description: "Inflammation of the bronchial tubes causing cough and phlegm production.",
			Advice:      "Rest and fluids; see clinician if cough is severe, prolonged or pus-like sputum develops.",
			Keywords:    []string{"bronchitis", "bronchial", "productive cough"},
		},
		{
			Name:        "dehydration",
			Emoji:       "💧",
			Description: "Loss of fluids/electrolytes causing dizziness, dry mouth, and decreased urine output.",
			Advice:      "Oral rehydration; seek urgent care for severe symptoms or inability to keep fluids down.",
			Keywords:    []string{"dehydrate", "dehydration", "dry mouth", "dizzy"},
		},
		{
			Name:        "strep throat",
			Emoji:       "🗣️",
			Description: "Bacterial infection of the throat causing sore throat, fever, and swollen lymph nodes.",
			Advice:      "See a clinician for testing and antibiotics if confirmed.",
			Keywords:    []string{"strep", "strep throat", "tonsillitis"},
		},
		{
			Name:        "allergic rhinitis",
			Emoji:       "🤧",
			Description: "Allergic reaction causing sneezing, itchy/watery eyes and runny nose.",
			Advice:      "Avoid triggers, use antihistamines or nasal steroids. Seek care if breathing difficulty occurs.",
			Keywords:    []string{"allergy", "hay fever", "sneezing", "itchy eyes"},
		},
		{
			Name:        "urinary tract infection",
			Emoji:       "🚽",
			Description: "Infection of the urinary tract causing burning with urination and frequent urges.",
			Advice:      "See a clinician for diagnosis and antibiotics if needed.",
			Keywords:    []string{"uti", "urinary", "burning urine", "frequency"},
		},
		{
			Name:        "asthma",
			Emoji:       "🌬️",
			Description: "Chronic airway inflammation leading to wheeze, cough, chest tightness and shortness of breath.",
			Advice:      "Use prescribed inhalers and seek urgent care for severe breathlessness or noisy breathing.",
			Keywords:    []string{"wheeze", "asthma", "wheezing", "bronchospasm"},
		},
		{
			Name:        "sinusitis",
			Emoji:       "😷",
			Description: "Inflammation of the sinuses causing facial pain/pressure, nasal congestion and purulent discharge.",
			Advice:      "Saline rinses and decongestants; see clinician for persistent pain or high fever.",
			Keywords:    []string{"sinus", "sinusitis", "facial pain", "sinus pain"},
		},
		{
			Name:        "otitis media",
			Emoji:       "👂",
			Description: "Middle ear infection common in children, often with ear pain, fever and reduced hearing.",
			Advice:      "Pain control and clinician review; antibiotics may be indicated based on exam.",
			Keywords:    []string{"ear pain", "otitis", "earache", "ear infection"},
		},
		{
			Name:        "appendicitis",
			Emoji:       "🔪",
			Description: "Inflammation of the appendix causing progressive abdominal pain (often starts periumbilical then localizes to the right lower abdomen).",
			Advice:      "Seek immediate emergency care for severe or worsening abdominal pain, fever, or vomiting.",
			Keywords:    []string{"appendix", "appendicitis", "right lower quadrant", "abdominal pain"},
		},
		{
			Name:        "gastroesophageal reflux (gerd)",
			Emoji:       "🔥",
			Description: "Backflow of stomach acid causing heartburn, regurgitation and chest discomfort.",
			Advice:      "Lifestyle measures and antacids; see clinician for severe or recurrent symptoms to assess for complications.",
			Keywords:    []string{"heartburn", "acid reflux", "gerd", "regurgitation"},
		},
		{
			Name:        "cellulitis",
			Emoji:       "🩹",
			Description: "Bacterial skin infection causing redness, warmth, swelling and pain of the affected area.",
			Advice:      "See clinician for antibiotics; urgent care if rapidly spreading or systemic symptoms.",
			Keywords:    []string{"cellulitis", "redness", "skin infection", "swelling"},
		},
		{
			Name:        "anaphylaxis",
			Emoji:       "⚠️",
			Description: "Severe allergic reaction with hives, swelling, difficulty breathing, or low blood pressure.",
			Advice:      "Call emergency services immediately — this is life-threatening.",
			Keywords:    []string{"anaphylaxis", "anaphylactic", "hives", "swelling", "difficulty breathing"},
		},
		{
			Name:        "panic attack",
			Emoji:       "😰",
			Description: "Acute episodes of intense fear with palpitations, shortness of breath and a sense of doom.",
			Advice:      "Grounding techniques and breathing; seek medical attention if first-time or atypical symptoms.",
			Keywords:    []string{"panic", "panic attack", "anxiety", "palpitations"},
		},
		{
			Name:        "kidney stone",
			Emoji:       "🪨",
			Description: "Hard deposits in the urinary tract causing severe flank pain, often with nausea and hematuria.",
			Advice:      "Seek emergency care for severe pain, inability to pass urine, or fever.",
			Keywords:    []string{"kidney stone", "renal colic", "flank pain", "hematuria"},
		},
	}
}

// infoMatcher is one pure matching strategy over the table.
type infoMatcher func(t InfoTable, label string) (DiseaseInfoRecord, bool)

// Matching strategies in precedence order: exact key, substring either
// direction, keyword, then hard-coded aliases as a last-resort recall
// mechanism. Within a strategy the first table entry wins.
var infoMatchers = []infoMatcher{
	matchExact,
	matchSubstring,
	matchKeyword,
	matchAlias,
}

// Lookup fuzzy-matches a ranked disease label to an information record. A
// missing match is not an error; callers handle the absent result.
func (t InfoTable) Lookup(label string) (DiseaseInfoRecord, bool) {
	dn := strings.ToLower(strings.TrimSpace(label))
	if dn == "" {
		return DiseaseInfoRecord{}, false
	}
	for _, match := range infoMatchers {
		if rec, ok := match(t, dn); ok {
			return rec, true
		}
	}
	return DiseaseInfoRecord{}, false
}

func matchExact(t InfoTable, label string) (DiseaseInfoRecord, bool) {
	for _, rec := range t {
		if strings.ToLower(rec.Name) == label {
			return rec, true
		}
	}
	return DiseaseInfoRecord{}, false
}

func matchSubstring(t InfoTable, label string) (DiseaseInfoRecord, bool) {
	for _, rec := range t {
		key := strings.ToLower(rec.Name)
		if strings.Contains(label, key) || strings.Contains(key, label) {
			return rec, true
		}
	}
	return DiseaseInfoRecord{}, false
}

func matchKeyword(t InfoTable, label string) (DiseaseInfoRecord, bool) {
	for _, rec := range t {
		for _, kw := range rec.Keywords {
			if strings.Contains(label, strings.ToLower(kw)) {
				return rec, true
			}
		}
	}
	return DiseaseInfoRecord{}, false
}

func matchAlias(t InfoTable, label string) (DiseaseInfoRecord, bool) {
	aliases := []struct {
		tokens []string
		name   string
	}{
		{tokens: []string{"covid", "corona", "sars"}, name: "covid-19"},
		{tokens: []string{"flu", "influenza"}, name: "influenza"},
	}
	for _, a := range aliases {
		for _, tok := range a.tokens {
			if strings.Contains(label, tok) {
				return matchExact(t, a.name)
			}
		}
	}
	return DiseaseInfoRecord{}, false
}
