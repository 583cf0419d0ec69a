package engine

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeSymptom turns a raw symptom into its canonical token form:
// NFKC-normalized, lower-cased, whitespace collapsed to single underscores.
// The transformation is idempotent.
func NormalizeSymptom(s string) string {
	s = norm.NFKC.String(s)
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 0 {
		return ""
	}
	return strings.Join(fields, "_")
}

// NormalizeSymptoms normalizes a raw symptom list into a deduplicated token
// list, dropping blank entries and keeping first-seen order.
func NormalizeSymptoms(symptoms []string) []string {
	seen := make(map[string]struct{}, len(symptoms))
	res := make([]string, 0, len(symptoms))
	for _, raw := range symptoms {
		tok := NormalizeSymptom(raw)
		if tok == "" {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		res = append(res, tok)
	}
	return res
}

func symptomSet(symptoms []string) map[string]struct{} {
	set := make(map[string]struct{}, len(symptoms))
	for _, s := range symptoms {
		if tok := NormalizeSymptom(s); tok != "" {
			set[tok] = struct{}{}
		}
	}
	return set
}
