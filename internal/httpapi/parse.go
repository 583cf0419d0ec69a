package httpapi

import (
	"encoding/json"
	"fmt"
)

// predictRequest is the parsed body of a /predict call.
type predictRequest struct {
	Symptoms    []string
	Description string
}

// parsePredictBody accepts either a bare JSON list of symptoms or an object
// form {symptoms, description}. Anything unparseable becomes an empty
// request, which the engine answers with no_input.
func parsePredictBody(data []byte) predictRequest {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return predictRequest{}
	}
	switch v := raw.(type) {
	case []any:
		return predictRequest{Symptoms: coerceStrings(v)}
	case map[string]any:
		var req predictRequest
		if items, ok := v["symptoms"].([]any); ok {
			req.Symptoms = coerceStrings(items)
		}
		if desc, ok := v["description"].(string); ok {
			req.Description = desc
		}
		return req
	default:
		return predictRequest{}
	}
}

// coerceStrings stringifies list items so numeric or mixed payloads still
// yield usable tokens. Empty-ish entries (null, false, zero, "") carry no
// symptom and are dropped.
func coerceStrings(items []any) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		switch s := it.(type) {
		case string:
			if s != "" {
				out = append(out, s)
			}
		case bool:
			if s {
				out = append(out, "true")
			}
		case float64:
			if s != 0 {
				out = append(out, fmt.Sprint(s))
			}
		case nil:
		default:
			out = append(out, fmt.Sprint(s))
		}
	}
	return out
}
