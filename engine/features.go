package engine

// EncodeFeatures maps raw symptoms onto the classifier's one-hot column
// schema: the output has exactly one entry per schema name, in schema order,
// 1 when the normalized symptom is present and 0 otherwise. Input symptoms
// absent from the schema are discarded rather than appended, so the vector
// stays structurally compatible with the training-time column ordering.
//
// An empty symptom list yields an all-zero vector, never an error. An empty
// schema yields nil; the heuristic path operates on set membership instead of
// a positional vector and does not call this.
func EncodeFeatures(symptoms []string, schema []string) []float32 {
	if len(schema) == 0 {
		return nil
	}
	set := symptomSet(symptoms)
	vec := make([]float32, len(schema))
	for i, name := range schema {
		if _, ok := set[NormalizeSymptom(name)]; ok {
			vec[i] = 1
		}
	}
	return vec
}
