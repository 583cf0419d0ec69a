package engine

import (
	"errors"
	"fmt"
)

// ErrModelUnavailable is returned when the statistical backend has no loaded
// classifier. It is distinct from a prediction-time failure and maps to a
// service-unavailable condition at the boundary.
var ErrModelUnavailable = errors.New("model is not loaded")

// InferenceError wraps a failure raised by the classifier during scoring.
// A deterministic computation failing once will fail again on identical
// input, so callers must surface it rather than retry.
type InferenceError struct {
	Err error
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("model prediction failed: %v", e.Err)
}

func (e *InferenceError) Unwrap() error { return e.Err }
