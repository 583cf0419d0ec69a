package engine

import (
	"encoding/json"
	"fmt"
	"os"
)

// ModelMeta mirrors the training-time artifacts the classifier depends on:
// the one-hot feature column names and the label-encoder class list. It is
// exported next to the ONNX graph as a JSON sidecar.
type ModelMeta struct {
	FeatureNames []string `json:"feature_names"`
	ClassNames   []string `json:"classes"`
}

// Classes implements LabelDecoder.
func (m *ModelMeta) Classes() []string {
	if m == nil {
		return nil
	}
	return m.ClassNames
}

// LoadModelMeta reads a metadata sidecar from disk.
func LoadModelMeta(path string) (*ModelMeta, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model metadata: %w", err)
	}
	var meta ModelMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("decode model metadata: %w", err)
	}
	return &meta, nil
}
