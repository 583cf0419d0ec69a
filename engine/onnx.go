package engine

import (
	"errors"
	"fmt"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

// OnnxConfig locates the exported classifier graph and its metadata sidecar.
type OnnxConfig struct {
	// OrtDLL is the onnxruntime shared library path; empty uses the
	// platform default lookup.
	OrtDLL     string `json:"ortDll"`
	ModelPath  string `json:"modelPath"`
	MetaPath   string `json:"metaPath"`
	InputName  string `json:"inputName"`
	OutputName string `json:"outputName"`
}

// OnnxClassifier runs a multi-class disease classifier exported to ONNX.
// The graph takes a [1, n_features] float32 one-hot vector and emits
// [1, n_classes] probabilities.
type OnnxClassifier struct {
	mu      sync.Mutex
	session *ort.DynamicAdvancedSession
	meta    *ModelMeta
	cfg     OnnxConfig
}

// NewOnnxClassifier initializes the onnxruntime environment, loads the model
// metadata sidecar and opens a session. A load failure leaves the process
// intact; callers keep serving in the unavailable state instead.
func NewOnnxClassifier(cfg OnnxConfig) (*OnnxClassifier, error) {
	if cfg.InputName == "" {
		cfg.InputName = "input"
	}
	if cfg.OutputName == "" {
		cfg.OutputName = "probabilities"
	}
	meta, err := LoadModelMeta(cfg.MetaPath)
	if err != nil {
		return nil, err
	}
	if len(meta.FeatureNames) == 0 || len(meta.ClassNames) == 0 {
		return nil, errors.New("model metadata is missing feature names or classes")
	}
	if cfg.OrtDLL != "" {
		ort.SetSharedLibraryPath(cfg.OrtDLL)
	}
	if !ort.IsInitialized() {
		if err := ort.InitializeEnvironment(); err != nil {
			return nil, fmt.Errorf("initialize onnxruntime: %w", err)
		}
	}
	session, err := ort.NewDynamicAdvancedSession(
		cfg.ModelPath,
		[]string{cfg.InputName},
		[]string{cfg.OutputName},
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("open model session: %w", err)
	}
	return &OnnxClassifier{session: session, meta: meta, cfg: cfg}, nil
}

// Close releases the ONNX session.
func (c *OnnxClassifier) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return nil
	}
	err := c.session.Destroy()
	c.session = nil
	return err
}

// FeatureNames returns the one-hot column schema from the metadata sidecar.
func (c *OnnxClassifier) FeatureNames() []string { return c.meta.FeatureNames }

// Classes returns the label-encoder class list from the metadata sidecar.
func (c *OnnxClassifier) Classes() []string { return c.meta.ClassNames }

// PredictProba runs the graph on one feature vector. Calls are serialized;
// per-request tensors are created and destroyed inside the call so the
// session itself holds no per-call mutable state.
func (c *OnnxClassifier) PredictProba(features []float32) ([]float32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return nil, ErrModelUnavailable
	}
	if len(features) != len(c.meta.FeatureNames) {
		return nil, fmt.Errorf("feature vector length %d does not match schema length %d",
			len(features), len(c.meta.FeatureNames))
	}
	input, err := ort.NewTensor(ort.NewShape(1, int64(len(features))), features)
	if err != nil {
		return nil, fmt.Errorf("create input tensor: %w", err)
	}
	defer input.Destroy()
	output, err := ort.NewEmptyTensor[float32](ort.NewShape(1, int64(len(c.meta.ClassNames))))
	if err != nil {
		return nil, fmt.Errorf("create output tensor: %w", err)
	}
	defer output.Destroy()
	if err := c.session.Run([]ort.Value{input}, []ort.Value{output}); err != nil {
		return nil, fmt.Errorf("run model: %w", err)
	}
	probs := make([]float32, len(c.meta.ClassNames))
	copy(probs, output.GetData())
	return probs, nil
}
