package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"mediscan/diagnosis/engine"
)

func newHeuristicRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc, err := engine.NewService(engine.NewHeuristicScorer(nil, 0), engine.Config{}, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return NewRouter(svc, nil, nil)
}

func newUnavailableRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc, err := engine.NewService(engine.NewStatisticalScorer(nil, nil), engine.Config{}, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return NewRouter(svc, nil, nil)
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeResult(t *testing.T, w *httptest.ResponseRecorder) engine.Result {
	t.Helper()
	var res engine.Result
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v (%s)", err, w.Body.String())
	}
	return res
}

func TestPredictObjectBody(t *testing.T) {
	router := newHeuristicRouter(t)
	w := doRequest(t, router, http.MethodPost, "/predict",
		`{"symptoms": ["fever", "cough"], "description": "High fever and cough"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	res := decodeResult(t, w)
	if res.Status != engine.StatusSuccess || len(res.Predictions) == 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Urgency.Level != engine.UrgencyMedium {
		t.Fatalf("fever+cough should be medium urgency, got %s", res.Urgency.Level)
	}
}

func TestPredictBareListBody(t *testing.T) {
	router := newHeuristicRouter(t)
	w := doRequest(t, router, http.MethodPost, "/predict", `["chest_pain", "shortness_of_breath"]`)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	res := decodeResult(t, w)
	if res.Urgency.Level != engine.UrgencyHigh {
		t.Fatalf("expected high urgency, got %s", res.Urgency.Level)
	}
}

func TestPredictMalformedBodyMapsToNoInput(t *testing.T) {
	router := newHeuristicRouter(t)
	for _, body := range []string{`{{not json`, `42`, `"just a string"`} {
		w := doRequest(t, router, http.MethodPost, "/predict", body)
		if w.Code != http.StatusOK {
			t.Fatalf("malformed body must not hard-fail, got %d for %q", w.Code, body)
		}
		res := decodeResult(t, w)
		if res.Status != engine.StatusNoInput {
			t.Fatalf("expected no_input for %q, got %s", body, res.Status)
		}
	}
}

func TestPredictEmptySymptoms(t *testing.T) {
	router := newHeuristicRouter(t)
	w := doRequest(t, router, http.MethodPost, "/predict", `{"symptoms": [], "description": ""}`)
	res := decodeResult(t, w)
	if res.Status != engine.StatusNoInput || len(res.Predictions) != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Urgency.Level != engine.UrgencyLow {
		t.Fatalf("no_input must be low urgency, got %s", res.Urgency.Level)
	}
}

func TestPredictModelUnavailable(t *testing.T) {
	router := newUnavailableRouter(t)
	w := doRequest(t, router, http.MethodPost, "/predict", `{"symptoms": ["fever"]}`)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d: %s", w.Code, w.Body.String())
	}
}

func TestHealthReportsBackend(t *testing.T) {
	router := newHeuristicRouter(t)
	w := doRequest(t, router, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" || body["model_loaded"] != true || body["backend"] != "heuristic" {
		t.Fatalf("unexpected health body: %v", body)
	}

	w = doRequest(t, newUnavailableRouter(t), http.MethodGet, "/health", "")
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "error" || body["model_loaded"] != false {
		t.Fatalf("unavailable backend must surface in health: %v", body)
	}
}

func TestReadyzWithoutDB(t *testing.T) {
	w := doRequest(t, newHeuristicRouter(t), http.MethodGet, "/readyz", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "disabled") {
		t.Fatalf("unexpected readyz: %d %s", w.Code, w.Body.String())
	}
}

func TestDiseaseInfoEndpoint(t *testing.T) {
	router := newHeuristicRouter(t)
	w := doRequest(t, router, http.MethodGet, "/disease-info?name=corona", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	var rec engine.DiseaseInfoRecord
	if err := json.Unmarshal(w.Body.Bytes(), &rec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec.Name != "covid-19" {
		t.Fatalf("corona resolved to %q", rec.Name)
	}

	w = doRequest(t, router, http.MethodGet, "/disease-info?name=nonsense-xyz", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestHistoryDisabled(t *testing.T) {
	w := doRequest(t, newHeuristicRouter(t), http.MethodGet, "/history", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 when history disabled, got %d", w.Code)
	}
}
