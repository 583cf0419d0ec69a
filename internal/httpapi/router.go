// Package httpapi is the thin HTTP wrapping around the inference engine. It
// parses request bodies, maps engine errors to status codes and serializes
// engine output verbatim; no inference logic lives here.
package httpapi

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"mediscan/diagnosis/engine"
	"mediscan/diagnosis/internal/history"
)

// Diagnoser is the engine surface the HTTP layer consumes.
type Diagnoser interface {
	Infer(symptoms []string, description string) (engine.Result, error)
	Lookup(label string) (engine.DiseaseInfoRecord, bool)
	Available() bool
	Backend() string
}

// Recorder persists completed inferences and serves recent ones. A nil
// Recorder disables history endpoints.
type Recorder interface {
	Record(ctx context.Context, e history.Entry) error
	Recent(ctx context.Context, limit int) ([]history.Entry, error)
	Ping(ctx context.Context) error
}

// NewRouter builds the gin engine with all routes and middleware.
func NewRouter(svc Diagnoser, rec Recorder, logger *log.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Logger(),
		gin.Recovery(),
		limitBodySize(1<<20), // 1MB max body
		cors.New(cors.Config{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
			MaxAge:       12 * time.Hour,
		}),
	)

	h := &handlers{svc: svc, rec: rec, logger: logger}

	router.GET("/health", h.health)
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/readyz", h.ready)
	router.POST("/predict", h.predict)
	router.GET("/disease-info", h.diseaseInfo)
	router.GET("/history", h.recent)

	return router
}

type handlers struct {
	svc    Diagnoser
	rec    Recorder
	logger *log.Logger
}

// health mirrors the upstream contract: overall status plus whether the
// statistical model is loaded.
func (h *handlers) health(c *gin.Context) {
	status := "ok"
	if !h.svc.Available() {
		status = "error"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":       status,
		"model_loaded": h.svc.Available(),
		"backend":      h.svc.Backend(),
	})
}

func (h *handlers) ready(c *gin.Context) {
	if h.rec == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "disabled"})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := h.rec.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "db": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "ok"})
}

func (h *handlers) predict(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "cannot read request body"})
		return
	}
	// Malformed payloads map to an empty request rather than a hard
	// failure; validation stays at this boundary, never in the engine.
	req := parsePredictBody(body)

	result, err := h.svc.Infer(req.Symptoms, req.Description)
	if err != nil {
		if errors.Is(err, engine.ErrModelUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "Model not loaded"})
			return
		}
		var infErr *engine.InferenceError
		if errors.As(err, &infErr) {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": infErr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	h.record(c.Request.Context(), req, result)
	c.JSON(http.StatusOK, result)
}

// record persists the outcome best-effort; a storage failure never fails the
// request.
func (h *handlers) record(ctx context.Context, req predictRequest, result engine.Result) {
	if h.rec == nil {
		return
	}
	entry := history.Entry{
		Symptoms:     engine.NormalizeSymptoms(req.Symptoms),
		Description:  req.Description,
		UrgencyLevel: string(result.Urgency.Level),
		Status:       string(result.Status),
	}
	if len(result.Predictions) > 0 {
		entry.TopDisease = result.Predictions[0].Disease
		entry.TopProbability = result.Predictions[0].Probability
	}
	if err := h.rec.Record(ctx, entry); err != nil && h.logger != nil {
		h.logger.Printf("record history: %v", err)
	}
}

func (h *handlers) diseaseInfo(c *gin.Context) {
	name := c.Query("name")
	rec, ok := h.svc.Lookup(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "no information for " + name})
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *handlers) recent(c *gin.Context) {
	if h.rec == nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "history is disabled"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	entries, err := h.rec.Recent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func limitBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
