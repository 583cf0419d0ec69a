package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"mediscan/diagnosis/engine"
	"mediscan/diagnosis/internal/history"
	"mediscan/diagnosis/internal/httpapi"
)

type config struct {
	Port          string
	Backend       string
	ModelPath     string
	ModelMetaPath string
	LabelsPath    string
	OrtDLL        string
	EngineConfig  string
	KnowledgePath string
	EnableDB      bool
	DatabaseURL   string
}

func main() {
	gin.SetMode(getEnv("GIN_MODE", "release"))
	logger := log.New(os.Stderr, "mediscan: ", log.LstdFlags)

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatalf("config error: %v", err)
	}
	engCfg, err := engine.LoadConfig(cfg.EngineConfig)
	if err != nil {
		logger.Fatalf("engine config error: %v", err)
	}

	scorer, cleanup := buildScorer(cfg, engCfg, logger)
	defer cleanup()

	svc, err := engine.NewService(scorer, engCfg, logger)
	if err != nil {
		logger.Fatalf("engine error: %v", err)
	}
	logger.Printf("serving %s backend (available=%v)", svc.Backend(), svc.Available())

	ctx := context.Background()
	var rec httpapi.Recorder
	if cfg.EnableDB {
		store, err := history.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatalf("database connection failed: %v", err)
		}
		defer store.Close()
		rec = store
	}

	router := httpapi.NewRouter(svc, rec, logger)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("server error: %v", err)
		}
	}()

	logger.Printf("server listening on :%s", cfg.Port)
	waitForShutdown(server, logger)
}

func loadConfig() (config, error) {
	_ = godotenv.Load()

	cfg := config{
		Port:          getEnv("PORT", "8000"),
		Backend:       strings.ToLower(getEnv("BACKEND", "heuristic")),
		ModelPath:     os.Getenv("MODEL_PATH"),
		ModelMetaPath: os.Getenv("MODEL_META_PATH"),
		LabelsPath:    os.Getenv("LABELS_PATH"),
		OrtDLL:        os.Getenv("ORT_DLL"),
		EngineConfig:  os.Getenv("ENGINE_CONFIG"),
		KnowledgePath: os.Getenv("KNOWLEDGE_PATH"),
		EnableDB:      strings.EqualFold(getEnv("ENABLE_DB", "false"), "true"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
	}

	switch cfg.Backend {
	case "heuristic", "statistical":
	default:
		return cfg, fmt.Errorf("unknown BACKEND %q (want heuristic or statistical)", cfg.Backend)
	}
	if cfg.Backend == "statistical" && cfg.ModelPath == "" {
		return cfg, fmt.Errorf("MODEL_PATH is required when BACKEND=statistical")
	}
	if cfg.EnableDB && cfg.DatabaseURL == "" {
		return cfg, fmt.Errorf("DATABASE_URL is required when ENABLE_DB=true")
	}
	return cfg, nil
}

// buildScorer constructs the backend selected at process start. A classifier
// that fails to load leaves the statistical backend in the unavailable state
// instead of crashing the process.
func buildScorer(cfg config, engCfg engine.Config, logger *log.Logger) (engine.Scorer, func()) {
	if cfg.Backend == "statistical" {
		var decoder engine.LabelDecoder
		if cfg.LabelsPath != "" {
			meta, err := engine.LoadModelMeta(cfg.LabelsPath)
			if err != nil {
				logger.Printf("label decoder load failed: %v", err)
			} else {
				decoder = meta
			}
		}
		clf, err := engine.NewOnnxClassifier(engine.OnnxConfig{
			OrtDLL:    cfg.OrtDLL,
			ModelPath: cfg.ModelPath,
			MetaPath:  cfg.ModelMetaPath,
		})
		if err != nil {
			logger.Printf("classifier load failed, serving model_unavailable: %v", err)
			return engine.NewStatisticalScorer(nil, decoder), func() {}
		}
		return engine.NewStatisticalScorer(clf, decoder), func() {
			if err := clf.Close(); err != nil {
				logger.Printf("close classifier: %v", err)
			}
		}
	}

	path := cfg.KnowledgePath
	if path == "" {
		path = engCfg.KnowledgePath
	}
	if path != "" {
		if err := engine.EnsureKnowledgeFile(path, engine.DefaultKnowledge()); err != nil {
			logger.Printf("write default knowledge file: %v", err)
		}
	}
	knowledge, fromFile, err := engine.LoadKnowledge(path)
	if err != nil {
		logger.Printf("knowledge file load failed, using defaults: %v", err)
	} else if fromFile {
		logger.Printf("loaded %d knowledge entries from %s", len(knowledge), path)
	}
	return engine.NewHeuristicScorer(knowledge, engCfg.DescriptionBoost), func() {}
}

func waitForShutdown(server *http.Server, logger *log.Logger) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
