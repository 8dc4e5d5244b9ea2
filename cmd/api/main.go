package main

import (
	"context"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"alfredoptarigan/hr-chatbot/internal/config"
	"alfredoptarigan/hr-chatbot/internal/handlers"
	"alfredoptarigan/hr-chatbot/internal/models"
	"alfredoptarigan/hr-chatbot/internal/repositories"
	"alfredoptarigan/hr-chatbot/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log, err := config.NewLogger(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = log.Sync() }()
	log.Info("config loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("corpus_source", cfg.Corpus.Source),
		zap.String("encoder", cfg.Encoder.Type),
		zap.String("index", cfg.Index.Backend))

	vocab, err := config.LoadVocabulary(cfg.Vocabulary)
	if err != nil {
		log.Warn("vocabulary not loaded, using defaults", zap.Error(err))
		vocab = config.DefaultVocabulary()
	}

	ctx := context.Background()

	corpus := loadCorpus(cfg, log)

	encoder, err := newEncoder(ctx, cfg)
	if err != nil {
		log.Fatal("failed to initialize encoder", zap.Error(err))
	}

	index, err := newIndex(cfg, log)
	if err != nil {
		log.Fatal("failed to initialize vector index", zap.Error(err))
	}

	opts := services.ChatbotOptions{
		Vocabulary:       vocab,
		EmbedConcurrency: cfg.Worker.EmbedConcurrency,
		Logger:           log,
	}
	chatbot, err := services.NewChatbotService(ctx, corpus, encoder, index, opts)
	if err != nil {
		// serve with an empty corpus rather than not at all
		log.Error("failed to build chatbot, continuing with empty corpus", zap.Error(err))
		chatbot, err = services.NewChatbotService(ctx, nil, encoder, services.NewMemoryIndex(), opts)
		if err != nil {
			log.Fatal("failed to build empty chatbot", zap.Error(err))
		}
	}
	log.Info("chatbot service initialized", zap.Int("employees", chatbot.Stats().CorpusSize))

	app := handlers.NewApp(chatbot, handlers.AppOptions{
		AllowOrigins:  cfg.Server.AllowOrigin,
		AccessLogging: true,
		Logger:        log,
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info("shutting down server")
		if err := app.Shutdown(); err != nil {
			log.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info("server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}

func loadCorpus(cfg *config.Config, log *zap.Logger) []models.Employee {
	switch cfg.Corpus.Source {
	case config.CorpusFromDatabase:
		db, err := config.InitDatabase(cfg, log)
		if err != nil {
			return services.CorpusOrEmpty(nil, err, log)
		}
		repo := repositories.NewEmployeeRepository(db)
		employees, err := services.LoadCorpusFromRepository(repo)
		return services.CorpusOrEmpty(employees, err, log)
	default:
		employees, err := services.LoadCorpusFile(cfg.Corpus.Path)
		return services.CorpusOrEmpty(employees, err, log)
	}
}

func newEncoder(ctx context.Context, cfg *config.Config) (services.Encoder, error) {
	switch cfg.Encoder.Type {
	case config.EncoderGemini:
		return services.NewGeminiEncoder(ctx, cfg.Gemini.APIKey, cfg.Gemini.EmbedModel)
	case config.EncoderTFIDF:
		return services.NewTFIDFEncoder(), nil
	default:
		return nil, fmt.Errorf("unknown encoder %q", cfg.Encoder.Type)
	}
}

func newIndex(cfg *config.Config, log *zap.Logger) (services.VectorIndex, error) {
	switch cfg.Index.Backend {
	case config.IndexQdrant:
		return services.NewQdrantIndex(cfg.Qdrant.URL, cfg.Qdrant.APIKey, cfg.Qdrant.Collection, log)
	case config.IndexMemory:
		return services.NewMemoryIndex(), nil
	default:
		return nil, fmt.Errorf("unknown index backend %q", cfg.Index.Backend)
	}
}
