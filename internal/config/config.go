package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EncoderTFIDF  = "tfidf"
	EncoderGemini = "gemini"

	IndexMemory = "memory"
	IndexQdrant = "qdrant"

	CorpusFromFile     = "file"
	CorpusFromDatabase = "database"
)

type Config struct {
	Server     ServerConfig
	Corpus     CorpusConfig
	Database   DatabaseConfig
	Encoder    EncoderConfig
	Index      IndexConfig
	Qdrant     QdrantConfig
	Gemini     GeminiConfig
	Worker     WorkerConfig
	Log        LogConfig
	Vocabulary string
}

type ServerConfig struct {
	Port        string
	Env         string
	AllowOrigin string
}

type CorpusConfig struct {
	Source string
	Path   string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type EncoderConfig struct {
	Type string
}

type IndexConfig struct {
	Backend string
}

type QdrantConfig struct {
	URL        string
	APIKey     string
	Collection string
}

type GeminiConfig struct {
	APIKey     string
	EmbedModel string
}

type WorkerConfig struct {
	EmbedConcurrency int
}

type LogConfig struct {
	Level string
	File  string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8000"),
			Env:         getEnv("ENV", "development"),
			AllowOrigin: getEnv("CORS_ALLOW_ORIGINS", "*"),
		},
		Corpus: CorpusConfig{
			Source: strings.ToLower(getEnv("CORPUS_SOURCE", CorpusFromFile)),
			Path:   getEnv("CORPUS_PATH", "employees.json"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "hr_chatbot"),
		},
		Encoder: EncoderConfig{
			Type: strings.ToLower(getEnv("ENCODER", "")),
		},
		Index: IndexConfig{
			Backend: strings.ToLower(getEnv("INDEX_BACKEND", IndexMemory)),
		},
		Qdrant: QdrantConfig{
			URL:        getEnv("QDRANT_URL", "http://localhost:6334"),
			APIKey:     getEnv("QDRANT_API_KEY", ""),
			Collection: getEnv("QDRANT_COLLECTION", "employee_profiles"),
		},
		Gemini: GeminiConfig{
			APIKey:     getEnv("GEMINI_API_KEY", ""),
			EmbedModel: getEnv("GEMINI_EMBED_MODEL", "text-embedding-004"),
		},
		Worker: WorkerConfig{
			EmbedConcurrency: getEnvAsInt("EMBED_CONCURRENCY", 4),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
		Vocabulary: getEnv("VOCABULARY_PATH", ""),
	}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults resolves choices that depend on other settings.
func applyDefaults(cfg *Config) {
	if cfg.Encoder.Type == "" {
		cfg.Encoder.Type = EncoderTFIDF
		if cfg.Gemini.APIKey != "" {
			cfg.Encoder.Type = EncoderGemini
		}
	}
	if cfg.Worker.EmbedConcurrency <= 0 {
		cfg.Worker.EmbedConcurrency = 1
	}
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
