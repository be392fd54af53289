package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          int
	AllowedOrigin string
	DataDir       string

	// Requesty.ai gateway (OpenAI-compatible)
	RequestyAPIKey  string
	RequestyBaseURL string
	SiteURL         string
	SiteName        string

	OpenAIEmbeddingModel string
	OpenAIChatModel      string
	OpenAIVisionModel    string

	// Qdrant Cloud
	QdrantURL        string
	QdrantAPIKey     string
	QdrantCollection string
	VectorSize       int

	// rag config
	ChunkSize          int
	ChunkOverlap       int
	TopKResults        int
	EmbeddingBatchSize int
	ClientTimeout      time.Duration

	// reviews (optional; review endpoints are disabled when empty)
	DatabaseURL    string
	DBMaxOpenConns int
	DBMaxIdleConns int
}

// ConfigError reports required settings that were missing at startup.
type ConfigError struct {
	Missing []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing required configuration: %s", strings.Join(e.Missing, ", "))
}

func Load() *Config {
	godotenv.Load()

	port, err := strconv.Atoi(getEnv("PORT", "8000"))
	if err != nil {
		port = 8000
	}

	timeout, err := time.ParseDuration(getEnv("CLIENT_TIMEOUT", "10s"))
	if err != nil {
		timeout = 10 * time.Second
	}

	return &Config{
		Port:          port,
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
		DataDir:       getEnv("DATA_DIR", "./data"),

		RequestyAPIKey:  getEnv("REQUESTY_API_KEY", ""),
		RequestyBaseURL: getEnv("REQUESTY_BASE_URL", "https://router.requesty.ai/v1"),
		SiteURL:         getEnv("SITE_URL", "http://localhost:3000"),
		SiteName:        getEnv("SITE_NAME", "Mualleem"),

		OpenAIEmbeddingModel: getEnv("OPENAI_EMBEDDING_MODEL", "openai/text-embedding-3-small"),
		OpenAIChatModel:      getEnv("OPENAI_CHAT_MODEL", "openai/gpt-4o-mini"),
		OpenAIVisionModel:    getEnv("OPENAI_VISION_MODEL", "openai/gpt-4o"),

		QdrantURL:        getEnv("QDRANT_URL", ""),
		QdrantAPIKey:     getEnv("QDRANT_API_KEY", ""),
		QdrantCollection: getEnv("QDRANT_COLLECTION_NAME", "curriculum_textbooks"),
		VectorSize:       getEnvInt("VECTOR_SIZE", 1536),

		ChunkSize:          getEnvInt("CHUNK_SIZE", 1000),
		ChunkOverlap:       getEnvInt("CHUNK_OVERLAP", 200),
		TopKResults:        getEnvInt("TOP_K_RESULTS", 3),
		EmbeddingBatchSize: getEnvInt("EMBEDDING_BATCH_SIZE", 100),
		ClientTimeout:      timeout,

		DatabaseURL:    getEnv("DATABASE_URL", ""),
		DBMaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 5),
	}
}

// Validate checks the credentials the ingestion/retrieval pipeline cannot
// run without. A failure here must stop the service at startup instead of
// surfacing on first use.
func (c *Config) Validate() error {
	var missing []string
	if c.RequestyAPIKey == "" {
		missing = append(missing, "REQUESTY_API_KEY")
	}
	if c.QdrantURL == "" {
		missing = append(missing, "QDRANT_URL")
	}
	if c.QdrantAPIKey == "" {
		missing = append(missing, "QDRANT_API_KEY")
	}
	if len(missing) > 0 {
		return &ConfigError{Missing: missing}
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}
