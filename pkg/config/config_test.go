package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "CHUNK_SIZE", "CHUNK_OVERLAP", "TOP_K_RESULTS",
		"EMBEDDING_BATCH_SIZE", "VECTOR_SIZE", "CLIENT_TIMEOUT",
		"QDRANT_COLLECTION_NAME",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != 8000 {
		t.Errorf("port = %d, want 8000", cfg.Port)
	}
	if cfg.ChunkSize != 1000 || cfg.ChunkOverlap != 200 {
		t.Errorf("chunking = (%d, %d), want (1000, 200)", cfg.ChunkSize, cfg.ChunkOverlap)
	}
	if cfg.TopKResults != 3 {
		t.Errorf("top k = %d, want 3", cfg.TopKResults)
	}
	if cfg.EmbeddingBatchSize != 100 {
		t.Errorf("batch size = %d, want 100", cfg.EmbeddingBatchSize)
	}
	if cfg.VectorSize != 1536 {
		t.Errorf("vector size = %d, want 1536", cfg.VectorSize)
	}
	if cfg.ClientTimeout != 10*time.Second {
		t.Errorf("client timeout = %v, want 10s", cfg.ClientTimeout)
	}
	if cfg.QdrantCollection != "curriculum_textbooks" {
		t.Errorf("collection = %q, want %q", cfg.QdrantCollection, "curriculum_textbooks")
	}
	if cfg.DBMaxOpenConns != 25 || cfg.DBMaxIdleConns != 5 {
		t.Errorf("db pool = (%d, %d), want (25, 5)", cfg.DBMaxOpenConns, cfg.DBMaxIdleConns)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CHUNK_SIZE", "500")
	t.Setenv("CHUNK_OVERLAP", "50")
	t.Setenv("CLIENT_TIMEOUT", "30s")
	t.Setenv("DB_MAX_OPEN_CONNS", "10")
	t.Setenv("DB_MAX_IDLE_CONNS", "2")

	cfg := Load()

	if cfg.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Port)
	}
	if cfg.ChunkSize != 500 || cfg.ChunkOverlap != 50 {
		t.Errorf("chunking = (%d, %d), want (500, 50)", cfg.ChunkSize, cfg.ChunkOverlap)
	}
	if cfg.ClientTimeout != 30*time.Second {
		t.Errorf("client timeout = %v, want 30s", cfg.ClientTimeout)
	}
	if cfg.DBMaxOpenConns != 10 || cfg.DBMaxIdleConns != 2 {
		t.Errorf("db pool = (%d, %d), want (10, 2)", cfg.DBMaxOpenConns, cfg.DBMaxIdleConns)
	}
}

func TestValidateMissingCredentials(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		missing []string
	}{
		{
			"all missing",
			Config{},
			[]string{"REQUESTY_API_KEY", "QDRANT_URL", "QDRANT_API_KEY"},
		},
		{
			"qdrant url missing",
			Config{RequestyAPIKey: "rk", QdrantAPIKey: "qk"},
			[]string{"QDRANT_URL"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if err == nil {
				t.Fatalf("validate passed with missing credentials")
			}

			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("got %T, want *ConfigError", err)
			}
			if len(cfgErr.Missing) != len(tt.missing) {
				t.Fatalf("missing = %v, want %v", cfgErr.Missing, tt.missing)
			}
			for i, name := range tt.missing {
				if cfgErr.Missing[i] != name {
					t.Errorf("missing[%d] = %q, want %q", i, cfgErr.Missing[i], name)
				}
			}
		})
	}
}

func TestValidateComplete(t *testing.T) {
	cfg := Config{
		RequestyAPIKey: "rk",
		QdrantURL:      "https://cluster.qdrant.io:6333",
		QdrantAPIKey:   "qk",
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("validate failed: %v", err)
	}
}
