package qdrant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"mualleem-api/internal/domain/entity"
)

// StoreError wraps a Qdrant fault and names the failing operation.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("qdrant %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

type Config struct {
	URL        string
	APIKey     string
	Collection string
	VectorSize int
	Timeout    time.Duration
}

// Store is a minimal REST client to Qdrant. Collections are created with
// cosine distance; an existing collection's configuration is never altered,
// even if VectorSize has changed since creation.
type Store struct {
	url        string
	apiKey     string
	collection string
	vectorSize int
	client     *http.Client
}

func NewStore(cfg Config) *Store {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Store{
		url:        cfg.URL,
		apiKey:     cfg.APIKey,
		collection: cfg.Collection,
		vectorSize: cfg.VectorSize,
		client:     &http.Client{Timeout: timeout},
	}
}

// EnsureCollection creates the collection if it is not listed yet.
func (s *Store) EnsureCollection(ctx context.Context) error {
	var listResp struct {
		Result struct {
			Collections []struct {
				Name string `json:"name"`
			} `json:"collections"`
		} `json:"result"`
	}
	if err := s.doJSON(ctx, http.MethodGet, "/collections", nil, &listResp); err != nil {
		return &StoreError{Op: "list collections", Err: err}
	}

	for _, collection := range listResp.Result.Collections {
		if collection.Name == s.collection {
			return nil
		}
	}

	body := map[string]any{
		"vectors": map[string]any{
			"size":     s.vectorSize,
			"distance": "Cosine",
		},
	}
	if err := s.doJSON(ctx, http.MethodPut, "/collections/"+s.collection, body, nil); err != nil {
		return &StoreError{Op: "create collection", Err: err}
	}
	return nil
}

// Upsert writes the whole point batch in one call, waiting for the write to
// be applied. Points sharing an id with an existing point overwrite it.
func (s *Store) Upsert(ctx context.Context, points []entity.Point) error {
	qdrantPoints := make([]map[string]any, len(points))
	for i, p := range points {
		qdrantPoints[i] = map[string]any{
			"id":      p.ID,
			"vector":  p.Vector,
			"payload": p.Payload,
		}
	}
	body := map[string]any{"points": qdrantPoints}
	path := "/collections/" + s.collection + "/points?wait=true"
	if err := s.doJSON(ctx, http.MethodPut, path, body, nil); err != nil {
		return &StoreError{Op: "upsert", Err: err}
	}
	return nil
}

// Search returns up to limit nearest points with payloads, in the store's
// ranking order. An empty collection yields an empty result, not an error.
func (s *Store) Search(ctx context.Context, vector []float32, limit int) ([]entity.ScoredChunk, error) {
	body := map[string]any{
		"vector":       vector,
		"limit":        limit,
		"with_payload": true,
	}
	var resp struct {
		Result []struct {
			Score   float64             `json:"score"`
			Payload entity.ChunkPayload `json:"payload"`
		} `json:"result"`
	}
	path := "/collections/" + s.collection + "/points/search"
	if err := s.doJSON(ctx, http.MethodPost, path, body, &resp); err != nil {
		return nil, &StoreError{Op: "search", Err: err}
	}

	hits := make([]entity.ScoredChunk, 0, len(resp.Result))
	for _, r := range resp.Result {
		hits = append(hits, entity.ScoredChunk{Payload: r.Payload, Score: r.Score})
	}
	return hits, nil
}

// Stats reads a snapshot of the collection. The collection name is set on
// the result even when the store is unreachable.
func (s *Store) Stats(ctx context.Context) (entity.CollectionStats, error) {
	stats := entity.CollectionStats{Name: s.collection}

	var resp struct {
		Result struct {
			PointsCount uint64 `json:"points_count"`
			Config      struct {
				Params struct {
					Vectors struct {
						Size     int    `json:"size"`
						Distance string `json:"distance"`
					} `json:"vectors"`
				} `json:"params"`
			} `json:"config"`
		} `json:"result"`
	}
	if err := s.doJSON(ctx, http.MethodGet, "/collections/"+s.collection, nil, &resp); err != nil {
		return stats, &StoreError{Op: "get collection", Err: err}
	}

	stats.PointCount = resp.Result.PointsCount
	stats.VectorSize = resp.Result.Config.Params.Vectors.Size
	stats.Distance = resp.Result.Config.Params.Vectors.Distance
	return stats, nil
}

// Clear drops the collection and immediately recreates it empty. The two
// steps are not transactional; if the recreate fails the collection is
// absent until EnsureCollection is run again.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.doJSON(ctx, http.MethodDelete, "/collections/"+s.collection, nil, nil); err != nil {
		return &StoreError{Op: "delete collection", Err: err}
	}
	return s.EnsureCollection(ctx)
}

func (s *Store) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.url+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.apiKey != "" {
		req.Header.Set("api-key", s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s failed: %s", method, path, resp.Status)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
