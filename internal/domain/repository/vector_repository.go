package repository

import (
	"context"
	"mualleem-api/internal/domain/entity"
)

// VectorRepository persists embedding vectors in a named collection and
// supports nearest-neighbor search over them.
type VectorRepository interface {
	// EnsureCollection creates the collection if it does not exist yet.
	// It never alters the configuration of an existing collection.
	EnsureCollection(ctx context.Context) error
	// Upsert writes a batch of points, overwriting points that share an id.
	// A failure aborts the whole call.
	Upsert(ctx context.Context, points []entity.Point) error
	// Search returns up to limit nearest points in the store's ranking order.
	Search(ctx context.Context, vector []float32, limit int) ([]entity.ScoredChunk, error)
	// Stats returns a snapshot of the collection. The returned stats carry
	// the collection name even when an error is reported.
	Stats(ctx context.Context) (entity.CollectionStats, error)
	// Clear destroys the collection and recreates it empty.
	Clear(ctx context.Context) error
}
