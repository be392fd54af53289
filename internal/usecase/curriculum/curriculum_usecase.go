package curriculum

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"

	"mualleem-api/internal/domain/entity"
	"mualleem-api/internal/domain/repository"
)

// Extractor pulls plain text out of a curriculum file.
type Extractor interface {
	Extract(path string) (string, error)
}

// EmbeddingService converts a batch of texts into embedding vectors,
// one vector per text, in input order.
type EmbeddingService interface {
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

type Usecase struct {
	vectorRepo repository.VectorRepository
	embedder   EmbeddingService
	extractor  Extractor
	chunker    *Chunker
	batchSize  int

	// mu serializes point-id assignment and the following upsert, so two
	// concurrent ingestions cannot read the same point count as their id
	// base and overwrite each other's points.
	mu sync.Mutex
}

func NewUsecase(
	vectorRepo repository.VectorRepository,
	embedder EmbeddingService,
	extractor Extractor,
	chunkSize, chunkOverlap int,
	batchSize int,
) *Usecase {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &Usecase{
		vectorRepo: vectorRepo,
		embedder:   embedder,
		extractor:  extractor,
		chunker:    NewChunker(chunkSize, chunkOverlap),
		batchSize:  batchSize,
	}
}

// Ingest runs the full indexing pipeline for one document: extract text,
// chunk it, embed the chunks in fixed-size batches and store the resulting
// points with sequential ids. Every step fails fast; nothing is persisted
// until the final upsert, so no cleanup is needed on failure.
func (uc *Usecase) Ingest(ctx context.Context, path, documentName string) (entity.IndexResult, error) {
	if documentName == "" {
		base := filepath.Base(path)
		documentName = strings.TrimSuffix(base, filepath.Ext(base))
	}
	log.Printf("Starting indexing for %s", documentName)

	if err := uc.vectorRepo.EnsureCollection(ctx); err != nil {
		return entity.IndexResult{}, fmt.Errorf("failed to ensure collection: %w", err)
	}

	text, err := uc.extractor.Extract(path)
	if err != nil {
		return entity.IndexResult{}, err
	}
	if strings.TrimSpace(text) == "" {
		return entity.IndexResult{}, fmt.Errorf("no text extracted from %s", path)
	}
	totalCharacters := len([]rune(text))
	log.Printf("Extracted %d characters from %s", totalCharacters, documentName)

	chunks := uc.chunker.Split(text)
	if len(chunks) == 0 {
		return entity.IndexResult{}, fmt.Errorf("no chunks generated for %s", documentName)
	}
	log.Printf("Split %s into %d chunks", documentName, len(chunks))

	// embed in fixed-size batches, appending in order so embedding i always
	// belongs to chunk i across batch boundaries
	vectors := make([][]float32, 0, len(chunks))
	for batchStart := 0; batchStart < len(chunks); batchStart += uc.batchSize {
		batchEnd := batchStart + uc.batchSize
		if batchEnd > len(chunks) {
			batchEnd = len(chunks)
		}
		batch, err := uc.embedder.EmbedBatch(ctx, chunks[batchStart:batchEnd])
		if err != nil {
			return entity.IndexResult{}, fmt.Errorf("failed to generate embeddings: %w", err)
		}
		vectors = append(vectors, batch...)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	stats, err := uc.vectorRepo.Stats(ctx)
	if err != nil {
		return entity.IndexResult{}, fmt.Errorf("failed to read point count: %w", err)
	}

	points := make([]entity.Point, len(chunks))
	for i, chunk := range chunks {
		points[i] = entity.Point{
			ID:     stats.PointCount + uint64(i),
			Vector: vectors[i],
			Payload: entity.ChunkPayload{
				Text:       chunk,
				Document:   documentName,
				ChunkIndex: i,
				ChunkSize:  len([]rune(chunk)),
			},
		}
	}

	if err := uc.vectorRepo.Upsert(ctx, points); err != nil {
		return entity.IndexResult{}, fmt.Errorf("failed to store points: %w", err)
	}
	log.Printf("Indexed %d chunks for %s", len(chunks), documentName)

	return entity.IndexResult{
		DocumentName:    documentName,
		TotalChunks:     len(chunks),
		TotalCharacters: totalCharacters,
	}, nil
}

// Stats returns a snapshot of the curriculum collection.
func (uc *Usecase) Stats(ctx context.Context) (entity.CollectionStats, error) {
	return uc.vectorRepo.Stats(ctx)
}

// Clear destroys the curriculum collection and recreates it empty.
func (uc *Usecase) Clear(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.vectorRepo.Clear(ctx)
}
