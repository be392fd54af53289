package tutor

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"strings"

	"mualleem-api/internal/domain/entity"
	"mualleem-api/internal/domain/repository"
)

// EmbeddingService converts a batch of texts into embedding vectors.
type EmbeddingService interface {
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// ChatService generates a tutoring answer for a question, optionally
// grounded on curriculum context and an attached image.
type ChatService interface {
	GenerateAnswer(ctx context.Context, question, contextText, imageDataURL string) (answer, model string, err error)
}

// Answer is what the chat endpoint returns to the student.
type Answer struct {
	Text        string
	ModelUsed   string
	ContextUsed bool
}

type Usecase struct {
	vectorRepo repository.VectorRepository
	embedder   EmbeddingService
	chat       ChatService
	topK       int
}

func NewUsecase(
	vectorRepo repository.VectorRepository,
	embedder EmbeddingService,
	chat ChatService,
	topK int,
) *Usecase {
	if topK <= 0 {
		topK = 3
	}
	return &Usecase{
		vectorRepo: vectorRepo,
		embedder:   embedder,
		chat:       chat,
		topK:       topK,
	}
}

// Retrieve embeds the question and returns the k closest curriculum chunks
// in the store's ranking order. Failures degrade to an empty context with a
// typed cause instead of an error: a tutoring answer without curriculum
// context beats no answer at all.
func (uc *Usecase) Retrieve(ctx context.Context, question string, k int) entity.RetrievalResult {
	result := entity.RetrievalResult{
		Query:         question,
		ContextChunks: []entity.ContextChunk{},
	}
	if k <= 0 {
		k = uc.topK
	}

	vectors, err := uc.embedder.EmbedBatch(ctx, []string{question})
	if err != nil {
		result.Failure = &entity.RetrievalFailure{Stage: entity.StageEmbedding, Cause: err}
		return result
	}
	if len(vectors) == 0 {
		result.Failure = &entity.RetrievalFailure{
			Stage: entity.StageEmbedding,
			Cause: fmt.Errorf("no embedding returned for query"),
		}
		return result
	}

	hits, err := uc.vectorRepo.Search(ctx, vectors[0], k)
	if err != nil {
		result.Failure = &entity.RetrievalFailure{Stage: entity.StageSearch, Cause: err}
		return result
	}

	for _, hit := range hits {
		result.ContextChunks = append(result.ContextChunks, entity.ContextChunk{
			Text:       hit.Payload.Text,
			Score:      hit.Score,
			Document:   hit.Payload.Document,
			ChunkIndex: hit.Payload.ChunkIndex,
			ChunkSize:  hit.Payload.ChunkSize,
		})
	}
	result.TotalResults = len(result.ContextChunks)
	return result
}

// Ask retrieves curriculum context for the question and generates a
// step-by-step explanation. imageData is an optional attached image.
func (uc *Usecase) Ask(ctx context.Context, question string, imageData []byte, imageMime string) (Answer, error) {
	retrieval := uc.Retrieve(ctx, question, uc.topK)
	if retrieval.Failure != nil {
		log.Printf("Retrieval degraded, answering without context: %v", retrieval.Failure)
	}

	var contextBuilder strings.Builder
	for i, chunk := range retrieval.ContextChunks {
		if i > 0 {
			contextBuilder.WriteString("\n\n")
		}
		contextBuilder.WriteString(chunk.Text)
	}

	imageDataURL := ""
	if len(imageData) > 0 {
		mime := imageMime
		if mime == "" {
			mime = "image/png"
		}
		imageDataURL = fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(imageData))
	}

	answer, model, err := uc.chat.GenerateAnswer(ctx, question, contextBuilder.String(), imageDataURL)
	if err != nil {
		return Answer{}, err
	}

	return Answer{
		Text:        answer,
		ModelUsed:   model,
		ContextUsed: len(retrieval.ContextChunks) > 0,
	}, nil
}
