package openai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// EmbeddingError wraps a provider fault during embedding generation.
type EmbeddingError struct {
	Err error
}

func (e *EmbeddingError) Error() string {
	return fmt.Sprintf("embedding request failed: %v", e.Err)
}

func (e *EmbeddingError) Unwrap() error { return e.Err }

type EmbeddingClient struct {
	client *openai.Client
	model  string
}

// NewEmbeddingClient creates an embedding client for the configured gateway.
func NewEmbeddingClient(cfg ClientConfig, model string) *EmbeddingClient {
	return &EmbeddingClient{
		client: newClient(cfg),
		model:  model,
	}
}

// EmbedBatch returns one vector per input text, in input order. It performs
// exactly one request per call; batching large chunk lists is the caller's
// job. No partial results are returned on failure.
func (c *EmbeddingClient) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: texts,
		Model: openai.EmbeddingModel(c.model),
	})
	if err != nil {
		return nil, &EmbeddingError{Err: err}
	}

	if len(resp.Data) != len(texts) {
		return nil, &EmbeddingError{
			Err: fmt.Errorf("provider returned %d embeddings for %d inputs", len(resp.Data), len(texts)),
		}
	}

	vectors := make([][]float32, len(resp.Data))
	for i, data := range resp.Data {
		vectors[i] = data.Embedding
	}

	return vectors, nil
}
