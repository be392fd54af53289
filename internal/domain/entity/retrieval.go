package entity

import "fmt"

// ContextChunk is a retrieved curriculum passage handed downstream as
// grounding for answer generation.
type ContextChunk struct {
	Text       string  `json:"text"`
	Score      float64 `json:"score"`
	Document   string  `json:"document"`
	ChunkIndex int     `json:"chunk_index"`
	ChunkSize  int     `json:"chunk_size"`
}

type RetrievalStage string

const (
	StageEmbedding RetrievalStage = "embedding"
	StageSearch    RetrievalStage = "search"
)

// RetrievalFailure records why retrieval degraded to an empty context.
// The stage lets callers tell a provider fault from a store fault.
type RetrievalFailure struct {
	Stage RetrievalStage
	Cause error
}

func (f *RetrievalFailure) Error() string {
	return fmt.Sprintf("retrieval failed at %s: %v", f.Stage, f.Cause)
}

func (f *RetrievalFailure) Unwrap() error { return f.Cause }

// RetrievalResult carries the ranked context for a query. A failed
// retrieval yields an empty context with Failure set instead of an error,
// so answer generation can still proceed without curriculum grounding.
type RetrievalResult struct {
	Query         string
	ContextChunks []ContextChunk
	TotalResults  int
	Failure       *RetrievalFailure
}
