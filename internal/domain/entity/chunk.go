package entity

// ChunkPayload is the metadata stored alongside every vector point.
type ChunkPayload struct {
	Text       string `json:"text"`
	Document   string `json:"document"`
	ChunkIndex int    `json:"chunk_index"`
	ChunkSize  int    `json:"chunk_size"`
}

// Point is the persisted unit in the vector store: id, vector and payload.
// IDs are assigned sequentially per collection and never reused.
type Point struct {
	ID      uint64
	Vector  []float32
	Payload ChunkPayload
}

// ScoredChunk is a single search hit with its similarity score.
type ScoredChunk struct {
	Payload ChunkPayload
	Score   float64
}

// IndexResult summarizes one completed ingestion run.
type IndexResult struct {
	DocumentName    string `json:"document_name"`
	TotalChunks     int    `json:"total_chunks"`
	TotalCharacters int    `json:"total_characters"`
}

// CollectionStats is a read-only snapshot of the vector collection.
type CollectionStats struct {
	Name       string
	PointCount uint64
	VectorSize int
	Distance   string
}
