package dto

type UploadCurriculumResponse struct {
	Message         string `json:"message"`
	Filename        string `json:"filename"`
	TotalChunks     int    `json:"total_chunks"`
	TotalCharacters int    `json:"total_characters"`
	Status          string `json:"status"`
}

type CollectionStatsResponse struct {
	CollectionName string `json:"collection_name"`
	TotalChunks    uint64 `json:"total_chunks"`
	VectorSize     int    `json:"vector_size"`
	Status         string `json:"status"`
	Storage        string `json:"storage,omitempty"`
	Error          string `json:"error,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
	Status  string `json:"status,omitempty"`
}

// ErrorResponse mirrors the detail shape the frontend expects.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
