package dto

type ChatResponse struct {
	Answer      string `json:"answer"`
	Question    string `json:"question"`
	HasImage    bool   `json:"has_image"`
	ContextUsed bool   `json:"context_used"`
	ModelUsed   string `json:"model_used"`
	Provider    string `json:"provider"`
}
