package models

// Message roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Message is one chat turn as sent by the UI
type Message struct {
	Role    string `json:"role" example:"user"`
	Content string `json:"content" example:"What services do you offer?"`
}

// ChatRequest documents the request body; decoding is done field by field
// because messages may arrive with any JSON type
type ChatRequest struct {
	Messages []Message `json:"messages"`
}

type ChatResponse struct {
	Response Message `json:"response"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"Messages must be an array"`
}
