package services

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/core/assistant"
	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/modules/assistant/models"
)

// Responder is satisfied by *assistant.Engine
type Responder interface {
	Reply(ctx context.Context, utterance string) (*assistant.Reply, error)
}

type ChatService struct {
	responder Responder
}

func NewChatService(responder Responder) *ChatService {
	return &ChatService{responder: responder}
}

// HandleChat validates the raw request body, answers the latest user message
// and returns a *ServiceError on failure.
func (s *ChatService) HandleChat(ctx context.Context, body []byte) (*models.ChatResponse, *assistant.Reply, error) {
	utterance, err := ExtractUtterance(body)
	if err != nil {
		return nil, nil, err
	}

	reply, err := s.responder.Reply(ctx, utterance)
	if err != nil {
		return nil, nil, internalError(err)
	}

	return &models.ChatResponse{
		Response: models.Message{
			Role:    models.RoleAssistant,
			Content: reply.Content,
		},
	}, reply, nil
}

// ExtractUtterance returns the content of the last message with role "user".
// Entries that are not objects are skipped; a user message whose content is
// not a string yields an empty utterance.
func ExtractUtterance(body []byte) (string, error) {
	if !json.Valid(body) {
		return "", invalidInput(MsgInvalidJSON)
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		// valid JSON but not an object
		return "", invalidInput(MsgMessagesNotArray)
	}

	raw := bytes.TrimSpace(payload["messages"])
	if len(raw) == 0 || raw[0] != '[' {
		return "", invalidInput(MsgMessagesNotArray)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return "", invalidInput(MsgMessagesNotArray)
	}

	for i := len(items) - 1; i >= 0; i-- {
		var entry map[string]interface{}
		if err := json.Unmarshal(items[i], &entry); err != nil || entry == nil {
			continue
		}
		if role, _ := entry["role"].(string); role != models.RoleUser {
			continue
		}
		content, _ := entry["content"].(string)
		return content, nil
	}

	return "", invalidInput(MsgNoUserMessage)
}
