package chat

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/agriadvisor/agriadvisor-go/pkg/metadatastore"
	"github.com/agriadvisor/agriadvisor-go/pkg/models"
)

// AssistantReply is recorded as the response to every message until a
// language model backend is connected.
const AssistantReply = "This is a mock response from the agricultural AI assistant. In the future, this will be replaced with real LLM responses."

const maxMessageLength = 4000

// ErrInvalidMessage is returned for empty or oversized messages
var ErrInvalidMessage = errors.New("invalid chat message")

// UserGetter resolves the owner of a conversation
type UserGetter interface {
	Get(id string) (*models.User, error)
}

// Service records chat exchanges with the farming assistant
type Service struct {
	store metadatastore.MetadataStore
	users UserGetter
}

// NewService creates a new chat service
func NewService(store metadatastore.MetadataStore, users UserGetter) *Service {
	return &Service{
		store: store,
		users: users,
	}
}

// Send stores the user's message together with the assistant reply
func (s *Service) Send(userID, message string) (*models.ChatMessage, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("%w: message is required", ErrInvalidMessage)
	}
	if len(message) > maxMessageLength {
		return nil, fmt.Errorf("%w: message exceeds %d characters", ErrInvalidMessage, maxMessageLength)
	}

	if _, err := s.users.Get(userID); err != nil {
		return nil, err
	}

	msg := &models.ChatMessage{
		ID:        uuid.New().String(),
		UserID:    userID,
		Message:   message,
		Response:  AssistantReply,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.SaveChatMessage(msg); err != nil {
		return nil, fmt.Errorf("failed to save chat message: %w", err)
	}
	return msg, nil
}

// History returns the user's exchanges, newest first
func (s *Service) History(userID string) ([]*models.ChatMessage, error) {
	if _, err := s.users.Get(userID); err != nil {
		return nil, err
	}
	return s.store.ListChatMessagesByUser(userID)
}
