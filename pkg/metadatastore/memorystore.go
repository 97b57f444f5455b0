package metadatastore

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/agriadvisor/agriadvisor-go/pkg/models"
)

// MemoryStore keeps records in process memory. It is used by tests and by
// deployments that do not need persistence across restarts.
type MemoryStore struct {
	mu          sync.RWMutex
	users       map[string]models.User
	usernames   map[string]string
	predictions []models.Prediction
	chat        []models.ChatMessage
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:     make(map[string]models.User),
		usernames: make(map[string]string),
	}
}

func (m *MemoryStore) Ping() error  { return nil }
func (m *MemoryStore) Close() error { return nil }

// SaveUser inserts or updates a user
func (m *MemoryStore) SaveUser(user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if owner, ok := m.usernames[user.Username]; ok && owner != user.ID {
		return fmt.Errorf("%w: username %s", ErrConflict, user.Username)
	}
	if prev, ok := m.users[user.ID]; ok && prev.Username != user.Username {
		delete(m.usernames, prev.Username)
	}

	m.users[user.ID] = *user
	m.usernames[user.Username] = user.ID
	return nil
}

// GetUser retrieves a user by ID
func (m *MemoryStore) GetUser(id string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, id)
	}
	return &user, nil
}

// GetUserByUsername retrieves a user by username
func (m *MemoryStore) GetUserByUsername(username string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.usernames[username]
	if !ok {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, username)
	}
	user := m.users[id]
	return &user, nil
}

// SavePrediction inserts or replaces a prediction
func (m *MemoryStore) SavePrediction(prediction *models.Prediction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := *prediction
	stored.Result = append([]byte(nil), prediction.Result...)
	stored.Input = append([]byte(nil), prediction.Input...)

	for i := range m.predictions {
		if m.predictions[i].ID == prediction.ID {
			m.predictions[i] = stored
			return nil
		}
	}
	m.predictions = append(m.predictions, stored)
	return nil
}

// GetPrediction retrieves a prediction by ID
func (m *MemoryStore) GetPrediction(id string) (*models.Prediction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, p := range m.predictions {
		if p.ID == id {
			return copyPrediction(p), nil
		}
	}
	return nil, fmt.Errorf("%w: prediction %s", ErrNotFound, id)
}

// ListPredictionsByUser lists a user's predictions, newest first. Records
// with equal timestamps come back most recently inserted first.
func (m *MemoryStore) ListPredictionsByUser(userID string) ([]*models.Prediction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*models.Prediction, 0)
	for i := len(m.predictions) - 1; i >= 0; i-- {
		if m.predictions[i].UserID == userID {
			out = append(out, copyPrediction(m.predictions[i]))
		}
	}
	sortNewestFirst(out, func(p *models.Prediction) time.Time { return p.CreatedAt })
	return out, nil
}

// DeletePredictionsBefore removes predictions created before cutoff
func (m *MemoryStore) DeletePredictionsBefore(cutoff time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.predictions[:0]
	var deleted int64
	for _, p := range m.predictions {
		if p.CreatedAt.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, p)
	}
	m.predictions = kept
	return deleted, nil
}

// SaveChatMessage stores a chat exchange
func (m *MemoryStore) SaveChatMessage(message *models.ChatMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.chat {
		if m.chat[i].ID == message.ID {
			m.chat[i] = *message
			return nil
		}
	}
	m.chat = append(m.chat, *message)
	return nil
}

// ListChatMessagesByUser lists a user's chat history, newest first
func (m *MemoryStore) ListChatMessagesByUser(userID string) ([]*models.ChatMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*models.ChatMessage, 0)
	for i := len(m.chat) - 1; i >= 0; i-- {
		if m.chat[i].UserID == userID {
			msg := m.chat[i]
			out = append(out, &msg)
		}
	}
	sortNewestFirst(out, func(c *models.ChatMessage) time.Time { return c.CreatedAt })
	return out, nil
}

func copyPrediction(p models.Prediction) *models.Prediction {
	p.Result = append([]byte(nil), p.Result...)
	p.Input = append([]byte(nil), p.Input...)
	return &p
}

// sortNewestFirst orders records by timestamp descending. The input is
// already in reverse insertion order so a stable sort keeps that as the
// tie-break.
func sortNewestFirst[T any](records []T, at func(T) time.Time) {
	sort.SliceStable(records, func(i, j int) bool {
		return at(records[i]).After(at(records[j]))
	})
}
