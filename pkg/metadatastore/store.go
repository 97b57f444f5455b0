package metadatastore

import (
	"errors"
	"time"

	"github.com/agriadvisor/agriadvisor-go/pkg/models"
)

var (
	// ErrNotFound is returned when a record does not exist
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a unique key is already taken
	ErrConflict = errors.New("already exists")
)

// MetadataStore is the persistence interface for users, their predictions and
// their chat history. Implementations must be safe for concurrent use and must
// return copies, never shared references to stored records.
type MetadataStore interface {
	// User operations
	SaveUser(user *models.User) error
	GetUser(id string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)

	// Prediction operations
	SavePrediction(prediction *models.Prediction) error
	GetPrediction(id string) (*models.Prediction, error)
	ListPredictionsByUser(userID string) ([]*models.Prediction, error)
	DeletePredictionsBefore(cutoff time.Time) (int64, error)

	// Chat operations
	SaveChatMessage(message *models.ChatMessage) error
	ListChatMessagesByUser(userID string) ([]*models.ChatMessage, error)

	Ping() error
	Close() error
}
