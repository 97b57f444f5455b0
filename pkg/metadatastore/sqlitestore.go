package metadatastore

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/agriadvisor/agriadvisor-go/pkg/models"
)

// SQLiteStore provides SQLite-based persistence for users, predictions and chat history
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-based storage instance
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(10000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Writes are serialized by SQLite, keep the pool small
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	store := &SQLiteStore{db: db}

	// In-memory databases report "memory" instead of "wal"
	var journalMode string
	if err := db.QueryRow("PRAGMA journal_mode").Scan(&journalMode); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to check journal mode: %w", err)
	}
	if journalMode != "wal" && journalMode != "delete" && journalMode != "memory" {
		db.Close()
		return nil, fmt.Errorf("unexpected journal mode: got %s", journalMode)
	}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Ping checks that the database is reachable
func (s *SQLiteStore) Ping() error {
	return s.db.Ping()
}

// retryOnBusy retries a database operation if it fails due to SQLITE_BUSY.
// This is a safety net on top of the busy_timeout pragma.
func (s *SQLiteStore) retryOnBusy(operation func() error, maxRetries int) error {
	var err error
	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if strings.Contains(err.Error(), "SQLITE_BUSY") {
			// 10ms, 20ms, 40ms, 80ms, 160ms
			backoff := time.Duration(10*(1<<uint(i))) * time.Millisecond
			time.Sleep(backoff)
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries: %w", maxRetries, err)
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		email TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		data TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS predictions (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		type TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		data TEXT NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(id)
	);

	CREATE INDEX IF NOT EXISTS idx_predictions_user_id ON predictions(user_id);
	CREATE INDEX IF NOT EXISTS idx_predictions_created_at ON predictions(created_at);

	CREATE TABLE IF NOT EXISTS chat_messages (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		data TEXT NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(id)
	);

	CREATE INDEX IF NOT EXISTS idx_chat_messages_user_id ON chat_messages(user_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// SaveUser inserts or updates a user
func (s *SQLiteStore) SaveUser(user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	query := `
		INSERT INTO users (id, username, email, created_at, data)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET username = excluded.username, email = excluded.email, data = excluded.data
	`

	err = s.retryOnBusy(func() error {
		_, execErr := s.db.Exec(query, user.ID, user.Username, user.Email, user.CreatedAt.UnixNano(), string(data))
		return execErr
	}, 5)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("%w: username %s", ErrConflict, user.Username)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

// GetUser retrieves a user by ID
func (s *SQLiteStore) GetUser(id string) (*models.User, error) {
	var user models.User
	if err := s.getOne(`SELECT data FROM users WHERE id = ?`, id, "user", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername retrieves a user by username
func (s *SQLiteStore) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.getOne(`SELECT data FROM users WHERE username = ?`, username, "user", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SavePrediction inserts or replaces a prediction
func (s *SQLiteStore) SavePrediction(prediction *models.Prediction) error {
	data, err := json.Marshal(prediction)
	if err != nil {
		return fmt.Errorf("failed to marshal prediction: %w", err)
	}

	query := `
		INSERT OR REPLACE INTO predictions (id, user_id, type, created_at, data)
		VALUES (?, ?, ?, ?, ?)
	`

	err = s.retryOnBusy(func() error {
		_, execErr := s.db.Exec(query,
			prediction.ID,
			prediction.UserID,
			prediction.Type,
			prediction.CreatedAt.UnixNano(),
			string(data),
		)
		return execErr
	}, 5)
	if err != nil {
		return fmt.Errorf("failed to save prediction: %w", err)
	}
	return nil
}

// GetPrediction retrieves a prediction by ID
func (s *SQLiteStore) GetPrediction(id string) (*models.Prediction, error) {
	var prediction models.Prediction
	if err := s.getOne(`SELECT data FROM predictions WHERE id = ?`, id, "prediction", &prediction); err != nil {
		return nil, err
	}
	return &prediction, nil
}

// ListPredictionsByUser lists a user's predictions, newest first
func (s *SQLiteStore) ListPredictionsByUser(userID string) ([]*models.Prediction, error) {
	query := `SELECT data FROM predictions WHERE user_id = ? ORDER BY created_at DESC, rowid DESC`

	rows, err := s.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list predictions: %w", err)
	}
	defer rows.Close()

	predictions := make([]*models.Prediction, 0)
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan prediction: %w", err)
		}

		var prediction models.Prediction
		if err := json.Unmarshal([]byte(data), &prediction); err != nil {
			return nil, fmt.Errorf("failed to unmarshal prediction: %w", err)
		}
		predictions = append(predictions, &prediction)
	}

	return predictions, rows.Err()
}

// DeletePredictionsBefore removes predictions created before cutoff
func (s *SQLiteStore) DeletePredictionsBefore(cutoff time.Time) (int64, error) {
	var deleted int64
	err := s.retryOnBusy(func() error {
		res, execErr := s.db.Exec(`DELETE FROM predictions WHERE created_at < ?`, cutoff.UnixNano())
		if execErr != nil {
			return execErr
		}
		deleted, execErr = res.RowsAffected()
		return execErr
	}, 5)
	if err != nil {
		return 0, fmt.Errorf("failed to delete predictions: %w", err)
	}
	return deleted, nil
}

// SaveChatMessage stores a chat exchange
func (s *SQLiteStore) SaveChatMessage(message *models.ChatMessage) error {
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal chat message: %w", err)
	}

	query := `
		INSERT OR REPLACE INTO chat_messages (id, user_id, created_at, data)
		VALUES (?, ?, ?, ?)
	`

	err = s.retryOnBusy(func() error {
		_, execErr := s.db.Exec(query, message.ID, message.UserID, message.CreatedAt.UnixNano(), string(data))
		return execErr
	}, 5)
	if err != nil {
		return fmt.Errorf("failed to save chat message: %w", err)
	}
	return nil
}

// ListChatMessagesByUser lists a user's chat history, newest first
func (s *SQLiteStore) ListChatMessagesByUser(userID string) ([]*models.ChatMessage, error) {
	query := `SELECT data FROM chat_messages WHERE user_id = ? ORDER BY created_at DESC, rowid DESC`

	rows, err := s.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	defer rows.Close()

	messages := make([]*models.ChatMessage, 0)
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan chat message: %w", err)
		}

		var message models.ChatMessage
		if err := json.Unmarshal([]byte(data), &message); err != nil {
			return nil, fmt.Errorf("failed to unmarshal chat message: %w", err)
		}
		messages = append(messages, &message)
	}

	return messages, rows.Err()
}

// getOne loads a single JSON data column into out
func (s *SQLiteStore) getOne(query, key, kind string, out any) error {
	var data string
	err := s.db.QueryRow(query, key).Scan(&data)
	if err == sql.ErrNoRows {
		return fmt.Errorf("%w: %s %s", ErrNotFound, kind, key)
	}
	if err != nil {
		return fmt.Errorf("failed to get %s: %w", kind, err)
	}

	if err := json.Unmarshal([]byte(data), out); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", kind, err)
	}
	return nil
}
