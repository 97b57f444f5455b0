package user

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/agriadvisor/agriadvisor-go/pkg/metadatastore"
	"github.com/agriadvisor/agriadvisor-go/pkg/models"
)

func setupTestService(t *testing.T) *Service {
	store, err := metadatastore.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create SQLite store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return NewService(store)
}

func validRequest() *models.UserCreateRequest {
	return &models.UserCreateRequest{
		Username: "ravi_kumar",
		FullName: "Ravi Kumar",
		Email:    "ravi.kumar@gmail.com",
		Phone:    "9876543210",
	}
}

func TestUserCreate(t *testing.T) {
	service := setupTestService(t)

	user, err := service.Create(validRequest())
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	if user.ID == "" {
		t.Error("Expected user ID to be set")
	}

	if user.Role != models.UserRoleFarmer {
		t.Errorf("Expected role %s, got %s", models.UserRoleFarmer, user.Role)
	}

	if user.CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set")
	}

	got, err := service.Get(user.ID)
	if err != nil {
		t.Fatalf("Failed to get user: %v", err)
	}
	if got.Username != "ravi_kumar" {
		t.Errorf("Expected username ravi_kumar, got %s", got.Username)
	}

	byName, err := service.GetByUsername("ravi_kumar")
	if err != nil {
		t.Fatalf("Failed to get user by username: %v", err)
	}
	if byName.ID != user.ID {
		t.Errorf("Expected ID %s, got %s", user.ID, byName.ID)
	}
}

func TestUserCreateValidation(t *testing.T) {
	service := setupTestService(t)

	tests := []struct {
		name   string
		mutate func(r *models.UserCreateRequest)
	}{
		{"short username", func(r *models.UserCreateRequest) { r.Username = "ab" }},
		{"username with spaces", func(r *models.UserCreateRequest) { r.Username = "ravi kumar" }},
		{"malformed email", func(r *models.UserCreateRequest) { r.Email = "not-an-email" }},
		{"non gmail address", func(r *models.UserCreateRequest) { r.Email = "ravi@example.com" }},
		{"display name email", func(r *models.UserCreateRequest) { r.Email = "Ravi <ravi@gmail.com>" }},
		{"short phone", func(r *models.UserCreateRequest) { r.Phone = "12345" }},
		{"long phone", func(r *models.UserCreateRequest) { r.Phone = "+91 98765 43210 99" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := service.Create(req)
			if !errors.Is(err, ErrInvalidUser) {
				t.Errorf("Expected ErrInvalidUser, got %v", err)
			}
		})
	}

	if _, err := service.Create(nil); !errors.Is(err, ErrInvalidUser) {
		t.Errorf("Expected ErrInvalidUser for nil request, got %v", err)
	}
}

func TestUserCreateDuplicateUsername(t *testing.T) {
	service := setupTestService(t)

	if _, err := service.Create(validRequest()); err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	req := validRequest()
	req.Email = "someone.else@gmail.com"
	_, err := service.Create(req)
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("Expected ErrUsernameTaken, got %v", err)
	}
}

func TestUserGetNotFound(t *testing.T) {
	service := NewService(metadatastore.NewMemoryStore())

	if _, err := service.Get("missing"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}

	if _, err := service.GetByUsername("missing"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
}
