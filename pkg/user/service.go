package user

import (
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/agriadvisor/agriadvisor-go/pkg/metadatastore"
	"github.com/agriadvisor/agriadvisor-go/pkg/models"
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,50}$`)

const emailDomain = "@gmail.com"

var (
	// ErrInvalidUser is returned when a registration request fails validation
	ErrInvalidUser = errors.New("invalid user")
	// ErrUserNotFound is returned when no user has the requested ID or username
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameTaken is returned when the username is already registered
	ErrUsernameTaken = errors.New("username already exists")
)

// Service provides user registration and lookup
type Service struct {
	store metadatastore.MetadataStore
}

// NewService creates a new user service
func NewService(store metadatastore.MetadataStore) *Service {
	return &Service{
		store: store,
	}
}

// Create registers a new user
func (s *Service) Create(req *models.UserCreateRequest) (*models.User, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is required", ErrInvalidUser)
	}

	user := &models.User{
		ID:        uuid.New().String(),
		Username:  strings.TrimSpace(req.Username),
		FullName:  strings.TrimSpace(req.FullName),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Role:      models.UserRoleFarmer,
		CreatedAt: time.Now().UTC(),
	}

	if err := validate(user); err != nil {
		return nil, err
	}

	// Check username uniqueness
	if _, err := s.store.GetUserByUsername(user.Username); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrUsernameTaken, user.Username)
	} else if !errors.Is(err, metadatastore.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	if err := s.store.SaveUser(user); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, metadatastore.ErrConflict) {
			return nil, fmt.Errorf("%w: %s", ErrUsernameTaken, user.Username)
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	return user, nil
}

// Get retrieves a user by ID
func (s *Service) Get(id string) (*models.User, error) {
	user, err := s.store.GetUser(id)
	if errors.Is(err, metadatastore.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, id)
	}
	return user, err
}

// GetByUsername retrieves a user by username
func (s *Service) GetByUsername(username string) (*models.User, error) {
	user, err := s.store.GetUserByUsername(username)
	if errors.Is(err, metadatastore.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, username)
	}
	return user, err
}

func validate(u *models.User) error {
	if !usernameRegex.MatchString(u.Username) {
		return fmt.Errorf("%w: username must be 3-50 alphanumeric characters, hyphens, or underscores", ErrInvalidUser)
	}

	addr, err := mail.ParseAddress(u.Email)
	if err != nil || addr.Address != u.Email {
		return fmt.Errorf("%w: invalid email address", ErrInvalidUser)
	}
	if !strings.HasSuffix(strings.ToLower(u.Email), emailDomain) {
		return fmt.Errorf("%w: email must be a %s address", ErrInvalidUser, emailDomain)
	}

	if n := len(u.Phone); n < 10 || n > 15 {
		return fmt.Errorf("%w: phone number must be 10-15 characters", ErrInvalidUser)
	}

	return nil
}
