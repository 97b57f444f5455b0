package models

import "time"

// UserRole is the role assigned to a registered user
type UserRole string

const (
	UserRoleFarmer UserRole = "farmer"
)

// User is a registered user of the advisory service
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name,omitempty"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// UserCreateRequest represents a request to register a user
type UserCreateRequest struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}
