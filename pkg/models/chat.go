package models

import "time"

// ChatMessage is one exchange with the farming assistant
type ChatMessage struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatRequest is the body of a chat submission
type ChatRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}
