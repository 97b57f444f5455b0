package api

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/agriadvisor/agriadvisor-go/pkg/models"
	"github.com/agriadvisor/agriadvisor-go/pkg/user"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	service *user.Service
	logger  *zap.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(service *user.Service, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

// HandleUsers handles user registration and lookup by ?username=
func (h *UserHandler) HandleUsers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.handleCreateUser(w, r)
	case http.MethodGet:
		h.handleFindUser(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *UserHandler) handleFindUser(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		writeErrorResponse(w, http.StatusBadRequest, "username is required")
		return
	}

	u, err := h.service.GetByUsername(username)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, u)
}

func (h *UserHandler) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req models.UserCreateRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	u, err := h.service.Create(&req)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSONResponse(w, http.StatusCreated, u)
}

// HandleUser handles individual user lookups
func (h *UserHandler) HandleUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Extract user ID from path
	userID := strings.TrimPrefix(r.URL.Path, "/api/users/")
	if idx := strings.Index(userID, "/"); idx != -1 {
		userID = userID[:idx]
	}
	if userID == "" {
		writeErrorResponse(w, http.StatusBadRequest, "user ID is required")
		return
	}

	u, err := h.service.Get(userID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, u)
}
