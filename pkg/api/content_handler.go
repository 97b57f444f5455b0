package api

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/agriadvisor/agriadvisor-go/pkg/catalog"
	"github.com/agriadvisor/agriadvisor-go/pkg/chat"
	"github.com/agriadvisor/agriadvisor-go/pkg/models"
	"github.com/agriadvisor/agriadvisor-go/pkg/news"
)

// NewsHandler serves the news feed
type NewsHandler struct {
	service *news.Service
}

// NewNewsHandler creates a new news handler
func NewNewsHandler(service *news.Service) *NewsHandler {
	return &NewsHandler{service: service}
}

// HandleNews lists articles, optionally filtered by ?category=
func (h *NewsHandler) HandleNews(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSONResponse(w, http.StatusOK, map[string]any{
		"articles": h.service.List(r.URL.Query().Get("category")),
	})
}

// HandleCategories lists the feed's categories
func (h *NewsHandler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSONResponse(w, http.StatusOK, map[string]any{
		"categories": h.service.Categories(),
	})
}

// ChatHandler handles assistant chat requests
type ChatHandler struct {
	service *chat.Service
	logger  *zap.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(service *chat.Service, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		service: service,
		logger:  logger,
	}
}

// HandleChat records a message and the assistant reply
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.ChatRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.UserID == "" {
		writeErrorResponse(w, http.StatusBadRequest, "user_id is required")
		return
	}

	msg, err := h.service.Send(req.UserID, req.Message)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSONResponse(w, http.StatusCreated, msg)
}

// HandleHistory returns a user's chat history, newest first
func (h *ChatHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	history, err := h.service.History(userID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, history)
}

// CatalogHandler exposes the reference dataset
type CatalogHandler struct {
	catalog *catalog.Catalog
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: c}
}

// HandleCatalog lists profiles of ?set=crops|seeds|all (default all)
func (h *CatalogHandler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	profiles, err := h.catalog.Profiles(catalog.Set(r.URL.Query().Get("set")))
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSONResponse(w, http.StatusOK, map[string]any{
		"profiles": profiles,
		"regions":  h.catalog.Regions(),
	})
}

// HandleProfile returns a single crop or seed profile (/api/catalog/{id})
func (h *CatalogHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/catalog/"), "/")
	if id == "" {
		writeErrorResponse(w, http.StatusBadRequest, "profile ID is required")
		return
	}

	profile, ok := h.catalog.Lookup(models.CropID(id))
	if !ok {
		writeErrorResponse(w, http.StatusNotFound, "unknown profile: "+id)
		return
	}

	writeJSONResponse(w, http.StatusOK, profile)
}
