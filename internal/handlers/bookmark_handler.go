package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hitakshi13/saas-app/internal/identity"
	"github.com/hitakshi13/saas-app/internal/services"
)

type BookmarkHandler struct {
	bookmarkService *services.BookmarkService
}

func NewBookmarkHandler(bookmarkService *services.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{bookmarkService: bookmarkService}
}

func (h *BookmarkHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/bookmarks", h.GetBookmarks).Methods("GET")
	router.HandleFunc("/bookmarks", h.AddBookmark).Methods("POST")
	router.HandleFunc("/bookmarks/{companionId}", h.RemoveBookmark).Methods("DELETE")
}

// GetBookmarks returns all companions bookmarked by the caller
func (h *BookmarkHandler) GetBookmarks(w http.ResponseWriter, r *http.Request) {
	id := identity.FromContext(r.Context())

	companions, err := h.bookmarkService.GetBookmarkedCompanions(id.UserID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"companions": companions,
	})
}

// AddBookmark bookmarks a companion for the caller
func (h *BookmarkHandler) AddBookmark(w http.ResponseWriter, r *http.Request) {
	id := identity.FromContext(r.Context())

	var req struct {
		CompanionID string `json:"companionId"`
		Path        string `json:"path"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Path == "" {
		req.Path = "/"
	}

	if err := h.bookmarkService.AddBookmark(r.Context(), req.CompanionID, id.UserID, req.Path); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{
		"message": "Companion bookmarked",
	})
}

// RemoveBookmark deletes the caller's bookmark on a companion. Removing
// a bookmark that does not exist succeeds.
func (h *BookmarkHandler) RemoveBookmark(w http.ResponseWriter, r *http.Request) {
	id := identity.FromContext(r.Context())
	vars := mux.Vars(r)

	path := r.URL.Query().Get("path")
	if path == "" {
		path = "/"
	}

	if err := h.bookmarkService.RemoveBookmark(r.Context(), vars["companionId"], id.UserID, path); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"message": "Bookmark removed",
	})
}
