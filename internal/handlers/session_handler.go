package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hitakshi13/saas-app/internal/identity"
	"github.com/hitakshi13/saas-app/internal/services"
)

type SessionHandler struct {
	sessionService *services.SessionService
}

func NewSessionHandler(sessionService *services.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// RegisterReadRoutes registers the routes open to anonymous callers.
func (h *SessionHandler) RegisterReadRoutes(router *mux.Router) {
	router.HandleFunc("/sessions/recent", h.GetRecentSessions).Methods("GET")
	router.HandleFunc("/sessions/user/{userId}", h.GetUserSessions).Methods("GET")
}

// RegisterRoutes registers the routes requiring authentication.
func (h *SessionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/sessions", h.RecordSession).Methods("POST")
}

// RecordSession appends a lesson-launch entry for the caller
func (h *SessionHandler) RecordSession(w http.ResponseWriter, r *http.Request) {
	id := identity.FromContext(r.Context())

	var req struct {
		CompanionID string `json:"companionId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.sessionService.AddToSessionHistory(req.CompanionID, id.UserID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{
		"message": "Session recorded",
	})
}

// GetRecentSessions returns the companions of the most recent lessons
func (h *SessionHandler) GetRecentSessions(w http.ResponseWriter, r *http.Request) {
	companions, err := h.sessionService.GetRecentSessions(queryInt(r, "limit"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"companions": companions,
	})
}

// GetUserSessions returns the companions of one user's recent lessons
func (h *SessionHandler) GetUserSessions(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	companions, err := h.sessionService.GetUserSessions(vars["userId"], queryInt(r, "limit"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"companions": companions,
	})
}
