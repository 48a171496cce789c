package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hitakshi13/saas-app/internal/cache"
	"github.com/hitakshi13/saas-app/internal/identity"
	"github.com/hitakshi13/saas-app/internal/models"
	"github.com/hitakshi13/saas-app/internal/services"
)

type CompanionHandler struct {
	companionService  *services.CompanionService
	permissionService *services.PermissionService
	pageCache         *cache.PageCache
}

func NewCompanionHandler(
	companionService *services.CompanionService,
	permissionService *services.PermissionService,
	pageCache *cache.PageCache,
) *CompanionHandler {
	return &CompanionHandler{
		companionService:  companionService,
		permissionService: permissionService,
		pageCache:         pageCache,
	}
}

// RegisterReadRoutes registers the routes open to anonymous callers.
func (h *CompanionHandler) RegisterReadRoutes(router *mux.Router) {
	router.HandleFunc("/companions", h.ListCompanions).Methods("GET")
	router.HandleFunc("/companions/user/{userId}", h.GetUserCompanions).Methods("GET")
	router.HandleFunc("/companions/{id:[0-9a-fA-F-]{36}}", h.GetCompanion).Methods("GET")
}

// RegisterRoutes registers the routes requiring authentication.
func (h *CompanionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/companions", h.CreateCompanion).Methods("POST")
	router.HandleFunc("/companions/permissions", h.GetPermissions).Methods("GET")
}

// ListCompanions returns one filtered page of companions annotated with
// the caller's bookmark status. Anonymous responses are cacheable: the
// bookmark annotation is always false for them.
func (h *CompanionHandler) ListCompanions(w http.ResponseWriter, r *http.Request) {
	id := identity.FromContext(r.Context())

	filter := services.CompanionFilter{
		Limit:   queryInt(r, "limit"),
		Page:    queryInt(r, "page"),
		Subject: r.URL.Query().Get("subject"),
		Topic:   r.URL.Query().Get("topic"),
	}

	cacheKey := r.URL.RequestURI()
	if id.Anonymous() {
		if payload, ok := h.pageCache.Get(r.Context(), cacheKey); ok {
			w.Header().Set("Content-Type", "application/json")
			w.Write(payload)
			return
		}
	}

	companions, err := h.companionService.GetAllCompanions(filter, id.UserID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	payload, err := json.Marshal(map[string]interface{}{
		"companions": companions,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if id.Anonymous() {
		h.pageCache.Set(r.Context(), cacheKey, payload)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(payload)
}

// GetCompanion returns a single companion by ID
func (h *CompanionHandler) GetCompanion(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	companion, err := h.companionService.GetCompanion(vars["id"])
	if err != nil {
		if services.IsNotFound(err) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(companion)
}

// GetUserCompanions returns all companions authored by a user
func (h *CompanionHandler) GetUserCompanions(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	companions, err := h.companionService.GetUserCompanions(vars["userId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"companions": companions,
	})
}

// CreateCompanion creates a new companion authored by the caller,
// subject to their plan quota
func (h *CompanionHandler) CreateCompanion(w http.ResponseWriter, r *http.Request) {
	id := identity.FromContext(r.Context())

	allowed, err := h.permissionService.CanCreateCompanion(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !allowed {
		http.Error(w, "Companion limit reached", http.StatusForbidden)
		return
	}

	var req models.CreateCompanionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	companion, err := h.companionService.CreateCompanion(req, id.UserID)
	if err != nil {
		var writeErr *services.WriteError
		if errors.As(err, &writeErr) {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(companion)
}

// GetPermissions reports whether the caller may create another companion
func (h *CompanionHandler) GetPermissions(w http.ResponseWriter, r *http.Request) {
	id := identity.FromContext(r.Context())

	allowed, err := h.permissionService.CanCreateCompanion(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{
		"canCreateCompanion": allowed,
	})
}

// queryInt parses an integer query parameter, returning 0 when absent
// or malformed so the service falls back to its defaults.
func queryInt(r *http.Request, name string) int {
	value := r.URL.Query().Get(name)
	if value == "" {
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}
