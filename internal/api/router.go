package api

import (
	"net/http"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/hitakshi13/saas-app/internal/cache"
	"github.com/hitakshi13/saas-app/internal/config"
	"github.com/hitakshi13/saas-app/internal/handlers"
	"github.com/hitakshi13/saas-app/internal/middleware"
	"github.com/hitakshi13/saas-app/internal/services"
	"github.com/hitakshi13/saas-app/internal/websocket"
	"github.com/hitakshi13/saas-app/web"
)

// SetupRouter configures all routes and returns the router
func SetupRouter(
	db *gorm.DB,
	redisClient *redis.Client,
	wsHub *websocket.Hub,
	cfg *config.Config,
) *mux.Router {
	// Create a new router
	router := mux.NewRouter()

	// Add health check endpoint
	router.HandleFunc("/api/health", HealthHandler).Methods("GET")

	// WebSocket route
	router.HandleFunc("/ws", wsHub.HandleWebSocket)

	// Page cache for anonymous listing responses
	pageCache := cache.NewPageCache(redisClient, cfg.Cache.PageTTL)

	// Create services
	authService := services.NewAuthService(db)
	userService := services.NewUserService(db)
	companionService := services.NewCompanionService(db)
	permissionService := services.NewPermissionService(companionService)
	bookmarkService := services.NewBookmarkService(db, pageCache, wsHub)
	sessionService := services.NewSessionService(db, wsHub)

	// Create handlers using services
	authHandler := handlers.NewAuthHandler(authService, cfg.JWT.SecretKey)
	userHandler := handlers.NewUserHandler(userService)
	companionHandler := handlers.NewCompanionHandler(companionService, permissionService, pageCache)
	bookmarkHandler := handlers.NewBookmarkHandler(bookmarkService)
	sessionHandler := handlers.NewSessionHandler(sessionService)

	// Public endpoints (no authentication required)
	router.HandleFunc("/api/login", authHandler.Login).Methods("POST")
	router.HandleFunc("/api/users", userHandler.Register).Methods("POST")

	// Create the API router
	apiRouter := router.PathPrefix("/api").Subrouter()

	// Read endpoints: anonymous callers pass through, signed-in callers
	// get bookmark annotations
	readRouter := apiRouter.PathPrefix("").Subrouter()
	readRouter.Use(middleware.OptionalAuth(cfg.JWT.SecretKey))
	companionHandler.RegisterReadRoutes(readRouter)
	sessionHandler.RegisterReadRoutes(readRouter)

	// Write endpoints require a valid token
	authRouter := apiRouter.PathPrefix("").Subrouter()
	authRouter.Use(middleware.RequireAuth(cfg.JWT.SecretKey))
	companionHandler.RegisterRoutes(authRouter)
	bookmarkHandler.RegisterRoutes(authRouter)
	sessionHandler.RegisterRoutes(authRouter)

	// Serve the embedded listing page for everything else
	router.PathPrefix("/").Handler(http.FileServer(web.GetFileSystem()))

	return router
}
