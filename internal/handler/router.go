package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/chocolate-not-availabe/blokify/internal/config"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(container *config.Container) http.Handler {
	router := mux.NewRouter()

	// Liveness endpoint
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Blokify backend is running"})
	}).Methods("GET")

	// Initialize handlers
	authHandler := NewAuthHandler(container.AuthService, container.Logger)
	userHandler := NewUserHandler(container.UserService, container.Logger)
	storyHandler := NewStoryHandler(container.StoryService, container.Logger)
	blockHandler := NewBlockHandler(container.BlockService, container.Logger)
	progressHandler := NewProgressHandler(container.ProgressService, container.Logger)

	// Auth routes
	router.HandleFunc("/auth/signup", authHandler.SignUp).Methods("POST")
	router.HandleFunc("/auth/login", authHandler.LogIn).Methods("POST")

	// User routes
	router.HandleFunc("/users/{id}", userHandler.GetProfile).Methods("GET")
	router.HandleFunc("/users/{id}", userHandler.UpdateProfile).Methods("PUT")

	// Story routes. Literal paths are registered before the {id} route so
	// mux does not swallow them as story ids.
	router.HandleFunc("/stories/your", storyHandler.YourStories).Methods("GET")
	router.HandleFunc("/stories/newbies", storyHandler.NewestStories).Methods("GET")
	router.HandleFunc("/stories/reading", storyHandler.ReadingStories).Methods("GET")
	router.HandleFunc("/stories/{id}", storyHandler.GetStory).Methods("GET")
	router.HandleFunc("/stories", storyHandler.UpsertStory).Methods("POST")
	router.HandleFunc("/stories/{id}/publish", storyHandler.PublishStory).Methods("POST")

	// Block routes
	router.HandleFunc("/stories/{id}/blocks", blockHandler.ListBlocks).Methods("GET")
	router.HandleFunc("/stories/{id}/blocks", blockHandler.AppendBlock).Methods("POST")
	router.HandleFunc("/blocks/{id}", blockHandler.EditBlock).Methods("PUT")
	router.HandleFunc("/blocks/{id}", blockHandler.DeleteBlock).Methods("DELETE")

	// Progress routes
	router.HandleFunc("/progress", progressHandler.SaveProgress).Methods("POST")
	router.HandleFunc("/progress/{storyId}", progressHandler.GetProgress).Methods("GET")

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: container.Config.GetAllowedOrigins(),
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
		},
		MaxAge: 300,
	})

	return c.Handler(router)
}
