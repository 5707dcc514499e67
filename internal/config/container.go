package config

import (
	"github.com/chocolate-not-availabe/blokify/internal/domain"
	"github.com/chocolate-not-availabe/blokify/internal/service"
	"github.com/chocolate-not-availabe/blokify/internal/store"
	"github.com/chocolate-not-availabe/blokify/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config domain.Config
	Logger domain.Logger

	UserStore     *store.UserStore
	StoryStore    *store.StoryStore
	ProgressStore *store.ProgressStore

	AuthService     domain.AuthService
	UserService     domain.UserService
	StoryService    domain.StoryService
	BlockService    domain.BlockService
	ProgressService domain.ProgressService
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	// Stores are constructed once at process start; all state is volatile
	// and lost on restart.
	userStore := store.NewUserStore()
	storyStore := store.NewStoryStore()
	progressStore := store.NewProgressStore()

	return &Container{
		Config: config,
		Logger: appLogger,

		UserStore:     userStore,
		StoryStore:    storyStore,
		ProgressStore: progressStore,

		AuthService:     service.NewAuthService(userStore, appLogger, config.GetBcryptCost()),
		UserService:     service.NewUserService(userStore, storyStore, progressStore, appLogger),
		StoryService:    service.NewStoryService(storyStore, progressStore, appLogger, config.GetDefaultAuthorID()),
		BlockService:    service.NewBlockService(storyStore, appLogger),
		ProgressService: service.NewProgressService(progressStore, appLogger),
	}
}
