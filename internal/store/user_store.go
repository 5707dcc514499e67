// Package store holds the in-memory stores backing the API. Each store
// guards its maps with a single RWMutex so composite mutations stay atomic
// with respect to concurrent callers.
package store

import (
	"encoding/hex"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/chocolate-not-availabe/blokify/internal/domain"
)

// newEntityID builds an id like "u_1a2b3c4d": the entity prefix plus the
// first 8 hex chars of a random UUID.
func newEntityID(prefix string) string {
	u := uuid.New()
	return prefix + "_" + hex.EncodeToString(u[:4])
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// UserStore keeps user records in memory with a case-insensitive email
// index. Email uniqueness is checked and the record inserted under one lock.
type UserStore struct {
	mu         sync.RWMutex
	usersByID  map[string]domain.User
	idsByEmail map[string]string

	now func() int64
}

// NewUserStore creates an empty user store.
func NewUserStore() *UserStore {
	return &UserStore{
		usersByID:  make(map[string]domain.User),
		idsByEmail: make(map[string]string),
		now:        func() int64 { return time.Now().Unix() },
	}
}

// Create inserts a new user. The email is stored normalized (trimmed,
// lower-cased); a duplicate yields domain.ErrEmailTaken.
func (s *UserStore) Create(email, passwordHash, username string) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := normalizeEmail(email)
	if _, exists := s.idsByEmail[e]; exists {
		return domain.User{}, domain.ErrEmailTaken
	}

	user := domain.User{
		ID:           newEntityID("u"),
		Email:        e,
		PasswordHash: passwordHash,
		Username:     strings.TrimSpace(username),
		CreatedAt:    s.now(),
	}
	s.usersByID[user.ID] = user
	s.idsByEmail[e] = user.ID
	return user, nil
}

// GetByID returns the user with the given id.
func (s *UserStore) GetByID(id string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.usersByID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return user, nil
}

// FindByEmail returns the user registered under the given email, compared
// case-insensitively after trimming.
func (s *UserStore) FindByEmail(email string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.idsByEmail[normalizeEmail(email)]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return s.usersByID[id], nil
}

// UpdateProfile applies a partial profile mutation. Nil fields keep the
// stored value; empty strings overwrite. Email is immutable.
func (s *UserStore) UpdateProfile(id string, update domain.ProfileUpdate) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.usersByID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}

	if update.Username != nil {
		user.Username = strings.TrimSpace(*update.Username)
	}
	if update.Bio != nil {
		user.Bio = *update.Bio
	}
	if update.AvatarURL != nil {
		user.AvatarURL = *update.AvatarURL
	}

	s.usersByID[id] = user
	return user, nil
}
