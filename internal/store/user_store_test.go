package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chocolate-not-availabe/blokify/internal/domain"
)

func TestUserStore_Create(t *testing.T) {
	s := NewUserStore()

	user, err := s.Create("  A@X.com ", "hash", "  Alice ")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(user.ID, "u_"))
	assert.Len(t, user.ID, 10)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "Alice", user.Username)
	assert.Equal(t, "hash", user.PasswordHash)
	assert.NotZero(t, user.CreatedAt)
}

func TestUserStore_Create_DuplicateEmail(t *testing.T) {
	s := NewUserStore()

	_, err := s.Create("a@x.com", "hash", "Alice")
	require.NoError(t, err)

	// Case and surrounding whitespace must not defeat the uniqueness check.
	_, err = s.Create(" A@X.COM ", "hash2", "Bob")
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestUserStore_GetByID(t *testing.T) {
	s := NewUserStore()

	created, err := s.Create("a@x.com", "hash", "Alice")
	require.NoError(t, err)

	got, err := s.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = s.GetByID("u_missing1")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserStore_FindByEmail(t *testing.T) {
	s := NewUserStore()

	created, err := s.Create("a@x.com", "hash", "Alice")
	require.NoError(t, err)

	got, err := s.FindByEmail("  A@x.COM ")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = s.FindByEmail("b@x.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserStore_UpdateProfile_Partial(t *testing.T) {
	s := NewUserStore()

	created, err := s.Create("a@x.com", "hash", "Alice")
	require.NoError(t, err)

	bio := "writes stories"
	updated, err := s.UpdateProfile(created.ID, domain.ProfileUpdate{Bio: &bio})
	require.NoError(t, err)

	// Absent fields keep their stored value.
	assert.Equal(t, "Alice", updated.Username)
	assert.Equal(t, "writes stories", updated.Bio)

	// An explicit empty string overwrites.
	empty := ""
	updated, err = s.UpdateProfile(created.ID, domain.ProfileUpdate{Bio: &empty})
	require.NoError(t, err)
	assert.Equal(t, "", updated.Bio)

	// Username is trimmed on update.
	name := "  Alicia "
	updated, err = s.UpdateProfile(created.ID, domain.ProfileUpdate{Username: &name})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.Username)
}

func TestUserStore_UpdateProfile_NotFound(t *testing.T) {
	s := NewUserStore()

	name := "Bob"
	_, err := s.UpdateProfile("u_missing1", domain.ProfileUpdate{Username: &name})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
