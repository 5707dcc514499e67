package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/chocolate-not-availabe/blokify/internal/domain"
	"github.com/chocolate-not-availabe/blokify/internal/store"
	"github.com/chocolate-not-availabe/blokify/pkg/apperrors"
)

func newAuthService() (*store.UserStore, domain.AuthService) {
	users := store.NewUserStore()
	return users, NewAuthService(users, NewMockLogger(), bcrypt.MinCost)
}

func TestAuthService_SignUp(t *testing.T) {
	users, svc := newAuthService()

	user, err := svc.SignUp(" A@X.com ", "p", "A")
	require.NoError(t, err)

	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "A", user.Username)
	assert.NotEmpty(t, user.ID)

	// The stored credential is a bcrypt hash, never the plaintext.
	stored, err := users.GetByID(user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "p", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("p")))
}

func TestAuthService_SignUp_MissingFields(t *testing.T) {
	_, svc := newAuthService()

	cases := []struct {
		name                      string
		email, password, username string
	}{
		{"no email", "", "p", "A"},
		{"no password", "a@x.com", "", "A"},
		{"no username", "a@x.com", "p", ""},
		{"whitespace email", "   ", "p", "A"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.SignUp(tc.email, tc.password, tc.username)
			require.Error(t, err)
			assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
		})
	}
}

func TestAuthService_SignUp_DuplicateEmail(t *testing.T) {
	_, svc := newAuthService()

	_, err := svc.SignUp("a@x.com", "p", "A")
	require.NoError(t, err)

	_, err = svc.SignUp("A@X.COM", "other", "B")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConflict))
	assert.Equal(t, "Email already in use", apperrors.UserMessage(err))
}

func TestAuthService_LogIn(t *testing.T) {
	_, svc := newAuthService()

	created, err := svc.SignUp("a@x.com", "p", "A")
	require.NoError(t, err)

	user, err := svc.LogIn("A@x.com ", "p")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
}

func TestAuthService_LogIn_Failures(t *testing.T) {
	_, svc := newAuthService()

	_, err := svc.SignUp("a@x.com", "p", "A")
	require.NoError(t, err)

	// Wrong password and unknown email must be indistinguishable.
	_, wrongPass := svc.LogIn("a@x.com", "nope")
	_, unknownEmail := svc.LogIn("b@x.com", "p")
	require.Error(t, wrongPass)
	require.Error(t, unknownEmail)
	assert.True(t, apperrors.IsType(wrongPass, apperrors.ErrorTypeUnauthorized))
	assert.True(t, apperrors.IsType(unknownEmail, apperrors.ErrorTypeUnauthorized))
	assert.Equal(t, apperrors.UserMessage(wrongPass), apperrors.UserMessage(unknownEmail))

	_, err = svc.LogIn("", "p")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
	_, err = svc.LogIn("a@x.com", "")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
}
