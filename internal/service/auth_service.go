// Package service implements the use-case layer: input validation, password
// handling, read-time aggregation and the mapping of store errors onto the
// application error taxonomy.
package service

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/chocolate-not-availabe/blokify/internal/domain"
	"github.com/chocolate-not-availabe/blokify/pkg/apperrors"
)

type authService struct {
	users      domain.UserStore
	logger     domain.Logger
	bcryptCost int
}

// NewAuthService creates the signup/login service. Passwords are stored as
// bcrypt hashes; the success/failure contract is the same as plaintext
// comparison (matching email+password authenticates, everything else
// doesn't).
func NewAuthService(users domain.UserStore, logger domain.Logger, bcryptCost int) domain.AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &authService{
		users:      users,
		logger:     logger,
		bcryptCost: bcryptCost,
	}
}

// SignUp registers a new account and returns its public projection.
func (s *authService) SignUp(email, password, username string) (domain.PublicUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	username = strings.TrimSpace(username)

	if email == "" || password == "" || username == "" {
		return domain.PublicUser{}, apperrors.NewValidationError("email, password and username are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		s.logger.Error("Failed to hash password", err)
		return domain.PublicUser{}, apperrors.NewInternalError("failed to process credentials", err)
	}

	user, err := s.users.Create(email, string(hash), username)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return domain.PublicUser{}, apperrors.NewConflictError("Email already in use")
		}
		return domain.PublicUser{}, apperrors.NewInternalError("failed to create user", err)
	}

	s.logger.Info("User signed up", "user_id", user.ID)
	return user.Public(), nil
}

// LogIn checks credentials and returns the matching user's public
// projection. Unknown email and wrong password are indistinguishable to the
// caller.
func (s *authService) LogIn(email, password string) (domain.PublicUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if email == "" || password == "" {
		return domain.PublicUser{}, apperrors.NewValidationError("email and password are required")
	}

	user, err := s.users.FindByEmail(email)
	if err != nil {
		return domain.PublicUser{}, apperrors.NewUnauthorizedError("Invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return domain.PublicUser{}, apperrors.NewUnauthorizedError("Invalid email or password")
	}

	return user.Public(), nil
}
