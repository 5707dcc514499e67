package domain

// User represents a registered account. PasswordHash is a bcrypt hash and is
// never serialized.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Username     string
	Bio          string
	AvatarURL    string
	CreatedAt    int64
}

// PublicUser is the projection of a user safe to return to any caller.
type PublicUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatarUrl"`
	CreatedAt int64  `json:"createdAt"`
}

// Public returns the public projection of the user.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		Bio:       u.Bio,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
	}
}

// Profile is a public user augmented with counters derived at read time.
type Profile struct {
	PublicUser
	TotalStories     int `json:"totalStories"`
	PublishedStories int `json:"publishedStories"`
	DraftStories     int `json:"draftStories"`
	ReadingCount     int `json:"readingCount"`
	TapCount         int `json:"tapCount"`
}

// ProfileUpdate carries a partial profile mutation. Nil fields are left
// untouched; empty strings overwrite.
type ProfileUpdate struct {
	Username  *string `json:"username"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatarUrl"`
}

// UserStore defines storage operations for user records.
type UserStore interface {
	Create(email, passwordHash, username string) (User, error)
	GetByID(id string) (User, error)
	FindByEmail(email string) (User, error)
	UpdateProfile(id string, update ProfileUpdate) (User, error)
}

// AuthService defines the signup/login use cases.
type AuthService interface {
	SignUp(email, password, username string) (PublicUser, error)
	LogIn(email, password string) (PublicUser, error)
}

// UserService defines the profile use cases.
type UserService interface {
	Profile(userID string) (Profile, error)
	UpdateProfile(userID string, update ProfileUpdate) (PublicUser, error)
}
