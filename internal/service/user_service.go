package service

import (
	"errors"

	"github.com/chocolate-not-availabe/blokify/internal/domain"
	"github.com/chocolate-not-availabe/blokify/pkg/apperrors"
)

type userService struct {
	users    domain.UserStore
	stories  domain.StoryStore
	progress domain.ProgressStore
	logger   domain.Logger
}

// NewUserService creates the profile service. Profile counters are derived
// at read time by scanning the story and progress stores; nothing is cached.
func NewUserService(users domain.UserStore, stories domain.StoryStore, progress domain.ProgressStore, logger domain.Logger) domain.UserService {
	return &userService{
		users:    users,
		stories:  stories,
		progress: progress,
		logger:   logger,
	}
}

// Profile returns the public user plus derived counters: authored story
// totals, how many stories the user is currently reading, and the taps all
// readers have spent on this author's stories.
func (s *userService) Profile(userID string) (domain.Profile, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return domain.Profile{}, apperrors.NewNotFoundError("User not found")
	}

	authored := s.stories.ListByAuthor(userID)
	published := 0
	for _, story := range authored {
		if story.Status == domain.StoryPublished {
			published++
		}
	}

	// A progress record whose story no longer exists is skipped, the same
	// safeguard the reading list applies.
	readingCount := len(s.stories.ListByIDs(s.progress.StoryIDsWithProgress(userID)))

	tapTotals := s.progress.TapTotalsByStory()
	tapCount := 0
	for _, story := range authored {
		tapCount += tapTotals[story.ID]
	}

	return domain.Profile{
		PublicUser:       user.Public(),
		TotalStories:     len(authored),
		PublishedStories: published,
		DraftStories:     len(authored) - published,
		ReadingCount:     readingCount,
		TapCount:         tapCount,
	}, nil
}

// UpdateProfile applies a partial mutation to username, bio and avatarUrl.
// Fields absent from the input keep their stored value.
func (s *userService) UpdateProfile(userID string, update domain.ProfileUpdate) (domain.PublicUser, error) {
	user, err := s.users.UpdateProfile(userID, update)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.PublicUser{}, apperrors.NewNotFoundError("User not found")
		}
		return domain.PublicUser{}, apperrors.NewInternalError("failed to update profile", err)
	}
	return user.Public(), nil
}
