package services

import (
	"errors"

	"github.com/Dhruv9449/Chitros/internal/apperrors"
	"github.com/Dhruv9449/Chitros/internal/models"
	"github.com/Dhruv9449/Chitros/internal/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// IdentityService owns user records and credential hashes. Plaintext
// passwords exist only inside Signup and Authenticate.
type IdentityService struct {
	userRepo   repositories.UserRepository
	postRepo   repositories.PostRepository
	followRepo repositories.FollowRepository
}

// NewIdentityService creates a new IdentityService
func NewIdentityService(
	userRepo repositories.UserRepository,
	postRepo repositories.PostRepository,
	followRepo repositories.FollowRepository,
) *IdentityService {
	return &IdentityService{userRepo: userRepo, postRepo: postRepo, followRepo: followRepo}
}

// Signup registers a new user with a bcrypt credential hash
func (s *IdentityService) Signup(req models.CreateUserRequest) (*models.User, error) {
	if _, err := s.userRepo.GetUserByUsername(req.Username); err == nil {
		return nil, apperrors.ErrDuplicateIdentity
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.userRepo.GetUserByEmail(req.Email); err == nil {
		return nil, apperrors.ErrDuplicateIdentity
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Fullname: req.Fullname,
		Email:    req.Email,
		Password: string(hash),
	}
	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, asConflict(err, apperrors.ErrDuplicateIdentity)
	}
	return user, nil
}

// Authenticate verifies a username/password pair and returns the user
func (s *IdentityService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.userRepo.GetUserByUsername(username)
	if err != nil {
		return nil, asNotFound(err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, apperrors.ErrUnauthenticated
	}
	return user, nil
}

// GetByUsername retrieves a user by handle
func (s *IdentityService) GetByUsername(username string) (*models.User, error) {
	user, err := s.userRepo.GetUserByUsername(username)
	if err != nil {
		return nil, asNotFound(err)
	}
	return user, nil
}

// GetByID retrieves a user by ID
func (s *IdentityService) GetByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(id)
	if err != nil {
		return nil, asNotFound(err)
	}
	return user, nil
}

// Search finds users whose username, fullname or description contains the
// query, case-insensitively. An empty query returns all users.
func (s *IdentityService) Search(query string) ([]models.User, error) {
	return s.userRepo.SearchUsers(query)
}

// UpdateUser applies the non-empty fields of the patch to the actor's own
// profile. avatarRef, when non-empty, replaces the profile picture.
func (s *IdentityService) UpdateUser(actorID uint, username string, patch models.UpdateUserRequest, avatarRef string) error {
	user, err := s.userRepo.GetUserByUsername(username)
	if err != nil {
		return asNotFound(err)
	}
	if user.ID != actorID {
		return apperrors.ErrForbidden
	}

	fields := map[string]interface{}{}
	if patch.Fullname != "" {
		fields["fullname"] = patch.Fullname
	}
	if patch.Email != "" {
		fields["email"] = patch.Email
	}
	if patch.Description != "" {
		fields["description"] = patch.Description
	}
	if avatarRef != "" {
		fields["profile_pic"] = avatarRef
	}
	if len(fields) == 0 {
		return nil
	}
	return s.userRepo.UpdateUserFields(user.ID, fields)
}

// DeleteUser removes the actor's own account and cascades to everything they
// own or participate in
func (s *IdentityService) DeleteUser(actorID uint, username string) error {
	user, err := s.userRepo.GetUserByUsername(username)
	if err != nil {
		return asNotFound(err)
	}
	if user.ID != actorID {
		return apperrors.ErrForbidden
	}
	return s.userRepo.DeleteUser(user.ID)
}

// GetProfile returns the profile variant the actor is entitled to see:
// full detail with all posts for the owner, full detail with published posts
// for a follower, summary counts otherwise.
func (s *IdentityService) GetProfile(actorID uint, username string) (*models.UserProfile, error) {
	user, err := s.userRepo.GetUserByUsername(username)
	if err != nil {
		return nil, asNotFound(err)
	}

	follows, err := s.followRepo.IsFollowing(actorID, user.ID)
	if err != nil {
		return nil, err
	}

	profile := &models.UserProfile{
		Level:       ProfileLevelFor(actorID, user.ID, follows),
		UserCompact: user.ToCompact(),
		Description: user.Description,
	}

	if profile.Level == models.ProfileSummary {
		followers, err := s.followRepo.GetFollowersCount(user.ID)
		if err != nil {
			return nil, err
		}
		following, err := s.followRepo.GetFollowingCount(user.ID)
		if err != nil {
			return nil, err
		}
		profile.Summary = &models.ProfileCounts{FollowerCount: followers, FollowingCount: following}
		return profile, nil
	}

	publishedOnly := profile.Level == models.ProfileFollower
	posts, err := s.postRepo.GetPostsByAuthor(user.ID, publishedOnly)
	if err != nil {
		return nil, err
	}
	followers, err := s.followRepo.GetFollowers(user.ID)
	if err != nil {
		return nil, err
	}
	following, err := s.followRepo.GetFollowing(user.ID)
	if err != nil {
		return nil, err
	}

	detail := &models.ProfileDetail{Posts: posts}
	for _, f := range followers {
		detail.Followers = append(detail.Followers, f.ToCompact())
	}
	for _, f := range following {
		detail.Following = append(detail.Following, f.ToCompact())
	}
	profile.Full = detail
	return profile, nil
}
