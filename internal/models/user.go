package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// User represents a registered account
type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Username    string    `json:"username" gorm:"uniqueIndex;not null"`
	Fullname    string    `json:"fullname" gorm:"not null"`
	Email       string    `json:"email" gorm:"uniqueIndex;not null"`
	Password    string    `json:"-" gorm:"not null"` // bcrypt hash, never serialized
	Description string    `json:"description,omitempty"`
	ProfilePic  string    `json:"profile_pic,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserCompact is the short user shape embedded in posts, comments and follow lists
type UserCompact struct {
	ID         uint   `json:"id"`
	Username   string `json:"username"`
	Fullname   string `json:"fullname"`
	ProfilePic string `json:"profile_pic,omitempty"`
}

// ToCompact converts a User to its compact representation
func (u *User) ToCompact() UserCompact {
	return UserCompact{
		ID:         u.ID,
		Username:   u.Username,
		Fullname:   u.Fullname,
		ProfilePic: u.ProfilePic,
	}
}

// ProfileLevel selects which profile variant a viewer is entitled to
type ProfileLevel int

const (
	// ProfileSelf is the owner viewing their own profile: full detail, all posts
	ProfileSelf ProfileLevel = iota
	// ProfileFollower is a follower's view: full detail, published posts only
	ProfileFollower
	// ProfileSummary is the outside view: counts only, no post listing
	ProfileSummary
)

// ProfileDetail is the full profile variant returned to the owner and followers
type ProfileDetail struct {
	Posts     []Post        `json:"posts"`
	Following []UserCompact `json:"following"`
	Followers []UserCompact `json:"followers"`
}

// ProfileCounts is the summary variant returned to non-followers
type ProfileCounts struct {
	FollowerCount  int64 `json:"follower_count"`
	FollowingCount int64 `json:"following_count"`
}

// UserProfile is the tagged profile response: exactly one of Full or Summary is set
type UserProfile struct {
	Level       ProfileLevel `json:"-"`
	UserCompact
	Description string         `json:"description,omitempty"`
	Full        *ProfileDetail `json:"detail,omitempty"`
	Summary     *ProfileCounts `json:"summary,omitempty"`
}

// CreateUserRequest defines the request body for signup
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Fullname string `json:"fullname" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest defines the request body for login
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest defines the request body for updating a profile
type UpdateUserRequest struct {
	Fullname    string `json:"fullname,omitempty" validate:"omitempty,min=2,max=50"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	Description string `json:"description,omitempty" validate:"omitempty,max=300"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
