package models

import "time"

// Post represents an image post
type Post struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ImageURL    string    `json:"image_url" gorm:"not null"`
	Description string    `json:"description,omitempty"`
	Published   bool      `json:"published" gorm:"not null"`
	Location    string    `json:"location,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	ModifiedAt  time.Time `json:"modified_at"`
	AuthorID    uint      `json:"author_id" gorm:"index;not null"`
	Author      *User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// CreatePostRequest defines the form fields for creating a post.
// Published defaults to true when the field is absent.
type CreatePostRequest struct {
	Description string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Published   *bool  `json:"published,omitempty"`
	Location    string `json:"location,omitempty" validate:"omitempty,max=100"`
}

// UpdatePostRequest defines the patch fields for editing a post.
// Nil pointers leave the stored value untouched.
type UpdatePostRequest struct {
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Published   *bool   `json:"published,omitempty"`
	Location    *string `json:"location,omitempty" validate:"omitempty,max=100"`
}

// PostResponse is a post enriched with its author, likes and comment tree
type PostResponse struct {
	Post
	Author     UserCompact       `json:"author"`
	LikesCount int64             `json:"likes_count"`
	Likes      []LikeResponse    `json:"likes,omitempty"`
	Comments   []CommentResponse `json:"comments,omitempty"`
}
