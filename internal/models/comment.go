package models

import "time"

// Comment represents a comment on a post. A nil ParentID means a top-level
// comment; a set ParentID means a reply to that comment. Replies are one
// level deep in practice.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	AuthorID  uint      `json:"author_id" gorm:"index;not null"`
	Author    *User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Content   string    `json:"content" gorm:"not null"`
	PostID    uint      `json:"post_id" gorm:"index;not null"`
	ParentID  *uint     `json:"parent_id,omitempty" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCommentRequest defines the request body for comments and replies
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=500"`
}

// ReplyResponse is a reply with its author attached
type ReplyResponse struct {
	Comment
	Author UserCompact `json:"author"`
}

// CommentResponse is a top-level comment with its author and replies
type CommentResponse struct {
	Comment
	Author  UserCompact     `json:"author"`
	Replies []ReplyResponse `json:"replies"`
}
