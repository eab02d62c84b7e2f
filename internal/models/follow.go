package models

import "time"

// Follow is a directed follower -> followee edge. The unique index makes a
// duplicate edge fail at the storage layer; self-edges are rejected in the
// graph service.
type Follow struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	FollowerID  uint      `json:"follower_id" gorm:"index;uniqueIndex:idx_follower_following"`
	FollowingID uint      `json:"following_id" gorm:"index;uniqueIndex:idx_follower_following"`
	CreatedAt   time.Time `json:"created_at"`
}

// FollowRequest is a pending, directed intent to follow. It is consumed on
// accept (becoming a Follow edge) or decline, never updated in place. The
// unique index allows at most one pending request per (sender, receiver).
type FollowRequest struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	SenderID   uint      `json:"sender_id" gorm:"index;uniqueIndex:idx_sender_receiver"`
	ReceiverID uint      `json:"receiver_id" gorm:"index;uniqueIndex:idx_sender_receiver"`
	CreatedAt  time.Time `json:"created_at"`
}

// FollowRequestResponse is a pending request with its sender attached
type FollowRequestResponse struct {
	FollowRequest
	Sender UserCompact `json:"sender"`
}
