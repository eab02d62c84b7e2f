package models

// Like represents a like on a post. The composite primary key makes a
// duplicate like fail at the storage layer even under concurrent requests.
type Like struct {
	UserID uint `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	PostID uint `json:"post_id" gorm:"primaryKey;autoIncrement:false"`
}

// LikeResponse is a like with its user attached
type LikeResponse struct {
	Like
	User UserCompact `json:"user"`
}
