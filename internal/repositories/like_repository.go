package repositories

import (
	"github.com/Dhruv9449/Chitros/internal/models"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	CreateLike(like *models.Like) error
	DeleteLike(postID, userID uint) (bool, error)
	GetLikesByPostID(postID uint) ([]models.Like, error)
	GetLikesCountByPostID(postID uint) (int64, error)
	HasUserLikedPost(postID, userID uint) (bool, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// CreateLike creates a new like
func (r *PostgresLikeRepository) CreateLike(like *models.Like) error {
	return r.db.Create(like).Error
}

// DeleteLike deletes the like for (postID, userID), reporting whether a row
// was removed
func (r *PostgresLikeRepository) DeleteLike(postID, userID uint) (bool, error) {
	res := r.db.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.Like{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// GetLikesByPostID retrieves all likes for a specific post
func (r *PostgresLikeRepository) GetLikesByPostID(postID uint) ([]models.Like, error) {
	var likes []models.Like
	if err := r.db.Where("post_id = ?", postID).Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

// GetLikesCountByPostID derives the like count of a post on read
func (r *PostgresLikeRepository) GetLikesCountByPostID(postID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// HasUserLikedPost checks if a user has liked a specific post
func (r *PostgresLikeRepository) HasUserLikedPost(postID, userID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("post_id = ? AND user_id = ?", postID, userID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
