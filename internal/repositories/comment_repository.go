package repositories

import (
	"github.com/Dhruv9449/Chitros/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(comment *models.Comment) error
	GetCommentByID(id uint) (*models.Comment, error)
	GetTopLevelComment(id, postID uint) (*models.Comment, error)
	GetTopLevelCommentsByPostID(postID uint) ([]models.Comment, error)
	GetReplies(parentID uint) ([]models.Comment, error)
	DeleteComment(id uint) error
}

// PostgresCommentRepository implements CommentRepository for PostgreSQL
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

// CreateComment creates a new comment or reply
func (r *PostgresCommentRepository) CreateComment(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// GetCommentByID retrieves a comment by ID
func (r *PostgresCommentRepository) GetCommentByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetTopLevelComment retrieves a parent-less comment belonging to the given
// post. Replies and comments of other posts do not match, which is what keeps
// reply chains one level deep.
func (r *PostgresCommentRepository) GetTopLevelComment(id, postID uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Where("id = ? AND post_id = ? AND parent_id IS NULL", id, postID).First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetTopLevelCommentsByPostID retrieves a post's parent-less comments in
// insertion order
func (r *PostgresCommentRepository) GetTopLevelCommentsByPostID(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("post_id = ? AND parent_id IS NULL", postID).Order("id ASC").Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// GetReplies retrieves the replies under a comment in insertion order
func (r *PostgresCommentRepository) GetReplies(parentID uint) ([]models.Comment, error) {
	var replies []models.Comment
	if err := r.db.Where("parent_id = ?", parentID).Order("id ASC").Find(&replies).Error; err != nil {
		return nil, err
	}
	return replies, nil
}

// DeleteComment deletes a comment and its replies in one transaction
func (r *PostgresCommentRepository) DeleteComment(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("parent_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Comment{}, id).Error
	})
}
