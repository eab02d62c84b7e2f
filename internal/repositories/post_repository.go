package repositories

import (
	"github.com/Dhruv9449/Chitros/internal/models"
	"gorm.io/gorm"
)

// FeedSort selects the ordering of feed queries
type FeedSort string

const (
	// FeedSortRecent orders by creation time, newest first
	FeedSortRecent FeedSort = "recent"
	// FeedSortLikes orders by derived like count, most liked first
	FeedSortLikes FeedSort = "likes"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	GetPostByImageURL(imageURL string) (*models.Post, error)
	GetPostsByAuthor(authorID uint, publishedOnly bool) ([]models.Post, error)
	GetFeedPosts(authorIDs []uint, sort FeedSort, offset, limit int) ([]models.Post, error)
	UpdatePostFields(id uint, fields map[string]interface{}) error
	DeletePost(id uint) error
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreatePost creates a new post
func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetPostByID retrieves a post by ID with its author preloaded
func (r *PostgresPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.Preload("Author").First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPostByImageURL retrieves the post referencing a stored media file
func (r *PostgresPostRepository) GetPostByImageURL(imageURL string) (*models.Post, error) {
	var post models.Post
	if err := r.db.Where("image_url = ?", imageURL).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPostsByAuthor retrieves an author's posts, newest first
func (r *PostgresPostRepository) GetPostsByAuthor(authorID uint, publishedOnly bool) ([]models.Post, error) {
	var posts []models.Post
	q := r.db.Where("author_id = ?", authorID)
	if publishedOnly {
		q = q.Where("published = ?", true)
	}
	if err := q.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// GetFeedPosts retrieves published posts by the given authors. The likes sort
// orders by a count-on-read subquery so the aggregate is never stored.
func (r *PostgresPostRepository) GetFeedPosts(authorIDs []uint, sort FeedSort, offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	q := r.db.Preload("Author").
		Where("author_id IN ?", authorIDs).
		Where("published = ?", true)

	if sort == FeedSortLikes {
		q = q.Order("(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) DESC, created_at DESC")
	} else {
		q = q.Order("created_at DESC")
	}

	if err := q.Offset(offset).Limit(limit).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdatePostFields applies a partial update to a post
func (r *PostgresPostRepository) UpdatePostFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Post{}).Where("id = ?", id).Updates(fields).Error
}

// DeletePost deletes a post with its comments and likes in one transaction
func (r *PostgresPostRepository) DeletePost(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
}
