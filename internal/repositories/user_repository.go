package repositories

import (
	"github.com/Dhruv9449/Chitros/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByProfilePic(ref string) (*models.User, error)
	UpdateUser(user *models.User) error
	UpdateUserFields(id uint, fields map[string]interface{}) error
	DeleteUser(id uint) error
	SearchUsers(query string) ([]models.User, error)
}

// PostgresUserRepository implements UserRepository for PostgreSQL
type PostgresUserRepository struct {
	db *gorm.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// CreateUser creates a new user
func (r *PostgresUserRepository) CreateUser(user *models.User) error {
	return r.db.Create(user).Error
}

// GetUserByID retrieves a user by ID
func (r *PostgresUserRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername retrieves a user by username
func (r *PostgresUserRepository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email
func (r *PostgresUserRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByProfilePic retrieves the user referencing a stored avatar file
func (r *PostgresUserRepository) GetUserByProfilePic(ref string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("profile_pic = ?", ref).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser updates an existing user
func (r *PostgresUserRepository) UpdateUser(user *models.User) error {
	return r.db.Save(user).Error
}

// UpdateUserFields applies a partial update to a user
func (r *PostgresUserRepository) UpdateUserFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Updates(fields).Error
}

// DeleteUser deletes a user and everything they own or participate in:
// posts (with their comments and likes), authored comments (with replies),
// likes, follow edges in both directions and follow requests in both
// directions. All of it runs in one transaction.
func (r *PostgresUserRepository) DeleteUser(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		ownPosts := func() *gorm.DB {
			return tx.Session(&gorm.Session{NewDB: true}).Model(&models.Post{}).Select("id").Where("author_id = ?", id)
		}

		// Dependents of the user's posts.
		if err := tx.Where("post_id IN (?)", ownPosts()).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id IN (?)", ownPosts()).Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		// Replies under comments the user authored elsewhere.
		ownComments := tx.Session(&gorm.Session{NewDB: true}).Model(&models.Comment{}).Select("id").Where("author_id = ?", id)
		if err := tx.Where("parent_id IN (?)", ownComments).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("author_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("follower_id = ? OR following_id = ?", id, id).Delete(&models.Follow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("sender_id = ? OR receiver_id = ?", id, id).Delete(&models.FollowRequest{}).Error; err != nil {
			return err
		}
		if err := tx.Where("author_id = ?", id).Delete(&models.Post{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
}

// SearchUsers searches for users by username, fullname or description
// (case-insensitive substring). An empty query returns all users.
func (r *PostgresUserRepository) SearchUsers(query string) ([]models.User, error) {
	var users []models.User
	if query == "" {
		if err := r.db.Find(&users).Error; err != nil {
			return nil, err
		}
		return users, nil
	}
	pattern := "%" + query + "%"
	err := r.db.Where(
		"LOWER(username) LIKE LOWER(?) OR LOWER(fullname) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)",
		pattern, pattern, pattern,
	).Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
