package repositories

import (
	"github.com/Dhruv9449/Chitros/internal/models"
	"gorm.io/gorm"
)

// FollowRequestRepository defines the interface for follow-request data
// operations
type FollowRequestRepository interface {
	CreateRequest(req *models.FollowRequest) error
	GetRequestByID(id uint) (*models.FollowRequest, error)
	GetRequestBySenderReceiver(senderID, receiverID uint) (*models.FollowRequest, error)
	GetRequestsByReceiver(receiverID uint) ([]models.FollowRequest, error)
	DeleteRequest(id uint) error
	ConsumeRequest(req *models.FollowRequest) error
}

// PostgresFollowRequestRepository implements FollowRequestRepository for
// PostgreSQL
type PostgresFollowRequestRepository struct {
	db *gorm.DB
}

// NewPostgresFollowRequestRepository creates a new PostgresFollowRequestRepository
func NewPostgresFollowRequestRepository(db *gorm.DB) *PostgresFollowRequestRepository {
	return &PostgresFollowRequestRepository{db: db}
}

// CreateRequest creates a new pending follow request
func (r *PostgresFollowRequestRepository) CreateRequest(req *models.FollowRequest) error {
	return r.db.Create(req).Error
}

// GetRequestByID retrieves a follow request by ID
func (r *PostgresFollowRequestRepository) GetRequestByID(id uint) (*models.FollowRequest, error) {
	var req models.FollowRequest
	if err := r.db.First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// GetRequestBySenderReceiver retrieves the pending request for an ordered
// (sender, receiver) pair
func (r *PostgresFollowRequestRepository) GetRequestBySenderReceiver(senderID, receiverID uint) (*models.FollowRequest, error) {
	var req models.FollowRequest
	if err := r.db.Where("sender_id = ? AND receiver_id = ?", senderID, receiverID).First(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// GetRequestsByReceiver retrieves a user's incoming requests in insertion order
func (r *PostgresFollowRequestRepository) GetRequestsByReceiver(receiverID uint) ([]models.FollowRequest, error) {
	var requests []models.FollowRequest
	if err := r.db.Where("receiver_id = ?", receiverID).Order("id ASC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// DeleteRequest deletes a follow request
func (r *PostgresFollowRequestRepository) DeleteRequest(id uint) error {
	return r.db.Delete(&models.FollowRequest{}, id).Error
}

// ConsumeRequest turns an accepted request into a follow edge and removes the
// request, atomically
func (r *PostgresFollowRequestRepository) ConsumeRequest(req *models.FollowRequest) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		follow := &models.Follow{FollowerID: req.SenderID, FollowingID: req.ReceiverID}
		if err := tx.Create(follow).Error; err != nil {
			return err
		}
		return tx.Delete(&models.FollowRequest{}, req.ID).Error
	})
}
