package services

import (
	"errors"

	"github.com/Dhruv9449/Chitros/internal/apperrors"
	"github.com/Dhruv9449/Chitros/internal/models"
	"github.com/Dhruv9449/Chitros/internal/repositories"
	"gorm.io/gorm"
)

// GraphService owns the follow relation and the follow-request workflow.
//
// Per ordered pair (A, B) the states are NONE, REQUESTED and FOLLOWING.
// SendFollowRequest moves NONE -> REQUESTED, AcceptRequest moves REQUESTED ->
// FOLLOWING, DeclineRequest and Unfollow move back to NONE. There is no
// FOLLOWING -> REQUESTED transition; A must unfollow and re-request.
type GraphService struct {
	followRepo  repositories.FollowRepository
	requestRepo repositories.FollowRequestRepository
}

// NewGraphService creates a new GraphService
func NewGraphService(followRepo repositories.FollowRepository, requestRepo repositories.FollowRequestRepository) *GraphService {
	return &GraphService{followRepo: followRepo, requestRepo: requestRepo}
}

// SendFollowRequest creates a pending request sender -> receiver
func (s *GraphService) SendFollowRequest(senderID, receiverID uint) (*models.FollowRequest, error) {
	if senderID == receiverID {
		return nil, apperrors.ErrSelfFollowRequest
	}

	following, err := s.followRepo.IsFollowing(senderID, receiverID)
	if err != nil {
		return nil, err
	}
	if following {
		return nil, apperrors.ErrAlreadyFollowing
	}

	if _, err := s.requestRepo.GetRequestBySenderReceiver(senderID, receiverID); err == nil {
		return nil, apperrors.ErrDuplicateRequest
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	req := &models.FollowRequest{SenderID: senderID, ReceiverID: receiverID}
	if err := s.requestRepo.CreateRequest(req); err != nil {
		return nil, asConflict(err, apperrors.ErrDuplicateRequest)
	}
	return req, nil
}

// AcceptRequest consumes a pending request into a follow edge. Only the
// receiver may accept.
func (s *GraphService) AcceptRequest(requestID, actorID uint) error {
	req, err := s.requestRepo.GetRequestByID(requestID)
	if err != nil {
		return asNotFound(err)
	}
	if req.ReceiverID != actorID {
		return apperrors.ErrForbidden
	}
	if err := s.requestRepo.ConsumeRequest(req); err != nil {
		return asConflict(err, apperrors.ErrAlreadyFollowing)
	}
	return nil
}

// DeclineRequest deletes a pending request without creating an edge. Only the
// receiver may decline.
func (s *GraphService) DeclineRequest(requestID, actorID uint) error {
	req, err := s.requestRepo.GetRequestByID(requestID)
	if err != nil {
		return asNotFound(err)
	}
	if req.ReceiverID != actorID {
		return apperrors.ErrForbidden
	}
	return s.requestRepo.DeleteRequest(req.ID)
}

// Unfollow removes the follower -> followee edge
func (s *GraphService) Unfollow(followerID, followeeID uint) error {
	removed, err := s.followRepo.DeleteFollow(followerID, followeeID)
	if err != nil {
		return err
	}
	if !removed {
		return apperrors.ErrNotFollowing
	}
	return nil
}

// PendingRequests lists a user's incoming requests in insertion order. The
// listing is unbounded; per-user volume is assumed small.
func (s *GraphService) PendingRequests(userID uint) ([]models.FollowRequest, error) {
	return s.requestRepo.GetRequestsByReceiver(userID)
}

// IsFollowing reports whether the follower -> followee edge exists
func (s *GraphService) IsFollowing(followerID, followeeID uint) (bool, error) {
	return s.followRepo.IsFollowing(followerID, followeeID)
}
