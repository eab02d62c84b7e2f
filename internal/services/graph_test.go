package services

import (
	"testing"

	"github.com/Dhruv9449/Chitros/internal/apperrors"
	"github.com/Dhruv9449/Chitros/internal/models"
	"github.com/Dhruv9449/Chitros/internal/repositories"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type GraphServiceSuite struct {
	suite.Suite
	db          *gorm.DB
	followRepo  repositories.FollowRepository
	requestRepo repositories.FollowRequestRepository
	service     *GraphService

	alice *models.User
	bob   *models.User
}

func TestGraphServiceSuite(t *testing.T) {
	suite.Run(t, new(GraphServiceSuite))
}

func (s *GraphServiceSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.followRepo = repositories.NewPostgresFollowRepository(s.db)
	s.requestRepo = repositories.NewPostgresFollowRequestRepository(s.db)
	s.service = NewGraphService(s.followRepo, s.requestRepo)

	s.alice = createUser(s.T(), s.db, "alice")
	s.bob = createUser(s.T(), s.db, "bob")
}

func (s *GraphServiceSuite) TestSendFollowRequest() {
	s.Run("creates exactly one pending request", func() {
		req, err := s.service.SendFollowRequest(s.alice.ID, s.bob.ID)
		s.NoError(err)
		s.NotNil(req)

		pending, err := s.service.PendingRequests(s.bob.ID)
		s.NoError(err)
		s.Len(pending, 1)
		s.Equal(s.alice.ID, pending[0].SenderID)
	})

	s.Run("repeat request conflicts", func() {
		_, err := s.service.SendFollowRequest(s.alice.ID, s.bob.ID)
		s.ErrorIs(err, apperrors.ErrConflict)
		s.ErrorIs(err, apperrors.ErrDuplicateRequest)
	})

	s.Run("self request rejected", func() {
		_, err := s.service.SendFollowRequest(s.alice.ID, s.alice.ID)
		s.ErrorIs(err, apperrors.ErrSelfReference)
	})
}

func (s *GraphServiceSuite) TestAcceptRequest() {
	req, err := s.service.SendFollowRequest(s.alice.ID, s.bob.ID)
	s.Require().NoError(err)

	s.Run("only the receiver may accept", func() {
		err := s.service.AcceptRequest(req.ID, s.alice.ID)
		s.ErrorIs(err, apperrors.ErrForbidden)
	})

	s.Run("accept creates the edge and consumes the request", func() {
		s.NoError(s.service.AcceptRequest(req.ID, s.bob.ID))

		following, err := s.service.IsFollowing(s.alice.ID, s.bob.ID)
		s.NoError(err)
		s.True(following)

		// The edge is directed: bob does not follow alice.
		reverse, err := s.service.IsFollowing(s.bob.ID, s.alice.ID)
		s.NoError(err)
		s.False(reverse)

		pending, err := s.service.PendingRequests(s.bob.ID)
		s.NoError(err)
		s.Empty(pending)
	})

	s.Run("accepting a consumed request is not found", func() {
		err := s.service.AcceptRequest(req.ID, s.bob.ID)
		s.ErrorIs(err, apperrors.ErrNotFound)
	})

	s.Run("requesting an existing edge conflicts", func() {
		_, err := s.service.SendFollowRequest(s.alice.ID, s.bob.ID)
		s.ErrorIs(err, apperrors.ErrAlreadyFollowing)
	})
}

func (s *GraphServiceSuite) TestDeclineRequest() {
	req, err := s.service.SendFollowRequest(s.alice.ID, s.bob.ID)
	s.Require().NoError(err)

	s.Run("only the receiver may decline", func() {
		err := s.service.DeclineRequest(req.ID, s.alice.ID)
		s.ErrorIs(err, apperrors.ErrForbidden)
	})

	s.Run("decline removes the request without an edge", func() {
		s.NoError(s.service.DeclineRequest(req.ID, s.bob.ID))

		following, err := s.service.IsFollowing(s.alice.ID, s.bob.ID)
		s.NoError(err)
		s.False(following)

		pending, err := s.service.PendingRequests(s.bob.ID)
		s.NoError(err)
		s.Empty(pending)
	})

	s.Run("declined sender may request again", func() {
		_, err := s.service.SendFollowRequest(s.alice.ID, s.bob.ID)
		s.NoError(err)
	})
}

func (s *GraphServiceSuite) TestUnfollow() {
	req, err := s.service.SendFollowRequest(s.alice.ID, s.bob.ID)
	s.Require().NoError(err)
	s.Require().NoError(s.service.AcceptRequest(req.ID, s.bob.ID))

	s.Run("unfollow removes the edge", func() {
		s.NoError(s.service.Unfollow(s.alice.ID, s.bob.ID))

		following, err := s.service.IsFollowing(s.alice.ID, s.bob.ID)
		s.NoError(err)
		s.False(following)
	})

	s.Run("unfollow without an edge conflicts", func() {
		err := s.service.Unfollow(s.alice.ID, s.bob.ID)
		s.ErrorIs(err, apperrors.ErrNotFollowing)
	})

	s.Run("re-request goes through the request workflow again", func() {
		_, err := s.service.SendFollowRequest(s.alice.ID, s.bob.ID)
		s.NoError(err)

		pending, err := s.service.PendingRequests(s.bob.ID)
		s.NoError(err)
		s.Len(pending, 1)
	})
}

func (s *GraphServiceSuite) TestPendingRequestsOrder() {
	carol := createUser(s.T(), s.db, "carol")
	dave := createUser(s.T(), s.db, "dave")

	for _, sender := range []*models.User{s.alice, carol, dave} {
		_, err := s.service.SendFollowRequest(sender.ID, s.bob.ID)
		s.Require().NoError(err)
	}

	pending, err := s.service.PendingRequests(s.bob.ID)
	s.NoError(err)
	s.Require().Len(pending, 3)
	s.Equal(s.alice.ID, pending[0].SenderID)
	s.Equal(carol.ID, pending[1].SenderID)
	s.Equal(dave.ID, pending[2].SenderID)
}
