package services

import (
	"testing"
	"time"

	"github.com/Dhruv9449/Chitros/internal/apperrors"
	"github.com/Dhruv9449/Chitros/internal/models"
	"github.com/Dhruv9449/Chitros/internal/repositories"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ContentServiceSuite struct {
	suite.Suite
	db      *gorm.DB
	service *ContentService

	alice *models.User // follows bob
	bob   *models.User
	carol *models.User // follows nobody
}

func TestContentServiceSuite(t *testing.T) {
	suite.Run(t, new(ContentServiceSuite))
}

func (s *ContentServiceSuite) SetupTest() {
	s.db = newTestDB(s.T())
	postRepo := repositories.NewPostgresPostRepository(s.db)
	commentRepo := repositories.NewPostgresCommentRepository(s.db)
	likeRepo := repositories.NewPostgresLikeRepository(s.db)
	followRepo := repositories.NewPostgresFollowRepository(s.db)
	s.service = NewContentService(postRepo, commentRepo, likeRepo, followRepo)

	s.alice = createUser(s.T(), s.db, "alice")
	s.bob = createUser(s.T(), s.db, "bob")
	s.carol = createUser(s.T(), s.db, "carol")

	s.Require().NoError(s.db.Create(&models.Follow{FollowerID: s.alice.ID, FollowingID: s.bob.ID}).Error)
}

func (s *ContentServiceSuite) TestCreatePost() {
	s.Run("published defaults to true", func() {
		post, err := s.service.CreatePost(s.bob.ID, "media/posts/a.jpg", models.CreatePostRequest{})
		s.NoError(err)
		s.True(post.Published)
		s.Equal(s.bob.ID, post.AuthorID)
	})

	s.Run("explicit unpublished is kept", func() {
		published := false
		post, err := s.service.CreatePost(s.bob.ID, "media/posts/b.jpg", models.CreatePostRequest{Published: &published})
		s.NoError(err)
		s.False(post.Published)
	})
}

func (s *ContentServiceSuite) TestGetPost() {
	published := createPost(s.T(), s.db, s.bob.ID, true, time.Now())
	unpublished := createPost(s.T(), s.db, s.bob.ID, false, time.Now())

	s.Run("author sees own unpublished post", func() {
		_, err := s.service.GetPost(s.bob.ID, unpublished.ID)
		s.NoError(err)
	})

	s.Run("follower sees published post", func() {
		_, err := s.service.GetPost(s.alice.ID, published.ID)
		s.NoError(err)
	})

	s.Run("follower cannot see unpublished post", func() {
		_, err := s.service.GetPost(s.alice.ID, unpublished.ID)
		s.ErrorIs(err, apperrors.ErrForbidden)
	})

	s.Run("non-follower cannot see published post", func() {
		_, err := s.service.GetPost(s.carol.ID, published.ID)
		s.ErrorIs(err, apperrors.ErrForbidden)
	})

	s.Run("missing post is not found", func() {
		_, err := s.service.GetPost(s.bob.ID, 9999)
		s.ErrorIs(err, apperrors.ErrNotFound)
	})
}

func (s *ContentServiceSuite) TestEditPost() {
	post := createPost(s.T(), s.db, s.bob.ID, true, time.Now().Add(-time.Hour))

	s.Run("only the author may edit", func() {
		_, err := s.service.EditPost(s.alice.ID, post.ID, models.UpdatePostRequest{})
		s.ErrorIs(err, apperrors.ErrForbidden)
	})

	s.Run("patch applies only non-nil fields", func() {
		description := "sunset"
		published := false
		updated, err := s.service.EditPost(s.bob.ID, post.ID, models.UpdatePostRequest{
			Description: &description,
			Published:   &published,
		})
		s.NoError(err)
		s.Equal("sunset", updated.Description)
		s.False(updated.Published)
		s.Empty(updated.Location)
		s.True(updated.ModifiedAt.After(post.ModifiedAt))
	})
}

func (s *ContentServiceSuite) TestLikes() {
	post := createPost(s.T(), s.db, s.bob.ID, true, time.Now())

	s.Run("follower may like once", func() {
		s.NoError(s.service.LikePost(s.alice.ID, post.ID))

		count, err := s.service.LikesCount(post.ID)
		s.NoError(err)
		s.Equal(int64(1), count)
	})

	s.Run("second like conflicts", func() {
		err := s.service.LikePost(s.alice.ID, post.ID)
		s.ErrorIs(err, apperrors.ErrAlreadyLiked)
	})

	s.Run("unlike then like again succeeds", func() {
		s.NoError(s.service.UnlikePost(s.alice.ID, post.ID))
		s.NoError(s.service.LikePost(s.alice.ID, post.ID))
	})

	s.Run("unlike without a like conflicts", func() {
		err := s.service.UnlikePost(s.carol.ID, post.ID)
		s.ErrorIs(err, apperrors.ErrNotLiked)
	})

	s.Run("author may like own post", func() {
		s.NoError(s.service.LikePost(s.bob.ID, post.ID))
	})

	s.Run("non-follower may not like", func() {
		err := s.service.LikePost(s.carol.ID, post.ID)
		s.ErrorIs(err, apperrors.ErrForbidden)
	})

	s.Run("missing post is not found", func() {
		err := s.service.LikePost(s.alice.ID, 9999)
		s.ErrorIs(err, apperrors.ErrNotFound)
	})
}

func (s *ContentServiceSuite) TestInteractionIgnoresPublished() {
	// An unpublished post is invisible to a follower but still open to their
	// comments and likes. Kept from the observed behavior.
	unpublished := createPost(s.T(), s.db, s.bob.ID, false, time.Now())

	_, err := s.service.GetPost(s.alice.ID, unpublished.ID)
	s.ErrorIs(err, apperrors.ErrForbidden)

	_, err = s.service.CreateComment(s.alice.ID, unpublished.ID, "nice", nil)
	s.NoError(err)

	s.NoError(s.service.LikePost(s.alice.ID, unpublished.ID))
}

func (s *ContentServiceSuite) TestComments() {
	post := createPost(s.T(), s.db, s.bob.ID, true, time.Now())

	s.Run("follower may comment", func() {
		comment, err := s.service.CreateComment(s.alice.ID, post.ID, "great shot", nil)
		s.NoError(err)
		s.Nil(comment.ParentID)
		s.Equal(post.ID, comment.PostID)
	})

	s.Run("non-follower may not comment", func() {
		_, err := s.service.CreateComment(s.carol.ID, post.ID, "hi", nil)
		s.ErrorIs(err, apperrors.ErrForbidden)
	})

	s.Run("missing post is not found", func() {
		_, err := s.service.CreateComment(s.alice.ID, 9999, "hi", nil)
		s.ErrorIs(err, apperrors.ErrNotFound)
	})
}

func (s *ContentServiceSuite) TestReplies() {
	post := createPost(s.T(), s.db, s.bob.ID, true, time.Now())
	otherPost := createPost(s.T(), s.db, s.bob.ID, true, time.Now())

	parent, err := s.service.CreateComment(s.alice.ID, post.ID, "top level", nil)
	s.Require().NoError(err)

	s.Run("reply under a top-level comment", func() {
		reply, err := s.service.CreateComment(s.bob.ID, post.ID, "thanks", &parent.ID)
		s.NoError(err)
		s.Equal(parent.ID, *reply.ParentID)
		s.Equal(post.ID, reply.PostID)
	})

	s.Run("reply to a reply is not found", func() {
		var reply models.Comment
		s.Require().NoError(s.db.Where("parent_id = ?", parent.ID).First(&reply).Error)

		_, err := s.service.CreateComment(s.alice.ID, post.ID, "deeper", &reply.ID)
		s.ErrorIs(err, apperrors.ErrNotFound)
	})

	s.Run("parent must belong to the same post", func() {
		_, err := s.service.CreateComment(s.alice.ID, otherPost.ID, "wrong post", &parent.ID)
		s.ErrorIs(err, apperrors.ErrNotFound)
	})
}

func (s *ContentServiceSuite) TestDeleteComment() {
	post := createPost(s.T(), s.db, s.bob.ID, true, time.Now())

	parent, err := s.service.CreateComment(s.alice.ID, post.ID, "top level", nil)
	s.Require().NoError(err)
	reply1, err := s.service.CreateComment(s.bob.ID, post.ID, "reply one", &parent.ID)
	s.Require().NoError(err)
	reply2, err := s.service.CreateComment(s.bob.ID, post.ID, "reply two", &parent.ID)
	s.Require().NoError(err)

	s.Run("only the comment author may delete", func() {
		err := s.service.DeleteComment(s.bob.ID, parent.ID)
		s.ErrorIs(err, apperrors.ErrForbidden)
	})

	s.Run("deleting a reply keeps parent and siblings", func() {
		s.NoError(s.service.DeleteComment(s.bob.ID, reply1.ID))

		var count int64
		s.db.Model(&models.Comment{}).Count(&count)
		s.Equal(int64(2), count)

		var remaining models.Comment
		s.NoError(s.db.First(&remaining, reply2.ID).Error)
	})

	s.Run("deleting the parent cascades to replies", func() {
		s.NoError(s.service.DeleteComment(s.alice.ID, parent.ID))

		var count int64
		s.db.Model(&models.Comment{}).Count(&count)
		s.Equal(int64(0), count)
	})
}

func (s *ContentServiceSuite) TestDeletePost() {
	post := createPost(s.T(), s.db, s.bob.ID, true, time.Now())
	_, err := s.service.CreateComment(s.alice.ID, post.ID, "comment", nil)
	s.Require().NoError(err)
	s.Require().NoError(s.service.LikePost(s.alice.ID, post.ID))

	s.Run("only the author may delete", func() {
		err := s.service.DeletePost(s.alice.ID, post.ID)
		s.ErrorIs(err, apperrors.ErrForbidden)
	})

	s.Run("delete cascades to comments and likes", func() {
		s.NoError(s.service.DeletePost(s.bob.ID, post.ID))

		var comments, likes int64
		s.db.Model(&models.Comment{}).Count(&comments)
		s.db.Model(&models.Like{}).Count(&likes)
		s.Equal(int64(0), comments)
		s.Equal(int64(0), likes)
	})
}
