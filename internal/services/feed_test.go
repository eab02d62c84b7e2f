package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/Dhruv9449/Chitros/internal/models"
	"github.com/Dhruv9449/Chitros/internal/repositories"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type FeedServiceSuite struct {
	suite.Suite
	db      *gorm.DB
	service *FeedService

	reader *models.User // follows author
	author *models.User
	other  *models.User // not followed by reader
}

func TestFeedServiceSuite(t *testing.T) {
	suite.Run(t, new(FeedServiceSuite))
}

func (s *FeedServiceSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.service = NewFeedService(
		repositories.NewPostgresPostRepository(s.db),
		repositories.NewPostgresFollowRepository(s.db),
	)

	s.reader = createUser(s.T(), s.db, "reader")
	s.author = createUser(s.T(), s.db, "author")
	s.other = createUser(s.T(), s.db, "other")

	s.Require().NoError(s.db.Create(&models.Follow{FollowerID: s.reader.ID, FollowingID: s.author.ID}).Error)
}

func (s *FeedServiceSuite) TestPagination() {
	base := time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		post := createPost(s.T(), s.db, s.author.ID, true, base.Add(time.Duration(i)*time.Minute))
		s.Require().NoError(s.db.Model(post).Update("description", fmt.Sprintf("post %d", i)).Error)
	}

	page1, err := s.service.GetFeed(s.reader.ID, 1, "")
	s.Require().NoError(err)
	s.Require().Len(page1, 10)
	s.Equal("post 24", page1[0].Description)
	s.Equal("post 15", page1[9].Description)

	page2, err := s.service.GetFeed(s.reader.ID, 2, "")
	s.Require().NoError(err)
	s.Require().Len(page2, 10)
	s.Equal("post 14", page2[0].Description)

	page3, err := s.service.GetFeed(s.reader.ID, 3, "")
	s.Require().NoError(err)
	s.Require().Len(page3, 5)
	s.Equal("post 0", page3[4].Description)

	page4, err := s.service.GetFeed(s.reader.ID, 4, "")
	s.Require().NoError(err)
	s.Empty(page4)
}

func (s *FeedServiceSuite) TestPageClamping() {
	createPost(s.T(), s.db, s.author.ID, true, time.Now())

	for _, page := range []int{0, -3} {
		posts, err := s.service.GetFeed(s.reader.ID, page, "")
		s.NoError(err)
		s.Len(posts, 1)
	}
}

func (s *FeedServiceSuite) TestFeedScope() {
	base := time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)
	own := createPost(s.T(), s.db, s.reader.ID, true, base)
	followed := createPost(s.T(), s.db, s.author.ID, true, base.Add(time.Minute))
	createPost(s.T(), s.db, s.author.ID, false, base.Add(2*time.Minute)) // unpublished
	createPost(s.T(), s.db, s.other.ID, true, base.Add(3*time.Minute))  // not followed

	posts, err := s.service.GetFeed(s.reader.ID, 1, "")
	s.Require().NoError(err)
	s.Require().Len(posts, 2)
	s.Equal(followed.ID, posts[0].ID)
	s.Equal(own.ID, posts[1].ID)
}

func (s *FeedServiceSuite) TestSortByLikes() {
	base := time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)
	once := createPost(s.T(), s.db, s.author.ID, true, base)
	twice := createPost(s.T(), s.db, s.author.ID, true, base.Add(time.Minute))
	never := createPost(s.T(), s.db, s.author.ID, true, base.Add(2*time.Minute))
	tied := createPost(s.T(), s.db, s.author.ID, true, base.Add(3*time.Minute))

	s.Require().NoError(s.db.Create(&models.Like{UserID: s.reader.ID, PostID: twice.ID}).Error)
	s.Require().NoError(s.db.Create(&models.Like{UserID: s.author.ID, PostID: twice.ID}).Error)
	s.Require().NoError(s.db.Create(&models.Like{UserID: s.reader.ID, PostID: once.ID}).Error)
	s.Require().NoError(s.db.Create(&models.Like{UserID: s.reader.ID, PostID: tied.ID}).Error)

	posts, err := s.service.GetFeed(s.reader.ID, 1, "likes")
	s.Require().NoError(err)
	s.Require().Len(posts, 4)
	s.Equal(twice.ID, posts[0].ID)
	// one like each, newest first
	s.Equal(tied.ID, posts[1].ID)
	s.Equal(once.ID, posts[2].ID)
	s.Equal(never.ID, posts[3].ID)
}
