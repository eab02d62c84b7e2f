package services

import (
	"github.com/Dhruv9449/Chitros/internal/models"
	"github.com/Dhruv9449/Chitros/internal/repositories"
)

// FeedPageSize is the fixed number of posts per feed page
const FeedPageSize = 10

// FeedService assembles a user's personalized feed: published posts authored
// by the user or by anyone they follow. It reads from the content and graph
// stores and mutates neither; nothing is cached between calls.
type FeedService struct {
	postRepo   repositories.PostRepository
	followRepo repositories.FollowRepository
}

// NewFeedService creates a new FeedService
func NewFeedService(postRepo repositories.PostRepository, followRepo repositories.FollowRepository) *FeedService {
	return &FeedService{postRepo: postRepo, followRepo: followRepo}
}

// GetFeed returns the actor's feed page. Pages are 1-indexed and ten posts
// long; non-positive pages clamp to the first. sort == "likes" orders by
// descending derived like count with newest-first tie-break, anything else
// orders newest first.
func (s *FeedService) GetFeed(actorID uint, page int, sort string) ([]models.Post, error) {
	if page < 1 {
		page = 1
	}

	followingIDs, err := s.followRepo.GetFollowingIDs(actorID)
	if err != nil {
		return nil, err
	}
	authorIDs := append(followingIDs, actorID)

	mode := repositories.FeedSortRecent
	if sort == "likes" {
		mode = repositories.FeedSortLikes
	}

	offset := FeedPageSize * (page - 1)
	return s.postRepo.GetFeedPosts(authorIDs, mode, offset, FeedPageSize)
}
