package handlers

import (
	"net/http"
	"strconv"

	"github.com/Dhruv9449/Chitros/internal/models"
	"github.com/Dhruv9449/Chitros/internal/repositories"
	"github.com/Dhruv9449/Chitros/internal/services"
	"github.com/labstack/echo/v4"
)

// FeedHandler handles feed-related HTTP requests
type FeedHandler struct {
	feed     *services.FeedService
	likeRepo repositories.LikeRepository
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(feed *services.FeedService, likeRepo repositories.LikeRepository) *FeedHandler {
	return &FeedHandler{feed: feed, likeRepo: likeRepo}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed", h.GetFeed)
}

// FeedPost is a feed entry with its author, derived like count and whether
// the viewer has liked it
type FeedPost struct {
	models.Post
	Author     models.UserCompact `json:"author"`
	LikesCount int64              `json:"likes_count"`
	IsLiked    bool               `json:"is_liked"`
}

// GetFeed returns one page of the actor's feed
func (h *FeedHandler) GetFeed(c echo.Context) error {
	actorID := getUserIDFromContext(c)

	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	sort := c.QueryParam("sort")

	posts, err := h.feed.GetFeed(actorID, page, sort)
	if err != nil {
		return httpError(err)
	}

	feedPosts := make([]FeedPost, len(posts))
	for i, p := range posts {
		feedPosts[i] = FeedPost{Post: p}
		if p.Author != nil {
			feedPosts[i].Author = p.Author.ToCompact()
		}
		count, err := h.likeRepo.GetLikesCountByPostID(p.ID)
		if err != nil {
			return httpError(err)
		}
		feedPosts[i].LikesCount = count
		liked, err := h.likeRepo.HasUserLikedPost(p.ID, actorID)
		if err != nil {
			return httpError(err)
		}
		feedPosts[i].IsLiked = liked
	}

	return c.JSON(http.StatusOK, echo.Map{
		"posts": feedPosts,
		"page":  page,
	})
}
