package handlers

import (
	"net/http"

	"github.com/Dhruv9449/Chitros/internal/repositories"
	"github.com/Dhruv9449/Chitros/pkg/blobstore"
	"github.com/labstack/echo/v4"
)

// MediaHandler serves stored images back by reference. A file is only served
// when a post or user row actually references it.
type MediaHandler struct {
	postRepo repositories.PostRepository
	userRepo repositories.UserRepository
	blobs    *blobstore.BlobStore
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(postRepo repositories.PostRepository, userRepo repositories.UserRepository, blobs *blobstore.BlobStore) *MediaHandler {
	return &MediaHandler{postRepo: postRepo, userRepo: userRepo, blobs: blobs}
}

// RegisterMediaRoutes registers media-serving routes
func (h *MediaHandler) RegisterMediaRoutes(e *echo.Echo) {
	e.GET("/media/posts/:filename", h.GetPostImage)
	e.GET("/media/users/:filename", h.GetUserImage)
}

// GetPostImage serves a post image
func (h *MediaHandler) GetPostImage(c echo.Context) error {
	filename := c.Param("filename")

	if _, err := h.postRepo.GetPostByImageURL("media/posts/" + filename); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "No post found")
	}
	return c.File(h.blobs.PostImagePath(filename))
}

// GetUserImage serves a profile picture
func (h *MediaHandler) GetUserImage(c echo.Context) error {
	filename := c.Param("filename")

	if _, err := h.userRepo.GetUserByProfilePic("media/users/" + filename); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "No user found")
	}
	return c.File(h.blobs.AvatarPath(filename))
}
