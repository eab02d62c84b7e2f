package handlers

import (
	"net/http"
	"strconv"

	"github.com/Dhruv9449/Chitros/internal/services"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	content *services.ContentService
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(content *services.ContentService) *LikeHandler {
	return &LikeHandler{content: content}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/like", h.LikePost)
	g.DELETE("/posts/:post_id/like", h.UnlikePost)
}

// LikePost records the actor's like on a post
func (h *LikeHandler) LikePost(c echo.Context) error {
	actorID := getUserIDFromContext(c)

	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	if err := h.content.LikePost(actorID, uint(postID)); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": "liked post"})
}

// UnlikePost removes the actor's like from a post
func (h *LikeHandler) UnlikePost(c echo.Context) error {
	actorID := getUserIDFromContext(c)

	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	if err := h.content.UnlikePost(actorID, uint(postID)); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
