package handlers

import (
	"net/http"
	"strconv"

	"github.com/Dhruv9449/Chitros/internal/models"
	"github.com/Dhruv9449/Chitros/internal/services"
	"github.com/labstack/echo/v4"
)

// CommentHandler handles HTTP requests related to comments and replies
type CommentHandler struct {
	content *services.ContentService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(content *services.ContentService) *CommentHandler {
	return &CommentHandler{content: content}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/comments", h.CreateComment)
	g.POST("/posts/:post_id/comments/:comment_id/replies", h.CreateReply)
	g.DELETE("/comments/:id", h.DeleteComment)
}

// CreateComment creates a top-level comment on a post
func (h *CommentHandler) CreateComment(c echo.Context) error {
	return h.create(c, nil)
}

// CreateReply creates a reply under a top-level comment of the post
func (h *CommentHandler) CreateReply(c echo.Context) error {
	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid comment ID")
	}
	parentID := uint(commentID)
	return h.create(c, &parentID)
}

func (h *CommentHandler) create(c echo.Context, parentID *uint) error {
	actorID := getUserIDFromContext(c)

	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.content.CreateComment(actorID, uint(postID), req.Content, parentID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, comment)
}

// DeleteComment deletes the actor's own comment or reply
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	actorID := getUserIDFromContext(c)

	commentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid comment ID")
	}

	if err := h.content.DeleteComment(actorID, uint(commentID)); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
