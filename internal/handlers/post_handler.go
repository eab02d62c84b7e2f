package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/Dhruv9449/Chitros/internal/models"
	"github.com/Dhruv9449/Chitros/internal/repositories"
	"github.com/Dhruv9449/Chitros/internal/services"
	"github.com/Dhruv9449/Chitros/pkg/blobstore"
	"github.com/labstack/echo/v4"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	content     *services.ContentService
	identity    *services.IdentityService
	commentRepo repositories.CommentRepository
	likeRepo    repositories.LikeRepository
	blobs       *blobstore.BlobStore
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(
	content *services.ContentService,
	identity *services.IdentityService,
	commentRepo repositories.CommentRepository,
	likeRepo repositories.LikeRepository,
	blobs *blobstore.BlobStore,
) *PostHandler {
	return &PostHandler{
		content:     content,
		identity:    identity,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		blobs:       blobs,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts/:id", h.GetPost)
	g.PUT("/posts/:id", h.EditPost)
	g.DELETE("/posts/:id", h.DeletePost)
}

// CreatePost creates a post from a multipart form with an image and optional
// description, published and location fields
func (h *PostHandler) CreatePost(c echo.Context) error {
	actorID := getUserIDFromContext(c)

	file, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Image file is required")
	}
	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot read uploaded file")
	}
	data, err := io.ReadAll(src)
	src.Close()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot read uploaded file")
	}

	req := models.CreatePostRequest{
		Description: c.FormValue("description"),
		Location:    c.FormValue("location"),
	}
	if v := c.FormValue("published"); v != "" {
		published, err := strconv.ParseBool(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid published value")
		}
		req.Published = &published
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	imageRef, err := h.blobs.SavePostImage(data, file.Filename)
	if err != nil {
		return httpError(err)
	}

	post, err := h.content.CreatePost(actorID, imageRef, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, post)
}

// GetPost returns a post the actor may view, enriched with author, likes and
// the comment tree
func (h *PostHandler) GetPost(c echo.Context) error {
	actorID := getUserIDFromContext(c)

	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	post, err := h.content.GetPost(actorID, uint(postID))
	if err != nil {
		return httpError(err)
	}

	response, err := h.enrichPost(post)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, response)
}

// EditPost applies a patch to the actor's own post
func (h *PostHandler) EditPost(c echo.Context) error {
	actorID := getUserIDFromContext(c)

	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	var patch models.UpdatePostRequest
	if v := c.FormValue("description"); v != "" {
		patch.Description = &v
	}
	if v := c.FormValue("location"); v != "" {
		patch.Location = &v
	}
	if v := c.FormValue("published"); v != "" {
		published, err := strconv.ParseBool(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid published value")
		}
		patch.Published = &published
	}
	if err := c.Validate(&patch); err != nil {
		return err
	}

	post, err := h.content.EditPost(actorID, uint(postID), patch)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusAccepted, post)
}

// DeletePost deletes the actor's own post
func (h *PostHandler) DeletePost(c echo.Context) error {
	actorID := getUserIDFromContext(c)

	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	if err := h.content.DeletePost(actorID, uint(postID)); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// enrichPost assembles the full post response: author, likes with their
// users, comments with their replies
func (h *PostHandler) enrichPost(post *models.Post) (*models.PostResponse, error) {
	response := &models.PostResponse{Post: *post}
	if post.Author != nil {
		response.Author = post.Author.ToCompact()
	}

	likes, err := h.likeRepo.GetLikesByPostID(post.ID)
	if err != nil {
		return nil, err
	}
	response.LikesCount = int64(len(likes))
	for _, like := range likes {
		lr := models.LikeResponse{Like: like}
		if user, err := h.identity.GetByID(like.UserID); err == nil {
			lr.User = user.ToCompact()
		}
		response.Likes = append(response.Likes, lr)
	}

	comments, err := h.commentRepo.GetTopLevelCommentsByPostID(post.ID)
	if err != nil {
		return nil, err
	}
	for _, comment := range comments {
		cr := models.CommentResponse{Comment: comment}
		if user, err := h.identity.GetByID(comment.AuthorID); err == nil {
			cr.Author = user.ToCompact()
		}
		replies, err := h.commentRepo.GetReplies(comment.ID)
		if err != nil {
			return nil, err
		}
		for _, reply := range replies {
			rr := models.ReplyResponse{Comment: reply}
			if user, err := h.identity.GetByID(reply.AuthorID); err == nil {
				rr.Author = user.ToCompact()
			}
			cr.Replies = append(cr.Replies, rr)
		}
		response.Comments = append(response.Comments, cr)
	}
	return response, nil
}
