package handlers

import (
	"io"
	"net/http"

	"github.com/Dhruv9449/Chitros/internal/models"
	"github.com/Dhruv9449/Chitros/internal/services"
	"github.com/Dhruv9449/Chitros/pkg/blobstore"
	"github.com/labstack/echo/v4"
)

// UserHandler handles HTTP requests related to users
type UserHandler struct {
	identity *services.IdentityService
	blobs    *blobstore.BlobStore
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(identity *services.IdentityService, blobs *blobstore.BlobStore) *UserHandler {
	return &UserHandler{identity: identity, blobs: blobs}
}

// RegisterUserRoutes registers user-related routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.GET("/users", h.SearchUsers)
	g.GET("/users/:username", h.GetUser)
	g.PUT("/users/:username", h.UpdateUser)
	g.DELETE("/users/:username", h.DeleteUser)
}

// SearchUsers searches for users by username, fullname or description.
// An empty query lists everyone.
func (h *UserHandler) SearchUsers(c echo.Context) error {
	users, err := h.identity.Search(c.QueryParam("search"))
	if err != nil {
		return httpError(err)
	}

	compact := make([]models.UserCompact, len(users))
	for i, u := range users {
		compact[i] = u.ToCompact()
	}
	return c.JSON(http.StatusOK, compact)
}

// GetUser returns the profile variant the viewer is entitled to
func (h *UserHandler) GetUser(c echo.Context) error {
	actorID := getUserIDFromContext(c)

	profile, err := h.identity.GetProfile(actorID, c.Param("username"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateUser updates the actor's own profile. Accepts multipart form data
// with optional text fields and an optional profile_pic upload.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	actorID := getUserIDFromContext(c)
	username := c.Param("username")

	req := models.UpdateUserRequest{
		Fullname:    c.FormValue("fullname"),
		Email:       c.FormValue("email"),
		Description: c.FormValue("description"),
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	var avatarRef string
	if file, err := c.FormFile("profile_pic"); err == nil {
		src, err := file.Open()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Cannot read uploaded file")
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Cannot read uploaded file")
		}
		avatarRef, err = h.blobs.SaveAvatar(data, file.Filename)
		if err != nil {
			return httpError(err)
		}
	}

	if err := h.identity.UpdateUser(actorID, username, req, avatarRef); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": "User updated"})
}

// DeleteUser deletes the actor's own account and everything it owns
func (h *UserHandler) DeleteUser(c echo.Context) error {
	actorID := getUserIDFromContext(c)

	if err := h.identity.DeleteUser(actorID, c.Param("username")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
