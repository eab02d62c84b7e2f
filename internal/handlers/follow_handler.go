package handlers

import (
	"net/http"
	"strconv"

	"github.com/Dhruv9449/Chitros/internal/models"
	"github.com/Dhruv9449/Chitros/internal/services"
	"github.com/labstack/echo/v4"
)

// FollowHandler handles follow-request and follow/unfollow HTTP requests
type FollowHandler struct {
	graph    *services.GraphService
	identity *services.IdentityService
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(graph *services.GraphService, identity *services.IdentityService) *FollowHandler {
	return &FollowHandler{graph: graph, identity: identity}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/users/:username/follow", h.Follow)
	g.DELETE("/users/:username/unfollow", h.Unfollow)
	g.GET("/requests", h.GetRequests)
	g.POST("/requests/:id/accept", h.AcceptRequest)
	g.DELETE("/requests/:id", h.DeclineRequest)
}

// Follow sends a follow request to the named user
func (h *FollowHandler) Follow(c echo.Context) error {
	actorID := getUserIDFromContext(c)

	target, err := h.identity.GetByUsername(c.Param("username"))
	if err != nil {
		return httpError(err)
	}

	if _, err := h.graph.SendFollowRequest(actorID, target.ID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": "request sent"})
}

// Unfollow removes the actor's follow edge to the named user
func (h *FollowHandler) Unfollow(c echo.Context) error {
	actorID := getUserIDFromContext(c)

	target, err := h.identity.GetByUsername(c.Param("username"))
	if err != nil {
		return httpError(err)
	}

	if err := h.graph.Unfollow(actorID, target.ID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetRequests lists the actor's incoming follow requests with their senders
func (h *FollowHandler) GetRequests(c echo.Context) error {
	actorID := getUserIDFromContext(c)

	requests, err := h.graph.PendingRequests(actorID)
	if err != nil {
		return httpError(err)
	}

	response := make([]models.FollowRequestResponse, len(requests))
	for i, req := range requests {
		response[i] = models.FollowRequestResponse{FollowRequest: req}
		if sender, err := h.identity.GetByID(req.SenderID); err == nil {
			response[i].Sender = sender.ToCompact()
		}
	}
	return c.JSON(http.StatusOK, response)
}

// AcceptRequest accepts an incoming follow request
func (h *FollowHandler) AcceptRequest(c echo.Context) error {
	actorID := getUserIDFromContext(c)

	requestID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request ID")
	}

	if err := h.graph.AcceptRequest(uint(requestID), actorID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": "request accepted"})
}

// DeclineRequest declines an incoming follow request
func (h *FollowHandler) DeclineRequest(c echo.Context) error {
	actorID := getUserIDFromContext(c)

	requestID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request ID")
	}

	if err := h.graph.DeclineRequest(uint(requestID), actorID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
