package handlers

import (
	"net/http"
	"time"

	"github.com/Dhruv9449/Chitros/internal/models"
	"github.com/Dhruv9449/Chitros/internal/services"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

// AuthHandler handles signup and login
type AuthHandler struct {
	identity  *services.IdentityService
	jwtSecret string
	tokenTTL  time.Duration
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(identity *services.IdentityService, jwtSecret string, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{identity: identity, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// RegisterAuthRoutes registers authentication-related routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/signup", h.Signup)
	g.POST("/login", h.Login)
}

// Signup registers a new user
func (h *AuthHandler) Signup(c echo.Context) error {
	var req models.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.identity.Signup(req)
	if err != nil {
		return httpError(err)
	}

	token, err := h.generateJWT(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token after signup")
	}
	return c.JSON(http.StatusCreated, echo.Map{"access_token": token, "token_type": "bearer"})
}

// Login authenticates a username/password pair and issues a JWT
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.identity.Authenticate(req.Username, req.Password)
	if err != nil {
		return httpError(err)
	}

	token, err := h.generateJWT(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token")
	}
	return c.JSON(http.StatusOK, echo.Map{"access_token": token, "token_type": "bearer"})
}

// generateJWT generates a signed token for a given user
func (h *AuthHandler) generateJWT(user *models.User) (string, error) {
	claims := &models.JwtCustomClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(h.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.jwtSecret))
}
