package handlers

import (
	"errors"
	"net/http"

	"github.com/Dhruv9449/Chitros/internal/apperrors"
	"github.com/Dhruv9449/Chitros/internal/models"
	"github.com/labstack/echo/v4"
)

// getUserIDFromContext returns the authenticated actor's ID, or 0 when the
// request carries no identity
func getUserIDFromContext(c echo.Context) uint {
	if claims, ok := c.Get("user").(*models.JwtCustomClaims); ok {
		return claims.UserID
	}
	if id, ok := c.Get("user_id").(uint); ok {
		return id
	}
	return 0
}

// httpError translates a service failure kind to its transport status
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, apperrors.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, apperrors.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, apperrors.ErrUnauthenticated):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, apperrors.ErrUnsupportedMediaType):
		return echo.NewHTTPError(http.StatusUnsupportedMediaType, err.Error())
	case errors.Is(err, apperrors.ErrSelfReference):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
