// Package apperrors defines the failure kinds the core services return.
// Handlers translate them to HTTP statuses with errors.Is; nothing below the
// presentation layer knows about transport codes.
package apperrors

import (
	"errors"
	"fmt"
)

// Failure kinds. Every service error wraps exactly one of these.
var (
	ErrNotFound             = errors.New("not found")
	ErrForbidden            = errors.New("forbidden")
	ErrConflict             = errors.New("conflict")
	ErrUnauthenticated      = errors.New("unauthenticated")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrSelfReference        = errors.New("self reference")
)

// Named failures surfaced by the graph and content services.
var (
	ErrAlreadyFollowing  = fmt.Errorf("already following: %w", ErrConflict)
	ErrDuplicateRequest  = fmt.Errorf("request already sent: %w", ErrConflict)
	ErrNotFollowing      = fmt.Errorf("not following: %w", ErrConflict)
	ErrAlreadyLiked      = fmt.Errorf("already liked: %w", ErrConflict)
	ErrNotLiked          = fmt.Errorf("not liked: %w", ErrConflict)
	ErrSelfFollowRequest = fmt.Errorf("cannot send yourself a request: %w", ErrSelfReference)
	ErrDuplicateIdentity = fmt.Errorf("username or email already registered: %w", ErrConflict)
)
