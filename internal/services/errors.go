package services

import (
	"errors"

	"github.com/Dhruv9449/Chitros/internal/apperrors"
	"gorm.io/gorm"
)

// asNotFound maps a missing row to the NotFound kind, leaving other storage
// errors untouched
func asNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound
	}
	return err
}

// asConflict maps a unique-constraint violation to the given Conflict kind.
// Pre-checks catch duplicates in the common path; this catches the racing
// create that slips past them.
func asConflict(err, kind error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return kind
	}
	return err
}
