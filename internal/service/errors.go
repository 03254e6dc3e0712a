package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Error taxonomy shared by the diary store and the recipe aggregator.
// Handlers map these onto HTTP statuses with errors.Is.
var (
	// ErrNotFound signals that the requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateDate signals a uniqueness violation on the entry date.
	ErrDuplicateDate = errors.New("entry for date already exists")
	// ErrPersistence signals an unexpected storage failure.
	ErrPersistence = errors.New("persistence failure")
	// ErrValidation signals malformed input.
	ErrValidation = errors.New("invalid input")
	// ErrTranslationFailed signals a failed call to the translation provider.
	ErrTranslationFailed = errors.New("translation failed")
	// ErrProvider signals a failed call to the recipe provider.
	ErrProvider = errors.New("recipe provider failure")
)

// isDuplicateKey reports whether err is a uniqueness violation. GORM's error
// translation covers postgres and sqlite; the string checks catch drivers
// that predate it.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
