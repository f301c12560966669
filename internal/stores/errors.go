package stores

import (
	"errors"

	"gorm.io/gorm"
)

var ErrNotFound = gorm.ErrRecordNotFound

var (
	ErrDuplicate     = errors.New("duplicate record")
	ErrInUse         = errors.New("record is still referenced")
	ErrAlreadyCoach  = errors.New("user is already a coach")
	ErrNoCredits     = errors.New("no credits remaining")
	ErrCourseFull    = errors.New("course full")
	ErrAlreadyBooked = errors.New("already booked")
	ErrCancelFailed  = errors.New("cancel failed")
)

// translate maps gorm's translated driver errors onto store sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrInUse
	}
	return err
}
