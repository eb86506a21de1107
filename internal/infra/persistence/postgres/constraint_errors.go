package postgres

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Postgres constraint failures reach us through gorm's translated errors.
// Repositories use these checks to report them meaningfully, for example a
// verification row pointing at a user that no longer exists, or a seed run
// inserting the same question twice.

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}
