package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking. The unique and foreign key
// constraints in the schema are the source of truth for identifier
// uniqueness and owner protection; application-level checks only provide
// earlier, friendlier rejections.

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "23505") // PostgreSQL unique_violation error code
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "foreign key") ||
		strings.Contains(errMsg, "23503") // PostgreSQL foreign_key_violation error code
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}

// violatedColumn picks which of the given columns a constraint violation
// names, so the caller can pin the failure to a request field. Postgres
// includes the constraint/index name in the message, and our index names
// carry the column name.
func violatedColumn(err error, columns ...string) string {
	errMsg := strings.ToLower(err.Error())
	for _, column := range columns {
		if strings.Contains(errMsg, column) {
			return column
		}
	}

	return ""
}
