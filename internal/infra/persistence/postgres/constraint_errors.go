package postgres

import (
	"strings"

	"lowkey/internal/errors"

	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes.
const (
	sqlStateNotNullViolation = "23502"
	sqlStateCheckViolation   = "23514"
	sqlStateNumericOverflow  = "22003"
)

// isCheckConstraintViolation reports a violated CHECK, such as a negative price
// or open hours outside 0-24.
func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return strings.Contains(err.Error(), sqlStateCheckViolation)
}

func isNotNullConstraintViolation(err error) bool {
	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "null value") || strings.Contains(msg, sqlStateNotNullViolation)
}

// isNumericOverflow reports a value too large for its numeric column.
func isNumericOverflow(err error) bool {
	return strings.Contains(err.Error(), sqlStateNumericOverflow) ||
		strings.Contains(strings.ToLower(err.Error()), "numeric field overflow")
}
