package helper

import "strings"

// IsUniqueViolation mendeteksi pelanggaran unique constraint dari driver.
// Constraint di storage adalah backstop resmi; pre-check di controller hanya fast path.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "sqlstate 23505")
}
