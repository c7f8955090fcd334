package database

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
)

const (
	// pqUniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
	pqUniqueViolation = "23505"

	// mysqlDuplicateEntry is the MySQL error number for ER_DUP_ENTRY.
	mysqlDuplicateEntry = 1062
)

// IsUniqueViolation reports whether err is a unique constraint violation from
// either supported driver.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDuplicateEntry
	}

	return false
}
