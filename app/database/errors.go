package database

import (
	"errors"

	"github.com/lib/pq"

	"github.com/phhgsi/a.s.academy-sub000/app/models"
)

// isUniqueViolation reports whether err is a Postgres unique_violation,
// optionally on a specific constraint. The constraint is the authoritative
// guard under concurrency; pre-checks in this package are only a fast path.
func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return constraint == "" || pqErr.Constraint == constraint
	}
	return false
}

func storageErr(op string, err error) error {
	return &models.StorageError{Op: op, Err: err}
}
