package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

func isPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// isOverlapViolation matches the appointments_no_overlap exclusion
// constraint, the database-level backstop for the booking invariant.
func isOverlapViolation(err error) bool {
	return isPgCode(err, pgExclusionViolation)
}

func isUniqueViolation(err error) bool {
	return isPgCode(err, pgUniqueViolation)
}
