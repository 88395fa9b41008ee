package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrMovieNotFound is returned when no row matches the given id.
	ErrMovieNotFound = errors.New("movie not found")
	// ErrDuplicateTitle is returned when the unique title index rejects a write.
	ErrDuplicateTitle = errors.New("movie title already exists")
)

// uniqueViolation is the Postgres SQLSTATE for unique_violation.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
