package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// sqlStateUniqueViolation clave duplicada.
const sqlStateUniqueViolation = "23505"

// isUniqueViolation true si err envuelve una violación de clave única de PostgreSQL.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == sqlStateUniqueViolation
}
