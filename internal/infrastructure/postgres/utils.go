package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE que se traducen a errores de dominio.
const (
	foreignKeyViolation    = "23503"
	checkViolation         = "23514"
	numericValueOutOfRange = "22003"
)

// isForeignKeyViolation verifica si un error es una violación de clave foránea (23503).
func isForeignKeyViolation(err error) bool {
	return hasCode(err, foreignKeyViolation)
}

// isCheckViolation verifica si un error es una violación de CHECK (23514).
func isCheckViolation(err error) bool {
	return hasCode(err, checkViolation)
}

// isNumericOutOfRange verifica si un valor no cabe en la columna numérica (22003).
func isNumericOutOfRange(err error) bool {
	return hasCode(err, numericValueOutOfRange)
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}
