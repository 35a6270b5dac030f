package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation detecta violaciones de constraint único (23505).
func isUniqueViolation(err error) bool {
	return pgCode(err) == "23505"
}

// isForeignKeyViolation detecta referencias a filas inexistentes (23503).
// Ocurre si un artículo o modelo referenciado se borró entre la validación
// del caso de uso y el insert.
func isForeignKeyViolation(err error) bool {
	return pgCode(err) == "23503"
}
