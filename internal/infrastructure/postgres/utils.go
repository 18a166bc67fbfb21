package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos de error de PostgreSQL que los adaptadores traducen a errores de
// dominio.
const codeUniqueViolation = "23505"

// isUniqueViolation reporta si err es una violación de constraint único:
// scan code repetido, CNPJ repetido o número de nota duplicado por proveedor.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}
