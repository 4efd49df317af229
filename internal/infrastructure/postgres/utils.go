package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isTransient clasifica errores de BD que es seguro reintentar tras el
// rollback: fallos de conexión, timeouts de lock, deadlocks y fallos de
// serialización. Todo lo demás es error permanente (de validación o de datos).
func isTransient(err error) bool {
	if err == nil {
		return false
	}
	if pgconn.SafeToRetry(err) || pgconn.Timeout(err) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", // serialization_failure
			"40P01", // deadlock_detected
			"55P03", // lock_not_available
			"57014", // query_canceled
			"57P01": // admin_shutdown
			return true
		}
		// Clase 08: fallos de conexión.
		return strings.HasPrefix(pgErr.Code, "08")
	}
	return false
}
