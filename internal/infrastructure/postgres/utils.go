package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation vérifie si une erreur est une violation de contrainte
// unique (23505). C'est le garde-fou autoritaire derrière les
// pré-vérifications d'unicité de la couche service.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// orderClause construit la clause ORDER BY à partir d'une PageQuery déjà
// validée par la couche service (colonne issue d'une liste blanche).
func orderClause(sortBy, sortOrder string) string {
	return fmt.Sprintf("ORDER BY %s %s", sortBy, sortOrder)
}
