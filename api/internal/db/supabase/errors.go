package supabase

import (
	"regexp"

	"muebleria/api/internal/core/domain"
)

// The REST layer flattens store errors into "(code) message" strings.
// Recover the code so operators can grep for permission-denied (42501),
// constraint violations (23xxx) and friends.
var storeErrPattern = regexp.MustCompile(`^\(([0-9A-Za-z]+)\)\s*(.*)$`)

func mapStoreError(err error) *domain.PersistenceError {
	pe := &domain.PersistenceError{Message: err.Error(), Err: err}
	if m := storeErrPattern.FindStringSubmatch(err.Error()); m != nil {
		pe.Code = m[1]
		pe.Message = m[2]
	}
	return pe
}
