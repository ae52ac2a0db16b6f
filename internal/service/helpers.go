// Package service holds the business operations behind each CRUD surface:
// identifier policy checks, relationship wiring through the relation engine,
// merge-patch application, and mapping of store failures to client errors.
package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/HenrySago1/Restaurantesw2/internal/apierror"
	"github.com/HenrySago1/Restaurantesw2/internal/repository"
)

// constraintError maps save-time store failures to the client-facing
// ConstraintViolation. Anything that is not a recognized constraint breach is
// passed through untouched so the handler can answer 500 instead of blaming
// the client.
func constraintError(entity string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apierror.Constraint(entity, "unique constraint violated for "+entity)
	}
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return apierror.Constraint(entity, "constraint violated for "+entity)
	}
	return err
}

func esNoEncontrado(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, repository.ErrNoDocumento)
}
