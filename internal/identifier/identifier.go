// Package identifier implements the identifier policy shared by every CRUD
// surface: creates must not carry a client-supplied ID, updates must carry one
// that matches the path. Numeric surrogate keys are assigned by Postgres at
// insert time; document identifiers are opaque tokens minted here.
package identifier

import (
	"github.com/google/uuid"

	"github.com/HenrySago1/Restaurantesw2/internal/apierror"
)

// ValidateNumericCreate rejects a create whose body already carries an ID.
func ValidateNumericCreate(entity string, id int64) error {
	if id != 0 {
		return apierror.IDExists(entity)
	}
	return nil
}

// ValidateStringCreate is the document-store counterpart of ValidateNumericCreate.
func ValidateStringCreate(entity string, id string) error {
	if id != "" {
		return apierror.IDExists(entity)
	}
	return nil
}

// ValidateNumericUpdate enforces the PUT/PATCH id rules: the body must carry
// an ID and it must equal the path segment.
func ValidateNumericUpdate(entity string, pathID, bodyID int64) error {
	if bodyID == 0 {
		return apierror.IDNull(entity)
	}
	if bodyID != pathID {
		return apierror.IDInvalid(entity)
	}
	return nil
}

// ValidateStringUpdate is the document-store counterpart of ValidateNumericUpdate.
func ValidateStringUpdate(entity string, pathID, bodyID string) error {
	if bodyID == "" {
		return apierror.IDNull(entity)
	}
	if bodyID != pathID {
		return apierror.IDInvalid(entity)
	}
	return nil
}

// NewDocumentID mints an opaque, globally-unique identifier for document
// entities. Callers never sequence these; uniqueness is the only guarantee.
func NewDocumentID() string {
	return uuid.NewString()
}
