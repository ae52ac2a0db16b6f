// Package dto defines the request/response shapes of the CRUD API. Patch
// request types implement the merge-patch contract: only non-nil fields
// overwrite the target, absence always means "no change", never "clear".
package dto

// EntityRef references a relational entity by its numeric surrogate key.
type EntityRef struct {
	ID int64 `json:"id" validate:"required"`
}

// DocumentRef references a document entity by its opaque string identifier.
type DocumentRef struct {
	ID string `json:"id" validate:"required"`
}
