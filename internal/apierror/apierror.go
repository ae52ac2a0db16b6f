// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import "net/http"

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// Validation wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}

// AlertError is a client-facing error carrying the entity name and a stable
// reason code ("idexists", "idnull", "idinvalid", "idnotfound", ...). Handlers
// surface the code in the X-Restaurantesw2-error header so clients can react
// programmatically without parsing the detail message.
type AlertError struct {
	Status     int    `json:"-"`
	Detail     string `json:"detail"`
	EntityName string `json:"entityName"`
	ErrorKey   string `json:"errorKey"`
}

func (e *AlertError) Error() string { return e.Detail }

func newAlert(status int, detail, entity, key string) *AlertError {
	return &AlertError{Status: status, Detail: detail, EntityName: entity, ErrorKey: key}
}

// IDExists rejects a create request that already carries an identifier.
func IDExists(entity string) *AlertError {
	return newAlert(http.StatusBadRequest, "A new "+entity+" cannot already have an ID", entity, "idexists")
}

// IDNull rejects an update whose body carries no identifier.
func IDNull(entity string) *AlertError {
	return newAlert(http.StatusBadRequest, "Invalid id", entity, "idnull")
}

// IDInvalid rejects an update whose body identifier disagrees with the path.
func IDInvalid(entity string) *AlertError {
	return newAlert(http.StatusBadRequest, "Invalid ID", entity, "idinvalid")
}

// IDNotFound rejects an update or patch that targets an unknown identifier.
func IDNotFound(entity string) *AlertError {
	return newAlert(http.StatusBadRequest, "Entity not found", entity, "idnotfound")
}

// NotFound is the 404 variant used by plain GET-by-id lookups.
func NotFound(entity string) *AlertError {
	return newAlert(http.StatusNotFound, "Entity not found", entity, "idnotfound")
}

// Constraint reports a required-field or uniqueness violation raised at save time.
func Constraint(entity, detail string) *AlertError {
	return newAlert(http.StatusBadRequest, detail, entity, "constraintviolation")
}
