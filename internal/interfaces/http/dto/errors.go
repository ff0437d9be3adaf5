package dto

import "net/http"

// Error codes surfaced by the API. Domain error codes pass through
// unchanged so the frontend can branch on them.
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeValidation is used when domain validation rejects the input
	ErrCodeValidation = "VALIDATION_FAILED"
	// ErrCodeEmptyCart is used when checkout is attempted on an empty cart
	ErrCodeEmptyCart = "EMPTY_CART"
	// ErrCodeInsufficientStock is used when a commit would drive stock negative
	ErrCodeInsufficientStock = "INSUFFICIENT_STOCK"
	// ErrCodeImportInvalid is used when a backup document fails the import contract
	ErrCodeImportInvalid = "IMPORT_INVALID"
	// ErrCodeInternal is used for unexpected server errors
	ErrCodeInternal = "INTERNAL_ERROR"
)

// errorCodeHTTPStatus maps error codes to HTTP status codes
var errorCodeHTTPStatus = map[string]int{
	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeValidation: http.StatusBadRequest,
	// Checking out an empty cart is a request the client should never
	// have made
	ErrCodeEmptyCart: http.StatusBadRequest,
	ErrCodeNotFound:  http.StatusNotFound,
	// Well-formed requests whose content cannot be processed
	ErrCodeImportInvalid:     http.StatusUnprocessableEntity,
	ErrCodeInsufficientStock: http.StatusUnprocessableEntity,
	ErrCodeInternal:          http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code,
// defaulting to 500 for unknown codes
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
