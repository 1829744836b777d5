package dto

import "net/http"

// Error codes exposed by the API. Domain errors carry these codes directly;
// the table below decides the HTTP status for each.
const (
	ErrCodeInternal   = "INTERNAL_ERROR"
	ErrCodeBadRequest = "BAD_REQUEST"

	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"

	ErrCodeInvalidInput      = "INVALID_INPUT"
	ErrCodeInsufficientStock = "INSUFFICIENT_STOCK"
	ErrCodePriceMismatch     = "PRICE_MISMATCH"
	ErrCodePersistence       = "PERSISTENCE_FAILURE"

	ErrCodeRequestTooLarge = "REQUEST_TOO_LARGE"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeBadRequest: http.StatusBadRequest,

	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,

	ErrCodeInvalidInput:      http.StatusBadRequest,
	ErrCodeInsufficientStock: http.StatusUnprocessableEntity,
	ErrCodePriceMismatch:     http.StatusUnprocessableEntity,
	ErrCodePersistence:       http.StatusInternalServerError,

	ErrCodeRequestTooLarge: http.StatusRequestEntityTooLarge,

	// Entity constructor codes, all caller mistakes
	"INVALID_SELLER":        http.StatusBadRequest,
	"INVALID_CUSTOMER":      http.StatusBadRequest,
	"INVALID_PRODUCT":       http.StatusBadRequest,
	"INVALID_QUANTITY":      http.StatusBadRequest,
	"INVALID_PRICE":         http.StatusBadRequest,
	"INVALID_STOCK":         http.StatusBadRequest,
	"INVALID_NAME":          http.StatusBadRequest,
	"INVALID_NATIONAL_ID":   http.StatusBadRequest,
	"INVALID_ADDRESS":       http.StatusBadRequest,
	"INVALID_CONTACT":       http.StatusBadRequest,
	"INVALID_COMPANY_NAME":  http.StatusBadRequest,
	"INVALID_PRODUCT_NAME":  http.StatusBadRequest,
	"INVALID_DIMENSIONS":    http.StatusBadRequest,
	"INVALID_CATEGORY":      http.StatusBadRequest,
	"INVALID_CATEGORY_NAME": http.StatusBadRequest,
	"INVALID_MATERIAL":      http.StatusBadRequest,
	"INVALID_COLOR":         http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes map to 500 so nothing leaks as a false success.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
