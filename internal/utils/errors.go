package utils

import "errors"

// Common application errors used across services.
var (
	ErrProductNotFound    = errors.New("PRODUCT_NOT_FOUND")
	ErrOrderNotFound      = errors.New("ORDER_NOT_FOUND")
	ErrUserNotFound       = errors.New("USER_NOT_FOUND")
	ErrSKUExists          = errors.New("SKU_EXISTS")
	ErrEmailExists        = errors.New("EMAIL_EXISTS")
	ErrInvalidCredentials = errors.New("INVALID_CREDENTIALS")
	ErrInvalidToken       = errors.New("INVALID_TOKEN")
	ErrInvalidOrderStatus = errors.New("INVALID_ORDER_STATUS")
	ErrInvalidSortDir     = errors.New("INVALID_SORT_DIRECTION")
	ErrInvalidSortField   = errors.New("INVALID_SORT_FIELD")
	ErrValidation         = errors.New("VALIDATION_ERROR")
)
