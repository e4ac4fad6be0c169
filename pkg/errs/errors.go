package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer   = http.StatusInternalServerError
	ErrStatusClient           = http.StatusBadRequest
	ErrStatusNotLoggedIn      = http.StatusUnauthorized
	ErrStatusUnauthorized     = http.StatusUnauthorized
	ErrStatusNotFound         = http.StatusNotFound
	ErrStatusEmailAlreadyUsed = http.StatusBadRequest
	ErrStatusConflict         = http.StatusConflict
)

var (
	ErrInternalServer    = errors.New("Internal server error")
	ErrClient            = errors.New("Bad request")
	ErrNotLoggedIn       = errors.New("Unauthorized access")
	ErrTokenExpired      = errors.New("The token is invalid or expired")
	ErrNotFound          = errors.New("Resource not found")
	ErrDuplicateCustomer = errors.New("Email has already been used")
	ErrIncorrectPassword = errors.New("Password is incorrect")
	ErrCustomerNotFound  = errors.New("Customer not found")
	ErrInvalidProduct    = errors.New("Invalid product")
	ErrProductNotFound   = errors.New("Product not found")
	ErrCartItemNotFound  = errors.New("Cart item not found")
	ErrConflict          = errors.New("Conflicting record found")
)

var errorMap = map[error]int{
	ErrInternalServer:    ErrStatusInternalServer,
	ErrClient:            ErrStatusClient,
	ErrNotLoggedIn:       ErrStatusNotLoggedIn,
	ErrTokenExpired:      ErrStatusUnauthorized,
	ErrNotFound:          ErrStatusNotFound,
	ErrDuplicateCustomer: ErrStatusEmailAlreadyUsed,
	ErrIncorrectPassword: ErrStatusUnauthorized,
	ErrCustomerNotFound:  ErrStatusNotFound,
	ErrInvalidProduct:    ErrStatusClient,
	ErrProductNotFound:   ErrStatusNotFound,
	ErrCartItemNotFound:  ErrStatusNotFound,
	ErrConflict:          ErrStatusConflict,
}

// GetErrorStatusCode resolves wrapped errors too; anything unknown is a 500.
func GetErrorStatusCode(err error) int {
	if errStatusCode, ok := errorMap[err]; ok {
		return errStatusCode
	}

	for target, statusCode := range errorMap {
		if errors.Is(err, target) {
			return statusCode
		}
	}

	return errorMap[ErrInternalServer]
}
