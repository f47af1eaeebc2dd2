package domain

import (
	"errors"
	"fmt"
)

// Определяем переменные-ошибки, которые могут быть возвращены из Use Cases.
var (
	ErrUnauthorized          = errors.New("unauthorized access")
	ErrUserNotFound          = errors.New("user not found")
	ErrPartnerAdvertNotFound = errors.New("partner advert not found")

	// Ошибки внешнего API объявлений.
	ErrUpstreamTimeout     = errors.New("listings API request timed out")
	ErrUpstreamUnavailable = errors.New("listings API is unavailable")
)

// ValidationError - ошибка валидации параметров запроса, транслируется в 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError создает ошибку валидации с произвольным сообщением.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// NewRequiredParameterError создает ошибку об отсутствующем или невалидном параметре.
func NewRequiredParameterError(param string) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf("Required parameter '%s' is missing or invalid", param)}
}
