// Package errors define el error de aplicación con estatus HTTP y
// constructores por categoría.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError error de aplicación con estatus HTTP y contexto
type AppError struct {
	Code    int    `json:"status_code"` // Estatus HTTP
	Message string `json:"message"`     // Mensaje para el usuario
	Err     error  `json:"-"`           // Error interno para los logs, no se serializa
	Context string `json:"-"`           // Contexto adicional (función, parámetros)
}

// Error implementa la interfaz error
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap devuelve el error interno para errors.Is y errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode devuelve el estatus HTTP del error
func (e *AppError) StatusCode() int {
	return e.Code
}

// UserMessage devuelve el mensaje para el usuario
func (e *AppError) UserMessage() string {
	return e.Message
}

// WithContext agrega contexto al error
func (e *AppError) WithContext(context string) *AppError {
	e.Context = context
	return e
}

// NewNotFoundError crea un error 404 Not Found
func NewNotFoundError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: message,
		Err:     err,
	}
}

// NewValidationError crea un error 400 Bad Request
func NewValidationError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
		Err:     err,
	}
}

// NewInternalError crea un error 500 Internal Server Error.
// Al usuario llega un mensaje genérico; los detalles quedan en los logs.
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: "Error interno del servidor",
		Err:     errors.Join(errors.New(message), err),
	}
}

// NewUnauthorizedError crea un error 401 Unauthorized
func NewUnauthorizedError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusUnauthorized,
		Message: message,
		Err:     err,
	}
}

// NewBadGatewayError crea un error 502 Bad Gateway para fallas de las
// fuentes de datos externas
func NewBadGatewayError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusBadGateway,
		Message: message,
		Err:     err,
	}
}
