// Package errs define el formato JSON de errores de la API.
package errs

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// FieldError es un error asociado a un campo del payload.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError es el cuerpo que reciben los clientes en cualquier respuesta no-2xx.
type HTTPError struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Status  int          `json:"status"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

func newHTTPError(status int, message string, fields []FieldError) *HTTPError {
	if strings.TrimSpace(message) == "" {
		message = strings.ToLower(http.StatusText(status))
	}
	return &HTTPError{
		Code:    codeFor(status),
		Message: message,
		Status:  status,
		Errors:  fields,
	}
}

func NewBadRequest(message string, fields ...FieldError) *HTTPError {
	return newHTTPError(http.StatusBadRequest, message, fields)
}

func NewUnauthorized(message string) *HTTPError {
	return newHTTPError(http.StatusUnauthorized, message, nil)
}

func NewNotFound(message string) *HTTPError {
	return newHTTPError(http.StatusNotFound, message, nil)
}

func NewConflict(message string) *HTTPError {
	return newHTTPError(http.StatusConflict, message, nil)
}

func NewInternal() *HTTPError {
	return newHTTPError(http.StatusInternalServerError, "internal error", nil)
}

func NewServiceUnavailable(message string) *HTTPError {
	return newHTTPError(http.StatusServiceUnavailable, message, nil)
}

// Write serializa err. Cualquier error que no sea *HTTPError sale como 500.
func Write(w http.ResponseWriter, err error) {
	var he *HTTPError
	if !errors.As(err, &he) {
		he = NewInternal()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.Status)
	_ = json.NewEncoder(w).Encode(he)
}

// "Bad Request" -> "BAD_REQUEST"
func codeFor(status int) string {
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
}
