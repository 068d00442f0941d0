package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente en el lote")
	ErrLotRequired       = errors.New("el movimiento requiere un lote")
)

// FieldError es un error de validación asociado a un campo del movimiento.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors acumula errores de validación por campo. El validador
// nunca corta en el primer error: reporta todos juntos, como el formulario
// original.
type ValidationErrors []FieldError

// Add agrega un error sobre un campo.
func (v *ValidationErrors) Add(field, message string) {
	*v = append(*v, FieldError{Field: field, Message: message})
}

// Error implementa error concatenando los mensajes por campo.
func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return strings.Join(parts, "; ")
}

// HasErrors indica si se acumuló al menos un error.
func (v ValidationErrors) HasErrors() bool { return len(v) > 0 }

// ByField devuelve los mensajes del campo dado (útil en tests).
func (v ValidationErrors) ByField(field string) []string {
	var msgs []string
	for _, fe := range v {
		if fe.Field == field {
			msgs = append(msgs, fe.Message)
		}
	}
	return msgs
}
