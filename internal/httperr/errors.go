package httperr

import "fmt"

// ===============================
// Error Taxonomy
// ===============================

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries field-level detail for a 400 response.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func Validation(field, message string) error {
	ve := &ValidationError{}
	ve.Add(field, message)
	return ve
}

// NotFoundError maps to a 404.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func NotFoundErr(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}
