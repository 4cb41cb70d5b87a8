package utils

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrOrphanageNotFound  = errors.New("orphanage not found")
	ErrInvalidOrphanageID = errors.New("invalid orphanage id")
	ErrInvalidForm        = errors.New("invalid form data")
	ErrValidation         = errors.New("validation failed")
	ErrDatabaseError      = errors.New("database error")
	ErrStorageError       = errors.New("storage error")
)

// FieldViolation is one failed rule on one request field.
type FieldViolation struct {
	Field   string
	Rule    string
	Message string
}

// ValidationError carries every violation found in a request, not only the first.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		fields = append(fields, v.Field)
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Fields groups the messages by field name, keeping the order they were reported in.
func (e *ValidationError) Fields() map[string][]string {
	out := make(map[string][]string, len(e.Violations))
	for _, v := range e.Violations {
		out[v.Field] = append(out[v.Field], v.Message)
	}
	return out
}

// HasField reports whether field failed at least one rule.
func (e *ValidationError) HasField(field string) bool {
	for _, v := range e.Violations {
		if v.Field == field {
			return true
		}
	}
	return false
}
