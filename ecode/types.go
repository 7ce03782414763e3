package ecode

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinels matched by errors.Is against the typed errors below.
var (
	ErrDuplicateID = errors.New("duplicate id")
	ErrValidation  = errors.New("validation failed")
	ErrNotFound    = errors.New("not found")
)

// DuplicateIDError reports an id collision on add or import.
type DuplicateIDError struct {
	Kind string
	ID   string
}

// NewDuplicateID creates a DuplicateIDError
func NewDuplicateID(kind, id string) *DuplicateIDError {
	return &DuplicateIDError{Kind: kind, ID: id}
}

func (e *DuplicateIDError) Error() string {
	return AlreadyExist(fmt.Sprintf("%s %q", e.Kind, e.ID))
}

func (e *DuplicateIDError) Is(target error) bool { return target == ErrDuplicateID }

// NotFoundError reports a reference to a nonexistent record.
type NotFoundError struct {
	Kind string
	ID   string
}

// NewNotFound creates a NotFoundError
func NewNotFound(kind, id string) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: id}
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return NotExist(e.Kind)
	}
	return NotExist(fmt.Sprintf("%s %q", e.Kind, e.ID))
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ValidationError carries field name to message pairs.
type ValidationError struct {
	Fields map[string]string
}

// NewValidation creates a ValidationError for a single field
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// NewValidationFields creates a ValidationError from a field map, nil if the map is empty
func NewValidationFields(fields map[string]string) *ValidationError {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, e.Fields[k])
	}
	return strings.Join(msgs, "; ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Field returns the message recorded for a field
func (e *ValidationError) Field(name string) (string, bool) {
	msg, ok := e.Fields[name]
	return msg, ok
}
