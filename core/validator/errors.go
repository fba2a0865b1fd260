package validator

import (
	"errors"
	"strings"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotStruct  = errors.New("validator: must pass a pointer to struct")
)

// ValidationError describes one failed rule.
type ValidationError struct {
	Field             string
	Rule              string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors collects every failed rule of a struct.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, v := range e {
		parts = append(parts, v.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, ErrValidation) true.
func (e ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationErrors) Add(err ValidationError) {
	*e = append(*e, err)
}

func (e ValidationErrors) IsEmpty() bool {
	return len(e) == 0
}

// Has reports whether field, or any field nested under it, failed.
func (e ValidationErrors) Has(field string) bool {
	for _, v := range e {
		if v.Field == field || strings.HasPrefix(v.Field, field+".") || strings.HasPrefix(v.Field, field+"[") {
			return true
		}
	}
	return false
}

// Rule pairs a check with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}
