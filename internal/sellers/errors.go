package sellers

import (
	"errors"
	"sort"
	"strings"
)

// Seller application errors.
var (
	ErrApplicationNotFound = errors.New("seller application not found")
	ErrAlreadyReviewed     = errors.New("seller application already reviewed")
	ErrInvalidApplication  = errors.New("invalid seller application")
)

// ValidationError lists the rejected form fields and a message for each.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return ErrInvalidApplication.Error() + ": " + strings.Join(names, ", ")
}

// Unwrap lets errors.Is match ErrInvalidApplication.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidApplication
}
