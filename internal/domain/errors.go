package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrEntryNotFound indicates the requested entry does not exist
	ErrEntryNotFound = errors.New("entry not found")

	// ErrServerOffline indicates the catalog server is unreachable
	ErrServerOffline = errors.New("catalog server is unreachable")
)

// FetchError is a transport failure or a non-2xx response.
// StatusCode is 0 when no response was received.
type FetchError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: unexpected status code: %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError indicates a response body that did not match the expected shape
type ParseError struct {
	Op  string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse response: %v", e.Op, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NotFoundError indicates an identifier unknown to the catalog.
// Suggestions holds nearby entry names, best first.
type NotFoundError struct {
	ID          string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	if len(e.Suggestions) > 0 {
		return fmt.Sprintf("entry %q not found (did you mean %s?)", e.ID, strings.Join(e.Suggestions, ", "))
	}
	return fmt.Sprintf("entry %q not found", e.ID)
}

// Is makes errors.Is(err, ErrEntryNotFound) hold for any NotFoundError
func (e *NotFoundError) Is(target error) bool {
	return target == ErrEntryNotFound
}
