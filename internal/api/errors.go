package api

import (
	"errors"
	"fmt"
)

// ErrUnauthorized maps HTTP 401 responses: missing, expired or
// insufficient credentials. Callers turn it into the "please log in" or
// "admin privileges required" message for their screen.
var ErrUnauthorized = errors.New("access denied")

// StatusError is any other non-2xx response.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.Status)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.Status, e.Message)
}
