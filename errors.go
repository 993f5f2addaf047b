package cinemenu

import (
	"errors"
	"fmt"
)

// ErrInvalidSelection is returned when a list position does not address a movie
var ErrInvalidSelection = errors.New("invalid selection")

// RemoteError is returned when TMDB answers with anything other than 200 or 201
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("tmdb responded with status %d", e.StatusCode)
}

// IsUnauthorized is true for rejected credentials
func (e *RemoteError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// TransportError wraps connection, DNS and IO failures
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("could not reach tmdb: %v", e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// MalformedResponseError is returned when a response body is not valid JSON or
// is missing a field the client depends on
type MalformedResponseError struct {
	Field string
	Cause error
}

func (e *MalformedResponseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("malformed tmdb response: missing %q", e.Field)
	}
	return fmt.Sprintf("malformed tmdb response: %v", e.Cause)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Cause
}

// Describe turns a client error into a single human readable line
func Describe(action string, err error) string {
	var remote *RemoteError
	var transport *TransportError
	var malformed *MalformedResponseError
	switch {
	case errors.As(err, &remote):
		if remote.IsUnauthorized() {
			return fmt.Sprintf("Failed to %v. Check your credentials. Response code: %v", action, remote.StatusCode)
		}
		return fmt.Sprintf("Failed to %v. Response code: %v", action, remote.StatusCode)
	case errors.As(err, &transport):
		return fmt.Sprintf("Failed to %v. Could not reach TheMovieDB API: %v", action, transport.Cause)
	case errors.As(err, &malformed):
		return fmt.Sprintf("Failed to %v. TheMovieDB API sent an unexpected response.", action)
	default:
		return fmt.Sprintf("Failed to %v: %v", action, err)
	}
}
