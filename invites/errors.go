package invites

import (
	"errors"
	"fmt"
)

// ErrInvalidInviteLink is returned by ExtractInviteCode for URLs that match
// neither recognized link shape. It is raised before any network activity.
var ErrInvalidInviteLink = errors.New("not a recognized invite link")

// TransportError means the lookup request failed outright or answered with
// a non-success status. It carries the HTTP status text when one was
// received. Never retried.
type TransportError struct {
	StatusCode int
	Status     string
	Wrapped    error
}

func (te *TransportError) Error() string {
	if te.Wrapped != nil {
		return fmt.Sprintf("invite lookup request failed: %v", te.Wrapped)
	}
	return fmt.Sprintf("invite lookup failed: HTTP %s", te.Status)
}

func (te *TransportError) Unwrap() error {
	return te.Wrapped
}

// DecodeError means the upstream answered 2xx but the body was not valid
// JSON for the expected payload.
type DecodeError struct {
	Wrapped error
}

func (de *DecodeError) Error() string {
	return fmt.Sprintf("decoding invite response: %v", de.Wrapped)
}

func (de *DecodeError) Unwrap() error {
	return de.Wrapped
}
