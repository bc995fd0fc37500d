package models

import "errors"

var (
	// ErrNotFound is returned when a requested resource is not found.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict is returned when a resource already exists, e.g. a signup
	// with an email that is already registered.
	ErrConflict = errors.New("resource already exists")

	// ErrInvalidCredentials is returned on a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidToken is returned when an activation or password reset token
	// is unknown or expired.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrAccountNotActive is returned when a user tries to log in before
	// activating their account.
	ErrAccountNotActive = errors.New("account has not been activated")

	// ErrRegistrationDisabled is returned when signups are turned off by
	// configuration.
	ErrRegistrationDisabled = errors.New("registration is disabled")

	// ErrValidation wraps any request-shape problem caught before
	// computation: malformed start_time, empty route chains, bad dates.
	ErrValidation = errors.New("validation failed")

	// ErrNoActiveSession is returned when a single timestamp arrives for a
	// user with no in-progress logger session and the timestamp is not the
	// opening "arrived" mark.
	ErrNoActiveSession = errors.New("no active session, start with an arrived timestamp")
)

// ErrorResponse is the JSON body returned for any failed request.
type ErrorResponse struct {
	Message string `json:"error"`
}
