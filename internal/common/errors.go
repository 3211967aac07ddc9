// Package common defines sentinel errors shared by the login widget
// verifier and its command-line front end. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Construction errors.
	ErrEmptyToken = errors.New("empty bot token")

	// Contract errors returned by the authenticator.
	ErrNilFields = errors.New("nil field set")
	ErrClosed    = errors.New("authenticator is closed")

	// Field set decoding errors.
	ErrDuplicateField = errors.New("duplicate field")
	ErrInvalidUserID  = errors.New("invalid user id")

	// CLI errors.
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("usage error")
)
