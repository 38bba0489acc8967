// Package common defines sentinel errors shared by the repositories, the
// services and the REPL. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository / registry lookups.
	ErrorNotFound = errors.New("not found")

	// Input checks performed before any state is touched.
	ErrorValidation = errors.New("validation error")

	// Session and permission outcomes.
	ErrorNotAuthenticated = errors.New("not logged in")
	ErrorForbidden        = errors.New("permission denied")

	// Login outcomes.
	ErrorInvalidUserID = errors.New("invalid user id")
	ErrorWrongPassword = errors.New("wrong password")
	ErrorNotVerified   = errors.New("account is not verified yet")
)
