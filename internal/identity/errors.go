package identity

import "errors"

// Session errors.
var (
	ErrValidation             = errors.New("identifier, email and password must not be empty")
	ErrAuthenticationRejected = errors.New("invalid credentials")
	ErrPersistenceCorruption  = errors.New("stored session is unreadable")
	ErrSessionActive          = errors.New("a session is already active")
	ErrNotReady               = errors.New("session is still loading")
)
