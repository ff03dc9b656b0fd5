package nexo

import "errors"

var (
	// ErrNotFound is returned when an operation targets an id that is not
	// in its collection. The store is left unchanged; callers that want the
	// original "silent no-op" behavior are free to ignore it.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when creating a user whose email is
	// already in the directory. Emails are compared case-sensitively, and
	// only on creation.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrBadCredentials is returned when a login attempt matches no user.
	ErrBadCredentials = errors.New("invalid credentials")
	// ErrUserDisabled is returned when the credentials match a user that an
	// administrator has deactivated.
	ErrUserDisabled = errors.New("user is disabled")
	// ErrPasswordMismatch is returned when a password and its confirmation
	// differ during registration or recovery.
	ErrPasswordMismatch = errors.New("passwords do not match")
)
