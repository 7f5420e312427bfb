package common

import "errors"

var (
	// Store-level errors.
	ErrNotFound = errors.New("not found")
	ErrReadOnly = errors.New("read-only session")

	// Slice decoding.
	ErrInvalidSlice = errors.New("invalid slice data")

	// Access errors.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNoAccess           = errors.New("no access")
	ErrForbidden          = errors.New("forbidden")

	// Input checks on catalog mutations.
	ErrInvalidInput = errors.New("invalid input")

	// Media.
	ErrNotAnImage = errors.New("not an image")
)
