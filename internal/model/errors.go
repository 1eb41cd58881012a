package model

import "errors"

var (
	// ErrQuizNotFound is returned when no quiz exists for a well-formed id.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrForbidden is returned when a caller mutates a quiz they do not own.
	ErrForbidden = errors.New("permission denied")
	// ErrInvalidID is returned for malformed quiz ids. Distinct from
	// ErrQuizNotFound: a malformed id surfaces as a server error, not a 404.
	ErrInvalidID = errors.New("invalid quiz id")
	// ErrValidation wraps all aggregate validation failures.
	ErrValidation = errors.New("validation failed")
)
