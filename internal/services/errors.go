package services

import "errors"

// Base error kinds shared across services. Specific sentinels wrap one of
// these so handlers can map any service error to a status code with a single
// errors.Is check.
var (
	// ErrValidation marks a request rejected because a required field is
	// missing or malformed. Recoverable: the caller fixes the input and
	// re-submits.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateKey marks a uniqueness violation (group name, post title,
	// username). Recoverable like ErrValidation.
	ErrDuplicateKey = errors.New("duplicate key")
)
