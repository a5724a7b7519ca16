package access

import "errors"

var (
	ErrCallerMissing = errors.New("caller identity missing from request context")
	ErrUnknownRole   = errors.New("role is not allowed to view attendance")
)
