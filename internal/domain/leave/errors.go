package leave

import "errors"

var (
	ErrFetchLeaves = errors.New("failed to fetch approved leaves")
)
