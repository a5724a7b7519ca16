package od

import "errors"

var (
	ErrFetchODs = errors.New("failed to fetch approved on-duty records")
)
