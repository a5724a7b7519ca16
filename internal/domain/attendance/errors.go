package attendance

import "errors"

var (
	ErrFetchAttendance = errors.New("failed to fetch attendance records")
	ErrInvalidStatus   = errors.New("status must be one of: Present, Absent, Half Day")
)
