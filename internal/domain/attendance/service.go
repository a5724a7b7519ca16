package attendance

import "context"

// AttendanceService defines the list view over attendance records
type AttendanceService interface {
	// ListAttendance returns scoped records without leave/OD reconciliation.
	ListAttendance(ctx context.Context, filter AttendanceFilter) ([]AttendanceResponse, error)
}
