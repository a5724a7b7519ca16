package report

import (
	"context"

	"github.com/accelor-hrms/hrms-backend-go/internal/domain/attendance"
)

// ReportService defines the interface for report generation
type ReportService interface {
	// GenerateAttendanceReport reconciles scoped attendance with approved
	// leave and OD records and compiles one row per attendance record.
	GenerateAttendanceReport(ctx context.Context, filter attendance.AttendanceFilter) (AttendanceReport, error)
}
