package report

import (
	"github.com/accelor-hrms/hrms-backend-go/internal/domain/attendance"
	"github.com/accelor-hrms/hrms-backend-go/internal/domain/report"
)

// Annotate picks the day annotation for one attendance record:
// leave, then OD, then "(A)" for an absent record, else empty.
func Annotate(record attendance.Attendance, overlays report.Overlays) string {
	if annotation, ok := overlays.Leave.Lookup(record.EmployeeID, record.LogDate); ok {
		return annotation
	}
	if annotation, ok := overlays.OD.Lookup(record.EmployeeID, record.LogDate); ok {
		return annotation
	}
	if record.Status == attendance.StatusAbsent {
		return report.AnnotationAbsent
	}
	return ""
}
