package report

import (
	"fmt"

	"github.com/accelor-hrms/hrms-backend-go/internal/domain/attendance"
	"github.com/accelor-hrms/hrms-backend-go/internal/domain/employee"
	"github.com/accelor-hrms/hrms-backend-go/internal/domain/report"
)

const missingTime = "-"

// Compile turns fetched attendance into report rows, one per record, in
// fetch order.
func Compile(records report.Records, overlays report.Overlays) []report.Row {
	rows := make([]report.Row, 0, len(records.Attendance))
	for i, record := range records.Attendance {
		rows = append(rows, report.Row{
			SerialNumber: i + 1,
			Name:         record.Name,
			Department:   departmentName(records.Departments, record.EmployeeID),
			Date:         DateLabel(record, Annotate(record, overlays)),
			TimeIn:       timeLabel(record.TimeIn),
			TimeOut:      timeLabel(record.TimeOut),
			Status:       StatusLabel(record),
			OT:           FormatOT(record.OT),
		})
	}
	return rows
}

// DateLabel is "<date> <annotation>". The separating space is kept even
// when the annotation is empty.
func DateLabel(record attendance.Attendance, annotation string) string {
	return record.LogDate.String() + " " + annotation
}

// StatusLabel appends the half-day part in parentheses when one is set.
func StatusLabel(record attendance.Attendance) string {
	if record.HalfDay == nil || *record.HalfDay == "" {
		return string(record.Status)
	}
	return fmt.Sprintf("%s (%s)", record.Status, *record.HalfDay)
}

// FormatOT renders overtime minutes as H:MM, with "00:00" for none.
func FormatOT(minutes int) string {
	if minutes <= 0 {
		return "00:00"
	}
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}

func timeLabel(t *string) string {
	if t == nil || *t == "" {
		return missingTime
	}
	return *t
}

func departmentName(departments map[string]string, employeeID string) string {
	if name, ok := departments[employeeID]; ok && name != "" {
		return name
	}
	return employee.UnknownDepartment
}
