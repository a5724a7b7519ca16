package report

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/accelor-hrms/hrms-backend-go/internal/domain/attendance"
	"github.com/accelor-hrms/hrms-backend-go/internal/domain/leave"
	"github.com/accelor-hrms/hrms-backend-go/internal/domain/od"
)

// ========================================
// DAY OVERLAYS
// ========================================

const (
	AnnotationLeave           = "(L)"
	AnnotationLeaveFirstHalf  = "(L) First Half"
	AnnotationLeaveSecondHalf = "(L) Second Half"
	AnnotationOD              = "(OD)"
	AnnotationAbsent          = "(A)"
)

// Overlay maps employee id to calendar day to an annotation. It lives for
// one report request only.
type Overlay map[string]map[civil.Date]string

func (o Overlay) Set(employeeID string, day civil.Date, annotation string) {
	days, ok := o[employeeID]
	if !ok {
		days = make(map[civil.Date]string)
		o[employeeID] = days
	}
	days[day] = annotation
}

func (o Overlay) Lookup(employeeID string, day civil.Date) (string, bool) {
	annotation, ok := o[employeeID][day]
	return annotation, ok
}

// Overlays keeps leave and OD annotations apart; precedence is applied when
// a record is annotated, not when the maps are built.
type Overlays struct {
	Leave Overlay
	OD    Overlay
}

// ========================================
// FETCHED RECORDS
// ========================================

// Records is everything the fetch stage hands to reconciliation.
type Records struct {
	Attendance  []attendance.Attendance
	Leaves      []leave.Leave
	ODs         []od.OD
	Departments map[string]string // employee id -> department name
}

// ========================================
// ATTENDANCE REPORT
// ========================================

const SheetName = "Attendance"

// Columns is the header row of the export, in order.
var Columns = []string{
	"Serial Number",
	"Name of Employee",
	"Department",
	"Date",
	"Time In",
	"Time Out",
	"Status",
	"OT",
}

type Row struct {
	SerialNumber int    `json:"Serial Number"`
	Name         string `json:"Name of Employee"`
	Department   string `json:"Department"`
	Date         string `json:"Date"`
	TimeIn       string `json:"Time In"`
	TimeOut      string `json:"Time Out"`
	Status       string `json:"Status"`
	OT           string `json:"OT"`
}

// Values returns the row cells in Columns order.
func (r Row) Values() []any {
	return []any{r.SerialNumber, r.Name, r.Department, r.Date, r.TimeIn, r.TimeOut, r.Status, r.OT}
}

type AttendanceReport struct {
	FileName    string
	GeneratedAt time.Time
	Rows        []Row
}

// FileName follows attendance_<status>_<fromDate>.xlsx; absent parts read "all".
func FileName(filter attendance.AttendanceFilter) string {
	status, fromDate := "all", "all"
	if filter.Status != nil {
		status = *filter.Status
	}
	if filter.FromDate != nil {
		fromDate = *filter.FromDate
	}
	return fmt.Sprintf("attendance_%s_%s.xlsx", status, fromDate)
}
