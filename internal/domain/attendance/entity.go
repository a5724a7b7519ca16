package attendance

import (
	"time"

	"cloud.google.com/go/civil"
)

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusHalfDay Status = "Half Day"
)

// Statuses lists every status a punch record can carry.
var Statuses = []string{string(StatusPresent), string(StatusAbsent), string(StatusHalfDay)}

type HalfDay string

const (
	HalfDayFirst  HalfDay = "First Half"
	HalfDaySecond HalfDay = "Second Half"
)

// Attendance is one employee's punch summary for one calendar day.
type Attendance struct {
	ID         string
	EmployeeID string
	UserID     string
	Name       string
	LogDate    civil.Date
	TimeIn     *string // first IN punch, clock time as recorded
	TimeOut    *string // last OUT punch
	Status     Status
	HalfDay    *HalfDay
	OT         int // overtime in minutes
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
