package leave

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/accelor-hrms/hrms-backend-go/internal/domain/approval"
)

type LeaveType string

const (
	LeaveTypeCasual             LeaveType = "Casual"
	LeaveTypeMedical            LeaveType = "Medical"
	LeaveTypeMaternity          LeaveType = "Maternity"
	LeaveTypePaternity          LeaveType = "Paternity"
	LeaveTypeCompensatory       LeaveType = "Compensatory"
	LeaveTypeRestrictedHolidays LeaveType = "Restricted Holidays"
	LeaveTypeLWP                LeaveType = "Leave Without Pay(LWP)"
)

type Session string

const (
	SessionForenoon  Session = "forenoon"
	SessionAfternoon Session = "afternoon"
)

// FullDay is an inclusive range of whole days off.
type FullDay struct {
	From civil.Date
	To   civil.Date
}

// HalfDay is a single session off on one day.
type HalfDay struct {
	Date    civil.Date
	Session Session
}

// Leave is a leave request. Exactly one of FullDay and HalfDay is set.
type Leave struct {
	ID         string
	EmployeeID string
	Name       string
	LeaveType  LeaveType
	FullDay    *FullDay
	HalfDay    *HalfDay
	Reason     string
	Status     approval.Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsHalfDay reports whether the request covers a single session.
func (l Leave) IsHalfDay() bool {
	return l.HalfDay != nil
}
