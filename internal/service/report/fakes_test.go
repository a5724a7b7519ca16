package report

import (
	"context"
	"time"

	"cloud.google.com/go/civil"
	"github.com/accelor-hrms/hrms-backend-go/internal/domain/access"
	"github.com/accelor-hrms/hrms-backend-go/internal/domain/approval"
	"github.com/accelor-hrms/hrms-backend-go/internal/domain/attendance"
	"github.com/accelor-hrms/hrms-backend-go/internal/domain/employee"
	"github.com/accelor-hrms/hrms-backend-go/internal/domain/leave"
	"github.com/accelor-hrms/hrms-backend-go/internal/domain/od"
)

type fakeAttendanceRepo struct {
	listFn func(ctx context.Context, query attendance.Query) ([]attendance.Attendance, error)
	calls  int
}

func (f *fakeAttendanceRepo) List(ctx context.Context, query attendance.Query) ([]attendance.Attendance, error) {
	f.calls++
	return f.listFn(ctx, query)
}

type fakeLeaveRepo struct {
	listApprovedFn func(ctx context.Context, query leave.Query) ([]leave.Leave, error)
	calls          int
}

func (f *fakeLeaveRepo) ListApproved(ctx context.Context, query leave.Query) ([]leave.Leave, error) {
	f.calls++
	return f.listApprovedFn(ctx, query)
}

type fakeODRepo struct {
	listApprovedFn func(ctx context.Context, query od.Query) ([]od.OD, error)
	calls          int
}

func (f *fakeODRepo) ListApproved(ctx context.Context, query od.Query) ([]od.OD, error) {
	f.calls++
	return f.listApprovedFn(ctx, query)
}

type fakeEmployeeRepo struct {
	getDepartmentNamesFn func(ctx context.Context, employeeIDs []string) (map[string]string, error)
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ListEmployeeIDsByDepartment(ctx context.Context, departmentID string) ([]string, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) GetDepartmentNames(ctx context.Context, employeeIDs []string) (map[string]string, error) {
	return f.getDepartmentNamesFn(ctx, employeeIDs)
}

type fakeResolver struct {
	resolveFn func(ctx context.Context, caller access.Caller, filter access.Filter) (access.Scope, error)
}

func (f *fakeResolver) PolicyFor(caller access.Caller) (access.Policy, error) {
	return nil, nil
}

func (f *fakeResolver) Resolve(ctx context.Context, caller access.Caller, filter access.Filter) (access.Scope, error) {
	return f.resolveFn(ctx, caller, filter)
}

// ========================================
// FIXTURES
// ========================================

func day(s string) civil.Date {
	d, err := civil.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func strPtr(s string) *string { return &s }

var approved = approval.Status{HOD: approval.Approved, Admin: approval.AdminAcknowledged, CEO: approval.Approved}

func punch(employeeID, logDate string, status attendance.Status) attendance.Attendance {
	return attendance.Attendance{
		ID:         employeeID + "-" + logDate,
		EmployeeID: employeeID,
		Name:       "Employee " + employeeID,
		LogDate:    day(logDate),
		Status:     status,
		CreatedAt:  time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:  time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func fullDayLeave(employeeID, from, to string, status approval.Status) leave.Leave {
	return leave.Leave{
		ID:         "L-" + employeeID + "-" + from,
		EmployeeID: employeeID,
		LeaveType:  leave.LeaveTypeCasual,
		FullDay:    &leave.FullDay{From: day(from), To: day(to)},
		Status:     status,
	}
}

func halfDayLeave(employeeID, date string, session leave.Session) leave.Leave {
	return leave.Leave{
		ID:         "H-" + employeeID + "-" + date,
		EmployeeID: employeeID,
		LeaveType:  leave.LeaveTypeCasual,
		HalfDay:    &leave.HalfDay{Date: day(date), Session: session},
		Status:     approved,
	}
}

func onDuty(employeeID, out, in string, status approval.Status) od.OD {
	return od.OD{
		ID:         "OD-" + employeeID + "-" + out,
		EmployeeID: employeeID,
		DateOut:    day(out),
		DateIn:     day(in),
		Status:     status,
	}
}
