package report

import (
	"context"
	"fmt"
	"slices"

	"github.com/accelor-hrms/hrms-backend-go/internal/domain/access"
	"github.com/accelor-hrms/hrms-backend-go/internal/domain/attendance"
	"github.com/accelor-hrms/hrms-backend-go/internal/domain/employee"
	"github.com/accelor-hrms/hrms-backend-go/internal/domain/leave"
	"github.com/accelor-hrms/hrms-backend-go/internal/domain/od"
	"github.com/accelor-hrms/hrms-backend-go/internal/domain/report"
	"github.com/accelor-hrms/hrms-backend-go/internal/pkg/calendar"
	"golang.org/x/sync/errgroup"
)

// FetchRequest is the resolved input of one fetch.
type FetchRequest struct {
	Scope  access.Scope
	Window *calendar.Window
	Status *attendance.Status
}

// Fetcher loads every record a report needs.
type Fetcher struct {
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRepository
	odRepo         od.ODRepository
	employeeRepo   employee.EmployeeRepository

	// spanningLeaves also loads full-day leaves that start before the window.
	spanningLeaves bool
}

func NewFetcher(
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
	odRepo od.ODRepository,
	employeeRepo employee.EmployeeRepository,
	spanningLeaves bool,
) *Fetcher {
	return &Fetcher{
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		odRepo:         odRepo,
		employeeRepo:   employeeRepo,
		spanningLeaves: spanningLeaves,
	}
}

// Fetch runs the attendance, leave and OD reads concurrently. An empty scope
// returns empty records without touching storage. Any failure aborts the
// whole fetch.
func (f *Fetcher) Fetch(ctx context.Context, req FetchRequest) (report.Records, error) {
	records := report.Records{Departments: map[string]string{}}
	if req.Scope.IsEmpty() {
		return records, nil
	}

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Attendance, then departments of the employees it mentions
	g.Go(func() error {
		rows, err := f.attendanceRepo.List(gCtx, attendance.Query{
			Scope:  req.Scope,
			Window: req.Window,
			Status: req.Status,
		})
		if err != nil {
			return fmt.Errorf("%w: %w", attendance.ErrFetchAttendance, err)
		}
		records.Attendance = rows

		employeeIDs := distinctEmployeeIDs(rows)
		if len(employeeIDs) == 0 {
			return nil
		}
		departments, err := f.employeeRepo.GetDepartmentNames(gCtx, employeeIDs)
		if err != nil {
			return fmt.Errorf("failed to get department names: %w", err)
		}
		records.Departments = departments
		return nil
	})

	// 2. Approved leaves
	g.Go(func() error {
		leaves, err := f.leaveRepo.ListApproved(gCtx, leave.Query{
			Scope:          req.Scope,
			Window:         req.Window,
			SpanningRanges: f.spanningLeaves,
		})
		if err != nil {
			return fmt.Errorf("%w: %w", leave.ErrFetchLeaves, err)
		}
		records.Leaves = leaves
		return nil
	})

	// 3. Approved ODs
	g.Go(func() error {
		ods, err := f.odRepo.ListApproved(gCtx, od.Query{
			Scope:  req.Scope,
			Window: req.Window,
		})
		if err != nil {
			return fmt.Errorf("%w: %w", od.ErrFetchODs, err)
		}
		records.ODs = ods
		return nil
	})

	if err := g.Wait(); err != nil {
		return report.Records{}, err
	}

	return records, nil
}

func distinctEmployeeIDs(rows []attendance.Attendance) []string {
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		if !slices.Contains(ids, row.EmployeeID) {
			ids = append(ids, row.EmployeeID)
		}
	}
	return ids
}
