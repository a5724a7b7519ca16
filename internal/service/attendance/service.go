package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/accelor-hrms/hrms-backend-go/internal/domain/access"
	"github.com/accelor-hrms/hrms-backend-go/internal/domain/attendance"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	resolver access.ScopeResolver
}

// timeToString formats a timestamp as RFC 3339 UTC, empty when unset.
func timeToString(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	caller, err := access.CallerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	scope, err := a.resolver.Resolve(ctx, caller, filter.AccessFilter())
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0)
	if scope.IsEmpty() {
		return responses, nil
	}

	// The list view ignores status; only the download narrows by it.
	attendances, err := a.AttendanceRepository.List(ctx, attendance.Query{
		Scope:  scope,
		Window: filter.Window(),
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to list attendance", "filter", filter, "role", caller.Role, "error", err)
		return nil, fmt.Errorf("%w: %w", attendance.ErrFetchAttendance, err)
	}

	slog.InfoContext(ctx, "fetched attendance records", "filter", filter, "role", caller.Role, "count", len(attendances))

	for _, att := range attendances {
		responses = append(responses, mapAttendanceToResponse(att))
	}

	return responses, nil
}

// mapAttendanceToResponse converts an Attendance entity to AttendanceResponse
func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	var halfDay *string
	if att.HalfDay != nil {
		v := string(*att.HalfDay)
		halfDay = &v
	}

	return attendance.AttendanceResponse{
		ID:         att.ID,
		EmployeeID: att.EmployeeID,
		UserID:     att.UserID,
		Name:       att.Name,
		LogDate:    att.LogDate.String(),
		TimeIn:     att.TimeIn,
		TimeOut:    att.TimeOut,
		Status:     string(att.Status),
		HalfDay:    halfDay,
		OT:         att.OT,
		CreatedAt:  timeToString(att.CreatedAt),
		UpdatedAt:  timeToString(att.UpdatedAt),
	}
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	resolver access.ScopeResolver,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		resolver:             resolver,
	}
}
