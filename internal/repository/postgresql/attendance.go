package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/accelor-hrms/hrms-backend-go/internal/domain/attendance"
	"github.com/accelor-hrms/hrms-backend-go/internal/pkg/calendar"
	"github.com/accelor-hrms/hrms-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, query attendance.Query) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	var where whereBuilder
	where.scope("a.employee_id", query.Scope)

	// Date range filter, both ends included
	if query.Window != nil {
		from, to := windowArgs(*query.Window)
		where.add("a.log_date BETWEEN $%d::date AND $%d::date", from, to)
	}

	// Status filter
	if query.Status != nil {
		where.add("a.status = $%d", string(*query.Status))
	}

	sql := `
		SELECT a.id, a.employee_id, COALESCE(a.user_id::text, ''), a.name, a.log_date,
			   a.time_in, a.time_out, a.status, a.half_day, COALESCE(a.ot, 0),
			   a.created_at, a.updated_at
		FROM attendances a
		WHERE ` + where.String() + `
		ORDER BY a.log_date DESC, a.employee_id ASC
	`

	rows, err := q.Query(ctx, sql, where.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	attendances := make([]attendance.Attendance, 0)
	for rows.Next() {
		var (
			att     attendance.Attendance
			logDate time.Time
			status  string
			halfDay *string
		)
		if err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.UserID, &att.Name, &logDate,
			&att.TimeIn, &att.TimeOut, &status, &halfDay, &att.OT,
			&att.CreatedAt, &att.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}

		att.LogDate = calendar.DateOf(logDate)
		att.Status = attendance.Status(status)
		if halfDay != nil && *halfDay != "" {
			hd := attendance.HalfDay(*halfDay)
			att.HalfDay = &hd
		}
		attendances = append(attendances, att)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return attendances, nil
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}
