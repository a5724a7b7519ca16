package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/accelor-hrms/hrms-backend-go/internal/domain/approval"
	"github.com/accelor-hrms/hrms-backend-go/internal/domain/leave"
	"github.com/accelor-hrms/hrms-backend-go/internal/pkg/calendar"
	"github.com/accelor-hrms/hrms-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

// ListApproved implements leave.LeaveRepository.
func (l *leaveRepository) ListApproved(ctx context.Context, query leave.Query) ([]leave.Leave, error) {
	q := GetQuerier(ctx, l.db)

	var where whereBuilder
	where.add("l.status_ceo = $%d", string(approval.Approved))
	where.scope("l.employee_id", query.Scope)

	if query.Window != nil {
		from, to := windowArgs(*query.Window)
		cond := "(l.half_day_date BETWEEN $%[1]d::date AND $%[2]d::date" +
			" OR l.full_day_from BETWEEN $%[1]d::date AND $%[2]d::date"
		if query.SpanningRanges {
			cond += " OR (l.full_day_from <= $%[2]d::date AND l.full_day_to >= $%[1]d::date)"
		}
		where.add(cond+")", from, to)
	}

	sql := `
		SELECT l.id, l.employee_id, l.name, l.leave_type,
			   l.full_day_from, l.full_day_to, l.half_day_date, l.half_day_session,
			   COALESCE(l.reason, ''), l.status_hod, l.status_admin, l.status_ceo,
			   l.created_at, l.updated_at
		FROM leaves l
		WHERE ` + where.String() + `
		ORDER BY l.employee_id ASC, l.created_at ASC
	`

	rows, err := q.Query(ctx, sql, where.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leaves: %w", err)
	}
	defer rows.Close()

	leaves := make([]leave.Leave, 0)
	for rows.Next() {
		var (
			lv                                leave.Leave
			leaveType                         string
			fullDayFrom, fullDayTo            *time.Time
			halfDayDate                       *time.Time
			halfDaySession                    *string
			statusHOD, statusAdmin, statusCEO string
		)
		if err := rows.Scan(
			&lv.ID, &lv.EmployeeID, &lv.Name, &leaveType,
			&fullDayFrom, &fullDayTo, &halfDayDate, &halfDaySession,
			&lv.Reason, &statusHOD, &statusAdmin, &statusCEO,
			&lv.CreatedAt, &lv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave: %w", err)
		}

		lv.LeaveType = leave.LeaveType(leaveType)
		lv.Status = approval.Status{
			HOD:   approval.Decision(statusHOD),
			Admin: approval.AdminDecision(statusAdmin),
			CEO:   approval.Decision(statusCEO),
		}

		switch {
		case halfDayDate != nil:
			lv.HalfDay = &leave.HalfDay{Date: calendar.DateOf(*halfDayDate)}
			if halfDaySession != nil {
				lv.HalfDay.Session = leave.Session(*halfDaySession)
			}
		case fullDayFrom != nil:
			lv.FullDay = &leave.FullDay{From: calendar.DateOf(*fullDayFrom), To: calendar.DateOf(*fullDayFrom)}
			if fullDayTo != nil {
				lv.FullDay.To = calendar.DateOf(*fullDayTo)
			}
		}

		leaves = append(leaves, lv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leaves: %w", err)
	}

	return leaves, nil
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}
