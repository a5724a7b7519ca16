package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/accelor-hrms/hrms-backend-go/internal/domain/approval"
	"github.com/accelor-hrms/hrms-backend-go/internal/domain/od"
	"github.com/accelor-hrms/hrms-backend-go/internal/pkg/calendar"
	"github.com/accelor-hrms/hrms-backend-go/internal/pkg/database"
)

type odRepository struct {
	db *database.DB
}

// ListApproved implements od.ODRepository.
func (o *odRepository) ListApproved(ctx context.Context, query od.Query) ([]od.OD, error) {
	q := GetQuerier(ctx, o.db)

	var where whereBuilder
	where.add("o.status_ceo = $%d", string(approval.Approved))
	where.scope("o.employee_id", query.Scope)

	// Range overlap with the window
	if query.Window != nil {
		from, to := windowArgs(*query.Window)
		where.add("o.date_out <= $%[2]d::date AND o.date_in >= $%[1]d::date", from, to)
	}

	sql := `
		SELECT o.id, o.employee_id, o.name, o.date_out, o.date_in,
			   COALESCE(o.purpose, ''), o.status_hod, o.status_admin, o.status_ceo,
			   o.created_at, o.updated_at
		FROM ods o
		WHERE ` + where.String() + `
		ORDER BY o.employee_id ASC, o.date_out ASC
	`

	rows, err := q.Query(ctx, sql, where.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved ods: %w", err)
	}
	defer rows.Close()

	ods := make([]od.OD, 0)
	for rows.Next() {
		var (
			rec                               od.OD
			dateOut, dateIn                   time.Time
			statusHOD, statusAdmin, statusCEO string
		)
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Name, &dateOut, &dateIn,
			&rec.Purpose, &statusHOD, &statusAdmin, &statusCEO,
			&rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan od: %w", err)
		}

		rec.DateOut = calendar.DateOf(dateOut)
		rec.DateIn = calendar.DateOf(dateIn)
		rec.Status = approval.Status{
			HOD:   approval.Decision(statusHOD),
			Admin: approval.AdminDecision(statusAdmin),
			CEO:   approval.Decision(statusCEO),
		}
		ods = append(ods, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ods: %w", err)
	}

	return ods, nil
}

func NewODRepository(db *database.DB) od.ODRepository {
	return &odRepository{db: db}
}
