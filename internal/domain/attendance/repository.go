package attendance

import (
	"context"

	"github.com/accelor-hrms/hrms-backend-go/internal/domain/access"
	"github.com/accelor-hrms/hrms-backend-go/internal/pkg/calendar"
)

// Query constrains an attendance read. A nil Window means all time.
type Query struct {
	Scope  access.Scope
	Window *calendar.Window
	Status *Status
}

// AttendanceRepository is read-only; punches are written by the device sync.
type AttendanceRepository interface {
	// List returns records ordered by log date descending, then employee id ascending.
	List(ctx context.Context, query Query) ([]Attendance, error)
}
