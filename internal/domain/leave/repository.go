package leave

import (
	"context"

	"github.com/accelor-hrms/hrms-backend-go/internal/domain/access"
	"github.com/accelor-hrms/hrms-backend-go/internal/pkg/calendar"
)

// Query selects approved leaves. A nil Window means all time.
type Query struct {
	Scope  access.Scope
	Window *calendar.Window
	// SpanningRanges also matches full-day leaves that start before the
	// window but run into it.
	SpanningRanges bool
}

type LeaveRepository interface {
	// ListApproved returns leaves whose CEO stage is Approved and whose
	// half-day date or full-day start falls inside the window.
	ListApproved(ctx context.Context, query Query) ([]Leave, error)
}
