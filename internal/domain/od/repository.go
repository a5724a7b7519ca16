package od

import (
	"context"

	"github.com/accelor-hrms/hrms-backend-go/internal/domain/access"
	"github.com/accelor-hrms/hrms-backend-go/internal/pkg/calendar"
)

// Query selects approved ODs. A nil Window means all time.
type Query struct {
	Scope  access.Scope
	Window *calendar.Window
}

type ODRepository interface {
	// ListApproved returns ODs whose CEO stage is Approved and whose
	// [DateOut, DateIn] range overlaps the window.
	ListApproved(ctx context.Context, query Query) ([]OD, error)
}
