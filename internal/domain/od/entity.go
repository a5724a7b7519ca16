package od

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/accelor-hrms/hrms-backend-go/internal/domain/approval"
)

// OD is an on-duty request: the employee is away from their desk on work
// between DateOut and DateIn, both days included.
type OD struct {
	ID         string
	EmployeeID string
	Name       string
	DateOut    civil.Date
	DateIn     civil.Date
	Purpose    string
	Status     approval.Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
