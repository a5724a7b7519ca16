package attendance

import (
	"log/slog"

	"github.com/accelor-hrms/hrms-backend-go/internal/domain/access"
	"github.com/accelor-hrms/hrms-backend-go/internal/pkg/calendar"
	"github.com/accelor-hrms/hrms-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type AttendanceFilter struct {
	EmployeeID   *string `json:"employeeId,omitempty"`
	DepartmentID *string `json:"departmentId,omitempty"`
	FromDate     *string `json:"fromDate,omitempty"` // YYYY-MM-DD
	ToDate       *string `json:"toDate,omitempty"`   // YYYY-MM-DD, defaults to fromDate
	Status       *string `json:"status,omitempty"`   // download only
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.EmployeeID != nil && validator.IsEmpty(*f.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId must not be blank",
		})
	}

	if f.DepartmentID != nil && !validator.IsValidUUID(*f.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "departmentId",
			Message: "departmentId must be a valid UUID",
		})
	}

	fromValid := false
	if f.FromDate != nil {
		if _, fromValid = validator.IsValidDate(*f.FromDate); !fromValid {
			errs = append(errs, validator.ValidationError{
				Field:   "fromDate",
				Message: "fromDate must be in YYYY-MM-DD format",
			})
		}
	}

	if f.ToDate != nil {
		toDate, valid := validator.IsValidDate(*f.ToDate)
		switch {
		case !valid:
			errs = append(errs, validator.ValidationError{
				Field:   "toDate",
				Message: "toDate must be in YYYY-MM-DD format",
			})
		case f.FromDate == nil:
			errs = append(errs, validator.ValidationError{
				Field:   "toDate",
				Message: "toDate requires fromDate",
			})
		case fromValid:
			fromDate, _ := validator.IsValidDate(*f.FromDate)
			if toDate.Before(fromDate) {
				errs = append(errs, validator.ValidationError{
					Field:   "toDate",
					Message: "toDate must not be before fromDate",
				})
			}
		}
	}

	if f.Status != nil && !validator.IsInSlice(*f.Status, Statuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: ErrInvalidStatus.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AccessFilter extracts the narrowing the scope resolver understands.
func (f AttendanceFilter) AccessFilter() access.Filter {
	return access.Filter{
		EmployeeID:   f.EmployeeID,
		DepartmentID: f.DepartmentID,
	}
}

// Window returns the inclusive date window, or nil when no fromDate was given.
// Call after Validate.
func (f AttendanceFilter) Window() *calendar.Window {
	if f.FromDate == nil {
		return nil
	}
	from, ok := validator.IsValidDate(*f.FromDate)
	if !ok {
		return nil
	}
	w := calendar.NewWindow(from, nil)
	if f.ToDate != nil {
		if to, ok := validator.IsValidDate(*f.ToDate); ok {
			w.To = to
		}
	}
	return &w
}

// StatusFilter returns the requested status, if any.
func (f AttendanceFilter) StatusFilter() *Status {
	if f.Status == nil {
		return nil
	}
	status := Status(*f.Status)
	return &status
}

// LogValue renders only the filters that were supplied.
func (f AttendanceFilter) LogValue() slog.Value {
	var attrs []slog.Attr
	for _, p := range []struct {
		key   string
		value *string
	}{
		{"employeeId", f.EmployeeID},
		{"departmentId", f.DepartmentID},
		{"fromDate", f.FromDate},
		{"toDate", f.ToDate},
		{"status", f.Status},
	} {
		if p.value != nil {
			attrs = append(attrs, slog.String(p.key, *p.value))
		}
	}
	return slog.GroupValue(attrs...)
}

type AttendanceResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employeeId"`
	UserID     string  `json:"userId"`
	Name       string  `json:"name"`
	LogDate    string  `json:"logDate"`
	TimeIn     *string `json:"timeIn,omitempty"`
	TimeOut    *string `json:"timeOut,omitempty"`
	Status     string  `json:"status"`
	HalfDay    *string `json:"halfDay"`
	OT         int     `json:"ot"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}
