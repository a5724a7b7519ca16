package access

import (
	"context"
	"slices"
)

type Role string

const (
	RoleEmployee Role = "Employee" // sees only their own records
	RoleHOD      Role = "HOD"      // head of department, sees their department
	RoleAdmin    Role = "Admin"
	RoleHR       Role = "HR"
	RoleCEO      Role = "CEO"
)

// IsPrivileged reports whether the role has an unrestricted view.
func (r Role) IsPrivileged() bool {
	switch r {
	case RoleAdmin, RoleHR, RoleCEO:
		return true
	default:
		return false
	}
}

// Caller is the authenticated identity behind a request.
type Caller struct {
	UserID     string // internal employee row id
	EmployeeID string // business key, matches attendance.employee_id
	Role       Role
}

// Filter holds the request-level narrowing a caller asked for.
type Filter struct {
	EmployeeID   *string
	DepartmentID *string
}

// Scope is the set of employee ids a caller may see. All means no restriction.
type Scope struct {
	All         bool
	EmployeeIDs []string
}

func Unrestricted() Scope {
	return Scope{All: true}
}

func Only(employeeIDs ...string) Scope {
	ids := make([]string, 0, len(employeeIDs))
	for _, id := range employeeIDs {
		if id != "" && !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	return Scope{EmployeeIDs: ids}
}

// IsEmpty reports whether nothing is visible under the scope.
func (s Scope) IsEmpty() bool {
	return !s.All && len(s.EmployeeIDs) == 0
}

// Contains reports whether employeeID is visible under the scope.
func (s Scope) Contains(employeeID string) bool {
	return s.All || slices.Contains(s.EmployeeIDs, employeeID)
}

// Narrow intersects the scope with a single employee id.
func (s Scope) Narrow(employeeID string) Scope {
	if !s.Contains(employeeID) {
		return Scope{}
	}
	return Only(employeeID)
}

type callerKey struct{}

// WithCaller stores the caller on the context.
func WithCaller(ctx context.Context, caller Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

// CallerFromContext returns the caller stored by WithCaller.
func CallerFromContext(ctx context.Context) (Caller, error) {
	caller, ok := ctx.Value(callerKey{}).(Caller)
	if !ok {
		return Caller{}, ErrCallerMissing
	}
	return caller, nil
}
