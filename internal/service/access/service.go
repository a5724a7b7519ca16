package access

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/accelor-hrms/hrms-backend-go/internal/domain/access"
	"github.com/accelor-hrms/hrms-backend-go/internal/domain/employee"
)

type ScopeResolverImpl struct {
	employee.EmployeeRepository
}

func NewScopeResolver(employeeRepo employee.EmployeeRepository) access.ScopeResolver {
	return &ScopeResolverImpl{
		EmployeeRepository: employeeRepo,
	}
}

// PolicyFor implements access.ScopeResolver.
func (s *ScopeResolverImpl) PolicyFor(caller access.Caller) (access.Policy, error) {
	switch {
	case caller.Role == access.RoleEmployee:
		return selfPolicy{employeeID: caller.EmployeeID}, nil
	case caller.Role == access.RoleHOD:
		return departmentPolicy{repo: s.EmployeeRepository, userID: caller.UserID}, nil
	case caller.Role.IsPrivileged():
		return privilegedPolicy{repo: s.EmployeeRepository}, nil
	default:
		return nil, fmt.Errorf("%w: %q", access.ErrUnknownRole, caller.Role)
	}
}

// Resolve implements access.ScopeResolver.
func (s *ScopeResolverImpl) Resolve(ctx context.Context, caller access.Caller, filter access.Filter) (access.Scope, error) {
	policy, err := s.PolicyFor(caller)
	if err != nil {
		return access.Scope{}, err
	}
	return policy.Scope(ctx, filter)
}

// selfPolicy pins an employee to their own records; request filters are ignored.
type selfPolicy struct {
	employeeID string
}

func (p selfPolicy) Scope(ctx context.Context, filter access.Filter) (access.Scope, error) {
	return access.Only(p.employeeID), nil
}

// departmentPolicy limits a head of department to the members of the
// department stored on their own employee record.
type departmentPolicy struct {
	repo   employee.EmployeeRepository
	userID string
}

func (p departmentPolicy) Scope(ctx context.Context, filter access.Filter) (access.Scope, error) {
	hod, err := p.repo.GetByID(ctx, p.userID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			slog.WarnContext(ctx, "HOD employee record not found, scope is empty", "user_id", p.userID)
			return access.Scope{}, nil
		}
		return access.Scope{}, fmt.Errorf("failed to get HOD employee: %w", err)
	}

	if hod.DepartmentID == nil {
		slog.WarnContext(ctx, "HOD has no department, scope is empty", "user_id", p.userID)
		return access.Scope{}, nil
	}

	slog.DebugContext(ctx, "resolved HOD department",
		"user_id", p.userID,
		"department", hod.DepartmentNameOrDefault(),
	)

	// A departmentId filter naming another department is ignored.
	employeeIDs, err := p.repo.ListEmployeeIDsByDepartment(ctx, *hod.DepartmentID)
	if err != nil {
		return access.Scope{}, fmt.Errorf("failed to list department employees: %w", err)
	}

	scope := access.Only(employeeIDs...)
	if filter.EmployeeID != nil {
		scope = scope.Narrow(*filter.EmployeeID)
	}
	return scope, nil
}

// privilegedPolicy sees everyone unless the request narrows it.
type privilegedPolicy struct {
	repo employee.EmployeeRepository
}

func (p privilegedPolicy) Scope(ctx context.Context, filter access.Filter) (access.Scope, error) {
	scope := access.Unrestricted()

	if filter.DepartmentID != nil {
		employeeIDs, err := p.repo.ListEmployeeIDsByDepartment(ctx, *filter.DepartmentID)
		if err != nil {
			return access.Scope{}, fmt.Errorf("failed to list department employees: %w", err)
		}
		scope = access.Only(employeeIDs...)
	}

	if filter.EmployeeID != nil {
		scope = scope.Narrow(*filter.EmployeeID)
	}

	return scope, nil
}
