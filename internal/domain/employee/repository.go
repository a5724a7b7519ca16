package employee

import "context"

type EmployeeRepository interface {
	// GetByID returns the employee with its department joined.
	GetByID(ctx context.Context, id string) (Employee, error)

	// ListEmployeeIDsByDepartment returns business keys of every employee in a department.
	// An unknown department yields an empty slice, not an error.
	ListEmployeeIDsByDepartment(ctx context.Context, departmentID string) ([]string, error)

	// GetDepartmentNames maps each employee id to its department name.
	// Employees without a department are absent from the map.
	GetDepartmentNames(ctx context.Context, employeeIDs []string) (map[string]string, error)
}
