package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/accelor-hrms/hrms-backend-go/internal/domain/employee"
	"github.com/accelor-hrms/hrms-backend-go/internal/pkg/database"
	"github.com/accelor-hrms/hrms-backend-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if !validator.IsValidUUID(id) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}

	q := GetQuerier(ctx, e.db)

	query := `
		SELECT e.id, e.employee_id, e.name, e.department_id::text, d.name
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE e.id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.EmployeeID, &emp.Name, &emp.DepartmentID, &emp.DepartmentName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id %s: %w", id, err)
	}

	return emp, nil
}

// ListEmployeeIDsByDepartment implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListEmployeeIDsByDepartment(ctx context.Context, departmentID string) ([]string, error) {
	if !validator.IsValidUUID(departmentID) {
		return []string{}, nil
	}

	q := GetQuerier(ctx, e.db)

	query := `
		SELECT employee_id
		FROM employees
		WHERE department_id = $1
		ORDER BY employee_id ASC
	`

	rows, err := q.Query(ctx, query, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees of department %s: %w", departmentID, err)
	}
	defer rows.Close()

	employeeIDs := make([]string, 0)
	for rows.Next() {
		var employeeID string
		if err := rows.Scan(&employeeID); err != nil {
			return nil, fmt.Errorf("failed to scan employee id: %w", err)
		}
		employeeIDs = append(employeeIDs, employeeID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employee ids: %w", err)
	}

	return employeeIDs, nil
}

// GetDepartmentNames implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetDepartmentNames(ctx context.Context, employeeIDs []string) (map[string]string, error) {
	names := make(map[string]string, len(employeeIDs))
	if len(employeeIDs) == 0 {
		return names, nil
	}

	q := GetQuerier(ctx, e.db)

	query := `
		SELECT e.employee_id, d.name
		FROM employees e
		JOIN departments d ON d.id = e.department_id
		WHERE e.employee_id = ANY($1)
	`

	rows, err := q.Query(ctx, query, employeeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get department names: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var employeeID, departmentName string
		if err := rows.Scan(&employeeID, &departmentName); err != nil {
			return nil, fmt.Errorf("failed to scan department name: %w", err)
		}
		names[employeeID] = departmentName
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate department names: %w", err)
	}

	return names, nil
}
