package employee

// Employee is the slice of the employee record the attendance views need.
type Employee struct {
	ID           string // internal row id, carried as user_id in tokens
	EmployeeID   string // business key shared with attendance, leave and OD rows
	Name         string
	DepartmentID *string

	// DTO / Join
	DepartmentName *string
}

const UnknownDepartment = "Unknown"

// DepartmentNameOrDefault returns the joined department name, or "Unknown".
func (e Employee) DepartmentNameOrDefault() string {
	if e.DepartmentName == nil || *e.DepartmentName == "" {
		return UnknownDepartment
	}
	return *e.DepartmentName
}
