package approval

// Decision is the outcome of the HOD and CEO sign-off stages.
type Decision string

const (
	Pending  Decision = "Pending"
	Approved Decision = "Approved"
	Rejected Decision = "Rejected"
)

// AdminDecision is the outcome of the admin stage, which only acknowledges.
type AdminDecision string

const (
	AdminPending      AdminDecision = "Pending"
	AdminAcknowledged AdminDecision = "Acknowledged"
)

// Status tracks the three sign-off stages of a leave or OD request.
type Status struct {
	HOD   Decision
	Admin AdminDecision
	CEO   Decision
}

// IsApproved reports whether the final (CEO) stage approved the request.
// Earlier stages do not matter once the CEO has signed off.
func (s Status) IsApproved() bool {
	return s.CEO == Approved
}
