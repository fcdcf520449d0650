package dashboard

import "go-leave/internal/employee"

type StatusCounts struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// Viewer is the authenticated caller, taken from the session claims.
type Viewer struct {
	Name  string
	Email string
	Role  string
}

type EmployeeDashboard struct {
	Name          string           `json:"name"`
	Email         string           `json:"email"`
	Role          string           `json:"role"`
	LeaveBalance  employee.Balance `json:"leaveBalance"`
	TotalRequests int              `json:"totalRequests"`
	Requests      StatusCounts     `json:"requests"`
}

type AdminDashboard struct {
	TotalEmployees int64        `json:"totalEmployees"`
	TotalRequests  int          `json:"totalRequests"`
	Requests       StatusCounts `json:"requests"`
}
