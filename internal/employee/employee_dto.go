package employee

type Balance struct {
	Annual   int `json:"annual"`
	Sick     int `json:"sick"`
	Personal int `json:"personal"`
}

type EmployeeResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Department   string  `json:"department"`
	Position     string  `json:"position"`
	JoinDate     string  `json:"joinDate"`
	LeaveBalance Balance `json:"leaveBalance"`
}

type ListEmployeesRequest struct {
	Search string `form:"search"`
}

// ApplyLeaveInput describes an approved leave to deduct.
type ApplyLeaveInput struct {
	LeaveID   string
	Email     string
	LeaveType string
	Days      int
}

func DefaultBalance() Balance {
	return Balance{
		Annual:   DefaultAnnualBalance,
		Sick:     DefaultSickBalance,
		Personal: DefaultPersonalBalance,
	}
}
