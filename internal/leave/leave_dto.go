package leave

type SubmitLeaveRequest struct {
	LeaveType string `json:"leaveType" binding:"required"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
}

type RejectLeaveRequest struct {
	Reason string `json:"reason" binding:"omitempty,max=500"`
}

// Applicant is the authenticated employee submitting a request.
type Applicant struct {
	Name  string
	Email string
}

type LeaveResponse struct {
	ID              string `json:"id"`
	EmployeeName    string `json:"employeeName"`
	EmployeeEmail   string `json:"employeeEmail"`
	Type            string `json:"type"`
	TypeName        string `json:"typeName"`
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
	TotalDays       int    `json:"totalDays"`
	Reason          string `json:"reason"`
	Status          string `json:"status"`
	AppliedOn       string `json:"appliedOn"`
	DecidedBy       string `json:"decidedBy,omitempty"`
	DecidedAt       string `json:"decidedAt,omitempty"`
	RejectionReason string `json:"rejectionReason,omitempty"`
}

type ListFilter struct {
	Status string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
}
