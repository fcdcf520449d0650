package events

import "time"

const LeaveRequestTopic = "hr.leave.request.v1"

const (
	LeaveSubmitted = "leave_submitted"
	LeaveApproved  = "leave_approved"
	LeaveRejected  = "leave_rejected"
)

// LeaveRequestEvent is published for every lifecycle change of a leave
// request, keyed by leave id.
type LeaveRequestEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	LeaveID       string    `json:"leave_id"`
	EmployeeName  string    `json:"employee_name"`
	EmployeeEmail string    `json:"employee_email"`
	LeaveType     string    `json:"leave_type"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	TotalDays     int       `json:"total_days"`
	Status        string    `json:"status"`
	DecidedBy     string    `json:"decided_by,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}
