package leave

import (
	"fmt"
	"strings"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

const (
	TypeAnnual   = "annual"
	TypeSick     = "sick"
	TypePersonal = "personal"
	TypeUnpaid   = "unpaid"
)

// Store keys. Every employee has their own history list.
const (
	AdminStoreKey    = "adminLeaveRequests"
	HistoryKeyPrefix = "userLeaveHistory"
)

const dateLayout = "2006-01-02"

var typeNames = map[string]string{
	TypeAnnual:   "Annual Leave",
	TypeSick:     "Sick Leave",
	TypePersonal: "Personal Leave",
	TypeUnpaid:   "Unpaid Leave",
}

// LeaveRequest is the record stored in both the admin list and the
// submitting employee's history list. The id is the only join key.
type LeaveRequest struct {
	ID              string `json:"id"`
	EmployeeName    string `json:"employeeName"`
	EmployeeEmail   string `json:"employeeEmail"`
	Type            string `json:"type"`
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
	Reason          string `json:"reason"`
	Status          string `json:"status"`
	AppliedOn       string `json:"appliedOn"`
	DecidedBy       string `json:"decidedBy,omitempty"`
	DecidedAt       string `json:"decidedAt,omitempty"`
	RejectionReason string `json:"rejectionReason,omitempty"`
}

func HistoryKey(email string) string {
	return fmt.Sprintf("%s:%s", HistoryKeyPrefix, strings.ToLower(strings.TrimSpace(email)))
}

func IsValidType(t string) bool {
	_, ok := typeNames[t]
	return ok
}

// TypeName returns the display label, or the raw value when unknown.
func TypeName(t string) string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return t
}

func seedRequests() []LeaveRequest {
	return []LeaveRequest{
		{ID: "1", EmployeeName: "John Doe", EmployeeEmail: "john@example.com", Type: TypeAnnual, StartDate: "2024-04-10", EndDate: "2024-04-15", Reason: "Family vacation", Status: StatusPending, AppliedOn: "2024-03-25"},
		{ID: "2", EmployeeName: "Jane Smith", EmployeeEmail: "jane@example.com", Type: TypeSick, StartDate: "2024-04-05", EndDate: "2024-04-06", Reason: "Doctor's appointment", Status: StatusPending, AppliedOn: "2024-04-04"},
		{ID: "3", EmployeeName: "Mike Johnson", EmployeeEmail: "mike@example.com", Type: TypePersonal, StartDate: "2024-04-20", EndDate: "2024-04-20", Reason: "Personal matters", Status: StatusPending, AppliedOn: "2024-04-01"},
		{ID: "4", EmployeeName: "Sarah Williams", EmployeeEmail: "sarah@example.com", Type: TypeUnpaid, StartDate: "2024-05-01", EndDate: "2024-05-10", Reason: "Extended personal trip", Status: StatusPending, AppliedOn: "2024-03-15"},
		{ID: "5", EmployeeName: "David Brown", EmployeeEmail: "david@example.com", Type: TypeAnnual, StartDate: "2024-06-15", EndDate: "2024-06-30", Reason: "Summer vacation", Status: StatusPending, AppliedOn: "2024-03-30"},
	}
}
