package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"type:varchar(255);not null"`
	Email           string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Department      string    `gorm:"type:varchar(100)"`
	Position        string    `gorm:"type:varchar(100)"`
	JoinDate        string    `gorm:"type:varchar(10)"`
	AnnualBalance   int       `gorm:"not null;default:15"`
	SickBalance     int       `gorm:"not null;default:10"`
	PersonalBalance int       `gorm:"not null;default:5"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// LeaveApplication records that an approved leave has been deducted, so a
// redelivered event cannot deduct twice.
type LeaveApplication struct {
	LeaveID       string `gorm:"type:varchar(64);primaryKey"`
	EmployeeEmail string `gorm:"type:varchar(255);not null;index"`
	LeaveType     string `gorm:"type:varchar(20);not null"`
	Days          int    `gorm:"not null"`
	CreatedAt     time.Time
}

func (LeaveApplication) TableName() string {
	return "leave_balance_applications"
}

const (
	DefaultAnnualBalance   = 15
	DefaultSickBalance     = 10
	DefaultPersonalBalance = 5
)

// balanceColumns maps a deductible leave type to its balance column.
// Unpaid leave has no balance.
var balanceColumns = map[string]string{
	"annual":   "annual_balance",
	"sick":     "sick_balance",
	"personal": "personal_balance",
}

func seedEmployees() []Employee {
	return []Employee{
		{ID: uuid.New(), Name: "John Doe", Email: "john@example.com", Department: "Engineering", Position: "Senior Developer", JoinDate: "2020-05-15", AnnualBalance: 15, SickBalance: 10, PersonalBalance: 5},
		{ID: uuid.New(), Name: "Jane Smith", Email: "jane@example.com", Department: "Marketing", Position: "Marketing Manager", JoinDate: "2019-03-10", AnnualBalance: 18, SickBalance: 10, PersonalBalance: 5},
		{ID: uuid.New(), Name: "Mike Johnson", Email: "mike@example.com", Department: "Sales", Position: "Sales Representative", JoinDate: "2021-01-20", AnnualBalance: 12, SickBalance: 10, PersonalBalance: 5},
		{ID: uuid.New(), Name: "Sarah Williams", Email: "sarah@example.com", Department: "Human Resources", Position: "HR Specialist", JoinDate: "2018-11-05", AnnualBalance: 20, SickBalance: 10, PersonalBalance: 5},
		{ID: uuid.New(), Name: "David Brown", Email: "david@example.com", Department: "Engineering", Position: "Frontend Developer", JoinDate: "2022-02-15", AnnualBalance: 10, SickBalance: 10, PersonalBalance: 5},
	}
}
