package dashboard

import (
	"context"

	"go-leave/internal/employee"
	"go-leave/internal/leave"

	"go.uber.org/zap"
)

type Service interface {
	EmployeeSummary(ctx context.Context, viewer Viewer) (EmployeeDashboard, error)
	AdminSummary(ctx context.Context) (AdminDashboard, error)
}

type service struct {
	leaves    leave.Service
	employees employee.Service
	logger    *zap.Logger
}

func NewService(leaves leave.Service, employees employee.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{leaves: leaves, employees: employees, logger: l}
}

func (s *service) EmployeeSummary(ctx context.Context, viewer Viewer) (EmployeeDashboard, error) {
	balance, err := s.employees.GetBalance(ctx, viewer.Email)
	if err != nil {
		return EmployeeDashboard{}, err
	}

	history, err := s.leaves.GetHistory(ctx, viewer.Email)
	if err != nil {
		return EmployeeDashboard{}, err
	}

	return EmployeeDashboard{
		Name:          viewer.Name,
		Email:         viewer.Email,
		Role:          viewer.Role,
		LeaveBalance:  balance,
		TotalRequests: len(history),
		Requests:      countByStatus(history),
	}, nil
}

func (s *service) AdminSummary(ctx context.Context) (AdminDashboard, error) {
	total, err := s.employees.Count(ctx)
	if err != nil {
		s.logger.Error("count employees failed", zap.Error(err))
		return AdminDashboard{}, err
	}

	all, err := s.leaves.GetAll(ctx, leave.ListFilter{})
	if err != nil {
		return AdminDashboard{}, err
	}

	return AdminDashboard{
		TotalEmployees: total,
		TotalRequests:  len(all),
		Requests:       countByStatus(all),
	}, nil
}

func countByStatus(items []leave.LeaveResponse) StatusCounts {
	var c StatusCounts
	for _, it := range items {
		switch it.Status {
		case leave.StatusPending:
			c.Pending++
		case leave.StatusApproved:
			c.Approved++
		case leave.StatusRejected:
			c.Rejected++
		}
	}
	return c
}
