package employee

import (
	"context"
	"errors"
	"strings"

	employeeerrors "go-leave/internal/employee/errors"

	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, req ListEmployeesRequest) ([]EmployeeResponse, error)
	Count(ctx context.Context) (int64, error)
	GetBalance(ctx context.Context, email string) (Balance, error)
	ApplyApprovedLeave(ctx context.Context, in ApplyLeaveInput) error
	Seed(ctx context.Context) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) List(ctx context.Context, req ListEmployeesRequest) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindAll(ctx, req.Search)
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return nil, err
	}

	resp := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		resp = append(resp, mapToResponse(e))
	}
	return resp, nil
}

func (s *service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// GetBalance falls back to the default allowance for people who are not in
// the directory, such as the demo accounts.
func (s *service) GetBalance(ctx context.Context, email string) (Balance, error) {
	e, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, employeeerrors.ErrEmployeeNotFound) {
			return DefaultBalance(), nil
		}
		s.logger.Error("get balance failed", zap.String("email", email), zap.Error(err))
		return Balance{}, err
	}
	return balanceOf(*e), nil
}

func (s *service) ApplyApprovedLeave(ctx context.Context, in ApplyLeaveInput) error {
	leaveType := strings.ToLower(strings.TrimSpace(in.LeaveType))

	if leaveType == "unpaid" {
		s.logger.Debug("unpaid leave has no balance to deduct", zap.String("leave_id", in.LeaveID))
		return nil
	}
	if _, ok := balanceColumns[leaveType]; !ok {
		return employeeerrors.ErrUnknownLeaveType
	}
	if in.Days <= 0 {
		return employeeerrors.ErrInvalidDays
	}

	err := s.repo.ApplyLeave(ctx, LeaveApplication{
		LeaveID:       in.LeaveID,
		EmployeeEmail: in.Email,
		LeaveType:     leaveType,
		Days:          in.Days,
	})
	if err != nil {
		s.logger.Warn("apply approved leave failed",
			zap.String("leave_id", in.LeaveID),
			zap.String("email", in.Email),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("approved leave deducted",
		zap.String("leave_id", in.LeaveID),
		zap.String("email", in.Email),
		zap.String("leave_type", leaveType),
		zap.Int("days", in.Days),
	)
	return nil
}

func (s *service) Seed(ctx context.Context) error {
	n, err := s.repo.SeedDefaults(ctx)
	if err != nil {
		s.logger.Error("seed employees failed", zap.Error(err))
		return err
	}
	if n > 0 {
		s.logger.Info("employees seeded", zap.Int("count", n))
	}
	return nil
}

func balanceOf(e Employee) Balance {
	return Balance{Annual: e.AnnualBalance, Sick: e.SickBalance, Personal: e.PersonalBalance}
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID.String(),
		Name:         e.Name,
		Email:        e.Email,
		Department:   e.Department,
		Position:     e.Position,
		JoinDate:     e.JoinDate,
		LeaveBalance: balanceOf(e),
	}
}
