package employee_test

import (
	"context"
	"errors"
	"testing"

	"go-leave/internal/employee"
	employeeerrors "go-leave/internal/employee/errors"
	"go-leave/internal/employee/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := employee.NewService(repo)
	ctx := context.Background()

	id := uuid.New()
	repo.EXPECT().FindAll(ctx, "eng").Return([]employee.Employee{
		{ID: id, Name: "John Doe", Email: "john@example.com", Department: "Engineering", AnnualBalance: 15, SickBalance: 10, PersonalBalance: 5},
	}, nil)

	res, err := svc.List(ctx, employee.ListEmployeesRequest{Search: "eng"})
	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, id.String(), res[0].ID)
	assert.Equal(t, employee.Balance{Annual: 15, Sick: 10, Personal: 5}, res[0].LeaveBalance)
}

func TestService_GetBalance(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		setup   func(repo *mock.MockRepository)
		want    employee.Balance
		wantErr error
	}{
		{
			name: "known employee",
			setup: func(repo *mock.MockRepository) {
				repo.EXPECT().FindByEmail(ctx, "jane@example.com").
					Return(&employee.Employee{AnnualBalance: 18, SickBalance: 10, PersonalBalance: 5}, nil)
			},
			want: employee.Balance{Annual: 18, Sick: 10, Personal: 5},
		},
		{
			name: "unknown employee gets default",
			setup: func(repo *mock.MockRepository) {
				repo.EXPECT().FindByEmail(ctx, "jane@example.com").
					Return(nil, employeeerrors.ErrEmployeeNotFound)
			},
			want: employee.DefaultBalance(),
		},
		{
			name: "repository failure",
			setup: func(repo *mock.MockRepository) {
				repo.EXPECT().FindByEmail(ctx, "jane@example.com").
					Return(nil, errors.New("db down"))
			},
			wantErr: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockRepository(ctrl)
			tt.setup(repo)

			got, err := employee.NewService(repo).GetBalance(ctx, "jane@example.com")
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_ApplyApprovedLeave(t *testing.T) {
	ctx := context.Background()

	t.Run("deductible type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)

		repo.EXPECT().ApplyLeave(ctx, employee.LeaveApplication{
			LeaveID: "7", EmployeeEmail: "user@example.com", LeaveType: "annual", Days: 3,
		}).Return(nil)

		err := employee.NewService(repo).ApplyApprovedLeave(ctx, employee.ApplyLeaveInput{
			LeaveID: "7", Email: "user@example.com", LeaveType: " Annual ", Days: 3,
		})
		assert.NoError(t, err)
	})

	t.Run("unpaid skips repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)

		err := employee.NewService(repo).ApplyApprovedLeave(ctx, employee.ApplyLeaveInput{
			LeaveID: "8", Email: "user@example.com", LeaveType: "unpaid", Days: 2,
		})
		assert.NoError(t, err)
	})

	t.Run("unknown type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)

		err := employee.NewService(repo).ApplyApprovedLeave(ctx, employee.ApplyLeaveInput{
			LeaveID: "9", Email: "user@example.com", LeaveType: "sabbatical", Days: 2,
		})
		assert.ErrorIs(t, err, employeeerrors.ErrUnknownLeaveType)
	})

	t.Run("non positive days", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)

		err := employee.NewService(repo).ApplyApprovedLeave(ctx, employee.ApplyLeaveInput{
			LeaveID: "10", Email: "user@example.com", LeaveType: "sick", Days: 0,
		})
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidDays)
	})

	t.Run("repository error is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)

		repo.EXPECT().ApplyLeave(ctx, gomock.Any()).Return(employeeerrors.ErrLeaveAlreadyApplied)

		err := employee.NewService(repo).ApplyApprovedLeave(ctx, employee.ApplyLeaveInput{
			LeaveID: "11", Email: "user@example.com", LeaveType: "personal", Days: 1,
		})
		assert.ErrorIs(t, err, employeeerrors.ErrLeaveAlreadyApplied)
	})
}

func TestService_Seed(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	ctx := context.Background()

	repo.EXPECT().SeedDefaults(ctx).Return(5, nil)
	assert.NoError(t, employee.NewService(repo).Seed(ctx))
}
