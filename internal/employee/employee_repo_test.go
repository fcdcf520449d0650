package employee_test

import (
	"context"
	"testing"

	"go-leave/internal/employee"
	employeeerrors "go-leave/internal/employee/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRepo(t *testing.T) employee.Repository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	assert.NoError(t, err)
	sqlDB, err := db.DB()
	assert.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	assert.NoError(t, db.AutoMigrate(&employee.Employee{}, &employee.LeaveApplication{}))

	repo := employee.NewRepository(db)
	n, err := repo.SeedDefaults(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 5, n)
	return repo
}

func TestRepository_SeedDefaults(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)

	n, err := repo.SeedDefaults(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 0, n)

	total, err := repo.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), total)
}

func TestRepository_FindAll(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)

	t.Run("no search", func(t *testing.T) {
		all, err := repo.FindAll(ctx, "")
		assert.NoError(t, err)
		assert.Len(t, all, 5)
		assert.Equal(t, "David Brown", all[0].Name)
	})

	t.Run("by department", func(t *testing.T) {
		res, err := repo.FindAll(ctx, "ENGINEERING")
		assert.NoError(t, err)
		assert.Len(t, res, 2)
	})

	t.Run("by email", func(t *testing.T) {
		res, err := repo.FindAll(ctx, "sarah@")
		assert.NoError(t, err)
		assert.Len(t, res, 1)
		assert.Equal(t, "Sarah Williams", res[0].Name)
	})

	t.Run("no match", func(t *testing.T) {
		res, err := repo.FindAll(ctx, "nobody")
		assert.NoError(t, err)
		assert.Empty(t, res)
	})
}

func TestRepository_FindByEmail(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)

	e, err := repo.FindByEmail(ctx, " Jane@Example.com ")
	assert.NoError(t, err)
	assert.Equal(t, 18, e.AnnualBalance)

	_, err = repo.FindByEmail(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

func TestRepository_ApplyLeave(t *testing.T) {
	ctx := context.Background()

	t.Run("deducts matching balance", func(t *testing.T) {
		repo := setupRepo(t)

		err := repo.ApplyLeave(ctx, employee.LeaveApplication{
			LeaveID: "l-1", EmployeeEmail: "john@example.com", LeaveType: "annual", Days: 3,
		})
		assert.NoError(t, err)

		e, err := repo.FindByEmail(ctx, "john@example.com")
		assert.NoError(t, err)
		assert.Equal(t, 12, e.AnnualBalance)
		assert.Equal(t, 10, e.SickBalance)
	})

	t.Run("never below zero", func(t *testing.T) {
		repo := setupRepo(t)

		err := repo.ApplyLeave(ctx, employee.LeaveApplication{
			LeaveID: "l-2", EmployeeEmail: "john@example.com", LeaveType: "personal", Days: 9,
		})
		assert.NoError(t, err)

		e, err := repo.FindByEmail(ctx, "john@example.com")
		assert.NoError(t, err)
		assert.Equal(t, 0, e.PersonalBalance)
	})

	t.Run("same leave twice", func(t *testing.T) {
		repo := setupRepo(t)
		app := employee.LeaveApplication{
			LeaveID: "l-3", EmployeeEmail: "mike@example.com", LeaveType: "sick", Days: 2,
		}

		assert.NoError(t, repo.ApplyLeave(ctx, app))
		err := repo.ApplyLeave(ctx, app)
		assert.ErrorIs(t, err, employeeerrors.ErrLeaveAlreadyApplied)

		e, err := repo.FindByEmail(ctx, "mike@example.com")
		assert.NoError(t, err)
		assert.Equal(t, 8, e.SickBalance)
	})

	t.Run("unknown employee rolls back", func(t *testing.T) {
		repo := setupRepo(t)
		app := employee.LeaveApplication{
			LeaveID: "l-4", EmployeeEmail: "ghost@example.com", LeaveType: "annual", Days: 1,
		}

		err := repo.ApplyLeave(ctx, app)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)

		// the application row was rolled back, so a later retry is not a duplicate
		err = repo.ApplyLeave(ctx, app)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("unpaid is ignored", func(t *testing.T) {
		repo := setupRepo(t)

		err := repo.ApplyLeave(ctx, employee.LeaveApplication{
			LeaveID: "l-5", EmployeeEmail: "david@example.com", LeaveType: "unpaid", Days: 4,
		})
		assert.NoError(t, err)

		e, err := repo.FindByEmail(ctx, "david@example.com")
		assert.NoError(t, err)
		assert.Equal(t, 10, e.AnnualBalance)
		assert.Equal(t, 10, e.SickBalance)
		assert.Equal(t, 5, e.PersonalBalance)
	})
}
