package employee

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context, search string) ([]Employee, error)
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	Count(ctx context.Context) (int64, error)
	SeedDefaults(ctx context.Context) (int, error)
	ApplyLeave(ctx context.Context, app LeaveApplication) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context, search string) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Scopes(searchScope(search)).
		Order("name ASC").
		Find(&employees).Error
	return employees, err
}

// searchScope matches name, email, department or position case-insensitively.
// An empty term matches everything.
func searchScope(search string) func(db *gorm.DB) *gorm.DB {
	term := strings.ToLower(strings.TrimSpace(search))
	return func(db *gorm.DB) *gorm.DB {
		if term == "" {
			return db
		}
		like := "%" + term + "%"
		return db.Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(department) LIKE ? OR LOWER(position) LIKE ?",
			like, like, like, like,
		)
	}
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&e).Error
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return &e, nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Employee{}).Count(&n).Error
	return n, err
}

// SeedDefaults inserts the sample employees when the table is empty and
// reports how many rows were added.
func (r *repository) SeedDefaults(ctx context.Context) (int, error) {
	n, err := r.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	seed := seedEmployees()
	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "email"}}, DoNothing: true}).
		Create(&seed).Error
	if err != nil {
		return 0, err
	}
	return len(seed), nil
}

// ApplyLeave records the application and deducts its days in one
// transaction. The balance never drops below zero.
func (r *repository) ApplyLeave(ctx context.Context, app LeaveApplication) error {
	column, ok := balanceColumns[app.LeaveType]
	if !ok {
		return nil
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&app).Error; err != nil {
			return err
		}

		res := tx.Model(&Employee{}).
			Where("LOWER(email) = ?", strings.ToLower(app.EmployeeEmail)).
			Update(column, gorm.Expr("CASE WHEN "+column+" > ? THEN "+column+" - ? ELSE 0 END", app.Days, app.Days))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return mapRepositoryError(err)
}
