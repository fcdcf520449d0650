package employee

import (
	"errors"
	"strings"

	employeeerrors "go-leave/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const leaveApplicationPK = "leave_balance_applications_pkey"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return employeeerrors.ErrLeaveAlreadyApplied
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == leaveApplicationPK {
			return employeeerrors.ErrLeaveAlreadyApplied
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "unique constraint failed") && strings.Contains(errMsg, "leave_balance_applications") {
		return employeeerrors.ErrLeaveAlreadyApplied
	}
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, leaveApplicationPK) {
		return employeeerrors.ErrLeaveAlreadyApplied
	}

	return err
}
