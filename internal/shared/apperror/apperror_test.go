package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-leave/internal/shared/apperror"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps its status", func(t *testing.T) {
		err := apperror.New(apperror.CodeConflict, "already decided", http.StatusConflict)
		got := apperror.ToHTTP(fmt.Errorf("approve: %w", err))

		assert.Equal(t, http.StatusConflict, got.Status)
		assert.Equal(t, apperror.CodeConflict, got.Code)
		assert.Equal(t, "already decided", got.Message)
	})

	t.Run("unknown error is hidden", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("redis: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
		assert.Equal(t, "Internal server error", got.Message)
	})
}

func TestWrap(t *testing.T) {
	cause := errors.New("write failed")
	wrapped := apperror.Wrap(cause, apperror.ErrInternal)

	assert.ErrorIs(t, wrapped, cause)
	assert.ErrorIs(t, wrapped, apperror.ErrInternal)
	assert.Nil(t, apperror.Wrap(nil, apperror.ErrInternal))
}

type bindTarget struct {
	LeaveType string `json:"leave_type" binding:"required"`
	Reason    string `json:"reason" binding:"omitempty,min=3"`
}

type camelTarget struct {
	StartDate string `json:"startDate" binding:"required"`
}

func TestMapValidationError(t *testing.T) {
	apperror.Init()

	t.Run("required field", func(t *testing.T) {
		err := binding.Validator.ValidateStruct(bindTarget{})
		got := apperror.MapValidationError(err)

		assert.Equal(t, apperror.CodeValidation, got.Code)
		assert.Equal(t, "Leave Type is required", got.Message)
	})

	t.Run("camel case json name", func(t *testing.T) {
		err := binding.Validator.ValidateStruct(camelTarget{})
		got := apperror.MapValidationError(err)

		assert.Equal(t, "Start Date is required", got.Message)
	})

	t.Run("other rule", func(t *testing.T) {
		err := binding.Validator.ValidateStruct(bindTarget{LeaveType: "sick", Reason: "x"})
		got := apperror.MapValidationError(err)

		assert.Equal(t, "Reason is invalid", got.Message)
	})

	t.Run("non validator error", func(t *testing.T) {
		got := apperror.MapValidationError(errors.New("EOF"))
		assert.Equal(t, "Invalid input", got.Message)
		assert.Equal(t, http.StatusBadRequest, got.HTTPStatus)
	})
}
