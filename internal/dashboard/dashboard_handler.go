package dashboard

import (
	"net/http"

	"go-leave/internal/middleware"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Employee(c *gin.Context) {
	viewer := Viewer{
		Name:  c.GetString(middleware.ContextName),
		Email: c.GetString(middleware.ContextEmail),
		Role:  c.GetString(middleware.ContextRole),
	}

	resp, err := h.service.EmployeeSummary(c.Request.Context(), viewer)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Admin(c *gin.Context) {
	resp, err := h.service.AdminSummary(c.Request.Context())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
