package app

import (
	"context"

	"go-leave/internal/auth"
	"go-leave/internal/config"
	"go-leave/internal/dashboard"
	"go-leave/internal/employee"
	"go-leave/internal/leave"
	"go-leave/internal/localstore"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/notify"
	"go-leave/internal/rbac"
	"go-leave/internal/rbac/infra"
	"go-leave/internal/shared/audit"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Dependencies is the infrastructure shared by every module. Redis and
// Outbox are optional.
type Dependencies struct {
	Config    config.Config
	GormDB    *gorm.DB
	Redis     *redis.Client
	Store     localstore.Store
	Hub       *notify.Hub
	Publisher notify.Publisher
	Outbox    kafka.OutboxRepository
	Audit     audit.Logger
	Logger    *zap.Logger
}

func registerModules(ctx context.Context, router *gin.Engine, deps Dependencies) error {
	secret := deps.Config.JWTSecret

	// --- Repositories ---
	authRepo, err := auth.NewStaticRepository()
	if err != nil {
		return err
	}
	employeeRepo := employee.NewRepository(deps.GormDB)
	leaveRepo := leave.NewRepository(deps.Store)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer, deps.Logger)

	// --- Services ---
	authService := auth.NewService(authRepo, secret, deps.Logger)
	employeeService := employee.NewService(employeeRepo, deps.Logger)
	leaveService := leave.NewServiceWithOutbox(leaveRepo, deps.Publisher, deps.Outbox, deps.Audit, deps.Logger)
	dashboardService := dashboard.NewService(leaveService, employeeService, deps.Logger)

	if err := employeeService.Seed(ctx); err != nil {
		return err
	}

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, deps.Config.IsProduction())
	rbacHandler := rbac.NewHandler(rbacService)
	employeeHandler := employee.NewHandler(employeeService)
	leaveHandler := leave.NewHandlerWithRedis(leaveService, deps.Redis, deps.Logger)
	dashboardHandler := dashboard.NewHandler(dashboardService)
	streamHandler := notify.NewHandler(deps.Hub, deps.Logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, secret)
		rbac.RegisterRoutes(api, rbacHandler, secret)
		employee.RegisterRoutes(api, employeeHandler, rbacService, secret)
		leave.RegisterRoutes(api, leaveHandler, rbacService, deps.Redis, secret, streamHandler.Stream)
		dashboard.RegisterRoutes(api, dashboardHandler, rbacService, secret)
	}

	return nil
}
