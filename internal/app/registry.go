package app

import (
	"go-leave/internal/approval"
	"go-leave/internal/audit"
	"go-leave/internal/balance"
	"go-leave/internal/config"
	"go-leave/internal/datewindow"
	"go-leave/internal/employee"
	"go-leave/internal/holiday"
	"go-leave/internal/leave"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/middleware"
	"go-leave/internal/overlap"
	"go-leave/internal/ratelimit"
	"go-leave/internal/rbac"
	"go-leave/internal/rbac/infra"
	"go-leave/internal/reconciliation"
	"go-leave/internal/request"
	"go-leave/internal/shared/counter"
	"go-leave/internal/substitute"
	"go-leave/internal/wfh"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// services is the dependency graph shared by the API and the worker.
type services struct {
	employeeRepo employee.Repository
	requestRepo  request.Repository
	outboxRepo   kafka.OutboxRepository

	audit          audit.Service
	balance        balance.Service
	holiday        holiday.Service
	employee       employee.Service
	approval       approval.Service
	leave          leave.Service
	wfh            wfh.Service
	reconciliation reconciliation.Service
}

func buildServices(db *gorm.DB, rdb *redis.Client, cfg *config.Config, logger *zap.Logger) (*services, error) {
	employeeRepo := employee.NewRepository(db)
	requestRepo := request.NewRepository(db)
	counterRepo := counter.NewRepository(db)
	outboxRepo := kafka.NewOutboxRepository(db)

	hierarchy := employee.NewHierarchy(employeeRepo, cfg.Policy.MaxHierarchyDepth)

	approvalCfg := approval.Config{EscalateAfter: cfg.Policy.EscalationThreshold}
	if cfg.Policy.ExecutiveFallbackID != "" {
		id, err := uuid.Parse(cfg.Policy.ExecutiveFallbackID)
		if err != nil {
			return nil, err
		}
		approvalCfg.ExecutiveFallback = &id
	}

	auditService := audit.NewService(audit.NewRepository(db), logger)
	balanceService := balance.NewService(balance.NewRepository(db), requestRepo, logger)
	holidayService := holiday.NewService(holiday.NewRepository(db), rdb, logger)
	approvalService := approval.NewService(db, approval.NewRepository(db), requestRepo, hierarchy,
		balanceService, outboxRepo, auditService, approvalCfg, logger)

	overlaps := overlap.NewDetector(requestRepo, logger)
	leaveValidator := leave.NewValidator(
		datewindow.NewValidator(datewindow.LeaveRules(cfg.Policy.LeaveMaxSpanDays, cfg.Policy.LeaveMinNoticeDays)),
		holidayService,
		requestRepo,
		overlaps,
		substitute.NewValidator(employeeRepo, requestRepo, logger),
		balanceService,
		logger,
	)
	wfhValidator := wfh.NewValidator(
		datewindow.NewValidator(datewindow.WFHRules(cfg.Policy.WFHMaxSpanDays, cfg.Policy.WFHMinNoticeDays)),
		holidayService,
		requestRepo,
		overlaps,
		logger,
	)

	reconCfg := reconciliation.ConfigFromPolicy(
		cfg.Policy.NotificationRetentionDays,
		cfg.Policy.AuditRetentionMonths,
		cfg.Policy.CancelledRetentionDays,
		cfg.Policy.ArchiveAfterMonths,
	)

	return &services{
		employeeRepo: employeeRepo,
		requestRepo:  requestRepo,
		outboxRepo:   outboxRepo,

		audit:    auditService,
		balance:  balanceService,
		holiday:  holidayService,
		employee: employee.NewService(db, employeeRepo, hierarchy, counterRepo, outboxRepo, logger),
		approval: approvalService,
		leave: leave.NewService(db, requestRepo, counterRepo, leaveValidator, balanceService,
			approvalService, outboxRepo, auditService, logger),
		wfh: wfh.NewService(db, requestRepo, counterRepo, wfhValidator, approvalService,
			outboxRepo, auditService, logger),
		reconciliation: reconciliation.NewService(reconciliation.NewRepository(db), requestRepo,
			approvalService, balanceService, auditService, employeeRepo, reconCfg, logger),
	}, nil
}

func newRateLimiter(rdb *redis.Client, cfg config.RateLimit, logger *zap.Logger) *ratelimit.Limiter {
	var store ratelimit.Store = ratelimit.NewMemoryStore()
	if cfg.Backend == "redis" {
		store = ratelimit.NewRedisStore(rdb, "ratelimit")
	}
	policies := ratelimit.PoliciesFromBudgets(cfg.Window, cfg.SubmitBudget, cfg.ApproveBudget, cfg.CancelBudget)
	return ratelimit.NewLimiter(store, policies, logger)
}

func registerModules(
	router *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	logger *zap.Logger,
) (*services, error) {
	svc, err := buildServices(db, rdb, cfg, logger)
	if err != nil {
		return nil, err
	}

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return nil, err
	}
	rbacService := rbac.NewService(rbac.NewRepository(db), enforcer, logger)
	if err := rbacService.LoadPolicy(); err != nil {
		logger.Warn("initial rbac policy load failed, retrying on first request", zap.Error(err))
	}

	limiter := newRateLimiter(rdb, cfg.RateLimit, logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(svc.employee, logger)
	leaveHandler := leave.NewHandler(svc.leave, logger)
	wfhHandler := wfh.NewHandler(svc.wfh, logger)
	approvalHandler := approval.NewHandler(svc.approval, logger)
	balanceHandler := balance.NewHandler(svc.balance, logger)
	holidayHandler := holiday.NewHandler(svc.holiday, logger)
	auditHandler := audit.NewHandler(svc.audit, logger)
	reconciliationHandler := reconciliation.NewHandler(svc.reconciliation, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(
		middleware.RequestID(),
		middleware.RateLimitByIP(rate.Limit(cfg.RateLimit.IPPerSecond), cfg.RateLimit.IPBurst),
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.ExtractUserID(),
		middleware.ContextLogger(logger),
	)
	{
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		leave.RegisterRoutes(api, leaveHandler, rbacService, limiter, rdb, logger)
		wfh.RegisterRoutes(api, wfhHandler, rbacService, limiter, rdb, logger)
		approval.RegisterRoutes(api, approvalHandler, rbacService, limiter, rdb, logger)
		balance.RegisterRoutes(api, balanceHandler, rbacService)
		holiday.RegisterRoutes(api, holidayHandler, rbacService)
		audit.RegisterRoutes(api, auditHandler, rbacService)
		reconciliation.RegisterRoutes(api, reconciliationHandler, rbacService)
		rbac.RegisterRoutes(api, rbacHandler, rbacService)
	}

	return svc, nil
}
