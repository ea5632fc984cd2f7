package routes

import (
	"context"
	"fmt"

	"maintenance-system/internal/listeners"
	"maintenance-system/internal/repositories"
	"maintenance-system/internal/services"
	"maintenance-system/pkg/eventbus"
	"maintenance-system/pkg/middleware"
	"maintenance-system/pkg/service"
	"maintenance-system/pkg/websocket"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type Loggers struct {
	Main    *zap.Logger
	Auth    *zap.Logger
	Request *zap.Logger
	Storage *zap.Logger
}

// NewLoggers derives the per-area loggers from one root logger.
func NewLoggers(root *zap.Logger) *Loggers {
	return &Loggers{
		Main:    root.Named("main"),
		Auth:    root.Named("auth"),
		Request: root.Named("request"),
		Storage: root.Named("storage"),
	}
}

// InitRouter loads every collection from storage and mounts the API.
// metrics may be nil, in which case /metrics is not served.
func InitRouter(
	ctx context.Context,
	e *echo.Echo,
	storage repositories.StorageInterface,
	cache repositories.CacheRepositoryInterface,
	jwtSvc service.JWTService,
	bus *eventbus.Bus,
	hub *websocket.Hub,
	metrics *middleware.HTTPMetrics,
	loggers *Loggers,
) error {
	loggers.Main.Info("InitRouter: building routes")

	// --- repositories ---
	teamRepo, err := repositories.NewTeamRepository(ctx, storage, loggers.Storage)
	if err != nil {
		return fmt.Errorf("load teams: %w", err)
	}
	equipmentRepo, err := repositories.NewEquipmentRepository(ctx, storage, loggers.Storage)
	if err != nil {
		return fmt.Errorf("load equipment: %w", err)
	}
	workCenterRepo, err := repositories.NewWorkCenterRepository(ctx, storage, loggers.Storage)
	if err != nil {
		return fmt.Errorf("load work centers: %w", err)
	}
	requestRepo, err := repositories.NewRequestRepository(ctx, storage, loggers.Storage)
	if err != nil {
		return fmt.Errorf("load requests: %w", err)
	}
	userRepo, err := repositories.NewUserRepository(ctx, storage, loggers.Storage)
	if err != nil {
		return fmt.Errorf("load portal users: %w", err)
	}

	// --- services ---
	authService := services.NewAuthService(userRepo, cache, loggers.Auth)
	requestService := services.NewRequestService(requestRepo, userRepo, bus, loggers.Request)
	equipmentService := services.NewEquipmentService(equipmentRepo, requestRepo, loggers.Main)
	workCenterService := services.NewWorkCenterService(workCenterRepo, requestRepo, loggers.Main)
	teamService := services.NewTeamService(teamRepo, loggers.Main)
	dashboardService := services.NewDashboardService(requestRepo, loggers.Main)
	boardService := services.NewBoardService(requestRepo, loggers.Main)
	reportService := services.NewReportService(loggers.Main)

	listeners.NewRequestListener(hub, loggers.Request).Register(bus)

	// --- routers ---
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, authService, loggers.Auth)
	secureGroup := api.Group("", authMW.Auth)

	runSystemRouter(e, api, storage, metrics, loggers.Main)
	runAuthRouter(api, secureGroup, authService, jwtSvc, loggers.Auth)
	runWebSocketRouter(api, hub, authMW, loggers.Main)
	runRequestRouter(secureGroup, requestService, loggers.Request)
	runEquipmentRouter(secureGroup, equipmentService, loggers.Main)
	runWorkCenterRouter(secureGroup, workCenterService, loggers.Main)
	runTeamRouter(secureGroup, teamService, loggers.Main)
	runDashboardRouter(secureGroup, dashboardService, loggers.Main)
	runMaintenanceRouter(secureGroup, boardService, loggers.Main)
	runReportRouter(secureGroup, reportService, loggers.Main)

	loggers.Main.Info("InitRouter: routes ready")
	return nil
}
