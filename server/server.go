package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"inventaris/providers"
	"inventaris/providers/configprovider"
	"inventaris/providers/databaseprovider"
	"inventaris/providers/loggerprovider"
	"inventaris/providers/middlewareprovider"
	"inventaris/providers/redisprovider"
	assetservice "inventaris/services/asset"
	assignmentservice "inventaris/services/assignment"
	catalogservice "inventaris/services/catalog"
	employeeservice "inventaris/services/employee"
	ispservice "inventaris/services/isp"
	phoneservice "inventaris/services/phone"

	"go.uber.org/zap"
)

type Server struct {
	Config     providers.ConfigProvider
	DB         providers.DBProvider
	Cache      providers.CacheProvider
	Logger     providers.ZapLoggerProvider
	Middleware providers.AuthMiddlewareService

	CatalogHandler    *catalogservice.CatalogHandler
	AssetHandler      *assetservice.AssetHandler
	AssignmentHandler *assignmentservice.AssignmentHandler
	PhoneHandler      *phoneservice.PhoneHandler
	IspHandler        *ispservice.IspHandler
	EmployeeHandler   *employeeservice.EmployeeHandler

	httpServer *http.Server
}

func ServerInit() *Server {
	cfg := configprovider.NewConfigProvider()
	if err := cfg.LoadEnv(); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := loggerprovider.NewLogProvider()
	logger.InitLogger()

	db := databaseprovider.NewDBProvider(cfg.GetDatabaseString())
	cache := redisprovider.NewRedisProvider(cfg.GetRedisAddr())
	if err := cache.Ping(context.Background()); err != nil {
		logger.GetLogger().Warn("redis unreachable, catalog caching disabled", zap.Error(err))
	}
	authMiddleware := middlewareprovider.NewAuthMiddlewareService(cfg.GetJWTSecret())

	// repositories
	catalogRepo := catalogservice.NewCatalogRepository(db.DB())
	assetRepo := assetservice.NewAssetRepository(db.DB())
	assignmentRepo := assignmentservice.NewAssignmentRepository(db.DB())
	phoneRepo := phoneservice.NewPhoneRepository(db.DB())
	ispRepo := ispservice.NewIspRepository(db.DB())
	employeeRepo := employeeservice.NewEmployeeRepository(db.DB())

	// services
	catalogService := catalogservice.NewCatalogService(catalogRepo, cache, logger)
	assetService := assetservice.NewAssetService(assetRepo, db.DB(), logger)
	assignmentService := assignmentservice.NewAssignmentService(assignmentRepo, db.DB(), logger)
	phoneService := phoneservice.NewPhoneService(phoneRepo, logger, cfg.GetCallOutgoingDefault())
	ispService := ispservice.NewIspService(ispRepo, logger, cfg.GetTicketPrefix())
	employeeService := employeeservice.NewEmployeeService(employeeRepo, authMiddleware, logger)

	return &Server{
		Config:     cfg,
		DB:         db,
		Cache:      cache,
		Logger:     logger,
		Middleware: authMiddleware,

		CatalogHandler:    catalogservice.NewCatalogHandler(catalogService),
		AssetHandler:      assetservice.NewAssetHandler(assetService),
		AssignmentHandler: assignmentservice.NewAssignmentHandler(assignmentService, authMiddleware),
		PhoneHandler:      phoneservice.NewPhoneHandler(phoneService),
		IspHandler:        ispservice.NewIspHandler(ispService),
		EmployeeHandler:   employeeservice.NewEmployeeHandler(employeeService),
	}
}

func (s *Server) Start() {
	addr := ":" + s.Config.GetServerPort()

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.InjectRoutes(),
		ReadTimeout:  2 * time.Minute,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  2 * time.Minute,
	}

	s.Logger.GetLogger().Info("server running", zap.String("addr", addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.Logger.GetLogger().Error("error shutting down server", zap.Error(err))
	}
	if err := s.Cache.Close(); err != nil {
		s.Logger.GetLogger().Error("error closing redis", zap.Error(err))
	}
	if err := s.DB.Close(); err != nil {
		s.Logger.GetLogger().Error("error closing db", zap.Error(err))
	}
	s.Logger.SyncLogger()
}
