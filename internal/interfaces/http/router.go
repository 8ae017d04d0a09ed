package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "luster/docs"
	inspectionusecases "luster/internal/application/inspection/usecases"
	templateusecases "luster/internal/application/template/usecases"
	"luster/internal/infrastructure/auth"
	"luster/internal/infrastructure/config"
	"luster/internal/infrastructure/guidance"
	"luster/internal/infrastructure/repository"
	"luster/internal/infrastructure/services"
	inspectionhandlers "luster/internal/interfaces/http/handlers/inspection"
	templatehandlers "luster/internal/interfaces/http/handlers/template"
	"luster/internal/interfaces/http/middleware"
	"luster/internal/interfaces/http/routes"
	"luster/internal/shared/db"
	"luster/internal/shared/logger"
	markdownservices "luster/internal/shared/services/markdown"
)

// Router wires repositories, use cases and handlers into a Gin engine.
type Router struct {
	engine            *gin.Engine
	inspectionHandler *inspectionhandlers.InspectionHandler
	templateHandler   *templatehandlers.TemplateHandler
	authMiddleware    *middleware.AuthMiddleware
	rateLimiter       *middleware.RateLimiter
	cfg               *config.Config
}

// NewRouter builds the full dependency graph for the HTTP surface.
func NewRouter(database *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	inspectionRepo := repository.NewInspectionRepository(database)
	actionRepo := repository.NewCorrectiveActionRepository(database)
	signoffRepo := repository.NewSignoffRepository(database)
	activityRepo := repository.NewActivityRepository(database)
	templateRepo := repository.NewTemplateRepository(database)

	facilities := repository.NewFacilityDirectory(database)
	users := repository.NewUserDirectory(database)

	txMgr := db.NewTransactionManager(database)
	numberGen := services.NewInspectionNumberGenerator(database)
	markdownSvc := markdownservices.NewMarkdownService()

	guidanceTTL := time.Duration(cfg.Guidance.CacheTTLMinutes) * time.Minute
	if guidanceTTL <= 0 {
		guidanceTTL = 30 * time.Minute
	}
	var guidanceProvider inspectionusecases.GuidanceProvider = guidance.NewDBProvider(database)
	if redisClient != nil {
		guidanceProvider = guidance.NewCachedProvider(guidanceProvider, redisClient, guidanceTTL, log)
	}

	createInspectionUC := inspectionusecases.NewCreateInspectionUseCase(inspectionRepo, activityRepo, templateRepo, numberGen, txMgr, log)
	getInspectionUC := inspectionusecases.NewGetInspectionUseCase(inspectionRepo, actionRepo, signoffRepo, facilities, users, guidanceProvider, log)
	listInspectionsUC := inspectionusecases.NewListInspectionsUseCase(inspectionRepo, log)
	startInspectionUC := inspectionusecases.NewStartInspectionUseCase(inspectionRepo, activityRepo, txMgr, log)
	completeInspectionUC := inspectionusecases.NewCompleteInspectionUseCase(inspectionRepo, activityRepo, txMgr, log)
	cancelInspectionUC := inspectionusecases.NewCancelInspectionUseCase(inspectionRepo, activityRepo, txMgr, log)
	deleteInspectionUC := inspectionusecases.NewDeleteInspectionUseCase(inspectionRepo, actionRepo, signoffRepo, activityRepo, txMgr, log)
	createActionUC := inspectionusecases.NewCreateCorrectiveActionUseCase(inspectionRepo, actionRepo, activityRepo, txMgr, log)
	updateActionUC := inspectionusecases.NewUpdateCorrectiveActionUseCase(actionRepo, activityRepo, txMgr, log)
	verifyActionUC := inspectionusecases.NewVerifyCorrectiveActionUseCase(actionRepo, activityRepo, txMgr, log)
	createSignoffUC := inspectionusecases.NewCreateSignoffUseCase(inspectionRepo, signoffRepo, activityRepo, txMgr, log)
	createReinspectionUC := inspectionusecases.NewCreateReinspectionUseCase(inspectionRepo, activityRepo, numberGen, txMgr, log)
	listActivitiesUC := inspectionusecases.NewListActivitiesUseCase(inspectionRepo, activityRepo, log)
	renderReportUC := inspectionusecases.NewRenderReportUseCase(inspectionRepo, actionRepo, signoffRepo, facilities, users, markdownSvc, log)

	inspectionHandler := inspectionhandlers.NewInspectionHandler(
		createInspectionUC,
		getInspectionUC,
		listInspectionsUC,
		startInspectionUC,
		completeInspectionUC,
		cancelInspectionUC,
		deleteInspectionUC,
		createActionUC,
		updateActionUC,
		verifyActionUC,
		createSignoffUC,
		createReinspectionUC,
		listActivitiesUC,
		renderReportUC,
	)

	createTemplateUC := templateusecases.NewCreateTemplateUseCase(templateRepo, log)
	updateTemplateUC := templateusecases.NewUpdateTemplateUseCase(templateRepo, log)
	archiveTemplateUC := templateusecases.NewArchiveTemplateUseCase(templateRepo, log)
	restoreTemplateUC := templateusecases.NewRestoreTemplateUseCase(templateRepo, log)
	getTemplateUC := templateusecases.NewGetTemplateUseCase(templateRepo, log)
	listTemplatesUC := templateusecases.NewListTemplatesUseCase(templateRepo, log)

	templateHandler := templatehandlers.NewTemplateHandler(
		createTemplateUC,
		updateTemplateUC,
		archiveTemplateUC,
		restoreTemplateUC,
		getTemplateUC,
		listTemplatesUC,
	)

	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	authMiddleware := middleware.NewAuthMiddleware(jwtSvc, log)

	var rateLimiter *middleware.RateLimiter
	if redisClient != nil {
		rateLimiter = middleware.NewRateLimiter(redisClient, 300, 1*time.Minute)
	}

	return &Router{
		engine:            engine,
		inspectionHandler: inspectionHandler,
		templateHandler:   templateHandler,
		authMiddleware:    authMiddleware,
		rateLimiter:       rateLimiter,
		cfg:               cfg,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(log logger.Interface) {
	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())
	if r.rateLimiter != nil {
		r.engine.Use(r.rateLimiter.Limit())
	}

	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupInspectionRoutes(r.engine, &routes.InspectionRouteConfig{
		InspectionHandler: r.inspectionHandler,
		AuthMiddleware:    r.authMiddleware,
	})

	routes.SetupTemplateRoutes(r.engine, &routes.TemplateRouteConfig{
		TemplateHandler: r.templateHandler,
		AuthMiddleware:  r.authMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
