package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"flashsale-scheduler/internal/handler/api"
	"flashsale-scheduler/internal/handler/middleware"
	"flashsale-scheduler/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine              *gin.Engine
	Config              config.Config
	Logger              *middleware.Logger
	AuthMiddleware      *middleware.AuthMiddleware
	AuthHandler         *api.AuthHandler
	ProductHandler      *api.ProductHandler
	ScheduleHandler     *api.ScheduleHandler
	NotificationHandler *api.NotificationHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	slogger := logger.GetSlogLogger()
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(slogger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, slogger))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler(slogger))
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := p.AuthMiddleware.RequireAuth()

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: p.AuthHandler.Login},
				{Method: http.MethodGet, Path: "/marketplace/url", Handler: p.AuthHandler.MarketplaceURL},
				{Method: http.MethodPost, Path: "/marketplace/callback", Handler: p.AuthHandler.MarketplaceCallback},
				{Method: http.MethodPost, Path: "/logout", Handler: p.AuthHandler.Logout, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodGet, Path: "/me", Handler: p.AuthHandler.Me, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		protected := apiGroup.Group("")
		protected.Use(requireAuth)
		{
			addRoutes(protected, []route{
				{Method: http.MethodGet, Path: "/products", Handler: p.ProductHandler.List},
				{Method: http.MethodPost, Path: "/products/:id/toggle-status", Handler: p.ProductHandler.ToggleStatus},
				{Method: http.MethodPost, Path: "/products/:id/suggestion", Handler: p.ProductHandler.Suggest},
				{Method: http.MethodGet, Path: "/dashboard/stats", Handler: p.ProductHandler.Stats},

				{Method: http.MethodGet, Path: "/schedules", Handler: p.ScheduleHandler.List},
				{Method: http.MethodPost, Path: "/schedules", Handler: p.ScheduleHandler.Create},
				{Method: http.MethodDelete, Path: "/schedules/:id", Handler: p.ScheduleHandler.Delete},

				{Method: http.MethodGet, Path: "/notifications", Handler: p.NotificationHandler.List},
				{Method: http.MethodGet, Path: "/notifications/stream", Handler: p.NotificationHandler.Stream},
				{Method: http.MethodDelete, Path: "/notifications/:id", Handler: p.NotificationHandler.Dismiss},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
