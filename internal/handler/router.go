package handler

import (
	"log/slog"
	"net/http"

	"reservas-web/internal/handler/api"
	"reservas-web/internal/handler/httperr"
	"reservas-web/internal/handler/middleware"
	"reservas-web/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type handlers struct {
	events       *api.EventHandler
	reservations *api.ReservationHandler
	auth         *api.AuthHandler
	contact      *api.ContactHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.DevServerConfig,
	logger *slog.Logger,
	eventHandler *api.EventHandler,
	reservationHandler *api.ReservationHandler,
	authHandler *api.AuthHandler,
	contactHandler *api.ContactHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	httperr.RegisterFieldNames()
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers{
		events:       eventHandler,
		reservations: reservationHandler,
		auth:         authHandler,
		contact:      contactHandler,
	}, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.DevServerConfig, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.HandleMethodNotAllowed = true
	engine.NoRoute(middleware.NotFound)
	engine.NoMethod(middleware.MethodNotAllowed)

	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	root := engine.Group("")
	addRoutes(root, []route{
		{Method: http.MethodGet, Path: "/eventos-disponibles", Handler: h.events.ListAvailable},
		{Method: http.MethodPost, Path: "/reservas", Handler: h.reservations.CreateReservation, Mw: []gin.HandlerFunc{authMiddleware.OptionalAuth()}},
		{Method: http.MethodPost, Path: "/enviar-contacto", Handler: h.contact.Submit},
	})

	auth := engine.Group("/auth/jwt")
	{
		addRoutes(auth, []route{
			{Method: http.MethodPost, Path: "/login", Handler: h.auth.Login},
			{Method: http.MethodPost, Path: "/logout", Handler: h.auth.Logout, Mw: []gin.HandlerFunc{authMiddleware.RequireAuth()}},
		})
	}

	users := engine.Group("/users")
	users.Use(authMiddleware.RequireAuth())
	{
		addRoutes(users, []route{
			{Method: http.MethodGet, Path: "/me", Handler: h.auth.Me},
		})
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
