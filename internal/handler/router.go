package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hall-booking/internal/handler/api"
	"hall-booking/internal/handler/middleware"
	"hall-booking/internal/pkg/config"
	"hall-booking/internal/pkg/jwt"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Booking     *api.BookingHandler
	Settlement  *api.SettlementHandler
	Customer    *api.CustomerHandler
	Catalog     *api.CatalogHandler
	Reservation *api.ReservationQueryHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, tokens *jwt.Service, redisClient *redis.Client, h Handlers) {
	setupMiddleware(engine, cfg, redisClient)
	setupRoutes(engine, tokens, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, redisClient *redis.Client) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger())
	engine.Use(middleware.ErrorHandler())
	engine.Use(middleware.RateLimit(cfg.RateLimit, redisClient))
}

func setupRoutes(engine *gin.Engine, tokens *jwt.Service, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/auth"), []route{
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
		})

		// Everything past this point is back-office territory.
		protected := apiGroup.Group("")
		protected.Use(middleware.RequireAuth(tokens))

		addRoutes(protected.Group("/reservations"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
			{Method: http.MethodGet, Path: "/unpaid", Handler: h.Reservation.ListUnpaid},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.GetByID},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Booking.Cancel},
			{Method: http.MethodPost, Path: "/:id/settle", Handler: h.Settlement.Settle},
		})

		addRoutes(protected.Group("/customers"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Customer.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Customer.List},
		})

		addRoutes(protected.Group("/accounts"), []route{
			{Method: http.MethodPost, Path: "/:id/topup", Handler: h.Customer.TopUp},
		})

		addRoutes(protected.Group("/halls"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateHall},
			{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListHalls},
			{Method: http.MethodGet, Path: "/free", Handler: h.Reservation.FreeHalls},
		})

		addRoutes(protected.Group("/services"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateService},
			{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListServices},
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
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
