package handler

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lensfolio/internal/handler/api"
	"lensfolio/internal/handler/middleware"
	"lensfolio/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	couponHandler *api.CouponHandler,
	bookingHandler *api.BookingHandler,
	photoHandler *api.PhotoHandler,
	settingsHandler *api.SettingsHandler,
	contactHandler *api.ContactHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, authHandler, couponHandler, bookingHandler, photoHandler, settingsHandler, contactHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	couponHandler *api.CouponHandler,
	bookingHandler *api.BookingHandler,
	photoHandler *api.PhotoHandler,
	settingsHandler *api.SettingsHandler,
	contactHandler *api.ContactHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	engine.GET("/theme.css", settingsHandler.ThemeCSS)
	engine.Static("/uploads", filepath.Clean(cfg.Uploads.Dir))

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		coupons := apiGroup.Group("/coupons")
		{
			addRoutes(coupons, []route{
				{Method: http.MethodPost, Path: "/validate", Handler: couponHandler.Validate},
			})

			adminOnly := coupons.Group("")
			adminOnly.Use(authMiddleware.RequireAdmin())
			addRoutes(adminOnly, []route{
				{Method: http.MethodGet, Path: "", Handler: couponHandler.List},
				{Method: http.MethodPost, Path: "", Handler: couponHandler.Create},
				{Method: http.MethodPut, Path: "", Handler: couponHandler.Update},
				{Method: http.MethodDelete, Path: "", Handler: couponHandler.Delete},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			// GET splits public/admin on the ?public query inside the handler
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.List},
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.Create},
				{Method: http.MethodGet, Path: "/availability", Handler: bookingHandler.Availability},
			})

			adminOnly := bookings.Group("")
			adminOnly.Use(authMiddleware.RequireAdmin())
			addRoutes(adminOnly, []route{
				{Method: http.MethodPut, Path: "", Handler: bookingHandler.Update},
				{Method: http.MethodDelete, Path: "", Handler: bookingHandler.Delete},
			})
		}

		photos := apiGroup.Group("/photos")
		{
			addRoutes(photos, []route{
				{Method: http.MethodGet, Path: "", Handler: photoHandler.List},
			})

			adminOnly := photos.Group("")
			adminOnly.Use(authMiddleware.RequireAdmin())
			addRoutes(adminOnly, []route{
				{Method: http.MethodPost, Path: "", Handler: photoHandler.Upload},
				{Method: http.MethodPut, Path: "", Handler: photoHandler.Update},
				{Method: http.MethodPatch, Path: "", Handler: photoHandler.Reorder},
				{Method: http.MethodDelete, Path: "", Handler: photoHandler.Delete},
			})
		}

		settings := apiGroup.Group("/settings")
		{
			addRoutes(settings, []route{
				{Method: http.MethodGet, Path: "", Handler: settingsHandler.Get},
			})

			adminOnly := settings.Group("")
			adminOnly.Use(authMiddleware.RequireAdmin())
			addRoutes(adminOnly, []route{
				{Method: http.MethodPut, Path: "", Handler: settingsHandler.Update},
			})
		}

		apiGroup.POST("/contact", contactHandler.Send)
	}
}

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
