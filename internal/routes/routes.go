package routes

import (
	"net/http"

	"github.com/springvale/admissions/internal/app"
	"github.com/springvale/admissions/internal/handler"
	"github.com/springvale/admissions/internal/middleware"
)

func SetupRoutes(a *app.App) http.Handler {
	// Handlers
	health := handler.NewHealthHandler()
	apps := handler.NewApplicationHandler(a.ApplicationService, a.Storage)
	static := handler.NewStaticHandler(a.Cfg.StaticDir, a.Cfg.UploadDir)

	// Per-route guards
	rateLimiter := middleware.RateLimitSubmissions(a.Cfg.RateLimitMax, a.Cfg.RateLimitWindow)
	adminOnly := middleware.BasicAuth(a.Cfg.AdminUsername, a.Cfg.AdminPassword)

	mux := http.NewServeMux()

	// API
	mux.HandleFunc("GET /api/health", health.Health)
	mux.HandleFunc("POST /api/applications", rateLimiter(apps.Submit))
	mux.HandleFunc("GET /api/applications", adminOnly(apps.List))

	// Uploaded documents
	mux.HandleFunc("GET /uploads/{file}", static.Upload)

	// Static site; also the fallback that turns unmatched routes into 404s
	mux.HandleFunc("/", static.Static)

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.Recover,
		middleware.RequestID,
		middleware.RequestLogging,
		middleware.CORS(a.Cfg.CORSAllowedOrigins),
	)
}
