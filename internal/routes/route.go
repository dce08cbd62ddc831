package routes

import (
	"net/http"

	"facility-finder/internal/auth"
	"facility-finder/internal/config"
	"facility-finder/internal/geo"
	"facility-finder/internal/handlers"
	"facility-finder/internal/logger"
	mdlwr "facility-finder/internal/middleware"
	"facility-finder/internal/models"
	"facility-finder/internal/observability"
	"facility-finder/internal/search"
	"facility-finder/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
	"github.com/uptrace/bun"
)

// Deps are the long-lived dependencies the router wires into handlers.
type Deps struct {
	DB      *bun.DB
	Config  *config.Config
	Logger  *logger.Logger
	Postal  geo.Resolver
	JWT     *auth.JWTManager
	Metrics *observability.Collector
	Redis   redis.UniversalClient // optional
}

func NewRouter(d Deps) http.Handler {
	cfg, logr := d.Config, d.Logger
	r := chi.NewRouter()

	// Basic middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(d.Metrics.Middleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	facilitySvc := services.NewFacilityService(d.DB)
	var candidates services.CandidateSource = facilitySvc
	var invalidator handlers.CacheInvalidator
	if d.Redis != nil {
		cached := services.NewCachedCandidateSource(facilitySvc, d.Redis, cfg.RedisPrefix, cfg.CandidateCacheTTL, logr.Logger)
		candidates, invalidator = cached, cached
	}

	searcher := search.NewSearcher(d.Postal, search.WithMaxPageSize(cfg.MaxPageSize))
	locationSvc := services.NewLocationService(candidates, searcher, d.Metrics, logr.Logger)
	reviewSvc := services.NewReviewService(d.DB)
	authSvc := services.NewAuthService(d.DB, d.JWT, cfg, logr)

	authMW := mdlwr.NewAuthMiddleware(d.JWT, authSvc, logr.Logger)

	locationHandler := handlers.NewLocationHandler(locationSvc, handlers.SearchDefaults{
		RadiusMiles: cfg.DefaultRadiusMiles,
		PageSize:    cfg.DefaultPageSize,
	}, logr.Logger)
	reviewHandler := handlers.NewReviewHandler(reviewSvc, invalidator, logr.Logger)
	adminHandler := handlers.NewFacilityAdminHandler(facilitySvc, invalidator, logr.Logger)
	authHandler := handlers.NewAuthHandler(authSvc, cfg.Environment == "production", logr.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", d.Metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/locations", func(r chi.Router) {
			r.Get("/", locationHandler.SearchLocations)
			r.Get("/all", locationHandler.GetAll)
			r.Get("/regions", locationHandler.GetRegions)
			r.Get("/geojson", locationHandler.GetGeoJSON)
			r.Get("/{id}", locationHandler.GetByID)
			r.Post("/{id}/reviews", reviewHandler.CreateReview)
		})

		r.Post("/suggestions", reviewHandler.CreateSuggestion)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.LoginLocal)
			r.Post("/ldap", authHandler.LoginLDAP)
			r.Post("/refresh", authHandler.Refresh)
			r.Post("/logout", authHandler.Logout)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(authMW.JWTAuth)
			r.Use(mdlwr.RequireRole(models.RoleAdmin))

			r.Get("/locations", adminHandler.List)
			r.Post("/locations", adminHandler.Create)
			r.Put("/locations/{id}", adminHandler.Update)
			r.Delete("/locations/{id}", adminHandler.Delete)

			r.Get("/reviews", reviewHandler.ListReviews)
			r.Patch("/reviews/{id}", reviewHandler.UpdateReviewStatus)
			r.Get("/suggestions", reviewHandler.ListSuggestions)
			r.Patch("/suggestions/{id}", reviewHandler.UpdateSuggestionStatus)
		})
	})

	return r
}
