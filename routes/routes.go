package routes

import (
	"net/http"

	_ "github.com/Dosada05/turf-kings/docs"
	"github.com/Dosada05/turf-kings/handlers"
	"github.com/Dosada05/turf-kings/middleware"
	"github.com/Dosada05/turf-kings/models"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Handlers struct {
	Auth       *handlers.AuthHandler
	Tournament *handlers.TournamentHandler
	Session    *handlers.SessionHandler
	Stats      *handlers.StatsHandler
	Backup     *handlers.BackupHandler
	WebSocket  *handlers.WebSocketHandler
}

type Options struct {
	JWTSecret      string
	AllowedOrigins []string
	RequestLogger  func(http.Handler) http.Handler
}

func SetupRoutes(router chi.Router, h Handlers, opts Options) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	if opts.RequestLogger != nil {
		router.Use(opts.RequestLogger)
	} else {
		router.Use(chiMiddleware.Logger)
	}
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Backup-Location", "X-Backup-Cleared"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authenticate := middleware.Authenticate(opts.JWTSecret)
	captainOrAdmin := middleware.Authorize(string(models.RoleCaptain), string(models.RoleAdmin))
	adminOnly := middleware.Authorize(string(models.RoleAdmin))

	router.Get("/swagger/*", httpSwagger.WrapHandler)
	router.Get("/ws", h.WebSocket.ServeWs)

	router.Post("/auth/login", h.Auth.Login)

	router.Route("/tournament", func(r chi.Router) {
		r.Get("/", h.Tournament.GetState)
		r.Get("/summary", h.Tournament.GetSummary)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.With(captainOrAdmin).Put("/pairing", h.Tournament.SetPairing)
			r.With(adminOnly).Put("/roster", h.Tournament.ReplaceRoster)
		})
	})

	router.Route("/stats", func(r chi.Router) {
		r.Get("/teams", h.Stats.Teams)
		r.Get("/players", h.Stats.Players)
		r.Get("/top-scorer", h.Stats.TopScorer)
	})

	router.Route("/session", func(r chi.Router) {
		r.Get("/", h.Session.Current)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(captainOrAdmin)

			r.Post("/", h.Session.Start)
			r.Delete("/", h.Session.Discard)
			r.Post("/end", h.Session.End)
			r.Post("/events/goal", h.Session.AddGoal)
			r.Post("/events/shibobo", h.Session.AddShibobo)
			r.Delete("/events/last", h.Session.UndoLast)
			r.Delete("/events/{index}", h.Session.DeleteEvent)
		})
	})

	router.Route("/admin", func(r chi.Router) {
		r.Use(authenticate)
		r.Use(adminOnly)

		r.Post("/backup", h.Backup.Export)
		r.Get("/backups", h.Backup.List)
		r.Post("/reset", h.Tournament.Reset)
	})
}
