package handler

import (
	"streamflix-api/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type RouterDeps struct {
	AuthSvc *service.AuthService

	Auth         *AuthHandler
	Profiles     *ProfileHandler
	Movies       *MovieHandler
	Views        *ProgressHandler
	Watchlist    *WatchlistHandler
	Translations *TranslationHandler

	CORSOrigins []string
}

// NewRouter monta todas las rutas; main le agrega encima el swagger.
func NewRouter(d RouterDeps) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(CORS(d.CORSOrigins))

	// =============
	// Rutas públicas
	// =============
	r.Get("/health", Health)
	r.Get("/translations", d.Translations.Get)

	r.Post("/auth/register", d.Auth.Register)
	r.Post("/auth/login", d.Auth.Login)

	// Catálogo (público, incluso anónimo)
	r.Get("/movies", d.Movies.List)
	r.Get("/movies/{id}", d.Movies.Get)

	// ===========================
	// Rutas protegidas con JWT
	// ===========================
	r.Group(func(r chi.Router) {
		r.Use(Auth(d.AuthSvc))

		r.Get("/auth/me", d.Auth.Me)

		r.Route("/profiles", func(r chi.Router) {
			r.Get("/", d.Profiles.List)
			r.Post("/", d.Profiles.Create)
			r.Put("/{id}", d.Profiles.Update)
			r.Delete("/{id}", d.Profiles.Delete)

			r.Route("/{id}/watchlist", func(r chi.Router) {
				r.Get("/", d.Watchlist.List)
				r.Post("/{movieId}", d.Watchlist.Add)
				r.Delete("/{movieId}", d.Watchlist.Remove)
				r.Get("/check/{movieId}", d.Watchlist.Check)
			})
		})

		r.Get("/views/continue", d.Views.Continue)
		r.Put("/views/{movieId}", d.Views.Record)

		// ---- Endpoints solo ADMIN ----
		r.Group(func(r chi.Router) {
			r.Use(AdminOnly())

			r.Post("/movies", d.Movies.Create)
			r.Put("/movies/{id}", d.Movies.Update)
			r.Delete("/movies/{id}", d.Movies.Delete)
		})
	})

	return r
}
