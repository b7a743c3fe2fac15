package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/courtside-dev/courtside/pkg/usecase"
	"github.com/courtside-dev/courtside/pkg/utils/logging"
)

type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
}

func New(uc *usecase.UseCases) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/auth/login", loginHandler(uc.Auth))
		r.Post("/users", registerHandler(uc.User))

		// Everything else requires a valid token
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware(uc.Auth))

			r.Get("/auth/me", meHandler())

			r.Route("/users", func(r chi.Router) {
				r.Get("/", listUsersHandler(uc.User))
				r.Get("/{id}", getUserHandler(uc.User))
				r.Put("/{id}", updateUserHandler(uc.User))
				r.Delete("/{id}", deleteUserHandler(uc.User))
			})

			r.Route("/clubs", func(r chi.Router) {
				r.Post("/", createClubHandler(uc.Club))
				r.Get("/", listClubsHandler(uc.Club))
				r.Get("/{id}", getClubHandler(uc.Club))
				r.Put("/{id}", updateClubHandler(uc.Club))
				r.Delete("/{id}", deleteClubHandler(uc.Club))
				r.Get("/{id}/teams", listClubTeamsHandler(uc.Team))
				r.Put("/{id}/managers/{userID}", assignManagerHandler(uc.User))
				r.Delete("/{id}/managers/{userID}", removeManagerHandler(uc.User))
			})

			r.Route("/teams", func(r chi.Router) {
				r.Post("/", createTeamHandler(uc.Team))
				r.Get("/", listTeamsHandler(uc.Team))
				r.Get("/{id}", getTeamHandler(uc.Team))
				r.Put("/{id}", updateTeamHandler(uc.Team))
				r.Delete("/{id}", deleteTeamHandler(uc.Team))
				r.Put("/{id}/coaches/{userID}", assignCoachHandler(uc.User))
				r.Delete("/{id}/coaches/{userID}", removeCoachHandler(uc.User))
			})

			r.Route("/matches", func(r chi.Router) {
				r.Post("/", createMatchHandler(uc.Match))
				r.Get("/", listMatchesHandler(uc.Match))
				r.Get("/{id}", getMatchHandler(uc.Match))
				r.Put("/{id}", updateMatchHandler(uc.Match))
				r.Delete("/{id}", deleteMatchHandler(uc.Match))
				r.Get("/{id}/actions", listMatchActionsHandler(uc.Action))
				r.Post("/{id}/actions", createActionHandler(uc.Action))
			})

			r.Route("/actions", func(r chi.Router) {
				r.Get("/{id}", getActionHandler(uc.Action))
				r.Put("/{id}", updateActionHandler(uc.Action))
				r.Delete("/{id}", deleteActionHandler(uc.Action))
			})
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
