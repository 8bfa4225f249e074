package server

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/google/uuid"

	"github.com/flightdesk/auth"
	"github.com/flightdesk/handlers"
	"github.com/flightdesk/logger"
)

// Deps are the collaborators the routes dispatch to.
type Deps struct {
	Responder handlers.Responder
	DemoMode  bool
	// LLMState reports the provider circuit state on /health when non-nil.
	LLMState func() string
	// Auth gates /chat when non-nil.
	Auth *auth.T
	Log  *logger.Logger
}

func SetupRoutes(deps Deps, uptime func() string) *chi.Mux {
	if deps.Log == nil {
		deps.Log = logger.NewLogger("Routes", uuid.NewString())
	}

	r := chi.NewRouter()

	// standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", handlers.HandleHealth(uptime, deps.DemoMode, deps.LLMState))

	r.Group(func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		if deps.Auth != nil {
			r.Use(auth.Middleware(deps.Auth))
		}
		r.Post("/chat", handlers.HandleChat(deps.Responder, deps.Log))
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	return r
}
