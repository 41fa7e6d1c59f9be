package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"momentum-backend/internal/handlers"
	"momentum-backend/internal/middleware"
)

func New(
	jwtAuth *middleware.JWTAuth,
	authHandler *handlers.AuthHandler,
	chatHandler *handlers.ChatHandler,
	dataHandler *handlers.DataHandler,
	calendarHandler *handlers.CalendarHandler,
	tasksHandler *handlers.TasksHandler,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Auth rate limiter (10 req/min per IP); the chat limiter is looser but
	// still bounds what one client can burn in model calls.
	authLimiter := middleware.NewRateLimiter(10, time.Minute)
	chatLimiter := middleware.NewRateLimiter(30, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {

		// ──── Auth Routes ────
		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(authLimiter.Middleware)
				r.Post("/google", authHandler.GoogleLogin)
				r.Post("/refresh", authHandler.Refresh)
				r.Post("/logout", authHandler.Logout)
			})

			r.Group(func(r chi.Router) {
				r.Use(jwtAuth.Middleware)
				r.Get("/verify", authHandler.Verify)
			})
		})

		// ──── Assistant Chat ────
		r.Route("/chat", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Use(chatLimiter.Middleware)
			r.Post("/", chatHandler.Chat)
		})

		// ──── Document Store Routes ────
		r.Route("/data", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Get("/{collection}", dataHandler.List)
			r.Post("/{collection}", dataHandler.Save)
			r.Delete("/{collection}/{id}", dataHandler.Delete)
		})

		// ──── Calendar Proxy Routes ────
		r.Route("/calendar", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Post("/create_event", calendarHandler.CreateEvent)
			r.Post("/delete_event", calendarHandler.DeleteEvent)
			r.Post("/list_events", calendarHandler.ListEvents)
			r.Post("/update_event", calendarHandler.UpdateEvent)
			r.Post("/create_events_batch", calendarHandler.CreateEventsBatch)
		})

		// ──── Tasks Proxy Routes ────
		r.Route("/tasks", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Post("/create_task", tasksHandler.CreateTask)
			r.Post("/delete_task", tasksHandler.DeleteTask)
			r.Post("/list_tasks", tasksHandler.ListTasks)
			r.Post("/update_task", tasksHandler.UpdateTask)
		})
	})

	return r
}
