package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MuriloBarros304/web-menu/internal/adapter/logger"
	"github.com/MuriloBarros304/web-menu/internal/interfaces"
)

// NewRouter wires the API surface. Authentication only resolves the
// caller; authorization lives in the services, so every route is
// registered openly here.
func NewRouter(
	orders interfaces.OrderService,
	menu interfaces.MenuService,
	tables interfaces.TableService,
	users interfaces.UserService,
	sessions interfaces.SessionRepository,
	log logger.Logger,
) http.Handler {
	orderHandler := NewOrderHandler(orders, log)
	dishHandler := NewDishHandler(menu, log)
	tableHandler := NewTableHandler(tables, log)
	userHandler := NewUserHandler(users, log)

	r := chi.NewRouter()
	r.Use(Recovery(log))
	r.Use(RequestLogger(log))
	r.Use(Authenticate(sessions, log))

	r.Route("/api", func(r chi.Router) {
		r.Route("/dishes", func(r chi.Router) {
			r.Get("/", dishHandler.List)
			r.Post("/", dishHandler.Create)
			r.Get("/{id}", dishHandler.Get)
			r.Put("/{id}", dishHandler.Update)
			r.Delete("/{id}", dishHandler.Delete)
		})

		r.Route("/tables", func(r chi.Router) {
			r.Get("/", tableHandler.List)
			r.Post("/", tableHandler.Create)
			r.Get("/{id}", tableHandler.Get)
			r.Put("/{id}", tableHandler.Update)
			r.Delete("/{id}", tableHandler.Delete)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", orderHandler.List)
			r.Post("/", orderHandler.Create)
			r.Get("/{id}", orderHandler.Get)
			r.Patch("/{id}/mark_ready", orderHandler.MarkReady)
			r.Patch("/{id}/mark_completed", orderHandler.MarkCompleted)
			r.Patch("/{id}/cancel", orderHandler.Cancel)
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/register", userHandler.Register)
			r.Post("/login", userHandler.Login)
			r.Post("/logout", userHandler.Logout)
			r.Get("/me", userHandler.Profile)
			r.Put("/me", userHandler.UpdateProfile)
			r.Get("/", userHandler.List)
			r.Patch("/{id}/change_type", userHandler.ChangeType)
			r.Patch("/{id}/toggle_active", userHandler.ToggleActive)
		})
	})

	return r
}
