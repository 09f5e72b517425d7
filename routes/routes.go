package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/stocksync/backend/app"
	"github.com/stocksync/backend/handlers"
	"github.com/stocksync/backend/models"
	"github.com/stocksync/backend/utils"
)

// SetupRoutes configures all application routes and middleware
func SetupRoutes(deps *app.Dependencies) http.Handler {
	r := chi.NewRouter()

	// Core middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS middleware. Credentials must be allowed for the refresh cookie.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "https://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authHandler := handlers.NewAuthHandler(deps.AuthService, deps.Logger)
	userHandler := handlers.NewUserHandler(deps.AuthService, deps.Users, deps.Logger)
	supplierHandler := handlers.NewSupplierHandler(deps.SupplierService, deps.Logger)
	orderHandler := handlers.NewOrderHandler(deps.OrderService, deps.Logger)
	grnHandler := handlers.NewGRNHandler(deps.GRNService, deps.Logger)

	// Health check endpoints
	r.Get("/healthz", handlers.HealthCheck(deps))
	r.Get("/readyz", handlers.ReadinessCheck(deps))

	// Authentication endpoints
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", authHandler.HandleLogin)
		r.Post("/refresh", authHandler.HandleRefresh)
		r.Post("/logout", authHandler.HandleLogout)

		// Registration is an admin operation
		r.Group(func(r chi.Router) {
			r.Use(deps.AuthMiddleware.RequireAuth)
			r.Use(deps.AuthMiddleware.RequireRole(models.RoleAdmin))
			r.Post("/register", authHandler.HandleRegister)
		})

		r.Group(func(r chi.Router) {
			r.Use(deps.AuthMiddleware.RequireAuth)
			r.Post("/change-password", authHandler.HandleChangePassword)
		})
	})

	// Business endpoints
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(deps.AuthMiddleware.RequireAuth)

		r.Route("/users", func(r chi.Router) {
			r.Get("/me", userHandler.HandleMe)
			r.Get("/usernames", userHandler.HandleListUsernames)
		})

		r.Route("/suppliers", func(r chi.Router) {
			r.Get("/", supplierHandler.HandleList)
			r.Post("/", supplierHandler.HandleCreate)
			r.Get("/kpis", supplierHandler.HandleKPIs)
			r.Get("/{id}", supplierHandler.HandleGet)
			r.Put("/{id}", supplierHandler.HandleUpdate)
			r.Delete("/{id}", supplierHandler.HandleDelete)
		})

		r.Route("/purchase-orders", func(r chi.Router) {
			r.Get("/", orderHandler.HandleList)
			r.Post("/", orderHandler.HandleCreate)
			r.Get("/kpis", orderHandler.HandleKPIs)
			r.Get("/options/suppliers", orderHandler.HandleSupplierOptions)
			r.Get("/options/warehouses", orderHandler.HandleWarehouseOptions)
			r.Get("/{id}", orderHandler.HandleGet)
			r.Patch("/{id}/status", orderHandler.HandleUpdateStatus)
		})

		r.Route("/grns", func(r chi.Router) {
			r.Get("/", grnHandler.HandleList)
			r.Post("/", grnHandler.HandleCreate)
			r.Get("/kpis", grnHandler.HandleKPIs)
			r.Get("/{id}", grnHandler.HandleGet)
			r.Get("/{id}/sticker", grnHandler.HandleSticker)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_ = utils.WriteNotFound(w, r, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		_ = utils.WriteError(w, r, http.StatusMethodNotAllowed, "Method not allowed", nil)
	})

	return r
}
