package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"fleet-app-go/internal/config"
	"fleet-app-go/internal/transport/httpserver/handler"
	corsmw "fleet-app-go/internal/transport/httpserver/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(60 * time.Second))
	r.Use(corsmw.NewCORS(cfg.CORSAllowedOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Common.Health)

		r.Get("/truck-logs", handlers.Fleet.ListTruckLogs)
		r.Post("/truck-logs", handlers.Fleet.CreateTruckLog)
		r.Put("/truck-logs/{id}", handlers.Fleet.UpdateTruckLog)
		r.Delete("/truck-logs/{id}", handlers.Fleet.DeleteTruckLog)

		r.Get("/expenses", handlers.Fleet.ListExpenses)
		r.Post("/expenses", handlers.Fleet.CreateExpense)
		r.Put("/expenses/{id}", handlers.Fleet.UpdateExpense)
		r.Delete("/expenses/{id}", handlers.Fleet.DeleteExpense)

		r.Get("/reports/dashboard", handlers.Reports.Dashboard)
		r.Get("/reports/pdf", handlers.Reports.PDF)
	})

	return r
}
