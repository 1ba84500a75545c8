package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/lwalden/chartview-backend/internal/handlers"
	"github.com/lwalden/chartview-backend/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	lm := middleware.NewLoggerMiddleware(deps.Log)
	r.Use(chimiddleware.RequestID)
	r.Use(lm.LoggerMiddleware)
	r.Use(chimiddleware.Recoverer)

	sth := handlers.NewStatusHandlers(deps)
	chh := handlers.NewChartHandlers(deps)

	r.Route("/api", func(api chi.Router) {
		api.Get("/", sth.Root)
		api.Post("/status", sth.CreateStatus)
		api.Get("/status", sth.ListStatus)

		api.Post("/upload-csv", chh.UploadCSV)
		api.Post("/generate-chart", chh.GenerateChart)
		api.Get("/charts", chh.ListCharts)
		api.Get("/chart/{chartID}", chh.GetChart)
	})
	return r
}
