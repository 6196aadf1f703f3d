package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/tool-agent/internal/handlers"
	"github.com/GregMSThompson/tool-agent/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	lm := middleware.NewLoggerMiddleware(deps.Log)
	r.Use(middleware.RequestID)
	r.Use(lm.LoggerMiddleware)
	r.Use(lm.AccessLog)
	r.Use(middleware.Recoverer(deps.ResponseHandler))

	qh := handlers.NewQueryHandlers(deps)

	r.Get("/", qh.Status)
	r.Mount("/query", qh.QueryRoutes())
	return r
}
