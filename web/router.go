package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/unrolled/render"
)

func getRouter(g *Gallery, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/", galleryHandler(g, render))

	r.Route("/charts", func(r chi.Router) {
		r.Get("/", chartListHandler(g, render))
		r.Get("/{name}.svg", chartHandler(g, render))
	})

	return r
}
