package web

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"
)

func galleryHandler(g *Gallery, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.HTML(w, http.StatusOK, "gallery", g.Charts())
	}
}

type chartSummary struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Created string `json:"created"`
}

func chartListHandler(g *Gallery, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		charts := g.Charts()
		res := make([]chartSummary, 0, len(charts))
		for _, c := range charts {
			res = append(res, chartSummary{
				Name:    c.Name,
				Title:   c.Title,
				URL:     fmt.Sprintf("/charts/%s.svg", c.Name),
				Created: timeFormatter(c.Created),
			})
		}
		render.JSON(w, http.StatusOK, res)
	}
}

func chartHandler(g *Gallery, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		c, found := g.Get(name)
		if !found {
			render.Text(w, http.StatusNotFound, fmt.Sprintf("chart '%s' not found", name))
			return
		}

		w.Header().Set("Content-Type", "image/svg+xml")
		w.Header().Set("Cache-Control", "no-store")
		render.Data(w, http.StatusOK, c.SVG)
	}
}
