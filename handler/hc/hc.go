package hc

import (
	"bondcdp/handler/render"
	"net/http"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
)

// Handle handle hc request, reports unhealthy when the database is gone
func Handle(database *db.DB, ver string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.NoCache)
	r.Handle("/", handle(database, ver))
	return r
}

func handle(database *db.DB, version string) http.HandlerFunc {
	b := time.Now()
	return func(w http.ResponseWriter, r *http.Request) {
		if err := database.Ping(); err != nil {
			render.Error(w, http.StatusInternalServerError, -1, err)
			return
		}

		uptime := time.Since(b).Truncate(time.Millisecond)
		render.JSON(w, render.H{
			"uptime":  uptime.String(),
			"version": version,
		})
	}
}
