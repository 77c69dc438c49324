package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/samber/do"
)

// Router wires all HTTP surfaces behind permissive CORS. The CORS middleware
// wraps the whole mux, so preflight OPTIONS requests are answered before any
// auth or validation logic runs.
type Router struct {
	chi.Router
}

func NewRouter(i *do.Injector) (*Router, error) {
	generate := do.MustInvoke[*GenerateHandler](i)
	gallery := do.MustInvoke[*GalleryHandler](i)
	site := do.MustInvoke[*SiteHandler](i)

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"authorization", "x-client-info", "apikey", "content-type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Method(http.MethodPost, "/generate-image", generate)
	r.Get("/images", gallery.ListMine)
	r.Get("/images/public", gallery.ListPublic)
	r.Get("/feed.xml", site.Feed)
	r.Get("/", site.Index)

	return &Router{r}, nil
}
