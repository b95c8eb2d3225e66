// internal/app/features/suggestions/routes.go
package suggestions

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Form)
	r.Post("/", h.Create)
	return r
}
