// internal/app/features/contribute/routes.go
package contribute

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Form)
	r.Post("/", h.Create)
	return r
}
