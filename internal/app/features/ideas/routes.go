// internal/app/features/ideas/routes.go
package ideas

import (
	"github.com/openforgehq/openforge/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// Browsing and submitting are open to everyone.
	r.Get("/", h.List)
	r.Get("/new", h.NewForm)
	r.Post("/", h.Create)

	// Voting requires a signed-in user.
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireSignedIn)
		r.Post("/{id}/vote", h.Vote)
		r.Post("/{id}/unvote", h.Unvote)
	})

	return r
}
