// internal/app/features/admin/routes.go
package admin

import (
	"github.com/openforgehq/openforge/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireAdmin)

	r.Get("/", h.Dashboard)

	r.Get("/ideas", h.ListIdeas)
	r.Post("/ideas/{id}/approve", h.ApproveIdea)
	r.Post("/ideas/{id}/reject", h.RejectIdea)
	r.Post("/ideas/{id}/delete", h.DeleteIdea)

	r.Get("/contributions", h.ListContributions)
	r.Post("/contributions/{id}/approve", h.ApproveContribution)
	r.Post("/contributions/{id}/reject", h.RejectContribution)
	r.Post("/contributions/{id}/delete", h.DeleteContribution)

	r.Get("/features", h.ListFeatures)
	r.Post("/features/{id}/approve", h.ApproveFeature)
	r.Post("/features/{id}/reject", h.RejectFeature)
	r.Post("/features/{id}/delete", h.DeleteFeature)

	return r
}
