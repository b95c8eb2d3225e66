// internal/app/features/admin/features.go
package admin

import (
	"context"
	"errors"
	"net/http"

	uierrors "github.com/openforgehq/openforge/internal/app/features/errors"
	featurestore "github.com/openforgehq/openforge/internal/app/store/features"
	"github.com/openforgehq/openforge/internal/app/system/moderation"
	"github.com/openforgehq/openforge/internal/app/system/timeouts"
	"github.com/openforgehq/openforge/internal/app/system/viewdata"
	"github.com/openforgehq/openforge/internal/domain/models"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type featureListData struct {
	viewdata.BaseVM
	Features []models.ProjectFeature
	Filter   string
}

// ListFeatures handles GET /admin/features.
func (h *Handler) ListFeatures(w http.ResponseWriter, r *http.Request) {
	status, filterLabel := statusFilter(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	features, err := h.Features.List(ctx, status)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error fetching features for review", err, "A database error occurred.", "/admin")
		return
	}

	data := featureListData{
		BaseVM:   viewdata.NewBaseVM(r, "Review Feature Suggestions", "/admin"),
		Features: features,
		Filter:   filterLabel,
	}
	templates.Render(w, r, "admin_features", data)
}

// ApproveFeature handles POST /admin/features/{id}/approve.
func (h *Handler) ApproveFeature(w http.ResponseWriter, r *http.Request) {
	h.setFeatureStatus(w, r, moderation.Approved)
}

// RejectFeature handles POST /admin/features/{id}/reject.
func (h *Handler) RejectFeature(w http.ResponseWriter, r *http.Request) {
	h.setFeatureStatus(w, r, moderation.Rejected)
}

func (h *Handler) setFeatureStatus(w http.ResponseWriter, r *http.Request, to moderation.Status) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "invalid feature id", err, "That suggestion doesn't exist.", "/admin/features")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Features.SetStatus(ctx, id, to); err != nil {
		switch {
		case errors.Is(err, featurestore.ErrNotFound):
			uierrors.RenderNotFound(w, r, "That suggestion doesn't exist.")
		case errors.Is(err, moderation.ErrIllegalTransition):
			h.ErrLog.LogBadRequest(w, r, "illegal feature status transition", err,
				"This suggestion has already been reviewed and can't be changed.", "/admin/features")
		default:
			h.ErrLog.LogServerError(w, r, "database error updating feature status", err, "A database error occurred.", "/admin/features")
		}
		return
	}

	h.Log.Info("feature suggestion reviewed",
		zap.String("feature_id", id.Hex()),
		zap.String("status", string(to)))

	http.Redirect(w, r, "/admin/features", http.StatusSeeOther)
}

// DeleteFeature handles POST /admin/features/{id}/delete.
func (h *Handler) DeleteFeature(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "invalid feature id", err, "That suggestion doesn't exist.", "/admin/features")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	deleted, err := h.Features.Delete(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error deleting feature", err, "A database error occurred.", "/admin/features")
		return
	}
	if deleted > 0 {
		h.Log.Info("feature suggestion deleted", zap.String("feature_id", id.Hex()))
	}

	http.Redirect(w, r, "/admin/features", http.StatusSeeOther)
}
