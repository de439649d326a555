// internal/app/features/organizations/admin.go
package organizations

import (
	"context"
	"net/http"

	apierrors "github.com/dalemusser/labelhub/internal/app/features/errors"
	"github.com/dalemusser/labelhub/internal/app/system/timeouts"
)

// HandlePromoteAdmin grants admin to an active member. Promoting the
// owner is a silent success since owners already hold the capability.
func (h *Handler) HandlePromoteAdmin(w http.ResponseWriter, r *http.Request) {
	uid, ok := requester(w, r)
	if !ok {
		return
	}
	orgID, ok := orgIDParam(w, r)
	if !ok {
		return
	}
	targetID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Auth.PromoteToAdmin(ctx, orgID, uid, targetID); err != nil {
		h.Err.Respond(w, r, "promote admin failed", err)
		return
	}

	apierrors.NoContent(w)
}

// HandleDemoteAdmin revokes admin from an active member. Owners cannot
// be demoted by anyone (405).
func (h *Handler) HandleDemoteAdmin(w http.ResponseWriter, r *http.Request) {
	uid, ok := requester(w, r)
	if !ok {
		return
	}
	orgID, ok := orgIDParam(w, r)
	if !ok {
		return
	}
	targetID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Auth.DemoteFromAdmin(ctx, orgID, uid, targetID); err != nil {
		h.Err.Respond(w, r, "demote admin failed", err)
		return
	}

	apierrors.NoContent(w)
}
