// internal/app/features/organizations/removemember.go
package organizations

import (
	"context"
	"net/http"

	apierrors "github.com/dalemusser/labelhub/internal/app/features/errors"
	"github.com/dalemusser/labelhub/internal/app/system/timeouts"
)

// HandleRemoveMember soft-deletes a membership. Removing yourself is a
// 405, and removing someone already gone is a 404 — the tombstone hides
// the row from this path.
func (h *Handler) HandleRemoveMember(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Auth.RemoveMember(ctx, orgID, uid, targetID); err != nil {
		h.Err.Respond(w, r, "remove member failed", err)
		return
	}

	apierrors.NoContent(w)
}
