// internal/app/features/organizations/destroy.go
package organizations

import (
	"context"
	"net/http"

	"github.com/dalemusser/labelhub/internal/app/system/timeouts"

	apierrors "github.com/dalemusser/labelhub/internal/app/features/errors"
)

// HandleDestroy hard-deletes the organization and cascades over its
// memberships, projects, and SSO binding in one unit. Admin-gated like
// the other mutations; the tombstoned history goes with it.
func (h *Handler) HandleDestroy(w http.ResponseWriter, r *http.Request) {
	uid, ok := requester(w, r)
	if !ok {
		return
	}
	orgID, ok := orgIDParam(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := h.Auth.DestroyOrganization(ctx, orgID, uid); err != nil {
		h.Err.Respond(w, r, "destroy organization failed", err)
		return
	}

	apierrors.NoContent(w)
}
