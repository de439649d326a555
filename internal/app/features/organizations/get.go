// internal/app/features/organizations/get.go
package organizations

import (
	"context"
	"net/http"

	apierrors "github.com/dalemusser/labelhub/internal/app/features/errors"
	"github.com/dalemusser/labelhub/internal/app/system/timeouts"
)

// HandleGet returns one organization's settings together with its active
// member and project counts. Readable by any member of the organization.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	uid, ok := requester(w, r)
	if !ok {
		return
	}
	orgID, ok := orgIDParam(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	detail, err := h.Auth.GetOrganization(ctx, orgID, uid)
	if err != nil {
		h.Err.Respond(w, r, "get organization failed", err)
		return
	}

	apierrors.WriteJSON(w, http.StatusOK, detail)
}
